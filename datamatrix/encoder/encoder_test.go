package encoder

import (
	"errors"
	"testing"

	"github.com/ericlevine/ecc200"
	"github.com/ericlevine/ecc200/bitutil"
	"github.com/ericlevine/ecc200/reedsolomon"
	"github.com/google/go-cmp/cmp"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

const symbol123456 = `
X.X.X.X.X.
XX..X.XX.X
XX.....X..
XX...XXX.X
XX....X...
X.....XXXX
XXX.XX....
XXXX.XX..X
X..XXX.X..
XXXXXXXXXX
`

func TestEncodeGolden(t *testing.T) {
	want, err := bitutil.ParseStringMatrix(symbol123456, "X", ".")
	if err != nil {
		t.Fatal(err)
	}
	got, err := Encode("123456")
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !got.Equals(want) {
		t.Errorf("symbol mismatch\ngot:\n%s\nwant:\n%s", got.StringWithChars("X", "."), want.StringWithChars("X", "."))
	}
}

func TestEncodeSymbolCodewords(t *testing.T) {
	sym, err := NewEncoder(NewPlacementCache()).EncodeSymbol("123456", nil)
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{142, 164, 186, 114, 25, 5, 88, 102}
	if diff := cmp.Diff(want, sym.Codewords); diff != "" {
		t.Errorf("codewords mismatch (-want +got):\n%s", diff)
	}
	if sym.Info.String() != "10x10" {
		t.Errorf("symbol size = %v, want 10x10", sym.Info)
	}
}

func TestEncodeSymbolOptions(t *testing.T) {
	tests := []struct {
		name     string
		contents string
		opts     *ecc200.EncodeOptions
		want     string
	}{
		{"smallest", "Hello", nil, "12x12"},
		{"rectangle", "123456", &ecc200.EncodeOptions{Shape: ecc200.ShapeRectangle}, "8x18"},
		{"square", "1234567890123", &ecc200.EncodeOptions{Shape: ecc200.ShapeSquare}, "14x14"},
		{"forced", "123456", &ecc200.EncodeOptions{Width: 48, Height: 16}, "16x48"},
		{"eci", "Grüße", &ecc200.EncodeOptions{CharacterSet: "UTF-8"}, "12x26"},
	}
	enc := NewEncoder(NewPlacementCache())
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			sym, err := enc.EncodeSymbol(tc.contents, tc.opts)
			if err != nil {
				t.Fatalf("EncodeSymbol: %v", err)
			}
			if sym.Info.String() != tc.want {
				t.Errorf("symbol size = %v, want %s", sym.Info, tc.want)
			}
			if len(sym.Codewords) != sym.Info.TotalCodewords() {
				t.Errorf("%d codewords, want %d", len(sym.Codewords), sym.Info.TotalCodewords())
			}
			m := sym.Render()
			if m.Width() != sym.Info.Width || m.Height() != sym.Info.Height {
				t.Errorf("rendered %dx%d, want %v", m.Height(), m.Width(), sym.Info)
			}
		})
	}
}

func TestEncodeSymbolErrors(t *testing.T) {
	enc := NewEncoder(NewPlacementCache())
	tests := []struct {
		name     string
		contents string
		opts     *ecc200.EncodeOptions
		want     error
	}{
		{"empty", "", nil, ecc200.ErrWriter},
		{"unencodable", "€", nil, ecc200.ErrCharset},
		{"unknown size", "1", &ecc200.EncodeOptions{Width: 11, Height: 11}, ecc200.ErrInvalidDimensions},
		{"forced too small", "1234567890", &ecc200.EncodeOptions{Width: 10, Height: 10}, ecc200.ErrCapacity},
		{"too long", string(make([]byte, 3200)), nil, ecc200.ErrCapacity},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := enc.EncodeSymbol(tc.contents, tc.opts); !errors.Is(err, tc.want) {
				t.Errorf("error = %v, want %v", err, tc.want)
			}
		})
	}
}

// TestEncodeCodewordsErrorCorrection checks every symbol size end to end:
// each interleaved block of the final codewords must be a valid
// Reed-Solomon codeword.
func TestEncodeCodewordsErrorCorrection(t *testing.T) {
	enc := NewEncoder(NewPlacementCache())
	for _, si := range Symbols() {
		t.Run(si.String(), func(t *testing.T) {
			data := make([]byte, si.DataCapacity)
			for i := range data {
				data[i] = byte(i*31 + 7)
			}
			sym, err := enc.EncodeCodewords(data, &si)
			if err != nil {
				t.Fatal(err)
			}
			blocks, err := reedsolomon.Deinterleave(sym.Codewords, si.DataCapacity, si.DataBlockSize, si.ECCBlockSize)
			if err != nil {
				t.Fatal(err)
			}
			for b, block := range blocks {
				ok, err := reedsolomon.Verify(block, si.ECCBlockSize)
				if err != nil {
					t.Fatal(err)
				}
				if !ok {
					t.Errorf("block %d has non-zero syndromes", b)
				}
			}
		})
	}
}

func TestEncodeCodewordsCountsSymbols(t *testing.T) {
	si, err := LookupBySize(12, 12)
	if err != nil {
		t.Fatal(err)
	}
	counter := symbolsEncoded.WithLabelValues("12x12")
	before := testutil.ToFloat64(counter)
	if _, err := NewEncoder(nil).EncodeCodewords(make([]byte, si.DataCapacity), si); err != nil {
		t.Fatal(err)
	}
	if got := testutil.ToFloat64(counter) - before; got != 1 {
		t.Errorf("symbols encoded delta = %v, want 1", got)
	}
	if _, err := NewEncoder(nil).EncodeCodewords(make([]byte, 2), si); !errors.Is(err, ecc200.ErrInvalidDimensions) {
		t.Errorf("short data error = %v, want ErrInvalidDimensions", err)
	}
}

func TestRenderFinderAndClock(t *testing.T) {
	si, err := LookupBySize(32, 32)
	if err != nil {
		t.Fatal(err)
	}
	sym, err := NewEncoder(nil).EncodeCodewords(make([]byte, si.DataCapacity), si)
	if err != nil {
		t.Fatal(err)
	}
	m := sym.Render()
	step := si.RegionWidth + 2
	for _, origin := range []int{0, step} {
		for i := 0; i < step; i++ {
			if !m.Get(origin, i) || !m.Get(origin, step+i) {
				t.Errorf("finder column %d not solid at row %d", origin, i)
			}
			if !m.Get(i, origin+step-1) || !m.Get(step+i, origin+step-1) {
				t.Errorf("finder row %d not solid at column %d", origin+step-1, i)
			}
			if m.Get(origin+i, origin) != (i%2 == 0) {
				t.Errorf("top clock of region at %d wrong at column %d", origin, i)
			}
			if i < step-1 && m.Get(origin+step-1, origin+i) != (i%2 == 1) {
				t.Errorf("right clock of region at %d wrong at row %d", origin, i)
			}
		}
	}
}

func BenchmarkEncode(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := Encode("Lorem ipsum dolor sit amet, consectetur adipiscing elit"); err != nil {
			b.Fatal(err)
		}
	}
}
