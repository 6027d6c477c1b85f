package ecc200_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/ericlevine/ecc200"
	"github.com/ericlevine/ecc200/datamatrix"
	"github.com/ericlevine/ecc200/datamatrix/encoder"
)

var encodeTests = []struct {
	name    string
	content string
	opts    *ecc200.EncodeOptions
	width   int
	height  int
}{
	{"Digits", "0123456789", nil, 0, 0},
	{"Text", "Hello DataMatrix", nil, 0, 0},
	{"C40", "DATA MATRIX ECC200 BENCHMARK", nil, 0, 0},
	{"Rectangle", "Hello", &ecc200.EncodeOptions{Shape: ecc200.ShapeRectangle}, 0, 0},
	{"UTF8", "Grüße aus Köln", &ecc200.EncodeOptions{CharacterSet: "UTF-8"}, 0, 0},
	{"Scaled", "Hello DataMatrix", nil, 400, 400},
	{"Large", strings.Repeat("0123456789", 300), nil, 0, 0},
}

func BenchmarkEncode(b *testing.B) {
	w := datamatrix.NewWriter()
	for _, tc := range encodeTests {
		b.Run(tc.name, func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, err := w.Encode(tc.content, tc.width, tc.height, tc.opts)
				if err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkEncodeColdCache(b *testing.B) {
	cache := encoder.NewPlacementCache()
	w := datamatrix.NewWriterWithCache(cache)
	content := strings.Repeat("0123456789", 300)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		cache.Reset()
		if _, err := w.Encode(content, 0, 0, nil); err != nil {
			b.Fatal(err)
		}
	}
}

func Example() {
	var w ecc200.Writer = datamatrix.NewWriter()
	margin := 0
	m, err := w.Encode("123456", 0, 0, &ecc200.EncodeOptions{Margin: &margin})
	if err != nil {
		panic(err)
	}
	fmt.Print(m.StringWithChars("X", "."))
	// Output:
	// X.X.X.X.X.
	// XX..X.XX.X
	// XX.....X..
	// XX...XXX.X
	// XX....X...
	// X.....XXXX
	// XXX.XX....
	// XXXX.XX..X
	// X..XXX.X..
	// XXXXXXXXXX
}
