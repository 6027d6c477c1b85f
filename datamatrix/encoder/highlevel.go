// Copyright 2006 Jeremias Maerki in part, and ZXing Authors in part.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package encoder

import (
	"fmt"

	"github.com/ericlevine/ecc200"
	"github.com/ericlevine/ecc200/charset"
)

// Codeword values in ASCII mode.
const (
	asciiUpperShift = 235 // shifts to upper 128 characters
	asciiPad        = 129 // padding codeword
	asciiECI        = 241 // extended channel interpretation designator follows
	asciiDigitPair  = 130 // base of the "00"-"99" digit pair codewords
)

// Latch codewords.
const (
	latchToC40   = 230
	unlatchASCII = 254 // unlatch from C40/Text/X12 back to ASCII
)

// EncodeMessage transcodes msg into the named character set and encodes it
// into data codewords. An empty charsetName means ISO-8859-1, the default
// interpretation, and emits no ECI; any other character set is announced
// with an ECI designator ahead of the data.
func EncodeMessage(msg, charsetName string) ([]byte, error) {
	if len(msg) == 0 {
		return nil, fmt.Errorf("datamatrix/encoder: empty message: %w", ecc200.ErrWriter)
	}
	eci := charset.ISO8859_1
	if charsetName != "" {
		var err error
		if eci, err = charset.Lookup(charsetName); err != nil {
			return nil, err
		}
	}
	data, err := eci.Encode(msg)
	if err != nil {
		return nil, err
	}
	encoded := EncodeHighLevel(data)
	if charsetName == "" {
		return encoded, nil
	}
	return append(appendECI(nil, eci.Value), encoded...), nil
}

// appendECI appends the ECI codeword and the 1 to 3 codewords of the
// designator value.
func appendECI(dst []byte, value int) []byte {
	dst = append(dst, asciiECI)
	switch {
	case value <= 126:
		return append(dst, byte(value+1))
	case value <= 16382:
		return append(dst, byte((value-127)/254+128), byte((value-127)%254+1))
	default:
		return append(dst, byte((value-16383)/64516+192), byte((value-16383)/254%254+1), byte((value-16383)%254+1))
	}
}

// EncodeHighLevel performs high-level encoding of message bytes, producing
// a slice of codewords. ASCII mode is the primary encoding; runs of
// uppercase letters, digits and spaces switch to C40 when that is shorter.
func EncodeHighLevel(data []byte) []byte {
	asciiResult := encodeASCII(data)
	c40Result := encodeWithC40(data)
	if len(c40Result) < len(asciiResult) {
		return c40Result
	}
	return asciiResult
}

// encodeASCII encodes data using pure ASCII mode.
// ASCII mode rules:
//   - ASCII 0-127: codeword = value + 1
//   - digit pairs "00"-"99": codeword = pair_value + 130
//   - ASCII 128-255: Upper Shift (235) then value - 128 + 1
func encodeASCII(data []byte) []byte {
	result := make([]byte, 0, len(data))
	i := 0
	for i < len(data) {
		c := data[i]

		if isDigitPair(data, i) {
			result = append(result, digitPair(c, data[i+1]))
			i += 2
			continue
		}
		result = appendASCII(result, c)
		i++
	}
	return result
}

func isDigitPair(data []byte, i int) bool {
	return isDigit(data[i]) && i+1 < len(data) && isDigit(data[i+1])
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func digitPair(a, b byte) byte {
	return byte(int(a-'0')*10 + int(b-'0') + asciiDigitPair)
}

// appendASCII appends the ASCII mode codewords of a single byte.
func appendASCII(dst []byte, c byte) []byte {
	if c <= 127 {
		return append(dst, c+1)
	}
	return append(dst, asciiUpperShift, c-128+1)
}

// encodeWithC40 encodes data in ASCII mode but switches to C40 for runs of
// at least minC40Run basic C40 characters. C40 packs 3 characters into 2
// codewords, so a run pays for its latch and unlatch once it reaches six
// characters.
//
// C40 basic set: Space=3, '0'-'9'=4-13, 'A'-'Z'=14-39.
func encodeWithC40(data []byte) []byte {
	result := make([]byte, 0, len(data))
	for i := 0; i < len(data); {
		if run := c40RunLength(data[i:]); run >= minC40Run {
			var n int
			result, n = appendC40(result, data[i:i+run])
			i += n
			continue
		}
		if isDigitPair(data, i) {
			result = append(result, digitPair(data[i], data[i+1]))
			i += 2
			continue
		}
		result = appendASCII(result, data[i])
		i++
	}
	return result
}

const minC40Run = 6

// c40RunLength returns how many leading bytes of data are basic C40 characters.
func c40RunLength(data []byte) int {
	for i, b := range data {
		if !isBasicC40(b) {
			return i
		}
	}
	return len(data)
}

// appendC40 latches to C40, packs as many whole triplets of run as possible,
// and unlatches. It returns the number of bytes consumed; the 1 or 2 left
// over are encoded in ASCII by the caller.
func appendC40(dst, run []byte) ([]byte, int) {
	dst = append(dst, latchToC40)
	n := len(run) / 3 * 3
	for k := 0; k < n; k += 3 {
		v := c40Value(run[k])*1600 + c40Value(run[k+1])*40 + c40Value(run[k+2]) + 1
		dst = append(dst, byte(v/256), byte(v%256))
	}
	return append(dst, unlatchASCII), n
}

// isBasicC40 returns true if the byte can be encoded as a single C40 value
// (without shift characters).
func isBasicC40(b byte) bool {
	return b == ' ' || (b >= '0' && b <= '9') || (b >= 'A' && b <= 'Z')
}

// c40Value returns the C40 value for a basic C40 character.
func c40Value(b byte) int {
	if b == ' ' {
		return 3
	}
	if b >= '0' && b <= '9' {
		return int(b-'0') + 4
	}
	if b >= 'A' && b <= 'Z' {
		return int(b-'A') + 14
	}
	return 0
}

// randomize253State applies the 253-state randomization algorithm of
// ISO/IEC 16022 5.2.3 to a pad codeword at the given 1-based position.
func randomize253State(codeword byte, position int) byte {
	pseudoRandom := ((149 * position) % 253) + 1
	tmp := int(codeword) + pseudoRandom
	if tmp > 254 {
		tmp -= 254
	}
	return byte(tmp)
}

// PadCodewords pads the codeword slice with the appropriate pad codewords
// to fill the symbol's data capacity.
func PadCodewords(codewords []byte, capacity int) []byte {
	if len(codewords) >= capacity {
		return codewords
	}
	result := make([]byte, capacity)
	copy(result, codewords)

	// The first pad is a plain PAD; later ones are randomized.
	result[len(codewords)] = asciiPad
	for i := len(codewords) + 1; i < capacity; i++ {
		result[i] = randomize253State(asciiPad, i+1)
	}

	return result
}
