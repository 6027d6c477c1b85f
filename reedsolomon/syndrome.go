package reedsolomon

import (
	"fmt"

	"github.com/ericlevine/ecc200"
)

// Syndromes evaluates the codeword polynomial of block (data codewords
// followed by eccBlockSize check codewords) at the generator roots
// alpha^1..alpha^eccBlockSize. A valid block yields all zeros.
func Syndromes(block []byte, eccBlockSize int) ([]int, error) {
	if _, err := Generator(eccBlockSize); err != nil {
		return nil, err
	}
	if len(block) < eccBlockSize {
		return nil, fmt.Errorf("reedsolomon: block of %d codewords shorter than %d check codewords: %w",
			len(block), eccBlockSize, ecc200.ErrBufferTooSmall)
	}
	poly := BytesPoly(block)
	syndromes := make([]int, eccBlockSize)
	for i := range syndromes {
		syndromes[i] = poly.EvaluateAt(Exp(i + 1))
	}
	return syndromes, nil
}

// Verify reports whether block is a valid codeword for eccBlockSize check
// codewords.
func Verify(block []byte, eccBlockSize int) (bool, error) {
	s, err := Syndromes(block, eccBlockSize)
	if err != nil {
		return false, err
	}
	for _, v := range s {
		if v != 0 {
			return false, nil
		}
	}
	return true, nil
}

// Deinterleave splits a buffer laid out by GenerateECC into one slice per
// block, each holding that block's data codewords followed by its check
// codewords.
func Deinterleave(buf []byte, dataLength, dataBlockSize, eccBlockSize int) ([][]byte, error) {
	if dataLength < 0 || dataBlockSize <= 0 || eccBlockSize <= 0 {
		return nil, fmt.Errorf("reedsolomon: data length %d, data block size %d, ecc block size %d: %w",
			dataLength, dataBlockSize, eccBlockSize, ecc200.ErrInvalidDimensions)
	}
	blocks := BlockCount(dataLength, dataBlockSize)
	if need := dataLength + eccBlockSize*blocks; len(buf) < need {
		return nil, fmt.Errorf("reedsolomon: buffer holds %d codewords, need %d: %w",
			len(buf), need, ecc200.ErrBufferTooSmall)
	}
	out := make([][]byte, blocks)
	for b := range out {
		for n := b; n < dataLength; n += blocks {
			out[b] = append(out[b], buf[n])
		}
		for n := b; n < eccBlockSize*blocks; n += blocks {
			out[b] = append(out[b], buf[dataLength+n])
		}
	}
	return out, nil
}
