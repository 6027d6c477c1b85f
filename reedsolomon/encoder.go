package reedsolomon

import (
	"fmt"

	"github.com/ericlevine/ecc200"
)

// maxBlockLength is the longest codeword (data plus check codewords) a
// single Reed-Solomon block over GF(256) can carry.
const maxBlockLength = FieldSize - 1

// BlockCount returns the number of interleaved Reed-Solomon blocks used for
// dataLength data codewords split into blocks of dataBlockSize. The +2 lets
// the 144x144 symbol, whose last two blocks are one codeword short, share
// the formula with every other size.
func BlockCount(dataLength, dataBlockSize int) int {
	return (dataLength + 2) / dataBlockSize
}

// GenerateECC computes the ECC200 error correction codewords for the
// dataLength data codewords at the front of buf and writes them, interleaved
// across BlockCount(dataLength, dataBlockSize) blocks, into
// buf[dataLength:dataLength+eccBlockSize*blocks].
//
// Data codeword i belongs to block i%blocks; check codeword n of block b is
// stored at buf[dataLength+b+n*blocks]. All preconditions are checked before
// buf is modified.
func GenerateECC(buf []byte, dataLength, dataBlockSize, eccBlockSize int) error {
	if dataLength < 0 || dataBlockSize <= 0 {
		return fmt.Errorf("reedsolomon: data length %d, data block size %d: %w",
			dataLength, dataBlockSize, ecc200.ErrInvalidDimensions)
	}
	poly, err := Generator(eccBlockSize)
	if err != nil {
		return err
	}
	blocks := BlockCount(dataLength, dataBlockSize)
	if need := dataLength + eccBlockSize*blocks; len(buf) < need {
		return fmt.Errorf("reedsolomon: buffer holds %d codewords, need %d: %w",
			len(buf), need, ecc200.ErrBufferTooSmall)
	}
	if blocks == 0 {
		return nil
	}
	if longest := (dataLength + blocks - 1) / blocks; longest+eccBlockSize > maxBlockLength {
		return fmt.Errorf("reedsolomon: block of %d data and %d check codewords exceeds %d: %w",
			longest, eccBlockSize, maxBlockLength, ecc200.ErrInvalidDimensions)
	}

	var scratch [maxBlockLength]byte
	var ecc [maxBlockLength + 1]byte
	for b := 0; b < blocks; b++ {
		p := 0
		for n := b; n < dataLength; n += blocks {
			scratch[p] = buf[n]
			p++
		}
		remainder(scratch[:p], poly, ecc[:eccBlockSize+1])
		p = 0
		for n := b; n < eccBlockSize*blocks; n += blocks {
			buf[dataLength+n] = ecc[p]
			p++
		}
	}
	return nil
}

// remainder divides data(x)*x^n by the generator polynomial whose n low-order
// coefficients are poly, leaving the n-codeword remainder in acc[:n]. acc must
// have length n+1; acc[n] stays zero and feeds the shift.
func remainder(data []byte, poly []int, acc []byte) {
	n := len(poly)
	for i := range acc {
		acc[i] = 0
	}
	for _, d := range data {
		k := int(acc[0] ^ d)
		for j := 0; j < n; j++ {
			acc[j] = acc[j+1] ^ byte(Multiply(k, poly[n-j-1]))
		}
	}
}
