// Copyright 2006 Jeremias Maerki in part, and ZXing Authors in part.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package encoder

import (
	"fmt"

	"github.com/ericlevine/ecc200"
	"github.com/ericlevine/ecc200/reedsolomon"
)

// EncodeECC200 generates Reed-Solomon ECC200 error correction codewords and
// returns the full codeword sequence (data + EC). Data Matrix uses GF(256)
// with primitive polynomial 0x12D.
//
// For symbols with interleaved blocks, data codeword i belongs to block
// i%blocks and the check codewords of all blocks are interleaved the same
// way after the data.
func EncodeECC200(codewords []byte, symbolInfo *SymbolInfo) ([]byte, error) {
	if len(codewords) != symbolInfo.DataCapacity {
		return nil, fmt.Errorf("datamatrix/encoder: expected %d data codewords, got %d: %w",
			symbolInfo.DataCapacity, len(codewords), ecc200.ErrInvalidDimensions)
	}

	result := make([]byte, symbolInfo.TotalCodewords())
	copy(result, codewords)
	err := reedsolomon.GenerateECC(result, symbolInfo.DataCapacity, symbolInfo.DataBlockSize, symbolInfo.ECCBlockSize)
	if err != nil {
		return nil, fmt.Errorf("datamatrix/encoder: %v symbol: %w", symbolInfo, err)
	}
	return result, nil
}
