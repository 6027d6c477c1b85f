// Copyright 2006 Jeremias Maerki in part, and ZXing Authors in part.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package encoder

import (
	"fmt"

	"github.com/ericlevine/ecc200"
	"github.com/ericlevine/ecc200/reedsolomon"
)

// SymbolInfo describes a single Data Matrix ECC200 symbol size.
type SymbolInfo struct {
	Height        int // symbol height in modules, including finder and clock patterns
	Width         int // symbol width in modules, including finder and clock patterns
	RegionHeight  int // data rows per data region
	RegionWidth   int // data columns per data region
	DataCapacity  int // data codewords across all interleaved blocks
	DataBlockSize int // data codewords per Reed-Solomon block
	ECCBlockSize  int // error correction codewords per Reed-Solomon block
}

// Rectangular reports whether the symbol is non-square.
func (si *SymbolInfo) Rectangular() bool {
	return si.Width != si.Height
}

// BlockCount returns the number of interleaved Reed-Solomon blocks.
func (si *SymbolInfo) BlockCount() int {
	return reedsolomon.BlockCount(si.DataCapacity, si.DataBlockSize)
}

// ErrorCodewords returns the total number of error correction codewords.
func (si *SymbolInfo) ErrorCodewords() int {
	return si.ECCBlockSize * si.BlockCount()
}

// TotalCodewords returns data + error correction codewords.
func (si *SymbolInfo) TotalCodewords() int {
	return si.DataCapacity + si.ErrorCodewords()
}

// HorizontalRegions returns the number of data regions across the symbol.
func (si *SymbolInfo) HorizontalRegions() int {
	return si.Width / (si.RegionWidth + 2)
}

// VerticalRegions returns the number of data regions down the symbol.
func (si *SymbolInfo) VerticalRegions() int {
	return si.Height / (si.RegionHeight + 2)
}

// MappingMatrixRows returns the number of rows in the mapping matrix
// (symbol rows minus finder pattern rows: each data region has 2 extra rows).
func (si *SymbolInfo) MappingMatrixRows() int {
	return si.Height - si.VerticalRegions()*2
}

// MappingMatrixColumns returns the number of columns in the mapping matrix.
func (si *SymbolInfo) MappingMatrixColumns() int {
	return si.Width - si.HorizontalRegions()*2
}

// String returns the symbol size as "HxW".
func (si *SymbolInfo) String() string {
	return fmt.Sprintf("%dx%d", si.Height, si.Width)
}

// symbols is the full list of ECC200 symbol sizes ordered by data capacity,
// from ISO/IEC 16022 Table 7. Square and rectangular sizes are interleaved
// so that Lookup returns the smallest fitting symbol of either shape.
var symbols = []SymbolInfo{
	// {Height, Width, RegionHeight, RegionWidth, DataCapacity, DataBlockSize, ECCBlockSize}
	{10, 10, 8, 8, 3, 3, 5},
	{12, 12, 10, 10, 5, 5, 7},
	{8, 18, 6, 16, 5, 5, 7},
	{14, 14, 12, 12, 8, 8, 10},
	{8, 32, 6, 14, 10, 10, 11},
	{16, 16, 14, 14, 12, 12, 12},
	{12, 26, 10, 24, 16, 16, 14},
	{18, 18, 16, 16, 18, 18, 14},
	{20, 20, 18, 18, 22, 22, 18},
	{12, 36, 10, 16, 22, 22, 18},
	{22, 22, 20, 20, 30, 30, 20},
	{16, 36, 14, 16, 32, 32, 24},
	{24, 24, 22, 22, 36, 36, 24},
	{26, 26, 24, 24, 44, 44, 28},
	{16, 48, 14, 22, 49, 49, 28},
	{32, 32, 14, 14, 62, 62, 36},
	{36, 36, 16, 16, 86, 86, 42},
	{40, 40, 18, 18, 114, 114, 48},
	{44, 44, 20, 20, 144, 144, 56},
	{48, 48, 22, 22, 174, 174, 68},
	{52, 52, 24, 24, 204, 102, 42},
	{64, 64, 14, 14, 280, 140, 56},
	{72, 72, 16, 16, 368, 92, 36},
	{80, 80, 18, 18, 456, 114, 48},
	{88, 88, 20, 20, 576, 144, 56},
	{96, 96, 22, 22, 696, 174, 68},
	{104, 104, 24, 24, 816, 136, 56},
	{120, 120, 18, 18, 1050, 175, 68},
	{132, 132, 20, 20, 1304, 163, 62},
	{144, 144, 22, 22, 1558, 156, 62},
}

// Symbols returns a copy of the symbol catalog in ascending capacity order.
func Symbols() []SymbolInfo {
	return append([]SymbolInfo(nil), symbols...)
}

// Lookup finds the smallest symbol that can hold the given number of data codewords.
// shape can be used to restrict the search to square or rectangular symbols.
func Lookup(dataCodewords int, shape ecc200.Shape) (*SymbolInfo, error) {
	for i := range symbols {
		si := &symbols[i]
		if shape == ecc200.ShapeSquare && si.Rectangular() {
			continue
		}
		if shape == ecc200.ShapeRectangle && !si.Rectangular() {
			continue
		}
		if si.DataCapacity >= dataCodewords {
			return si, nil
		}
	}
	return nil, fmt.Errorf("datamatrix/encoder: no %s symbol holds %d data codewords: %w",
		shape, dataCodewords, ecc200.ErrCapacity)
}

// LookupBySize returns the SymbolInfo for a specific symbol size in modules.
func LookupBySize(width, height int) (*SymbolInfo, error) {
	for i := range symbols {
		si := &symbols[i]
		if si.Width == width && si.Height == height {
			return si, nil
		}
	}
	return nil, fmt.Errorf("datamatrix/encoder: no %dx%d symbol: %w", height, width, ecc200.ErrInvalidDimensions)
}
