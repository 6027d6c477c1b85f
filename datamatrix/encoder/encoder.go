// Copyright 2006 Jeremias Maerki in part, and ZXing Authors in part.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

// Package encoder implements Data Matrix (ECC200) barcode encoding.
//
// Encoding runs in four steps: message bytes become data codewords
// (EncodeMessage), a symbol size is chosen (Lookup), Reed-Solomon check
// codewords are appended (EncodeECC200), and the codeword bits are laid out
// by the placement map of the symbol's mapping matrix (PlacementCache).
package encoder

import (
	"fmt"

	"github.com/ericlevine/ecc200"
	"github.com/ericlevine/ecc200/bitutil"
)

// Symbol is a fully encoded symbol: its size, the data and check codewords,
// and the placement map that positions them.
type Symbol struct {
	Info      *SymbolInfo
	Codewords []byte
	Placement *PlacementMap
}

// Encoder encodes Data Matrix symbols using a placement cache.
type Encoder struct {
	cache *PlacementCache
}

// NewEncoder returns an Encoder that takes placement maps from cache, or
// from DefaultPlacementCache if cache is nil.
func NewEncoder(cache *PlacementCache) *Encoder {
	if cache == nil {
		cache = DefaultPlacementCache
	}
	return &Encoder{cache: cache}
}

var defaultEncoder = NewEncoder(nil)

// Encode encodes the contents string into a Data Matrix ECC200 symbol,
// returning the resulting BitMatrix without a quiet zone.
func Encode(contents string) (*bitutil.BitMatrix, error) {
	return EncodeWithOptions(contents, nil)
}

// EncodeWithOptions encodes the contents string into a Data Matrix ECC200
// symbol honoring the shape, size and character set options.
func EncodeWithOptions(contents string, opts *ecc200.EncodeOptions) (*bitutil.BitMatrix, error) {
	sym, err := defaultEncoder.EncodeSymbol(contents, opts)
	if err != nil {
		return nil, err
	}
	return sym.Render(), nil
}

// EncodeSymbol encodes contents and returns the symbol before rendering.
func (e *Encoder) EncodeSymbol(contents string, opts *ecc200.EncodeOptions) (*Symbol, error) {
	if opts == nil {
		opts = &ecc200.EncodeOptions{}
	}

	encoded, err := EncodeMessage(contents, opts.CharacterSet)
	if err != nil {
		return nil, fmt.Errorf("datamatrix/encoder: high-level encoding failed: %w", err)
	}

	var symbolInfo *SymbolInfo
	if opts.Width != 0 || opts.Height != 0 {
		symbolInfo, err = LookupBySize(opts.Width, opts.Height)
		if err == nil && symbolInfo.DataCapacity < len(encoded) {
			err = fmt.Errorf("datamatrix/encoder: %v symbol holds %d data codewords, need %d: %w",
				symbolInfo, symbolInfo.DataCapacity, len(encoded), ecc200.ErrCapacity)
		}
	} else {
		symbolInfo, err = Lookup(len(encoded), opts.Shape)
	}
	if err != nil {
		return nil, err
	}

	return e.EncodeCodewords(PadCodewords(encoded, symbolInfo.DataCapacity), symbolInfo)
}

// EncodeCodewords completes a symbol from exactly symbolInfo.DataCapacity
// data codewords: it appends the error correction codewords and attaches
// the placement map for the symbol's mapping matrix.
func (e *Encoder) EncodeCodewords(data []byte, symbolInfo *SymbolInfo) (*Symbol, error) {
	codewords, err := EncodeECC200(data, symbolInfo)
	if err != nil {
		return nil, err
	}
	placement, err := e.cache.Get(symbolInfo.MappingMatrixRows(), symbolInfo.MappingMatrixColumns())
	if err != nil {
		return nil, err
	}
	if placement.Codewords() < len(codewords) {
		return nil, fmt.Errorf("datamatrix/encoder: %v placement holds %d codewords, need %d: %w",
			symbolInfo, placement.Codewords(), len(codewords), ecc200.ErrInvalidDimensions)
	}
	symbolsEncoded.WithLabelValues(symbolInfo.String()).Inc()
	return &Symbol{Info: symbolInfo, Codewords: codewords, Placement: placement}, nil
}

// Render builds the symbol's BitMatrix: every data region gets a solid L
// finder on its left and bottom edges and alternating clock tracks on its
// top and right edges, and the mapping matrix is split across the regions.
func (s *Symbol) Render() *bitutil.BitMatrix {
	si := s.Info
	matrix := bitutil.NewBitMatrixWithSize(si.Width, si.Height)

	drRows := si.RegionHeight
	drCols := si.RegionWidth

	for vRegion := 0; vRegion < si.VerticalRegions(); vRegion++ {
		for hRegion := 0; hRegion < si.HorizontalRegions(); hRegion++ {
			originX := hRegion * (drCols + 2)
			originY := vRegion * (drRows + 2)

			for y := 0; y < drRows+2; y++ {
				matrix.Set(originX, originY+y)
				if y%2 == 1 {
					matrix.Set(originX+drCols+1, originY+y)
				}
			}
			for x := 0; x < drCols+2; x++ {
				matrix.Set(originX+x, originY+drRows+1)
				if x%2 == 0 {
					matrix.Set(originX+x, originY)
				}
			}

			for r := 0; r < drRows; r++ {
				for c := 0; c < drCols; c++ {
					if s.Placement.Dark(vRegion*drRows+r, hRegion*drCols+c, s.Codewords) {
						matrix.Set(originX+c+1, originY+r+1)
					}
				}
			}
		}
	}

	return matrix
}
