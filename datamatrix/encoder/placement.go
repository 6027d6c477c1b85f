// Copyright 2006 Jeremias Maerki in part, and ZXing Authors in part.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package encoder

import (
	"fmt"
	"slices"

	"github.com/ericlevine/ecc200"
)

// Cell values in a PlacementMap that do not reference a codeword bit.
// Codeword references are 8*codeword+bit with codeword >= 1, so they never
// collide with these.
const (
	// CellUnplaced marks a cell no codeword has reached. A completed map
	// contains none.
	CellUnplaced = 0
	// CellFixedDark is a module of the fixed 2x2 bottom-right pattern that
	// is always dark.
	CellFixedDark = 1
	// CellFixedLight is a module of the fixed 2x2 bottom-right pattern that
	// is always light.
	CellFixedLight = 2
)

// PlacementMap assigns every module of an ECC200 mapping matrix either a
// codeword bit or a fixed value, as defined in ISO/IEC 16022, Annex F.
//
// The mapping matrix is the symbol matrix with finder/timing patterns
// stripped away; it contains only data modules. A PlacementMap depends only
// on its dimensions and is immutable once built, so a single instance may be
// shared between goroutines.
type PlacementMap struct {
	rows      int
	cols      int
	codewords int
	cells     []int
}

// Rows returns the number of rows.
func (m *PlacementMap) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *PlacementMap) Cols() int { return m.cols }

// Codewords returns the number of codewords the map has room for.
func (m *PlacementMap) Codewords() int { return m.codewords }

// At returns the raw cell value at (row, col): 8*codeword+bit for a
// codeword module, or one of the Cell constants.
func (m *PlacementMap) At(row, col int) int {
	return m.cells[row*m.cols+col]
}

// Codeword resolves the cell at (row, col) to a 1-based codeword index and a
// bit index, 0 being the most significant bit. ok is false for fixed cells.
func (m *PlacementMap) Codeword(row, col int) (codeword, bit int, ok bool) {
	v := m.At(row, col)
	if v < 8 {
		return 0, 0, false
	}
	return v >> 3, v & 7, true
}

// Dark reports whether the module at (row, col) is dark when the map is
// filled with the given codewords. Codewords beyond the slice are light.
func (m *PlacementMap) Dark(row, col int, codewords []byte) bool {
	v := m.At(row, col)
	switch {
	case v == CellFixedDark:
		return true
	case v < 8:
		return false
	}
	i := v>>3 - 1
	if i >= len(codewords) {
		return false
	}
	return codewords[i]&(0x80>>uint(v&7)) != 0
}

// Cells returns a copy of the map in row-major order.
func (m *PlacementMap) Cells() []int {
	return append([]int(nil), m.cells...)
}

// BuildPlacement runs the ECC200 module placement algorithm for a mapping
// matrix of rows x cols. It fails with ErrInvalidDimensions for non-positive
// sizes, for sizes whose corner wraparound would leave the matrix, and for
// sizes the sweep cannot fill completely; every standard symbol size is valid.
func BuildPlacement(rows, cols int) (*PlacementMap, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("datamatrix/encoder: placement matrix %dx%d: %w", rows, cols, ecc200.ErrInvalidDimensions)
	}
	p := &placer{rows: rows, cols: cols, cells: make([]int, rows*cols)}
	codewords := p.place()
	if p.outside {
		return nil, fmt.Errorf("datamatrix/encoder: placement matrix %dx%d wraps outside itself: %w",
			rows, cols, ecc200.ErrInvalidDimensions)
	}
	if i := slices.Index(p.cells, CellUnplaced); i >= 0 {
		return nil, fmt.Errorf("datamatrix/encoder: placement matrix %dx%d leaves (%d,%d) unplaced: %w",
			rows, cols, i/cols, i%cols, ecc200.ErrInvalidDimensions)
	}
	return &PlacementMap{rows: rows, cols: cols, codewords: codewords, cells: p.cells}, nil
}

type placer struct {
	rows, cols int
	cells      []int
	outside    bool
}

// unplaced reports whether (row, col) is inside the matrix and still empty.
func (p *placer) unplaced(row, col int) bool {
	if row < 0 || row >= p.rows || col < 0 || col >= p.cols {
		p.outside = true
		return false
	}
	return p.cells[row*p.cols+col] == CellUnplaced
}

// place fills the matrix and returns the number of codewords placed.
func (p *placer) place() int {
	chr := 1
	row := 4
	col := 0

	for {
		if row == p.rows && col == 0 {
			p.corner1(chr)
			chr++
		}
		if row == p.rows-2 && col == 0 && p.cols%4 != 0 {
			p.corner2(chr)
			chr++
		}
		if row == p.rows-2 && col == 0 && p.cols%8 == 4 {
			p.corner3(chr)
			chr++
		}
		if row == p.rows+4 && col == 2 && p.cols%8 == 0 {
			p.corner4(chr)
			chr++
		}

		// Sweep upward-right diagonal.
		for {
			if row < p.rows && col >= 0 && p.unplaced(row, col) {
				p.utah(row, col, chr)
				chr++
			}
			row -= 2
			col += 2
			if row < 0 || col >= p.cols {
				break
			}
		}
		row++
		col += 3

		// Sweep downward-left diagonal.
		for {
			if row >= 0 && col < p.cols && p.unplaced(row, col) {
				p.utah(row, col, chr)
				chr++
			}
			row += 2
			col -= 2
			if row >= p.rows || col < 0 {
				break
			}
		}
		row += 3
		col++

		if (row >= p.rows && col >= p.cols) || p.outside {
			break
		}
	}

	// Sizes whose sweep cannot reach the bottom-right corner get the fixed
	// pattern: dark on the diagonal, light elsewhere.
	if p.rows < 2 || p.cols < 2 {
		p.outside = true
	}
	last := p.rows*p.cols - 1
	if !p.outside && p.cells[last] == CellUnplaced {
		p.cells[last] = CellFixedDark
		p.fix(last-p.cols-1, CellFixedDark)
		p.fix(last-1, CellFixedLight)
		p.fix(last-p.cols, CellFixedLight)
	}
	return chr - 1
}

func (p *placer) fix(i, v int) {
	if i < 0 {
		p.outside = true
		return
	}
	if v == CellFixedDark || p.cells[i] == CellUnplaced {
		p.cells[i] = v
	}
}

// module places a single module, wrapping positions that fall off the top or
// left edge around to the opposite side.
func (p *placer) module(row, col, chr, bit int) {
	if row < 0 {
		row += p.rows
		col += 4 - ((p.rows + 4) % 8)
	}
	if col < 0 {
		col += p.cols
		row += 4 - ((p.cols + 4) % 8)
	}
	if row < 0 || row >= p.rows || col < 0 || col >= p.cols {
		p.outside = true
		return
	}
	p.cells[row*p.cols+col] = 8*chr + bit
}

// utah places the 8 modules of a standard Utah-shaped codeword.
// The (row, col) parameters refer to the position of the lower-right
// corner of the nominal L-shaped pattern.
func (p *placer) utah(row, col, chr int) {
	p.module(row-2, col-2, chr, 0)
	p.module(row-2, col-1, chr, 1)
	p.module(row-1, col-2, chr, 2)
	p.module(row-1, col-1, chr, 3)
	p.module(row-1, col, chr, 4)
	p.module(row, col-2, chr, 5)
	p.module(row, col-1, chr, 6)
	p.module(row, col, chr, 7)
}

// corner1 handles special case 1: the bottom-left corner codeword
// when row==rows and col==0.
func (p *placer) corner1(chr int) {
	p.module(p.rows-1, 0, chr, 0)
	p.module(p.rows-1, 1, chr, 1)
	p.module(p.rows-1, 2, chr, 2)
	p.module(0, p.cols-2, chr, 3)
	p.module(0, p.cols-1, chr, 4)
	p.module(1, p.cols-1, chr, 5)
	p.module(2, p.cols-1, chr, 6)
	p.module(3, p.cols-1, chr, 7)
}

// corner2 handles special case 2.
func (p *placer) corner2(chr int) {
	p.module(p.rows-3, 0, chr, 0)
	p.module(p.rows-2, 0, chr, 1)
	p.module(p.rows-1, 0, chr, 2)
	p.module(0, p.cols-4, chr, 3)
	p.module(0, p.cols-3, chr, 4)
	p.module(0, p.cols-2, chr, 5)
	p.module(0, p.cols-1, chr, 6)
	p.module(1, p.cols-1, chr, 7)
}

// corner3 handles special case 3.
func (p *placer) corner3(chr int) {
	p.module(p.rows-3, 0, chr, 0)
	p.module(p.rows-2, 0, chr, 1)
	p.module(p.rows-1, 0, chr, 2)
	p.module(0, p.cols-2, chr, 3)
	p.module(0, p.cols-1, chr, 4)
	p.module(1, p.cols-1, chr, 5)
	p.module(2, p.cols-1, chr, 6)
	p.module(3, p.cols-1, chr, 7)
}

// corner4 handles special case 4.
func (p *placer) corner4(chr int) {
	p.module(p.rows-1, 0, chr, 0)
	p.module(p.rows-1, p.cols-1, chr, 1)
	p.module(0, p.cols-3, chr, 2)
	p.module(0, p.cols-2, chr, 3)
	p.module(0, p.cols-1, chr, 4)
	p.module(1, p.cols-3, chr, 5)
	p.module(1, p.cols-2, chr, 6)
	p.module(1, p.cols-1, chr, 7)
}
