// Package datamatrix provides Data Matrix (ECC200) writing.
package datamatrix

import (
	"fmt"

	"github.com/ericlevine/ecc200"
	"github.com/ericlevine/ecc200/bitutil"
	"github.com/ericlevine/ecc200/datamatrix/encoder"
)

// DefaultQuietZoneSize is the margin in modules used when no margin is given.
const DefaultQuietZoneSize = 1

// Writer encodes Data Matrix symbols.
type Writer struct {
	enc *encoder.Encoder
}

var _ ecc200.Writer = (*Writer)(nil)

// NewWriter creates a Writer backed by the process-wide placement cache.
func NewWriter() *Writer {
	return &Writer{enc: encoder.NewEncoder(nil)}
}

// NewWriterWithCache creates a Writer that takes placement maps from cache.
func NewWriterWithCache(cache *encoder.PlacementCache) *Writer {
	return &Writer{enc: encoder.NewEncoder(cache)}
}

// Encode encodes contents into a Data Matrix symbol scaled by the largest
// whole factor that fits width x height, centered, with a quiet zone.
func (w *Writer) Encode(contents string, width, height int, opts *ecc200.EncodeOptions) (*bitutil.BitMatrix, error) {
	if contents == "" {
		return nil, fmt.Errorf("datamatrix: found empty contents: %w", ecc200.ErrWriter)
	}
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("datamatrix: requested dimensions are too small: %dx%d: %w",
			width, height, ecc200.ErrInvalidDimensions)
	}

	quietZone := DefaultQuietZoneSize
	if opts != nil && opts.Margin != nil {
		quietZone = *opts.Margin
		if quietZone < 0 {
			return nil, fmt.Errorf("datamatrix: negative margin %d: %w", quietZone, ecc200.ErrInvalidDimensions)
		}
	}

	sym, err := w.enc.EncodeSymbol(contents, opts)
	if err != nil {
		return nil, err
	}
	return renderResult(sym.Render(), width, height, quietZone), nil
}

// renderResult scales input into an output matrix of at least width x height
// modules, keeping quietZone modules of margin on every side.
func renderResult(input *bitutil.BitMatrix, width, height, quietZone int) *bitutil.BitMatrix {
	inputWidth := input.Width()
	inputHeight := input.Height()
	fullWidth := inputWidth + quietZone*2
	fullHeight := inputHeight + quietZone*2
	outputWidth := max(width, fullWidth)
	outputHeight := max(height, fullHeight)

	multiple := min(outputWidth/fullWidth, outputHeight/fullHeight)
	leftPadding := (outputWidth - inputWidth*multiple) / 2
	topPadding := (outputHeight - inputHeight*multiple) / 2

	output := bitutil.NewBitMatrixWithSize(outputWidth, outputHeight)
	for inputY := 0; inputY < inputHeight; inputY++ {
		outputY := topPadding + inputY*multiple
		for inputX := 0; inputX < inputWidth; inputX++ {
			if input.Get(inputX, inputY) {
				output.SetRegion(leftPadding+inputX*multiple, outputY, multiple, multiple)
			}
		}
	}
	return output
}
