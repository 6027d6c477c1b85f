package ecc200

import "github.com/ericlevine/ecc200/bitutil"

// Shape restricts the symbol geometries considered when choosing a size.
type Shape int

const (
	// ShapeAny allows either square or rectangular symbols.
	ShapeAny Shape = iota
	// ShapeSquare forces a square symbol.
	ShapeSquare
	// ShapeRectangle forces a rectangular symbol.
	ShapeRectangle
)

// String returns the flag spelling of the shape.
func (s Shape) String() string {
	switch s {
	case ShapeSquare:
		return "square"
	case ShapeRectangle:
		return "rectangle"
	default:
		return "any"
	}
}

// EncodeOptions configures barcode encoding behavior.
type EncodeOptions struct {
	// Shape restricts symbol selection to square or rectangular symbols.
	Shape Shape

	// Width and Height force a specific symbol size in modules
	// (for example 16x48). Both zero means pick the smallest fitting size.
	Width, Height int

	// CharacterSet specifies the character set to use when encoding. Empty
	// means ISO-8859-1 without an ECI designator.
	CharacterSet string

	// Margin specifies the margin (quiet zone) in modules around the barcode.
	// Nil selects the writer's default.
	Margin *int
}

// Writer encodes data into a barcode.
type Writer interface {
	// Encode encodes the given contents into a barcode scaled to fit
	// width x height pixels (zero means one pixel per module).
	Encode(contents string, width, height int, opts *EncodeOptions) (*bitutil.BitMatrix, error)
}
