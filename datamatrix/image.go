package datamatrix

import (
	"image"
	"image/color"

	"github.com/ericlevine/ecc200/bitutil"
)

// Image adapts a BitMatrix to image.Image with one pixel per module, set
// modules black and unset modules white.
type Image struct {
	m *bitutil.BitMatrix
}

// NewImage returns m as an image.
func NewImage(m *bitutil.BitMatrix) *Image {
	return &Image{m: m}
}

// ColorModel implements image.Image.
func (im *Image) ColorModel() color.Model { return color.GrayModel }

// Bounds implements image.Image.
func (im *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, im.m.Width(), im.m.Height())
}

// At implements image.Image.
func (im *Image) At(x, y int) color.Color {
	if !(image.Point{x, y}.In(im.Bounds())) || !im.m.Get(x, y) {
		return color.Gray{Y: 0xFF}
	}
	return color.Gray{Y: 0}
}
