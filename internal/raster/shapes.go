// Package raster implements the image-compositing pipeline: canvas and shape
// generation, pixel transforms, compositing, rotation and preview encoding.
package raster

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
)

// Circle draws a filled disk inscribed in a transparent square raster of
// side 2*radius logical units.
func Circle(radius int, fill color.NRGBA) (*image.NRGBA, error) {
	if radius <= 0 {
		return nil, fmt.Errorf("%w: radius %d", ErrInvalidDimension, radius)
	}

	side := 2 * radius * Scale
	dc := gg.NewContext(side, side)
	dc.SetRGBA255(int(fill.R), int(fill.G), int(fill.B), int(fill.A))
	dc.DrawCircle(float64(side)/2, float64(side)/2, float64(side)/2)
	dc.Fill()

	return imaging.Clone(dc.Image()), nil
}

// Rectangle draws a filled rectangle covering an entire raster of
// width x height logical units.
func Rectangle(width, height int, fill color.NRGBA) (*image.NRGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: rectangle %dx%d", ErrInvalidDimension, width, height)
	}

	w, h := width*Scale, height*Scale
	dc := gg.NewContext(w, h)
	dc.SetRGBA255(int(fill.R), int(fill.G), int(fill.B), int(fill.A))
	dc.DrawRectangle(0, 0, float64(w), float64(h))
	dc.Fill()

	return imaging.Clone(dc.Image()), nil
}
