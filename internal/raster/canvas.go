// Package raster implements the image-compositing pipeline: canvas and shape
// generation, pixel transforms, compositing, rotation and preview encoding.
package raster

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// Scale is the supersampling factor: every raster is rendered at Scale times
// the logical size in each dimension and downsampled again for display.
const Scale = 4

// NewCanvas allocates a uniformly filled canvas of width x height logical
// units at the supersampled resolution. The background is fully opaque unless
// bg itself carries transparency.
func NewCanvas(width, height int, bg color.NRGBA) (*image.NRGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: canvas %dx%d", ErrInvalidDimension, width, height)
	}
	return imaging.New(width*Scale, height*Scale, bg), nil
}
