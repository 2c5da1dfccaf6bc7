// Package raster implements the image-compositing pipeline: canvas and shape
// generation, pixel transforms, compositing, rotation and preview encoding.
package raster

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// Rotate turns img counter-clockwise by the given angle in degrees, expanding
// the canvas to the bounding box of the rotated content. Newly exposed
// regions are transparent.
func Rotate(img image.Image, degrees float64) *image.NRGBA {
	return imaging.Rotate(img, degrees, color.NRGBA{})
}
