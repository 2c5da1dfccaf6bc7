// Package raster implements the image-compositing pipeline: canvas and shape
// generation, pixel transforms, compositing, rotation and preview encoding.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"
)

// Overlay composites over onto a copy of base at the logical offset (x, y),
// alpha-blended with the given opacity byte. The overlay is cropped to the
// base bounds, so any offset is safe; the result always has the base's size
// and base itself is never mutated.
func Overlay(base, over image.Image, x, y int, opacity uint8) *image.NRGBA {
	pos := image.Pt(x*Scale, y*Scale)
	return imaging.Overlay(base, over, pos, float64(opacity)/255)
}

// Pattern lays countX x countY copies of tile on a transparent canvas at grid
// offsets of stepX and stepY logical units. Later copies blend over earlier
// ones. The canvas ends at the last tile's far edge on each axis, so a 1x1
// pattern reproduces the tile itself.
func Pattern(tile image.Image, countX, countY, stepX, stepY int) (*image.NRGBA, error) {
	if countX < 0 || countY < 0 {
		return nil, fmt.Errorf("%w: repeat count %dx%d", ErrInvalidDimension, countX, countY)
	}
	if stepX < 0 || stepY < 0 {
		return nil, fmt.Errorf("%w: step %dx%d", ErrInvalidDimension, stepX, stepY)
	}
	if countX == 0 || countY == 0 {
		return image.NewNRGBA(image.Rect(0, 0, 0, 0)), nil
	}

	src := imaging.Clone(tile)
	width := (countX-1)*stepX*Scale + src.Bounds().Dx()
	height := (countY-1)*stepY*Scale + src.Bounds().Dy()

	dst := imaging.New(width, height, color.NRGBA{})
	for j := 0; j < countY; j++ {
		for i := 0; i < countX; i++ {
			pos := image.Pt(i*stepX*Scale, j*stepY*Scale)
			draw.Draw(dst, src.Bounds().Add(pos), src, image.Point{}, draw.Over)
		}
	}

	return dst, nil
}
