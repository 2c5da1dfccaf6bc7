// Package raster implements the image-compositing pipeline: canvas and shape
// generation, pixel transforms, compositing, rotation and preview encoding.
package raster

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// Recolor replaces the RGB channels of every visible pixel with c. Alpha is
// never touched, and fully transparent pixels keep their stored RGB values.
func Recolor(img image.Image, c color.NRGBA) *image.NRGBA {
	return imaging.AdjustFunc(img, func(p color.NRGBA) color.NRGBA {
		if p.A == 0 {
			return p
		}
		return color.NRGBA{R: c.R, G: c.G, B: c.B, A: p.A}
	})
}

// Retransparency scales every pixel's alpha by the opacity derived from the
// transparency percent. RGB channels are never touched.
func Retransparency(img image.Image, transparency int) (*image.NRGBA, error) {
	opacity, err := OpacityFromTransparency(transparency)
	if err != nil {
		return nil, err
	}
	return scaleAlpha(img, opacity), nil
}

func scaleAlpha(img image.Image, opacity uint8) *image.NRGBA {
	return imaging.AdjustFunc(img, func(p color.NRGBA) color.NRGBA {
		p.A = uint8((uint32(p.A)*uint32(opacity) + 127) / 255)
		return p
	})
}
