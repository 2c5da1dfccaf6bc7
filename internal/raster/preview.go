// Package raster implements the image-compositing pipeline: canvas and shape
// generation, pixel transforms, compositing, rotation and preview encoding.
package raster

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// Preview is a self-contained displayable rendering of a raster: the image
// downsampled to logical resolution, PNG-encoded and wrapped in a data URI.
type Preview struct {
	Data   string `json:"data"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// RenderPreview downsamples img by the supersampling factor with a Lanczos
// filter and encodes it for embedding.
func RenderPreview(img image.Image) (Preview, error) {
	b := img.Bounds()
	width, height := b.Dx()/Scale, b.Dy()/Scale
	if width < 1 || height < 1 {
		return Preview{}, fmt.Errorf("%w: raster %dx%d too small to preview", ErrInvalidDimension, b.Dx(), b.Dy())
	}

	small := imaging.Resize(img, width, height, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, small, imaging.PNG); err != nil {
		return Preview{}, fmt.Errorf("encode preview: %w", err)
	}

	return Preview{
		Data:   "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()),
		Width:  width,
		Height: height,
	}, nil
}
