// Package raster implements the image-compositing pipeline: canvas and shape
// generation, pixel transforms, compositing, rotation and preview encoding.
package raster

import "errors"

// Pipeline errors surfaced by the operation wrappers.
var (
	// ErrInvalidColor is returned for malformed hex color strings.
	ErrInvalidColor = errors.New("raster: invalid color")

	// ErrInvalidDimension is returned when a width, height, radius or
	// repeat count is out of range.
	ErrInvalidDimension = errors.New("raster: invalid dimension")

	// ErrInvalidTransparency is returned when a transparency percent is
	// outside [0,100].
	ErrInvalidTransparency = errors.New("raster: transparency out of range")

	// ErrDownloadFailed is returned when a remote image cannot be fetched.
	ErrDownloadFailed = errors.New("raster: download failed")

	// ErrDecodeFailed is returned when a fetched payload is not a decodable image.
	ErrDecodeFailed = errors.New("raster: decode failed")
)
