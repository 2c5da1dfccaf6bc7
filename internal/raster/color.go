// Package raster implements the image-compositing pipeline: canvas and shape
// generation, pixel transforms, compositing, rotation and preview encoding.
package raster

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// ParseHexColor converts a 6-hex-digit string, with or without a leading #,
// into an opaque color.
func ParseHexColor(s string) (color.NRGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return color.NRGBA{}, fmt.Errorf("%w: %q must have 6 hex digits", ErrInvalidColor, s)
	}

	val, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}

	return color.NRGBA{
		R: uint8(val >> 16),
		G: uint8((val >> 8) & 0xFF),
		B: uint8(val & 0xFF),
		A: 255,
	}, nil
}

// FormatHexColor renders the RGB channels of c as a #RRGGBB string.
func FormatHexColor(c color.NRGBA) string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// OpacityFromTransparency converts a percent transparency in [0,100] to an
// opacity byte: 0 percent is fully opaque (255), 100 percent fully
// transparent (0).
func OpacityFromTransparency(transparency int) (uint8, error) {
	if transparency < 0 || transparency > 100 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidTransparency, transparency)
	}
	return uint8(255 - (255*transparency+50)/100), nil
}
