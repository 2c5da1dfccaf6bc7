// Package catalog registers the fixed set of image operations available as
// graph nodes, with the typed signatures used to validate node arguments.
package catalog

import (
	"context"
	"image/color"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rasterflow/core/internal/raster"
)

func mustApply(t *testing.T, reg *Registry, op string, args Args) Value {
	t.Helper()
	spec, ok := reg.Lookup(op)
	require.True(t, ok)
	val, err := spec.Apply(context.Background(), args)
	require.NoError(t, err)
	return val
}

func applyErr(t *testing.T, reg *Registry, op string, args Args) error {
	t.Helper()
	spec, ok := reg.Lookup(op)
	require.True(t, ok)
	_, err := spec.Apply(context.Background(), args)
	require.Error(t, err)
	return err
}

func TestCreateCanvasOp(t *testing.T) {
	reg := testRegistry()

	t.Run("produces a supersampled canvas", func(t *testing.T) {
		val := mustApply(t, reg, "create_canvas", Args{
			"width": 100, "height": 60, "background_color": color.NRGBA{R: 255, G: 255, B: 255, A: 255},
		})

		require.NotNil(t, val.Image)
		assert.Equal(t, 100*raster.Scale, val.Image.Bounds().Dx())
		assert.Equal(t, 60*raster.Scale, val.Image.Bounds().Dy())
	})

	t.Run("invalid dimensions fail the node", func(t *testing.T) {
		err := applyErr(t, reg, "create_canvas", Args{
			"width": 0, "height": 60, "background_color": color.NRGBA{A: 255},
		})
		assert.ErrorIs(t, err, raster.ErrInvalidDimension)
	})
}

func TestShapeOps(t *testing.T) {
	reg := testRegistry()

	t.Run("circle resolves transparency into the fill", func(t *testing.T) {
		val := mustApply(t, reg, "circle", Args{
			"radius": 10, "color": color.NRGBA{R: 255, A: 255}, "transparency": 0,
		})

		require.NotNil(t, val.Image)
		assert.Equal(t, 80, val.Image.Bounds().Dx())
		assert.Equal(t, 80, val.Image.Bounds().Dy())
		assert.Equal(t, color.NRGBA{R: 255, A: 255}, val.Image.NRGBAAt(40, 40))
		assert.Equal(t, uint8(0), val.Image.NRGBAAt(0, 0).A)
	})

	t.Run("rectangle applies the percent as alpha", func(t *testing.T) {
		val := mustApply(t, reg, "rectangle", Args{
			"width": 2, "height": 2, "color": color.NRGBA{R: 255, A: 255}, "transparency": 50,
		})

		require.NotNil(t, val.Image)
		assert.Equal(t, uint8(127), val.Image.NRGBAAt(4, 4).A)
	})

	t.Run("transparency outside the percent range fails", func(t *testing.T) {
		err := applyErr(t, reg, "circle", Args{
			"radius": 5, "color": color.NRGBA{A: 255}, "transparency": 150,
		})
		assert.ErrorIs(t, err, raster.ErrInvalidTransparency)
	})
}

func TestDownloadImageOp(t *testing.T) {
	t.Run("fetches through the registry's fetcher", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_ = imaging.Encode(w, imaging.New(6, 6, color.NRGBA{G: 200, A: 255}), imaging.PNG)
		}))
		defer srv.Close()

		reg := NewRegistry(raster.NewFetcher(5 * time.Second))
		val := mustApply(t, reg, "download_image", Args{"url": srv.URL, "width": 2, "height": 2})

		require.NotNil(t, val.Image)
		assert.Equal(t, 2*raster.Scale, val.Image.Bounds().Dx())
	})

	t.Run("server errors fail the node", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}))
		defer srv.Close()

		reg := NewRegistry(raster.NewFetcher(5 * time.Second))
		err := applyErr(t, reg, "download_image", Args{"url": srv.URL, "width": 2, "height": 2})
		assert.ErrorIs(t, err, raster.ErrDownloadFailed)
	})
}

func TestPixelTransformOps(t *testing.T) {
	reg := testRegistry()

	t.Run("recolor keeps alpha and swaps RGB", func(t *testing.T) {
		tile := imaging.New(2, 2, color.NRGBA{R: 9, G: 9, B: 9, A: 120})

		val := mustApply(t, reg, "recolor", Args{"image": tile, "color": color.NRGBA{B: 255, A: 255}})

		require.NotNil(t, val.Image)
		assert.Equal(t, color.NRGBA{B: 255, A: 120}, val.Image.NRGBAAt(0, 0))
	})

	t.Run("retransparency rejects out-of-range percents", func(t *testing.T) {
		tile := imaging.New(2, 2, color.NRGBA{A: 255})

		err := applyErr(t, reg, "retransparency", Args{"image": tile, "transparency": -1})
		assert.ErrorIs(t, err, raster.ErrInvalidTransparency)
	})
}

func TestOverlayOp(t *testing.T) {
	reg := testRegistry()

	t.Run("composites at the base size", func(t *testing.T) {
		base := imaging.New(8, 8, color.NRGBA{A: 255})
		over := imaging.New(4, 4, color.NRGBA{R: 255, A: 255})

		val := mustApply(t, reg, "overlay", Args{
			"base": base, "overlay": over, "x": 0, "y": 0, "opacity": 255,
		})

		require.NotNil(t, val.Image)
		assert.Equal(t, base.Bounds(), val.Image.Bounds())
	})

	t.Run("opacity is a byte, not a percent", func(t *testing.T) {
		base := imaging.New(4, 4, color.NRGBA{A: 255})
		over := imaging.New(4, 4, color.NRGBA{R: 255, A: 255})

		err := applyErr(t, reg, "overlay", Args{
			"base": base, "overlay": over, "x": 0, "y": 0, "opacity": 300,
		})
		assert.Contains(t, err.Error(), "0..255")
	})
}

func TestPatternAndRotateOps(t *testing.T) {
	reg := testRegistry()

	t.Run("pattern tiles onto a grid", func(t *testing.T) {
		tile := imaging.New(raster.Scale, raster.Scale, color.NRGBA{R: 255, A: 255})

		val := mustApply(t, reg, "rectangular_pattern", Args{
			"image": tile, "count_x": 3, "count_y": 2, "step_x": 1, "step_y": 1,
		})

		require.NotNil(t, val.Image)
		assert.Equal(t, 3*raster.Scale, val.Image.Bounds().Dx())
		assert.Equal(t, 2*raster.Scale, val.Image.Bounds().Dy())
	})

	t.Run("rotate swaps dimensions on a quarter turn", func(t *testing.T) {
		tile := imaging.New(8, 4, color.NRGBA{R: 255, A: 255})

		val := mustApply(t, reg, "rotate", Args{"image": tile, "degrees": 90.0})

		require.NotNil(t, val.Image)
		assert.Equal(t, 4, val.Image.Bounds().Dx())
		assert.Equal(t, 8, val.Image.Bounds().Dy())
	})

	t.Run("rotate accepts fractional angles and expands the canvas", func(t *testing.T) {
		tile := imaging.New(8, 4, color.NRGBA{R: 255, A: 255})

		val := mustApply(t, reg, "rotate", Args{"image": tile, "degrees": 45.5})

		require.NotNil(t, val.Image)
		assert.Greater(t, val.Image.Bounds().Dx(), 8)
		assert.Greater(t, val.Image.Bounds().Dy(), 4)
	})
}

func TestPreviewOp(t *testing.T) {
	reg := testRegistry()

	t.Run("returns an embeddable payload instead of a raster", func(t *testing.T) {
		canvas, err := raster.NewCanvas(4, 4, color.NRGBA{R: 1, G: 2, B: 3, A: 255})
		require.NoError(t, err)

		val := mustApply(t, reg, "preview", Args{"image": canvas})

		require.NotNil(t, val.Preview)
		assert.Nil(t, val.Image)
		assert.Equal(t, 4, val.Preview.Width)
		assert.Equal(t, 4, val.Preview.Height)
		assert.True(t, strings.HasPrefix(val.Preview.Data, "data:image/png;base64,"))
	})
}
