// Package catalog registers the fixed set of image operations available as
// graph nodes, with the typed signatures used to validate node arguments.
package catalog

import (
	"context"
	"fmt"
	"image/color"

	"github.com/rasterflow/core/internal/raster"
)

// NewRegistry builds the full operation catalog. The fetcher handle backs
// the download_image operation; everything else is pure.
func NewRegistry(fetcher *raster.Fetcher) *Registry {
	r := &Registry{ops: make(map[OpKind]OpSpec)}

	r.register(OpSpec{
		Kind: OpCreateCanvas,
		Params: []ParamSpec{
			{Name: "width", Type: TypeInt},
			{Name: "height", Type: TypeInt},
			{Name: "background_color", Type: TypeColor},
		},
		Result: ResultImage,
		apply: func(ctx context.Context, args Args) (Value, error) {
			img, err := raster.NewCanvas(args.Int("width"), args.Int("height"), args.Color("background_color"))
			if err != nil {
				return Value{}, err
			}
			return Value{Image: img}, nil
		},
	})

	r.register(OpSpec{
		Kind: OpCircle,
		Params: []ParamSpec{
			{Name: "radius", Type: TypeInt},
			{Name: "color", Type: TypeColor},
			{Name: "transparency", Type: TypeInt},
		},
		Result: ResultImage,
		apply: func(ctx context.Context, args Args) (Value, error) {
			fill, err := resolveFill(args)
			if err != nil {
				return Value{}, err
			}
			img, err := raster.Circle(args.Int("radius"), fill)
			if err != nil {
				return Value{}, err
			}
			return Value{Image: img}, nil
		},
	})

	r.register(OpSpec{
		Kind: OpRectangle,
		Params: []ParamSpec{
			{Name: "width", Type: TypeInt},
			{Name: "height", Type: TypeInt},
			{Name: "color", Type: TypeColor},
			{Name: "transparency", Type: TypeInt},
		},
		Result: ResultImage,
		apply: func(ctx context.Context, args Args) (Value, error) {
			fill, err := resolveFill(args)
			if err != nil {
				return Value{}, err
			}
			img, err := raster.Rectangle(args.Int("width"), args.Int("height"), fill)
			if err != nil {
				return Value{}, err
			}
			return Value{Image: img}, nil
		},
	})

	r.register(OpSpec{
		Kind: OpDownloadImage,
		Params: []ParamSpec{
			{Name: "url", Type: TypeString},
			{Name: "width", Type: TypeInt},
			{Name: "height", Type: TypeInt},
		},
		Result: ResultImage,
		apply: func(ctx context.Context, args Args) (Value, error) {
			img, err := fetcher.Fetch(ctx, args.String("url"), args.Int("width"), args.Int("height"))
			if err != nil {
				return Value{}, err
			}
			return Value{Image: img}, nil
		},
	})

	r.register(OpSpec{
		Kind: OpRecolor,
		Params: []ParamSpec{
			{Name: "image", Type: TypeImage},
			{Name: "color", Type: TypeColor},
		},
		Result: ResultImage,
		apply: func(ctx context.Context, args Args) (Value, error) {
			return Value{Image: raster.Recolor(args.Image("image"), args.Color("color"))}, nil
		},
	})

	r.register(OpSpec{
		Kind: OpRetransparency,
		Params: []ParamSpec{
			{Name: "image", Type: TypeImage},
			{Name: "transparency", Type: TypeInt},
		},
		Result: ResultImage,
		apply: func(ctx context.Context, args Args) (Value, error) {
			img, err := raster.Retransparency(args.Image("image"), args.Int("transparency"))
			if err != nil {
				return Value{}, err
			}
			return Value{Image: img}, nil
		},
	})

	r.register(OpSpec{
		Kind: OpOverlay,
		Params: []ParamSpec{
			{Name: "base", Type: TypeImage},
			{Name: "overlay", Type: TypeImage},
			{Name: "x", Type: TypeInt},
			{Name: "y", Type: TypeInt},
			{Name: "opacity", Type: TypeInt},
		},
		Result: ResultImage,
		apply: func(ctx context.Context, args Args) (Value, error) {
			// Unlike the shape operations, opacity here is a raw byte,
			// not a transparency percent.
			opacity := args.Int("opacity")
			if opacity < 0 || opacity > 255 {
				return Value{}, fmt.Errorf("%w: opacity %d outside 0..255", ErrBadArgument, opacity)
			}
			out := raster.Overlay(args.Image("base"), args.Image("overlay"), args.Int("x"), args.Int("y"), uint8(opacity))
			return Value{Image: out}, nil
		},
	})

	r.register(OpSpec{
		Kind: OpRectangularPattern,
		Params: []ParamSpec{
			{Name: "image", Type: TypeImage},
			{Name: "count_x", Type: TypeInt},
			{Name: "count_y", Type: TypeInt},
			{Name: "step_x", Type: TypeInt},
			{Name: "step_y", Type: TypeInt},
		},
		Result: ResultImage,
		apply: func(ctx context.Context, args Args) (Value, error) {
			img, err := raster.Pattern(args.Image("image"),
				args.Int("count_x"), args.Int("count_y"),
				args.Int("step_x"), args.Int("step_y"))
			if err != nil {
				return Value{}, err
			}
			return Value{Image: img}, nil
		},
	})

	r.register(OpSpec{
		Kind: OpRotate,
		Params: []ParamSpec{
			{Name: "image", Type: TypeImage},
			{Name: "degrees", Type: TypeFloat},
		},
		Result: ResultImage,
		apply: func(ctx context.Context, args Args) (Value, error) {
			return Value{Image: raster.Rotate(args.Image("image"), args.Float("degrees"))}, nil
		},
	})

	r.register(OpSpec{
		Kind: OpPreview,
		Params: []ParamSpec{
			{Name: "image", Type: TypeImage},
		},
		Result: ResultPreview,
		apply: func(ctx context.Context, args Args) (Value, error) {
			preview, err := raster.RenderPreview(args.Image("image"))
			if err != nil {
				return Value{}, err
			}
			return Value{Preview: &preview}, nil
		},
	})

	return r
}

// resolveFill combines a shape's color and transparency percent into the
// fill color actually drawn.
func resolveFill(args Args) (color.NRGBA, error) {
	opacity, err := raster.OpacityFromTransparency(args.Int("transparency"))
	if err != nil {
		return color.NRGBA{}, err
	}
	c := args.Color("color")
	c.A = opacity
	return c, nil
}
