// Package catalog registers the fixed set of image operations available as
// graph nodes, with the typed signatures used to validate node arguments.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/rasterflow/core/internal/raster"
)

// Lookup and argument errors, classified with errors.Is by callers.
var (
	// ErrUnknownOperation is returned when a node names an operation that
	// is not registered.
	ErrUnknownOperation = errors.New("catalog: unknown operation")

	// ErrBadArgument is returned when a literal value does not fit the
	// declared parameter type.
	ErrBadArgument = errors.New("catalog: bad argument")
)

// OpKind enumerates the operation identifiers a graph node may reference.
type OpKind string

const (
	OpCreateCanvas       OpKind = "create_canvas"
	OpCircle             OpKind = "circle"
	OpRectangle          OpKind = "rectangle"
	OpDownloadImage      OpKind = "download_image"
	OpRecolor            OpKind = "recolor"
	OpRetransparency     OpKind = "retransparency"
	OpOverlay            OpKind = "overlay"
	OpRectangularPattern OpKind = "rectangular_pattern"
	OpRotate             OpKind = "rotate"
	OpPreview            OpKind = "preview"
)

// ParamType is the semantic type of one operation parameter. Image-typed
// parameters are ports: they can only be satisfied by an upstream node.
type ParamType string

const (
	TypeInt    ParamType = "int"
	TypeFloat  ParamType = "float"
	TypeString ParamType = "string"
	TypeColor  ParamType = "color"
	TypeImage  ParamType = "image"
)

// ResultKind is what an operation produces: a raster for further composition
// or a display-ready preview.
type ResultKind string

const (
	ResultImage   ResultKind = "image"
	ResultPreview ResultKind = "preview"
)

type ParamSpec struct {
	Name string    `json:"name"`
	Type ParamType `json:"type"`
}

// OpSpec is one registered operation: its identifier, ordered parameter list
// and result type, plus the wrapper the runner invokes.
type OpSpec struct {
	Kind   OpKind      `json:"op"`
	Params []ParamSpec `json:"params"`
	Result ResultKind  `json:"result"`

	apply func(ctx context.Context, args Args) (Value, error)
}

// Apply invokes the operation with fully resolved arguments.
func (s OpSpec) Apply(ctx context.Context, args Args) (Value, error) {
	return s.apply(ctx, args)
}

// Param looks up a parameter spec by name.
func (s OpSpec) Param(name string) (ParamSpec, bool) {
	for _, p := range s.Params {
		if p.Name == name {
			return p, true
		}
	}
	return ParamSpec{}, false
}

// Args holds one node's resolved arguments keyed by parameter name. Values
// are already converted to their semantic types, so the accessors do not
// re-validate.
type Args map[string]any

func (a Args) Int(name string) int {
	v, _ := a[name].(int)
	return v
}

func (a Args) Float(name string) float64 {
	v, _ := a[name].(float64)
	return v
}

func (a Args) String(name string) string {
	v, _ := a[name].(string)
	return v
}

func (a Args) Color(name string) color.NRGBA {
	v, _ := a[name].(color.NRGBA)
	return v
}

func (a Args) Image(name string) *image.NRGBA {
	v, _ := a[name].(*image.NRGBA)
	return v
}

// Value is an operation result; exactly one field is set, matching the
// operation's declared ResultKind.
type Value struct {
	Image   *image.NRGBA
	Preview *raster.Preview
}

// Registry is the process-wide operation catalog. It is built once at
// startup and handed to whoever needs to validate or execute graphs; there
// is no ambient global lookup.
type Registry struct {
	ops  map[OpKind]OpSpec
	keys []OpKind
}

func (r *Registry) register(spec OpSpec) {
	r.ops[spec.Kind] = spec
	r.keys = append(r.keys, spec.Kind)
}

// Lookup resolves an operation identifier from a graph document.
func (r *Registry) Lookup(op string) (OpSpec, bool) {
	spec, ok := r.ops[OpKind(op)]
	return spec, ok
}

// Specs lists every registered operation in registration order.
func (r *Registry) Specs() []OpSpec {
	specs := make([]OpSpec, 0, len(r.keys))
	for _, k := range r.keys {
		specs = append(specs, r.ops[k])
	}
	return specs
}

// CheckLiteral verifies that a literal parameter value from a graph document
// has the right JSON shape for its declared type. Value-level validation
// (color format, ranges) is left to execution so that a bad literal fails
// only its own node.
func CheckLiteral(p ParamSpec, v any) error {
	switch p.Type {
	case TypeInt:
		if _, ok := intValue(v); !ok {
			return fmt.Errorf("%w: param %q must be an integer", ErrBadArgument, p.Name)
		}
	case TypeFloat:
		if _, ok := floatValue(v); !ok {
			return fmt.Errorf("%w: param %q must be a number", ErrBadArgument, p.Name)
		}
	case TypeString, TypeColor:
		if _, ok := v.(string); !ok {
			return fmt.Errorf("%w: param %q must be a string", ErrBadArgument, p.Name)
		}
	case TypeImage:
		return fmt.Errorf("%w: param %q is an image port and cannot take a literal", ErrBadArgument, p.Name)
	default:
		return fmt.Errorf("%w: param %q has unknown type %q", ErrBadArgument, p.Name, p.Type)
	}
	return nil
}

// ResolveLiteral converts a literal parameter value into its runtime
// representation: int, string or parsed color.
func ResolveLiteral(p ParamSpec, v any) (any, error) {
	switch p.Type {
	case TypeInt:
		n, ok := intValue(v)
		if !ok {
			return nil, fmt.Errorf("%w: param %q must be an integer", ErrBadArgument, p.Name)
		}
		return n, nil
	case TypeFloat:
		f, ok := floatValue(v)
		if !ok {
			return nil, fmt.Errorf("%w: param %q must be a number", ErrBadArgument, p.Name)
		}
		return f, nil
	case TypeString:
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("%w: param %q must be a string", ErrBadArgument, p.Name)
		}
		return s, nil
	case TypeColor:
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("%w: param %q must be a string", ErrBadArgument, p.Name)
		}
		return raster.ParseHexColor(s)
	}
	return nil, fmt.Errorf("%w: param %q cannot take a literal", ErrBadArgument, p.Name)
}

// JSON numbers decode as float64; graphs built in process may carry plain ints.
func intValue(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case float64:
		if n == math.Trunc(n) {
			return int(n), true
		}
	}
	return 0, false
}

func floatValue(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	}
	return 0, false
}
