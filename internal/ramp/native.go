package ramp

import (
	"encoding/json"
	"errors"
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ErrNotNative is returned by Decode when a ramp does not have the
// {basis, keys, values} shape.
var ErrNotNative = errors.New("ramp is not in native basis/keys/values form")

// Native is the decoded host-native ramp shape: one basis name, key position
// and value per control point. Values are scalars for float ramps and RGB
// triples for color ramps.
type Native struct {
	Basis  []string          `json:"basis"`
	Keys   []float64         `json:"keys"`
	Values []json.RawMessage `json:"values"`
}

// Point is a single decoded control point.
type Point struct {
	Basis string
	Key   float64
	// Scalar is set for float ramps.
	Scalar float64
	// RGB is set for color ramps.
	RGB []float64
}

// Decode interprets r as a Native ramp and checks that basis, keys and values
// have the same length.
func Decode(r Ramp) (*Native, error) {
	if r.IsZero() {
		return nil, ErrNotNative
	}
	var n Native
	if err := json.Unmarshal(r.raw, &n); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotNative, err)
	}
	if n.Keys == nil || n.Values == nil {
		return nil, ErrNotNative
	}
	if len(n.Basis) != len(n.Keys) || len(n.Keys) != len(n.Values) {
		return nil, fmt.Errorf("%w: basis, keys and values must have the same length (%d, %d, %d)",
			ErrNotNative, len(n.Basis), len(n.Keys), len(n.Values))
	}
	return &n, nil
}

// Kind infers the ramp kind from the first value: an array means color.
// An empty ramp is reported as Float.
func (n *Native) Kind() Kind {
	if len(n.Values) > 0 && len(n.Values[0]) > 0 && n.Values[0][0] == '[' {
		return Color
	}
	return Float
}

// Points returns the decoded control points in order.
func (n *Native) Points() ([]Point, error) {
	kind := n.Kind()
	points := make([]Point, len(n.Keys))
	for i := range n.Keys {
		p := Point{Basis: n.Basis[i], Key: n.Keys[i]}
		switch kind {
		case Color:
			if err := json.Unmarshal(n.Values[i], &p.RGB); err != nil {
				return nil, fmt.Errorf("point %d: %w", i, err)
			}
			if len(p.RGB) != 3 {
				return nil, fmt.Errorf("point %d: color value has %d components, want 3", i, len(p.RGB))
			}
		default:
			if err := json.Unmarshal(n.Values[i], &p.Scalar); err != nil {
				return nil, fmt.Errorf("point %d: %w", i, err)
			}
		}
		points[i] = p
	}
	return points, nil
}

// Hex formats an RGB point value (components in 0..1) as #rrggbb.
// Out-of-range components are clamped.
func (p Point) Hex() string {
	if len(p.RGB) != 3 {
		return ""
	}
	return colorful.Color{R: p.RGB[0], G: p.RGB[1], B: p.RGB[2]}.Clamped().Hex()
}

// DetectKind decodes r and returns its kind.
func DetectKind(r Ramp) (Kind, error) {
	n, err := Decode(r)
	if err != nil {
		return "", err
	}
	return n.Kind(), nil
}
