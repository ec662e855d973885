package ramp_test

import (
	"encoding/json"
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/go-ports/rampage/internal/ramp"
)

const floatRamp = `{"basis": ["linear", "linear"], "keys": [0, 1], "values": [0, 1]}`

const colorRamp = `{
	"basis": ["linear", "constant"],
	"keys": [0, 1],
	"values": [[1, 0, 0], [0, 0, 1]]
}`

// ---------------------------------------------------------------------------
// Kind
// ---------------------------------------------------------------------------

func TestParseKind_HappyPath(t *testing.T) {
	c := qt.New(t)

	for _, k := range ramp.Kinds {
		got, err := ramp.ParseKind(string(k))
		c.Assert(err, qt.IsNil)
		c.Assert(got, qt.Equals, k)
		c.Assert(got.Valid(), qt.IsTrue)
	}
}

func TestParseKind_FailurePath(t *testing.T) {
	c := qt.New(t)

	for _, in := range []string{"", "Color", "vector"} {
		_, err := ramp.ParseKind(in)
		c.Assert(err, qt.ErrorIs, ramp.ErrInvalidKind)
	}
	c.Assert(ramp.Kind("rgb").Valid(), qt.IsFalse)
}

// ---------------------------------------------------------------------------
// Ramp
// ---------------------------------------------------------------------------

func TestRamp_HappyPath(t *testing.T) {
	c := qt.New(t)

	c.Run("stored compact", func(c *qt.C) {
		r := ramp.MustFromJSON(floatRamp)
		c.Assert(r.String(), qt.Equals, `{"basis":["linear","linear"],"keys":[0,1],"values":[0,1]}`)
	})

	c.Run("equality ignores key order and whitespace", func(c *qt.C) {
		a := ramp.MustFromJSON(`{"keys":[0,1],"values":[0,1],"basis":["linear","linear"]}`)
		b := ramp.MustFromJSON(floatRamp)
		c.Assert(a.Equal(b), qt.IsTrue)
	})

	c.Run("different values are not equal", func(c *qt.C) {
		a := ramp.MustFromJSON(floatRamp)
		b := ramp.MustFromJSON(`{"basis":["linear","linear"],"keys":[0,1],"values":[0,0.5]}`)
		c.Assert(a.Equal(b), qt.IsFalse)
	})

	c.Run("zero values", func(c *qt.C) {
		var zero ramp.Ramp
		c.Assert(zero.IsZero(), qt.IsTrue)
		c.Assert(zero.String(), qt.Equals, "null")
		c.Assert(zero.Equal(ramp.Ramp{}), qt.IsTrue)
		c.Assert(zero.Equal(ramp.MustFromJSON(floatRamp)), qt.IsFalse)
		c.Assert(ramp.MustFromJSON("null").IsZero(), qt.IsTrue)
	})

	c.Run("survives embedding in a JSON document", func(c *qt.C) {
		type doc struct {
			Name string    `json:"name"`
			Ramp ramp.Ramp `json:"ramp"`
		}
		in := doc{Name: "x", Ramp: ramp.MustFromJSON(colorRamp)}
		b, err := json.Marshal(in)
		c.Assert(err, qt.IsNil)

		var out doc
		c.Assert(json.Unmarshal(b, &out), qt.IsNil)
		c.Assert(out.Name, qt.Equals, "x")
		c.Assert(out.Ramp.Equal(in.Ramp), qt.IsTrue)
	})

	c.Run("Bytes returns a copy", func(c *qt.C) {
		r := ramp.MustFromJSON(`[1]`)
		b := r.Bytes()
		b[0] = '{'
		c.Assert(r.String(), qt.Equals, "[1]")
	})
}

func TestRamp_FailurePath(t *testing.T) {
	c := qt.New(t)

	_, err := ramp.FromJSON([]byte(`{"keys": [0,`))
	c.Assert(err, qt.IsNotNil)

	c.Assert(func() { ramp.MustFromJSON("nope") }, qt.PanicMatches, "ramp.MustFromJSON: .*")
}

// ---------------------------------------------------------------------------
// Native
// ---------------------------------------------------------------------------

func TestDecode_HappyPath(t *testing.T) {
	c := qt.New(t)

	c.Run("float ramp", func(c *qt.C) {
		n, err := ramp.Decode(ramp.MustFromJSON(floatRamp))
		c.Assert(err, qt.IsNil)
		c.Assert(n.Kind(), qt.Equals, ramp.Float)

		points, err := n.Points()
		c.Assert(err, qt.IsNil)
		c.Assert(points, qt.HasLen, 2)
		c.Assert(points[1].Key, qt.Equals, 1.0)
		c.Assert(points[1].Scalar, qt.Equals, 1.0)
		c.Assert(points[1].Hex(), qt.Equals, "")
	})

	c.Run("color ramp", func(c *qt.C) {
		kind, err := ramp.DetectKind(ramp.MustFromJSON(colorRamp))
		c.Assert(err, qt.IsNil)
		c.Assert(kind, qt.Equals, ramp.Color)

		n, err := ramp.Decode(ramp.MustFromJSON(colorRamp))
		c.Assert(err, qt.IsNil)
		points, err := n.Points()
		c.Assert(err, qt.IsNil)
		c.Assert(points[0].Basis, qt.Equals, "linear")
		c.Assert(points[0].Hex(), qt.Equals, "#ff0000")
		c.Assert(points[1].Basis, qt.Equals, "constant")
		c.Assert(points[1].Hex(), qt.Equals, "#0000ff")
	})

	c.Run("out of range colors are clamped", func(c *qt.C) {
		p := ramp.Point{RGB: []float64{2, -1, 1}}
		c.Assert(p.Hex(), qt.Equals, "#ff00ff")
	})
}

func TestDecode_FailurePath(t *testing.T) {
	c := qt.New(t)

	cases := []struct {
		name string
		in   string
	}{
		{"not an object", `[1, 2, 3]`},
		{"missing values", `{"basis": [], "keys": []}`},
		{"length mismatch", `{"basis": ["linear"], "keys": [0, 1], "values": [0, 1]}`},
	}
	for _, tc := range cases {
		c.Run(tc.name, func(c *qt.C) {
			_, err := ramp.Decode(ramp.MustFromJSON(tc.in))
			c.Assert(err, qt.ErrorIs, ramp.ErrNotNative)
		})
	}

	c.Run("zero ramp", func(c *qt.C) {
		_, err := ramp.DetectKind(ramp.Ramp{})
		c.Assert(err, qt.ErrorIs, ramp.ErrNotNative)
	})

	c.Run("color value with wrong arity", func(c *qt.C) {
		n, err := ramp.Decode(ramp.MustFromJSON(`{"basis":["linear"],"keys":[0],"values":[[1,0]]}`))
		c.Assert(err, qt.IsNil)
		_, err = n.Points()
		c.Assert(err, qt.ErrorMatches, "point 0: color value has 2 components, want 3")
	})
}
