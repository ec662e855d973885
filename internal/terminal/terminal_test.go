package terminal_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/go-ports/rampage/internal/checkers"
	"github.com/go-ports/rampage/internal/menu"
	"github.com/go-ports/rampage/internal/ramp"
	"github.com/go-ports/rampage/internal/terminal"
)

const colorRampJSON = `{"basis":["linear","linear"],"keys":[0,1],"values":[[1,0,0],[0,0,1]]}`

func newHost(input string) (*terminal.Host, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return terminal.New(strings.NewReader(input), &out, &errOut), &out, &errOut
}

func writeParm(c *qt.C, content string) string {
	c.Helper()
	path := filepath.Join(c.TB.TempDir(), "parm.json")
	c.Assert(os.WriteFile(path, []byte(content), 0o644), qt.IsNil)
	return path
}

// ---------------------------------------------------------------------------
// ReadRamp / WriteRamp / ParmFor
// ---------------------------------------------------------------------------

func TestReadWriteRamp_HappyPath(t *testing.T) {
	c := qt.New(t)
	h, _, _ := newHost("")

	path := writeParm(c, colorRampJSON)
	r, err := h.ReadRamp(menu.Parm{Handle: path})
	c.Assert(err, qt.IsNil)
	c.Assert(r.Equal(ramp.MustFromJSON(colorRampJSON)), qt.IsTrue)

	target := filepath.Join(t.TempDir(), "nested", "out.json")
	c.Assert(h.WriteRamp(menu.Parm{Handle: target}, r), qt.IsNil)

	data, err := os.ReadFile(target)
	c.Assert(err, qt.IsNil)
	c.Assert(data, checkers.JSONPathEquals("$.basis[1]"), "linear")
	c.Assert(data, checkers.JSONPathEquals("$.keys[1]"), float64(1))
}

func TestReadRamp_FailurePath(t *testing.T) {
	c := qt.New(t)
	h, _, _ := newHost("")

	_, err := h.ReadRamp(menu.Parm{Handle: filepath.Join(t.TempDir(), "missing.json")})
	c.Assert(err, qt.ErrorIs, terminal.ErrNoRamp)

	_, err = h.ReadRamp(menu.Parm{Handle: writeParm(c, "{not json")})
	c.Assert(err, qt.IsNotNil)
}

func TestParmFor_HappyPath(t *testing.T) {
	c := qt.New(t)

	c.Run("explicit kind skips detection", func(c *qt.C) {
		p, err := terminal.ParmFor("/does/not/exist.json", ramp.Float)
		c.Assert(err, qt.IsNil)
		c.Assert(p, qt.Equals, menu.Parm{Handle: "/does/not/exist.json", Kind: ramp.Float})
	})

	c.Run("kind detected from file", func(c *qt.C) {
		path := writeParm(c, colorRampJSON)
		p, err := terminal.ParmFor(path, "")
		c.Assert(err, qt.IsNil)
		c.Assert(p.Kind, qt.Equals, ramp.Color)
	})
}

func TestParmFor_FailurePath(t *testing.T) {
	c := qt.New(t)

	_, err := terminal.ParmFor("/x.json", ramp.Kind("vector"))
	c.Assert(err, qt.ErrorIs, ramp.ErrInvalidKind)

	_, err = terminal.ParmFor(filepath.Join(t.TempDir(), "missing.json"), "")
	c.Assert(err, qt.ErrorMatches, "cannot detect ramp kind.*")

	_, err = terminal.ParmFor(writeParm(c, `{"opaque": true}`), "")
	c.Assert(err, qt.ErrorIs, ramp.ErrNotNative)
}

// ---------------------------------------------------------------------------
// Prompts
// ---------------------------------------------------------------------------

func TestPromptText_HappyPath(t *testing.T) {
	c := qt.New(t)

	h, out, _ := newHost("sunset\r\nlast line without newline")
	v, ok, err := h.PromptText("Name of the preset:")
	c.Assert(err, qt.IsNil)
	c.Assert(ok, qt.IsTrue)
	c.Assert(v, qt.Equals, "sunset")

	v, ok, err = h.PromptText("Name of the preset:")
	c.Assert(err, qt.IsNil)
	c.Assert(ok, qt.IsTrue)
	c.Assert(v, qt.Equals, "last line without newline")

	_, ok, err = h.PromptText("Name of the preset:")
	c.Assert(err, qt.IsNil)
	c.Assert(ok, qt.IsFalse)

	c.Assert(out.String(), qt.Equals, "")
}

func TestPromptText_Interactive(t *testing.T) {
	c := qt.New(t)

	h, out, _ := newHost("x\n")
	h.SetInteractive(true)
	_, _, err := h.PromptText("Name of the preset:")
	c.Assert(err, qt.IsNil)
	c.Assert(out.String(), qt.Equals, "Name of the preset: ")
}

func TestPromptSelect_HappyPath(t *testing.T) {
	c := qt.New(t)
	options := []string{"alpha", "2", "gamma"}

	cases := []struct {
		name   string
		input  string
		want   string
		wantOK bool
	}{
		{"by name", "gamma\n", "gamma", true},
		{"by number", "1\n", "alpha", true},
		{"exact name beats number", "2\n", "2", true},
		{"number of numeric-looking option", "3\n", "gamma", true},
		{"empty line cancels", "\n", "", false},
		{"end of input cancels", "", "", false},
		{"invalid then valid", "delta\n9\nalpha\n", "alpha", true},
	}
	for _, tc := range cases {
		c.Run(tc.name, func(c *qt.C) {
			h, _, _ := newHost(tc.input)
			got, ok, err := h.PromptSelect("Select preset", options)
			c.Assert(err, qt.IsNil)
			c.Assert(ok, qt.Equals, tc.wantOK)
			c.Assert(got, qt.Equals, tc.want)
		})
	}

	c.Run("invalid choices are reported", func(c *qt.C) {
		h, _, errOut := newHost("delta\n")
		_, ok, err := h.PromptSelect("Select preset", options)
		c.Assert(err, qt.IsNil)
		c.Assert(ok, qt.IsFalse)
		c.Assert(errOut.String(), qt.Equals, "No preset matches \"delta\".\n")
	})

	c.Run("interactive mode lists options", func(c *qt.C) {
		h, out, _ := newHost("1\n")
		h.SetInteractive(true)
		_, _, err := h.PromptSelect("Select preset to apply", options)
		c.Assert(err, qt.IsNil)
		c.Assert(out.String(), qt.Equals, "Select preset to apply\n  1) alpha\n  2) 2\n  3) gamma\n> ")
	})
}

func TestShowError_HappyPath(t *testing.T) {
	c := qt.New(t)

	h, out, errOut := newHost("")
	h.ShowError("The selected preset no longer exists.")
	c.Assert(out.String(), qt.Equals, "")
	c.Assert(errOut.String(), qt.Equals, "Error: The selected preset no longer exists.\n")
}
