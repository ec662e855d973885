// Package shared holds the context passed to all CLI commands.
package shared

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/go-ports/rampage/internal/config"
	"github.com/go-ports/rampage/internal/menu"
	"github.com/go-ports/rampage/internal/preset"
	"github.com/go-ports/rampage/internal/ramp"
	"github.com/go-ports/rampage/internal/terminal"
)

// ErrReported is returned by commands whose failure was already shown to the
// user. main exits non-zero without printing it again.
var ErrReported = errors.New("error already reported")

// Context carries global CLI state (flags set on the root command).
type Context struct {
	// Root overrides the installation root.
	// When empty, resolution falls through to RAMPAGE_ROOT env var → persisted config → ~/.rampage.
	Root string
	// PresetsPath overrides the presets directory.
	// When empty, resolution falls through to RAMPAGE_PRESETS_PATH env var → persisted config → <root>/presets.
	PresetsPath string
	// Debug enables debug logging.
	Debug bool

	logCloser io.Closer
}

// Paths resolves the root and presets directories for this invocation.
func (c *Context) Paths() config.Paths {
	return config.Resolve(config.Overrides{Root: c.Root, Presets: c.PresetsPath})
}

// Store opens the preset store at the resolved presets directory.
func (c *Context) Store() *preset.Store {
	return preset.NewStore(c.Paths().Presets)
}

// SetLogCloser records the log sink to close when the command finishes.
func (c *Context) SetLogCloser(cl io.Closer) { c.logCloser = cl }

// Close releases resources acquired for the command.
func (c *Context) Close() error {
	if c.logCloser == nil {
		return nil
	}
	err := c.logCloser.Close()
	c.logCloser = nil
	return err
}

// ---------------------------------------------------------------------------
// Menu actions
// ---------------------------------------------------------------------------

// ParmFlags holds the flags that identify the ramp parameter a menu action
// works on.
type ParmFlags struct {
	Path string
	Kind string
}

// Register adds --parm and --kind to cmd.
func (f *ParmFlags) Register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.Path, "parm", "", "Path to the JSON file holding the ramp parameter value (required)")
	cmd.Flags().StringVar(&f.Kind, "kind", "", "Ramp kind: color or float (default: detected from the value)")
	_ = cmd.MarkFlagRequired("parm")
}

// Parm resolves the flags into a menu parameter.
func (f *ParmFlags) Parm() (menu.Parm, error) {
	var kind ramp.Kind
	if f.Kind != "" {
		k, err := ramp.ParseKind(f.Kind)
		if err != nil {
			return menu.Parm{}, err
		}
		kind = k
	}
	return terminal.ParmFor(f.Path, kind)
}

// Action is a controller method run by a menu command.
type Action func(c *menu.Controller, p menu.Parm) (failed bool)

// RunAction runs action against the parameter named by flags, prompting on
// cmd's input and output streams.
func (c *Context) RunAction(cmd *cobra.Command, flags *ParmFlags, action Action) error {
	p, err := flags.Parm()
	if err != nil {
		return err
	}
	ctl := c.Controller(cmd)
	if !ctl.ShouldDisplay([]menu.Parm{p}) {
		return fmt.Errorf("%s is not a ramp parameter", p.Handle)
	}
	if action(ctl, p) {
		return ErrReported
	}
	return nil
}

// Controller builds a menu controller over the store and a terminal host bound
// to cmd's streams.
func (c *Context) Controller(cmd *cobra.Command) *menu.Controller {
	host := terminal.New(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
	return menu.New(c.Store(), host)
}
