// Package menu turns host menu invocations into preset store calls.
//
// The controller holds no state beyond its collaborators. Each On* method runs
// one menu action to completion: it gathers input through the Host, calls the
// store and pushes results back. Cancelled prompts are no-ops. Errors never
// escape: they are logged and rendered with Host.ShowError, and the method
// reports whether the action failed so bindings can set an exit status.
package menu

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-ports/rampage/internal/preset"
	"github.com/go-ports/rampage/internal/ramp"
)

// Parm identifies a ramp parameter inside the host.
type Parm struct {
	// Handle is the host-specific reference to the parameter.
	Handle string
	Kind   ramp.Kind
}

// Host is the slice of the host application the controller needs.
type Host interface {
	// ReadRamp returns the parameter's current ramp value.
	ReadRamp(p Parm) (ramp.Ramp, error)
	// WriteRamp sets the parameter's live ramp value.
	WriteRamp(p Parm, r ramp.Ramp) error
	// PromptText asks for a line of text. ok is false when the user cancelled.
	PromptText(message string) (value string, ok bool, err error)
	// PromptSelect asks the user to pick one of options. ok is false when the
	// user cancelled.
	PromptSelect(message string, options []string) (value string, ok bool, err error)
	// ShowError displays an error dialog.
	ShowError(message string)
}

// Store is the preset store API used by the controller.
type Store interface {
	List(kind ramp.Kind) ([]string, error)
	Get(kind ramp.Kind, name string) (ramp.Ramp, error)
	Add(kind ramp.Kind, name string, r ramp.Ramp) error
	Replace(kind ramp.Kind, name string, r ramp.Ramp) error
	Remove(kind ramp.Kind, name string) error
	Rename(kind ramp.Kind, oldName, newName string) error
}

// Controller bridges host menu events to a Store.
type Controller struct {
	store Store
	host  Host
}

// New returns a Controller.
func New(store Store, host Host) *Controller {
	return &Controller{store: store, host: host}
}

// ShouldDisplay reports whether the preset menu applies to the selection:
// exactly one parameter of a known ramp kind.
func (*Controller) ShouldDisplay(parms []Parm) bool {
	return len(parms) == 1 && parms[0].Kind.Valid()
}

// ---------------------------------------------------------------------------
// Menu actions
// ---------------------------------------------------------------------------

// OnAdd prompts for a name and saves the parameter's current ramp under it.
// A taken or empty name is reported and the prompt repeated until the user
// picks a free name or cancels.
func (c *Controller) OnAdd(p Parm) (failed bool) {
	r, err := c.host.ReadRamp(p)
	if err != nil {
		return c.fail("add", p, fmt.Errorf("cannot read ramp: %w", err))
	}

	for {
		name, ok, err := c.host.PromptText("Name of the preset:")
		if err != nil {
			return c.fail("add", p, err)
		}
		if !ok {
			return false
		}

		err = c.store.Add(p.Kind, name, r)
		switch {
		case err == nil:
			return false
		case errors.Is(err, preset.ErrDuplicateName), errors.Is(err, preset.ErrInvalidName):
			c.report("add", p, err)
			continue
		default:
			return c.fail("add", p, err)
		}
	}
}

// OnReplace lets the user pick a preset and overwrites it with the
// parameter's current ramp.
func (c *Controller) OnReplace(p Parm) (failed bool) {
	name, ok, err := c.selectPreset(p, "Select preset to replace")
	if err != nil {
		return c.fail("replace", p, err)
	}
	if !ok {
		return false
	}
	r, err := c.host.ReadRamp(p)
	if err != nil {
		return c.fail("replace", p, fmt.Errorf("cannot read ramp: %w", err))
	}
	if err := c.store.Replace(p.Kind, name, r); err != nil {
		return c.fail("replace", p, err)
	}
	return false
}

// OnRemove lets the user pick a preset and deletes it.
func (c *Controller) OnRemove(p Parm) (failed bool) {
	name, ok, err := c.selectPreset(p, "Select preset to remove")
	if err != nil {
		return c.fail("remove", p, err)
	}
	if !ok {
		return false
	}
	if err := c.store.Remove(p.Kind, name); err != nil {
		return c.fail("remove", p, err)
	}
	return false
}

// OnApply lets the user pick a preset and loads it into the parameter.
func (c *Controller) OnApply(p Parm) (failed bool) {
	name, ok, err := c.selectPreset(p, "Select preset to apply")
	if err != nil {
		return c.fail("apply", p, err)
	}
	if !ok {
		return false
	}
	return c.apply(p, name)
}

// OnRename lets the user pick a preset and prompts for its new name.
func (c *Controller) OnRename(p Parm) (failed bool) {
	oldName, ok, err := c.selectPreset(p, "Select preset to rename")
	if err != nil {
		return c.fail("rename", p, err)
	}
	if !ok {
		return false
	}

	for {
		newName, ok, err := c.host.PromptText(fmt.Sprintf("New name for %q:", oldName))
		if err != nil {
			return c.fail("rename", p, err)
		}
		if !ok {
			return false
		}

		err = c.store.Rename(p.Kind, oldName, newName)
		switch {
		case err == nil:
			return false
		case errors.Is(err, preset.ErrDuplicateName), errors.Is(err, preset.ErrInvalidName):
			c.report("rename", p, err)
			continue
		default:
			return c.fail("rename", p, err)
		}
	}
}

// ---------------------------------------------------------------------------
// Presets submenu
// ---------------------------------------------------------------------------

// MenuStrip returns the presets submenu as alternating token and label
// entries. It never fails: a store error is logged and yields an empty strip.
func (c *Controller) MenuStrip(p Parm) []string {
	names, err := c.store.List(p.Kind)
	if err != nil {
		slog.Warn("menu strip unavailable", "kind", p.Kind, "err", err)
		return make([]string, 0)
	}
	items := make([]string, 0, 2*len(names))
	for _, name := range names {
		items = append(items, Token(name), name)
	}
	return items
}

// ApplyToken loads the preset whose menu token is token into the parameter.
// An unknown token is a no-op.
func (c *Controller) ApplyToken(p Parm, token string) (failed bool) {
	names, err := c.store.List(p.Kind)
	if err != nil {
		return c.fail("apply", p, err)
	}
	for _, name := range names {
		if Token(name) == token {
			return c.apply(p, name)
		}
	}
	slog.Debug("menu token matches no preset", "kind", p.Kind, "token", token)
	return false
}

// ---------------------------------------------------------------------------
// helpers
// ---------------------------------------------------------------------------

func (c *Controller) apply(p Parm, name string) bool {
	r, err := c.store.Get(p.Kind, name)
	if err != nil {
		return c.fail("apply", p, err)
	}
	if err := c.host.WriteRamp(p, r); err != nil {
		return c.fail("apply", p, fmt.Errorf("cannot set ramp: %w", err))
	}
	return false
}

// selectPreset lists the presets of p's kind and asks the user to pick one.
// An empty collection is reported to the user and treated as cancelled.
func (c *Controller) selectPreset(p Parm, message string) (string, bool, error) {
	names, err := c.store.List(p.Kind)
	if err != nil {
		return "", false, err
	}
	if len(names) == 0 {
		c.host.ShowError(fmt.Sprintf("There are no %s ramp presets yet.", p.Kind))
		return "", false, nil
	}
	return c.host.PromptSelect(message, names)
}

// report logs err and shows it to the user.
func (c *Controller) report(action string, p Parm, err error) {
	slog.Warn("menu action failed", "action", action, "kind", p.Kind, "parm", p.Handle, "err", err)
	c.host.ShowError(Message(err))
}

// fail reports err and returns true.
func (c *Controller) fail(action string, p Parm, err error) bool {
	c.report(action, p, err)
	return true
}

// Message renders err for an error dialog.
func Message(err error) string {
	switch {
	case errors.Is(err, preset.ErrDuplicateName):
		return "A preset with this name already exists. Choose another name."
	case errors.Is(err, preset.ErrInvalidName):
		return "The preset name must not be empty."
	case errors.Is(err, preset.ErrNotFound):
		return "The selected preset no longer exists."
	case errors.Is(err, preset.ErrMalformedFile):
		return "The preset file could not be read. Fix or move it, then try again.\n\n" + err.Error()
	case errors.Is(err, preset.ErrIOFailure):
		return "The preset file could not be saved. Nothing was changed.\n\n" + err.Error()
	default:
		return err.Error()
	}
}
