// Package showcmd implements the `rampage show` command.
package showcmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/go-ports/rampage/cmd/rampage/shared"
	"github.com/go-ports/rampage/internal/ramp"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#8a8f98"))
)

// Command implements `rampage show`.
type Command struct {
	ctx     *shared.Context
	cmd     *cobra.Command
	rawJSON bool
}

// New creates the show command.
func New(ctx *shared.Context) *Command {
	c := &Command{ctx: ctx}
	c.cmd = &cobra.Command{
		Use:   "show <color|float> <name>",
		Short: "Print the control points of a preset",
		Args:  cobra.ExactArgs(2),
		RunE:  c.run,
	}
	c.cmd.Flags().BoolVar(&c.rawJSON, "json", false, "Print the stored ramp value as JSON")
	return c
}

// Cmd returns the cobra command.
func (c *Command) Cmd() *cobra.Command { return c.cmd }

func (c *Command) run(cmd *cobra.Command, args []string) error {
	kind, err := ramp.ParseKind(args[0])
	if err != nil {
		return err
	}
	name := args[1]
	r, err := c.ctx.Store().Get(kind, name)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if c.rawJSON {
		return printJSON(out, r)
	}

	fmt.Fprintln(out, headerStyle.Render(fmt.Sprintf("%s (%s)", name, kind)))
	n, err := ramp.Decode(r)
	if err != nil {
		// Not a basis/keys/values ramp; show it as stored.
		fmt.Fprintln(out, mutedStyle.Render("value is not in basis/keys/values form"))
		return printJSON(out, r)
	}
	points, err := n.Points()
	if err != nil {
		return err
	}
	color := n.Kind() == ramp.Color
	for i, p := range points {
		if color {
			hex := p.Hex()
			swatch := lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("    ")
			fmt.Fprintf(out, "%3d  %6.3f  %-10s %s %s\n", i, p.Key, p.Basis, hex, swatch)
			continue
		}
		fmt.Fprintf(out, "%3d  %6.3f  %-10s %g\n", i, p.Key, p.Basis, p.Scalar)
	}
	return nil
}

func printJSON(w io.Writer, r ramp.Ramp) error {
	b, err := json.MarshalIndent(r, "", "    ")
	if err != nil {
		return err
	}
	fmt.Fprintln(w, string(b))
	return nil
}
