// Package listcmd implements the `rampage list` command.
package listcmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-ports/rampage/cmd/rampage/shared"
	"github.com/go-ports/rampage/internal/menu"
	"github.com/go-ports/rampage/internal/ramp"
)

// Command implements `rampage list`.
type Command struct {
	ctx      *shared.Context
	cmd      *cobra.Command
	menuMode bool
}

// New creates the list command.
func New(ctx *shared.Context) *Command {
	c := &Command{ctx: ctx}
	c.cmd = &cobra.Command{
		Use:       "list <color|float>",
		Short:     "List presets of one kind in menu order",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(ramp.Color), string(ramp.Float)},
		RunE:      c.run,
	}
	c.cmd.Flags().BoolVar(&c.menuMode, "menu", false, "Print the presets submenu as token<TAB>label lines")
	return c
}

// Cmd returns the cobra command.
func (c *Command) Cmd() *cobra.Command { return c.cmd }

func (c *Command) run(cmd *cobra.Command, args []string) error {
	kind, err := ramp.ParseKind(args[0])
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if c.menuMode {
		strip := c.ctx.Controller(cmd).MenuStrip(menu.Parm{Kind: kind})
		for i := 0; i+1 < len(strip); i += 2 {
			fmt.Fprintf(out, "%s\t%s\n", strip[i], strip[i+1])
		}
		return nil
	}

	names, err := c.ctx.Store().List(kind)
	if err != nil {
		return err
	}
	if len(names) == 0 {
		fmt.Fprintf(out, "No %s presets.\n", kind)
		return nil
	}
	for _, name := range names {
		fmt.Fprintln(out, name)
	}
	return nil
}
