// Package addcmd implements the `rampage add` command.
package addcmd

import (
	"github.com/spf13/cobra"

	"github.com/go-ports/rampage/cmd/rampage/shared"
	"github.com/go-ports/rampage/internal/menu"
)

// Command implements `rampage add`.
type Command struct {
	ctx  *shared.Context
	cmd  *cobra.Command
	parm shared.ParmFlags
}

// New creates the add command.
func New(ctx *shared.Context) *Command {
	c := &Command{ctx: ctx}
	c.cmd = &cobra.Command{
		Use:   "add --parm <file>",
		Short: "Save the parameter's current ramp as a new preset",
		Args:  cobra.NoArgs,
		RunE:  c.run,
	}
	c.parm.Register(c.cmd)
	return c
}

// Cmd returns the cobra command.
func (c *Command) Cmd() *cobra.Command { return c.cmd }

func (c *Command) run(cmd *cobra.Command, _ []string) error {
	return c.ctx.RunAction(cmd, &c.parm, (*menu.Controller).OnAdd)
}
