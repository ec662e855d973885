// Package renamecmd implements the `rampage rename` command.
package renamecmd

import (
	"github.com/spf13/cobra"

	"github.com/go-ports/rampage/cmd/rampage/shared"
	"github.com/go-ports/rampage/internal/menu"
)

// Command implements `rampage rename`.
type Command struct {
	ctx  *shared.Context
	cmd  *cobra.Command
	parm shared.ParmFlags
}

// New creates the rename command.
func New(ctx *shared.Context) *Command {
	c := &Command{ctx: ctx}
	c.cmd = &cobra.Command{
		Use:   "rename --parm <file>",
		Short: "Rename a preset",
		Args:  cobra.NoArgs,
		RunE:  c.run,
	}
	c.parm.Register(c.cmd)
	return c
}

// Cmd returns the cobra command.
func (c *Command) Cmd() *cobra.Command { return c.cmd }

func (c *Command) run(cmd *cobra.Command, _ []string) error {
	return c.ctx.RunAction(cmd, &c.parm, (*menu.Controller).OnRename)
}
