// Package applycmd implements the `rampage apply` command.
package applycmd

import (
	"github.com/spf13/cobra"

	"github.com/go-ports/rampage/cmd/rampage/shared"
	"github.com/go-ports/rampage/internal/menu"
)

// Command implements `rampage apply`.
type Command struct {
	ctx   *shared.Context
	cmd   *cobra.Command
	parm  shared.ParmFlags
	token string
}

// New creates the apply command.
func New(ctx *shared.Context) *Command {
	c := &Command{ctx: ctx}
	c.cmd = &cobra.Command{
		Use:   "apply --parm <file>",
		Short: "Load a preset into the parameter",
		Long: `Load a preset into the parameter.

Without --token the presets of the parameter's kind are listed and one is
chosen interactively. With --token the preset whose menu token matches is
applied directly (see "rampage list --menu"); an unknown token does nothing.`,
		Args: cobra.NoArgs,
		RunE: c.run,
	}
	c.parm.Register(c.cmd)
	c.cmd.Flags().StringVar(&c.token, "token", "", "Menu token of the preset to apply")
	return c
}

// Cmd returns the cobra command.
func (c *Command) Cmd() *cobra.Command { return c.cmd }

func (c *Command) run(cmd *cobra.Command, _ []string) error {
	if c.token == "" {
		return c.ctx.RunAction(cmd, &c.parm, (*menu.Controller).OnApply)
	}
	return c.ctx.RunAction(cmd, &c.parm, func(ctl *menu.Controller, p menu.Parm) bool {
		return ctl.ApplyToken(p, c.token)
	})
}
