// Package configcmd implements the `rampage config` command group.
package configcmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/go-ports/rampage/cmd/rampage/shared"
	"github.com/go-ports/rampage/internal/config"
)

// Command implements `rampage config`.
type Command struct {
	ctx *shared.Context
	cmd *cobra.Command
}

// New creates the config command group.
func New(ctx *shared.Context) *Command {
	c := &Command{ctx: ctx}
	c.cmd = &cobra.Command{
		Use:   "config",
		Short: "Show or manage configuration",
		Args:  cobra.NoArgs,
		RunE:  c.runShow,
	}
	c.cmd.AddCommand(
		newSet("set-presets <path>", "Persist the presets directory (used when RAMPAGE_PRESETS_PATH is unset)",
			config.KeyPresets, "presets directory", config.EnvPresets),
		newClear("clear-presets", "Remove the persisted presets directory from global config",
			config.KeyPresets, "presets directory"),
		newSet("set-root <path>", "Persist the installation root (used when RAMPAGE_ROOT is unset)",
			config.KeyRoot, "root", config.EnvRoot),
		newClear("clear-root", "Remove the persisted installation root from global config",
			config.KeyRoot, "root"),
	)
	return c
}

// Cmd returns the cobra command.
func (c *Command) Cmd() *cobra.Command { return c.cmd }

func (c *Command) runShow(cmd *cobra.Command, _ []string) error {
	cfgPath, err := config.GlobalConfigPath()
	if err != nil {
		return err
	}
	paths := c.ctx.Paths()
	data := struct {
		config.Paths `yaml:",inline"`
		LogDir       string `yaml:"log_dir"`
		ConfigFile   string `yaml:"config_file"`
	}{paths, paths.LogDir(), cfgPath}

	b, err := yaml.Marshal(data)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), string(b))
	return nil
}

// ---------------------------------------------------------------------------
// config set-presets / set-root
// ---------------------------------------------------------------------------

func newSet(use, short, key, label, env string) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resolved, err := config.SetPersisted(key, args[0])
			if err != nil {
				return err
			}
			if key == config.KeyPresets {
				if err := os.MkdirAll(resolved, 0o755); err != nil {
					return err
				}
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Persisted %s: %s\n", label, resolved)
			fmt.Fprintf(out, "Override anytime with %s.\n", env)
			return nil
		},
	}
}

// ---------------------------------------------------------------------------
// config clear-presets / clear-root
// ---------------------------------------------------------------------------

func newClear(use, short, key, label string) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			changed, err := config.ClearPersisted(key)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if changed {
				fmt.Fprintf(out, "Cleared persisted %s setting.\n", label)
			} else {
				fmt.Fprintf(out, "No persisted %s setting was found.\n", label)
			}
			return nil
		},
	}
}
