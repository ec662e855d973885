// Package rootcmd wires the root cobra.Command for the rampage CLI binary.
package rootcmd

import (
	"github.com/spf13/cobra"

	addcmd "github.com/go-ports/rampage/cmd/rampage/add"
	applycmd "github.com/go-ports/rampage/cmd/rampage/apply"
	configcmd "github.com/go-ports/rampage/cmd/rampage/config"
	initcmd "github.com/go-ports/rampage/cmd/rampage/init"
	listcmd "github.com/go-ports/rampage/cmd/rampage/list"
	mcpcmd "github.com/go-ports/rampage/cmd/rampage/mcp"
	removecmd "github.com/go-ports/rampage/cmd/rampage/remove"
	renamecmd "github.com/go-ports/rampage/cmd/rampage/rename"
	replacecmd "github.com/go-ports/rampage/cmd/rampage/replace"
	"github.com/go-ports/rampage/cmd/rampage/shared"
	showcmd "github.com/go-ports/rampage/cmd/rampage/show"
	"github.com/go-ports/rampage/internal/buildinfo"
	"github.com/go-ports/rampage/internal/logging"
)

// New creates and returns the root cobra.Command for the rampage CLI.
func New() *cobra.Command {
	ctx := &shared.Context{}

	root := &cobra.Command{
		Use:           "rampage",
		Short:         "Rampage: save and reuse color and float ramp presets",
		Version:       buildinfo.Summary(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          func(cmd *cobra.Command, _ []string) error { return cmd.Help() },
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			ctx.SetLogCloser(logging.Setup(ctx.Paths().LogDir(), ctx.Debug))
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			_ = ctx.Close()
		},
	}

	root.PersistentFlags().StringVar(
		&ctx.Root, "root", "",
		"Override installation root (default: $RAMPAGE_ROOT env → persisted config → ~/.rampage)",
	)
	root.PersistentFlags().StringVar(
		&ctx.PresetsPath, "presets-path", "",
		"Override presets directory (default: $RAMPAGE_PRESETS_PATH env → persisted config → <root>/presets)",
	)
	root.PersistentFlags().BoolVar(&ctx.Debug, "debug", false, "Write debug entries to the log file")

	root.AddCommand(
		initcmd.New(ctx).Cmd(),
		listcmd.New(ctx).Cmd(),
		showcmd.New(ctx).Cmd(),
		addcmd.New(ctx).Cmd(),
		replacecmd.New(ctx).Cmd(),
		removecmd.New(ctx).Cmd(),
		applycmd.New(ctx).Cmd(),
		renamecmd.New(ctx).Cmd(),
		configcmd.New(ctx).Cmd(),
		mcpcmd.New(ctx).Cmd(),
	)

	return root
}
