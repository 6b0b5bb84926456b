package pytorch

import (
	"context"

	"github.com/cozy-creator/comfy-panel/internal/panel"
	"github.com/cozy-creator/comfy-panel/internal/term"

	"github.com/spf13/cobra"
)

var Cmd = &cobra.Command{
	Use:   "pytorch",
	Short: "Inspect and install PyTorch",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return term.Check(cmd, (*panel.Panel).CheckPyTorch)
	},
}

var versionsCmd = &cobra.Command{
	Use:   "versions",
	Short: "List installable PyTorch builds",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return term.Check(cmd, (*panel.Panel).LoadPyTorchVersions)
	},
}

var installCmd = &cobra.Command{
	Use:   "install <version-key>",
	Short: "Install a PyTorch build, e.g. 2.5.1+cu124",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return term.Execute(cmd, func(ctx context.Context, p *panel.Panel, ctl panel.Control, d panel.Display) error {
			return p.InstallPyTorch(ctx, ctl, d, firstArg(args))
		})
	},
}

func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

func init() {
	Cmd.AddCommand(versionsCmd, installCmd)
}
