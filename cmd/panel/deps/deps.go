package deps

import (
	"context"

	"github.com/cozy-creator/comfy-panel/internal/panel"
	"github.com/cozy-creator/comfy-panel/internal/term"

	"github.com/spf13/cobra"
)

var Cmd = &cobra.Command{
	Use:   "deps",
	Short: "Check ComfyUI's Python requirements",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return term.Check(cmd, (*panel.Panel).CheckDependencies)
	},
}

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install missing requirements",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return term.Execute(cmd, func(ctx context.Context, p *panel.Panel, ctl panel.Control, d panel.Display) error {
			return p.InstallDependencies(ctx, ctl, d)
		})
	},
}

func init() {
	Cmd.AddCommand(installCmd)
}
