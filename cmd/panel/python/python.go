package python

import (
	"context"

	"github.com/cozy-creator/comfy-panel/internal/panel"
	"github.com/cozy-creator/comfy-panel/internal/term"

	"github.com/spf13/cobra"
)

var Cmd = &cobra.Command{
	Use:   "python",
	Short: "Check the Python environment used by the launcher",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return term.Check(cmd, (*panel.Panel).CheckPython)
	},
}

var findCmd = &cobra.Command{
	Use:   "find",
	Short: "List Python environments found on this machine",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return term.Check(cmd, (*panel.Panel).FindPython)
	},
}

var useCmd = &cobra.Command{
	Use:   "use <path>",
	Short: "Make the launcher use this Python executable",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var path string
		if len(args) > 0 {
			path = args[0]
		}

		return term.Execute(cmd, func(ctx context.Context, p *panel.Panel, ctl panel.Control, d panel.Display) error {
			return p.SavePythonPath(ctx, ctl, d, path)
		})
	},
}

func init() {
	Cmd.AddCommand(findCmd, useCmd)
}
