package launcher

import (
	"context"

	"github.com/cozy-creator/comfy-panel/internal/backend"
	"github.com/cozy-creator/comfy-panel/internal/panel"
	"github.com/cozy-creator/comfy-panel/internal/term"

	"github.com/spf13/cobra"
)

var Cmd = &cobra.Command{
	Use:   "launcher",
	Short: "Control the ComfyUI process",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return term.Check(cmd, (*panel.Panel).LauncherStatus)
	},
}

var diagnosticsCmd = &cobra.Command{
	Use:   "diagnostics",
	Short: "Show disk, git and Python diagnostics",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return term.Check(cmd, (*panel.Panel).Diagnostics)
	},
}

var systemCmd = &cobra.Command{
	Use:   "system",
	Short: "Show CPU, memory and GPU usage of the launcher host",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return term.Check(cmd, (*panel.Panel).SystemStatus)
	},
}

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List the launcher's saved presets",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return term.Check(cmd, (*panel.Panel).Presets)
	},
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent launches, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return term.Check(cmd, (*panel.Panel).History)
	},
}

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start ComfyUI",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return term.Execute(cmd, func(ctx context.Context, p *panel.Panel, ctl panel.Control, d panel.Display) error {
			return p.StartLauncher(ctx, ctl, d)
		})
	},
}

var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop ComfyUI",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")
		return term.Execute(cmd, func(ctx context.Context, p *panel.Panel, ctl panel.Control, d panel.Display) error {
			return p.StopLauncher(ctx, ctl, d, force)
		})
	},
}

var restartCmd = &cobra.Command{
	Use:   "restart",
	Short: "Restart ComfyUI",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return term.Execute(cmd, func(ctx context.Context, p *panel.Panel, ctl panel.Control, d panel.Display) error {
			return p.RestartLauncher(ctx, ctl, d)
		})
	},
}

var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "Show the launcher's captured output",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		flags := cmd.Flags()
		level, _ := flags.GetString("level")
		search, _ := flags.GetString("search")
		limit, _ := flags.GetInt("limit")

		q := backend.LogQuery{Level: level, Search: search, Limit: limit}
		return term.Check(cmd, func(p *panel.Panel, ctx context.Context, d panel.Display) error {
			return p.Logs(ctx, d, q)
		})
	},
}

var clearLogsCmd = &cobra.Command{
	Use:   "clear-logs",
	Short: "Clear the launcher's captured output",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return term.Execute(cmd, func(ctx context.Context, p *panel.Panel, ctl panel.Control, d panel.Display) error {
			return p.ClearLogs(ctx, ctl, d)
		})
	},
}

func init() {
	stopCmd.Flags().Bool("force", false, "Kill the process instead of asking it to exit")

	logsCmd.Flags().String("level", "", "Only show entries of this level: info, success, warning or error")
	logsCmd.Flags().String("search", "", "Only show entries containing this text")
	logsCmd.Flags().Int("limit", 0, "Maximum number of entries, 0 for the backend default")

	Cmd.AddCommand(diagnosticsCmd, systemCmd, presetsCmd, historyCmd, startCmd, stopCmd, restartCmd, logsCmd, clearLogsCmd)
}
