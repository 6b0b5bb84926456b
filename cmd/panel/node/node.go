package node

import (
	"context"

	"github.com/cozy-creator/comfy-panel/internal/panel"
	"github.com/cozy-creator/comfy-panel/internal/term"

	"github.com/spf13/cobra"
)

var Cmd = &cobra.Command{
	Use:     "node",
	Aliases: []string{"nodes"},
	Short:   "Manage ComfyUI custom nodes",
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List installed custom nodes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return term.Check(cmd, (*panel.Panel).ScanNodes)
	},
}

var installCmd = &cobra.Command{
	Use:   "install <git-url>",
	Short: "Clone a custom node repository",
	Args:  cobra.MaximumNArgs(1),
	RunE:  nodeAction((*panel.Panel).InstallNode),
}

var updateCmd = &cobra.Command{
	Use:   "update <name>",
	Short: "Pull the latest version of a custom node",
	Args:  cobra.MaximumNArgs(1),
	RunE:  nodeAction((*panel.Panel).UpdateNode),
}

var deleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Remove a custom node",
	Args:  cobra.MaximumNArgs(1),
	RunE:  nodeAction((*panel.Panel).DeleteNode),
}

var enableCmd = &cobra.Command{
	Use:   "enable <name>",
	Short: "Enable a disabled custom node",
	Args:  cobra.MaximumNArgs(1),
	RunE:  toggle(true),
}

var disableCmd = &cobra.Command{
	Use:   "disable <name>",
	Short: "Disable a custom node without deleting it",
	Args:  cobra.MaximumNArgs(1),
	RunE:  toggle(false),
}

var searchCmd = &cobra.Command{
	Use:   "search <author>",
	Short: "Find ComfyUI node repositories by a GitHub user or organization",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		author := arg(args)
		return term.Execute(cmd, func(ctx context.Context, p *panel.Panel, ctl panel.Control, d panel.Display) error {
			return p.SearchAuthor(ctx, ctl, d, author)
		})
	},
}

type action func(p *panel.Panel, ctx context.Context, ctl panel.Control, d panel.Display, arg string) error

// Missing arguments go through as "" so the panel reports them like the UI does.
func nodeAction(a action) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		value := arg(args)
		return term.Execute(cmd, func(ctx context.Context, p *panel.Panel, ctl panel.Control, d panel.Display) error {
			return a(p, ctx, ctl, d, value)
		})
	}
}

func toggle(enable bool) func(*cobra.Command, []string) error {
	return nodeAction(func(p *panel.Panel, ctx context.Context, ctl panel.Control, d panel.Display, name string) error {
		return p.ToggleNode(ctx, ctl, d, name, enable)
	})
}

func arg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

func init() {
	Cmd.AddCommand(listCmd, installCmd, updateCmd, deleteCmd, enableCmd, disableCmd, searchCmd)
}
