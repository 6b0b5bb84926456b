package model

import (
	"context"

	"github.com/cozy-creator/comfy-panel/internal/backend"
	"github.com/cozy-creator/comfy-panel/internal/panel"
	"github.com/cozy-creator/comfy-panel/internal/term"

	"github.com/spf13/cobra"
)

var Cmd = &cobra.Command{
	Use:   "model",
	Short: "Download models",
}

var downloadCmd = &cobra.Command{
	Use:   "download <url>",
	Short: "Start a model download on the backend",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var modelURL string
		if len(args) > 0 {
			modelURL = args[0]
		}
		savePath, _ := cmd.Flags().GetString("save-path")

		return term.Execute(cmd, func(ctx context.Context, p *panel.Panel, ctl panel.Control, d panel.Display) error {
			return p.DownloadModel(ctx, ctl, d, modelURL, savePath)
		})
	},
}

func init() {
	downloadCmd.Flags().String("save-path", backend.DefaultModelSavePath, "Directory under ComfyUI to save into")
	Cmd.AddCommand(downloadCmd)
}
