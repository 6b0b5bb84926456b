package term

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/cozy-creator/comfy-panel/internal/app"
	"github.com/cozy-creator/comfy-panel/internal/config"
	"github.com/cozy-creator/comfy-panel/internal/panel"
	"github.com/cozy-creator/comfy-panel/pkg/logger"
)

// Execute builds a text-rendering app from the loaded config and runs action
// for cmd. Logs stay quiet unless --verbose is set.
func Execute(cmd *cobra.Command, action Action) error {
	cfg, err := config.GetConfig()
	if err != nil {
		return err
	}

	l := zap.NewNop()
	if viper.GetBool("verbose") {
		if l, err = logger.NewLogger(cfg); err != nil {
			return err
		}
	}

	a, err := app.NewApp(cfg, app.WithTextRenderer(), app.WithLogger(l))
	if err != nil {
		return err
	}
	defer a.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	return Run(ctx, a.Panel(), cmd.OutOrStdout(), cmd.ErrOrStderr(), cmd.Name(), action)
}

// Check runs a read-only panel check for cmd with a "Checking..." spinner.
func Check(cmd *cobra.Command, check func(p *panel.Panel, ctx context.Context, d panel.Display) error) error {
	return Execute(cmd, func(ctx context.Context, p *panel.Panel, ctl panel.Control, d panel.Display) error {
		defer panel.Busy(ctl, p.Localizer().T("common.checking"))()
		return check(p, ctx, d)
	})
}
