package serve

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/cozy-creator/comfy-panel/internal/app"
	"github.com/cozy-creator/comfy-panel/internal/config"
	"github.com/cozy-creator/comfy-panel/internal/server"
	"github.com/cozy-creator/comfy-panel/internal/utils/maskutil"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var Cmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the control panel web UI",
	RunE:  runServe,
}

func init() {
	flags := Cmd.Flags()

	flags.Int("port", config.DefaultPort, "Port to serve the panel on")
	flags.String("host", config.DefaultHost, "Host to serve the panel on")
	flags.String("environment", config.EnvDev, "Environment configuration: dev, test or prod")
	flags.String("public-dir", "", "Serve /static from this directory instead of the embedded assets")
	flags.StringSlice("allowed-origins", nil, "Origins allowed to call the panel cross-site")
	flags.Duration("backend-wait", config.DefaultBackendWait, "How long to wait for the backend before serving, 0 to skip")
}

func runServe(_ *cobra.Command, _ []string) error {
	a, err := app.NewApp(config.MustGetConfig())
	if err != nil {
		return err
	}
	defer a.Close()

	cfg := a.Config()
	ctx := a.Context()

	a.Logger.Info("loaded config",
		zap.String("panel_home", cfg.PanelHome),
		zap.String("backend_url", cfg.BackendURL),
		zap.String("language", cfg.Language),
		zap.String("github_api_url", cfg.GithubAPIURL),
		zap.String("github_token", maskutil.Mask(cfg.GithubToken, 4, 4)),
	)

	// The page is still useful while the backend boots, so this only warns.
	if err := a.Backend().WaitReady(ctx, cfg.BackendWait); err != nil {
		a.Logger.Warn("backend not ready, serving anyway", zap.String("backend_url", cfg.BackendURL), zap.Error(err))
	}

	srv, err := server.NewServer(a)
	if err != nil {
		return err
	}
	srv.SetupRoutes()

	errc := make(chan error, 1)
	go func() {
		errc <- srv.Start()
	}()

	signalc := make(chan os.Signal, 1)
	signal.Notify(signalc, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errc:
		return err
	case <-signalc:
		return srv.Stop(ctx)
	}
}
