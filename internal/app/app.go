package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/cozy-creator/comfy-panel/internal/backend"
	"github.com/cozy-creator/comfy-panel/internal/config"
	"github.com/cozy-creator/comfy-panel/internal/github"
	"github.com/cozy-creator/comfy-panel/internal/i18n"
	"github.com/cozy-creator/comfy-panel/internal/panel"
	"github.com/cozy-creator/comfy-panel/internal/view"
	"github.com/cozy-creator/comfy-panel/pkg/logger"

	"go.uber.org/zap"
)

type App struct {
	config     *config.Config
	ctx        context.Context
	cancelFunc context.CancelFunc

	localizer i18n.Localizer
	renderer  view.Renderer
	backend   *backend.Client
	github    *github.Client
	panel     *panel.Panel

	Logger *zap.Logger
}

// Option funcs used to initialize the App struct
type OptionFunc func(app *App) error

func WithLogger(logger *zap.Logger) OptionFunc {
	return func(app *App) error {
		app.Logger = logger
		return nil
	}
}

// WithTextRenderer makes the panel render plain text for the terminal.
func WithTextRenderer() OptionFunc {
	return func(app *App) error {
		r, err := view.NewText()
		if err != nil {
			return err
		}
		app.renderer = r
		return nil
	}
}

// NewApp wires the panel for cfg. Without WithLogger it builds the
// environment's logger and installs it as zap's global; a supplied logger
// leaves the globals alone.
func NewApp(cfg *config.Config, options ...OptionFunc) (*App, error) {
	ctx, cancel := context.WithCancel(context.Background())

	app := &App{
		ctx:        ctx,
		config:     cfg,
		cancelFunc: cancel,
		localizer:  i18n.New(i18n.Match(cfg.Language)),
	}

	for _, opt := range options {
		if err := opt(app); err != nil {
			cancel()
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if app.Logger == nil {
		l, err := logger.InitLogger(cfg)
		if err != nil {
			cancel()
			return nil, err
		}
		app.Logger = l
	}

	if app.renderer == nil {
		r, err := view.NewHTML()
		if err != nil {
			cancel()
			return nil, err
		}
		app.renderer = r
	}

	app.backend = backend.NewClient(cfg.BackendURL,
		backend.WithTimeout(cfg.RequestTimeout),
		backend.WithLogger(app.Logger.Named("backend")),
	)
	app.github = github.NewClient(
		github.WithBaseURL(cfg.GithubAPIURL),
		github.WithToken(cfg.GithubToken),
		github.WithHTTPClient(&http.Client{Timeout: cfg.RequestTimeout}),
	)
	app.panel = panel.New(app.backend, app.github, app.renderer,
		panel.WithLocalizer(app.localizer),
		panel.WithLogger(app.Logger.Named("panel")),
	)

	return app, nil
}

func (app *App) Close() {
	app.cancelFunc()
	_ = app.Logger.Sync()
}

func (app *App) Config() *config.Config {
	return app.config
}

func (app *App) Context() context.Context {
	return app.ctx
}

func (app *App) Localizer() i18n.Localizer {
	return app.localizer
}

func (app *App) Renderer() view.Renderer {
	return app.renderer
}

func (app *App) Backend() *backend.Client {
	return app.backend
}

func (app *App) Panel() *panel.Panel {
	return app.panel
}
