// Package panel implements the control panel's actions. Every action reads
// its input, validates it, makes one backend call and renders the answer into
// the regions it owns. Front-ends supply the triggering Control and the
// Display explicitly.
package panel

import (
	"context"
	"runtime"
	"time"

	"go.uber.org/zap"

	"github.com/cozy-creator/comfy-panel/internal/backend"
	"github.com/cozy-creator/comfy-panel/internal/github"
	"github.com/cozy-creator/comfy-panel/internal/i18n"
	"github.com/cozy-creator/comfy-panel/internal/view"
)

// Region identifies a display area. Each action writes only to its own.
type Region string

const (
	RegionLauncher        Region = "launcher-status"
	RegionPyTorchStatus   Region = "pytorch-status"
	RegionPyTorchVersions Region = "pytorch-versions"
	RegionPythonStatus    Region = "python-status"
	RegionPythonEnvs      Region = "python-envs"
	RegionDeps            Region = "deps-status"
	RegionDepsOutput      Region = "deps-output"
	RegionNodes           Region = "nodes-list"
	RegionSearch          Region = "search-results"
	RegionDiagnostics     Region = "diagnostics"
	RegionSystem          Region = "system-status"
	RegionPresets         Region = "presets"
	RegionHistory         Region = "history"
	RegionLogs            Region = "logs"
)

// Regions lists every region in page order.
var Regions = []Region{
	RegionLauncher,
	RegionPyTorchStatus,
	RegionPyTorchVersions,
	RegionPythonStatus,
	RegionPythonEnvs,
	RegionDeps,
	RegionDepsOutput,
	RegionNodes,
	RegionSearch,
	RegionDiagnostics,
	RegionSystem,
	RegionPresets,
	RegionHistory,
	RegionLogs,
}

type Level string

const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	// LevelAlert is a blocking modal.
	LevelAlert Level = "alert"
	LevelError Level = "error"
)

type Notice struct {
	Level   Level  `json:"level"`
	Message string `json:"message"`
}

// Display receives rendered output. Implementations must be safe for
// concurrent use; Refresh renders several regions at once.
type Display interface {
	Replace(region Region, content string)
	Notify(n Notice)
}

// Control is the button (or terminal equivalent) that triggered an action.
type Control interface {
	Label() string
	SetLabel(label string)
	Disabled() bool
	SetDisabled(disabled bool)
}

type Backend interface {
	PyTorchInfo(ctx context.Context) (*backend.PyTorchInfo, error)
	PyTorchVersions(ctx context.Context) (backend.PyTorchVersions, error)
	InstallPyTorch(ctx context.Context, versionKey string) (*backend.ActionResult, error)
	PythonCheck(ctx context.Context) (*backend.PythonCheck, error)
	FindPython(ctx context.Context) ([]backend.PythonEnv, error)
	SavePythonExecutable(ctx context.Context, path string) (*backend.ActionResult, error)
	CheckDependencies(ctx context.Context) (*backend.DependencyReport, error)
	InstallDependencies(ctx context.Context) (*backend.ActionResult, error)
	ScanNodes(ctx context.Context) ([]backend.CustomNode, error)
	InstallNode(ctx context.Context, gitURL string) (*backend.ActionResult, error)
	ToggleNode(ctx context.Context, name string, enable bool) (*backend.ActionResult, error)
	DeleteNode(ctx context.Context, name string) (*backend.ActionResult, error)
	UpdateNode(ctx context.Context, name string) (*backend.ActionResult, error)
	DownloadModel(ctx context.Context, modelURL, savePath string) (*backend.ActionResult, error)
	Diagnostics(ctx context.Context) (*backend.Diagnostics, error)
	Status(ctx context.Context) (*backend.LauncherStatus, error)
	System(ctx context.Context) (*backend.SystemStatus, error)
	Presets(ctx context.Context) (backend.Presets, error)
	History(ctx context.Context) ([]backend.HistoryEntry, error)
	Logs(ctx context.Context, q backend.LogQuery) ([]backend.LogEntry, error)
	ClearLogs(ctx context.Context) (*backend.ActionResult, error)
	Start(ctx context.Context) (*backend.ActionResult, error)
	Stop(ctx context.Context, force bool) (*backend.ActionResult, error)
	Restart(ctx context.Context) (*backend.ActionResult, error)
}

type Searcher interface {
	SearchByAuthor(ctx context.Context, author string) (*github.SearchResult, error)
}

type Panel struct {
	backend  Backend
	searcher Searcher
	renderer view.Renderer
	loc      i18n.Localizer
	logger   *zap.Logger
	workers  int
	// location is where rate limit reset times are shown.
	location *time.Location
}

type Option func(*Panel)

func WithLocalizer(loc i18n.Localizer) Option {
	return func(p *Panel) {
		p.loc = loc
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(p *Panel) {
		p.logger = logger
	}
}

func WithTimeLocation(location *time.Location) Option {
	return func(p *Panel) {
		p.location = location
	}
}

// WithRefreshWorkers bounds how many status checks Refresh runs at once.
func WithRefreshWorkers(n int) Option {
	return func(p *Panel) {
		if n > 0 {
			p.workers = n
		}
	}
}

func New(b Backend, s Searcher, r view.Renderer, opts ...Option) *Panel {
	p := &Panel{
		backend:  b,
		searcher: s,
		renderer: r,
		loc:      i18n.New(i18n.Default),
		logger:   zap.NewNop(),
		workers:  runtime.NumCPU(),
		location: time.Local,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Panel) Localizer() i18n.Localizer {
	return p.loc
}

// render writes a template into region. A template failure is a programming
// error, so it is logged and surfaced like any other failure.
func (p *Panel) render(d Display, region Region, name string, data any) error {
	out, err := p.renderer.Render(p.loc, name, data)
	if err != nil {
		p.logger.Error("render failed", zap.String("template", name), zap.Error(err))
		return err
	}
	d.Replace(region, out)
	return nil
}
