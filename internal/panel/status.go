package panel

import (
	"context"
	"errors"

	"github.com/gammazero/workerpool"
	"go.uber.org/zap"

	"github.com/cozy-creator/comfy-panel/internal/backend"
	"github.com/cozy-creator/comfy-panel/internal/view"
)

// Status checks never notify the user on failure. The error is logged,
// returned, and the region keeps whatever it showed before.

func (p *Panel) statusFailed(check string, err error) error {
	p.logger.Warn("status check failed", zap.String("check", check), zap.Error(err))
	return err
}

func (p *Panel) CheckPyTorch(ctx context.Context, d Display) error {
	info, err := p.backend.PyTorchInfo(ctx)
	if err != nil {
		return p.statusFailed("pytorch", err)
	}
	return p.render(d, RegionPyTorchStatus, view.PyTorchStatus, info)
}

func (p *Panel) LoadPyTorchVersions(ctx context.Context, d Display) error {
	versions, err := p.backend.PyTorchVersions(ctx)
	if err != nil {
		return p.statusFailed("pytorch_versions", err)
	}
	return p.render(d, RegionPyTorchVersions, view.PyTorchVersions, view.VersionOptions(versions))
}

func (p *Panel) CheckPython(ctx context.Context, d Display) error {
	check, err := p.backend.PythonCheck(ctx)
	if err != nil {
		return p.statusFailed("python", err)
	}
	return p.render(d, RegionPythonStatus, view.PythonStatus, check)
}

func (p *Panel) FindPython(ctx context.Context, d Display) error {
	envs, err := p.backend.FindPython(ctx)
	if err != nil {
		return p.statusFailed("python_envs", err)
	}
	return p.render(d, RegionPythonEnvs, view.PythonEnvs, envs)
}

func (p *Panel) CheckDependencies(ctx context.Context, d Display) error {
	report, err := p.backend.CheckDependencies(ctx)
	if err != nil {
		return p.statusFailed("dependencies", err)
	}
	return p.render(d, RegionDeps, view.Deps, view.NewDepsSummary(report))
}

func (p *Panel) ScanNodes(ctx context.Context, d Display) error {
	nodes, err := p.backend.ScanNodes(ctx)
	if err != nil {
		return p.statusFailed("nodes", err)
	}
	return p.render(d, RegionNodes, view.Nodes, nodes)
}

func (p *Panel) Diagnostics(ctx context.Context, d Display) error {
	diag, err := p.backend.Diagnostics(ctx)
	if err != nil {
		return p.statusFailed("diagnostics", err)
	}
	return p.render(d, RegionDiagnostics, view.Diagnostics, diag)
}

func (p *Panel) LauncherStatus(ctx context.Context, d Display) error {
	status, err := p.backend.Status(ctx)
	if err != nil {
		return p.statusFailed("launcher", err)
	}
	return p.render(d, RegionLauncher, view.Launcher, status)
}

func (p *Panel) SystemStatus(ctx context.Context, d Display) error {
	status, err := p.backend.System(ctx)
	if err != nil {
		return p.statusFailed("system", err)
	}
	return p.render(d, RegionSystem, view.System, status)
}

// Presets shows the launcher presets stored by the backend. Read only.
func (p *Panel) Presets(ctx context.Context, d Display) error {
	presets, err := p.backend.Presets(ctx)
	if err != nil {
		return p.statusFailed("presets", err)
	}
	return p.render(d, RegionPresets, view.PresetList, view.NewPresets(presets))
}

func (p *Panel) History(ctx context.Context, d Display) error {
	history, err := p.backend.History(ctx)
	if err != nil {
		return p.statusFailed("history", err)
	}
	return p.render(d, RegionHistory, view.HistoryList, view.RecentFirst(history))
}

func (p *Panel) Logs(ctx context.Context, d Display, q backend.LogQuery) error {
	entries, err := p.backend.Logs(ctx, q)
	if err != nil {
		return p.statusFailed("logs", err)
	}
	return p.render(d, RegionLogs, view.LogList, view.Logs{Entries: entries, Level: q.Level, Search: q.Search})
}

// Refresh runs every status check on a bounded worker pool and waits for
// all of them. The returned error joins the individual failures.
func (p *Panel) Refresh(ctx context.Context, d Display) error {
	checks := []func(context.Context, Display) error{
		p.LauncherStatus,
		p.CheckPyTorch,
		p.LoadPyTorchVersions,
		p.CheckPython,
		p.FindPython,
		p.CheckDependencies,
		p.ScanNodes,
		p.Diagnostics,
		p.SystemStatus,
		p.Presets,
		p.History,
		func(ctx context.Context, d Display) error {
			return p.Logs(ctx, d, backend.LogQuery{})
		},
	}

	errs := make([]error, len(checks))
	wp := workerpool.New(p.workers)
	for i, check := range checks {
		i, check := i, check
		wp.Submit(func() {
			errs[i] = check(ctx, d)
		})
	}
	wp.StopWait()

	return errors.Join(errs...)
}
