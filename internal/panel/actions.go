package panel

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/cozy-creator/comfy-panel/internal/backend"
	"github.com/cozy-creator/comfy-panel/internal/view"
)

// mutation describes one state-changing backend call.
type mutation struct {
	name    string
	busyKey string
	failKey string
	success string
	call    func(ctx context.Context) (*backend.ActionResult, error)
	// result sees every decoded answer, successful or not.
	result func(d Display, res *backend.ActionResult)
	// after runs once the success notice is shown, usually a status refresh.
	after func(ctx context.Context, d Display)
}

// mutate runs m with ctl busy for exactly the duration of the backend call.
func (p *Panel) mutate(ctx context.Context, ctl Control, d Display, m mutation) error {
	release := Busy(ctl, p.loc.T(m.busyKey))
	defer release()

	res, err := m.call(ctx)
	release()

	if err != nil {
		p.logger.Warn("action failed", zap.String("action", m.name), zap.Error(err))
		d.Notify(Notice{Level: LevelError, Message: p.loc.T("common.network_error", err.Error())})
		return fmt.Errorf("%s: %w", m.name, err)
	}

	if m.result != nil {
		m.result(d, res)
	}

	if !res.Success {
		msg := res.Text()
		if msg == "" {
			msg = p.loc.T(m.failKey)
		}
		p.logger.Info("action rejected", zap.String("action", m.name), zap.String("message", msg))
		d.Notify(Notice{Level: LevelAlert, Message: msg})
		return &ActionError{Action: m.name, Message: msg}
	}

	d.Notify(Notice{Level: LevelSuccess, Message: m.success})
	if m.after != nil {
		m.after(ctx, d)
	}
	return nil
}

// required trims value and shows the alert for key when nothing is left.
func (p *Panel) required(d Display, value, key string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		d.Notify(Notice{Level: LevelAlert, Message: p.loc.T(key)})
		return "", ErrMissingInput
	}
	return value, nil
}

func (p *Panel) InstallPyTorch(ctx context.Context, ctl Control, d Display, versionKey string) error {
	versionKey, err := p.required(d, versionKey, "pytorch.select_version")
	if err != nil {
		return err
	}

	return p.mutate(ctx, ctl, d, mutation{
		name:    "install_pytorch",
		busyKey: "pytorch.installing",
		failKey: "pytorch.install_failed",
		success: p.loc.T("pytorch.install_started"),
		call: func(ctx context.Context) (*backend.ActionResult, error) {
			return p.backend.InstallPyTorch(ctx, versionKey)
		},
		after: func(ctx context.Context, d Display) {
			_ = p.CheckPyTorch(ctx, d)
		},
	})
}

func (p *Panel) SavePythonPath(ctx context.Context, ctl Control, d Display, path string) error {
	path, err := p.required(d, path, "python.enter_path")
	if err != nil {
		return err
	}

	return p.mutate(ctx, ctl, d, mutation{
		name:    "save_python",
		busyKey: "python.saving",
		failKey: "python.save_failed",
		success: p.loc.T("python.saved"),
		call: func(ctx context.Context) (*backend.ActionResult, error) {
			return p.backend.SavePythonExecutable(ctx, path)
		},
		after: func(ctx context.Context, d Display) {
			_ = p.CheckPython(ctx, d)
			_ = p.FindPython(ctx, d)
		},
	})
}

func (p *Panel) InstallDependencies(ctx context.Context, ctl Control, d Display) error {
	return p.mutate(ctx, ctl, d, mutation{
		name:    "install_dependencies",
		busyKey: "deps.installing",
		failKey: "deps.install_failed",
		success: p.loc.T("deps.install_success"),
		call:    p.backend.InstallDependencies,
		result: func(d Display, res *backend.ActionResult) {
			_ = p.render(d, RegionDepsOutput, view.DepsResult, view.DepsOutput{Success: res.Success, Output: res.Output})
		},
		after: func(ctx context.Context, d Display) {
			_ = p.CheckDependencies(ctx, d)
		},
	})
}

func (p *Panel) refreshNodes(ctx context.Context, d Display) {
	_ = p.ScanNodes(ctx, d)
}

func (p *Panel) InstallNode(ctx context.Context, ctl Control, d Display, gitURL string) error {
	gitURL, err := p.required(d, gitURL, "nodes.enter_git_url")
	if err != nil {
		return err
	}

	return p.mutate(ctx, ctl, d, mutation{
		name:    "install_node",
		busyKey: "nodes.installing",
		failKey: "nodes.install_failed",
		success: p.loc.T("nodes.install_success"),
		call: func(ctx context.Context) (*backend.ActionResult, error) {
			return p.backend.InstallNode(ctx, gitURL)
		},
		after: p.refreshNodes,
	})
}

func (p *Panel) ToggleNode(ctx context.Context, ctl Control, d Display, name string, enable bool) error {
	name, err := p.required(d, name, "nodes.enter_name")
	if err != nil {
		return err
	}

	busyKey, successKey := "nodes.disabling", "nodes.disable_success"
	if enable {
		busyKey, successKey = "nodes.enabling", "nodes.enable_success"
	}

	return p.mutate(ctx, ctl, d, mutation{
		name:    "toggle_node",
		busyKey: busyKey,
		failKey: "nodes.toggle_failed",
		success: p.loc.T(successKey, name),
		call: func(ctx context.Context) (*backend.ActionResult, error) {
			return p.backend.ToggleNode(ctx, name, enable)
		},
		after: p.refreshNodes,
	})
}

func (p *Panel) DeleteNode(ctx context.Context, ctl Control, d Display, name string) error {
	name, err := p.required(d, name, "nodes.enter_name")
	if err != nil {
		return err
	}

	return p.mutate(ctx, ctl, d, mutation{
		name:    "delete_node",
		busyKey: "nodes.deleting",
		failKey: "nodes.delete_failed",
		success: p.loc.T("nodes.delete_success", name),
		call: func(ctx context.Context) (*backend.ActionResult, error) {
			return p.backend.DeleteNode(ctx, name)
		},
		after: p.refreshNodes,
	})
}

func (p *Panel) UpdateNode(ctx context.Context, ctl Control, d Display, name string) error {
	name, err := p.required(d, name, "nodes.enter_name")
	if err != nil {
		return err
	}

	return p.mutate(ctx, ctl, d, mutation{
		name:    "update_node",
		busyKey: "nodes.updating",
		failKey: "nodes.update_failed",
		success: p.loc.T("nodes.update_success", name),
		call: func(ctx context.Context) (*backend.ActionResult, error) {
			return p.backend.UpdateNode(ctx, name)
		},
		after: p.refreshNodes,
	})
}

// DownloadModel accepts a huggingface.co URL or a bare model id; the backend
// resolves both. An empty savePath means the backend default.
func (p *Panel) DownloadModel(ctx context.Context, ctl Control, d Display, modelURL, savePath string) error {
	modelURL, err := p.required(d, modelURL, "model.enter_url")
	if err != nil {
		return err
	}
	savePath = strings.TrimSpace(savePath)

	return p.mutate(ctx, ctl, d, mutation{
		name:    "download_model",
		busyKey: "model.downloading",
		failKey: "model.download_failed",
		success: p.loc.T("model.download_started"),
		call: func(ctx context.Context) (*backend.ActionResult, error) {
			return p.backend.DownloadModel(ctx, modelURL, savePath)
		},
	})
}

func (p *Panel) refreshLauncher(ctx context.Context, d Display) {
	_ = p.LauncherStatus(ctx, d)
}

func (p *Panel) StartLauncher(ctx context.Context, ctl Control, d Display) error {
	return p.mutate(ctx, ctl, d, mutation{
		name:    "start",
		busyKey: "launcher.starting",
		failKey: "launcher.action_failed",
		success: p.loc.T("launcher.start_success"),
		call:    p.backend.Start,
		after:   p.refreshLauncher,
	})
}

func (p *Panel) StopLauncher(ctx context.Context, ctl Control, d Display, force bool) error {
	return p.mutate(ctx, ctl, d, mutation{
		name:    "stop",
		busyKey: "launcher.stopping",
		failKey: "launcher.action_failed",
		success: p.loc.T("launcher.stop_success"),
		call: func(ctx context.Context) (*backend.ActionResult, error) {
			return p.backend.Stop(ctx, force)
		},
		after: p.refreshLauncher,
	})
}

func (p *Panel) RestartLauncher(ctx context.Context, ctl Control, d Display) error {
	return p.mutate(ctx, ctl, d, mutation{
		name:    "restart",
		busyKey: "launcher.restarting",
		failKey: "launcher.action_failed",
		success: p.loc.T("launcher.restart_success"),
		call:    p.backend.Restart,
		after:   p.refreshLauncher,
	})
}

func (p *Panel) ClearLogs(ctx context.Context, ctl Control, d Display) error {
	return p.mutate(ctx, ctl, d, mutation{
		name:    "clear_logs",
		busyKey: "logs.clearing",
		failKey: "logs.clear_failed",
		success: p.loc.T("logs.cleared"),
		call:    p.backend.ClearLogs,
		after: func(ctx context.Context, d Display) {
			_ = p.Logs(ctx, d, backend.LogQuery{})
		},
	})
}
