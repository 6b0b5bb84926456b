package api

import (
	"context"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/cozy-creator/comfy-panel/internal/backend"
	"github.com/cozy-creator/comfy-panel/internal/panel"
)

// Form field names posted by the page.
const (
	fieldGitURL   = "giturl"
	fieldNode     = "node"
	fieldEnable   = "enable"
	fieldVersion  = "version"
	fieldPath     = "path"
	fieldAuthor   = "author"
	fieldModelURL = "modelurl"
	fieldSavePath = "savepath"
	fieldLevel    = "level"
	fieldSearch   = "search"
	fieldLimit    = "limit"
	fieldForce    = "force"
	fieldLabel    = "label"
)

type actionFunc func(ctx context.Context, p *panel.Panel, ctl panel.Control, d panel.Display, c *gin.Context) error

var actions = map[string]actionFunc{
	"refresh": func(ctx context.Context, p *panel.Panel, _ panel.Control, d panel.Display, _ *gin.Context) error {
		return p.Refresh(ctx, d)
	},
	"check-pytorch":    status((*panel.Panel).CheckPyTorch),
	"pytorch-versions": status((*panel.Panel).LoadPyTorchVersions),
	"check-python":     status((*panel.Panel).CheckPython),
	"find-python":      status((*panel.Panel).FindPython),
	"check-deps":       status((*panel.Panel).CheckDependencies),
	"scan-nodes":       status((*panel.Panel).ScanNodes),
	"diagnostics":      status((*panel.Panel).Diagnostics),
	"launcher-status":  status((*panel.Panel).LauncherStatus),
	"system-status":    status((*panel.Panel).SystemStatus),
	"presets":          status((*panel.Panel).Presets),
	"history":          status((*panel.Panel).History),
	"logs": func(ctx context.Context, p *panel.Panel, _ panel.Control, d panel.Display, c *gin.Context) error {
		limit, _ := strconv.Atoi(c.PostForm(fieldLimit))
		return p.Logs(ctx, d, backend.LogQuery{
			Level:  c.PostForm(fieldLevel),
			Search: c.PostForm(fieldSearch),
			Limit:  limit,
		})
	},

	"install-pytorch": func(ctx context.Context, p *panel.Panel, ctl panel.Control, d panel.Display, c *gin.Context) error {
		return p.InstallPyTorch(ctx, ctl, d, c.PostForm(fieldVersion))
	},
	"save-python": func(ctx context.Context, p *panel.Panel, ctl panel.Control, d panel.Display, c *gin.Context) error {
		return p.SavePythonPath(ctx, ctl, d, c.PostForm(fieldPath))
	},
	"install-deps": func(ctx context.Context, p *panel.Panel, ctl panel.Control, d panel.Display, _ *gin.Context) error {
		return p.InstallDependencies(ctx, ctl, d)
	},
	"install-node": func(ctx context.Context, p *panel.Panel, ctl panel.Control, d panel.Display, c *gin.Context) error {
		return p.InstallNode(ctx, ctl, d, c.PostForm(fieldGitURL))
	},
	"toggle-node": func(ctx context.Context, p *panel.Panel, ctl panel.Control, d panel.Display, c *gin.Context) error {
		return p.ToggleNode(ctx, ctl, d, c.PostForm(fieldNode), formBool(c, fieldEnable))
	},
	"delete-node": func(ctx context.Context, p *panel.Panel, ctl panel.Control, d panel.Display, c *gin.Context) error {
		return p.DeleteNode(ctx, ctl, d, c.PostForm(fieldNode))
	},
	"update-node": func(ctx context.Context, p *panel.Panel, ctl panel.Control, d panel.Display, c *gin.Context) error {
		return p.UpdateNode(ctx, ctl, d, c.PostForm(fieldNode))
	},
	"download-model": func(ctx context.Context, p *panel.Panel, ctl panel.Control, d panel.Display, c *gin.Context) error {
		return p.DownloadModel(ctx, ctl, d, c.PostForm(fieldModelURL), c.PostForm(fieldSavePath))
	},
	"search-author": func(ctx context.Context, p *panel.Panel, ctl panel.Control, d panel.Display, c *gin.Context) error {
		return p.SearchAuthor(ctx, ctl, d, c.PostForm(fieldAuthor))
	},
	"start-launcher": func(ctx context.Context, p *panel.Panel, ctl panel.Control, d panel.Display, _ *gin.Context) error {
		return p.StartLauncher(ctx, ctl, d)
	},
	"stop-launcher": func(ctx context.Context, p *panel.Panel, ctl panel.Control, d panel.Display, c *gin.Context) error {
		return p.StopLauncher(ctx, ctl, d, formBool(c, fieldForce))
	},
	"restart-launcher": func(ctx context.Context, p *panel.Panel, ctl panel.Control, d panel.Display, _ *gin.Context) error {
		return p.RestartLauncher(ctx, ctl, d)
	},
	"clear-logs": func(ctx context.Context, p *panel.Panel, ctl panel.Control, d panel.Display, _ *gin.Context) error {
		return p.ClearLogs(ctx, ctl, d)
	},
}

func status(check func(*panel.Panel, context.Context, panel.Display) error) actionFunc {
	return func(ctx context.Context, p *panel.Panel, _ panel.Control, d panel.Display, _ *gin.Context) error {
		return check(p, ctx, d)
	}
}

// formBool accepts what checkboxes and data attributes post: "true", "on", "1".
func formBool(c *gin.Context, name string) bool {
	v := c.PostForm(name)
	if v == "on" {
		return true
	}
	b, _ := strconv.ParseBool(v)
	return b
}
