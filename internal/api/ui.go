package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/cozy-creator/comfy-panel/internal/app"
	"github.com/cozy-creator/comfy-panel/internal/panel"
	"github.com/cozy-creator/comfy-panel/internal/view"
)

const RequestIDKey = "request_id"

var ErrUnknownAction = errors.New("unknown action")

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func Page(c *gin.Context) {
	app := c.MustGet("app").(*app.App)

	out, err := app.Renderer().Render(app.Localizer(), view.HTMLPage, view.Page{
		BackendURL: app.Backend().BaseURL(),
	})
	if err != nil {
		app.Logger.Error("failed to render page", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to render page"})
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(out))
}

// RunAction runs one panel action against a request-scoped control and
// display and returns what it rendered. Handled failures (validation,
// backend errors) are part of the rendered notices, so the status is 200.
func RunAction(c *gin.Context) {
	app := c.MustGet("app").(*app.App)

	name := c.Param("action")
	action, ok := actions[name]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": fmt.Sprintf("%s: %q", ErrUnknownAction, name)})
		return
	}

	rec := newRecorder(c.PostForm(fieldLabel))
	err := action(c.Request.Context(), app.Panel(), rec, rec, c)
	if err != nil && !errors.Is(err, panel.ErrMissingInput) {
		app.Logger.Info("action finished with error",
			zap.String("action", name),
			zap.String("request_id", c.GetString(RequestIDKey)),
			zap.Error(err),
		)
	}

	c.JSON(http.StatusOK, rec.response(err == nil))
}
