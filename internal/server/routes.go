package server

import (
	"github.com/gin-gonic/gin"

	"github.com/cozy-creator/comfy-panel/internal/api"
	"github.com/cozy-creator/comfy-panel/internal/app"
)

func (s *Server) SetupRoutes() {
	s.ginEngine.GET("/healthz", api.Health)
	s.ginEngine.GET("/", handlerWrapper(s.app, api.Page))

	ui := s.ginEngine.Group("/ui", sameOrigin(s.app.Config().AllowedOrigins, s.app.Logger))
	ui.POST("/:action", handlerWrapper(s.app, api.RunAction))
}

func handlerWrapper(app *app.App, f func(c *gin.Context)) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.Set("app", app)
		f(ctx)
	}
}
