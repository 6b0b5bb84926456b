package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/logger"
	"github.com/gin-contrib/static"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.uber.org/zap"

	"github.com/cozy-creator/comfy-panel/internal/api"
	"github.com/cozy-creator/comfy-panel/internal/app"
	"github.com/cozy-creator/comfy-panel/internal/config"
)

const requestIDHeader = "X-Request-ID"

type Server struct {
	app        *app.App
	listenAddr string
	ginEngine  *gin.Engine
	inner      *http.Server
}

func NewServer(app *app.App) (*Server, error) {
	cfg := app.Config()

	gin.SetMode(getGinMode(cfg.Environment))
	r := gin.New()

	r.Use(requestID())

	// Setup logger middleware
	r.Use(logger.SetLogger(
		logger.WithUTC(true),
		logger.WithSkipPath([]string{"/healthz"}),
		logger.WithLogger(func(c *gin.Context, l zerolog.Logger) zerolog.Logger {
			return l.With().Str("request_id", c.GetString(api.RequestIDKey)).Logger()
		}),
	))

	if len(cfg.AllowedOrigins) > 0 {
		r.Use(cors.New(
			cors.Config{
				AllowMethods:  []string{"GET", "POST", "OPTIONS"},
				AllowOrigins:  cfg.AllowedOrigins,
				AllowHeaders:  []string{"Content-Type", requestIDHeader, requestedWithHeader},
				ExposeHeaders: []string{requestIDHeader},
				MaxAge:        300,
			},
		))
	}

	// Serve static files, from disk when a public dir is configured
	r.Use(static.Serve(staticPrefix, assetFS(cfg.PublicDir)))
	r.Use(gin.Recovery())

	return &Server{
		app:        app,
		listenAddr: cfg.Addr(),
		ginEngine:  r,
		inner: &http.Server{
			Handler:           r,
			Addr:              cfg.Addr(),
			ReadHeaderTimeout: 10 * time.Second,
		},
	}, nil
}

func (s *Server) Handler() http.Handler {
	return s.ginEngine
}

func (s *Server) Start() error {
	s.app.Logger.Info("starting panel server", zap.String("addr", s.listenAddr))

	if err := s.inner.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func (s *Server) Stop(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	s.app.Logger.Info("stopping panel server")
	return s.inner.Shutdown(ctx)
}

func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(api.RequestIDKey, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

func getGinMode(env string) string {
	switch env {
	case config.EnvDev:
		return gin.DebugMode
	case config.EnvTest:
		return gin.TestMode
	default:
		return gin.ReleaseMode
	}
}
