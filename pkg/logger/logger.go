package logger

import (
	"github.com/cozy-creator/comfy-panel/internal/config"

	"go.uber.org/zap"
)

// NewLogger picks the zap preset for the configured environment.
func NewLogger(cfg *config.Config) (*zap.Logger, error) {
	switch cfg.Environment {
	case config.EnvProd:
		return zap.NewProduction()
	case config.EnvTest:
		return zap.NewExample(), nil
	default:
		return zap.NewDevelopment()
	}
}

// InitLogger builds the logger for cfg and installs it as zap's global.
func InitLogger(cfg *config.Config) (*zap.Logger, error) {
	l, err := NewLogger(cfg)
	if err != nil {
		return nil, err
	}

	zap.ReplaceGlobals(l)
	return l, nil
}
