package config

import (
	"errors"
	"time"

	"github.com/spf13/viper"
)

const (
	EnvDev  = "dev"
	EnvTest = "test"
	EnvProd = "prod"
)

const (
	DefaultPanelHome    = "~/.comfy-panel"
	DefaultHost         = "127.0.0.1"
	DefaultPort         = 5050
	DefaultBackendURL   = "http://127.0.0.1:5000"
	DefaultGithubAPIURL = "https://api.github.com"
	DefaultLanguage     = "en"
	DefaultBackendWait  = 10 * time.Second
)

var (
	ErrConfigLoaded          = errors.New("config already loaded")
	ErrConfigNotLoaded       = errors.New("config not loaded")
	ErrPanelHomeExpandFailed = errors.New("failed to expand panel home directory")
	ErrInvalidPort           = errors.New("invalid port")
	ErrInvalidEnvironment    = errors.New("invalid environment, expected dev, test or prod")
	ErrInvalidURL            = errors.New("invalid url")
	ErrNegativeDuration      = errors.New("durations must not be negative")
)

func setDefaults() {
	viper.SetDefault("host", DefaultHost)
	viper.SetDefault("port", DefaultPort)
	viper.SetDefault("environment", EnvDev)
	viper.SetDefault("language", DefaultLanguage)
	viper.SetDefault("public_dir", "")
	viper.SetDefault("allowed_origins", []string{})
	viper.SetDefault("backend_url", DefaultBackendURL)
	viper.SetDefault("backend_wait", DefaultBackendWait)
	viper.SetDefault("request_timeout", time.Duration(0))
	viper.SetDefault("github_api_url", DefaultGithubAPIURL)
	viper.SetDefault("github_token", "")
}
