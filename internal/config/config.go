package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/cozy-creator/comfy-panel/internal/templates"
	"github.com/cozy-creator/comfy-panel/internal/utils/pathutil"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const panelPrefix = "COMFY_PANEL"

type Config struct {
	PanelHome      string        `mapstructure:"panel_home"`
	Host           string        `mapstructure:"host"`
	Port           int           `mapstructure:"port"`
	Environment    string        `mapstructure:"environment"`
	Language       string        `mapstructure:"language"`
	PublicDir      string        `mapstructure:"public_dir"`
	AllowedOrigins []string      `mapstructure:"allowed_origins"`
	BackendURL     string        `mapstructure:"backend_url"`
	BackendWait    time.Duration `mapstructure:"backend_wait"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
	GithubAPIURL   string        `mapstructure:"github_api_url"`
	GithubToken    string        `mapstructure:"github_token"`
}

func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("%w: %d", ErrInvalidPort, c.Port)
	}

	switch c.Environment {
	case EnvDev, EnvTest, EnvProd:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidEnvironment, c.Environment)
	}

	for name, raw := range map[string]string{"backend_url": c.BackendURL, "github_api_url": c.GithubAPIURL} {
		u, err := url.Parse(raw)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("%w: %s=%q", ErrInvalidURL, name, raw)
		}
	}

	if c.RequestTimeout < 0 || c.BackendWait < 0 {
		return ErrNegativeDuration
	}

	return nil
}

var config *Config

// LoadEnvAndConfigFiles resolves the panel home, writes config.yaml and .env
// there on first run, then loads both on top of the defaults.
func LoadEnvAndConfigFiles() error {
	setDefaults()

	panelHome, err := getPanelHome()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(panelHome, os.ModePerm); err != nil {
		return fmt.Errorf("failed to create panel home directory: %w", err)
	}
	viper.Set("panel_home", panelHome)

	envFile := viper.GetString("env_file")
	if envFile == "" {
		envFile = filepath.Join(panelHome, ".env")
	}
	configFile := viper.GetString("config_file")
	if configFile == "" {
		configFile = filepath.Join(panelHome, "config.yaml")
	}

	if err := ensureFile(envFile, templates.WriteEnv); err != nil {
		return fmt.Errorf("failed to create .env file: %w", err)
	}
	if err := ensureFile(configFile, templates.WriteConfig); err != nil {
		return fmt.Errorf("failed to create config.yaml file: %w", err)
	}

	// godotenv never overrides variables already set in the process.
	if err := godotenv.Load(envFile); err != nil {
		return fmt.Errorf("failed to load env file: %w", err)
	}

	viper.SetEnvPrefix(panelPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(`-`, `_`, `.`, `_`))
	viper.AutomaticEnv()
	bindEnvs()
	viper.SetConfigFile(configFile)

	if err := LoadConfig(false); err != nil {
		if errors.As(err, &viper.ConfigFileNotFoundError{}) {
			fmt.Fprintln(os.Stderr, "No config file found. Using default config.")
		} else {
			return err
		}
	}

	return nil
}

func bindEnvs() {
	// External credentials keep their conventional names.
	viper.BindEnv("github_token", panelPrefix+"_GITHUB_TOKEN", "GITHUB_TOKEN")
}

func LoadConfig(reload bool) error {
	if config != nil && !reload {
		return ErrConfigLoaded
	}

	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("error reading config: %w", err)
	}

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return fmt.Errorf("error unmarshalling config: %w", err)
	}

	publicDir, err := pathutil.ExpandPath(cfg.PublicDir)
	if err != nil {
		return fmt.Errorf("failed to expand public dir: %w", err)
	}
	cfg.PublicDir = publicDir

	if err := cfg.Validate(); err != nil {
		return err
	}

	config = cfg
	return nil
}

func GetConfig() (*Config, error) {
	if config == nil {
		return nil, ErrConfigNotLoaded
	}
	return config, nil
}

func MustGetConfig() *Config {
	if config == nil {
		panic("config not loaded")
	}
	return config
}

// getPanelHome takes the panel_home flag or env var, then the default, and
// expands a leading "~".
func getPanelHome() (string, error) {
	panelHome := viper.GetString("panel_home")
	if panelHome == "" {
		panelHome = DefaultPanelHome
	}

	panelHome, err := pathutil.ExpandPath(panelHome)
	if err != nil {
		return "", ErrPanelHomeExpandFailed
	}

	return panelHome, nil
}

func ensureFile(path string, write func(string) error) error {
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return err
		}
		return write(path)
	}
	return nil
}
