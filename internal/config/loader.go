package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Loader loads configuration using Viper.
//
// Use [NewLoader] to create one and [Loader.Load] to produce a resolved
// [Config].
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a Loader with defaults, env bindings and config file
// search paths registered.
func NewLoader() *Loader {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("home", defaults.Home)
	v.SetDefault("profile_path", defaults.ProfilePath)
	v.SetDefault("catalog_path", defaults.CatalogPath)
	v.SetDefault("assume_yes", defaults.AssumeYes)
	v.SetDefault("progress.enabled", defaults.Progress.Enabled)
	v.SetDefault("progress.width", defaults.Progress.Width)
	v.SetDefault("progress.interval_ms", defaults.Progress.IntervalMS)

	v.SetEnvPrefix("UBUNTU_SETUP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path := os.Getenv("UBUNTU_SETUP_CONFIG_PATH"); path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "ubuntu-setup"))
		}
	}

	return &Loader{v: v}
}

// Load reads the configuration and resolves path defaults.
//
// A missing config file is fine; a present-but-invalid one is an error.
func (l *Loader) Load() (*Config, error) {
	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{}
	if err := l.v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.resolvePaths(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// resolvePaths fills empty path fields from the current user's home.
func (c *Config) resolvePaths() error {
	if c.Home == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to resolve home directory: %w", err)
		}
		c.Home = home
	}
	if c.ProfilePath == "" {
		c.ProfilePath = filepath.Join(c.Home, ".zshrc")
	}
	if c.CatalogPath == "" {
		c.CatalogPath = filepath.Join(c.Home, ".config", "ubuntu-setup", "steps.yaml")
	}
	return nil
}
