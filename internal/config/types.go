// Package config provides configuration loading for ubuntu-setup.
//
// Configuration is loaded using Viper, supporting a YAML config file and
// environment variable overrides. The defaults work out of the box on a
// stock Ubuntu 22.04 machine; everything here tunes where the tool writes
// and how it renders, never what the engine does.
//
// Key types:
//   - [Config] is the root configuration container
//   - [Loader] handles Viper-based configuration loading
//
// Configuration priority (highest to lowest):
//  1. Environment variables (UBUNTU_SETUP_ prefix)
//  2. Config file specified by UBUNTU_SETUP_CONFIG_PATH
//  3. ~/.config/ubuntu-setup/config.yaml
//  4. [DefaultConfig] defaults
package config

// Config represents the root configuration structure.
//
// Pass a Config explicitly into the components that need it; nothing in
// this codebase reads process-wide mutable globals.
type Config struct {
	// Home is the target user's home directory. Empty means "resolve at
	// load time" from the current user.
	Home string `mapstructure:"home"`

	// ProfilePath is the shell profile file that configuration blocks are
	// appended to. Empty means "<home>/.zshrc".
	ProfilePath string `mapstructure:"profile_path"`

	// CatalogPath is the operator-defined extra-steps YAML file. Empty
	// means "<home>/.config/ubuntu-setup/steps.yaml"; a missing file is
	// fine either way.
	CatalogPath string `mapstructure:"catalog_path"`

	// AssumeYes selects every step and passes the final gate without
	// prompting. Intended for unattended re-runs; the plan is still
	// printed. Also settable with the --yes flag.
	AssumeYes bool `mapstructure:"assume_yes"`

	// Progress contains progress bar rendering settings.
	Progress ProgressConfig `mapstructure:"progress"`
}

// ProgressConfig contains progress bar rendering settings.
//
// The bar is cosmetic; these settings only affect how it looks, never what
// executes.
type ProgressConfig struct {
	// Enabled controls whether the per-step progress bar is rendered.
	// Default: true
	Enabled bool `mapstructure:"enabled"`

	// Width is the number of bar cells. Default: 30
	Width int `mapstructure:"width"`

	// IntervalMS is the heartbeat cadence in milliseconds. Default: 200
	IntervalMS int `mapstructure:"interval_ms"`
}

// DefaultConfig returns a new [Config] with sensible defaults.
//
// Path fields are left empty here and resolved against the current user's
// home directory by [Loader.Load].
func DefaultConfig() *Config {
	return &Config{
		Progress: ProgressConfig{
			Enabled:    true,
			Width:      30,
			IntervalMS: 200,
		},
	}
}
