// Package config handles configuration loading for tmuxhop.
// Static tunables come from an XDG config file with built-in defaults;
// the live feature switches stay in tmux global options (see options.go)
// so they can be flipped without restarting anything.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// DefaultStatusFormat is the status-bar template used when the
// @hop-status-format tmux option is unset.
const DefaultStatusFormat = "{waiting:\U000F009C} {idle:\U000F012C}"

// Config holds all static configuration for tmuxhop.
type Config struct {
	Capture  CaptureConfig  `mapstructure:"capture"`
	Validate ValidateConfig `mapstructure:"validate"`
	Cycle    CycleConfig    `mapstructure:"cycle"`
	Status   StatusConfig   `mapstructure:"status"`
	Log      LogConfig      `mapstructure:"log"`
}

// CaptureConfig controls pane content capture.
type CaptureConfig struct {
	// Lines is how many rendered lines to capture for dialog detection.
	Lines int `mapstructure:"lines"`
}

// ValidateConfig controls waiting-pane validation.
type ValidateConfig struct {
	// AgeThresholdSeconds is the minimum age of a waiting state before
	// its pane content is inspected for a dismissed dialog.
	AgeThresholdSeconds int64 `mapstructure:"age_threshold_seconds"`
}

// CycleConfig controls cycle behavior.
type CycleConfig struct {
	// Mode is the default cycle mode: "priority" or "flat".
	Mode string `mapstructure:"mode"`
}

// StatusConfig controls the status-bar output.
type StatusConfig struct {
	// Format is the fallback template when the tmux option is unset.
	Format string `mapstructure:"format"`
}

// LogConfig controls the hop log.
type LogConfig struct {
	// Level is the minimum level written: debug, info, error.
	Level string `mapstructure:"level"`
	// Path overrides the default log location. Empty means the XDG default.
	Path string `mapstructure:"path"`
}

// Load reads configuration from ~/.config/tmuxhop/config.yaml (XDG aware)
// over built-in defaults. A missing config file is not an error.
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(userConfigDir())

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading user config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return cfg, nil
}

// LoadFromPath loads configuration from a specific file (for testing).
func LoadFromPath(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config from %s: %w", path, err)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return cfg, nil
}

// Default returns a Config with built-in defaults.
func Default() *Config {
	return &Config{
		Capture:  CaptureConfig{Lines: 30},
		Validate: ValidateConfig{AgeThresholdSeconds: 30},
		Cycle:    CycleConfig{Mode: "priority"},
		Status:   StatusConfig{Format: DefaultStatusFormat},
		Log:      LogConfig{Level: "info"},
	}
}

// UserConfigPath returns the path of the user config file.
func UserConfigPath() string {
	return filepath.Join(userConfigDir(), "config.yaml")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("capture.lines", 30)
	v.SetDefault("validate.age_threshold_seconds", 30)
	v.SetDefault("cycle.mode", "priority")
	v.SetDefault("status.format", DefaultStatusFormat)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.path", "")
}

func userConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "tmuxhop")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".config", "tmuxhop")
	}
	return filepath.Join(home, ".config", "tmuxhop")
}
