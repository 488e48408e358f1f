// Package config loads, validates and saves the location display settings.
//
// Settings live in a small JSON file next to the host's other mod settings
// (EnableMod, NotificationDuration, EnableDebugLogging). Values may be
// overridden with LOCDISPLAY_* environment variables. Options describes each
// setting the way a settings menu registers it.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	defaultEnableMod            = true
	defaultNotificationDuration = 3000
	defaultEnableDebugLogging   = false

	// Recommended settings-menu range for NotificationDuration.
	MinNotificationDuration  = 1000
	MaxNotificationDuration  = 10000
	NotificationDurationStep = 500

	// EnvPrefix prefixes environment overrides, e.g. LOCDISPLAY_ENABLEMOD.
	EnvPrefix = "LOCDISPLAY"
)

const (
	keyEnableMod            = "EnableMod"
	keyNotificationDuration = "NotificationDuration"
	keyEnableDebugLogging   = "EnableDebugLogging"
)

// Config holds the persisted settings.
type Config struct {
	EnableMod            bool `mapstructure:"EnableMod" json:"EnableMod"`
	NotificationDuration int  `mapstructure:"NotificationDuration" json:"NotificationDuration"` // milliseconds
	EnableDebugLogging   bool `mapstructure:"EnableDebugLogging" json:"EnableDebugLogging"`
}

// ConfigError indicates an unreadable or invalid configuration.
type ConfigError struct {
	Key     string
	Message string
	Cause   error
}

func (e *ConfigError) Error() string {
	prefix := "config error"
	if e.Key != "" {
		prefix = fmt.Sprintf("config error (%s)", e.Key)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.Message)
}

func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Default returns a Config populated with the defaults.
func Default() Config {
	return Config{
		EnableMod:            defaultEnableMod,
		NotificationDuration: defaultNotificationDuration,
		EnableDebugLogging:   defaultEnableDebugLogging,
	}
}

// Reset restores every setting to its default.
func (c *Config) Reset() {
	*c = Default()
}

// Duration returns NotificationDuration as a time.Duration.
func (c Config) Duration() time.Duration {
	return time.Duration(c.NotificationDuration) * time.Millisecond
}

// Validate ensures the configuration is usable.
func (c Config) Validate() error {
	if c.NotificationDuration <= 0 {
		return &ConfigError{
			Key:     keyNotificationDuration,
			Message: fmt.Sprintf("must be positive, got %d", c.NotificationDuration),
		}
	}
	return nil
}

// Clamp snaps NotificationDuration into the recommended range on the
// settings-menu step grid.
func (c Config) Clamp() Config {
	d := c.NotificationDuration
	if d < MinNotificationDuration {
		d = MinNotificationDuration
	}
	if d > MaxNotificationDuration {
		d = MaxNotificationDuration
	}
	d = (d + NotificationDurationStep/2) / NotificationDurationStep * NotificationDurationStep
	c.NotificationDuration = d
	return c
}

// Load reads the configuration at path. A missing file yields the defaults;
// an empty path reads only defaults and environment overrides.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetDefault(keyEnableMod, defaultEnableMod)
	v.SetDefault(keyNotificationDuration, defaultNotificationDuration)
	v.SetDefault(keyEnableDebugLogging, defaultEnableDebugLogging)
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if ext := strings.TrimPrefix(filepath.Ext(path), "."); ext == "" {
			v.SetConfigType("json")
		}
		if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, &ConfigError{Message: "reading " + path, Cause: err}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, &ConfigError{Message: "decoding settings", Cause: err}
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Save writes cfg to path as indented JSON, creating parent directories.
// Key casing is preserved so the host can read the file back verbatim.
func Save(path string, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return &ConfigError{Message: "creating config directory", Cause: err}
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return &ConfigError{Message: "encoding settings", Cause: err}
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return &ConfigError{Message: "writing " + path, Cause: err}
	}
	return nil
}
