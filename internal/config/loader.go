// Package config provides configuration loading and management for reqmig.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

const (
	// DefaultConfigPath is the default path to the config file relative
	// to the project root.
	DefaultConfigPath = ".reqmig/config.yaml"

	// EnvPrefix is the prefix for environment variable overrides.
	EnvPrefix = "REQMIG"
)

// Loader handles loading configuration from files and environment.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	v := viper.New()

	v.SetConfigType("yaml")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return &Loader{v: v}
}

// LoadConfig loads configuration from the specified path, applies defaults,
// merges environment variables, and validates the result.
// If path is empty, it uses DefaultConfigPath relative to the working directory.
func (l *Loader) LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigPath
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, &LoadError{
			Path:    path,
			Message: "config file not found",
			Err:     err,
		}
	}

	l.v.SetConfigFile(path)

	if err := l.v.ReadInConfig(); err != nil {
		return nil, &LoadError{
			Path:    path,
			Message: "failed to read config file",
			Err:     err,
		}
	}

	// Start with defaults
	cfg := NewConfig()

	if err := l.v.Unmarshal(cfg, viperDecodeHook); err != nil {
		return nil, &LoadError{
			Path:    path,
			Message: "failed to parse config file",
			Err:     err,
		}
	}

	l.applyEnvOverrides(cfg)
	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, &LoadError{
			Path:    path,
			Message: "configuration validation failed",
			Err:     err,
		}
	}

	return cfg, nil
}

// LoadOrDefault loads configuration from .reqmig/config.yaml in the given
// directory, falling back to defaults (plus environment overrides) when no
// config file exists. The tool must work in a bare project directory.
func (l *Loader) LoadOrDefault(dir string) (*Config, error) {
	path := filepath.Join(dir, DefaultConfigPath)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		cfg := NewConfig()
		l.applyEnvOverrides(cfg)
		if err := cfg.Validate(); err != nil {
			return nil, &LoadError{
				Path:    path,
				Message: "configuration validation failed",
				Err:     err,
			}
		}
		return cfg, nil
	}

	return l.LoadConfig(path)
}

// applyEnvOverrides applies environment variable overrides to the config.
func (l *Loader) applyEnvOverrides(cfg *Config) {
	// Manager settings
	if v := os.Getenv(EnvPrefix + "_MANAGER_DEFAULT"); v != "" {
		cfg.Manager.Default = v
	}

	// Requirements settings
	if v := os.Getenv(EnvPrefix + "_REQUIREMENTS_PATH"); v != "" {
		cfg.Requirements.Path = v
	}

	// Migrate settings
	if v := os.Getenv(EnvPrefix + "_MIGRATE_ON_FAILURE"); v != "" {
		cfg.Migrate.OnFailure = FailureMode(v)
	}
	if v := os.Getenv(EnvPrefix + "_MIGRATE_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Migrate.Timeout = d
		}
	}

	// Custom manager settings
	if v := os.Getenv(EnvPrefix + "_CUSTOM_NAME"); v != "" {
		cfg.Custom.Name = v
	}
	if v := os.Getenv(EnvPrefix + "_CUSTOM_COMMAND"); v != "" {
		cfg.Custom.Command = v
	}
}

// viperDecodeHook provides custom decoding for viper unmarshaling.
// It composes the standard mapstructure hooks with our custom ones.
func viperDecodeHook(dc *mapstructure.DecoderConfig) {
	dc.TagName = "yaml"
	dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		stringToCustomTypeHookFunc(),
	)
}

// stringToCustomTypeHookFunc creates a decode hook for our custom types.
func stringToCustomTypeHookFunc() mapstructure.DecodeHookFunc {
	return func(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
		if from.Kind() != reflect.String {
			return data, nil
		}

		if to == reflect.TypeOf(FailureMode("")) {
			return FailureMode(data.(string)), nil
		}

		return data, nil
	}
}

// LoadError represents an error that occurred while loading configuration.
type LoadError struct {
	Path    string
	Message string
	Err     error
}

func (e *LoadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Path, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Load is a convenience function that creates a new Loader and loads
// configuration. If path is empty, it uses DefaultConfigPath.
func Load(path string) (*Config, error) {
	return NewLoader().LoadConfig(path)
}
