// Package config provides configuration data structures for reqmig.
package config

import (
	"fmt"
	"strings"
	"time"
)

// Config represents the complete reqmig configuration loaded from
// .reqmig/config.yaml.
type Config struct {
	Manager      ManagerConfig      `yaml:"manager"      json:"manager"`
	Requirements RequirementsConfig `yaml:"requirements" json:"requirements"`
	Migrate      MigrateConfig      `yaml:"migrate"      json:"migrate"`
	Custom       CustomConfig       `yaml:"custom"       json:"custom"`
}

// ManagerConfig configures package manager selection.
type ManagerConfig struct {
	// Default is the manager to use. Empty string means auto-detect.
	Default string `yaml:"default" json:"default"`
	// ExtraArgs are appended to every add invocation (e.g. "--group", "dev").
	ExtraArgs []string `yaml:"extra_args" json:"extra_args"`
}

// RequirementsConfig configures the input file.
type RequirementsConfig struct {
	// Path is the requirements file path (default: requirements.txt).
	Path string `yaml:"path" json:"path"`
}

// FailureMode defines how per-dependency invocation failures are handled.
type FailureMode string

const (
	// FailureContinue records the failure and moves to the next line (default).
	FailureContinue FailureMode = "continue"
	// FailureHalt stops the migration at the first failed invocation.
	FailureHalt FailureMode = "halt"
)

// MigrateConfig configures migration behavior.
type MigrateConfig struct {
	// OnFailure controls whether a failed add aborts the batch (default: continue).
	OnFailure FailureMode `yaml:"on_failure" json:"on_failure"`
	// Timeout is the per-invocation time limit (default: 10m, 0 disables).
	Timeout time.Duration `yaml:"timeout" json:"timeout"`
}

// CustomConfig defines an optional user-supplied manager command.
type CustomConfig struct {
	// Name is the identifier the custom manager registers under.
	Name string `yaml:"name" json:"name"`
	// Command is the add command. A {package} placeholder is replaced with
	// the dependency specifier; without one the specifier is appended as
	// the final argument.
	Command string `yaml:"command" json:"command"`
	// Description is an optional human-readable description.
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}

// Default values.
const (
	DefaultRequirementsPath = "requirements.txt"
	DefaultTimeout          = 10 * time.Minute
)

// NewConfig returns a new Config with default values applied.
func NewConfig() *Config {
	return &Config{
		Manager: ManagerConfig{
			Default:   "",
			ExtraArgs: []string{},
		},
		Requirements: RequirementsConfig{
			Path: DefaultRequirementsPath,
		},
		Migrate: MigrateConfig{
			OnFailure: FailureContinue,
			Timeout:   DefaultTimeout,
		},
	}
}

// ApplyDefaults applies default values to any unset fields.
// This is used after loading config from file to fill in missing values.
func (c *Config) ApplyDefaults() {
	defaults := NewConfig()

	if c.Requirements.Path == "" {
		c.Requirements.Path = defaults.Requirements.Path
	}
	if c.Migrate.OnFailure == "" {
		c.Migrate.OnFailure = defaults.Migrate.OnFailure
	}
	if c.Migrate.Timeout == 0 {
		c.Migrate.Timeout = defaults.Migrate.Timeout
	}
	if c.Manager.ExtraArgs == nil {
		c.Manager.ExtraArgs = []string{}
	}
}

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []*ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}
	msg := "multiple validation errors:"
	for _, err := range e {
		msg += "\n  - " + err.Error()
	}
	return msg
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	var errs ValidationErrors

	switch c.Migrate.OnFailure {
	case FailureContinue, FailureHalt:
	default:
		errs = append(errs, &ValidationError{
			Field:   "migrate.on_failure",
			Message: fmt.Sprintf("invalid value %q (valid: continue, halt)", c.Migrate.OnFailure),
		})
	}

	if c.Migrate.Timeout < 0 {
		errs = append(errs, &ValidationError{
			Field:   "migrate.timeout",
			Message: "must not be negative",
		})
	}

	if c.Custom.Command != "" && strings.TrimSpace(c.Custom.Name) == "" {
		errs = append(errs, &ValidationError{
			Field:   "custom.name",
			Message: "required when custom.command is set",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
