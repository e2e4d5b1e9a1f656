// Package errors provides error types for reqmig.
// This file contains requirements-file and configuration error constructors.
package errors

import (
	"fmt"
	"strings"
)

// RequirementsNotFound creates an error for a missing requirements file.
func RequirementsNotFound(path string) *MigError {
	return &MigError{
		Kind:    ErrNotFound,
		Message: fmt.Sprintf("requirements file not found: %s", path),
		Details: map[string]string{
			"path": path,
		},
		Suggestion: `Make sure you run reqmig from the project root, or point it
at the right file:

  reqmig migrate --file path/to/requirements.txt

The path can also be set in .reqmig/config.yaml under requirements.path.`,
	}
}

// RequirementsReadError creates an error for a requirements file that
// exists but could not be read.
func RequirementsReadError(path string, readErr error) *MigError {
	return &MigError{
		Kind:    ErrRequirements,
		Message: fmt.Sprintf("failed to read requirements file: %s", path),
		Cause:   readErr,
		Details: map[string]string{
			"path": path,
		},
		Suggestion: "Check the file permissions and encoding (reqmig expects plain text).",
	}
}

// ConfigParseError creates an error for YAML parsing failures.
func ConfigParseError(configPath string, parseErr error) *MigError {
	return &MigError{
		Kind:    ErrConfig,
		Message: fmt.Sprintf("failed to parse configuration: %s", configPath),
		Cause:   parseErr,
		Details: map[string]string{
			"path": configPath,
		},
		Suggestion: `Check your config.yaml for syntax errors:
  1. Ensure proper YAML indentation (use spaces, not tabs)
  2. Check for missing colons or quotes
  3. Validate with: yamllint .reqmig/config.yaml`,
	}
}

// ConfigValidationError creates an error for invalid configuration values.
func ConfigValidationError(field, message string, validOptions []string) *MigError {
	suggestion := fmt.Sprintf("Fix the %q field in .reqmig/config.yaml", field)
	if len(validOptions) > 0 {
		suggestion += fmt.Sprintf("\n  Valid options: %s", strings.Join(validOptions, ", "))
	}

	return &MigError{
		Kind:    ErrConfig,
		Message: fmt.Sprintf("invalid configuration: %s", message),
		Details: map[string]string{
			"field": field,
		},
		Suggestion: suggestion,
	}
}
