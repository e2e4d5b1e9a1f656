// Package errors provides error types for reqmig.
// This file contains package manager related error constructors.
package errors

import (
	"fmt"
	"strings"
	"time"
)

// NoManagersAvailable creates an error when no package manager is installed.
func NoManagersAvailable(known []string) *MigError {
	return &MigError{
		Kind:    ErrManager,
		Message: "no supported package manager found on PATH",
		Details: map[string]string{
			"known_managers": strings.Join(known, ", "),
		},
		Suggestion: `Install one of the supported package managers, for example:

  uv:     curl -LsSf https://astral.sh/uv/install.sh | sh
  poetry: pipx install poetry
  pdm:    pipx install pdm
  pipenv: pipx install pipenv

Or configure a custom manager command in .reqmig/config.yaml.`,
	}
}

// ManagerNotFound creates an error when a requested manager is unknown
// or not installed.
func ManagerNotFound(name string, available []string) *MigError {
	e := &MigError{
		Kind:    ErrManager,
		Message: fmt.Sprintf("package manager not available: %s", name),
		Details: map[string]string{
			"manager": name,
		},
		Suggestion: fmt.Sprintf("Check that %q is installed and on your PATH.", name),
	}
	if len(available) > 0 {
		e.Details["available"] = strings.Join(available, ", ")
	}
	return e
}

// AmbiguousManagers creates an error when multiple managers are available
// and none was selected.
func AmbiguousManagers(available []string) *MigError {
	return &MigError{
		Kind:    ErrManager,
		Message: "multiple package managers available, selection required",
		Details: map[string]string{
			"available": strings.Join(available, ", "),
		},
		Suggestion: `Choose a manager explicitly:

  reqmig migrate --manager uv

Or set manager.default in .reqmig/config.yaml.`,
	}
}

// AddFailed creates an error for a failed add invocation.
func AddFailed(manager, spec string, exitCode int, output string) *MigError {
	e := &MigError{
		Kind:    ErrManager,
		Message: fmt.Sprintf("%s failed to add %s (exit code %d)", manager, spec, exitCode),
		Details: map[string]string{
			"manager":   manager,
			"spec":      spec,
			"exit_code": fmt.Sprintf("%d", exitCode),
		},
		Suggestion: fmt.Sprintf(`Try running the command by hand to see the full output:

  %s add %q`, manager, spec),
	}
	if output != "" {
		e.Details["output"] = lastLines(output, 5)
	}
	return e
}

// AddTimeout creates an error for an add invocation that exceeded its timeout.
func AddTimeout(manager, spec string, timeout time.Duration) *MigError {
	return &MigError{
		Kind:    ErrTimeout,
		Message: fmt.Sprintf("%s timed out adding %s after %s", manager, spec, timeout),
		Details: map[string]string{
			"manager": manager,
			"spec":    spec,
			"timeout": timeout.String(),
		},
		Suggestion: `Slow resolution can be a network issue. Raise the limit with
migrate.timeout in .reqmig/config.yaml or REQMIG_MIGRATE_TIMEOUT.`,
	}
}

// lastLines returns the last n non-empty lines of s.
func lastLines(s string, n int) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return strings.Join(lines, "\n")
}
