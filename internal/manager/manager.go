// Package manager provides the package manager plugin system for reqmig.
// Managers are Python package managers (like uv, poetry) that register a
// dependency in a project's manifest via their "add" operation.
package manager

import (
	"context"
	"io"
	"time"
)

// AddOptions configures how a manager executes an add invocation.
type AddOptions struct {
	// WorkDir is the working directory for the manager command.
	WorkDir string
	// ExtraArgs are appended to the add command before the specifier.
	ExtraArgs []string
	// LogWriter is a writer for real-time output streaming.
	// Can be used to stream output to the TUI while also capturing it.
	LogWriter io.Writer
}

// Result represents the outcome of an add invocation.
type Result struct {
	// Command is the full command line that was executed.
	Command string `json:"command"`
	// Output is the combined stdout and stderr from the manager process.
	Output string `json:"output"`
	// ExitCode is the exit code from the manager process.
	ExitCode int `json:"exit_code"`
	// Duration is how long the invocation took.
	Duration time.Duration `json:"duration"`
}

// IsSuccess returns true if the invocation completed successfully.
func (r Result) IsSuccess() bool {
	return r.ExitCode == 0
}

// Manager defines the interface that all package manager plugins implement.
type Manager interface {
	// Name returns the unique identifier for this manager (e.g., "uv", "poetry").
	Name() string
	// Description returns a human-readable description of the manager.
	Description() string

	// IsAvailable checks if this manager is installed and on the PATH.
	IsAvailable() bool
	// DetectsProject reports whether the directory's manifests indicate
	// this manager is already in use (lock files, Pipfile, tool tables).
	DetectsProject(dir string) bool

	// Add invokes the manager's add operation with the dependency
	// specifier as a single argument. A non-zero exit code is reported
	// through the Result, not as an error; errors are reserved for
	// failures to run the command at all.
	Add(ctx context.Context, spec string, opts AddOptions) (Result, error)
}
