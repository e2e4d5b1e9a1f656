// Package uv provides the uv package manager plugin for reqmig.
// uv registers dependencies in pyproject.toml via `uv add`.
package uv

import (
	"context"
	"os/exec"
	"path/filepath"

	"github.com/reqmig/reqmig/internal/manager"
)

// Manager implements the manager.Manager interface for uv.
type Manager struct{}

// New creates a new uv manager.
func New() *Manager {
	return &Manager{}
}

// Name returns the unique identifier for this manager.
func (m *Manager) Name() string {
	return "uv"
}

// Description returns a human-readable description of the manager.
func (m *Manager) Description() string {
	return "uv package manager (uv add)"
}

// IsAvailable checks if the uv binary is installed.
func (m *Manager) IsAvailable() bool {
	_, err := exec.LookPath("uv")
	return err == nil
}

// DetectsProject reports whether the project already uses uv.
func (m *Manager) DetectsProject(dir string) bool {
	return manager.FileExists(filepath.Join(dir, "uv.lock"))
}

// Add invokes `uv add <spec>`.
func (m *Manager) Add(ctx context.Context, spec string, opts manager.AddOptions) (manager.Result, error) {
	args := []string{"add"}
	args = append(args, opts.ExtraArgs...)
	args = append(args, spec)
	return manager.Run(ctx, "uv", args, opts)
}
