// Package poetry provides the Poetry package manager plugin for reqmig.
// Poetry registers dependencies in pyproject.toml via `poetry add`.
package poetry

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/reqmig/reqmig/internal/manager"
)

// Manager implements the manager.Manager interface for Poetry.
type Manager struct{}

// New creates a new Poetry manager.
func New() *Manager {
	return &Manager{}
}

// Name returns the unique identifier for this manager.
func (m *Manager) Name() string {
	return "poetry"
}

// Description returns a human-readable description of the manager.
func (m *Manager) Description() string {
	return "Poetry package manager (poetry add)"
}

// IsAvailable checks if the poetry binary is installed.
func (m *Manager) IsAvailable() bool {
	_, err := exec.LookPath("poetry")
	return err == nil
}

// DetectsProject reports whether the project already uses Poetry.
// A poetry.lock is conclusive; otherwise pyproject.toml must carry a
// [tool.poetry] table.
func (m *Manager) DetectsProject(dir string) bool {
	if manager.FileExists(filepath.Join(dir, "poetry.lock")) {
		return true
	}

	content, err := os.ReadFile(filepath.Join(dir, "pyproject.toml"))
	if err != nil {
		return false
	}
	return strings.Contains(string(content), "[tool.poetry]")
}

// Add invokes `poetry add <spec>`.
func (m *Manager) Add(ctx context.Context, spec string, opts manager.AddOptions) (manager.Result, error) {
	args := []string{"add"}
	args = append(args, opts.ExtraArgs...)
	args = append(args, spec)
	return manager.Run(ctx, "poetry", args, opts)
}
