// Package pipenv provides the Pipenv package manager plugin for reqmig.
// Pipenv registers dependencies in a Pipfile via `pipenv install`.
package pipenv

import (
	"context"
	"os/exec"
	"path/filepath"

	"github.com/reqmig/reqmig/internal/manager"
)

// Manager implements the manager.Manager interface for Pipenv.
type Manager struct{}

// New creates a new Pipenv manager.
func New() *Manager {
	return &Manager{}
}

// Name returns the unique identifier for this manager.
func (m *Manager) Name() string {
	return "pipenv"
}

// Description returns a human-readable description of the manager.
func (m *Manager) Description() string {
	return "Pipenv package manager (pipenv install)"
}

// IsAvailable checks if the pipenv binary is installed.
func (m *Manager) IsAvailable() bool {
	_, err := exec.LookPath("pipenv")
	return err == nil
}

// DetectsProject reports whether the project already uses Pipenv.
func (m *Manager) DetectsProject(dir string) bool {
	return manager.FileExists(filepath.Join(dir, "Pipfile")) ||
		manager.FileExists(filepath.Join(dir, "Pipfile.lock"))
}

// Add invokes `pipenv install <spec>`. Pipenv has no separate add
// operation; install both registers and resolves the dependency.
func (m *Manager) Add(ctx context.Context, spec string, opts manager.AddOptions) (manager.Result, error) {
	args := []string{"install"}
	args = append(args, opts.ExtraArgs...)
	args = append(args, spec)
	return manager.Run(ctx, "pipenv", args, opts)
}
