// Package pdm provides the PDM package manager plugin for reqmig.
package pdm

import (
	"context"
	"os/exec"
	"path/filepath"

	"github.com/reqmig/reqmig/internal/manager"
)

// Manager implements the manager.Manager interface for PDM.
type Manager struct{}

// New creates a new PDM manager.
func New() *Manager {
	return &Manager{}
}

// Name returns the unique identifier for this manager.
func (m *Manager) Name() string {
	return "pdm"
}

// Description returns a human-readable description of the manager.
func (m *Manager) Description() string {
	return "PDM package manager (pdm add)"
}

// IsAvailable checks if the pdm binary is installed.
func (m *Manager) IsAvailable() bool {
	_, err := exec.LookPath("pdm")
	return err == nil
}

// DetectsProject reports whether the project already uses PDM.
func (m *Manager) DetectsProject(dir string) bool {
	return manager.FileExists(filepath.Join(dir, "pdm.lock"))
}

// Add invokes `pdm add <spec>`.
func (m *Manager) Add(ctx context.Context, spec string, opts manager.AddOptions) (manager.Result, error) {
	args := []string{"add"}
	args = append(args, opts.ExtraArgs...)
	args = append(args, spec)
	return manager.Run(ctx, "pdm", args, opts)
}
