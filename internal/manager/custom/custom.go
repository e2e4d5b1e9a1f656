// Package custom provides a configurable custom manager plugin for reqmig.
// Custom managers are defined via configuration rather than code, for
// package managers reqmig does not ship a backend for.
package custom

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/reqmig/reqmig/internal/config"
	"github.com/reqmig/reqmig/internal/manager"
)

// PackagePlaceholder is replaced with the dependency specifier in the
// configured command. Without a placeholder the specifier is appended as
// the final argument.
const PackagePlaceholder = "{package}"

// Manager implements the manager.Manager interface for user-defined commands.
type Manager struct {
	cfg config.CustomConfig
}

// New creates a new custom manager from configuration.
func New(cfg config.CustomConfig) *Manager {
	return &Manager{cfg: cfg}
}

// Name returns the unique identifier for this manager.
func (m *Manager) Name() string {
	return m.cfg.Name
}

// Description returns a human-readable description of the manager.
func (m *Manager) Description() string {
	if m.cfg.Description != "" {
		return m.cfg.Description
	}
	return fmt.Sprintf("Custom manager using %s", m.cfg.Command)
}

// IsAvailable checks if the configured command's binary is on the PATH.
func (m *Manager) IsAvailable() bool {
	fields := strings.Fields(m.cfg.Command)
	if len(fields) == 0 {
		return false
	}
	_, err := exec.LookPath(fields[0])
	return err == nil
}

// DetectsProject always returns false; a custom manager is only used
// when selected explicitly.
func (m *Manager) DetectsProject(dir string) bool {
	return false
}

// Add runs the configured command with the dependency specifier.
func (m *Manager) Add(ctx context.Context, spec string, opts manager.AddOptions) (manager.Result, error) {
	fields := strings.Fields(m.cfg.Command)
	if len(fields) == 0 {
		return manager.Result{}, fmt.Errorf("custom manager %q has empty command", m.cfg.Name)
	}

	bin := fields[0]
	args := make([]string, 0, len(fields)+len(opts.ExtraArgs))
	replaced := false
	for _, f := range fields[1:] {
		if strings.Contains(f, PackagePlaceholder) {
			f = strings.ReplaceAll(f, PackagePlaceholder, spec)
			replaced = true
		}
		args = append(args, f)
	}
	args = append(args, opts.ExtraArgs...)
	if !replaced {
		args = append(args, spec)
	}

	return manager.Run(ctx, bin, args, opts)
}
