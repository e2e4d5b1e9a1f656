package manager

import (
	"github.com/reqmig/reqmig/internal/errors"
	"github.com/reqmig/reqmig/internal/logging"
	"github.com/reqmig/reqmig/internal/project"
)

// Discovery handles manager detection and selection.
type Discovery struct {
	registry *Registry
}

// NewDiscovery creates a new Discovery with the given registry.
func NewDiscovery(registry *Registry) *Discovery {
	return &Discovery{registry: registry}
}

// Select resolves the manager to use for a project directory.
//
// Resolution order:
//  1. An explicitly configured name (flag or config) wins.
//  2. A manager whose manifests are already present in the project.
//  3. The single available manager, when there is exactly one.
//
// With multiple available managers and no other signal the selection is
// ambiguous; reqmig is non-interactive, so the error tells the user to
// pass --manager or set manager.default.
func (d *Discovery) Select(configured string, projectDir string) (Manager, error) {
	if configured != "" {
		return d.registry.Select(configured)
	}

	available := d.registry.Available()
	if len(available) == 0 {
		return nil, errors.NoManagersAvailable(d.registry.Names())
	}

	// Lock files and manifests in the project decide before anything else.
	if info, err := project.Detect(projectDir); err == nil && info.ManagerHint != "" {
		for _, m := range available {
			if m.Name() == info.ManagerHint {
				logging.Debug("manager resolved from project markers",
					"manager", m.Name(), "markers", info.Markers)
				return m, nil
			}
		}
	}

	// Fall back to each backend's own detection, which can look deeper
	// than the marker scan (e.g. pyproject tool tables).
	for _, m := range available {
		if m.DetectsProject(projectDir) {
			logging.Debug("manager detected from project manifests", "manager", m.Name())
			return m, nil
		}
	}

	if len(available) == 1 {
		return available[0], nil
	}

	names := make([]string, 0, len(available))
	for _, m := range available {
		names = append(names, m.Name())
	}
	return nil, errors.AmbiguousManagers(names)
}
