package manager

import (
	"sort"
	"sync"

	"github.com/reqmig/reqmig/internal/errors"
)

// Registry manages registered package manager plugins.
type Registry struct {
	mu       sync.RWMutex
	managers map[string]Manager
}

// NewRegistry creates a new manager registry.
func NewRegistry() *Registry {
	return &Registry{
		managers: make(map[string]Manager),
	}
}

// Register adds a manager to the registry.
// If a manager with the same name already exists, it will be replaced.
func (r *Registry) Register(m Manager) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.managers[m.Name()] = m
}

// Unregister removes a manager from the registry.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.managers, name)
}

// Get retrieves a manager by name.
// Returns the manager and true if found, or nil and false if not found.
func (r *Registry) Get(name string) (Manager, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.managers[name]
	return m, ok
}

// All returns all registered managers, sorted by name.
func (r *Registry) All() []Manager {
	r.mu.RLock()
	defer r.mu.RUnlock()

	managers := make([]Manager, 0, len(r.managers))
	for _, m := range r.managers {
		managers = append(managers, m)
	}

	// Sort by name for consistent ordering
	sort.Slice(managers, func(i, j int) bool {
		return managers[i].Name() < managers[j].Name()
	})

	return managers
}

// Available returns all managers that are installed and available.
// Managers are sorted by name for consistent ordering.
func (r *Registry) Available() []Manager {
	r.mu.RLock()
	defer r.mu.RUnlock()

	managers := make([]Manager, 0, len(r.managers))
	for _, m := range r.managers {
		if m.IsAvailable() {
			managers = append(managers, m)
		}
	}

	sort.Slice(managers, func(i, j int) bool {
		return managers[i].Name() < managers[j].Name()
	})

	return managers
}

// Names returns the names of all registered managers.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.managers))
	for name := range r.managers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Count returns the number of registered managers.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.managers)
}

// Select resolves a manager by explicit name.
// The name must refer to a registered, available manager.
func (r *Registry) Select(name string) (Manager, error) {
	m, ok := r.Get(name)
	if !ok {
		return nil, errors.ManagerNotFound(name, r.availableNames())
	}
	if !m.IsAvailable() {
		return nil, errors.ManagerNotFound(name, r.availableNames())
	}
	return m, nil
}

func (r *Registry) availableNames() []string {
	available := r.Available()
	names := make([]string, 0, len(available))
	for _, m := range available {
		names = append(names, m.Name())
	}
	return names
}
