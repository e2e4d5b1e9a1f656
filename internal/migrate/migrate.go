// Package migrate provides the sequential migration loop for reqmig.
// It walks the parsed requirements file in order and invokes the selected
// package manager's add operation once per dependency, blocking on each
// invocation before moving to the next line.
package migrate

import (
	"context"
	"io"
	"time"

	"github.com/reqmig/reqmig/internal/config"
	"github.com/reqmig/reqmig/internal/errors"
	"github.com/reqmig/reqmig/internal/logging"
	"github.com/reqmig/reqmig/internal/manager"
	"github.com/reqmig/reqmig/internal/requirements"
)

// EventType identifies the type of migration event.
type EventType string

const (
	EventMigrationStarted   EventType = "migration_started"
	EventMigrationCompleted EventType = "migration_completed"
	EventMigrationHalted    EventType = "migration_halted"
	EventDepStarted         EventType = "dep_started"
	EventDepAdded           EventType = "dep_added"
	EventDepFailed          EventType = "dep_failed"
	EventDepSkipped         EventType = "dep_skipped"
)

// Event represents a migration event for observers (CLI output, TUI, logging).
type Event struct {
	Type EventType
	// Spec is the dependency specifier the event refers to, empty for
	// migration-level events.
	Spec string
	// Index is the 1-based position of the dependency, Total the overall count.
	Index int
	Total int
	// Message carries additional human-readable context.
	Message string
	// Err is set for failure events.
	Err       error
	Timestamp time.Time
}

// EventHandler is a callback for migration events.
type EventHandler func(event Event)

// Options configures migration execution.
type Options struct {
	// OnFailure controls whether a failed add aborts the batch.
	OnFailure config.FailureMode
	// Timeout is the per-invocation time limit (0 disables).
	Timeout time.Duration
	// DryRun reports what would be invoked without running anything.
	DryRun bool
	// ExtraArgs are passed through to every add invocation.
	ExtraArgs []string
	// LogWriter receives real-time manager output (optional).
	LogWriter io.Writer
	// OnEvent is called for each migration event (optional).
	OnEvent EventHandler
}

// DefaultOptions returns default migration options.
func DefaultOptions() *Options {
	return &Options{
		OnFailure: config.FailureContinue,
		Timeout:   config.DefaultTimeout,
	}
}

// DepResult records the outcome for a single dependency.
type DepResult struct {
	// Spec is the dependency specifier as it appeared in the file.
	Spec string `json:"spec"`
	// Ok indicates the add invocation succeeded (always true for dry runs).
	Ok bool `json:"ok"`
	// ExitCode is the manager's exit code.
	ExitCode int `json:"exit_code"`
	// Output is the combined output of the invocation.
	Output string `json:"output,omitempty"`
	// Duration is how long the invocation took.
	Duration time.Duration `json:"duration"`
}

// Summary aggregates the results of a migration run.
type Summary struct {
	Total    int           `json:"total"`
	Added    int           `json:"added"`
	Failed   int           `json:"failed"`
	Skipped  int           `json:"skipped"`
	Results  []DepResult   `json:"results"`
	Duration time.Duration `json:"duration"`
}

// Migrator runs the migration for one requirements file against one manager.
type Migrator struct {
	manager    manager.Manager
	projectDir string
	opts       *Options
}

// New creates a new Migrator.
func New(m manager.Manager, projectDir string, opts *Options) *Migrator {
	if opts == nil {
		opts = DefaultOptions()
	}
	return &Migrator{
		manager:    m,
		projectDir: projectDir,
		opts:       opts,
	}
}

// Run migrates every dependency in the file, in original order.
// Each invocation blocks until the manager process exits before the next
// line is processed. In continue mode failures are recorded in the summary
// and the run carries on; in halt mode the first failure aborts the run
// with a typed error.
func (m *Migrator) Run(ctx context.Context, file *requirements.File) (*Summary, error) {
	specs := file.Specs()
	summary := &Summary{
		Total:   len(specs),
		Results: make([]DepResult, 0, len(specs)),
	}
	start := time.Now()

	log := logging.With("manager", m.manager.Name())
	log.Info("migration started",
		"file", file.Path,
		"deps", len(specs),
		"dry_run", m.opts.DryRun,
	)
	m.emit(Event{Type: EventMigrationStarted, Total: len(specs)})

	for i, spec := range specs {
		if err := ctx.Err(); err != nil {
			summary.Duration = time.Since(start)
			return summary, errors.Wrap(err, errors.ErrManager, "migration canceled")
		}

		m.emit(Event{Type: EventDepStarted, Spec: spec, Index: i + 1, Total: len(specs)})

		if m.opts.DryRun {
			summary.Skipped++
			summary.Results = append(summary.Results, DepResult{Spec: spec, Ok: true})
			m.emit(Event{Type: EventDepSkipped, Spec: spec, Index: i + 1, Total: len(specs), Message: "dry run"})
			continue
		}

		result, err := m.addOne(ctx, spec)
		depResult := DepResult{
			Spec:     spec,
			Ok:       err == nil && result.IsSuccess(),
			ExitCode: result.ExitCode,
			Output:   result.Output,
			Duration: result.Duration,
		}
		summary.Results = append(summary.Results, depResult)

		if depResult.Ok {
			summary.Added++
			log.Debug("dependency added",
				"package", requirements.BaseName(spec), "spec", spec, "duration", result.Duration)
			m.emit(Event{Type: EventDepAdded, Spec: spec, Index: i + 1, Total: len(specs)})
			continue
		}

		summary.Failed++
		failErr := err
		if failErr == nil {
			failErr = errors.AddFailed(m.manager.Name(), spec, result.ExitCode, result.Output)
		}
		log.Warn("dependency failed",
			"package", requirements.BaseName(spec), "spec", spec, "exit_code", result.ExitCode)
		m.emit(Event{Type: EventDepFailed, Spec: spec, Index: i + 1, Total: len(specs), Err: failErr})

		if m.opts.OnFailure == config.FailureHalt {
			summary.Duration = time.Since(start)
			log.Error("migration halted", "spec", spec)
			m.emit(Event{Type: EventMigrationHalted, Spec: spec, Err: failErr})
			return summary, failErr
		}
	}

	summary.Duration = time.Since(start)
	log.Info("migration completed",
		"added", summary.Added,
		"failed", summary.Failed,
		"skipped", summary.Skipped,
		"duration", summary.Duration,
	)
	m.emit(Event{Type: EventMigrationCompleted, Total: len(specs)})

	return summary, nil
}

// addOne invokes the manager's add operation for a single specifier,
// applying the per-invocation timeout.
func (m *Migrator) addOne(ctx context.Context, spec string) (manager.Result, error) {
	if m.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.opts.Timeout)
		defer cancel()
	}

	result, err := m.manager.Add(ctx, spec, manager.AddOptions{
		WorkDir:   m.projectDir,
		ExtraArgs: m.opts.ExtraArgs,
		LogWriter: m.opts.LogWriter,
	})
	if err != nil && ctx.Err() == context.DeadlineExceeded {
		return result, errors.AddTimeout(m.manager.Name(), spec, m.opts.Timeout)
	}
	return result, err
}

// emit delivers an event to the configured handler, stamping the time.
func (m *Migrator) emit(event Event) {
	if m.opts.OnEvent == nil {
		return
	}
	event.Timestamp = time.Now()
	m.opts.OnEvent(event)
}
