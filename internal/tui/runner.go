package tui

import (
	"bytes"
	"fmt"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/reqmig/reqmig/internal/migrate"
)

// Runner drives a migration behind a bubbletea program, translating
// migration events into TUI messages.
type Runner struct {
	program *tea.Program
	model   *Model
}

// NewRunner creates a runner for the given model.
func NewRunner(model *Model) *Runner {
	return &Runner{
		program: tea.NewProgram(model, tea.WithAltScreen()),
		model:   model,
	}
}

// Send delivers a message to the running program.
func (r *Runner) Send(msg tea.Msg) {
	r.program.Send(msg)
}

// HandleEvent converts a migration event into a TUI message. Install it
// as the migration's event handler.
func (r *Runner) HandleEvent(ev migrate.Event) {
	switch ev.Type {
	case migrate.EventDepStarted:
		r.Send(DepStartedMsg{Spec: ev.Spec, Index: ev.Index, Total: ev.Total})
	case migrate.EventDepAdded:
		r.Send(DepFinishedMsg{Spec: ev.Spec, Ok: true})
	case migrate.EventDepSkipped:
		r.Send(DepFinishedMsg{Spec: ev.Spec, Skipped: true})
	case migrate.EventDepFailed:
		errText := ev.Message
		if errText == "" && ev.Err != nil {
			errText = ev.Err.Error()
		}
		r.Send(DepFinishedMsg{Spec: ev.Spec, Error: errText})
	}
}

// OutputWriter returns a writer that streams package manager output into
// the log viewport, one line at a time.
func (r *Runner) OutputWriter() *LineWriter {
	return &LineWriter{send: func(line string) {
		r.Send(OutputMsg{Line: line})
	}}
}

// Run starts the program and executes migrateFn concurrently. It blocks
// until the migration finishes and the user has seen the final state, or
// until the user quits. Returns the migration error, if any.
func (r *Runner) Run(migrateFn func() error) error {
	var migrateErr error
	done := make(chan struct{})

	go func() {
		defer close(done)
		migrateErr = migrateFn()
		reason := "Migration complete. Press q to exit."
		if migrateErr != nil {
			reason = fmt.Sprintf("Migration stopped: %v. Press q to exit.", migrateErr)
		}
		r.Send(QuitMsg{Reason: reason})
	}()

	if _, err := r.program.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}

	<-done
	return migrateErr
}

// LineWriter buffers writes and emits complete lines. Safe for
// concurrent use.
type LineWriter struct {
	mu   sync.Mutex
	buf  bytes.Buffer
	send func(line string)
}

func (w *LineWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.buf.Write(p)
	for {
		line, err := w.buf.ReadString('\n')
		if err != nil {
			// Partial line stays buffered until the newline arrives.
			w.buf.WriteString(line)
			break
		}
		w.send(trimNewline(line))
	}
	return len(p), nil
}

// Flush emits any buffered partial line.
func (w *LineWriter) Flush() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.buf.Len() > 0 {
		w.send(trimNewline(w.buf.String()))
		w.buf.Reset()
	}
}

func trimNewline(s string) string {
	for len(s) > 0 && (s[len(s)-1] == '\n' || s[len(s)-1] == '\r') {
		s = s[:len(s)-1]
	}
	return s
}
