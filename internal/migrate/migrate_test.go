package migrate

import (
	"context"
	stderrors "errors"
	"strings"
	"testing"

	"github.com/reqmig/reqmig/internal/config"
	"github.com/reqmig/reqmig/internal/errors"
	"github.com/reqmig/reqmig/internal/manager"
	"github.com/reqmig/reqmig/internal/requirements"
)

// scriptedManager is a test double that records add invocations and
// returns scripted exit codes per spec.
type scriptedManager struct {
	name      string
	calls     []string
	exitCodes map[string]int
	addErr    error
}

func (s *scriptedManager) Name() string                       { return s.name }
func (s *scriptedManager) Description() string                { return "scripted" }
func (s *scriptedManager) IsAvailable() bool                  { return true }
func (s *scriptedManager) DetectsProject(dir string) bool     { return false }
func (s *scriptedManager) Add(ctx context.Context, spec string, opts manager.AddOptions) (manager.Result, error) {
	s.calls = append(s.calls, spec)
	if s.addErr != nil {
		return manager.Result{}, s.addErr
	}
	code := 0
	if s.exitCodes != nil {
		code = s.exitCodes[spec]
	}
	return manager.Result{Command: s.name + " add " + spec, ExitCode: code}, nil
}

func parseReqs(t *testing.T, content string) *requirements.File {
	t.Helper()
	f, err := requirements.Parse(strings.NewReader(content))
	if err != nil {
		t.Fatalf("failed to parse fixture: %v", err)
	}
	return f
}

func TestRun_InvokesOncePerSpecInOrder(t *testing.T) {
	mgr := &scriptedManager{name: "uv"}
	file := parseReqs(t, "flask==2.0.1\n# comment\nrequests>=2.28\n\nurllib3<2\n")

	m := New(mgr, t.TempDir(), nil)
	summary, err := m.Run(context.Background(), file)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	want := []string{"flask==2.0.1", "requests>=2.28", "urllib3<2"}
	if len(mgr.calls) != len(want) {
		t.Fatalf("expected %d invocations, got %d", len(want), len(mgr.calls))
	}
	for i, spec := range want {
		if mgr.calls[i] != spec {
			t.Errorf("invocation %d = %q, want %q", i, mgr.calls[i], spec)
		}
	}

	if summary.Total != 3 || summary.Added != 3 || summary.Failed != 0 {
		t.Errorf("summary = %+v, want 3 added", summary)
	}
}

func TestRun_CommentsAndBlanksOnly(t *testing.T) {
	mgr := &scriptedManager{name: "uv"}
	file := parseReqs(t, "# only\n\n   \n# comments\n")

	m := New(mgr, t.TempDir(), nil)
	summary, err := m.Run(context.Background(), file)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if len(mgr.calls) != 0 {
		t.Errorf("expected zero invocations, got %d", len(mgr.calls))
	}
	if summary.Total != 0 {
		t.Errorf("summary.Total = %d, want 0", summary.Total)
	}
}

func TestRun_ContinueOnFailure(t *testing.T) {
	mgr := &scriptedManager{
		name:      "uv",
		exitCodes: map[string]int{"broken==1": 2},
	}
	file := parseReqs(t, "flask\nbroken==1\nrequests\n")

	m := New(mgr, t.TempDir(), &Options{OnFailure: config.FailureContinue})
	summary, err := m.Run(context.Background(), file)
	if err != nil {
		t.Fatalf("Run() should not error in continue mode, got %v", err)
	}

	if len(mgr.calls) != 3 {
		t.Errorf("expected all 3 invocations, got %d", len(mgr.calls))
	}
	if summary.Added != 2 || summary.Failed != 1 {
		t.Errorf("summary = %+v, want 2 added 1 failed", summary)
	}
	if summary.Results[1].Ok {
		t.Error("failed dependency should be recorded as not ok")
	}
	if summary.Results[1].ExitCode != 2 {
		t.Errorf("ExitCode = %d, want 2", summary.Results[1].ExitCode)
	}
}

func TestRun_HaltOnFailure(t *testing.T) {
	mgr := &scriptedManager{
		name:      "uv",
		exitCodes: map[string]int{"broken==1": 1},
	}
	file := parseReqs(t, "flask\nbroken==1\nrequests\n")

	m := New(mgr, t.TempDir(), &Options{OnFailure: config.FailureHalt})
	summary, err := m.Run(context.Background(), file)
	if err == nil {
		t.Fatal("Run() should error in halt mode")
	}
	if !stderrors.Is(err, errors.ErrManager) {
		t.Errorf("expected ErrManager, got %v", err)
	}

	if len(mgr.calls) != 2 {
		t.Errorf("expected 2 invocations before halt, got %d", len(mgr.calls))
	}
	if summary.Added != 1 || summary.Failed != 1 {
		t.Errorf("summary = %+v, want 1 added 1 failed", summary)
	}
}

func TestRun_DryRun(t *testing.T) {
	mgr := &scriptedManager{name: "uv"}
	file := parseReqs(t, "flask\nrequests\n")

	m := New(mgr, t.TempDir(), &Options{DryRun: true})
	summary, err := m.Run(context.Background(), file)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if len(mgr.calls) != 0 {
		t.Errorf("dry run should not invoke the manager, got %d calls", len(mgr.calls))
	}
	if summary.Skipped != 2 || summary.Added != 0 {
		t.Errorf("summary = %+v, want 2 skipped", summary)
	}
}

func TestRun_EventsInOrder(t *testing.T) {
	mgr := &scriptedManager{
		name:      "uv",
		exitCodes: map[string]int{"broken": 1},
	}
	file := parseReqs(t, "flask\nbroken\n")

	var events []EventType
	m := New(mgr, t.TempDir(), &Options{
		OnFailure: config.FailureContinue,
		OnEvent: func(e Event) {
			events = append(events, e.Type)
		},
	})

	if _, err := m.Run(context.Background(), file); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	want := []EventType{
		EventMigrationStarted,
		EventDepStarted, EventDepAdded,
		EventDepStarted, EventDepFailed,
		EventMigrationCompleted,
	}
	if len(events) != len(want) {
		t.Fatalf("events = %v, want %v", events, want)
	}
	for i := range want {
		if events[i] != want[i] {
			t.Errorf("event %d = %v, want %v", i, events[i], want[i])
		}
	}
}

func TestRun_EventCarriesIndexAndTotal(t *testing.T) {
	mgr := &scriptedManager{name: "uv"}
	file := parseReqs(t, "flask\nrequests\n")

	var started []Event
	m := New(mgr, t.TempDir(), &Options{
		OnEvent: func(e Event) {
			if e.Type == EventDepStarted {
				started = append(started, e)
			}
		},
	})

	if _, err := m.Run(context.Background(), file); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if len(started) != 2 {
		t.Fatalf("expected 2 dep_started events, got %d", len(started))
	}
	if started[0].Index != 1 || started[0].Total != 2 || started[0].Spec != "flask" {
		t.Errorf("first event = %+v", started[0])
	}
	if started[1].Index != 2 || started[1].Spec != "requests" {
		t.Errorf("second event = %+v", started[1])
	}
}

func TestRun_CanceledContext(t *testing.T) {
	mgr := &scriptedManager{name: "uv"}
	file := parseReqs(t, "flask\n")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	m := New(mgr, t.TempDir(), nil)
	_, err := m.Run(ctx, file)
	if err == nil {
		t.Fatal("Run() should error on canceled context")
	}
	if len(mgr.calls) != 0 {
		t.Errorf("no invocations should happen after cancellation, got %d", len(mgr.calls))
	}
}
