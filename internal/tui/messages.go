// Package tui provides the terminal user interface for reqmig.
package tui

// Message types for TUI state updates.
// These are sent to the TUI to trigger updates.

// DepStartedMsg is sent when a dependency add begins.
type DepStartedMsg struct {
	Spec  string
	Index int
	Total int
}

// DepFinishedMsg is sent when a dependency add finishes.
type DepFinishedMsg struct {
	Spec    string
	Ok      bool
	Skipped bool
	Error   string
}

// OutputMsg is sent for real-time package manager output streaming.
type OutputMsg struct {
	Line string
}

// QuitMsg is sent to stop the TUI.
type QuitMsg struct {
	Reason string
}
