// Package components provides reusable TUI components for reqmig.
package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/reqmig/reqmig/internal/tui/styles"
)

// LogViewport is a scrollable log viewer with auto-follow support.
// It holds the streamed package manager output.
type LogViewport struct {
	viewport   viewport.Model
	lines      []string
	autoFollow bool
	width      int
	height     int
}

// NewLogViewport creates a new LogViewport component.
func NewLogViewport() *LogViewport {
	vp := viewport.New(80, 20)
	vp.Style = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(styles.BorderColor)

	return &LogViewport{
		viewport:   vp,
		lines:      make([]string, 0, 256),
		autoFollow: true,
		width:      80,
		height:     20,
	}
}

// SetSize sets the viewport dimensions.
func (l *LogViewport) SetSize(width, height int) {
	l.width = width
	l.height = height
	// Account for border
	l.viewport.Width = width - 2
	l.viewport.Height = height - 2
}

// SetAutoFollow enables or disables auto-follow mode.
func (l *LogViewport) SetAutoFollow(enabled bool) {
	l.autoFollow = enabled
}

// AppendLine adds a line to the log.
func (l *LogViewport) AppendLine(line string) {
	l.lines = append(l.lines, line)
	l.viewport.SetContent(strings.Join(l.lines, "\n"))
	if l.autoFollow {
		l.viewport.GotoBottom()
	}
}

// LineCount returns the number of buffered lines.
func (l *LogViewport) LineCount() int {
	return len(l.lines)
}

// Update handles viewport scroll messages. Manual scrolling disables
// auto-follow until the user returns to the bottom.
func (l *LogViewport) Update(msg tea.Msg) (*LogViewport, tea.Cmd) {
	var cmd tea.Cmd
	l.viewport, cmd = l.viewport.Update(msg)
	if l.viewport.AtBottom() {
		l.autoFollow = true
	} else {
		l.autoFollow = false
	}
	return l, cmd
}

// View renders the log viewport.
func (l *LogViewport) View() string {
	return l.viewport.View()
}
