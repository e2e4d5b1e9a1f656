package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/reqmig/reqmig/internal/tui/styles"
)

// ProgressData contains the data to display in the progress bar.
type ProgressData struct {
	Completed int
	Failed    int
	Total     int
}

// Progress is a component that displays migration progress as a bar.
type Progress struct {
	data  ProgressData
	width int
}

// NewProgress creates a new Progress component.
func NewProgress() *Progress {
	return &Progress{}
}

// SetData updates the progress data.
func (p *Progress) SetData(data ProgressData) {
	p.data = data
}

// SetWidth sets the width for the progress bar.
func (p *Progress) SetWidth(width int) {
	p.width = width
}

// View renders the progress bar.
func (p *Progress) View() string {
	done := p.data.Completed + p.data.Failed
	var percent float64
	if p.data.Total > 0 {
		percent = float64(done) / float64(p.data.Total)
	}

	barWidth := 20
	if p.width > 60 {
		barWidth = 30
	}
	if p.width > 80 {
		barWidth = 40
	}

	filled := int(percent * float64(barWidth))
	empty := barWidth - filled

	filledStr := styles.ProgressFilledStyle.Render(strings.Repeat("█", filled))
	emptyStr := styles.ProgressEmptyStyle.Render(strings.Repeat("░", empty))
	bar := filledStr + emptyStr

	countStyle := lipgloss.NewStyle().Foreground(styles.Secondary)
	count := countStyle.Render(fmt.Sprintf("%d/%d deps", done, p.data.Total))

	sep := lipgloss.NewStyle().
		Foreground(styles.Muted).
		Render(" │ ")

	content := fmt.Sprintf("Progress: %s%s%s", bar, sep, count)

	if p.data.Failed > 0 {
		content = fmt.Sprintf("%s%s%s", content, sep,
			styles.ErrorStyle.Render(fmt.Sprintf("%d failed", p.data.Failed)))
	}

	return lipgloss.NewStyle().Padding(0, 1).Render(content)
}
