package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/reqmig/reqmig/internal/requirements"
	"github.com/reqmig/reqmig/internal/tui/components"
	"github.com/reqmig/reqmig/internal/tui/styles"
)

// Model is the root TUI model for a migration run.
type Model struct {
	manager  string
	filePath string

	spinner     *components.Spinner
	progress    components.ProgressData
	progressBar *components.Progress
	logView     *components.LogViewport

	width  int
	height int

	current   string
	done      bool
	doneMsg   string
	failed    bool
	startTime time.Time

	onCancel func()
}

// NewModel creates a migration TUI model. onCancel is invoked when the
// user quits before the run completes.
func NewModel(managerName, filePath string, total int, onCancel func()) *Model {
	sp := components.NewSpinner()
	sp.SetStatusText("Preparing migration...")
	sp.Start()

	data := components.ProgressData{Total: total}
	bar := components.NewProgress()
	bar.SetData(data)

	return &Model{
		manager:     managerName,
		filePath:    filePath,
		spinner:     sp,
		progress:    data,
		progressBar: bar,
		logView:     components.NewLogViewport(),
		startTime:   time.Now(),
		onCancel:    onCancel,
	}
}

func (m *Model) Init() tea.Cmd {
	return m.spinner.Init()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progressBar.SetWidth(m.width)
		logHeight := m.height - 10
		if logHeight < 3 {
			logHeight = 3
		}
		m.logView.SetSize(m.width-2, logHeight)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			if !m.done && m.onCancel != nil {
				m.onCancel()
			}
			return m, tea.Quit
		case "f":
			m.logView.SetAutoFollow(true)
			return m, nil
		}
		lv, cmd := m.logView.Update(msg)
		m.logView = lv
		return m, cmd

	case DepStartedMsg:
		m.current = msg.Spec
		// The spinner line shows the bare package name; the full
		// specifier lands in the log viewport on completion.
		m.spinner.SetStatusText(fmt.Sprintf("Adding %s (%d/%d)",
			requirements.BaseName(msg.Spec), msg.Index, msg.Total))
		return m, nil

	case DepFinishedMsg:
		switch {
		case msg.Skipped:
			m.logView.AppendLine(styles.WarningStyle.Render("~ " + msg.Spec + " (skipped)"))
		case msg.Ok:
			m.progress.Completed++
			m.logView.AppendLine(styles.SuccessStyle.Render("+ " + msg.Spec))
		default:
			m.progress.Completed++
			m.progress.Failed++
			line := styles.ErrorStyle.Render("x " + msg.Spec)
			if msg.Error != "" {
				line += " " + styles.HelpStyle.Render(msg.Error)
			}
			m.logView.AppendLine(line)
		}
		m.progressBar.SetData(m.progress)
		return m, nil

	case OutputMsg:
		m.logView.AppendLine(msg.Line)
		return m, nil

	case QuitMsg:
		// Hold the final screen so the summary stays readable; the
		// next q/ctrl+c actually exits.
		m.done = true
		m.doneMsg = msg.Reason
		m.failed = m.progress.Failed > 0
		return m, nil
	}

	sp, cmd := m.spinner.Update(msg)
	m.spinner = sp
	return m, cmd
}

func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render("reqmig"))
	b.WriteString("\n\n")

	b.WriteString(styles.HeaderLabelStyle.Render("Manager: "))
	b.WriteString(styles.HeaderValueStyle.Render(m.manager))
	b.WriteString("  ")
	b.WriteString(styles.HeaderLabelStyle.Render("File: "))
	b.WriteString(styles.HeaderValueStyle.Render(m.filePath))
	b.WriteString("\n\n")

	if m.done {
		if m.failed {
			b.WriteString(styles.WarningStyle.Render(m.doneMsg))
		} else {
			b.WriteString(styles.SuccessStyle.Render(m.doneMsg))
		}
	} else {
		b.WriteString(m.spinner.View())
	}
	b.WriteString("\n")

	b.WriteString(m.progressBar.View())
	b.WriteString("\n\n")

	b.WriteString(m.logView.View())
	b.WriteString("\n")

	b.WriteString(styles.HelpStyle.Render("q: quit • ↑/↓: scroll • f: follow"))

	return b.String()
}
