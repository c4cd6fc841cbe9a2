package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"

	"github.com/xvierd/ringdown/internal/domain"
	"github.com/xvierd/ringdown/internal/ports"
	"github.com/xvierd/ringdown/internal/theme"
)

// getTerminalWidth returns the current terminal width, defaulting to 80.
func getTerminalWidth() int {
	w, _, err := term.GetSize(os.Stdout.Fd())
	if err != nil || w < 40 {
		return 80
	}
	return w
}

// InlineModel is the compact renderer: duration entry and countdown on a few
// lines of the scrollback instead of the alternate screen.
type InlineModel struct {
	timerCore
	form  durationForm
	width int
}

// NewInlineModel builds the inline model. prefill seeds the duration fields
// when the countdown has not already been started by the CLI.
func NewInlineModel(machine *domain.Countdown, themes *theme.Controller, detector ports.BackgroundDetector, prefill domain.Config) InlineModel {
	return InlineModel{
		timerCore: newTimerCore(machine, themes, detector),
		form:      newDurationForm(prefill),
		width:     getTerminalWidth(),
	}
}

// Init implements tea.Model.
func (m InlineModel) Init() tea.Cmd {
	cmds := []tea.Cmd{m.startCmd(), m.titleCmd()}
	if m.machine.Phase() == domain.PhaseConfiguring {
		cmds = append(cmds, m.form.FocusCmd())
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m InlineModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
		}
		return m, nil

	case tea.FocusMsg:
		m.onFocus()
		return m, nil

	case tickMsg:
		cmd := m.onTick(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.machine.Phase() == domain.PhaseConfiguring {
		var cmd tea.Cmd
		m.form, cmd = m.form.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m InlineModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "t":
		m.themes.Toggle()
		return m, nil
	}

	if m.machine.Phase() == domain.PhaseConfiguring {
		switch msg.String() {
		case "tab", "right":
			cmd := m.form.Next()
			return m, cmd
		case "shift+tab", "left":
			cmd := m.form.Prev()
			return m, cmd
		case "enter", "s":
			m.machine.SetConfig(m.form.Config())
			cmd := m.apply(ports.CmdStart)
			if cmd != nil {
				m.form.Blur()
			}
			return m, cmd
		}
		var cmd tea.Cmd
		m.form, cmd = m.form.Update(msg)
		m.machine.SetConfig(m.form.Config())
		return m, cmd
	}

	switch msg.String() {
	case "s", "enter":
		cmd := m.apply(ports.CmdStart)
		return m, cmd
	case " ", "p":
		var cmd tea.Cmd
		if m.machine.Running() {
			cmd = m.apply(ports.CmdPause)
		} else {
			cmd = m.apply(ports.CmdStart)
		}
		return m, cmd
	case "r":
		cmd := m.apply(ports.CmdReset)
		return m, cmd
	case "d":
		cmd := m.apply(ports.CmdDelete)
		m.form.Clear()
		blink := m.form.FocusCmd()
		return m, tea.Batch(cmd, blink)
	}
	return m, nil
}

// View implements tea.Model.
func (m InlineModel) View() string {
	p := m.themes.Palette()
	if m.machine.Phase() == domain.PhaseConfiguring {
		return m.viewSetup(p)
	}
	return m.viewCountdown(p)
}

func (m InlineModel) viewSetup(p theme.Palette) string {
	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(p.Label))
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color(p.Help))
	accent := lipgloss.NewStyle().Foreground(lipgloss.Color(p.Accent))

	start := dim.Render("enter start")
	if m.machine.CanStart() {
		start = accent.Render("enter start")
	}

	var b strings.Builder
	b.WriteString(title.Render("  Timer: "))
	b.WriteString(m.form.View(p))
	b.WriteString(dim.Render("   "))
	b.WriteString(start)
	b.WriteString(dim.Render(" · tab next · q quit"))
	b.WriteString("\n")
	return b.String()
}

func (m InlineModel) viewCountdown(p theme.Palette) string {
	accent := lipgloss.NewStyle().Foreground(lipgloss.Color(p.Readout)).Bold(true)
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color(p.Help))
	paused := lipgloss.NewStyle().Foreground(lipgloss.Color(p.PausedStart)).Bold(true)

	var b strings.Builder

	// Line 1: readout + phase tag.
	switch m.machine.Phase() {
	case domain.PhasePaused:
		b.WriteString(paused.Render(fmt.Sprintf("  %s  ⏸ paused", m.machine.Clock())))
	case domain.PhaseFinished:
		b.WriteString(accent.Render(fmt.Sprintf("  %s  time's up!", m.machine.Clock())))
	default:
		b.WriteString(accent.Render("  " + m.machine.Clock()))
	}
	b.WriteString("\n")

	// Line 2: progress bar, remaining fraction.
	barWidth := m.width - 16
	if barWidth < 20 {
		barWidth = 20
	}
	var pbar progress.Model
	if m.machine.Phase() == domain.PhasePaused {
		pbar = progress.New(progress.WithGradient(p.PausedStart, p.PausedEnd), progress.WithoutPercentage())
	} else {
		pbar = progress.New(progress.WithGradient(p.ArcStart, p.ArcEnd), progress.WithoutPercentage())
	}
	pbar.Width = barWidth
	frac := m.machine.Progress()
	b.WriteString("  " + pbar.ViewAs(frac))
	b.WriteString(dim.Render(fmt.Sprintf("  %d%%", int(frac*100))))
	b.WriteString("\n")

	// Line 3: controls.
	b.WriteString("  " + controlHints(m.machine, p))
	b.WriteString("\n")

	return b.String()
}
