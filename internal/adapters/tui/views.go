package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/xvierd/ringdown/internal/domain"
	"github.com/xvierd/ringdown/internal/theme"
)

// Ring sizing limits, in cell radius.
const (
	minRingRadius = 5
	maxRingRadius = 10
)

// viewSetup renders the duration entry phase.
func (m Model) viewSetup(p theme.Palette) string {
	title := lipgloss.NewStyle().Foreground(lipgloss.Color(p.Label)).Bold(true)
	help := lipgloss.NewStyle().Foreground(lipgloss.Color(p.Help))
	accent := lipgloss.NewStyle().Foreground(lipgloss.Color(p.Accent))

	start := help.Render("enter start")
	if m.machine.CanStart() {
		start = accent.Render("enter start")
	}
	hints := start + help.Render("  ·  tab next field  ·  t theme  ·  q quit")

	return lipgloss.JoinVertical(lipgloss.Center,
		title.Render("Set timer"),
		"",
		m.form.Labels(p),
		m.form.View(p),
		"",
		hints,
	)
}

// viewCountdown renders the started phases: the ring with the readout
// inside, or a compact stack when the window is too small for a ring.
func (m Model) viewCountdown(p theme.Palette) string {
	radius := m.ringRadius()

	status := m.statusLine(p)
	controls := controlHints(m.machine, p)

	if radius < minRingRadius {
		readout := lipgloss.NewStyle().Foreground(lipgloss.Color(p.Readout)).Bold(true)
		return lipgloss.JoinVertical(lipgloss.Center,
			readout.Render(m.machine.Clock()),
			"",
			status,
			controls,
		)
	}

	circ := Circumference(radius)
	offset := DashOffset(m.machine.Remaining(), m.machine.Original(), m.machine.Started(), circ)
	drawn := 1 - offset/circ

	colors := ringColors{start: p.ArcStart, end: p.ArcEnd, track: p.Track}
	if m.machine.Phase() == domain.PhasePaused {
		colors.start, colors.end = p.PausedStart, p.PausedEnd
	}

	ring := renderRing(radius, drawn, colors, m.centerLines(radius, p))

	return lipgloss.JoinVertical(lipgloss.Center,
		ring,
		"",
		status,
		controls,
	)
}

// centerLines picks the readout that fits the ring interior: block digits
// when there is room, a plain styled clock otherwise.
func (m Model) centerLines(radius int, p theme.Palette) []string {
	clock := m.machine.Clock()
	innerCols := (2*radius - 3) * 2

	if bigClockWidth(clock) <= innerCols && bigClockHeight <= 2*radius-3 {
		return bigClockLines(clock, p.Readout)
	}

	style := lipgloss.NewStyle().Foreground(lipgloss.Color(p.Readout)).Bold(true)
	return []string{style.Render(clock)}
}

// ringRadius fits the ring to the window, leaving rows for the lines below.
func (m Model) ringRadius() int {
	if m.width == 0 || m.height == 0 {
		return maxRingRadius
	}
	byHeight := (m.height - 5) / 2
	byWidth := (m.width - 2) / 4
	r := byHeight
	if byWidth < r {
		r = byWidth
	}
	if r > maxRingRadius {
		r = maxRingRadius
	}
	return r
}

// statusLine names the current phase.
func (m Model) statusLine(p theme.Palette) string {
	switch m.machine.Phase() {
	case domain.PhaseRunning:
		return lipgloss.NewStyle().Foreground(lipgloss.Color(p.Label)).Render("counting down")
	case domain.PhasePaused:
		return lipgloss.NewStyle().Foreground(lipgloss.Color(p.PausedStart)).Bold(true).Render("paused")
	case domain.PhaseFinished:
		return lipgloss.NewStyle().Foreground(lipgloss.Color(p.Accent)).Bold(true).Render("time's up!")
	}
	return ""
}

// controlHints renders the key hints for the started phases, dimming
// disabled actions.
func controlHints(machine *domain.Countdown, p theme.Palette) string {
	enabled := lipgloss.NewStyle().Foreground(lipgloss.Color(p.Label))
	disabled := lipgloss.NewStyle().Foreground(lipgloss.Color(p.Help))
	primary := lipgloss.NewStyle().Foreground(lipgloss.Color(p.Accent)).Bold(true)

	var parts []string

	pauseHint := "[p]ause"
	if !machine.Running() {
		pauseHint = "[p]resume"
	}
	switch {
	case machine.Running():
		parts = append(parts, enabled.Render(pauseHint))
	case machine.CanStart():
		parts = append(parts, primary.Render(pauseHint))
	default:
		parts = append(parts, disabled.Render(pauseHint))
	}

	if machine.CanReset() {
		parts = append(parts, enabled.Render("[r]eset"))
	} else {
		parts = append(parts, disabled.Render("[r]eset"))
	}

	if machine.CanDelete() {
		parts = append(parts, enabled.Render("[d]elete"))
	} else {
		parts = append(parts, disabled.Render("[d]elete"))
	}

	parts = append(parts, disabled.Render("[t]heme"), disabled.Render("[q]uit"))

	return strings.Join(parts, "  ")
}
