// Package tui provides the terminal user interface implementation using the
// Bubbletea framework. Two render surfaces share one countdown machine: the
// fullscreen ring view and the compact inline view.
package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/xvierd/ringdown/internal/domain"
	"github.com/xvierd/ringdown/internal/ports"
	"github.com/xvierd/ringdown/internal/theme"
)

// appName is the static window title, and the suffix of the running one.
const appName = "ringdown"

// tickMsg is sent on every countdown tick. gen identifies the tick chain it
// belongs to; messages from orphaned chains are dropped.
type tickMsg struct {
	gen int
	at  time.Time
}

// tickCmd schedules the next tick of the given chain.
func tickCmd(gen int) tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg{gen: gen, at: t}
	})
}

// timerCore is the state both render surfaces share: the countdown machine,
// the theme controller, the live tick chain, and the last window title sent.
type timerCore struct {
	machine  *domain.Countdown
	themes   *theme.Controller
	detector ports.BackgroundDetector
	tickGen  int
	title    string
}

func newTimerCore(machine *domain.Countdown, themes *theme.Controller, detector ports.BackgroundDetector) timerCore {
	return timerCore{machine: machine, themes: themes, detector: detector}
}

// apply maps a timer command onto a state-machine transition. Disabled
// commands are dropped silently. Start and pause invalidate any pending tick
// so at most one chain is ever live.
func (c *timerCore) apply(cmd ports.TimerCommand) tea.Cmd {
	switch cmd {
	case ports.CmdStart:
		if !c.machine.CanStart() {
			return nil
		}
		c.machine.Start()
		c.tickGen++
		return tea.Batch(tickCmd(c.tickGen), c.titleCmd())

	case ports.CmdPause:
		if !c.machine.Running() {
			return nil
		}
		c.machine.Pause()
		c.tickGen++
		return c.titleCmd()

	case ports.CmdReset:
		if !c.machine.CanReset() {
			return nil
		}
		c.machine.Reset()
		c.tickGen++
		return c.titleCmd()

	case ports.CmdDelete:
		c.machine.Delete()
		c.tickGen++
		return c.titleCmd()
	}
	return nil
}

// onTick consumes a tick message: stale chains are dropped, live ones
// decrement the machine and re-arm until the countdown stops running.
func (c *timerCore) onTick(msg tickMsg) tea.Cmd {
	if msg.gen != c.tickGen {
		return nil
	}
	c.machine.Tick()
	if !c.machine.Running() {
		return c.titleCmd()
	}
	return tea.Batch(tickCmd(c.tickGen), c.titleCmd())
}

// onFocus re-checks the terminal background when focus returns. Detection
// overwrites the mode, a manual toggle included.
func (c *timerCore) onFocus() {
	if c.detector == nil {
		return
	}
	if dark, ok := c.detector.Dark(); ok {
		c.themes.SetDetected(dark)
	}
}

// titleCmd mirrors the countdown into the window title: "HH:MM:SS - ringdown"
// while running, the bare app name otherwise. No-op when unchanged.
func (c *timerCore) titleCmd() tea.Cmd {
	want := appName
	if c.machine.Running() {
		want = fmt.Sprintf("%s - %s", c.machine.Clock(), appName)
	}
	if want == c.title {
		return nil
	}
	c.title = want
	return tea.SetWindowTitle(want)
}

// startCmd arms the tick chain for a machine that was started before the
// program ran (the direct-start CLI path). It is called from Init, where
// model mutations are discarded, so it must not touch the generation
// counter: the pre-armed chain runs as generation zero.
func (c *timerCore) startCmd() tea.Cmd {
	if !c.machine.Running() {
		return nil
	}
	return tickCmd(c.tickGen)
}

// Model is the fullscreen TUI: the duration form while configuring, then the
// ring with the readout inside and the controls below.
type Model struct {
	timerCore
	form   durationForm
	width  int
	height int
}

// NewModel builds the fullscreen model. prefill seeds the duration fields
// when the countdown has not already been started by the CLI.
func NewModel(machine *domain.Countdown, themes *theme.Controller, detector ports.BackgroundDetector, prefill domain.Config) Model {
	return Model{
		timerCore: newTimerCore(machine, themes, detector),
		form:      newDurationForm(prefill),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.startCmd(), m.titleCmd()}
	if m.machine.Phase() == domain.PhaseConfiguring {
		cmds = append(cmds, m.form.FocusCmd())
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
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

// handleKey dispatches a key press for the current phase.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "t":
		m.themes.Toggle()
		return m, nil
	}

	if m.machine.Phase() == domain.PhaseConfiguring {
		return m.handleSetupKey(msg)
	}
	return m.handleControlKey(msg)
}

// handleSetupKey drives the duration form and the start control.
func (m Model) handleSetupKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
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

// handleControlKey drives the running/paused/finished controls.
func (m Model) handleControlKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
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
func (m Model) View() string {
	p := m.themes.Palette()

	var content string
	if m.machine.Phase() == domain.PhaseConfiguring {
		content = m.viewSetup(p)
	} else {
		content = m.viewCountdown(p)
	}

	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}
