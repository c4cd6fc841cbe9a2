package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/xvierd/ringdown/internal/domain"
	"github.com/xvierd/ringdown/internal/theme"
)

// fieldCount is the number of duration fields: hours, minutes, seconds.
const fieldCount = 3

// durationForm is the pre-start entry surface: three bounded numeric fields.
// Both render modes embed it; values are only readable until the countdown
// starts.
type durationForm struct {
	inputs [fieldCount]textinput.Model
	focus  int
}

// newDurationForm builds the three fields, prefilled from cfg when any of
// its fields are set.
func newDurationForm(prefill domain.Config) durationForm {
	bounds := [fieldCount]int{domain.MaxHours, domain.MaxMinutes, domain.MaxSeconds}

	var f durationForm
	for i := range f.inputs {
		ti := textinput.New()
		ti.Placeholder = "00"
		ti.CharLimit = 2
		ti.Width = 2
		ti.Prompt = ""
		ti.Validate = boundedField(bounds[i])
		f.inputs[i] = ti
	}

	if prefill.TotalSeconds() > 0 {
		prefill = prefill.Normalize()
		f.inputs[0].SetValue(fmt.Sprintf("%02d", prefill.Hours))
		f.inputs[1].SetValue(fmt.Sprintf("%02d", prefill.Minutes))
		f.inputs[2].SetValue(fmt.Sprintf("%02d", prefill.Seconds))
	}

	f.inputs[0].Focus()
	return f
}

// boundedField rejects non-digits and values above max while typing.
func boundedField(max int) func(string) error {
	return func(s string) error {
		if s == "" {
			return nil
		}
		for _, r := range s {
			if r < '0' || r > '9' {
				return fmt.Errorf("digits only")
			}
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return err
		}
		if n > max {
			return fmt.Errorf("max %d", max)
		}
		return nil
	}
}

// Config reads the three fields into duration fields; empty fields count as
// zero.
func (f *durationForm) Config() domain.Config {
	return domain.Config{
		Hours:   fieldValue(f.inputs[0]),
		Minutes: fieldValue(f.inputs[1]),
		Seconds: fieldValue(f.inputs[2]),
	}.Normalize()
}

func fieldValue(ti textinput.Model) int {
	v := strings.TrimSpace(ti.Value())
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0
	}
	return n
}

// Clear zeroes all three fields (the delete transition) and focuses hours.
func (f *durationForm) Clear() {
	for i := range f.inputs {
		f.inputs[i].SetValue("")
		f.inputs[i].Blur()
	}
	f.focus = 0
	f.inputs[0].Focus()
}

// Blur drops focus from every field; used when the countdown starts.
func (f *durationForm) Blur() {
	for i := range f.inputs {
		f.inputs[i].Blur()
	}
}

// FocusCmd refocuses the current field, returning its cursor blink command.
func (f *durationForm) FocusCmd() tea.Cmd {
	f.inputs[f.focus].Focus()
	return f.inputs[f.focus].Cursor.BlinkCmd()
}

// Next moves focus to the following field, wrapping around.
func (f *durationForm) Next() tea.Cmd {
	return f.setFocus((f.focus + 1) % fieldCount)
}

// Prev moves focus to the preceding field, wrapping around.
func (f *durationForm) Prev() tea.Cmd {
	return f.setFocus((f.focus + fieldCount - 1) % fieldCount)
}

func (f *durationForm) setFocus(i int) tea.Cmd {
	f.inputs[f.focus].Blur()
	f.focus = i
	f.inputs[i].Focus()
	return f.inputs[i].Cursor.BlinkCmd()
}

// Update routes a message to the focused field.
func (f durationForm) Update(msg tea.Msg) (durationForm, tea.Cmd) {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, cmd
}

// View renders the field cluster as [hh]:[mm]:[ss] with the focused field
// accented.
func (f *durationForm) View(p theme.Palette) string {
	accent := lipgloss.NewStyle().Foreground(lipgloss.Color(p.Accent)).Bold(true)
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color(p.Label))
	colon := lipgloss.NewStyle().Foreground(lipgloss.Color(p.Help))

	parts := make([]string, 0, fieldCount*2-1)
	for i := range f.inputs {
		ti := f.inputs[i]
		if i == f.focus {
			ti.TextStyle = accent
			ti.Cursor.Style = accent
		} else {
			ti.TextStyle = dim
		}
		ti.PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(p.Help))
		parts = append(parts, ti.View())
		if i < fieldCount-1 {
			parts = append(parts, colon.Render(":"))
		}
	}
	return strings.Join(parts, " ")
}

// Labels renders the field captions aligned over the cluster.
func (f *durationForm) Labels(p theme.Palette) string {
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color(p.Help))
	return dim.Render("hh   mm   ss")
}
