package theme

import (
	"os"

	"github.com/charmbracelet/x/term"
	"github.com/muesli/termenv"
)

// TerminalDetector answers background queries from the terminal ringdown is
// attached to. The OSC query must happen before Bubbletea takes over the
// tty, so the answer is taken once at construction and served from cache.
type TerminalDetector struct {
	dark bool
	ok   bool
}

// NewTerminalDetector probes the terminal background. On a non-tty stdout
// the detector reports no answer and callers fall back to their default.
func NewTerminalDetector() *TerminalDetector {
	if !term.IsTerminal(os.Stdout.Fd()) {
		return &TerminalDetector{}
	}
	out := termenv.NewOutput(os.Stdout)
	return &TerminalDetector{dark: out.HasDarkBackground(), ok: true}
}

// Dark implements ports.BackgroundDetector.
func (d *TerminalDetector) Dark() (bool, bool) {
	return d.dark, d.ok
}
