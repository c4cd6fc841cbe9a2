package tui

import (
	"context"
	"fmt"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/xvierd/ringdown/internal/domain"
	"github.com/xvierd/ringdown/internal/ports"
	"github.com/xvierd/ringdown/internal/theme"
)

// Options configures a timer UI run.
type Options struct {
	Machine  *domain.Countdown
	Themes   *theme.Controller
	Detector ports.BackgroundDetector

	// Prefill seeds the duration fields when the countdown has not been
	// started from the command line.
	Prefill domain.Config

	// Inline renders in the scrollback instead of the alternate screen.
	Inline bool
}

// Timer runs the countdown interface with Bubbletea.
type Timer struct {
	opts    Options
	program *tea.Program
	mu      sync.RWMutex
	wg      sync.WaitGroup
}

// New creates a timer UI runner.
func New(opts Options) *Timer {
	return &Timer{opts: opts}
}

// Run starts the interface and blocks until the user quits or ctx is
// cancelled.
func (t *Timer) Run(ctx context.Context) error {
	progOpts := []tea.ProgramOption{tea.WithReportFocus()}

	var model tea.Model
	if t.opts.Inline {
		model = NewInlineModel(t.opts.Machine, t.opts.Themes, t.opts.Detector, t.opts.Prefill)
	} else {
		model = NewModel(t.opts.Machine, t.opts.Themes, t.opts.Detector, t.opts.Prefill)
		progOpts = append(progOpts, tea.WithAltScreen())
	}

	t.mu.Lock()
	t.program = tea.NewProgram(model, progOpts...)
	t.mu.Unlock()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	t.wg.Add(1)
	go func() {
		defer t.wg.Done()
		<-ctx.Done()
		t.Stop()
	}()

	_, err := t.program.Run()

	cancel()
	t.wg.Wait()

	if err != nil {
		return fmt.Errorf("running timer ui: %w", err)
	}
	return nil
}

// Stop asks a running interface to quit. The run context watcher calls it
// on cancellation; it is also safe before Run, when no program exists yet.
func (t *Timer) Stop() {
	t.mu.RLock()
	program := t.program
	t.mu.RUnlock()
	if program != nil {
		program.Quit()
	}
}
