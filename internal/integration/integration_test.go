package integration

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/xvierd/ringdown/internal/adapters/tui"
	"github.com/xvierd/ringdown/internal/config"
	"github.com/xvierd/ringdown/internal/domain"
	"github.com/xvierd/ringdown/internal/theme"
)

// writeTestConfig writes a config file into a temp dir and returns its path.
func writeTestConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func testController(cfg *config.Config) *theme.Controller {
	return theme.NewController(theme.ModeDark, cfg.Theme.Light, cfg.Theme.Dark)
}

func keyMsg(s string) tea.Msg {
	if s == "enter" {
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// TestLaunchWiring_ConfigPrefillsTheTimer tests the path from a config file
// on disk to a started countdown: load, prefill, one enter press.
func TestLaunchWiring_ConfigPrefillsTheTimer(t *testing.T) {
	path := writeTestConfig(t, "default_duration = \"25m\"\n")

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	prefill, ok := cfg.PrefillFields()
	if !ok {
		t.Fatal("expected a prefill from default_duration")
	}
	if prefill.TotalSeconds() != 25*60 {
		t.Fatalf("prefill total = %d, want %d", prefill.TotalSeconds(), 25*60)
	}

	machine := domain.New()
	m := tea.Model(tui.NewModel(machine, testController(cfg), nil, prefill))

	m, _ = m.Update(keyMsg("enter"))

	if machine.Phase() != domain.PhaseRunning {
		t.Errorf("phase after enter = %v, want running", machine.Phase())
	}
	if machine.Remaining() != 25*60 {
		t.Errorf("remaining = %d, want %d", machine.Remaining(), 25*60)
	}
}

// TestLaunchWiring_PaletteOverridesReachTheRenderer tests that a palette
// override in the config file survives load, resolution, and controller
// construction, and that an unparsable override falls back.
func TestLaunchWiring_PaletteOverridesReachTheRenderer(t *testing.T) {
	t.Run("valid override wins", func(t *testing.T) {
		path := writeTestConfig(t, "[theme.dark]\nreadout = \"#FFEE00\"\n")

		cfg, err := config.Load(path)
		if err != nil {
			t.Fatalf("failed to load config: %v", err)
		}

		p := testController(cfg).Palette()
		if p.Readout != "#FFEE00" {
			t.Errorf("readout = %q, want the override %q", p.Readout, "#FFEE00")
		}
		if p.ArcStart != theme.DefaultDark().ArcStart {
			t.Errorf("arc start = %q, want the default %q", p.ArcStart, theme.DefaultDark().ArcStart)
		}
	})

	t.Run("unparsable override falls back", func(t *testing.T) {
		path := writeTestConfig(t, "[theme.dark]\nreadout = \"#zzzzzz\"\n")

		cfg, err := config.Load(path)
		if err != nil {
			t.Fatalf("failed to load config: %v", err)
		}

		p := testController(cfg).Palette()
		if p.Readout != theme.DefaultDark().Readout {
			t.Errorf("readout = %q, want the default %q", p.Readout, theme.DefaultDark().Readout)
		}
	})
}

// TestLaunchWiring_DirectStartArmsTheTickChain tests the "ringdown 10:00"
// path: the countdown starts before the program runs, and Init arms ticking.
func TestLaunchWiring_DirectStartArmsTheTickChain(t *testing.T) {
	fields, err := domain.ParseClock("10:00")
	if err != nil {
		t.Fatalf("failed to parse duration: %v", err)
	}

	machine := domain.New()
	machine.SetConfig(fields)
	machine.Start()

	m := tui.NewModel(machine, testController(config.DefaultConfig()), nil, domain.Config{})
	if cmd := m.Init(); cmd == nil {
		t.Error("Init on a pre-started countdown should arm the tick chain")
	}

	if !machine.Running() {
		t.Error("countdown should be running before the program starts")
	}
	if machine.Remaining() != 600 {
		t.Errorf("remaining = %d, want 600", machine.Remaining())
	}
}

// TestPreferences_RoundTrip tests that edits made the way the config
// command makes them survive a save and a fresh load.
func TestPreferences_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	// 1. First load creates the file with defaults
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.DefaultDuration != 0 || cfg.Inline {
		t.Fatal("fresh config should carry the defaults")
	}

	// 2. Edit and save
	cfg.DefaultDuration = config.Duration(15 * time.Minute)
	cfg.Theme.Mode = "light"
	cfg.Inline = true
	if err := config.Save(cfg, path); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	// 3. Fresh load sees the edits
	reloaded, err := config.Load(path)
	if err != nil {
		t.Fatalf("failed to reload config: %v", err)
	}
	if got := time.Duration(reloaded.DefaultDuration); got != 15*time.Minute {
		t.Errorf("default duration = %v, want 15m", got)
	}
	if reloaded.Theme.Mode != "light" {
		t.Errorf("theme mode = %q, want %q", reloaded.Theme.Mode, "light")
	}
	if !reloaded.Inline {
		t.Error("inline = false, want true")
	}
}

// TestFullCountdownLifecycle drives a complete user session through the
// exported model API: configure, start, pause, resume, delete.
func TestFullCountdownLifecycle(t *testing.T) {
	machine := domain.New()
	m := tea.Model(tui.NewModel(machine, testController(config.DefaultConfig()), nil, domain.Config{}))

	// 1. Type a duration into the hours field
	m, _ = m.Update(keyMsg("2"))
	if machine.Config().Hours != 2 {
		t.Fatalf("hours = %d, want 2", machine.Config().Hours)
	}

	// 2. Start
	m, _ = m.Update(keyMsg("enter"))
	if machine.Phase() != domain.PhaseRunning {
		t.Fatalf("phase after enter = %v, want running", machine.Phase())
	}

	// 3. Pause
	m, _ = m.Update(keyMsg("p"))
	if machine.Phase() != domain.PhasePaused {
		t.Fatalf("phase after p = %v, want paused", machine.Phase())
	}

	// 4. Resume
	m, _ = m.Update(keyMsg("p"))
	if machine.Phase() != domain.PhaseRunning {
		t.Fatalf("phase after second p = %v, want running", machine.Phase())
	}

	// 5. Delete returns to an empty timer
	m, _ = m.Update(keyMsg("d"))
	if machine.Phase() != domain.PhaseConfiguring {
		t.Errorf("phase after d = %v, want configuring", machine.Phase())
	}
	if machine.Original() != 0 {
		t.Errorf("original after d = %d, want 0", machine.Original())
	}
}
