// Package domain contains the countdown state machine and the clock
// arithmetic it is built on. Everything here is pure: no goroutines, no
// clocks, no I/O. The UI layer feeds ticks in and reads derived values out.
package domain

// Phase represents the lifecycle stage of a countdown.
type Phase string

const (
	PhaseConfiguring Phase = "configuring"
	PhaseRunning     Phase = "running"
	PhasePaused      Phase = "paused"
	PhaseFinished    Phase = "finished"
)

// Field bounds for the entered duration.
const (
	MaxHours   = 99
	MaxMinutes = 59
	MaxSeconds = 59
)

// Config holds the duration fields entered before the countdown starts.
type Config struct {
	Hours   int
	Minutes int
	Seconds int
}

// Normalize clamps each field into its allowed range. Negative values clamp
// to zero.
func (c Config) Normalize() Config {
	return Config{
		Hours:   clamp(c.Hours, 0, MaxHours),
		Minutes: clamp(c.Minutes, 0, MaxMinutes),
		Seconds: clamp(c.Seconds, 0, MaxSeconds),
	}
}

// TotalSeconds returns the configured duration in seconds.
func (c Config) TotalSeconds() int {
	return c.Hours*3600 + c.Minutes*60 + c.Seconds
}

// ConfigFromSeconds decomposes a second count into hours/minutes/seconds
// fields, clamped into bounds.
func ConfigFromSeconds(total int) Config {
	if total < 0 {
		total = 0
	}
	return Config{
		Hours:   total / 3600,
		Minutes: total % 3600 / 60,
		Seconds: total % 60,
	}.Normalize()
}

// Countdown is the timer state machine. It moves through
// Configuring → Running ⇄ Paused → Finished, and Delete returns it to
// Configuring from anywhere. Invariants: remaining ≤ original, running
// implies started, and remaining hitting zero forces running off.
type Countdown struct {
	cfg       Config
	original  int
	remaining int
	running   bool
	started   bool
}

// New returns a countdown in the Configuring phase with zeroed fields.
func New() *Countdown {
	return &Countdown{}
}

// SetConfig replaces the duration fields. The fields are mutable only before
// the countdown starts; once started this is a no-op.
func (c *Countdown) SetConfig(cfg Config) {
	if c.started {
		return
	}
	c.cfg = cfg.Normalize()
}

// Config returns the current duration fields.
func (c *Countdown) Config() Config {
	return c.cfg
}

// Start begins or resumes the countdown. From Configuring it derives the
// total from the duration fields and rejects a zero total. From Paused it
// resumes without touching the remaining time. Anywhere else (Running,
// Finished) it is a no-op. Reports whether this call started or resumed
// the countdown.
func (c *Countdown) Start() bool {
	if c.running {
		return false
	}
	if !c.started {
		total := c.cfg.TotalSeconds()
		if total <= 0 {
			return false
		}
		c.original = total
		c.remaining = total
		c.started = true
		c.running = true
		return true
	}
	if c.remaining <= 0 {
		return false
	}
	c.running = true
	return true
}

// Tick consumes one elapsed second. Ticks arriving while not running are
// dropped; the remaining time floors at zero, and reaching zero stops the
// countdown (Finished).
func (c *Countdown) Tick() {
	if !c.running {
		return
	}
	if c.remaining > 0 {
		c.remaining--
	}
	if c.remaining == 0 {
		c.running = false
	}
}

// Pause stops the countdown without touching the remaining time. Idempotent.
func (c *Countdown) Pause() {
	c.running = false
}

// Reset pauses and restores the remaining time to the configured total,
// leaving the countdown in the Paused-at-full state. The started flag is
// unchanged.
func (c *Countdown) Reset() {
	c.running = false
	c.remaining = c.original
}

// Delete clears everything, duration fields and totals included, returning
// to Configuring. Valid from any phase.
func (c *Countdown) Delete() {
	*c = Countdown{}
}

// CanStart reports whether the start/resume control is enabled: in
// Configuring, any duration field must be nonzero; once started, there must
// be time remaining and the countdown must not already be running.
func (c *Countdown) CanStart() bool {
	if c.running {
		return false
	}
	if !c.started {
		return c.cfg.TotalSeconds() > 0
	}
	return c.remaining > 0
}

// CanReset reports whether the reset control is enabled. Reset is pointless
// (and disabled) while the remaining time still equals the configured total.
func (c *Countdown) CanReset() bool {
	return c.remaining != c.original
}

// CanDelete reports whether the delete control is shown; before the first
// start there is nothing to discard.
func (c *Countdown) CanDelete() bool {
	return c.started
}

// Phase derives the lifecycle stage from the flags.
func (c *Countdown) Phase() Phase {
	switch {
	case !c.started:
		return PhaseConfiguring
	case c.running:
		return PhaseRunning
	case c.remaining > 0:
		return PhasePaused
	default:
		return PhaseFinished
	}
}

// Remaining returns the seconds left on the countdown.
func (c *Countdown) Remaining() int {
	return c.remaining
}

// Original returns the seconds the countdown started from.
func (c *Countdown) Original() int {
	return c.original
}

// Running reports whether the countdown is ticking.
func (c *Countdown) Running() bool {
	return c.running
}

// Started reports whether the countdown has left the Configuring phase.
func (c *Countdown) Started() bool {
	return c.started
}

// Progress returns the fraction of the configured duration still remaining,
// in [0,1]. Zero before the first start.
func (c *Countdown) Progress() float64 {
	if c.original == 0 {
		return 0
	}
	return float64(c.remaining) / float64(c.original)
}

// Clock returns the remaining time formatted as HH:MM:SS.
func (c *Countdown) Clock() string {
	return FormatClock(c.remaining)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
