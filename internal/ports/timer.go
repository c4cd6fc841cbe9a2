// Package ports holds the small contracts crossing layer boundaries: the
// command vocabulary the render surfaces emit and the environment probes the
// theme controller consumes.
package ports

// TimerCommand represents a user action on the countdown controls. The render
// surfaces translate key presses into commands; a single dispatch point maps
// commands onto state-machine transitions.
type TimerCommand string

const (
	// CmdStart starts the countdown, or resumes it when paused.
	CmdStart TimerCommand = "start"

	// CmdPause stops ticking without touching the remaining time.
	CmdPause TimerCommand = "pause"

	// CmdReset restores the remaining time to the configured total.
	CmdReset TimerCommand = "reset"

	// CmdDelete discards the countdown and returns to duration entry.
	CmdDelete TimerCommand = "delete"
)
