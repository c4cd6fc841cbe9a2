package ports

// BackgroundDetector reports whether the terminal background reads as dark.
// The production implementation queries the terminal once before the UI
// takes over the tty; tests substitute a fake to drive preference-change
// scenarios.
type BackgroundDetector interface {
	// Dark reports the detected background. ok is false when the terminal
	// gave no usable answer (not a tty, unsupported emulator), in which case
	// callers fall back to their configured default.
	Dark() (dark bool, ok bool)
}
