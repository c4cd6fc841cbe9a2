package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// maxTotalSeconds is the largest duration the fields can express (99:59:59).
const maxTotalSeconds = MaxHours*3600 + MaxMinutes*60 + MaxSeconds

// FormatClock renders a second count as a zero-padded HH:MM:SS string.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	h := seconds / 3600
	m := seconds % 3600 / 60
	s := seconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

// ParseClock parses a user-entered duration into Config fields. Two syntaxes
// are accepted: Go duration strings ("25m", "1h30m", "90s") and colon form
// ("1:30:00", "12:30", or a bare second count "45"). The result must be
// positive and at most 99:59:59.
func ParseClock(input string) (Config, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return Config{}, fmt.Errorf("empty duration")
	}

	var total int
	if strings.Contains(s, ":") || isDigits(s) {
		t, err := parseColonClock(s)
		if err != nil {
			return Config{}, err
		}
		total = t
	} else {
		d, err := time.ParseDuration(s)
		if err != nil {
			return Config{}, fmt.Errorf("invalid duration %q (try \"25m\", \"1h30m\" or \"1:30:00\")", input)
		}
		total = int(d / time.Second)
	}

	if total <= 0 {
		return Config{}, fmt.Errorf("duration must be greater than zero")
	}
	if total > maxTotalSeconds {
		return Config{}, fmt.Errorf("duration exceeds the maximum of %s", FormatClock(maxTotalSeconds))
	}
	return ConfigFromSeconds(total), nil
}

// parseColonClock handles "SS", "MM:SS" and "HH:MM:SS", with each part bound
// to its field range.
func parseColonClock(s string) (int, error) {
	parts := strings.Split(s, ":")
	if len(parts) > 3 {
		return 0, fmt.Errorf("invalid clock %q: expected at most HH:MM:SS", s)
	}

	vals := make([]int, len(parts))
	for i, p := range parts {
		if !isDigits(p) || p == "" {
			return 0, fmt.Errorf("invalid clock %q: %q is not a number", s, p)
		}
		v, err := strconv.Atoi(p)
		if err != nil {
			return 0, fmt.Errorf("invalid clock %q: %v", s, err)
		}
		vals[i] = v
	}

	var h, m, sec int
	switch len(vals) {
	case 1:
		sec = vals[0]
		if sec > maxTotalSeconds {
			return 0, fmt.Errorf("seconds %d out of range", sec)
		}
		return sec, nil
	case 2:
		m, sec = vals[0], vals[1]
	case 3:
		h, m, sec = vals[0], vals[1], vals[2]
	}

	if h > MaxHours {
		return 0, fmt.Errorf("hours %d out of range (0-%d)", h, MaxHours)
	}
	if m > MaxMinutes {
		return 0, fmt.Errorf("minutes %d out of range (0-%d)", m, MaxMinutes)
	}
	if sec > MaxSeconds {
		return 0, fmt.Errorf("seconds %d out of range (0-%d)", sec, MaxSeconds)
	}
	return h*3600 + m*60 + sec, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
