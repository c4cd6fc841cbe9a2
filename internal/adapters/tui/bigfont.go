package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// digitMap maps each digit character (0-9) and colon to a 5-line block
// representation. Digits are 3-4 chars wide, the colon 1.
var digitMap = map[rune][5]string{
	'0': {
		"████",
		"█  █",
		"█  █",
		"█  █",
		"████",
	},
	'1': {
		" █ ",
		"██ ",
		" █ ",
		" █ ",
		"███",
	},
	'2': {
		"████",
		"   █",
		"████",
		"█   ",
		"████",
	},
	'3': {
		"████",
		"   █",
		"████",
		"   █",
		"████",
	},
	'4': {
		"█  █",
		"█  █",
		"████",
		"   █",
		"   █",
	},
	'5': {
		"████",
		"█   ",
		"████",
		"   █",
		"████",
	},
	'6': {
		"████",
		"█   ",
		"████",
		"█  █",
		"████",
	},
	'7': {
		"████",
		"   █",
		"  █ ",
		" █  ",
		" █  ",
	},
	'8': {
		"████",
		"█  █",
		"████",
		"█  █",
		"████",
	},
	'9': {
		"████",
		"█  █",
		"████",
		"   █",
		"████",
	},
	':': {
		" ",
		"█",
		" ",
		"█",
		" ",
	},
}

// bigClockHeight is the glyph height in rows.
const bigClockHeight = 5

// bigClockWidth returns the rendered width of a clock string in the block
// font, for fit checks against the ring interior.
func bigClockWidth(clock string) int {
	w := 0
	for _, ch := range clock {
		glyph, ok := digitMap[ch]
		if !ok {
			continue
		}
		if w > 0 {
			w++
		}
		w += len([]rune(glyph[0]))
	}
	return w
}

// bigClockLines renders a clock string like "01:23:45" as 5 styled lines of
// block digits, ready to overlay on the ring interior.
func bigClockLines(clock string, color string) []string {
	lines := [bigClockHeight]string{}
	for _, ch := range clock {
		glyph, ok := digitMap[ch]
		if !ok {
			continue
		}
		for i := 0; i < bigClockHeight; i++ {
			if lines[i] != "" {
				lines[i] += " "
			}
			lines[i] += glyph[i]
		}
	}

	style := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(color))
	styled := make([]string, bigClockHeight)
	for i, line := range lines {
		styled[i] = style.Render(line)
	}
	return styled
}
