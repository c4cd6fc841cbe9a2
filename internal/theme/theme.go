// Package theme owns the light/dark mode state and the color palettes the
// render surfaces draw from. The mode starts from the detected terminal
// background and can be flipped manually at any time, but any later
// detection event overwrites it, a manual toggle included. See
// TestDetectionOverridesManualToggle before changing that rule.
package theme

import (
	"reflect"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/xvierd/ringdown/internal/ports"
)

// Mode identifies the active color scheme.
type Mode string

const (
	ModeLight Mode = "light"
	ModeDark  Mode = "dark"
)

// Palette holds every color a render surface needs. Values are lipgloss
// color strings (hex or ANSI codes); empty fields are filled from the
// built-in defaults at resolution. The mapstructure tags let the config
// file override individual colors per mode.
type Palette struct {
	Readout     string `mapstructure:"readout"`
	ArcStart    string `mapstructure:"arc_start"`
	ArcEnd      string `mapstructure:"arc_end"`
	Track       string `mapstructure:"track"`
	Label       string `mapstructure:"label"`
	Help        string `mapstructure:"help"`
	Accent      string `mapstructure:"accent"`
	PausedStart string `mapstructure:"paused_start"`
	PausedEnd   string `mapstructure:"paused_end"`
}

// DefaultDark returns the built-in dark palette.
func DefaultDark() Palette {
	return Palette{
		Readout:     "#E6EDF3",
		ArcStart:    "#7C6FE0",
		ArcEnd:      "#A78BFA",
		Track:       "#30363D",
		Label:       "#8B949E",
		Help:        "#6E7681",
		Accent:      "#A78BFA",
		PausedStart: "#6B7280",
		PausedEnd:   "#4B5563",
	}
}

// DefaultLight returns the built-in light palette.
func DefaultLight() Palette {
	return Palette{
		Readout:     "#1F2328",
		ArcStart:    "#5B4FC7",
		ArcEnd:      "#7C6FE0",
		Track:       "#D0D7DE",
		Label:       "#57606A",
		Help:        "#8C959F",
		Accent:      "#5B4FC7",
		PausedStart: "#8C959F",
		PausedEnd:   "#6E7781",
	}
}

// ResolvePalette fills any empty or unusable color in override with the
// corresponding default field.
func ResolvePalette(override, defaults Palette) Palette {
	resolved := override
	rv := reflect.ValueOf(&resolved).Elem()
	dv := reflect.ValueOf(defaults)
	for i := 0; i < rv.NumField(); i++ {
		f := rv.Field(i)
		if f.Kind() == reflect.String && !usableColor(f.String()) {
			f.SetString(dv.Field(i).String())
		}
	}
	return resolved
}

// usableColor accepts ANSI codes and color names untouched; hex strings must
// parse.
func usableColor(s string) bool {
	if s == "" {
		return false
	}
	if strings.HasPrefix(s, "#") {
		_, err := colorful.Hex(s)
		return err == nil
	}
	return true
}

// Controller tracks the active mode and serves the matching palette.
type Controller struct {
	mode  Mode
	light Palette
	dark  Palette
}

// NewController builds a controller starting in the given mode. The palettes
// are resolved against the built-in defaults before use.
func NewController(initial Mode, light, dark Palette) *Controller {
	return &Controller{
		mode:  initial,
		light: ResolvePalette(light, DefaultLight()),
		dark:  ResolvePalette(dark, DefaultDark()),
	}
}

// Mode returns the active mode.
func (c *Controller) Mode() Mode {
	return c.mode
}

// Toggle flips light↔dark immediately. The choice is never persisted.
func (c *Controller) Toggle() {
	if c.mode == ModeDark {
		c.mode = ModeLight
	} else {
		c.mode = ModeDark
	}
}

// SetDetected applies a background detection result, overwriting the mode
// regardless of any earlier manual toggle.
func (c *Controller) SetDetected(dark bool) {
	if dark {
		c.mode = ModeDark
	} else {
		c.mode = ModeLight
	}
}

// Palette returns the palette for the active mode.
func (c *Controller) Palette() Palette {
	if c.mode == ModeLight {
		return c.light
	}
	return c.dark
}

// InitialMode resolves the starting mode: an explicit "light"/"dark" choice
// (flag or config) wins, otherwise the detector's answer, otherwise dark.
func InitialMode(explicit string, det ports.BackgroundDetector) Mode {
	switch strings.ToLower(strings.TrimSpace(explicit)) {
	case "light":
		return ModeLight
	case "dark":
		return ModeDark
	}
	if det != nil {
		if dark, ok := det.Dark(); ok && !dark {
			return ModeLight
		}
	}
	return ModeDark
}
