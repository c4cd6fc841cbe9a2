package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// ringBand is the half-thickness, in cells, of the circle outline.
const ringBand = 0.55

// DashOffset returns the length of ring left undrawn, in the same units as
// the circumference: 0 before the first start or with a zero total (idle
// rings render complete), otherwise circumference × (1 − remaining/original).
// The offset grows as time elapses, visually depleting the ring.
func DashOffset(remaining, original int, started bool, circumference float64) float64 {
	if !started || original <= 0 {
		return 0
	}
	r := float64(remaining) / float64(original)
	return circumference * (1 - r)
}

// Circumference returns the ring perimeter for a cell radius.
func Circumference(radius int) float64 {
	return 2 * math.Pi * float64(radius)
}

// cellKind classifies a raster cell of the ring grid.
type cellKind int

const (
	cellOutside cellKind = iota
	cellTrack
	cellArc
)

// classifyCell maps a grid cell to outside/track/arc. The grid is
// (2·radius+1)² cells with the circle centered; each cell doubles to two
// terminal columns so the circle reads round. drawn is the fraction of the
// ring covered by the progress arc, swept clockwise from 12 o'clock. t is
// the cell's angular position in [0,1), used to pick the gradient color.
func classifyCell(x, y, radius int, drawn float64) (kind cellKind, t float64) {
	dx := float64(x - radius)
	dy := float64(y - radius)
	dist := math.Sqrt(dx*dx + dy*dy)
	if math.Abs(dist-float64(radius)) > ringBand {
		return cellOutside, 0
	}

	theta := math.Atan2(dx, -dy)
	if theta < 0 {
		theta += 2 * math.Pi
	}
	t = theta / (2 * math.Pi)
	if drawn > 0 && t <= drawn+1e-9 {
		return cellArc, t
	}
	return cellTrack, t
}

// ringColors carries the three colors a ring render needs.
type ringColors struct {
	start string // arc gradient at 12 o'clock
	end   string // arc gradient approaching full circle
	track string // undrawn remainder
}

// renderRing rasterizes the dim full track with the gradient progress arc
// over it, then overlays the center lines (the readout) in the ring's
// interior. Center lines may be styled; they are placed starting at an even
// column so cell boundaries stay aligned.
func renderRing(radius int, drawn float64, colors ringColors, center []string) string {
	size := 2*radius + 1
	gridW := size * 2

	arcAt := arcGradient(colors)
	trackStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(colors.track))

	cell := func(x, y int) string {
		kind, t := classifyCell(x, y, radius, drawn)
		switch kind {
		case cellArc:
			return arcAt(t).Render("██")
		case cellTrack:
			return trackStyle.Render("██")
		default:
			return "  "
		}
	}

	top := radius - len(center)/2

	rows := make([]string, 0, size)
	for y := 0; y < size; y++ {
		overlay := ""
		if y >= top && y < top+len(center) {
			overlay = center[y-top]
		}

		var b strings.Builder
		if overlay == "" {
			for x := 0; x < size; x++ {
				b.WriteString(cell(x, y))
			}
			rows = append(rows, b.String())
			continue
		}

		ow := lipgloss.Width(overlay)
		if ow%2 != 0 {
			overlay += " "
			ow++
		}
		if ow > gridW {
			rows = append(rows, overlay)
			continue
		}
		lead := (gridW - ow) / 2
		lead -= lead % 2
		for x := 0; x < lead/2; x++ {
			b.WriteString(cell(x, y))
		}
		b.WriteString(overlay)
		for x := (lead + ow) / 2; x < size; x++ {
			b.WriteString(cell(x, y))
		}
		rows = append(rows, b.String())
	}

	return strings.Join(rows, "\n")
}

// arcGradient returns a color lookup along the arc, blending start→end the
// way the bubbles progress bar shades its gradient. Non-hex colors (ANSI
// codes) cannot blend and render flat.
func arcGradient(colors ringColors) func(t float64) lipgloss.Style {
	start, errS := colorful.Hex(colors.start)
	end, errE := colorful.Hex(colors.end)
	if errS != nil || errE != nil {
		flat := lipgloss.NewStyle().Foreground(lipgloss.Color(colors.start))
		return func(float64) lipgloss.Style { return flat }
	}
	return func(t float64) lipgloss.Style {
		c := start.BlendLuv(end, t)
		return lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex()))
	}
}
