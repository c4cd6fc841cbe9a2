package tui

import (
	"math"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestDashOffset(t *testing.T) {
	circ := Circumference(8)

	tests := []struct {
		name      string
		remaining int
		original  int
		started   bool
		want      float64
	}{
		{"not started renders complete", 0, 0, false, 0},
		{"zero original renders complete", 0, 0, true, 0},
		{"full remaining", 90, 90, true, 0},
		{"half elapsed", 45, 90, true, circ / 2},
		{"fully elapsed", 0, 90, true, circ},
		{"one third elapsed", 60, 90, true, circ / 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DashOffset(tt.remaining, tt.original, tt.started, circ)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("DashOffset(%d, %d, %v) = %v, want %v",
					tt.remaining, tt.original, tt.started, got, tt.want)
			}
		})
	}
}

func TestDashOffset_GrowsAsTimeElapses(t *testing.T) {
	circ := Circumference(10)
	prev := -1.0
	for remaining := 90; remaining >= 0; remaining -= 10 {
		got := DashOffset(remaining, 90, true, circ)
		if got <= prev {
			t.Fatalf("DashOffset at remaining=%d is %v, not above previous %v", remaining, got, prev)
		}
		prev = got
	}
}

func TestCircumference(t *testing.T) {
	if got, want := Circumference(10), 2*math.Pi*10; math.Abs(got-want) > 1e-9 {
		t.Errorf("Circumference(10) = %v, want %v", got, want)
	}
}

func TestClassifyCell_CardinalPoints(t *testing.T) {
	const radius = 5

	tests := []struct {
		name     string
		x, y     int
		wantT    float64
		wantKind cellKind // at drawn = 0.5
	}{
		{"twelve o'clock", radius, 0, 0, cellArc},
		{"three o'clock", 2 * radius, radius, 0.25, cellArc},
		{"six o'clock", radius, 2 * radius, 0.5, cellArc},
		{"nine o'clock", 0, radius, 0.75, cellTrack},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, tpos := classifyCell(tt.x, tt.y, radius, 0.5)
			if kind != tt.wantKind {
				t.Errorf("kind = %v, want %v", kind, tt.wantKind)
			}
			if math.Abs(tpos-tt.wantT) > 1e-9 {
				t.Errorf("t = %v, want %v", tpos, tt.wantT)
			}
		})
	}
}

func TestClassifyCell_CenterIsOutsideTheBand(t *testing.T) {
	kind, _ := classifyCell(5, 5, 5, 1)
	if kind != cellOutside {
		t.Errorf("center cell = %v, want outside", kind)
	}
}

func TestClassifyCell_ZeroDrawnHasNoArc(t *testing.T) {
	const radius = 6
	for y := 0; y <= 2*radius; y++ {
		for x := 0; x <= 2*radius; x++ {
			if kind, _ := classifyCell(x, y, radius, 0); kind == cellArc {
				t.Fatalf("cell (%d,%d) classified as arc with nothing drawn", x, y)
			}
		}
	}
}

func TestClassifyCell_FullDrawnHasNoTrack(t *testing.T) {
	const radius = 6
	arcs := 0
	for y := 0; y <= 2*radius; y++ {
		for x := 0; x <= 2*radius; x++ {
			kind, _ := classifyCell(x, y, radius, 1)
			if kind == cellTrack {
				t.Fatalf("cell (%d,%d) classified as track on a full ring", x, y)
			}
			if kind == cellArc {
				arcs++
			}
		}
	}
	if arcs == 0 {
		t.Error("a full ring should rasterize at least one arc cell")
	}
}

func TestRenderRing_GridGeometry(t *testing.T) {
	const radius = 7
	colors := ringColors{start: "#7C6FE0", end: "#A78BFA", track: "#30363D"}

	out := renderRing(radius, 0.5, colors, nil)
	rows := strings.Split(out, "\n")

	if len(rows) != 2*radius+1 {
		t.Fatalf("row count = %d, want %d", len(rows), 2*radius+1)
	}
	wantW := (2*radius + 1) * 2
	for i, row := range rows {
		if got := lipgloss.Width(row); got != wantW {
			t.Errorf("row %d width = %d, want %d", i, got, wantW)
		}
	}
}

func TestRenderRing_OverlayAppearsInTheInterior(t *testing.T) {
	colors := ringColors{start: "#7C6FE0", end: "#A78BFA", track: "#30363D"}
	out := renderRing(6, 0.25, colors, []string{"12:34"})
	if !strings.Contains(out, "12:34") {
		t.Error("overlay text should survive rasterization")
	}
}

func TestRenderRing_OverlayKeepsRowWidths(t *testing.T) {
	const radius = 6
	colors := ringColors{start: "#7C6FE0", end: "#A78BFA", track: "#30363D"}
	out := renderRing(radius, 0.75, colors, []string{"07:15", "paused"})

	wantW := (2*radius + 1) * 2
	for i, row := range strings.Split(out, "\n") {
		if got := lipgloss.Width(row); got != wantW {
			t.Errorf("row %d width = %d, want %d", i, got, wantW)
		}
	}
}

func TestRenderRing_AnsiColorsFallBackFlat(t *testing.T) {
	colors := ringColors{start: "240", end: "255", track: "236"}
	out := renderRing(5, 0.5, colors, nil)
	if len(strings.Split(out, "\n")) != 11 {
		t.Error("non-hex colors should still rasterize the full grid")
	}
}

func TestBigClock_FiveLinesOfEqualWidth(t *testing.T) {
	clock := "01:23:45"
	lines := bigClockLines(clock, "#E6EDF3")
	if len(lines) != bigClockHeight {
		t.Fatalf("line count = %d, want %d", len(lines), bigClockHeight)
	}
	want := bigClockWidth(clock)
	for i, line := range lines {
		if got := lipgloss.Width(line); got != want {
			t.Errorf("line %d width = %d, want %d", i, got, want)
		}
	}
}

func TestBigClock_FitsTheLargestRing(t *testing.T) {
	// Worst case: every digit at its widest.
	w := bigClockWidth("00:00:00")
	innerCols := (2*maxRingRadius - 3) * 2
	if w > innerCols {
		t.Errorf("widest clock is %d columns, ring interior only %d", w, innerCols)
	}
}
