package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"pgregory.net/rapid"

	"github.com/rb-plan/TermClock/internal/config"
	"github.com/rb-plan/TermClock/internal/source"
	"github.com/rb-plan/TermClock/internal/state"
)

var frameNow = time.Date(2026, time.August, 21, 15, 4, 5, 0, time.UTC)

func testFrameInput(width, height int) frameInput {
	cfg := config.Default()
	data := state.Model{}
	data.SetNow(frameNow)
	return frameInput{
		data:   data,
		cfg:    &cfg,
		styles: newStyles(&cfg),
		width:  width,
		height: height,
	}
}

func TestRenderFrameFitsViewport(t *testing.T) {
	tests := []struct {
		width  int
		height int
	}{
		{120, 40},
		{80, 24},
		{40, 12},
		{30, 8},
		{minFrameWidth, minFrameHeight},
		{minFrameWidth - 1, minFrameHeight - 1},
	}
	for _, tt := range tests {
		in := testFrameInput(tt.width, tt.height)
		frame := renderFrame(in)
		if got := lipgloss.Height(frame); got > tt.height {
			t.Fatalf("%dx%d: frame height = %d", tt.width, tt.height, got)
		}
		if got := lipgloss.Width(frame); got > tt.width {
			t.Fatalf("%dx%d: frame width = %d", tt.width, tt.height, got)
		}
	}
}

func TestRenderFrameIdempotent(t *testing.T) {
	in := testFrameInput(100, 30)
	in.data.SetTemperature(source.Reading{Celsius: 21.5}, frameNow)
	if first, second := renderFrame(in), renderFrame(in); first != second {
		t.Fatalf("renderFrame differs across identical inputs")
	}
}

func TestRenderFrameShowsFreshReading(t *testing.T) {
	in := testFrameInput(120, 36)
	in.data.SetTemperature(source.Reading{Celsius: 21.5}, frameNow)

	frame := renderFrame(in)
	if !strings.Contains(frame, "21.5℃") {
		t.Fatalf("frame does not show the reading")
	}
	if !strings.Contains(frame, "08/21/2026 星期五") {
		t.Fatalf("frame does not show the date line")
	}
}

func TestRenderFrameStaleReadingShowsPlaceholder(t *testing.T) {
	in := testFrameInput(120, 36)
	// Fetched an hour ago against a 5s interval: long past grace.
	in.data.SetTemperature(source.Reading{Celsius: 21.5}, frameNow.Add(-time.Hour))

	frame := renderFrame(in)
	if strings.Contains(frame, "21.5℃") {
		t.Fatalf("stale reading still rendered")
	}
	if !strings.Contains(frame, tempPlaceholder) {
		t.Fatalf("placeholder missing from frame")
	}
}

func TestRenderFrameEmptyTodoState(t *testing.T) {
	frame := renderFrame(testFrameInput(120, 36))
	if !strings.Contains(frame, noTodos) {
		t.Fatalf("empty todo state missing from frame")
	}
}

func TestRenderFrameTodoPanelPresence(t *testing.T) {
	// Wide enough for the split: the bordered panel appears.
	if frame := renderFrame(testFrameInput(120, 36)); !strings.Contains(frame, "╭") {
		t.Fatalf("todo panel border missing on wide viewport")
	}
	// Narrow: the remainder is under the panel minimum, so no border.
	if frame := renderFrame(testFrameInput(40, 12)); strings.Contains(frame, "╭") {
		t.Fatalf("todo panel drawn on viewport too narrow for it")
	}
}

func TestRenderFrameSpinnerBeforeFirstResult(t *testing.T) {
	in := testFrameInput(120, 36)
	in.spinner = "*"

	frame := renderFrame(in)
	if !strings.Contains(frame, "*") {
		t.Fatalf("spinner missing from frame")
	}
	if strings.Contains(frame, tempPlaceholder) {
		t.Fatalf("placeholder shown while first fetch is pending")
	}
}

func TestRenderFrameProperties(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		cfg := config.Default()
		cfg.TimeScaleX = rapid.IntRange(1, 3).Draw(rt, "scaleX")
		cfg.TimeScaleY = rapid.IntRange(1, 3).Draw(rt, "scaleY")
		cfg.DateScaleX = rapid.IntRange(1, 2).Draw(rt, "dateScale")
		cfg.MainWindowPercent = rapid.IntRange(1, 99).Draw(rt, "percent")
		width := rapid.IntRange(minFrameWidth, 200).Draw(rt, "width")
		height := rapid.IntRange(minFrameHeight, 60).Draw(rt, "height")

		data := state.Model{}
		data.SetNow(frameNow)
		if rapid.Bool().Draw(rt, "withReading") {
			celsius := rapid.Float64Range(-40, 90).Draw(rt, "celsius")
			data.SetTemperature(source.Reading{Celsius: celsius}, frameNow)
		}

		in := frameInput{
			data:   data,
			cfg:    &cfg,
			styles: newStyles(&cfg),
			width:  width,
			height: height,
		}
		frame := renderFrame(in)
		if got := lipgloss.Height(frame); got > height {
			rt.Fatalf("frame height = %d, want at most %d", got, height)
		}
		if got := lipgloss.Width(frame); got > width {
			rt.Fatalf("frame width = %d, want at most %d", got, width)
		}
		if frame != renderFrame(in) {
			rt.Fatalf("renderFrame not deterministic for equal input")
		}
	})
}
