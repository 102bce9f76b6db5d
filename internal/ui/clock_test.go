package ui

import (
	"strings"
	"testing"
	"time"
)

func TestRenderClockRowsDimensions(t *testing.T) {
	// Eight glyphs of seven cells joined by seven two-cell gaps.
	const baseWidth = 8*7 + 7*2

	tests := []struct {
		name      string
		scaleX    int
		scaleY    int
		wantRows  int
		wantWidth int
	}{
		{name: "unscaled", scaleX: 1, scaleY: 1, wantRows: 7, wantWidth: baseWidth},
		{name: "default scale", scaleX: 2, scaleY: 2, wantRows: 14, wantWidth: 2 * baseWidth},
		{name: "wide only", scaleX: 3, scaleY: 1, wantRows: 7, wantWidth: 3 * baseWidth},
		{name: "clamped to one", scaleX: 0, scaleY: -1, wantRows: 7, wantWidth: baseWidth},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := renderClockRows("15:04:05", tt.scaleX, tt.scaleY)
			if len(rows) != tt.wantRows {
				t.Fatalf("rows = %d, want %d", len(rows), tt.wantRows)
			}
			for i, row := range rows {
				if got := len([]rune(row)); got != tt.wantWidth {
					t.Fatalf("row %d width = %d, want %d", i, got, tt.wantWidth)
				}
			}
		})
	}
}

func TestRenderClockRowsColonDots(t *testing.T) {
	rows := renderClockRows(":", 1, 1)
	if len(rows) != 7 {
		t.Fatalf("rows = %d, want 7", len(rows))
	}
	for _, i := range []int{1, 5} {
		if !strings.Contains(rows[i], "░") {
			t.Fatalf("row %d = %q, want colon dot", i, rows[i])
		}
	}
	for _, i := range []int{0, 2, 3, 4, 6} {
		if strings.TrimSpace(rows[i]) != "" {
			t.Fatalf("row %d = %q, want blank", i, rows[i])
		}
	}
}

func TestRenderClockRowsUnknownRuneIsBlank(t *testing.T) {
	got := renderClockRows("x", 1, 1)
	want := renderClockRows(" ", 1, 1)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("row %d = %q, want blank glyph %q", i, got[i], want[i])
		}
	}
}

func TestScaleRunes(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"ab", 1, "ab"},
		{"ab", 2, "aabb"},
		{"█ ", 3, "███   "},
		{"", 4, ""},
		{"ab", 0, "ab"},
	}
	for _, tt := range tests {
		if got := scaleRunes(tt.in, tt.n); got != tt.want {
			t.Fatalf("scaleRunes(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
		}
	}
}

func TestFormatDate(t *testing.T) {
	tests := []struct {
		day  time.Time
		want string
	}{
		{time.Date(2026, time.August, 21, 10, 0, 0, 0, time.UTC), "08/21/2026 星期五"},
		{time.Date(2026, time.August, 23, 0, 30, 0, 0, time.UTC), "08/23/2026 星期日"},
		{time.Date(2026, time.August, 24, 23, 59, 59, 0, time.UTC), "08/24/2026 星期一"},
		{time.Date(2025, time.January, 1, 12, 0, 0, 0, time.UTC), "01/01/2025 星期三"},
	}
	for _, tt := range tests {
		if got := formatDate(tt.day); got != tt.want {
			t.Fatalf("formatDate(%s) = %q, want %q", tt.day.Format(time.DateOnly), got, tt.want)
		}
	}
}
