package ui

import (
	"strings"
	"time"
)

// clockRows is the height of every glyph in clockFont.
const clockRows = 7

// glyphGap separates adjacent glyphs in the rendered clock line.
const glyphGap = "  "

// clockFont is the fixed bitmap for the big clock. Each glyph is seven rows
// of seven cells; the colon uses lighter shade cells so it reads as dots
// rather than bars.
var clockFont = map[rune][clockRows]string{
	'0': {
		"  ███  ",
		" █   █ ",
		" █  ██ ",
		" █ █ █ ",
		" ██  █ ",
		" █   █ ",
		"  ███  ",
	},
	'1': {
		"   █   ",
		"  ██   ",
		"   █   ",
		"   █   ",
		"   █   ",
		"   █   ",
		"  ███  ",
	},
	'2': {
		"  ███  ",
		" █   █ ",
		"     █ ",
		"   ██  ",
		"  █    ",
		" █     ",
		" █████ ",
	},
	'3': {
		" █████ ",
		"     █ ",
		"    ██ ",
		"   ███ ",
		"     █ ",
		" █   █ ",
		"  ███  ",
	},
	'4': {
		"    ██ ",
		"   █ █ ",
		"  █  █ ",
		" █   █ ",
		" ██████",
		"     █ ",
		"     █ ",
	},
	'5': {
		" █████ ",
		" █     ",
		" ████  ",
		"     █ ",
		"     █ ",
		" █   █ ",
		"  ███  ",
	},
	'6': {
		"  ███  ",
		" █     ",
		" █     ",
		" ████  ",
		" █   █ ",
		" █   █ ",
		"  ███  ",
	},
	'7': {
		" █████ ",
		"     █ ",
		"    █  ",
		"   █   ",
		"  █    ",
		"  █    ",
		"  █    ",
	},
	'8': {
		"  ███  ",
		" █   █ ",
		" █   █ ",
		"  ███  ",
		" █   █ ",
		" █   █ ",
		"  ███  ",
	},
	'9': {
		"  ███  ",
		" █   █ ",
		" █   █ ",
		"  ████ ",
		"     █ ",
		"     █ ",
		"  ███  ",
	},
	':': {
		"       ",
		"   ░   ",
		"       ",
		"       ",
		"       ",
		"   ░   ",
		"       ",
	},
	' ': {
		"       ",
		"       ",
		"       ",
		"       ",
		"       ",
		"       ",
		"       ",
	},
}

// renderClockRows draws the given clock text ("15:04:05") as big glyph rows.
// Characters outside the font render as the blank glyph. Both scale factors
// work by cell repetition and are clamped to at least 1.
func renderClockRows(clock string, scaleX, scaleY int) []string {
	var base [clockRows]string
	for _, ch := range clock {
		glyph, ok := clockFont[ch]
		if !ok {
			glyph = clockFont[' ']
		}
		for r := range glyph {
			if base[r] != "" {
				base[r] += glyphGap
			}
			base[r] += glyph[r]
		}
	}

	if scaleX < 1 {
		scaleX = 1
	}
	if scaleY < 1 {
		scaleY = 1
	}
	rows := make([]string, 0, clockRows*scaleY)
	for _, row := range base {
		scaled := scaleRunes(row, scaleX)
		for i := 0; i < scaleY; i++ {
			rows = append(rows, scaled)
		}
	}
	return rows
}

// scaleRunes widens a glyph row by repeating every rune n times.
func scaleRunes(s string, n int) string {
	if n <= 1 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) * n)
	for _, r := range s {
		for i := 0; i < n; i++ {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// weekdayNames is indexed by time.Weekday, Sunday first.
var weekdayNames = [...]string{"星期日", "星期一", "星期二", "星期三", "星期四", "星期五", "星期六"}

// formatDate renders the date line under the clock, month first, with the
// Chinese weekday.
func formatDate(now time.Time) string {
	return now.Format("01/02/2006") + " " + weekdayNames[now.Weekday()]
}
