package ui

import (
	"fmt"
	"math"
	"strconv"
)

// tempPlaceholder stands in for the temperature whenever no fresh reading
// exists.
const tempPlaceholder = "--"

const (
	// gaugeMinC and gaugeMaxC bound the thermometer axis; readings outside
	// are clamped to the ends of the bar.
	gaugeMinC = -10
	gaugeMaxC = 50

	// gaugeTickStep spaces the degree ticks along the axis.
	gaugeTickStep = 10

	// gaugeMinWidth is the narrowest axis that still reads as a
	// thermometer. Panels below it get the plain value line instead.
	gaugeMinWidth = 30
)

// formatCelsius renders a reading with the single decimal the sensor
// reports.
func formatCelsius(c float64) string {
	return fmt.Sprintf("%.1f℃", c)
}

// renderGauge draws the thermometer for a panel of the given width: a degree
// label row, a tick axis, and a bar filled proportionally to the clamped
// reading with the formatted value overlaid at its tip. ok=false draws an
// empty bar with the placeholder. Narrow panels collapse to a single value
// line. Rows span 90% of the panel and come back unstyled and unpadded; the
// caller centers and colors them.
func renderGauge(celsius float64, ok bool, width int) []string {
	value := tempPlaceholder
	if ok {
		value = formatCelsius(celsius)
	}

	if width < gaugeMinWidth {
		return []string{clipCells(value, width)}
	}

	usable := (width*9 + 5) / 10
	if usable < gaugeMinWidth {
		usable = gaugeMinWidth
	}

	pos := 0.0
	if ok {
		pos = (celsius - gaugeMinC) / (gaugeMaxC - gaugeMinC)
		pos = math.Min(math.Max(pos, 0), 1)
	}
	barLen := int(math.Round(pos * float64(usable)))

	labels := make([]rune, usable)
	ticks := make([]rune, usable)
	for i := range ticks {
		labels[i] = ' '
		ticks[i] = '─'
	}
	for deg := gaugeMinC; deg <= gaugeMaxC; deg += gaugeTickStep {
		t := float64(deg-gaugeMinC) / float64(gaugeMaxC-gaugeMinC)
		idx := int(math.Round(t * float64(usable)))
		if idx >= usable {
			continue
		}
		ticks[idx] = '┴'

		s := strconv.Itoa(deg)
		start := idx - len(s)/2
		if start < 0 {
			start = 0
		}
		if m := usable - len(s); start > m {
			start = m
		}
		for i, ch := range s {
			if start+i < usable {
				labels[start+i] = ch
			}
		}
	}

	bar := make([]rune, usable)
	for i := range bar {
		if i < barLen {
			bar[i] = '━'
		} else {
			bar[i] = ' '
		}
	}
	overlay := []rune(" " + value)
	at := barLen
	if m := usable - len(overlay); at > m {
		at = m
	}
	if at < 0 {
		at = 0
	}
	for i, ch := range overlay {
		if at+i < usable {
			bar[at+i] = ch
		}
	}

	return []string{
		string(labels),
		string(ticks),
		string(bar),
	}
}
