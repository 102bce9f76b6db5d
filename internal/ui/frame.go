package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rb-plan/TermClock/internal/config"
	"github.com/rb-plan/TermClock/internal/state"
)

// frameInput carries everything one redraw needs. renderFrame is a pure
// function of this value: the same input always yields the same frame, and
// nothing here is mutated.
type frameInput struct {
	data    state.Model
	cfg     *config.Settings
	styles  Styles
	width   int
	height  int
	spinner string // non-empty until the first temperature result settles
}

// renderFrame lays out one full screen: the big clock, date line, and
// thermometer in the main block, the todo panel beside it. The frame never
// exceeds the viewport; panels that cannot fit are dropped, not wrapped.
func renderFrame(in frameInput) string {
	if in.width < minFrameWidth || in.height < minFrameHeight {
		return clipCells(in.data.Now.Format("15:04:05"), in.width)
	}

	mainWidth, todoWidth := splitWidths(in.width, in.cfg.MainWindowPercent)
	main := renderMainColumn(in, mainWidth, in.height)
	if todoWidth == 0 {
		return main
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, main, renderTodoPanel(in, todoWidth, in.height))
}

// renderMainColumn stacks the clock rows, the date, and the temperature
// block, centering each line and the whole stack in the given box.
func renderMainColumn(in frameInput, width, height int) string {
	clock := renderClockRows(in.data.Now.Format("15:04:05"), in.cfg.TimeScaleX, in.cfg.TimeScaleY)
	lines := make([]string, 0, len(clock)+8)
	for _, row := range clock {
		lines = append(lines, in.styles.Time.Render(clipCells(row, width)))
	}

	for i := 0; i < (in.cfg.TimeScaleY+1)/2; i++ {
		lines = append(lines, "")
	}
	date := scaleRunes(formatDate(in.data.Now), in.cfg.DateScaleX)
	lines = append(lines, in.styles.Date.Render(clipCells(date, width)))

	lines = append(lines, "")
	lines = append(lines, renderTempBlock(in, width)...)

	if len(lines) > height {
		lines = lines[:height]
	}
	for i, line := range lines {
		lines[i] = lipgloss.PlaceHorizontal(width, lipgloss.Center, line)
	}
	return lipgloss.PlaceVertical(height, lipgloss.Center, strings.Join(lines, "\n"))
}

// renderTempBlock renders the thermometer rows, or the spinner while the
// first fetch is still out.
func renderTempBlock(in frameInput, width int) []string {
	if in.spinner != "" {
		return []string{in.spinner}
	}
	ok := in.data.TemperatureFresh(in.cfg.TempInterval())
	var celsius float64
	if ok {
		celsius = in.data.Temp.Celsius
	}
	rows := renderGauge(celsius, ok, width)
	if len(rows) == 1 {
		return []string{in.styles.Bar.Render(rows[0])}
	}
	return []string{
		in.styles.Axis.Render(rows[0]),
		in.styles.Axis.Render(rows[1]),
		in.styles.Bar.Render(rows[2]),
	}
}

// renderTodoPanel draws the bordered todo list sized to exactly width by
// height cells.
func renderTodoPanel(in frameInput, width, height int) string {
	innerWidth, innerHeight := width-2, height-2
	if innerWidth < 1 || innerHeight < 1 {
		return ""
	}

	body := renderTodoLines(in.data.Todos, in.cfg.TodoLimit, in.cfg.TodoTaskMaxChars, innerWidth)
	if len(body) > innerHeight {
		body = body[:innerHeight]
	}
	styled := make([]string, len(body))
	for i, line := range body {
		if line == noTodos {
			styled[i] = in.styles.Muted.Render(line)
			continue
		}
		styled[i] = in.styles.Todos.Render(line)
	}

	return in.styles.Border.
		Width(innerWidth).
		Height(innerHeight).
		Render(strings.Join(styled, "\n"))
}
