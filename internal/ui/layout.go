package ui

// Layout thresholds. The split is recomputed from the live viewport on every
// render, so resizing reflows immediately.
const (
	// minTodoWidth is the narrowest todo panel worth drawing. A remainder
	// below it folds into the clock block instead of producing a sliver.
	minTodoWidth = 16

	// minFrameWidth and minFrameHeight guard the degenerate viewports a
	// terminal can briefly report mid-resize. Below them only a plain
	// time string is drawn.
	minFrameWidth  = 8
	minFrameHeight = 3
)

// splitWidths divides the viewport between the clock block and the todo
// panel. percent is the clock block's share (1..99).
func splitWidths(total, percent int) (mainWidth, todoWidth int) {
	mainWidth = total * percent / 100
	todoWidth = total - mainWidth
	if todoWidth < minTodoWidth {
		return total, 0
	}
	return mainWidth, todoWidth
}
