package ui

import "github.com/mattn/go-runewidth"

// truncateRunes cuts s to at most max runes, appending an ellipsis when
// anything was removed. The budget counts runes, not cells, matching the
// todo_task_max_chars contract.
func truncateRunes(s string, max int) string {
	if max < 1 {
		return ""
	}
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max]) + "…"
}

// clipCells hard-cuts s to at most width terminal cells. Width is measured
// per rune so CJK text (the weekday, todo tasks) cannot overflow a panel.
func clipCells(s string, width int) string {
	if width < 1 {
		return ""
	}
	return runewidth.Truncate(s, width, "")
}
