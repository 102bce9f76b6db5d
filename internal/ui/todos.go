package ui

import (
	"strings"

	"github.com/rb-plan/TermClock/internal/source"
)

// noTodos is the empty-state line for the todo panel.
const noTodos = "(no todos)"

// renderTodoLines formats the todo panel body: one line per item in server
// order, "deadline | task" when the item carries a deadline, the task alone
// otherwise. Tasks are truncated to maxChars runes and every line is clipped
// to the panel width.
func renderTodoLines(todos []source.Todo, limit, maxChars, width int) []string {
	if limit >= 0 && len(todos) > limit {
		todos = todos[:limit]
	}
	if len(todos) == 0 {
		return []string{noTodos}
	}

	lines := make([]string, 0, len(todos))
	for _, t := range todos {
		task := truncateRunes(strings.TrimSpace(t.Task), maxChars)
		line := task
		if t.Deadline != "" {
			line = t.Deadline + " | " + task
		}
		lines = append(lines, clipCells(line, width))
	}
	return lines
}
