package source

import (
	"bufio"
	"context"
	"os"
	"strings"

	"github.com/rb-plan/TermClock/internal/habitat"
)

// FileTodos reads tasks from a local text file, one task per line, blank
// lines skipped. It is the todo fallback when no habitat API is configured.
type FileTodos struct {
	Path string
}

func (f FileTodos) ReadTodos(ctx context.Context, limit int) ([]Todo, error) {
	file, err := os.Open(f.Path)
	if err != nil {
		return nil, &habitat.Error{Op: "todos", Kind: habitat.KindNetwork, Err: err}
	}
	defer func() { _ = file.Close() }()

	todos := make([]Todo, 0, limit)
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if len(todos) >= limit {
			break
		}
		task := strings.TrimSpace(scanner.Text())
		if task == "" {
			continue
		}
		todos = append(todos, Todo{Task: task})
	}
	if err := scanner.Err(); err != nil {
		return nil, &habitat.Error{Op: "todos", Kind: habitat.KindDecode, Err: err}
	}
	return todos, nil
}
