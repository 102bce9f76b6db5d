package source

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rb-plan/TermClock/internal/habitat"
)

func TestFileTodos_ReadsTrimmedNonEmptyLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todos.txt")
	if err := os.WriteFile(path, []byte("  water the beds  \n\n\tcheck fans\n   \nrotate logs\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	todos, err := FileTodos{Path: path}.ReadTodos(context.Background(), 10)
	if err != nil {
		t.Fatalf("ReadTodos returned error: %v", err)
	}
	want := []string{"water the beds", "check fans", "rotate logs"}
	if len(todos) != len(want) {
		t.Fatalf("todos len = %d, want %d", len(todos), len(want))
	}
	for i, task := range want {
		if todos[i].Task != task {
			t.Fatalf("todos[%d].Task = %q, want %q", i, todos[i].Task, task)
		}
		if todos[i].Deadline != "" {
			t.Fatalf("todos[%d].Deadline = %q, want empty", i, todos[i].Deadline)
		}
	}
}

func TestFileTodos_HonorsLimit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todos.txt")
	if err := os.WriteFile(path, []byte("a\nb\nc\nd\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	todos, err := FileTodos{Path: path}.ReadTodos(context.Background(), 2)
	if err != nil {
		t.Fatalf("ReadTodos returned error: %v", err)
	}
	if len(todos) != 2 {
		t.Fatalf("todos len = %d, want 2", len(todos))
	}
	if todos[0].Task != "a" || todos[1].Task != "b" {
		t.Fatalf("todos = %+v, want first two lines", todos)
	}
}

func TestFileTodos_MissingFileIsTypedFailure(t *testing.T) {
	_, err := FileTodos{Path: filepath.Join(t.TempDir(), "gone.txt")}.ReadTodos(context.Background(), 5)
	if err == nil {
		t.Fatalf("ReadTodos returned nil error, want *habitat.Error")
	}
	var herr *habitat.Error
	if !errors.As(err, &herr) {
		t.Fatalf("error = %T, want *habitat.Error", err)
	}
	if herr.Kind != habitat.KindNetwork {
		t.Fatalf("Kind = %v, want %v", herr.Kind, habitat.KindNetwork)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("error chain = %v, want os.ErrNotExist", err)
	}
}
