package source

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatchFile_SignalsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "todos.txt")
	if err := os.WriteFile(path, []byte("a\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	changed := make(chan struct{}, 1)
	err := WatchFile(ctx, path, func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	}, func(err error) { t.Logf("watch error: %v", err) })
	if err != nil {
		t.Fatalf("WatchFile returned error: %v", err)
	}

	if err := os.WriteFile(path, []byte("a\nb\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	select {
	case <-changed:
	case <-time.After(3 * time.Second):
		t.Fatalf("no change signal after write")
	}
}

func TestWatchFile_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "todos.txt")
	if err := os.WriteFile(path, []byte("a\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	changed := make(chan struct{}, 1)
	err := WatchFile(ctx, path, func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	}, func(error) {})
	if err != nil {
		t.Fatalf("WatchFile returned error: %v", err)
	}

	if err := os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	select {
	case <-changed:
		t.Fatalf("got change signal for an unrelated file")
	case <-time.After(600 * time.Millisecond):
	}
}

func TestWatchFile_MissingDirectoryErrors(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	err := WatchFile(ctx, filepath.Join(t.TempDir(), "nope", "todos.txt"), func() {}, func(error) {})
	if err == nil {
		t.Fatalf("WatchFile returned nil error for missing directory, want error")
	}
}
