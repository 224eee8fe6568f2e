package generate

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/specflow/specflow/internal/tasks"
)

func TestWriteTaskCommands(t *testing.T) {
	dir := t.TempDir()
	ts := []tasks.Task{
		{ID: "1", Description: "First"},
		{ID: "2.3", Description: "Second"},
	}

	paths, err := WriteTaskCommands(dir, "auth", ts)
	if err != nil {
		t.Fatalf("WriteTaskCommands: %v", err)
	}
	if len(paths) != 2 {
		t.Fatalf("expected 2 paths, got %d", len(paths))
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Errorf("expected exactly 2 files on disk, got %d", len(entries))
	}

	for _, name := range []string{"auth-task-1.md", "auth-task-2.3.md"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("expected %s to exist: %v", name, err)
		}
	}
}

func TestWriteTaskCommandsCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "commands", "auth")

	if _, err := WriteTaskCommands(dir, "auth", []tasks.Task{{ID: "1", Description: "x"}}); err != nil {
		t.Fatalf("WriteTaskCommands should create the directory: %v", err)
	}
}

func TestWriteTaskCommandsOverwrites(t *testing.T) {
	dir := t.TempDir()
	task := tasks.Task{ID: "1", Description: "Stable content"}

	if _, err := WriteTaskCommands(dir, "demo", []tasks.Task{task}); err != nil {
		t.Fatal(err)
	}
	first, err := os.ReadFile(filepath.Join(dir, "demo-task-1.md"))
	if err != nil {
		t.Fatal(err)
	}

	if _, err := WriteTaskCommands(dir, "demo", []tasks.Task{task}); err != nil {
		t.Fatal(err)
	}
	second, err := os.ReadFile(filepath.Join(dir, "demo-task-1.md"))
	if err != nil {
		t.Fatal(err)
	}

	if string(first) != string(second) {
		t.Errorf("rewriting the same task changed file content")
	}
}

func TestCleanStale(t *testing.T) {
	dir := t.TempDir()

	// Previous generation had tasks 1, 2, 3 plus an unrelated file.
	old := []tasks.Task{{ID: "1"}, {ID: "2"}, {ID: "3"}}
	if _, err := WriteTaskCommands(dir, "auth", old); err != nil {
		t.Fatal(err)
	}
	os.WriteFile(filepath.Join(dir, "notes.md"), []byte("keep me"), 0644)

	// Current parse only has tasks 1 and 3.
	current := []tasks.Task{{ID: "1"}, {ID: "3"}}
	removed, err := CleanStale(dir, "auth", current)
	if err != nil {
		t.Fatalf("CleanStale: %v", err)
	}
	if len(removed) != 1 {
		t.Fatalf("expected 1 removed file, got %v", removed)
	}

	if _, err := os.Stat(filepath.Join(dir, "auth-task-2.md")); !os.IsNotExist(err) {
		t.Errorf("expected stale auth-task-2.md to be removed")
	}
	for _, name := range []string{"auth-task-1.md", "auth-task-3.md", "notes.md"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("expected %s to survive cleanup: %v", name, err)
		}
	}
}

func TestCleanStaleMissingDirectory(t *testing.T) {
	removed, err := CleanStale(filepath.Join(t.TempDir(), "absent"), "auth", nil)
	if err != nil {
		t.Fatalf("missing directory should not error, got %v", err)
	}
	if len(removed) != 0 {
		t.Errorf("expected nothing removed, got %v", removed)
	}
}
