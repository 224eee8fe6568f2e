package generate

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/specflow/specflow/internal/tasks"
)

// WriteTaskCommands writes one command file per task under dir, creating the
// directory if needed. Existing files are overwritten. It returns the paths
// written, in task order, and fails fast on the first filesystem error:
// files already written in the same batch are left in place.
func WriteTaskCommands(dir, specName string, ts []tasks.Task) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating command directory: %w", err)
	}

	paths := make([]string, 0, len(ts))
	for _, t := range ts {
		path := filepath.Join(dir, TaskFilename(specName, t.ID))
		if err := os.WriteFile(path, []byte(TaskCommand(specName, t)), 0644); err != nil {
			return paths, fmt.Errorf("writing command for task %s: %w", t.ID, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// CleanStale removes previously generated command files under dir whose task
// no longer appears in the current parse. Only files matching the spec's
// naming pattern are considered; anything else in the directory is left
// alone. A missing directory is not an error.
func CleanStale(dir, specName string, current []tasks.Task) ([]string, error) {
	keep := make(map[string]bool, len(current))
	for _, t := range current {
		keep[TaskFilename(specName, t.ID)] = true
	}

	matches, err := doublestar.Glob(os.DirFS(dir), specName+"-task-*"+CommandExt)
	if err != nil {
		return nil, fmt.Errorf("scanning for stale commands: %w", err)
	}

	var removed []string
	for _, name := range matches {
		if keep[name] {
			continue
		}
		if !strings.HasPrefix(name, specName+"-task-") {
			continue
		}
		path := filepath.Join(dir, name)
		if err := os.Remove(path); err != nil {
			return removed, fmt.Errorf("removing stale command %s: %w", name, err)
		}
		removed = append(removed, path)
	}
	return removed, nil
}
