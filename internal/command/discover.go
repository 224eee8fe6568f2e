// Package command discovers installed slash-command definition files under
// a project's .claude/commands directory.
package command

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/bmatcuk/doublestar/v4"
)

// Command describes one installed slash-command definition file.
type Command struct {
	Name        string // from frontmatter, or filename without extension
	Description string // from frontmatter, may be empty
	Path        string // path relative to the commands directory
}

// meta is the YAML frontmatter of a command definition file.
type meta struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// Discover scans .claude/commands under root, including per-spec
// subdirectories, and returns the commands sorted by name. Files without
// frontmatter fall back to their filename; unreadable files are skipped.
// A missing commands directory yields an empty list, not an error.
func Discover(root string) ([]Command, error) {
	dir := filepath.Join(root, ".claude", "commands")
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return nil, nil
	}

	matches, err := doublestar.Glob(os.DirFS(dir), "**/*.md")
	if err != nil {
		return nil, fmt.Errorf("scanning commands: %w", err)
	}

	var cmds []Command
	for _, rel := range matches {
		data, err := os.ReadFile(filepath.Join(dir, rel))
		if err != nil {
			continue
		}
		cmds = append(cmds, parseCommand(rel, data))
	}

	sort.Slice(cmds, func(i, j int) bool { return cmds[i].Name < cmds[j].Name })
	return cmds, nil
}

// parseCommand extracts frontmatter metadata from a command file, falling
// back to the filename when the frontmatter is absent or malformed.
func parseCommand(rel string, data []byte) Command {
	cmd := Command{Path: rel}

	var m meta
	if _, err := frontmatter.Parse(strings.NewReader(string(data)), &m); err == nil {
		cmd.Name = m.Name
		cmd.Description = m.Description
	}
	if cmd.Name == "" {
		cmd.Name = strings.TrimSuffix(filepath.Base(rel), ".md")
	}
	return cmd
}
