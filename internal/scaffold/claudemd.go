package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Markers delimit the workflow section inside CLAUDE.md so repeated setups
// replace the section instead of appending duplicates.
const (
	sectionBegin = "<!-- specflow:begin -->"
	sectionEnd   = "<!-- specflow:end -->"
)

// claudeSection is the workflow documentation merged into CLAUDE.md.
const claudeSection = sectionBegin + `
# Spec-Driven Workflow

This project uses a structured spec workflow: Requirements -> Design ->
Tasks -> Implementation. Each phase requires explicit approval before the
next begins.

## Available Commands

- /spec-create <name> - start a new specification
- /spec-requirements - generate the requirements document
- /spec-design - generate the design document
- /spec-tasks - generate the implementation task list
- /spec-execute - execute the next pending task
- /spec-status - report progress
- /spec-list - list all specs

After the task list is approved, run ` + "`specflow generate <name>`" + ` to
create one /{name}-task-{id} command per task.

## Rules

- Never skip a phase or combine phases
- Complete one task at a time; mark it done in tasks.md before moving on
- Reuse existing code noted in _Leverage:_ annotations
` + sectionEnd

// MergeClaudeMD writes the workflow section into CLAUDE.md under root.
// An existing section between the markers is replaced in place; a CLAUDE.md
// without markers gets the section appended; a missing file is created.
func MergeClaudeMD(root string) error {
	path := filepath.Join(root, "CLAUDE.md")

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return writeClaudeMD(path, claudeSection+"\n")
	}
	if err != nil {
		return fmt.Errorf("reading CLAUDE.md: %w", err)
	}

	content := string(data)
	begin := strings.Index(content, sectionBegin)
	end := strings.Index(content, sectionEnd)

	if begin >= 0 && end > begin {
		merged := content[:begin] + claudeSection + content[end+len(sectionEnd):]
		return writeClaudeMD(path, merged)
	}

	merged := strings.TrimRight(content, "\n") + "\n\n" + claudeSection + "\n"
	return writeClaudeMD(path, merged)
}

func writeClaudeMD(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("writing CLAUDE.md: %w", err)
	}
	return nil
}
