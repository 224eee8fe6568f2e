// Package generate produces task command-definition files from parsed
// task records. One file is written per task, named
// {spec-name}-task-{id}.md, and its content is fully determined by the
// task record and the spec name.
package generate

import (
	"fmt"
	"strings"

	"github.com/specflow/specflow/internal/tasks"
)

// CommandExt is the extension of generated command-definition files.
const CommandExt = ".md"

// TaskFilename returns the command file name for a task: the spec name and
// task ID joined by a fixed separator, e.g. "auth-task-3.2.md".
func TaskFilename(specName, taskID string) string {
	return specName + "-task-" + taskID + CommandExt
}

// TaskCommand renders the command-definition content for one task. It is a
// pure function of the spec name and the task record: identical inputs
// produce byte-identical output.
func TaskCommand(specName string, t tasks.Task) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s - Task %s\n\n", specName, t.ID)
	fmt.Fprintf(&b, "%s\n", t.Description)

	if t.Leverage != "" {
		fmt.Fprintf(&b, "\n**Leverage:** %s\n", t.Leverage)
	}
	if len(t.Requirements) > 0 {
		fmt.Fprintf(&b, "\n**Requirements:** %s\n", strings.Join(t.Requirements, ", "))
	}
	if len(t.Details) > 0 {
		b.WriteString("\n")
		for _, d := range t.Details {
			fmt.Fprintf(&b, "- %s\n", d)
		}
	}

	b.WriteString("\n")
	fmt.Fprintf(&b, instructions, t.ID, specName, specName, t.ID)
	return b.String()
}

// instructions is the fixed block appended to every generated command file.
// It tells the invoking agent how to record completion and what comes next.
const instructions = `## Instructions

Execute task %s of the %s specification.

1. Read the requirements and design documents in .claude/specs/%s/ before
   writing any code.
2. Implement only what this task describes. Do not work ahead.
3. Reuse the leveraged code noted above instead of rewriting it.
4. When the work is verified, edit tasks.md in the spec directory and change
   the checkbox for task %s from [ ] to [x].
5. Run /spec-status to review progress, then continue with the next pending
   task via /spec-execute.
`
