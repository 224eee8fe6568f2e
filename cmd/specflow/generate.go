package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/specflow/specflow/internal/generate"
	"github.com/specflow/specflow/internal/tasks"
	"github.com/specflow/specflow/internal/ui"
)

var generateProject string

var generateCmd = &cobra.Command{
	Use:   "generate <spec-name>",
	Short: "Generate one slash command per task from a spec's tasks.md",
	Long: `Parse .claude/specs/<spec-name>/tasks.md and write one command
definition file per task into .claude/commands/<spec-name>/. Stale command
files from removed tasks are deleted; current ones are overwritten.`,
	Args: cobra.ExactArgs(1),
	Run:  runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&generateProject, "project", "p", "", "Project directory (default: current directory)")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) {
	specName := args[0]
	root := resolveProject(generateProject)
	rep := ui.NewReporter(os.Stdout)

	tasksPath := filepath.Join(root, ".claude", "specs", specName, "tasks.md")
	data, err := os.ReadFile(tasksPath)
	if err != nil {
		fatal("reading %s: %v", tasksPath, err)
	}

	parsed := tasks.Parse(string(data))
	if len(parsed) == 0 {
		rep.Info("No tasks found in " + tasksPath)
		return
	}

	commandDir := filepath.Join(root, ".claude", "commands", specName)

	rep.Start(fmt.Sprintf("Generating %d task commands for %s", len(parsed), specName))
	removed, err := generate.CleanStale(commandDir, specName, parsed)
	if err != nil {
		rep.Failure("Cleaning stale commands")
		fatal("%v", err)
	}
	paths, err := generate.WriteTaskCommands(commandDir, specName, parsed)
	if err != nil {
		rep.Failure("Generating task commands")
		fatal("%v", err)
	}
	rep.Success(fmt.Sprintf("Generated %d task commands in %s", len(paths), commandDir))
	if len(removed) > 0 {
		rep.Info(fmt.Sprintf("Removed %d stale command files", len(removed)))
	}

	fmt.Println()
	for _, t := range parsed {
		marker := "[ ]"
		if t.Completed {
			marker = "[x]"
		}
		fmt.Printf("  %s /%s-task-%s  %s\n", marker, specName, t.ID, ui.Dim(t.Description))
	}
}
