// Package main is the entry point for the specflow CLI.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "specflow",
	Short: "Spec-driven workflow scaffolding for Claude Code",
	Long: `specflow installs a spec-driven workflow into a project's .claude
directory: workflow slash commands, document templates, a workflow config,
and a CLAUDE.md section. After a spec's task list is approved, it generates
one slash command per task from the spec's tasks.md checklist.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
