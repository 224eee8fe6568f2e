package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/specflow/specflow/internal/scaffold"
	"github.com/specflow/specflow/internal/ui"
)

var (
	setupProject string
	setupYes     bool
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Install the spec workflow into a project",
	Long: `Install the .claude directory tree, workflow slash commands, document
templates, spec-config.json, and the CLAUDE.md workflow section.`,
	Run: runSetup,
}

func init() {
	setupCmd.Flags().StringVarP(&setupProject, "project", "p", "", "Project directory (default: current directory)")
	setupCmd.Flags().BoolVarP(&setupYes, "yes", "y", false, "Skip the reinstall confirmation prompt")
	rootCmd.AddCommand(setupCmd)
}

func runSetup(cmd *cobra.Command, args []string) {
	root := resolveProject(setupProject)

	if scaffold.IsInstalled(root) && !setupYes {
		if !stdinIsTerminal() {
			fatal("workflow already installed in %s (use --yes to reinstall)", root)
		}
		ok, err := ui.Confirm("Spec workflow already installed. Reinstall and overwrite commands?")
		if err != nil {
			fatal("reading confirmation: %v", err)
		}
		if !ok {
			fmt.Println("Setup cancelled.")
			return
		}
	}

	rep := ui.NewReporter(os.Stdout)
	if err := scaffold.NewInstaller(root, version, rep).Run(); err != nil {
		fatal("setup failed: %v", err)
	}

	fmt.Println()
	fmt.Println(ui.Heading("Spec workflow installed."))
	fmt.Println(ui.Dim("Next: open Claude Code in this project and run /spec-create <feature-name>"))
}
