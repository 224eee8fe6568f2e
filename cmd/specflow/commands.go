package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/specflow/specflow/internal/command"
	"github.com/specflow/specflow/internal/ui"
)

var commandsProject string

var commandsCmd = &cobra.Command{
	Use:   "commands",
	Short: "List installed slash commands",
	Run:   runCommands,
}

func init() {
	commandsCmd.Flags().StringVarP(&commandsProject, "project", "p", "", "Project directory (default: current directory)")
	rootCmd.AddCommand(commandsCmd)
}

func runCommands(cmd *cobra.Command, args []string) {
	root := resolveProject(commandsProject)

	cmds, err := command.Discover(root)
	if err != nil {
		fatal("%v", err)
	}
	if len(cmds) == 0 {
		fmt.Println("No commands installed. Run: specflow setup")
		return
	}

	fmt.Println(ui.Heading(fmt.Sprintf("%d commands installed", len(cmds))))
	for _, c := range cmds {
		line := "  /" + c.Name
		if c.Description != "" {
			line += "  " + ui.Dim(c.Description)
		}
		fmt.Println(line)
	}
}
