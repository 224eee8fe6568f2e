package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/specflow/specflow/internal/ui"
)

var showCmd = &cobra.Command{
	Use:   "show <file>",
	Short: "Render a markdown document in the terminal",
	Args:  cobra.ExactArgs(1),
	Run:   runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) {
	data, err := os.ReadFile(args[0])
	if err != nil {
		fatal("reading %s: %v", args[0], err)
	}
	fmt.Println(ui.RenderMarkdown(string(data)))
}
