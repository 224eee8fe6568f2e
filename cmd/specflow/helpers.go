package main

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// fatal prints an error to stderr and exits non-zero.
func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// resolveProject returns the project root: the --project flag when given,
// the working directory otherwise.
func resolveProject(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	cwd, err := os.Getwd()
	if err != nil {
		fatal("getting working directory: %v", err)
	}
	return cwd
}

// stdinIsTerminal reports whether the CLI can run interactive prompts.
func stdinIsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}
