// Package ui implements console reporting for the specflow CLI: an injected
// Reporter interface for progress events, a spinner for long-running steps,
// a confirmation prompt, and terminal markdown rendering.
//
// Core packages (tasks, generate, scaffold) take a Reporter rather than
// writing to the console themselves, so they stay testable and free of
// global output state.
package ui

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Reporter receives progress events from long-running operations.
type Reporter interface {
	// Start begins a step. On interactive terminals a spinner runs until
	// Success or Failure is called for the step.
	Start(message string)
	// Success ends the current step with a positive outcome.
	Success(message string)
	// Failure ends the current step with a negative outcome.
	Failure(message string)
	// Info prints a neutral line outside any step.
	Info(message string)
}

// NewReporter returns a Reporter suited to w: a spinner-backed styled
// reporter when w is an interactive terminal, a plain line printer
// otherwise.
func NewReporter(w io.Writer) Reporter {
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return &ConsoleReporter{w: w, interactive: true}
	}
	return &ConsoleReporter{w: w}
}

// ConsoleReporter writes styled step lines to a writer. When interactive,
// Start runs a spinner that is replaced by the Success/Failure line.
type ConsoleReporter struct {
	w           io.Writer
	interactive bool
	spin        *Spinner
}

func (r *ConsoleReporter) Start(message string) {
	if r.interactive {
		r.spin = StartSpinner(r.w, message)
		return
	}
	fmt.Fprintln(r.w, message+"...")
}

func (r *ConsoleReporter) Success(message string) {
	r.stopSpinner()
	fmt.Fprintln(r.w, successStyle.Render("✓")+" "+message)
}

func (r *ConsoleReporter) Failure(message string) {
	r.stopSpinner()
	fmt.Fprintln(r.w, failureStyle.Render("✗")+" "+message)
}

func (r *ConsoleReporter) Info(message string) {
	fmt.Fprintln(r.w, infoStyle.Render(message))
}

func (r *ConsoleReporter) stopSpinner() {
	if r.spin != nil {
		r.spin.Stop()
		r.spin = nil
	}
}

// NopReporter discards all events. Useful in tests and as a default when
// callers pass nil.
type NopReporter struct{}

func (NopReporter) Start(string)   {}
func (NopReporter) Success(string) {}
func (NopReporter) Failure(string) {}
func (NopReporter) Info(string)    {}
