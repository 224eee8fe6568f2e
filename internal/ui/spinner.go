package ui

import (
	"io"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Spinner runs a Bubble Tea spinner on its own goroutine until stopped.
type Spinner struct {
	prog *tea.Program
}

// StartSpinner begins rendering a spinner with the given message to w.
// Callers must eventually call Stop.
func StartSpinner(w io.Writer, message string) *Spinner {
	p := tea.NewProgram(
		newSpinnerModel(message),
		tea.WithOutput(w),
		tea.WithInput(nil),
	)
	go p.Run()
	return &Spinner{prog: p}
}

// Stop ends the spinner, blocking until its render loop has exited so the
// caller can print a result line without interleaving.
func (s *Spinner) Stop() {
	if s.prog == nil {
		return
	}
	s.prog.Quit()
	s.prog.Wait()
	s.prog = nil
}

type spinnerModel struct {
	spinner spinner.Model
	message string
}

func newSpinnerModel(message string) spinnerModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(colorCyan)
	return spinnerModel{spinner: sp, message: message}
}

func (m spinnerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if tick, ok := msg.(spinner.TickMsg); ok {
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(tick)
		return m, cmd
	}
	return m, nil
}

func (m spinnerModel) View() string {
	return m.spinner.View() + " " + m.message
}
