package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Confirm shows a yes/no prompt and blocks until the user answers.
// Anything other than y/Y declines, so the safe answer is the default.
func Confirm(question string) (bool, error) {
	m, err := tea.NewProgram(confirmModel{question: question}).Run()
	if err != nil {
		return false, err
	}
	result, ok := m.(confirmModel)
	return ok && result.confirmed, nil
}

type confirmModel struct {
	question  string
	confirmed bool
	answered  bool
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "y", "Y":
		m.confirmed = true
		m.answered = true
		return m, tea.Quit
	case "n", "N", "enter", "esc", "ctrl+c", "q":
		m.answered = true
		return m, tea.Quit
	}
	return m, nil
}

func (m confirmModel) View() string {
	if m.answered {
		answer := "no"
		if m.confirmed {
			answer = "yes"
		}
		return promptStyle.Render(m.question) + " " + answer + "\n"
	}
	return promptStyle.Render(m.question) + " " + dimStyle.Render("[y/N]") + " "
}
