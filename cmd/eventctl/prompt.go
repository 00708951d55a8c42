package main

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	questionStyle = lipgloss.NewStyle().Bold(true)
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color("#2ECC71")).Padding(0, 1)
	buttonStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#7F8C8D")).Padding(0, 1)
)

// confirmModel is a blocking OK/Cancel dialog. It starts on OK.
type confirmModel struct {
	message   string
	onOK      bool
	done      bool
	confirmed bool
}

func newConfirmModel(message string) confirmModel {
	return confirmModel{message: message, onOK: true}
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
		m.done, m.confirmed = true, true
		return m, tea.Quit
	case "n", "N", "esc", "ctrl+c", "q":
		m.done, m.confirmed = true, false
		return m, tea.Quit
	case "left", "right", "tab", "h", "l":
		m.onOK = !m.onOK
		return m, nil
	case "enter", " ":
		m.done, m.confirmed = true, m.onOK
		return m, tea.Quit
	}
	return m, nil
}

func (m confirmModel) View() string {
	if m.done {
		return ""
	}
	ok, cancel := buttonStyle.Render("OK"), buttonStyle.Render("Cancel")
	if m.onOK {
		ok = selectedStyle.Render("OK")
	} else {
		cancel = selectedStyle.Render("Cancel")
	}
	return fmt.Sprintf("%s\n\n%s %s\n", questionStyle.Render(m.message), ok, cancel)
}

// terminalDecider asks in the terminal. Any failure to run the dialog counts
// as a decline.
type terminalDecider struct {
	in  io.Reader
	out io.Writer
}

func (d *terminalDecider) Confirm(ctx context.Context, message string) bool {
	program := tea.NewProgram(newConfirmModel(message),
		tea.WithContext(ctx),
		tea.WithInput(d.in),
		tea.WithOutput(d.out),
	)
	final, err := program.Run()
	if err != nil {
		return false
	}
	m, ok := final.(confirmModel)
	return ok && m.confirmed
}
