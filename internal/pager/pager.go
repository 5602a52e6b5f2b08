// Package pager shows a rendered tree in a scrollable terminal viewport.
package pager

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/cockroachdb/errors"
)

// footerHeight is the number of rows below the viewport.
const footerHeight = 1

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	footerStyle = lipgloss.NewStyle().Faint(true)
)

// Run displays content until the user quits or ctx is cancelled. A nil in
// reads keys from the controlling terminal, for when stdin carried the data.
func Run(ctx context.Context, title, content string, in io.Reader, out io.Writer) error {
	input := tea.WithInputTTY()
	if in != nil {
		input = tea.WithInput(in)
	}
	program := tea.NewProgram(newModel(title, content),
		tea.WithContext(ctx),
		input,
		tea.WithOutput(out),
		tea.WithAltScreen(),
	)
	if _, err := program.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return errors.Wrap(err, "running pager")
	}
	return nil
}

type model struct {
	title    string
	content  string
	viewport viewport.Model
	ready    bool
}

func newModel(title, content string) model {
	return model{title: title, content: content}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		height := msg.Height - footerHeight
		if height < 1 {
			height = 1
		}
		if !m.ready {
			m.viewport = viewport.New(msg.Width, height)
			m.viewport.SetContent(m.content)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = height
		}
		return m, nil
	}

	if !m.ready {
		return m, nil
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m model) View() string {
	if !m.ready {
		return ""
	}
	return m.viewport.View() + "\n" + m.footer()
}

func (m model) footer() string {
	info := fmt.Sprintf("%3.f%%", m.viewport.ScrollPercent()*100)
	return titleStyle.Render(m.title) + footerStyle.Render("  "+info+"  q to quit")
}
