package shell

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/teecraft/internal/tui/customizer"
	"github.com/alexisbeaulieu97/teecraft/internal/ui/theme"
)

// chromeHeight is the number of rows taken by the header and footer.
const chromeHeight = 7

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m.forward(tea.WindowSizeMsg{Width: msg.Width, Height: max(msg.Height-chromeHeight, 0)})

	case tea.KeyMsg:
		if handled, cmd := m.hotkeys.Dispatch(msg); handled {
			return m, cmd
		}
		if key.Matches(msg, m.keys.Force) {
			m.quitting = true
			return m, tea.Quit
		}
		if key.Matches(msg, m.keys.Quit) && !m.content.CapturesText() {
			m.quitting = true
			return m, tea.Quit
		}
		return m.forward(msg)

	case ThemeChangedMsg:
		m = m.applyTheme(msg.Theme)
		return m, nil
	}

	return m.forward(msg)
}

func (m Model) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.content.Update(msg)
	if content, ok := updated.(customizer.Model); ok {
		m.content = content
	}
	return m, cmd
}

func (m Model) applyTheme(t theme.Theme) Model {
	m.styles = theme.NewStyles(t)
	m.content = m.content.WithTheme(t)
	return m
}
