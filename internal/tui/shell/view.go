package shell

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var menuItems = []string{"View Source Code", "Sign Up", "Log In"}

// View renders the current model state
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	page := lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		"",
		m.content.View(),
		"",
		m.renderFooter(),
	)
	return m.styles.App.Width(m.width).Render(page)
}

func (m Model) renderHeader() string {
	brand := lipgloss.JoinHorizontal(lipgloss.Center,
		m.styles.Title.Render("T-Shirt Customizer"),
		m.styles.Badge.Render("PRO"),
	)
	menu := m.styles.Menu.Render(strings.Join(menuItems, " · "))
	return m.styles.Header.Width(m.width).Render(lipgloss.JoinHorizontal(lipgloss.Center, brand, menu))
}

func (m Model) renderFooter() string {
	lines := []string{
		fmt.Sprintf("© %d T-Shirt Customizer. All rights reserved.", m.year),
		fmt.Sprintf("Press Alt + Q to switch themes · Theme: %s", m.switcher.Current().Name),
		m.help.ShortHelpView(append(m.content.KeyMap().ShortHelp(), m.keys.Theme, m.keys.Quit)),
	}
	return m.styles.Footer.Width(m.width).Render(strings.Join(lines, "\n"))
}
