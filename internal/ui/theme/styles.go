package theme

import "github.com/charmbracelet/lipgloss"

// Styles is the lipgloss style set derived from one Theme.
type Styles struct {
	App    lipgloss.Style
	Header lipgloss.Style
	Title  lipgloss.Style
	Badge  lipgloss.Style
	Menu   lipgloss.Style
	Footer lipgloss.Style
	Muted  lipgloss.Style

	Panel        lipgloss.Style
	PanelFocused lipgloss.Style
	DropZone     lipgloss.Style
	DropFocused  lipgloss.Style
	Preview      lipgloss.Style

	Label        lipgloss.Style
	Value        lipgloss.Style
	FocusedValue lipgloss.Style
	Warning      lipgloss.Style

	Button        lipgloss.Style
	ButtonFocused lipgloss.Style

	Dialog      lipgloss.Style
	DialogTitle lipgloss.Style
}

// NewStyles builds the style set for t.
func NewStyles(t Theme) Styles {
	p := t.Palette
	d := t.Derived()

	button := lipgloss.NewStyle().
		Bold(true).
		Padding(0, 2).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(d.Border)

	return Styles{
		App: lipgloss.NewStyle().
			Background(p.Background).
			Foreground(p.Text),

		Header: lipgloss.NewStyle().
			Background(p.Paper).
			Foreground(p.Text).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(lipgloss.Color("#222222")).
			Padding(0, 2),

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Text),

		Badge: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffffff")).
			Background(p.Primary).
			Padding(0, 1).
			MarginLeft(1),

		Menu: lipgloss.NewStyle().
			Foreground(p.Muted).
			MarginLeft(2),

		Footer: lipgloss.NewStyle().
			Background(p.Paper).
			Foreground(p.Muted).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(d.Border).
			Align(lipgloss.Center).
			Padding(0, 1),

		Muted: lipgloss.NewStyle().
			Foreground(p.Muted),

		Panel: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(d.Border).
			Padding(0, 1),

		PanelFocused: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(p.Primary).
			Padding(0, 1),

		DropZone: lipgloss.NewStyle().
			BorderStyle(lipgloss.Border{
				Top: "╌", Bottom: "╌", Left: "╎", Right: "╎",
				TopLeft: "┌", TopRight: "┐", BottomLeft: "└", BottomRight: "┘",
			}).
			BorderForeground(d.Border).
			Align(lipgloss.Center).
			Padding(0, 1),

		DropFocused: lipgloss.NewStyle().
			BorderStyle(lipgloss.Border{
				Top: "╌", Bottom: "╌", Left: "╎", Right: "╎",
				TopLeft: "┌", TopRight: "┐", BottomLeft: "└", BottomRight: "┘",
			}).
			BorderForeground(p.Primary).
			Align(lipgloss.Center).
			Padding(0, 1),

		Preview: lipgloss.NewStyle().
			Background(d.Background).
			Align(lipgloss.Center, lipgloss.Center),

		Label: lipgloss.NewStyle().
			Foreground(p.Muted).
			Bold(true),

		Value: lipgloss.NewStyle().
			Foreground(d.Text),

		FocusedValue: lipgloss.NewStyle().
			Foreground(p.Primary).
			Bold(true),

		Warning: lipgloss.NewStyle().
			Foreground(p.Warning).
			Bold(true),

		Button: button,

		ButtonFocused: button.
			Foreground(lipgloss.Color("#ffffff")).
			Background(p.Primary).
			BorderForeground(p.Primary),

		Dialog: lipgloss.NewStyle().
			BorderStyle(lipgloss.ThickBorder()).
			BorderForeground(p.Success).
			Background(p.Paper).
			Foreground(p.Text).
			Padding(1, 4).
			Align(lipgloss.Center),

		DialogTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Success).
			MarginBottom(1),
	}
}
