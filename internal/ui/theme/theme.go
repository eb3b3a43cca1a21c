// Package theme defines the three fixed palettes the shell cycles through
// and the lipgloss styles derived from them.
package theme

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Mode separates light palettes from dark ones.
type Mode string

const (
	ModeDark  Mode = "dark"
	ModeLight Mode = "light"
)

// Palette holds the colour slots a theme defines.
type Palette struct {
	Primary    lipgloss.Color
	Background lipgloss.Color
	Paper      lipgloss.Color
	Text       lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Muted      lipgloss.Color
}

// Theme is a fixed bundle of palette and font-family choices.
type Theme struct {
	Name       string
	Mode       Mode
	Palette    Palette
	FontFamily string
}

// DerivedColours are the light/dark dependent colours used by form fields.
type DerivedColours struct {
	Text       lipgloss.Color
	Border     lipgloss.Color
	Background lipgloss.Color
}

// IsDark reports whether the theme uses a dark palette.
func (t Theme) IsDark() bool {
	return t.Mode == ModeDark
}

// Derived returns the field colours for the theme's mode.
func (t Theme) Derived() DerivedColours {
	if t.IsDark() {
		return DerivedColours{
			Text:       lipgloss.Color("#ffffff"),
			Border:     lipgloss.Color("#888888"),
			Background: lipgloss.Color("#23272a"),
		}
	}
	return DerivedColours{
		Text:       lipgloss.Color("#000000"),
		Border:     lipgloss.Color("#cccccc"),
		Background: lipgloss.Color("#f5f5f5"),
	}
}

// Slug is the lower-case, hyphenated theme name used in config and flags.
func (t Theme) Slug() string {
	return strings.ReplaceAll(strings.ToLower(t.Name), " ", "-")
}

var presets = [...]Theme{
	{
		Name: "Dark Modern",
		Mode: ModeDark,
		Palette: Palette{
			Primary:    lipgloss.Color("#90caf9"),
			Background: lipgloss.Color("#181c1f"),
			Paper:      lipgloss.Color("#23272a"),
			Text:       lipgloss.Color("#ffffff"),
			Success:    lipgloss.Color("#66bb6a"),
			Warning:    lipgloss.Color("#ffa726"),
			Muted:      lipgloss.Color("#9e9e9e"),
		},
		FontFamily: "monospace",
	},
	{
		Name: "Light Professional",
		Mode: ModeLight,
		Palette: Palette{
			Primary:    lipgloss.Color("#1976d2"),
			Background: lipgloss.Color("#f5f5f5"),
			Paper:      lipgloss.Color("#ffffff"),
			Text:       lipgloss.Color("#212121"),
			Success:    lipgloss.Color("#2e7d32"),
			Warning:    lipgloss.Color("#ed6c02"),
			Muted:      lipgloss.Color("#757575"),
		},
		FontFamily: "Roboto, sans-serif",
	},
	{
		Name: "Vibrant Creative",
		Mode: ModeDark,
		Palette: Palette{
			Primary:    lipgloss.Color("#ff4081"),
			Background: lipgloss.Color("#1a237e"),
			Paper:      lipgloss.Color("#283593"),
			Text:       lipgloss.Color("#ffffff"),
			Success:    lipgloss.Color("#66bb6a"),
			Warning:    lipgloss.Color("#ffa726"),
			Muted:      lipgloss.Color("#b0bec5"),
		},
		FontFamily: "Poppins, sans-serif",
	},
}

// Presets returns the fixed, ordered theme list.
func Presets() []Theme {
	return append([]Theme(nil), presets[:]...)
}

// Lookup finds a preset by display name or slug.
func Lookup(name string) (int, bool) {
	needle := strings.ToLower(strings.TrimSpace(name))
	for i, t := range presets {
		if strings.ToLower(t.Name) == needle || t.Slug() == needle {
			return i, true
		}
	}
	return 0, false
}
