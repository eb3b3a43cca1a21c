// Package shell is the top-level terminal model: a header, the
// customization form as content, and a footer. It owns the active theme.
package shell

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/teecraft/internal/logger"
	"github.com/alexisbeaulieu97/teecraft/internal/tui/customizer"
	"github.com/alexisbeaulieu97/teecraft/internal/tui/hotkey"
	"github.com/alexisbeaulieu97/teecraft/internal/ui/theme"
)

// ThemeChangedMsg announces the newly active theme.
type ThemeChangedMsg struct {
	Theme theme.Theme
}

// Options configures the shell.
type Options struct {
	// Theme is the name or slug of the initial theme.
	Theme  string
	Form   customizer.Options
	Logger *logger.Logger
	// Now stamps the footer credits. Defaults to time.Now.
	Now func() time.Time
}

// Model is the shell state.
type Model struct {
	switcher *theme.Switcher
	hotkeys  *hotkey.Dispatcher
	themeKey *hotkey.Subscription
	content  customizer.Model
	styles   theme.Styles
	help     help.Model
	keys     KeyMap
	log      *logger.Logger
	year     int
	width    int
	height   int
	quitting bool
}

// New mounts the shell and subscribes the theme hotkey. Call Close when
// the program ends.
func New(opts Options) Model {
	if opts.Now == nil {
		opts.Now = time.Now
	}

	switcher := theme.NewSwitcher(opts.Theme)
	active := switcher.Current()

	formOpts := opts.Form
	formOpts.Theme = active
	if formOpts.Logger == nil {
		formOpts.Logger = opts.Logger
	}

	m := Model{
		switcher: switcher,
		hotkeys:  hotkey.NewDispatcher(),
		content:  customizer.New(formOpts),
		styles:   theme.NewStyles(active),
		help:     help.New(),
		keys:     DefaultKeyMap(),
		log:      opts.Logger.WithComponent("shell"),
		year:     opts.Now().Year(),
		width:    100,
		height:   30,
	}
	m.themeKey = m.hotkeys.Subscribe(m.keys.Theme, m.cycleTheme)
	return m
}

// cycleTheme advances the switcher and announces the new theme.
func (m Model) cycleTheme(tea.KeyMsg) tea.Cmd {
	next := m.switcher.Next()
	m.log.WithFields(map[string]any{"theme": next.Name}).Debug("theme switched")
	return func() tea.Msg {
		return ThemeChangedMsg{Theme: next}
	}
}

// Init delegates to the form.
func (m Model) Init() tea.Cmd {
	return m.content.Init()
}

// Close releases the theme hotkey subscription. It is safe to call more
// than once.
func (m Model) Close() {
	m.themeKey.Close()
}

// Theme returns the active theme.
func (m Model) Theme() theme.Theme {
	return m.switcher.Current()
}

// Content returns the customization form.
func (m Model) Content() customizer.Model {
	return m.content
}

// Quitting reports whether a quit key was pressed.
func (m Model) Quitting() bool {
	return m.quitting
}

// KeyMap lists the shell bindings.
type KeyMap struct {
	Theme key.Binding
	Quit  key.Binding
	Force key.Binding
}

// DefaultKeyMap returns the shell bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Theme: key.NewBinding(key.WithKeys("alt+q"), key.WithHelp("alt+q", "switch theme")),
		Quit:  key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		Force: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}
