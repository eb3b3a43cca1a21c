package customizer

import "github.com/charmbracelet/bubbles/key"

// KeyMap lists the form's bindings. It satisfies help.KeyMap.
type KeyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Open   key.Binding
	Submit key.Binding
	Close  key.Binding
}

// DefaultKeyMap returns the standard form bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		Prev:   key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev field")),
		Up:     key.NewBinding(key.WithKeys("up")),
		Down:   key.NewBinding(key.WithKeys("down")),
		Left:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/→", "change build")),
		Right:  key.NewBinding(key.WithKeys("right", "l", " ")),
		Open:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select file / submit")),
		Submit: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "submit")),
		Close:  key.NewBinding(key.WithKeys("enter", "esc"), key.WithHelp("enter", "dismiss")),
	}
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Left, k.Open, k.Submit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev},
		{k.Left, k.Open, k.Submit},
	}
}
