package shell

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/teecraft/internal/domain/customization"
	"github.com/alexisbeaulieu97/teecraft/internal/tui/customizer"
	"github.com/alexisbeaulieu97/teecraft/internal/ui/theme"
)

var (
	altQ   = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}, Alt: true}
	plainQ = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}
	ctrlC  = tea.KeyMsg{Type: tea.KeyCtrlC}
	tab    = tea.KeyMsg{Type: tea.KeyTab}
)

func newTestShell(t *testing.T, initial string) Model {
	t.Helper()
	m := New(Options{
		Theme: initial,
		Form: customizer.Options{
			Defaults: customization.DefaultDefaults(),
			StartDir: t.TempDir(),
		},
		Now: func() time.Time { return time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC) },
	})
	t.Cleanup(m.Close)
	return m
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	next, ok := updated.(Model)
	require.True(t, ok)
	return next, cmd
}

// drain runs cmd and feeds the resulting messages back into the model.
func drain(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	if cmd == nil {
		return m
	}
	switch msg := cmd().(type) {
	case tea.BatchMsg:
		for _, c := range msg {
			m = drain(t, m, c)
		}
	case ThemeChangedMsg:
		m, _ = send(t, m, msg)
	}
	return m
}

func pressHotkey(t *testing.T, m Model) Model {
	t.Helper()
	m, cmd := send(t, m, altQ)
	return drain(t, m, cmd)
}

func TestHotkeyCyclesThemes(t *testing.T) {
	t.Parallel()

	m := newTestShell(t, "")
	start := m.Theme()
	require.Equal(t, "Dark Modern", start.Name)

	m = pressHotkey(t, m)
	assert.Equal(t, "Light Professional", m.Theme().Name)
	assert.Equal(t, "Light Professional", m.Content().Theme().Name)

	m = pressHotkey(t, m)
	assert.Equal(t, "Vibrant Creative", m.Theme().Name)

	m = pressHotkey(t, m)
	assert.Equal(t, start, m.Theme())
	assert.Equal(t, start.Name, m.Content().Theme().Name)
}

func TestHotkeyWorksWhileTyping(t *testing.T) {
	t.Parallel()

	m := newTestShell(t, "")
	m, _ = send(t, m, tab)
	require.True(t, m.Content().CapturesText())

	m = pressHotkey(t, m)
	assert.Equal(t, "Light Professional", m.Theme().Name)
	assert.Equal(t, "180", m.Content().Snapshot().Height)
}

func TestHotkeyInertAfterClose(t *testing.T) {
	t.Parallel()

	m := newTestShell(t, "vibrant-creative")
	require.Equal(t, 1, m.hotkeys.Len())

	m.Close()
	m.Close()
	assert.Zero(t, m.hotkeys.Len())

	m = pressHotkey(t, m)
	assert.Equal(t, "Vibrant Creative", m.Theme().Name)
}

func TestThemeChangeKeepsFormState(t *testing.T) {
	t.Parallel()

	m := newTestShell(t, "")
	m, _ = send(t, m, tab)
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyBackspace})

	m = pressHotkey(t, m)

	assert.Equal(t, "18", m.Content().Snapshot().Height)
	assert.Equal(t, customizer.FieldHeight, m.Content().Focused())
}

func TestQuitKeys(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		focusTab bool
		msg      tea.KeyMsg
		wantQuit bool
	}{
		{name: "q on drop zone", msg: plainQ, wantQuit: true},
		{name: "ctrl+c on drop zone", msg: ctrlC, wantQuit: true},
		{name: "q while typing", focusTab: true, msg: plainQ, wantQuit: false},
		{name: "ctrl+c while typing", focusTab: true, msg: ctrlC, wantQuit: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m := newTestShell(t, "")
			if tt.focusTab {
				m, _ = send(t, m, tab)
			}

			m, cmd := send(t, m, tt.msg)
			assert.Equal(t, tt.wantQuit, m.Quitting())
			if tt.wantQuit {
				require.NotNil(t, cmd)
				assert.IsType(t, tea.QuitMsg{}, cmd())
			}
		})
	}
}

func TestQWhileTypingReachesField(t *testing.T) {
	t.Parallel()

	m := newTestShell(t, "")
	m, _ = send(t, m, tab)
	m, _ = send(t, m, plainQ)

	assert.Equal(t, "180q", m.Content().Snapshot().Height)
}

func TestInitialThemeFallsBack(t *testing.T) {
	t.Parallel()

	assert.Equal(t, theme.Presets()[0].Name, newTestShell(t, "no-such-theme").Theme().Name)
	assert.Equal(t, "Light Professional", newTestShell(t, "Light Professional").Theme().Name)
}
