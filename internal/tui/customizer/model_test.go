package customizer

import (
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/teecraft/internal/domain/customization"
)

type recordingSubmitter struct {
	got []customization.Request
	err error
}

func (r *recordingSubmitter) Name() string { return "recording" }

func (r *recordingSubmitter) Submit(_ context.Context, req customization.Request) error {
	r.got = append(r.got, req)
	return r.err
}

func newTestModel(t *testing.T, opts Options) (Model, *recordingSubmitter) {
	t.Helper()
	rec := &recordingSubmitter{}
	if opts.Submitter == nil {
		opts.Submitter = rec
	}
	if opts.Defaults == (customization.Defaults{}) {
		opts.Defaults = customization.DefaultDefaults()
	}
	if opts.StartDir == "" {
		opts.StartDir = t.TempDir()
	}
	return New(opts), rec
}

// send applies msg and returns the updated model and command.
func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	next, ok := updated.(Model)
	require.True(t, ok)
	return next, cmd
}

// run applies msg and feeds any resulting message back, one level deep.
func run(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	m, cmd := send(t, m, msg)
	if cmd == nil {
		return m
	}
	out := cmd()
	switch out.(type) {
	case ImageLoadedMsg, SubmittedMsg:
		m, _ = send(t, m, out)
	}
	return m
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func paste(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s), Paste: true}
}

var (
	tabKey   = tea.KeyMsg{Type: tea.KeyTab}
	enterKey = tea.KeyMsg{Type: tea.KeyEnter}
	escKey   = tea.KeyMsg{Type: tea.KeyEsc}
	rightKey = tea.KeyMsg{Type: tea.KeyRight}
	leftKey  = tea.KeyMsg{Type: tea.KeyLeft}
	ctrlSKey = tea.KeyMsg{Type: tea.KeyCtrlS}
)

func focusField(t *testing.T, m Model, f Field) Model {
	t.Helper()
	for i := 0; i < len(m.fields) && m.Focused() != f; i++ {
		m, _ = send(t, m, tabKey)
	}
	require.Equal(t, f, m.Focused())
	return m
}

func writePNG(t *testing.T, dir, name string) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	for i := 0; i < 8; i++ {
		img.Set(i, i, color.NRGBA{R: 255, A: 255})
	}
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())
	return path
}
