package customizer

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/teecraft/internal/domain/customization"
	"github.com/alexisbeaulieu97/teecraft/internal/logger"
	"github.com/alexisbeaulieu97/teecraft/internal/ui/theme"
)

func TestSubmitWithoutChangesHandsOffDefaults(t *testing.T) {
	m, rec := newTestModel(t, Options{})

	m = run(t, m, ctrlSKey)

	require.Len(t, rec.got, 1)
	assert.Equal(t, customization.Request{
		Height: "180",
		Weight: "80",
		Build:  customization.BuildAthletic,
		Text:   "",
		Image:  customization.PlaceholderImage(""),
	}, rec.got[0])
	assert.True(t, m.AcknowledgementOpen())
	assert.Contains(t, m.View(), "Submitted!")
}

func TestAcknowledgementBlocksInputUntilDismissed(t *testing.T) {
	m, rec := newTestModel(t, Options{})
	m = run(t, m, ctrlSKey)
	require.True(t, m.AcknowledgementOpen())

	m, cmd := send(t, m, ctrlSKey)
	assert.Nil(t, cmd)
	m, _ = send(t, m, tabKey)
	assert.Equal(t, FieldDropZone, m.Focused())
	require.Len(t, rec.got, 1)

	m, _ = send(t, m, enterKey)
	assert.False(t, m.AcknowledgementOpen())
}

func TestSubmitDoesNotResetForm(t *testing.T) {
	m, rec := newTestModel(t, Options{})
	m = focusField(t, m, FieldText)
	m, _ = send(t, m, keyRunes("hello"))

	m = run(t, m, ctrlSKey)
	m, _ = send(t, m, escKey)

	require.Len(t, rec.got, 1)
	assert.Equal(t, "hello", rec.got[0].Text)
	assert.Equal(t, "hello", m.Snapshot().Text)
}

func TestSubmitFailureIsReported(t *testing.T) {
	rec := &recordingSubmitter{err: errors.New("archive offline")}
	m, _ := newTestModel(t, Options{Submitter: rec})

	m = focusField(t, m, FieldSubmit)
	m = run(t, m, enterKey)

	require.True(t, m.AcknowledgementOpen())
	view := m.View()
	assert.Contains(t, view, "Submission failed.")
	assert.Contains(t, view, "archive offline")
}

func TestTextPasteIsConstrainedToThreeLines(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	m = focusField(t, m, FieldText)

	m, _ = send(t, m, paste("line1\nline2\nline3\nline4"))

	assert.Equal(t, "line1\nline2\nline3", m.Snapshot().Text)
	assert.Equal(t, m.Snapshot().Text, m.text.Value())
}

func TestTextInvariantHoldsWhileTyping(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	m = focusField(t, m, FieldText)

	for i := 0; i < 6; i++ {
		m, _ = send(t, m, keyRunes(strings.Repeat("ab", 15)))
		m, _ = send(t, m, enterKey)

		text := m.Snapshot().Text
		require.LessOrEqual(t, customization.LineCount(text), customization.MaxTextLines)
		require.LessOrEqual(t, utf8.RuneCountInString(text), customization.MaxTextChars)
	}

	m, _ = send(t, m, paste(strings.Repeat("z", 300)))
	text := m.Snapshot().Text
	assert.LessOrEqual(t, customization.LineCount(text), customization.MaxTextLines)
	assert.LessOrEqual(t, utf8.RuneCountInString(text), customization.MaxTextChars)
}

func TestMeasurementsUpdateOnEveryKeystroke(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	m = focusField(t, m, FieldHeight)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, "18", m.Snapshot().Height)

	m, _ = send(t, m, keyRunes("x"))
	assert.Equal(t, "18x", m.Snapshot().Height)

	m = focusField(t, m, FieldWeight)
	m, _ = send(t, m, keyRunes("5"))
	assert.Equal(t, "805", m.Snapshot().Weight)
}

func TestBuildSelectorStaysWithinOptions(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	m = focusField(t, m, FieldBuild)

	m, _ = send(t, m, rightKey)
	assert.Equal(t, customization.BuildBig, m.Snapshot().Build)

	m, _ = send(t, m, rightKey)
	assert.Equal(t, customization.BuildLean, m.Snapshot().Build)

	m, _ = send(t, m, leftKey)
	assert.Equal(t, customization.BuildBig, m.Snapshot().Build)

	for i := 0; i < 11; i++ {
		m, _ = send(t, m, keyRunes("l"))
		require.True(t, m.Snapshot().Build.Valid())
	}
	m, _ = send(t, m, keyRunes("q"))
	assert.True(t, m.Snapshot().Build.Valid())
}

func TestDropReplacesImage(t *testing.T) {
	dir := t.TempDir()
	first := writePNG(t, dir, "first.png")
	second := writePNG(t, dir, "second.png")

	m, _ := newTestModel(t, Options{})
	require.Equal(t, FieldDropZone, m.Focused())

	m = run(t, m, paste("'"+first+"'"))
	assert.Equal(t, first, m.Snapshot().Image.Source)
	assert.Equal(t, customization.OriginDrop, m.Snapshot().Image.Origin)

	m = run(t, m, paste(second))
	img := m.Snapshot().Image
	assert.Equal(t, second, img.Source)
	assert.Equal(t, "second.png", img.Name)
	assert.Equal(t, "second.png", m.Preview().Ref.Name)
	assert.False(t, m.Preview().Broken)

	assert.Contains(t, m.View(), "second.png")
	assert.NotContains(t, m.View(), "first.png")
}

func TestDropIsConsumedByDropZone(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	m, cmd := send(t, m, paste("   "))
	assert.Nil(t, cmd)
	assert.Equal(t, "180", m.Snapshot().Height)
	assert.True(t, m.Snapshot().Image.IsPlaceholder())
}

func TestCorruptDropDegradesSilently(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.jpg")
	require.NoError(t, os.WriteFile(path, []byte("nope"), 0o644))

	m, _ := newTestModel(t, Options{})
	m = run(t, m, paste(path))

	assert.Equal(t, path, m.Snapshot().Image.Source)
	assert.True(t, m.Preview().Broken)
	assert.Contains(t, m.View(), "preview unavailable")
	assert.False(t, m.AcknowledgementOpen())
}

func TestOversizedImageWarnsButIsAccepted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "huge.png")
	require.NoError(t, os.WriteFile(path, make([]byte, 2<<20), 0o644))

	m, rec := newTestModel(t, Options{SizeHint: 1 << 20})
	m = run(t, m, paste(path))

	assert.True(t, m.SizeWarning())
	assert.Contains(t, m.View(), "larger than 1 MB maximum")

	m = run(t, m, ctrlSKey)
	require.Len(t, rec.got, 1)
	assert.Equal(t, path, rec.got[0].Image.Source)
}

func TestPickerOpensAndCancels(t *testing.T) {
	m, _ := newTestModel(t, Options{})

	m, cmd := send(t, m, enterKey)
	assert.True(t, m.Picking())
	assert.NotNil(t, cmd)
	assert.Contains(t, m.View(), "Select an image")
	assert.False(t, m.CapturesText())

	m, _ = send(t, m, escKey)
	assert.False(t, m.Picking())
}

func TestFocusCyclesThroughFields(t *testing.T) {
	m, _ := newTestModel(t, Options{})

	want := []Field{FieldHeight, FieldWeight, FieldBuild, FieldText, FieldSubmit, FieldDropZone}
	for _, f := range want {
		m, _ = send(t, m, tabKey)
		assert.Equal(t, f, m.Focused())
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, FieldSubmit, m.Focused())
}

func TestCapturesText(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	assert.False(t, m.CapturesText())

	m = focusField(t, m, FieldHeight)
	assert.True(t, m.CapturesText())

	m = focusField(t, m, FieldBuild)
	assert.False(t, m.CapturesText())

	m = focusField(t, m, FieldText)
	assert.True(t, m.CapturesText())
}

func TestSimpleVariant(t *testing.T) {
	m, rec := newTestModel(t, Options{Simple: true})

	assert.Equal(t, FieldHeight, m.Focused())
	assert.True(t, m.CapturesText())
	assert.NotContains(t, m.View(), "Drop an image")
	assert.NotContains(t, m.View(), "T-shirt text")

	m = focusField(t, m, FieldBuild)
	m, _ = send(t, m, leftKey)
	m = run(t, m, ctrlSKey)

	require.Len(t, rec.got, 1)
	assert.Equal(t, customization.BuildRegular, rec.got[0].Build)
	assert.True(t, rec.got[0].Image.IsPlaceholder())
	assert.Empty(t, rec.got[0].Text)
}

func TestWithThemeKeepsState(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	m = focusField(t, m, FieldText)
	m, _ = send(t, m, keyRunes("abc"))

	light := theme.Presets()[1]
	m = m.WithTheme(light)
	assert.Equal(t, light.Name, m.Theme().Name)
	assert.Equal(t, "abc", m.Snapshot().Text)
	assert.Equal(t, FieldText, m.Focused())
}

func TestWindowSizeSwitchesLayout(t *testing.T) {
	m, _ := newTestModel(t, Options{})

	m, _ = send(t, m, tea.WindowSizeMsg{Width: 60, Height: 40})
	narrow := m.View()
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	wide := m.View()

	assert.NotEqual(t, narrow, wide)
	assert.Contains(t, narrow, "Customize Your T-shirt")
}

func TestLatestImageWinsWhenLoadsFinishOutOfOrder(t *testing.T) {
	dir := t.TempDir()
	first := writePNG(t, dir, "a.png")
	second := writePNG(t, dir, "b.png")

	m, _ := newTestModel(t, Options{})
	m, loadFirst := send(t, m, paste(first))
	m, loadSecond := send(t, m, paste(second))
	require.NotNil(t, loadFirst)
	require.NotNil(t, loadSecond)

	m, _ = send(t, m, loadSecond())
	m, _ = send(t, m, loadFirst())

	assert.Equal(t, second, m.Snapshot().Image.Source)
	assert.Equal(t, "b.png", m.Preview().Ref.Name)
	assert.Contains(t, m.View(), "b.png")
	assert.NotContains(t, m.View(), "a.png")
}

func TestWideRunesCountOnceTowardsTextLimit(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	m = focusField(t, m, FieldText)

	m, _ = send(t, m, keyRunes(strings.Repeat("字", customization.MaxTextChars)))
	assert.Equal(t, customization.MaxTextChars, utf8.RuneCountInString(m.Snapshot().Text))

	m, _ = send(t, m, keyRunes("字"))
	assert.Equal(t, customization.MaxTextChars, utf8.RuneCountInString(m.Snapshot().Text))
	assert.Equal(t, m.Snapshot().Text, m.text.Value())

	m, _ = send(t, m, paste(strings.Repeat("🙂", 10)))
	assert.LessOrEqual(t, utf8.RuneCountInString(m.Snapshot().Text), customization.MaxTextChars)
}

func TestImageLoadLogsMIMEType(t *testing.T) {
	buf := &bytes.Buffer{}
	log, err := logger.New(logger.Options{Level: "debug", Writer: buf})
	require.NoError(t, err)

	path := writePNG(t, t.TempDir(), "print.png")
	m, _ := newTestModel(t, Options{Logger: log})
	m = run(t, m, paste(path))

	require.Equal(t, path, m.Snapshot().Image.Source)
	assert.Contains(t, buf.String(), `"mime":"image/png"`)
	assert.Contains(t, buf.String(), "image loaded")
}
