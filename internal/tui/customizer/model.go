package customizer

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/teecraft/internal/domain/customization"
	"github.com/alexisbeaulieu97/teecraft/internal/logger"
	"github.com/alexisbeaulieu97/teecraft/internal/preview"
	"github.com/alexisbeaulieu97/teecraft/internal/submit"
	"github.com/alexisbeaulieu97/teecraft/internal/ui/theme"
)

// imageExtensions limits the file picker to formats the preview decodes.
var imageExtensions = []string{".png", ".jpg", ".jpeg", ".gif", ".bmp", ".tif", ".tiff"}

// Options configures a customization form.
type Options struct {
	Defaults  customization.Defaults
	Simple    bool
	Submitter submit.Submitter
	Logger    *logger.Logger
	SizeHint  int64
	StartDir  string
	Theme     theme.Theme
	Context   context.Context
}

// Model is the customization form.
type Model struct {
	// Domain state
	form    *customization.Form
	preview preview.Preview
	// loadSeq numbers image load requests. Results of superseded loads
	// are discarded.
	loadSeq int

	// Controls
	fields      []Field
	focus       int
	heightInput textinput.Model
	weightInput textinput.Model
	text        textarea.Model
	picker      filepicker.Model

	// Modal state
	picking    bool
	ackOpen    bool
	ackMessage string
	ackErr     string

	// Collaborators
	ctx       context.Context
	submitter submit.Submitter
	log       *logger.Logger
	sizeHint  int64
	simple    bool

	// Presentation
	theme     theme.Theme
	styles    theme.Styles
	keys      KeyMap
	winWidth  int
	winHeight int
}

// New creates a form mounted with opts.Defaults.
func New(opts Options) Model {
	if opts.Context == nil {
		opts.Context = context.Background()
	}
	if opts.SizeHint <= 0 {
		opts.SizeHint = customization.ImageSizeHint
	}
	if opts.Theme.Name == "" {
		opts.Theme = theme.Presets()[0]
	}
	if opts.StartDir == "" {
		if wd, err := os.Getwd(); err == nil {
			opts.StartDir = wd
		}
	}

	form := customization.NewForm(opts.Defaults)

	height := textinput.New()
	height.Prompt = ""
	height.Placeholder = "cm"
	height.CharLimit = 6
	height.SetValue(form.Height())

	weight := textinput.New()
	weight.Prompt = ""
	weight.Placeholder = "kg"
	weight.CharLimit = 6
	weight.SetValue(form.Weight())

	text := textarea.New()
	text.Placeholder = "Text to print (max 3 lines)"
	// No cell-width limit: the rune cap is applied by ConstrainText.
	text.CharLimit = 0
	text.MaxHeight = customization.MaxTextLines
	text.SetHeight(customization.MaxTextLines)
	text.SetWidth(40)
	text.ShowLineNumbers = false

	picker := filepicker.New()
	picker.AllowedTypes = imageExtensions
	picker.CurrentDirectory = opts.StartDir

	fields := []Field{FieldDropZone, FieldHeight, FieldWeight, FieldBuild, FieldText, FieldSubmit}
	if opts.Simple {
		fields = []Field{FieldHeight, FieldWeight, FieldBuild, FieldSubmit}
	}

	m := Model{
		form:        form,
		preview:     preview.Placeholder(form.Image().Source),
		fields:      fields,
		heightInput: height,
		weightInput: weight,
		text:        text,
		picker:      picker,
		ctx:         opts.Context,
		submitter:   opts.Submitter,
		log:         opts.Logger,
		sizeHint:    opts.SizeHint,
		simple:      opts.Simple,
		keys:        DefaultKeyMap(),
		winWidth:    100,
		winHeight:   30,
	}
	m = m.WithTheme(opts.Theme)
	m.applyFocus()
	return m
}

// Init starts the cursor blink of the focused input.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// WithTheme returns the form styled with t. The theme only affects styling.
func (m Model) WithTheme(t theme.Theme) Model {
	m.theme = t
	m.styles = theme.NewStyles(t)

	d := t.Derived()
	fieldText := lipgloss.NewStyle().Foreground(d.Text)
	m.heightInput.TextStyle = fieldText
	m.weightInput.TextStyle = fieldText
	m.text.FocusedStyle.Text = fieldText
	m.text.BlurredStyle.Text = fieldText
	m.text.FocusedStyle.CursorLine = lipgloss.NewStyle()
	return m
}

// Snapshot returns the form's current values.
func (m Model) Snapshot() customization.Request {
	return m.form.Snapshot()
}

// Focused returns the field holding focus.
func (m Model) Focused() Field {
	return m.fields[m.focus]
}

// CapturesText reports whether typed characters go into a text field, so
// single-letter shortcuts must not fire.
func (m Model) CapturesText() bool {
	if m.picking || m.ackOpen {
		return false
	}
	switch m.Focused() {
	case FieldHeight, FieldWeight, FieldText:
		return true
	default:
		return false
	}
}

// Preview returns the displayed preview.
func (m Model) Preview() preview.Preview {
	return m.preview
}

// AcknowledgementOpen reports whether the post-submit dialog is showing.
func (m Model) AcknowledgementOpen() bool {
	return m.ackOpen
}

// Picking reports whether the file picker is open.
func (m Model) Picking() bool {
	return m.picking
}

// SizeWarning reports whether the current image is larger than the
// advertised size hint.
func (m Model) SizeWarning() bool {
	return m.form.Image().ExceedsSizeHint(m.sizeHint)
}

// KeyMap exposes the bindings for help rendering.
func (m Model) KeyMap() KeyMap {
	return m.keys
}

func (m *Model) moveFocus(delta int) tea.Cmd {
	n := len(m.fields)
	m.focus = ((m.focus+delta)%n + n) % n
	return m.applyFocus()
}

func (m *Model) applyFocus() tea.Cmd {
	m.heightInput.Blur()
	m.weightInput.Blur()
	m.text.Blur()

	switch m.Focused() {
	case FieldHeight:
		return m.heightInput.Focus()
	case FieldWeight:
		return m.weightInput.Focus()
	case FieldText:
		return m.text.Focus()
	}
	return nil
}

// requestImage starts loading path and returns the load command.
func (m *Model) requestImage(path string, origin customization.ImageOrigin) tea.Cmd {
	m.loadSeq++
	return loadImageCmd(m.loadSeq, path, origin)
}

func sizeLabel(hint int64) string {
	return fmt.Sprintf("%d MB maximum", hint>>20)
}

// Theme returns the theme the form is styled with.
func (m Model) Theme() theme.Theme {
	return m.theme
}
