package customizer

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/teecraft/internal/domain/customization"
	"github.com/alexisbeaulieu97/teecraft/internal/preview"
	"github.com/alexisbeaulieu97/teecraft/internal/submit"
)

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.winWidth = msg.Width
		m.winHeight = msg.Height
		var cmd tea.Cmd
		m.picker, cmd = m.picker.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case ImageLoadedMsg:
		if msg.Seq < m.loadSeq {
			stale := msg.Preview
			stale.Release()
			m.log.WithFields(map[string]any{"image": stale.Ref.Source}).Debug("superseded image load discarded")
			return m, nil
		}
		return m.acceptImage(msg.Preview), nil

	case SubmittedMsg:
		m.ackOpen = true
		m.ackMessage = submit.Acknowledgement
		m.ackErr = ""
		if msg.Err != nil {
			m.ackMessage = "Submission failed."
			m.ackErr = msg.Err.Error()
			m.log.Error(msg.Err, "submission failed")
		}
		return m, nil
	}

	// Picker directory reads and cursor blinks land here.
	var cmds []tea.Cmd
	if m.picking {
		var cmd tea.Cmd
		m.picker, cmd = m.picker.Update(msg)
		cmds = append(cmds, cmd)
	}
	cmds = append(cmds, m.updateFocusedInput(msg))
	return m, tea.Batch(cmds...)
}

// handleKeyPress routes keys to the open modal or the focused field.
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.ackOpen {
		if key.Matches(msg, m.keys.Close) {
			m.ackOpen = false
		}
		return m, nil
	}

	if m.picking {
		return m.handlePickerKeys(msg)
	}

	// A paste onto the drop zone is a dropped file and never reaches a field.
	if msg.Paste && m.Focused() == FieldDropZone {
		path, ok := preview.ParseDrop(string(msg.Runes))
		if !ok {
			return m, nil
		}
		cmd := m.requestImage(path, customization.OriginDrop)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Submit):
		return m, m.submit()
	case key.Matches(msg, m.keys.Next):
		cmd := m.moveFocus(1)
		return m, cmd
	case key.Matches(msg, m.keys.Prev):
		cmd := m.moveFocus(-1)
		return m, cmd
	}

	if m.Focused() != FieldText {
		switch {
		case key.Matches(msg, m.keys.Down):
			cmd := m.moveFocus(1)
			return m, cmd
		case key.Matches(msg, m.keys.Up):
			cmd := m.moveFocus(-1)
			return m, cmd
		}
	}

	switch m.Focused() {
	case FieldDropZone:
		if key.Matches(msg, m.keys.Open) {
			m.picking = true
			return m, m.picker.Init()
		}
		return m, nil

	case FieldBuild:
		switch {
		case key.Matches(msg, m.keys.Left):
			_ = m.form.SetBuild(m.form.Build().Step(-1))
		case key.Matches(msg, m.keys.Right):
			_ = m.form.SetBuild(m.form.Build().Step(1))
		}
		return m, nil

	case FieldSubmit:
		if key.Matches(msg, m.keys.Open) {
			return m, m.submit()
		}
		return m, nil

	case FieldHeight, FieldWeight:
		if key.Matches(msg, m.keys.Open) {
			cmd := m.moveFocus(1)
			return m, cmd
		}
		cmd := m.updateFocusedInput(msg)
		return m, cmd

	default:
		cmd := m.updateFocusedInput(msg)
		return m, cmd
	}
}

func (m Model) handlePickerKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyEsc {
		m.picking = false
		return m, nil
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)

	if ok, path := m.picker.DidSelectFile(msg); ok {
		m.picking = false
		load := m.requestImage(path, customization.OriginPicker)
		return m, tea.Batch(cmd, load)
	}
	return m, cmd
}

// updateFocusedInput forwards msg to the focused text control and commits
// the resulting value through the form's setters.
func (m *Model) updateFocusedInput(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.Focused() {
	case FieldHeight:
		m.heightInput, cmd = m.heightInput.Update(msg)
		m.form.SetHeight(m.heightInput.Value())
	case FieldWeight:
		m.weightInput, cmd = m.weightInput.Update(msg)
		m.form.SetWeight(m.weightInput.Value())
	case FieldText:
		m.text, cmd = m.text.Update(msg)
		raw := m.text.Value()
		if accepted := m.form.SetText(raw); accepted != raw {
			m.text.SetValue(accepted)
		}
	}
	return cmd
}

// acceptImage replaces the current image and releases the previous preview.
func (m Model) acceptImage(p preview.Preview) Model {
	m.form.SetImage(p.Ref)
	m.preview.Release()
	m.preview = p

	fields := map[string]any{"image": p.Ref.Source, "origin": string(p.Ref.Origin), "size": p.Ref.Size, "mime": p.MIME}
	if p.Broken {
		m.log.WithFields(fields).Error(p.Err, "image preview unavailable")
	} else {
		m.log.WithFields(fields).Debug("image loaded")
	}
	if m.SizeWarning() {
		m.log.WithFields(fields).Warn("image exceeds advertised size hint")
	}
	return m
}

func (m Model) submit() tea.Cmd {
	return submitCmd(m.ctx, m.submitter, m.form.Snapshot())
}
