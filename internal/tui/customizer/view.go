package customizer

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/teecraft/internal/domain/customization"
)

const (
	controlsWidth = 44
	previewWidth  = 30
	previewHeight = 12
	// narrowWidth is the width below which the preview stacks above the controls.
	narrowWidth = 80
)

// View renders the current model state
func (m Model) View() string {
	if m.ackOpen {
		return m.renderAcknowledgement()
	}

	title := m.styles.Title.Render("Customize Your T-shirt")

	if m.simple {
		return lipgloss.JoinVertical(lipgloss.Left, title, "", m.renderControls())
	}

	right := lipgloss.JoinVertical(lipgloss.Left,
		m.renderDropZone(),
		m.renderControls(),
		m.renderTextPanel(),
	)
	if m.picking {
		right = m.renderPicker()
	}

	left := m.styles.Preview.Render(m.preview.Render(previewWidth, previewHeight))

	var body string
	if m.winWidth < narrowWidth {
		body = lipgloss.JoinVertical(lipgloss.Center, left, right)
	} else {
		body = lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right)
	}
	return lipgloss.JoinVertical(lipgloss.Left, title, "", body)
}

func (m Model) renderDropZone() string {
	style := m.styles.DropZone
	if m.Focused() == FieldDropZone {
		style = m.styles.DropFocused
	}

	lines := []string{
		"Drop an image here or press enter to select a file",
		m.styles.Muted.Render(sizeLabel(m.sizeHint)),
		m.form.Image().DisplayName(),
	}
	if m.SizeWarning() {
		lines = append(lines, m.styles.Warning.Render(fmt.Sprintf("⚠ larger than %s", sizeLabel(m.sizeHint))))
	}
	if m.preview.Broken {
		lines = append(lines, m.styles.Warning.Render("⚠ preview unavailable"))
	}
	return style.Width(controlsWidth).Render(strings.Join(lines, "\n"))
}

func (m Model) renderControls() string {
	rows := []string{
		m.renderLabel("Height", FieldHeight),
		m.heightInput.View(),
		m.renderLabel("Weight", FieldWeight),
		m.weightInput.View(),
		m.renderLabel("Build", FieldBuild),
		m.renderBuild(),
	}
	if m.simple {
		rows = append(rows, "", m.renderSubmit())
	}
	return m.panelStyle(FieldHeight, FieldWeight, FieldBuild).Width(controlsWidth).Render(strings.Join(rows, "\n"))
}

func (m Model) renderBuild() string {
	var parts []string
	current := m.form.Build()
	for _, b := range customization.Builds() {
		if b == current {
			style := m.styles.Value.Bold(true)
			if m.Focused() == FieldBuild {
				style = m.styles.FocusedValue
			}
			parts = append(parts, style.Render("‹ "+b.Label()+" ›"))
			continue
		}
		parts = append(parts, m.styles.Muted.Render(b.Label()))
	}
	return strings.Join(parts, " ")
}

func (m Model) renderTextPanel() string {
	value := m.form.Text()
	counter := fmt.Sprintf("%d/%d chars · %d/%d lines",
		utf8.RuneCountInString(value), customization.MaxTextChars,
		customization.LineCount(value), customization.MaxTextLines)

	rows := []string{
		m.renderLabel("T-shirt text", FieldText),
		m.text.View(),
		m.styles.Muted.Render(counter),
		"",
		m.renderSubmit(),
	}
	return m.panelStyle(FieldText, FieldSubmit).Width(controlsWidth).Render(strings.Join(rows, "\n"))
}

func (m Model) renderSubmit() string {
	if m.Focused() == FieldSubmit {
		return m.styles.ButtonFocused.Render("Submit")
	}
	return m.styles.Button.Render("Submit")
}

func (m Model) renderPicker() string {
	header := m.styles.Label.Render("Select an image") + m.styles.Muted.Render("  (esc to cancel)")
	body := lipgloss.JoinVertical(lipgloss.Left, header, m.picker.CurrentDirectory, "", m.picker.View())
	return m.styles.PanelFocused.Width(controlsWidth).Render(body)
}

func (m Model) renderAcknowledgement() string {
	rows := []string{m.styles.DialogTitle.Render(m.ackMessage)}
	if m.ackErr != "" {
		rows = append(rows, m.styles.Warning.Render(m.ackErr))
	}
	rows = append(rows, m.styles.Muted.Render("press enter to continue"))
	dialog := m.styles.Dialog.Render(strings.Join(rows, "\n"))
	return lipgloss.Place(m.winWidth, previewHeight+6, lipgloss.Center, lipgloss.Center, dialog)
}

func (m Model) renderLabel(label string, field Field) string {
	if m.Focused() == field {
		return m.styles.FocusedValue.Render("› " + label)
	}
	return m.styles.Label.Render("  " + label)
}

func (m Model) panelStyle(fields ...Field) lipgloss.Style {
	focused := m.Focused()
	for _, f := range fields {
		if f == focused {
			return m.styles.PanelFocused
		}
	}
	return m.styles.Panel
}
