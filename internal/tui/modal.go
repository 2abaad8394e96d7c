package tui

import (
	lipgloss "charm.land/lipgloss/v2"
)

// Modal represents a confirmation dialog.
type Modal struct {
	title           string
	message         string
	visible         bool
	confirmSelected bool // true = confirm button selected, false = cancel button selected
}

// NewModal creates a new modal with the given title and message. Cancel is
// selected initially so a stray enter never confirms a destructive action.
func NewModal(title, message string) Modal {
	return Modal{
		title:   title,
		message: message,
		visible: true,
	}
}

// ToggleSelection switches the selected button.
func (m *Modal) ToggleSelection() {
	m.confirmSelected = !m.confirmSelected
}

// ConfirmSelected returns true if the confirm button is selected.
func (m Modal) ConfirmSelected() bool {
	return m.confirmSelected
}

// Visible returns whether the modal should be displayed.
func (m Modal) Visible() bool {
	return m.visible
}

// Overlay renders the modal centered over background in a width x height
// area.
func (m Modal) Overlay(background string, width, height int) string {
	if !m.visible {
		return background
	}

	var confirmBtn, cancelBtn string
	if m.confirmSelected {
		confirmBtn = modalButtonSelectedStyle.Render("Confirm")
		cancelBtn = modalButtonStyle.Render("Cancel")
	} else {
		confirmBtn = modalButtonStyle.Render("Confirm")
		cancelBtn = modalButtonSelectedStyle.Render("Cancel")
	}

	buttons := lipgloss.JoinHorizontal(lipgloss.Center, confirmBtn, "  ", cancelBtn)
	buttonRow := lipgloss.NewStyle().MarginTop(1).Render(buttons)

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		modalTitleStyle.Render(m.title),
		"",
		m.message,
		buttonRow,
		modalHelpStyle.Render("←/→ select  enter confirm  esc cancel"),
	)

	return overlay(background, modalStyle.Render(content), width, height)
}

// overlay draws fg centered on top of background; the background stays
// visible around it.
func overlay(background, fg string, width, height int) string {
	bgLayer := lipgloss.NewLayer(background)
	fgLayer := lipgloss.NewLayer(fg)

	centerX := max((width-lipgloss.Width(fg))/2, 0)
	centerY := max((height-lipgloss.Height(fg))/2, 0)
	fgLayer.X(centerX).Y(centerY).Z(1)

	return lipgloss.NewCompositor(bgLayer, fgLayer).Render()
}
