// Package tui implements the Bubble Tea board: the comment cards, a compose
// form with a live character counter, and a confirmation modal for clearing.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/smart-events/board/internal/board"
	"github.com/smart-events/board/internal/styles"
)

// Icons and symbols.
const (
	iconDot = "•" // Unicode bullet separator
)

var (
	// Tab styles for the view switcher.
	viewSelectedStyle = lipgloss.NewStyle().
				Foreground(styles.ColorBlue).
				Bold(true)

	viewNormalStyle = lipgloss.NewStyle().
			Foreground(styles.ColorGray)

	countStyle = lipgloss.NewStyle().
			Foreground(styles.ColorGray).
			Italic(true)

	emptyStyle = lipgloss.NewStyle().
			Foreground(styles.ColorGray).
			Italic(true).
			PaddingLeft(1)

	helpStyle = lipgloss.NewStyle().
			Foreground(styles.ColorGray).
			PaddingLeft(1)
)

// Status line styles.
var (
	statusInfoStyle = lipgloss.NewStyle().
			Foreground(styles.ColorGray).
			PaddingLeft(1)

	statusSuccessStyle = lipgloss.NewStyle().
				Foreground(styles.ColorGreen).
				PaddingLeft(1)

	statusWarnStyle = lipgloss.NewStyle().
			Foreground(styles.ColorYellow).
			PaddingLeft(1)

	statusErrorStyle = lipgloss.NewStyle().
				Foreground(styles.ColorRed).
				PaddingLeft(1)
)

// Modal styles.
var (
	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(styles.ColorBlue).
			Padding(1, 2)

	modalTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(styles.ColorWhite)

	modalHelpStyle = lipgloss.NewStyle().
			Foreground(styles.ColorGray).
			MarginTop(1)

	modalButtonStyle = lipgloss.NewStyle().
				Padding(0, 1).
				Background(lipgloss.Color("#3b4261")).
				Foreground(lipgloss.Color("#a9b1d6"))

	modalButtonSelectedStyle = lipgloss.NewStyle().
					Padding(0, 1).
					Background(styles.ColorBlue).
					Foreground(styles.ColorBlack).
					Bold(true)
)

// Compose form styles.
var (
	fieldLabelStyle = lipgloss.NewStyle().
			Foreground(styles.ColorBlue).
			Bold(true)

	fieldErrorStyle = lipgloss.NewStyle().
			Foreground(styles.ColorRed)
)

// counterStyle picks the counter color for a message length class.
func counterStyle(status board.CharStatus) lipgloss.Style {
	switch status {
	case board.CharsWarning:
		return styles.CounterWarningStyle
	case board.CharsAtLimit:
		return styles.CounterLimitStyle
	default:
		return styles.CounterNormalStyle
	}
}
