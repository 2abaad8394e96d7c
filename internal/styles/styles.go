// Package styles provides shared lipgloss styles for CLI and TUI components.
package styles

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// Tokyo Night color palette.
var (
	ColorGreen  = lipgloss.Color("#9ece6a")
	ColorYellow = lipgloss.Color("#e0af68")
	ColorRed    = lipgloss.Color("#f7768e")
	ColorBlue   = lipgloss.Color("#7aa2f7")
	ColorGray   = lipgloss.Color("#565f89")
	ColorWhite  = lipgloss.Color("#c0caf5")
	ColorBlack  = lipgloss.Color("#1a1b26")
)

// Banner ASCII art for the header.
const Banner = `
 ╔╗ ╔═╗╔═╗╦═╗╔╦╗
 ╠╩╗║ ║╠═╣╠╦╝ ║║
 ╚═╝╚═╝╩ ╩╩╚══╩╝`

// BannerStyle styles the ASCII art banner.
var BannerStyle = lipgloss.NewStyle().
	Foreground(ColorBlue).
	Bold(true)

// CounterNormalStyle, CounterWarningStyle and CounterLimitStyle color the
// message character counter.
var (
	CounterNormalStyle  = lipgloss.NewStyle().Foreground(ColorGray)
	CounterWarningStyle = lipgloss.NewStyle().Foreground(ColorYellow)
	CounterLimitStyle   = lipgloss.NewStyle().Foreground(ColorRed).Bold(true)
)

// DividerStyle styles horizontal dividers.
var DividerStyle = lipgloss.NewStyle().
	Foreground(ColorGray)

// FormTheme returns the huh theme used by interactive forms.
func FormTheme() *huh.Theme {
	t := huh.ThemeCharm()
	t.Focused.Title = t.Focused.Title.Foreground(ColorBlue)
	t.Focused.Base = t.Focused.Base.BorderForeground(ColorBlue)
	return t
}
