package render

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/x/ansi"
)

// TerminalSafe removes escape sequences and control characters from user
// text bound for a terminal. Newlines and tabs are kept.
func TerminalSafe(s string) string {
	s = ansi.Strip(s)

	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return r
		}
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
}
