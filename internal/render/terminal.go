package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/smart-events/board/internal/styles"
)

var (
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(styles.ColorGray).
			Padding(0, 1)

	freshCardStyle = cardStyle.
			BorderForeground(styles.ColorBlue)

	authorStyle = lipgloss.NewStyle().
			Foreground(styles.ColorBlue).
			Bold(true)

	timeStyle = lipgloss.NewStyle().
			Foreground(styles.ColorGray)

	badgeStyle = lipgloss.NewStyle().
			Foreground(styles.ColorBlack).
			Background(styles.ColorGreen).
			Padding(0, 1)

	messageStyle = lipgloss.NewStyle().
			Foreground(styles.ColorWhite)
)

// Terminal renders cards as bordered blocks at most width columns wide. A
// width below 20 disables wrapping.
func Terminal(cards []Card, width int) string {
	blocks := make([]string, 0, len(cards))

	for _, c := range cards {
		style := cardStyle
		if c.Fresh {
			style = freshCardStyle
		}
		if width >= 20 {
			// border takes two columns
			style = style.Width(width - 2)
		}

		header := authorStyle.Render(TerminalSafe(c.Author)) + " " + timeStyle.Render(c.TimeAgo+" • "+c.Date)
		if c.Fresh {
			header += " " + badgeStyle.Render("New")
		}

		blocks = append(blocks, style.Render(header+"\n"+messageStyle.Render(TerminalSafe(c.Message))))
	}

	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`,
	"`", "\\`",
	"*", `\*`,
	"_", `\_`,
	"[", `\[`,
	"]", `\]`,
	"<", `\<`,
	">", `\>`,
	"#", `\#`,
	"|", `\|`,
	"~", `\~`,
	"!", `\!`,
)

// EscapeMarkdown neutralizes markdown syntax in user text.
func EscapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}

// escapeLine escapes a single line of user text, including the block
// markers that only count at the start of a line: "-", "+" and "=" and
// ordered list numbers such as "1." or "2)".
func escapeLine(line string) string {
	line = EscapeMarkdown(line)

	body := strings.TrimLeft(line, " \t")
	indent := line[:len(line)-len(body)]
	if body == "" {
		return line
	}

	switch body[0] {
	case '-', '+', '=':
		return indent + `\` + body
	}

	digits := 0
	for digits < len(body) && body[digits] >= '0' && body[digits] <= '9' {
		digits++
	}
	if digits > 0 && digits < len(body) && (body[digits] == '.' || body[digits] == ')') {
		return indent + body[:digits] + `\` + body[digits:]
	}

	return line
}

// Markdown renders cards as a markdown digest. User text is escaped so a
// comment cannot inject formatting, links, raw HTML or terminal control
// sequences.
func Markdown(cards []Card) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Community comments\n\n_%s_\n", CountLabel(len(cards)))

	for _, c := range cards {
		b.WriteString("\n---\n\n")
		fmt.Fprintf(&b, "**%s** · %s · %s", EscapeMarkdown(TerminalSafe(c.Author)), c.TimeAgo, c.Date)
		if c.Fresh {
			b.WriteString(" · `new`")
		}
		b.WriteString("\n\n")

		for _, line := range strings.Split(TerminalSafe(c.Message), "\n") {
			fmt.Fprintf(&b, "> %s\n", escapeLine(line))
		}
	}

	return b.String()
}
