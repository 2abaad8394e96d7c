package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/smart-events/board/internal/board"
	"github.com/smart-events/board/internal/core/comment"
)

const (
	fieldName = iota
	fieldMessage
)

// ComposeForm collects a new comment. Validation happens on submit, in the
// board; rejected fields are shown inline and the form stays open.
type ComposeForm struct {
	name    textinput.Model
	message textarea.Model
	focus   int
	errs    map[string]string
}

// NewComposeForm creates an empty form sized for width columns.
func NewComposeForm(width int) *ComposeForm {
	name := textinput.New()
	name.Placeholder = "Your name"
	name.Prompt = ""
	name.CharLimit = 80

	message := textarea.New()
	message.Placeholder = "Share something with the community..."
	message.ShowLineNumbers = false
	message.CharLimit = comment.MaxMessageLength
	message.SetHeight(5)

	f := &ComposeForm{
		name:    name,
		message: message,
		errs:    map[string]string{},
	}
	f.SetWidth(width)
	f.name.Focus()

	return f
}

// SetWidth resizes the inputs.
func (f *ComposeForm) SetWidth(width int) {
	w := max(width, 20)
	f.name.Width = w
	f.message.SetWidth(w)
}

// Init returns the cursor blink command.
func (f *ComposeForm) Init() tea.Cmd {
	return textinput.Blink
}

// Name returns the raw name input.
func (f *ComposeForm) Name() string {
	return f.name.Value()
}

// Message returns the raw message input.
func (f *ComposeForm) Message() string {
	return f.message.Value()
}

// Focused returns the index of the focused field.
func (f *ComposeForm) Focused() int {
	return f.focus
}

// NextField moves focus to the other field.
func (f *ComposeForm) NextField() tea.Cmd {
	if f.focus == fieldName {
		f.focus = fieldMessage
		f.name.Blur()
		return f.message.Focus()
	}

	f.focus = fieldName
	f.message.Blur()
	return f.name.Focus()
}

// SetErrors shows the reasons a submission was rejected. A nil error clears
// them.
func (f *ComposeForm) SetErrors(verr *comment.ValidationError) {
	f.errs = map[string]string{}
	if verr == nil {
		return
	}
	for _, fe := range verr.Fields {
		f.errs[fe.Field] = fe.Reason
	}
}

// Update routes msg to the focused input.
func (f *ComposeForm) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	if f.focus == fieldName {
		// enter on the single-line name moves on to the message
		if k, ok := msg.(tea.KeyMsg); ok && k.Type == tea.KeyEnter {
			return f.NextField()
		}
		f.name, cmd = f.name.Update(msg)
		return cmd
	}

	f.message, cmd = f.message.Update(msg)
	return cmd
}

// Counter renders the "n/500" character counter, colored by how close the
// message is to the limit.
func (f *ComposeForm) Counter() string {
	n := len([]rune(f.message.Value()))
	return counterStyle(board.ClassifyLength(n)).
		Render(fmt.Sprintf("%d/%d", n, comment.MaxMessageLength))
}

// View renders the form.
func (f *ComposeForm) View() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		fieldLabelStyle.Render("Name"),
		f.name.View(),
		f.fieldError("name"),
		fieldLabelStyle.Render("Comment")+"  "+f.Counter(),
		f.message.View(),
		f.fieldError("message"),
	)
}

func (f *ComposeForm) fieldError(field string) string {
	reason, ok := f.errs[field]
	if !ok {
		return ""
	}
	return fieldErrorStyle.Render("✘ " + reason)
}
