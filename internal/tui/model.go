package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/smart-events/board/internal/board"
	"github.com/smart-events/board/internal/core/comment"
	"github.com/smart-events/board/internal/render"
	"github.com/smart-events/board/internal/styles"
)

// UIState represents the current state of the TUI.
type UIState int

const (
	stateNormal UIState = iota
	stateComposing
	stateConfirming
)

// Layout constants.
const (
	defaultWidth  = 80
	defaultHeight = 24
	footerHeight  = 2 // status line + help
)

// Board is the part of *board.Board the TUI drives.
type Board interface {
	Cards() []render.Card
	Len() int
	Submit(ctx context.Context, name, message string) (comment.Comment, error)
	Clear(ctx context.Context) error
	Export(ctx context.Context) (board.Export, error)
}

// Options configures the TUI behavior.
type Options struct {
	// Settled receives the ID of each comment whose highlight expired
	// (optional).
	Settled <-chan int64
}

// statusKind selects the status line style.
type statusKind int

const (
	statusInfo statusKind = iota
	statusSuccess
	statusWarn
	statusError
)

// Model is the main Bubble Tea model for the TUI.
type Model struct {
	board   Board
	settled <-chan int64

	keys        KeyMap
	composeKeys ComposeKeyMap
	help        help.Model
	viewport    viewport.Model

	state      UIState
	activeView ViewType
	modal      Modal
	compose    *ComposeForm
	busy       bool

	status     string
	statusKind statusKind

	width    int
	height   int
	quitting bool
}

// submitDoneMsg is sent when a submission completes.
type submitDoneMsg struct {
	comment comment.Comment
	err     error
}

// clearDoneMsg is sent when the board has been cleared.
type clearDoneMsg struct {
	count int
	err   error
}

// exportDoneMsg is sent when an export completes.
type exportDoneMsg struct {
	export board.Export
	err    error
}

// New creates a new TUI model.
func New(b Board, opts Options) Model {
	h := help.New()
	h.Styles.ShortKey = helpStyle.UnsetPaddingLeft()
	h.Styles.ShortDesc = helpStyle.UnsetPaddingLeft()
	h.Styles.ShortSeparator = helpStyle.UnsetPaddingLeft()
	h.ShortSeparator = " " + iconDot + " "

	m := Model{
		board:       b,
		settled:     opts.Settled,
		keys:        DefaultKeyMap(),
		composeKeys: DefaultComposeKeyMap(),
		help:        h,
		viewport:    viewport.New(defaultWidth, defaultHeight),
		state:       stateNormal,
		activeView:  ViewCards,
		width:       defaultWidth,
		height:      defaultHeight,
	}
	m.resize(defaultWidth, defaultHeight)

	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{scheduleRefreshTick()}
	if cmd := listenForSettle(m.settled); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

// submit returns a command that posts the compose form's contents.
func (m Model) submit(name, message string) tea.Cmd {
	return func() tea.Msg {
		c, err := m.board.Submit(context.Background(), name, message)
		return submitDoneMsg{comment: c, err: err}
	}
}

// clearAll returns a command that empties the board.
func (m Model) clearAll() tea.Cmd {
	return func() tea.Msg {
		n := m.board.Len()
		err := m.board.Clear(context.Background())
		return clearDoneMsg{count: n, err: err}
	}
}

// export returns a command that saves a backup.
func (m Model) export() tea.Cmd {
	return func() tea.Msg {
		exp, err := m.board.Export(context.Background())
		return exportDoneMsg{export: exp, err: err}
	}
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case refreshTickMsg:
		m.refreshContent()
		return m, scheduleRefreshTick()

	case settledMsg:
		m.refreshContent()
		return m, listenForSettle(m.settled)

	case submitDoneMsg:
		return m.handleSubmitDone(msg)

	case clearDoneMsg:
		m.busy = false
		m.refreshContent()
		var werr *comment.StorageWriteError
		switch {
		case errors.As(msg.err, &werr):
			m.setStatus(statusWarn, "Cleared for this session only: storage is unavailable")
		case msg.err != nil:
			m.setStatus(statusError, msg.err.Error())
		case msg.count == 0:
			m.setStatus(statusInfo, "No comments to delete")
		default:
			m.setStatus(statusSuccess, fmt.Sprintf("Deleted %s", render.CountLabel(msg.count)))
		}
		return m, nil

	case exportDoneMsg:
		m.busy = false
		if msg.err != nil {
			m.setStatus(statusError, msg.err.Error())
			return m, nil
		}
		m.setStatus(statusSuccess, fmt.Sprintf("Exported %s to %s",
			render.CountLabel(msg.export.Document.TotalComments), msg.export.Filename))
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.state == stateComposing && m.compose != nil {
		return m, m.compose.Update(msg)
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) handleSubmitDone(msg submitDoneMsg) (tea.Model, tea.Cmd) {
	m.busy = false

	var verr *comment.ValidationError
	if errors.As(msg.err, &verr) {
		// keep the form open so the input can be corrected
		if m.compose != nil {
			m.compose.SetErrors(verr)
		}
		return m, nil
	}

	m.state = stateNormal
	m.compose = nil
	m.activeView = ViewCards
	m.refreshContent()
	m.viewport.GotoTop()

	var werr *comment.StorageWriteError
	switch {
	case errors.As(msg.err, &werr):
		m.setStatus(statusWarn, "Posted for this session only: storage is unavailable")
	case msg.err != nil:
		m.setStatus(statusError, msg.err.Error())
	default:
		m.setStatus(statusSuccess, "Comment posted")
	}

	return m, nil
}

// handleKey processes key presses.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.state {
	case stateComposing:
		return m.handleComposeKey(msg)
	case stateConfirming:
		return m.handleConfirmModalKey(msg.String())
	}

	return m.handleNormalKey(msg)
}

// handleComposeKey handles keys while the compose form is open.
func (m Model) handleComposeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.composeKeys.Cancel):
		m.state = stateNormal
		m.compose = nil
		return m, nil
	case key.Matches(msg, m.composeKeys.Next):
		return m, m.compose.NextField()
	case key.Matches(msg, m.composeKeys.Submit):
		if m.busy {
			return m, nil
		}
		m.busy = true
		return m, m.submit(m.compose.Name(), m.compose.Message())
	}

	return m, m.compose.Update(msg)
}

// handleConfirmModalKey handles keys when the confirmation modal is shown.
func (m Model) handleConfirmModalKey(keyStr string) (tea.Model, tea.Cmd) {
	switch keyStr {
	case "enter":
		m.state = stateNormal
		if m.modal.ConfirmSelected() {
			m.busy = true
			return m, m.clearAll()
		}
		return m, nil
	case "esc", "n":
		m.state = stateNormal
		return m, nil
	case "y":
		m.state = stateNormal
		m.busy = true
		return m, m.clearAll()
	case "left", "right", "h", "l", "tab":
		m.modal.ToggleSelection()
		return m, nil
	}
	return m, nil
}

// handleNormalKey handles keys in normal state.
func (m Model) handleNormalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Switch):
		if m.activeView == ViewCards {
			m.activeView = ViewDigest
		} else {
			m.activeView = ViewCards
		}
		m.refreshContent()
		m.viewport.GotoTop()
		return m, nil

	case key.Matches(msg, m.keys.Compose):
		m.compose = NewComposeForm(m.width - 4)
		m.state = stateComposing
		m.status = ""
		return m, m.compose.Init()

	case key.Matches(msg, m.keys.Clear):
		if m.board.Len() == 0 {
			// nothing to confirm, but unreadable stored data still goes
			m.busy = true
			return m, m.clearAll()
		}
		m.state = stateConfirming
		m.modal = NewModal("Delete all comments?",
			fmt.Sprintf("All %s will be removed. This cannot be undone.", render.CountLabel(m.board.Len())))
		return m, nil

	case key.Matches(msg, m.keys.Export):
		if m.busy {
			return m, nil
		}
		m.busy = true
		m.setStatus(statusInfo, "Exporting...")
		return m, m.export()
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *Model) setStatus(kind statusKind, text string) {
	m.statusKind = kind
	m.status = text
}

// headerHeight is the banner plus the tab bar.
func headerHeight() int {
	return lipgloss.Height(styles.BannerStyle.Render(styles.Banner)) + 1
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height

	contentHeight := max(height-headerHeight()-footerHeight, 1)
	m.viewport.Width = width
	m.viewport.Height = contentHeight

	if m.compose != nil {
		m.compose.SetWidth(width - 4)
	}
	m.help.Width = width

	m.refreshContent()
}

// refreshContent re-renders the active view into the viewport.
func (m *Model) refreshContent() {
	cards := m.board.Cards()

	if len(cards) == 0 {
		m.viewport.SetContent(emptyStyle.Render("No comments yet. Be the first!"))
		return
	}

	switch m.activeView {
	case ViewDigest:
		m.viewport.SetContent(renderDigest(cards, m.width))
	default:
		m.viewport.SetContent(render.Terminal(cards, m.width))
	}
}

// View renders the TUI.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	mainView := lipgloss.JoinVertical(
		lipgloss.Left,
		styles.BannerStyle.PaddingLeft(1).Render(styles.Banner),
		m.renderTabBar(),
		m.viewport.View(),
		m.renderStatus(),
		m.renderHelp(),
	)

	switch m.state {
	case stateConfirming:
		return m.modal.Overlay(mainView, m.width, m.height)
	case stateComposing:
		return m.renderCompose(mainView)
	}

	return mainView
}

func (m Model) renderTabBar() string {
	var cardsTab, digestTab string
	if m.activeView == ViewCards {
		cardsTab = viewSelectedStyle.Render("Cards")
		digestTab = viewNormalStyle.Render("Digest")
	} else {
		cardsTab = viewNormalStyle.Render("Cards")
		digestTab = viewSelectedStyle.Render("Digest")
	}

	count := countStyle.Render(render.CountLabel(m.board.Len()))
	bar := lipgloss.JoinHorizontal(lipgloss.Left, cardsTab, " | ", digestTab, "  ", count)
	return lipgloss.NewStyle().PaddingLeft(1).Render(bar)
}

func (m Model) renderStatus() string {
	switch m.statusKind {
	case statusSuccess:
		return statusSuccessStyle.Render(m.status)
	case statusWarn:
		return statusWarnStyle.Render(m.status)
	case statusError:
		return statusErrorStyle.Render(m.status)
	default:
		return statusInfoStyle.Render(m.status)
	}
}

func (m Model) renderHelp() string {
	if m.state == stateComposing {
		return helpStyle.Render(m.help.View(m.composeKeys))
	}
	return helpStyle.Render(m.help.View(m.keys))
}

func (m Model) renderCompose(background string) string {
	content := lipgloss.JoinVertical(
		lipgloss.Left,
		modalTitleStyle.Render("New comment"),
		"",
		m.compose.View(),
		modalHelpStyle.Render(m.help.View(m.composeKeys)),
	)

	return overlay(background, modalStyle.Render(content), m.width, m.height)
}
