package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// relativeRefreshInterval keeps "N minutes ago" labels current.
const relativeRefreshInterval = 30 * time.Second

// refreshTickMsg is sent to re-render relative times.
type refreshTickMsg struct{}

// settledMsg is sent when a new comment loses its highlight.
type settledMsg struct {
	id int64
}

// scheduleRefreshTick returns a command that schedules the next refresh.
func scheduleRefreshTick() tea.Cmd {
	return tea.Tick(relativeRefreshInterval, func(time.Time) tea.Msg {
		return refreshTickMsg{}
	})
}

// listenForSettle waits for the next settled comment. It returns nil when
// there is nothing to listen to.
func listenForSettle(settled <-chan int64) tea.Cmd {
	if settled == nil {
		return nil
	}
	return func() tea.Msg {
		id, ok := <-settled
		if !ok {
			return nil
		}
		return settledMsg{id: id}
	}
}
