package tui

// ViewType represents which view is active.
type ViewType int

const (
	ViewCards ViewType = iota
	ViewDigest
)
