package commands

import (
	"os"
	"path/filepath"

	"github.com/smart-events/board/internal/board"
	"github.com/smart-events/board/internal/core/comment"
	"github.com/smart-events/board/internal/core/config"
	"github.com/smart-events/board/internal/download"
)

type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string
	DataDir    string

	// Config is loaded in the Before hook and available to all commands
	Config *config.Config

	// Storage is the driver selected by Config
	Storage comment.Storage

	// Board is opened in the Before hook over the configured storage
	Board *board.Board

	// Saver receives exported backups
	Saver *download.FileSaver

	// Settled carries the IDs of comments whose highlight expired, for the TUI
	Settled chan int64
}

// DefaultConfigPath returns the default config file path using XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "board", "config.yaml")
}

// DefaultDataDir returns the default data directory using XDG_DATA_HOME.
func DefaultDataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "board")
}
