package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/smart-events/board/internal/board"
	"github.com/smart-events/board/internal/commands"
	"github.com/smart-events/board/internal/core/config"
	"github.com/smart-events/board/internal/download"
	"github.com/smart-events/board/internal/printer"
	"github.com/smart-events/board/internal/render"
	"github.com/smart-events/board/internal/store"
	"github.com/smart-events/board/pkg/utils"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func build() string {
	short := commit
	if len(commit) > 7 {
		short = commit[:7]
	}

	return fmt.Sprintf("%s (%s) %s", version, short, date)
}

func main() {
	if err := setupLogger("info", "", nil); err != nil {
		panic(err)
	}

	// .env is optional; BOARD_* variables may also come from the environment
	_ = godotenv.Load()

	var (
		p     = printer.New(os.Stderr)
		ctx   = printer.NewContext(context.Background(), p)
		flags = &commands.Flags{}
	)

	var (
		deferredLogs *utils.DeferredWriter
		closeStorage func() error
	)

	app := &cli.Command{
		Name:      "board",
		Usage:     "Community comment board",
		UsageText: "board [global options] command [command options]",
		Description: `Board keeps the community comments for the events site: short messages
with an author, shown newest first with relative times.

Comments persist in the configured storage (a JSON file by default, badger
or redis). Backups can be exported as JSON documents.

Run 'board' with no arguments to open the interactive board.
Run 'board post' to add a comment from the command line.`,
		Version: build(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("BOARD_LOG_LEVEL"),
				Value:       "info",
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file (optional)",
				Sources:     cli.EnvVars("BOARD_LOG_FILE"),
				Destination: &flags.LogFile,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("BOARD_CONFIG"),
				Value:       commands.DefaultConfigPath(),
				Destination: &flags.ConfigPath,
			},
			&cli.StringFlag{
				Name:        "data-dir",
				Usage:       "path to data directory",
				Sources:     cli.EnvVars("BOARD_DATA_DIR"),
				Value:       commands.DefaultDataDir(),
				Destination: &flags.DataDir,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			// Detect TUI mode: no subcommand means TUI (default action)
			isTUI := len(c.Args().Slice()) == 0

			// In TUI mode, buffer logs to display after exit
			var deferred io.Writer
			if isTUI {
				deferredLogs = &utils.DeferredWriter{}
				deferred = deferredLogs
			}

			if err := setupLogger(flags.LogLevel, flags.LogFile, deferred); err != nil {
				return ctx, err
			}

			cfg, err := config.Load(flags.ConfigPath, flags.DataDir)
			if err != nil {
				return ctx, fmt.Errorf("load config: %w", err)
			}
			flags.Config = cfg

			if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
				return ctx, fmt.Errorf("create data directory: %w", err)
			}

			storage, closeFn, err := store.Open(ctx, cfg, log.With().Str("component", "storage").Logger())
			if err != nil {
				return ctx, fmt.Errorf("open storage: %w", err)
			}
			flags.Storage = storage
			closeStorage = closeFn

			var onSettle func(id int64)
			if isTUI {
				settled := make(chan int64, 64)
				flags.Settled = settled
				onSettle = func(id int64) {
					// the TUI re-renders everything, so a dropped notice is harmless
					select {
					case settled <- id:
					default:
					}
				}
			}

			var (
				logger = log.With().Str("component", "board").Logger()
				saver  = download.NewFileSaver(cfg.Export.Dir, log.With().Str("component", "download").Logger())
			)

			flags.Saver = saver
			flags.Board = board.New(board.Options{
				Storage:    storage,
				Key:        cfg.Storage.Key,
				Downloader: saver,
				Namer:      cfg.ExportFilename,
				Note:       cfg.Export.Note,
				Dates: render.DateFormatter{
					Locale:   cfg.Display.Locale,
					Location: cfg.Location(),
				},
				OnSettle: onSettle,
			}, logger)

			flags.Board.Load(ctx)
			return ctx, nil
		},
	}

	tuiCmd := commands.NewTuiCmd(flags)

	app = commands.NewPostCmd(flags).Register(app)
	app = commands.NewLsCmd(flags).Register(app)
	app = commands.NewRenderCmd(flags).Register(app)
	app = commands.NewClearCmd(flags).Register(app)
	app = commands.NewExportCmd(flags).Register(app)
	app = commands.NewBackupsCmd(flags).Register(app)
	app = commands.NewConfigCmd(flags).Register(app)
	app = commands.NewDoctorCmd(flags).Register(app)

	// Register TUI flags on root command
	app.Flags = append(app.Flags, tuiCmd.Flags()...)

	// Set TUI as default action when no subcommand is provided
	app.Action = func(ctx context.Context, c *cli.Command) error {
		if c.Args().Len() > 0 {
			return fmt.Errorf("unknown command %q. Run 'board --help' for usage", c.Args().First())
		}
		return tuiCmd.Run(ctx, c)
	}

	exitCode := 0
	if err := app.Run(ctx, os.Args); err != nil {
		fmt.Println()
		printer.Ctx(ctx).FatalError(err)
		exitCode = 1
	}

	if flags.Board != nil {
		flags.Board.Close()
	}
	if closeStorage != nil {
		if err := closeStorage(); err != nil {
			log.Warn().Err(err).Msg("close storage")
		}
	}

	// Flush deferred logs to console after TUI exits
	if deferredLogs != nil {
		if err := deferredLogs.Flush(zerolog.ConsoleWriter{Out: os.Stderr}); err != nil {
			fmt.Fprintf(os.Stderr, "failed to flush logs: %v\n", err)
		}
	}

	os.Exit(exitCode)
}

func setupLogger(level string, logFile string, deferred io.Writer) error {
	parsedLevel, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("failed to parse log level: %w", err)
	}

	var output io.Writer = zerolog.ConsoleWriter{Out: os.Stderr}

	if logFile != "" {
		// Create log directory if it doesn't exist
		logDir := filepath.Dir(logFile)
		if err := os.MkdirAll(logDir, 0o755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}

		// Open log file
		file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}

		if deferred != nil {
			// TUI mode with explicit log file - write to both file and deferred buffer
			output = io.MultiWriter(file, deferred)
		} else {
			// Write to both console and file
			output = io.MultiWriter(
				zerolog.ConsoleWriter{Out: os.Stderr},
				file,
			)
		}
	} else if deferred != nil {
		// TUI mode without log file - buffer for display after exit
		output = deferred
	}

	log.Logger = log.Output(output).Level(parsedLevel)

	return nil
}
