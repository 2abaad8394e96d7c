package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/smart-events/board/internal/printer"
	"github.com/smart-events/board/internal/render"
)

// defaultWidth is used when stdout is not a terminal.
const defaultWidth = 80

type LsCmd struct {
	flags    *Flags
	markdown bool
}

// NewLsCmd creates a new ls command
func NewLsCmd(flags *Flags) *LsCmd {
	return &LsCmd{flags: flags}
}

// Register adds the ls command to the application
func (cmd *LsCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:        "ls",
		Usage:       "List comments",
		UsageText:   "board ls [--markdown]",
		Description: "Displays every comment, newest first, with its relative and absolute time.",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "markdown",
				Usage:       "render a markdown digest instead of cards",
				Destination: &cmd.markdown,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *LsCmd) run(ctx context.Context, c *cli.Command) error {
	p := printer.Ctx(ctx)
	out := c.Root().Writer

	cards := cmd.flags.Board.Cards()
	if len(cards) == 0 {
		p.Infof("No comments yet. Be the first!")
		return nil
	}

	width := terminalWidth()

	if cmd.markdown {
		r, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle("tokyo-night"),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return fmt.Errorf("create markdown renderer: %w", err)
		}

		rendered, err := r.Render(render.Markdown(cards))
		if err != nil {
			return fmt.Errorf("render markdown: %w", err)
		}

		_, _ = fmt.Fprint(out, rendered)
		return nil
	}

	_, _ = fmt.Fprintln(out, render.Terminal(cards, width))
	p.Infof("%s", render.CountLabel(len(cards)))
	return nil
}

func terminalWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return defaultWidth
	}

	w, _, err := term.GetSize(fd)
	if err != nil || w <= 0 {
		return defaultWidth
	}
	return w
}
