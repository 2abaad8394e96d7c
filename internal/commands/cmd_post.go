package commands

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/smart-events/board/internal/core/comment"
	"github.com/smart-events/board/internal/core/validate"
	"github.com/smart-events/board/internal/printer"
	"github.com/smart-events/board/internal/styles"
)

type PostCmd struct {
	flags   *Flags
	name    string
	message string
}

// NewPostCmd creates a new post command
func NewPostCmd(flags *Flags) *PostCmd {
	return &PostCmd{flags: flags}
}

// Register adds the post command to the application
func (cmd *PostCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "post",
		Usage:     "Post a comment",
		UsageText: "board post [--name NAME] [--message TEXT]",
		Description: `Adds a comment to the top of the board.

Both fields are trimmed and required; the message is limited to 500
characters. Missing fields are asked for interactively when stdin is a
terminal.

Example:
  board post --name Ana --message "Hola a todos"`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "name",
				Aliases:     []string{"n"},
				Usage:       "author name",
				Destination: &cmd.name,
			},
			&cli.StringFlag{
				Name:        "message",
				Aliases:     []string{"m"},
				Usage:       "comment text",
				Destination: &cmd.message,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *PostCmd) run(ctx context.Context, _ *cli.Command) error {
	p := printer.Ctx(ctx)

	name, message := cmd.name, cmd.message
	if (name == "" || message == "") && term.IsTerminal(int(os.Stdin.Fd())) {
		if err := cmd.prompt(&name, &message); err != nil {
			return err
		}
	}

	c, err := cmd.flags.Board.Submit(ctx, name, message)

	var werr *comment.StorageWriteError
	switch {
	case errors.As(err, &werr):
		p.Notice(err)
	case err != nil:
		return err
	}

	p.Success("Comment posted", fmt.Sprintf("%s · %d", c.Author, c.ID))
	return nil
}

func (cmd *PostCmd) prompt(name, message *string) error {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Value(name).
				Validate(validate.Name),
			huh.NewText().
				Title("Comment").
				CharLimit(comment.MaxMessageLength).
				Value(message).
				Validate(validate.Message),
		),
	).WithTheme(styles.FormTheme())

	if err := form.Run(); err != nil {
		return fmt.Errorf("read comment: %w", err)
	}
	return nil
}
