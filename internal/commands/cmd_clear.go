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
	"github.com/smart-events/board/internal/printer"
	"github.com/smart-events/board/internal/render"
	"github.com/smart-events/board/internal/styles"
)

type ClearCmd struct {
	flags *Flags
	yes   bool
}

// NewClearCmd creates a new clear command
func NewClearCmd(flags *Flags) *ClearCmd {
	return &ClearCmd{flags: flags}
}

// Register adds the clear command to the application
func (cmd *ClearCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:        "clear",
		Usage:       "Delete every comment",
		UsageText:   "board clear [--yes]",
		Description: "Removes all comments from the board and from storage. This cannot be undone.",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "yes",
				Aliases:     []string{"y"},
				Usage:       "skip the confirmation prompt",
				Destination: &cmd.yes,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *ClearCmd) run(ctx context.Context, _ *cli.Command) error {
	p := printer.Ctx(ctx)

	n := cmd.flags.Board.Len()
	if n == 0 {
		// storage may still hold data the board could not read
		if err := cmd.clear(ctx); err != nil {
			return err
		}
		p.Infof("No comments to delete")
		return nil
	}

	if !cmd.yes {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			return fmt.Errorf("refusing to delete %s without confirmation; pass --yes", render.CountLabel(n))
		}

		confirmed, err := confirmClear(n)
		if err != nil {
			return err
		}
		if !confirmed {
			p.Infof("Nothing deleted")
			return nil
		}
	}

	if err := cmd.clear(ctx); err != nil {
		return err
	}

	p.Successf("Deleted %s", render.CountLabel(n))
	return nil
}

// clear empties the board. A storage failure is reported as a notice since
// the board itself is already empty.
func (cmd *ClearCmd) clear(ctx context.Context) error {
	err := cmd.flags.Board.Clear(ctx)

	var werr *comment.StorageWriteError
	if errors.As(err, &werr) {
		printer.Ctx(ctx).Notice(err)
		return nil
	}
	return err
}

func confirmClear(n int) (bool, error) {
	var confirmed bool

	err := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Delete all comments?").
				Description(fmt.Sprintf("All %s will be removed. This cannot be undone.", render.CountLabel(n))).
				Affirmative("Delete").
				Negative("Cancel").
				Value(&confirmed),
		),
	).WithTheme(styles.FormTheme()).Run()
	if err != nil {
		return false, fmt.Errorf("confirm: %w", err)
	}

	return confirmed, nil
}
