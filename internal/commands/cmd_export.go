package commands

import (
	"context"
	"errors"

	"github.com/urfave/cli/v3"

	"github.com/smart-events/board/internal/core/comment"
	"github.com/smart-events/board/internal/printer"
	"github.com/smart-events/board/internal/render"
)

type ExportCmd struct {
	flags *Flags
}

// NewExportCmd creates a new export command
func NewExportCmd(flags *Flags) *ExportCmd {
	return &ExportCmd{flags: flags}
}

// Register adds the export command to the application
func (cmd *ExportCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "export",
		Usage:     "Save a backup of all comments",
		UsageText: "board export",
		Description: `Writes every comment to a JSON backup document in the export directory.

The file name comes from export.filename (default
comments-backup-{{ .Date }}.json). Backups are never read back into the board.`,
		Action: cmd.run,
	})

	return app
}

func (cmd *ExportCmd) run(ctx context.Context, _ *cli.Command) error {
	p := printer.Ctx(ctx)

	exp, err := cmd.flags.Board.Export(ctx)
	if err != nil {
		var eerr *comment.ExportError
		if errors.As(err, &eerr) {
			p.Notice(err)
			return cli.Exit("", 1)
		}
		return err
	}

	p.Success("Exported "+render.CountLabel(exp.Document.TotalComments), cmd.flags.Saver.Path(exp.Filename))
	return nil
}
