package commands

import (
	"context"
	"path/filepath"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v3"

	"github.com/smart-events/board/internal/board"
	"github.com/smart-events/board/internal/printer"
)

type BackupsCmd struct {
	flags *Flags
}

// NewBackupsCmd creates a new backups command
func NewBackupsCmd(flags *Flags) *BackupsCmd {
	return &BackupsCmd{flags: flags}
}

// Register adds the backups command to the application
func (cmd *BackupsCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:        "backups",
		Usage:       "List exported backups",
		UsageText:   "board backups",
		Description: "Lists backup documents in the export directory matching export.pattern, newest first.",
		Action:      cmd.run,
	})

	return app
}

func (cmd *BackupsCmd) run(ctx context.Context, c *cli.Command) error {
	p := printer.Ctx(ctx)
	cfg := cmd.flags.Config

	backups, err := board.ListBackups(cfg.Export.Dir, cfg.Export.Pattern)
	if err != nil {
		return err
	}

	if len(backups) == 0 {
		p.Infof("No backups in %s", cfg.Export.Dir)
		return nil
	}

	table := tablewriter.NewWriter(c.Root().Writer)
	table.SetHeader([]string{"File", "Exported", "Comments", "Status"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("  ")
	table.SetNoWhiteSpace(true)

	for _, b := range backups {
		table.Append(backupRow(b))
	}

	table.Render()
	return nil
}

func backupRow(b board.Backup) []string {
	name := filepath.Base(b.Path)
	if b.Err != nil {
		return []string{name, "-", "-", printer.StatusFailed(b.Err.Error())}
	}
	return []string{name, b.ExportDate, strconv.Itoa(b.TotalComments), printer.StatusOK()}
}
