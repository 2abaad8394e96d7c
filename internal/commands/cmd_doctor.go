package commands

import (
	"context"
	"encoding/json"

	"github.com/urfave/cli/v3"

	"github.com/smart-events/board/internal/commands/doctor"
	"github.com/smart-events/board/internal/printer"
)

type DoctorCmd struct {
	flags  *Flags
	format string
	fix    bool
}

func NewDoctorCmd(flags *Flags) *DoctorCmd {
	return &DoctorCmd{flags: flags}
}

func (cmd *DoctorCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:        "doctor",
		Usage:       "Run health checks on your board setup",
		UsageText:   "board doctor [options]",
		Description: "Runs diagnostic checks on configuration, storage, and leftover files.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "format",
				Usage:       "output format (text, json)",
				Value:       "text",
				Destination: &cmd.format,
			},
			&cli.BoolFlag{
				Name:        "fix",
				Usage:       "repair fixable problems (leftover temp files, unreadable stored data)",
				Destination: &cmd.fix,
			},
		},
		Action: cmd.run,
	})
	return app
}

func (cmd *DoctorCmd) run(ctx context.Context, c *cli.Command) error {
	cfg := cmd.flags.Config

	checks := []doctor.Check{
		doctor.NewConfigCheck(cfg),
		doctor.NewStorageCheck(cmd.flags.Storage, cfg.Storage.Key),
		doctor.NewTempFileCheck([]string{cfg.DataDir, cfg.Export.Dir}),
	}

	report := doctor.RunAll(ctx, checks, doctor.Options{Fix: cmd.fix})

	if cmd.format == "json" {
		return cmd.outputJSON(c, report)
	}

	return cmd.outputText(ctx, report)
}

func (cmd *DoctorCmd) outputJSON(c *cli.Command, report doctor.Report) error {
	passed, warned, failed := report.Summary()

	out := struct {
		Healthy bool          `json:"healthy"`
		Summary summaryJSON   `json:"summary"`
		Checks  doctor.Report `json:"checks"`
	}{
		Healthy: report.Healthy(),
		Summary: summaryJSON{Passed: passed, Warned: warned, Failed: failed},
		Checks:  report,
	}

	enc := json.NewEncoder(c.Root().Writer)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

type summaryJSON struct {
	Passed int `json:"passed"`
	Warned int `json:"warned"`
	Failed int `json:"failed"`
}

func (cmd *DoctorCmd) outputText(ctx context.Context, report doctor.Report) error {
	p := printer.Ctx(ctx)

	for _, result := range report {
		p.Section(result.Name)

		for _, item := range result.Items {
			switch item.Status {
			case doctor.StatusPass:
				p.CheckItem(item.Label, item.Detail)
			case doctor.StatusWarn:
				p.WarnItem(item.Label, item.Detail)
			case doctor.StatusFail:
				p.FailItem(item.Label, item.Detail)
			}
		}

		p.Printf("")
	}

	passed, warned, failed := report.Summary()
	p.Printf("Summary: %d passed, %d warnings, %d failed", passed, warned, failed)

	if n := report.Fixable(); n > 0 {
		p.Infof("Run 'board doctor --fix' to clean up %d item(s)", n)
	}

	if failed > 0 {
		return cli.Exit("", 1)
	}

	return nil
}
