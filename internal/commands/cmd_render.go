package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/smart-events/board/internal/printer"
)

type RenderCmd struct {
	flags  *Flags
	output string
}

// NewRenderCmd creates a new render command
func NewRenderCmd(flags *Flags) *RenderCmd {
	return &RenderCmd{flags: flags}
}

// Register adds the render command to the application
func (cmd *RenderCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "render",
		Usage:     "Render comments as HTML",
		UsageText: "board render [-o file]",
		Description: `Writes the comment cards as HTML markup, ready to drop into the page's
comments container. Author and message text is escaped.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "output",
				Aliases:     []string{"o"},
				Usage:       "write markup to file instead of stdout",
				Destination: &cmd.output,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *RenderCmd) run(ctx context.Context, c *cli.Command) error {
	markup, err := cmd.flags.Board.Render()
	if err != nil {
		return err
	}

	if cmd.output == "" {
		_, _ = fmt.Fprint(c.Root().Writer, markup)
		return nil
	}

	if err := os.WriteFile(cmd.output, []byte(markup), 0o644); err != nil {
		return fmt.Errorf("write markup: %w", err)
	}

	printer.Ctx(ctx).Success("Markup written", cmd.output)
	return nil
}
