package commands

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/smart-events/board/internal/core/config"
)

type ConfigCmd struct {
	flags  *Flags
	format string
}

// NewConfigCmd creates a new config command.
func NewConfigCmd(flags *Flags) *ConfigCmd {
	return &ConfigCmd{flags: flags}
}

// Register adds the config command to the application.
func (cmd *ConfigCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "config",
		Usage: "Configuration management commands",
		Commands: []*cli.Command{
			{
				Name:      "show",
				Usage:     "Print the effective configuration",
				UsageText: "board config show [options]",
				Description: `Prints the configuration after defaults and BOARD_* environment
overrides are applied. The redis password is masked.`,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "format",
						Usage:       "output format (yaml, json)",
						Value:       "yaml",
						Destination: &cmd.format,
					},
				},
				Action: cmd.runShow,
			},
			{
				Name:      "path",
				Usage:     "Print the config file and data directory paths",
				UsageText: "board config path",
				Action:    cmd.runPath,
			},
		},
	})

	return app
}

func (cmd *ConfigCmd) runShow(_ context.Context, c *cli.Command) error {
	if cmd.flags.Config == nil {
		return fmt.Errorf("configuration not loaded")
	}

	cfg := masked(*cmd.flags.Config)
	w := c.Root().Writer

	switch cmd.format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(cfg)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return fmt.Errorf("encode config: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q (want yaml or json)", cmd.format)
	}
}

func (cmd *ConfigCmd) runPath(_ context.Context, c *cli.Command) error {
	w := c.Root().Writer
	_, _ = fmt.Fprintf(w, "config:  %s\n", cmd.flags.ConfigPath)
	_, _ = fmt.Fprintf(w, "data:    %s\n", cmd.flags.DataDir)
	if cmd.flags.Config != nil && cmd.flags.Config.Storage.Driver != config.DriverRedis {
		_, _ = fmt.Fprintf(w, "storage: %s\n", cmd.flags.Config.StoragePath())
	}
	return nil
}

func masked(cfg config.Config) config.Config {
	if cfg.Storage.Redis.Password != "" {
		cfg.Storage.Redis.Password = "********"
	}
	return cfg
}
