package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/bernd/carousel/config"
	"github.com/bernd/carousel/tui"
	"github.com/urfave/cli/v3"
)

const initFlag = "init"

func ConfigCommand() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Print the effective configuration",
		Flags: append(configFlags(),
			&cli.BoolFlag{
				Name:  initFlag,
				Usage: fmt.Sprintf("Write a commented %s template instead", config.ProjectFileName),
			},
		),
		Action: ConfigAction,
	}
}

func ConfigAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.Bool(initFlag) {
		path, err := projectConfigPath(cmd)
		if err != nil {
			return err
		}
		if err := config.WriteTemplate(path); err != nil {
			return fmt.Errorf("config: %w", err)
		}
		tui.Status("Created", "%s", path)
		return nil
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	out, err := config.Marshal(cfg)
	if err != nil {
		return err
	}

	sources := "defaults"
	if len(cfg.Sources) > 0 {
		sources = "defaults, " + strings.Join(cfg.Sources, ", ")
	}
	_, err = fmt.Fprintf(cmd.Root().Writer, "# sources: %s\n%s", sources, out)
	return err
}
