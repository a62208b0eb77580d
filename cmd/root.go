package cmd

import (
	"github.com/urfave/cli/v3"
)

const (
	debugFlag   = "debug"
	logFileFlag = "log-file"
)

func RootCommand() *cli.Command {
	return &cli.Command{
		Name:            "carousel",
		Usage:           "Browse slides in a vertical, circular carousel",
		Description:     "Round and round it goes.",
		HideHelpCommand: true,
		DefaultCommand:  "run",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  debugFlag,
				Usage: "Enable debug logging",
			},
			&cli.StringFlag{
				Name:      logFileFlag,
				Usage:     "Write logs to `FILE` (the terminal is owned by the UI)",
				TakesFile: true,
			},
		},
		Commands: []*cli.Command{
			// Order matters here!
			RunCommand(),
			SlidesCommand(),
			ConfigCommand(),
		},
	}
}
