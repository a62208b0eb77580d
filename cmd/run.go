package cmd

import (
	"context"
	"fmt"

	"github.com/bernd/carousel/tui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli/v3"
)

const startFlag = "start"

func RunCommand() *cli.Command {
	return &cli.Command{
		Name:      "run",
		Usage:     "Show a deck in the carousel",
		ArgsUsage: "[DECK]",
		Flags: append(configFlags(),
			&cli.IntFlag{
				Name:    startFlag,
				Aliases: []string{"s"},
				Usage:   "Position of the slide to focus first (1-based)",
			},
		),
		Action: RunAction,
	}
}

func RunAction(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	d, err := loadDeck(cmd.Args().First())
	if err != nil {
		return err
	}

	if cmd.Bool(debugFlag) {
		for _, src := range cfg.Sources {
			tui.Debug("config loaded from %s", src)
		}
		tui.Debug("deck %q from %s", d.Title, d.Source)
		if cmd.String(logFileFlag) == "" {
			tui.Warn("--%s has no effect inside the UI without --%s", debugFlag, logFileFlag)
		}
	}

	log, err := newLogger(cmd)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	screen, err := newCarouselScreen(d, cfg, log)
	if err != nil {
		return err
	}
	if cmd.IsSet(startFlag) {
		if err := screen.carousel.JumpTo(cmd.Int(startFlag) - 1); err != nil {
			return fmt.Errorf("--%s: %w", startFlag, err)
		}
	}

	w := tui.NewWindow(screen.header(), screen)
	p := tea.NewProgram(w,
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithReportFocus(),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("carousel: %w", err)
	}
	return nil
}
