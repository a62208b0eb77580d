package cmd

import (
	"context"
	"fmt"

	"github.com/bernd/carousel/tui"
	"github.com/urfave/cli/v3"
)

func SlidesCommand() *cli.Command {
	return &cli.Command{
		Name:      "slides",
		Usage:     "Print the outline of a deck",
		ArgsUsage: "[DECK]",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			d, err := loadDeck(cmd.Args().First())
			if err != nil {
				return err
			}
			slides := d.Slides()
			tui.PrintHeader()
			tui.Status("Deck", "%s (%d slides, %s)", d.Title, len(slides), d.Source)
			for _, s := range slides {
				tui.Status(fmt.Sprintf("%d/%d", s.Index+1, len(slides)), "%s", s.Title)
			}
			return nil
		},
	}
}
