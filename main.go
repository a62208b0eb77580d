package main

import (
	"context"
	"errors"
	"os"

	"github.com/bernd/carousel/carousel"
	"github.com/bernd/carousel/cmd"
	"github.com/bernd/carousel/tui"
)

func main() {
	app := cmd.RootCommand()

	if err := app.Run(context.Background(), os.Args); err != nil {
		var cfgErr *carousel.ConfigurationError
		if errors.As(err, &cfgErr) {
			tui.Error("%v", cfgErr)
			tui.Status("Hint", "a deck needs at least one entry under %q", "slides")
			os.Exit(1)
		}
		tui.Error("%v", err)
		os.Exit(1)
	}
}
