package cmd

import (
	"fmt"
	"os"

	"github.com/bernd/carousel/config"
	"github.com/bernd/carousel/deck"
	"github.com/urfave/cli/v3"
)

const (
	configFlag        = "config"
	visibleRangeFlag  = "visible-range"
	slideScaleFlag    = "slide-scale"
	dragThresholdFlag = "drag-threshold"
	transitionFlag    = "transition"
	wheelDebounceFlag = "wheel-debounce"
)

// configFlags are shared by every command that needs the effective config.
func configFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:      configFlag,
			Aliases:   []string{"c"},
			Usage:     fmt.Sprintf("Project config file (default ./%s)", config.ProjectFileName),
			TakesFile: true,
		},
		&cli.IntSliceFlag{
			Name:  visibleRangeFlag,
			Usage: "Visible offsets around the focused slide (e.g. --visible-range=-1,0,1)",
		},
		&cli.FloatFlag{
			Name:  slideScaleFlag,
			Usage: "Scale of the unfocused visible slides, in (0,1]",
		},
		&cli.FloatFlag{
			Name:  dragThresholdFlag,
			Usage: "Drag distance in pixels that moves the carousel",
		},
		&cli.DurationFlag{
			Name:  transitionFlag,
			Usage: "Slide transition duration (0 disables the animation)",
		},
		&cli.DurationFlag{
			Name:  wheelDebounceFlag,
			Usage: "Quiet period after the last wheel event",
		},
	}
}

// flagOverrides collects the config values given on the command line.
func flagOverrides(cmd *cli.Command) config.Overrides {
	var o config.Overrides
	if cmd.IsSet(visibleRangeFlag) {
		o.VisibleRange = cmd.IntSlice(visibleRangeFlag)
	}
	if cmd.IsSet(slideScaleFlag) {
		v := cmd.Float(slideScaleFlag)
		o.SlideScale = &v
	}
	if cmd.IsSet(dragThresholdFlag) {
		v := cmd.Float(dragThresholdFlag)
		o.DragThreshold = &v
	}
	if cmd.IsSet(transitionFlag) {
		v := cmd.Duration(transitionFlag)
		o.TransitionDuration = &v
	}
	if cmd.IsSet(wheelDebounceFlag) {
		v := cmd.Duration(wheelDebounceFlag)
		o.WheelDebounce = &v
	}
	return o
}

func projectConfigPath(cmd *cli.Command) (string, error) {
	if path := cmd.String(configFlag); path != "" {
		return path, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return config.DefaultProjectPath(wd), nil
}

// loadConfig merges the global file, the project file and the flags, in that
// order, and validates the result.
func loadConfig(cmd *cli.Command) (*config.Config, error) {
	projectPath, err := projectConfigPath(cmd)
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(config.DefaultGlobalPath(), projectPath)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	cfg.Apply(flagOverrides(cmd))
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// loadDeck reads the deck at path, or returns the built-in one.
func loadDeck(path string) (*deck.Deck, error) {
	if path == "" {
		return deck.Default(), nil
	}
	return deck.Load(path)
}
