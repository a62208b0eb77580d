package cmd

import (
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
)

// newLogger builds the logger selected by the root flags. Without a log file
// nothing is logged, since the full-screen UI owns the terminal.
func newLogger(cmd *cli.Command) (*zap.Logger, error) {
	return buildLogger(cmd.String(logFileFlag), cmd.Bool(debugFlag))
}

func buildLogger(path string, debug bool) (*zap.Logger, error) {
	if path == "" {
		return zap.NewNop(), nil
	}
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	if debug {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	return cfg.Build()
}
