// Package observability configures process-wide logging.
package observability

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// CLILogger is the logger for command-line entry points. It writes
// human-readable output to stderr so stdout stays clean for data.
//
// It starts as a no-op logger; Init replaces it once configuration is
// loaded.
var CLILogger = zap.NewNop()

// Init replaces CLILogger with a console logger at the given level.
func Init(level string) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return err
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	logger, err := cfg.Build()
	if err != nil {
		return err
	}

	CLILogger = logger
	return nil
}
