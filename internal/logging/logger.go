// Package logging builds the zap loggers used across KITEK.
// The TUI owns the terminal, so logs always go to a file under the state
// directory; console output is only added when the TUI is not running
// (e.g. the version command) or when explicitly requested.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options controls logger construction.
type Options struct {
	// Dir is the state directory the log file lives in (created if missing).
	Dir string

	// Verbose lowers the level to debug.
	Verbose bool

	// Console mirrors log output to stderr. Must stay false while the
	// TUI is attached or it will paint over the screen.
	Console bool
}

// New builds a zap logger writing to <dir>/kitek.log.
// Components derive their own loggers with Named ("ai", "store", ...).
func New(opts Options) (*zap.Logger, error) {
	if opts.Dir == "" {
		return nil, fmt.Errorf("logging: state dir not set")
	}
	if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("logging: create state dir: %w", err)
	}

	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{filepath.Join(opts.Dir, "kitek.log")}
	cfg.ErrorOutputPaths = cfg.OutputPaths
	if opts.Console {
		cfg.OutputPaths = append(cfg.OutputPaths, "stderr")
	}
	if opts.Verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("logging: build logger: %w", err)
	}
	return logger, nil
}
