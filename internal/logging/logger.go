// Package logging builds the zap loggers used across qajudge. The
// interactive TUI owns the terminal, so its logger writes to a dated file
// under <workspace>/.qajudge/logs/ and never touches stdout or stderr.
// Non-interactive subcommands get a plain console logger instead.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewFileLogger opens a per-day log file in the workspace and returns a
// JSON-encoded zap logger writing to it. Callers should Sync on shutdown.
func NewFileLogger(workspace string, debug bool) (*zap.Logger, error) {
	if workspace == "" {
		return nil, fmt.Errorf("workspace path required")
	}

	dir := filepath.Join(workspace, ".qajudge", "logs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create logs directory: %w", err)
	}

	name := time.Now().Format("2006-01-02") + ".log"
	file, err := os.OpenFile(filepath.Join(dir, name), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	level := zapcore.InfoLevel
	if debug {
		level = zapcore.DebugLevel
	}

	enc := zap.NewProductionEncoderConfig()
	enc.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(enc), zapcore.AddSync(file), level)
	return zap.New(core), nil
}

// NewConsoleLogger returns a stderr logger for one-shot subcommands.
func NewConsoleLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return cfg.Build()
}
