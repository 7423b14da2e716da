// Package logging builds the file logger. The TUI owns the terminal, so log
// output never goes to stdout or stderr.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/jask/gitdeck/internal/config"
)

// New returns a JSON logger writing to cfg.Path. An empty path yields a no-op
// logger. verbose forces debug level.
func New(cfg config.LogConfig, verbose bool) (*zap.Logger, error) {
	if cfg.Path == "" {
		return zap.NewNop(), nil
	}
	if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
		return nil, fmt.Errorf("mkdir log dir: %w", err)
	}

	level := zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if cfg.Level != "" {
		parsed, err := zapcore.ParseLevel(cfg.Level)
		if err != nil {
			return nil, fmt.Errorf("log level: %w", err)
		}
		level.SetLevel(parsed)
	}
	if verbose {
		level.SetLevel(zapcore.DebugLevel)
	}

	zc := zap.NewProductionConfig()
	zc.Level = level
	zc.OutputPaths = []string{cfg.Path}
	zc.ErrorOutputPaths = []string{cfg.Path}
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}
