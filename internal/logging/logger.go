// Package logging builds the application logger. Logs go to a file because
// stdout belongs to the terminal UI.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New creates a file-backed sugared logger. The returned close function
// flushes buffered entries and is safe to call once on shutdown.
func New(filePath, level string) (*zap.SugaredLogger, func(), error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{filePath}
	cfg.ErrorOutputPaths = []string{filePath}
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := cfg.Build()
	if err != nil {
		return nil, nil, fmt.Errorf("logging: build logger: %w", err)
	}
	return logger.Sugar(), func() { _ = logger.Sync() }, nil
}
