// Package logging builds the zap logger shared by the CLI and the server.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/iwvelando/solar-quote/internal/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ParseLevel maps a configured level name to a zap level.
func ParseLevel(level string) (zapcore.Level, error) {
	switch level {
	case "debug":
		return zapcore.DebugLevel, nil
	case "", "info":
		return zapcore.InfoLevel, nil
	case "warn", "warning":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	default:
		return zapcore.InfoLevel, fmt.Errorf("invalid log level: %s", level)
	}
}

// New creates a zap logger based on configuration and CLI override. The
// override takes precedence over the configured level.
func New(loggingConfig config.LoggingConfig, levelOverride string) (*zap.Logger, error) {
	level := loggingConfig.Level
	if levelOverride != "" {
		level = levelOverride
	}
	zapLevel, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	format := loggingConfig.Format
	if format == "" {
		format = "json"
	}

	var zc zap.Config
	switch format {
	case "console":
		zc = zap.NewDevelopmentConfig()
	case "json":
		zc = zap.NewProductionConfig()
	default:
		return nil, fmt.Errorf("invalid log format: %s", format)
	}
	zc.Level = zap.NewAtomicLevelAt(zapLevel)

	if loggingConfig.OutputFile != "" {
		if dir := filepath.Dir(loggingConfig.OutputFile); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("failed to create log directory %s: %w", dir, err)
			}
		}

		file, err := os.OpenFile(loggingConfig.OutputFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %w", loggingConfig.OutputFile, err)
		}
		_ = file.Close()

		zc.OutputPaths = []string{loggingConfig.OutputFile}
		zc.ErrorOutputPaths = []string{loggingConfig.OutputFile}
	}

	return zc.Build()
}
