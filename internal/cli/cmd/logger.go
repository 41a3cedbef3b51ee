package cmd

import (
	"fmt"

	"github.com/berrythewa/clippaths/internal/common"
	"github.com/berrythewa/clippaths/internal/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// SetupLogger creates the zap logger. --verbose and --quiet take precedence
// over the configured level.
func SetupLogger(cfg *config.Config) (*zap.Logger, error) {
	switch {
	case verbose:
		return common.NewLoggerAtLevel(cfg, zapcore.DebugLevel)
	case quiet:
		return common.NewLoggerAtLevel(cfg, zapcore.ErrorLevel)
	default:
		return common.NewLogger(cfg)
	}
}

func setupLogger() error {
	if cfg == nil {
		return fmt.Errorf("configuration not loaded")
	}

	logger, err := SetupLogger(cfg)
	if err != nil {
		return fmt.Errorf("failed to setup logger: %w", err)
	}

	zapLogger = logger
	return nil
}
