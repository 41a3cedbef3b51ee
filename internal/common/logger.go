package common

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/berrythewa/clippaths/internal/config"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger creates a logger from the log section of cfg. Output goes to
// stderr unless a log file is configured; stdout is left to the command.
func NewLogger(cfg *config.Config) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Log.Level)); err != nil {
		level = zapcore.WarnLevel
	}
	return newLogger(cfg.Log, level)
}

// NewLoggerAtLevel is NewLogger with the configured level replaced
func NewLoggerAtLevel(cfg *config.Config, level zapcore.Level) (*zap.Logger, error) {
	return newLogger(cfg.Log, level)
}

func newLogger(logCfg config.LogConfig, level zapcore.Level) (*zap.Logger, error) {
	output := "stderr"
	if logCfg.File != "" {
		if err := os.MkdirAll(filepath.Dir(logCfg.File), 0755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		output = logCfg.File
	}

	encoding := "console"
	encoderConfig := zap.NewDevelopmentEncoderConfig()
	if logCfg.Format == "json" {
		encoding = "json"
		encoderConfig = zap.NewProductionEncoderConfig()
	}
	encoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05")

	zcfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(level),
		Development:      false,
		Encoding:         encoding,
		EncoderConfig:    encoderConfig,
		OutputPaths:      []string{output},
		ErrorOutputPaths: []string{"stderr"},
	}

	logger, err := zcfg.Build()
	if err != nil {
		return nil, err
	}
	return logger.With(zap.String("invocation_id", uuid.NewString())), nil
}
