package cmd

import (
	"github.com/berrythewa/clippaths/internal/config"
	"github.com/berrythewa/clippaths/internal/platform"
	"go.uber.org/zap"
)

// Shared variables across all commands
var (
	cfg       *config.Config
	zapLogger *zap.Logger

	cfgFile      string
	verbose      bool
	quiet        bool
	useJSON      bool
	platformName string

	// replaced in tests
	newReader = platform.NewReader
)

// GetConfig returns the configuration loaded for the running command
func GetConfig() *config.Config {
	return cfg
}

// GetZapLogger returns the logger, or a no-op logger before setup
func GetZapLogger() *zap.Logger {
	if zapLogger == nil {
		return zap.NewNop()
	}
	return zapLogger
}
