package common

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/berrythewa/clippaths/internal/config"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		level string
		want  zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"info", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"invalid", zapcore.WarnLevel},
		{"", zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run("Level_"+tt.level, func(t *testing.T) {
			cfg := config.DefaultConfig()
			cfg.Log.Level = tt.level

			logger, err := NewLogger(cfg)
			require.NoError(t, err)
			assert.True(t, logger.Core().Enabled(tt.want))
			if tt.want > zapcore.DebugLevel {
				assert.False(t, logger.Core().Enabled(tt.want-1))
			}
		})
	}
}

func TestNewLoggerWritesJSONFile(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "logs", "clippaths.log")
	cfg := config.DefaultConfig()
	cfg.Log.Format = "json"
	cfg.Log.File = logFile

	logger, err := NewLoggerAtLevel(cfg, zapcore.InfoLevel)
	require.NoError(t, err)
	logger.Info("Read clipboard", zap.String("source", "xclip"))
	require.NoError(t, logger.Sync())

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(string(data))), &entry))
	assert.Equal(t, "Read clipboard", entry["msg"])
	assert.Equal(t, "xclip", entry["source"])

	id, ok := entry["invocation_id"].(string)
	require.True(t, ok, "invocation_id missing")
	_, err = uuid.Parse(id)
	assert.NoError(t, err)
}
