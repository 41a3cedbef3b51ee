package platform

import (
	"context"
	"strings"

	"github.com/berrythewa/clippaths/internal/types"
	"go.uber.org/zap"
)

const (
	// DefaultOsascript is the AppleScript interpreter queried on macOS
	DefaultOsascript = "osascript"
	// DefaultFileURLScript coerces the clipboard to a file reference
	DefaultFileURLScript = "the clipboard as «class furl»"

	fileURLPrefix   = "file://"
	sourceOsascript = "osascript"
	maxLoggedOutput = 64
)

// DarwinReader asks osascript for the clipboard as a file URL
type DarwinReader struct {
	runner    CommandRunner
	osascript string
	script    string
	logger    *zap.Logger
}

// NewDarwinReader creates a macOS reader. Empty osascript or script select the defaults.
func NewDarwinReader(runner CommandRunner, osascript, script string, logger *zap.Logger) *DarwinReader {
	if runner == nil {
		runner = &ExecRunner{}
	}
	if osascript == "" {
		osascript = DefaultOsascript
	}
	if script == "" {
		script = DefaultFileURLScript
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DarwinReader{runner: runner, osascript: osascript, script: script, logger: logger}
}

func (r *DarwinReader) ReadFilePaths(ctx context.Context) (*types.PathResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out, err := r.runner.Run(ctx, r.osascript, "-e", r.script)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		r.logger.Debug("Clipboard helper failed",
			zap.String("helper", r.osascript),
			zap.Error(err))
		return types.Unavailable(sourceOsascript), nil
	}

	return parseFileURL(strings.TrimSpace(string(out)), r.logger), nil
}

// parseFileURL turns helper output into a result. The path after the scheme is
// kept verbatim.
func parseFileURL(output string, logger *zap.Logger) *types.PathResult {
	if output == "" {
		return types.Empty(sourceOsascript)
	}
	if !strings.HasPrefix(output, fileURLPrefix) {
		logger.Debug("Clipboard helper output is not a file URL",
			zap.String("output", truncate(output, maxLoggedOutput)))
		return types.Unparseable(sourceOsascript)
	}
	path := strings.TrimPrefix(output, fileURLPrefix)
	if path == "" {
		return types.Unparseable(sourceOsascript)
	}
	return types.Found(sourceOsascript, []string{path})
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
