package platform

import (
	"context"
	"strings"

	"github.com/berrythewa/clippaths/internal/types"
	"go.uber.org/zap"
)

// LinuxReader reads the clipboard as plain text, trying each source in turn.
// Unlike the Windows and macOS readers it does not look for a file-drop format:
// a copied path is only recognized when the clipboard text is the path itself.
type LinuxReader struct {
	sources []TextSource
	logger  *zap.Logger
}

// NewLinuxReader creates a reader over sources, in priority order
func NewLinuxReader(sources []TextSource, logger *zap.Logger) *LinuxReader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LinuxReader{sources: sources, logger: logger}
}

// ReadFilePaths stops at the first source that answers. A source that answers
// with empty text ends the chain too, so fallbacks only run when a source fails.
// Blank text is reported as StatusEmpty, never as a single empty path.
func (r *LinuxReader) ReadFilePaths(ctx context.Context) (*types.PathResult, error) {
	for _, src := range r.sources {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		text, err := src.ReadText(ctx)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			r.logger.Debug("Clipboard source failed, trying next",
				zap.String("source", src.Name()),
				zap.Error(err))
			continue
		}

		text = strings.TrimSpace(text)
		if text == "" {
			return types.Empty(src.Name()), nil
		}
		return types.Found(src.Name(), []string{text}), nil
	}

	r.logger.Debug("No clipboard source available", zap.Int("sources", len(r.sources)))
	return types.Unavailable(""), nil
}
