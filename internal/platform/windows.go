package platform

import (
	"context"

	"github.com/berrythewa/clippaths/internal/types"
	"go.uber.org/zap"
)

// CFHDrop is the Win32 dropped-files clipboard format
const CFHDrop uint32 = 15

const sourceWin32 = "win32"

// ClipboardAPI is the subset of the Win32 clipboard used to read dropped files.
// Close must be called once for every successful Open.
type ClipboardAPI interface {
	Open() error
	Close() error
	IsFormatAvailable(format uint32) bool
	DroppedFiles() ([]string, error)
}

// WindowsReader reads the CF_HDROP file list
type WindowsReader struct {
	api    ClipboardAPI
	logger *zap.Logger
}

// NewWindowsReader creates a reader on top of api
func NewWindowsReader(api ClipboardAPI, logger *zap.Logger) *WindowsReader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &WindowsReader{api: api, logger: logger}
}

func (r *WindowsReader) ReadFilePaths(ctx context.Context) (*types.PathResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := r.api.Open(); err != nil {
		r.logger.Debug("Failed to open clipboard", zap.Error(err))
		return types.Unavailable(sourceWin32), nil
	}
	defer func() {
		if err := r.api.Close(); err != nil {
			r.logger.Warn("Failed to close clipboard", zap.Error(err))
		}
	}()

	if !r.api.IsFormatAvailable(CFHDrop) {
		r.logger.Debug("No dropped files on clipboard")
		return types.Empty(sourceWin32), nil
	}

	files, err := r.api.DroppedFiles()
	if err != nil {
		r.logger.Debug("Failed to read dropped files", zap.Error(err))
		return types.Unavailable(sourceWin32), nil
	}

	r.logger.Debug("Read dropped files", zap.Int("count", len(files)))
	return types.Found(sourceWin32, files), nil
}
