package platform

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	"github.com/berrythewa/clippaths/internal/types"
	"go.uber.org/zap"
)

// ErrUnsupportedPlatform is returned when no reader exists for the host OS
var ErrUnsupportedPlatform = errors.New("unsupported platform")

// Reader returns the file paths currently referenced by the system clipboard.
// Access failures are reported through the result status; the returned error
// is reserved for context cancellation.
type Reader interface {
	ReadFilePaths(ctx context.Context) (*types.PathResult, error)
}

// Detector identifies the host operating system using GOOS names
type Detector interface {
	OS() string
}

// RuntimeDetector reports the OS the binary was built for
type RuntimeDetector struct{}

func (RuntimeDetector) OS() string { return runtime.GOOS }

// StaticDetector always reports the same OS
type StaticDetector string

func (d StaticDetector) OS() string { return string(d) }

// DetectorFor returns a StaticDetector for name, or a RuntimeDetector when name is empty or "auto"
func DetectorFor(name string) Detector {
	if name == "" || name == "auto" {
		return RuntimeDetector{}
	}
	return StaticDetector(name)
}

// Options configures the platform readers. Zero values select the defaults.
type Options struct {
	Logger *zap.Logger
	Runner CommandRunner

	// Windows
	ClipboardAPI ClipboardAPI
	OpenTimeout  time.Duration

	// macOS
	OsascriptPath string
	Script        string

	// Linux
	Sources   []string
	XclipPath string
	XclipArgs []string
	Display   string
}

// NewReader selects the reader for the OS reported by detector
func NewReader(detector Detector, opts Options) (Reader, error) {
	if detector == nil {
		detector = RuntimeDetector{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	runner := opts.Runner
	if runner == nil {
		runner = &ExecRunner{}
	}

	goos := detector.OS()
	logger.Debug("Selecting clipboard reader", zap.String("os", goos))

	switch goos {
	case "windows":
		api := opts.ClipboardAPI
		if api == nil {
			api = NewSystemClipboardAPI(opts.OpenTimeout)
		}
		return NewWindowsReader(api, logger), nil
	case "darwin":
		return NewDarwinReader(runner, opts.OsascriptPath, opts.Script, logger), nil
	case "linux":
		sources, err := BuildTextSources(opts.Sources, runner, opts)
		if err != nil {
			return nil, err
		}
		return NewLinuxReader(sources, logger), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedPlatform, goos)
	}
}
