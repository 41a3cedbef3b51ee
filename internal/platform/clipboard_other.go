//go:build !windows
// +build !windows

package platform

import (
	"fmt"
	"runtime"
	"time"
)

// unavailableClipboard stands in for the Win32 clipboard on other builds
type unavailableClipboard struct{}

// NewSystemClipboardAPI returns an API whose Open always fails: the Win32
// clipboard only exists in windows builds.
func NewSystemClipboardAPI(time.Duration) ClipboardAPI {
	return unavailableClipboard{}
}

func (unavailableClipboard) Open() error {
	return fmt.Errorf("win32 clipboard not available in %s build", runtime.GOOS)
}

func (unavailableClipboard) Close() error { return nil }
func (unavailableClipboard) IsFormatAvailable(uint32) bool { return false }
func (unavailableClipboard) DroppedFiles() ([]string, error) {
	return nil, nil
}
