//go:build windows
// +build windows

package platform

import (
	"fmt"
	"time"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32  = windows.NewLazySystemDLL("user32.dll")
	shell32 = windows.NewLazySystemDLL("shell32.dll")

	procOpenClipboard              = user32.NewProc("OpenClipboard")
	procCloseClipboard             = user32.NewProc("CloseClipboard")
	procIsClipboardFormatAvailable = user32.NewProc("IsClipboardFormatAvailable")
	procGetClipboardData           = user32.NewProc("GetClipboardData")
	procDragQueryFileW             = shell32.NewProc("DragQueryFileW")
)

const (
	dragQueryCount    = 0xFFFFFFFF
	defaultOpenWindow = time.Second
	openRetryInterval = 5 * time.Millisecond
)

// win32Clipboard talks to user32/shell32 directly
type win32Clipboard struct {
	openTimeout time.Duration
}

// NewSystemClipboardAPI returns the Win32 clipboard. Open keeps retrying for up to
// openTimeout while another window holds the clipboard.
func NewSystemClipboardAPI(openTimeout time.Duration) ClipboardAPI {
	if openTimeout <= 0 {
		openTimeout = defaultOpenWindow
	}
	return &win32Clipboard{openTimeout: openTimeout}
}

func (c *win32Clipboard) Open() error {
	deadline := time.Now().Add(c.openTimeout)
	var lastErr error
	for {
		r, _, err := procOpenClipboard.Call(0)
		if r != 0 {
			return nil
		}
		lastErr = err
		if time.Now().After(deadline) {
			break
		}
		time.Sleep(openRetryInterval)
	}
	return fmt.Errorf("failed to open clipboard: %w", lastErr)
}

func (c *win32Clipboard) Close() error {
	r, _, err := procCloseClipboard.Call()
	if r == 0 {
		return fmt.Errorf("failed to close clipboard: %w", err)
	}
	return nil
}

func (c *win32Clipboard) IsFormatAvailable(format uint32) bool {
	r, _, _ := procIsClipboardFormatAvailable.Call(uintptr(format))
	return r != 0
}

// DroppedFiles decodes the CF_HDROP handle owned by the clipboard. The handle
// must not be freed by the caller.
func (c *win32Clipboard) DroppedFiles() ([]string, error) {
	hDrop, _, err := procGetClipboardData.Call(uintptr(CFHDrop))
	if hDrop == 0 {
		return nil, fmt.Errorf("failed to get clipboard data: %w", err)
	}

	count, _, _ := procDragQueryFileW.Call(hDrop, dragQueryCount, 0, 0)
	files := make([]string, 0, int(count))
	for i := uintptr(0); i < count; i++ {
		length, _, _ := procDragQueryFileW.Call(hDrop, i, 0, 0)
		buf := make([]uint16, length+1)
		n, _, err := procDragQueryFileW.Call(hDrop, i, uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)))
		if n == 0 {
			return nil, fmt.Errorf("failed to query dropped file %d: %w", i, err)
		}
		files = append(files, windows.UTF16ToString(buf[:n]))
	}
	return files, nil
}
