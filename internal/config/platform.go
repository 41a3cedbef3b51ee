// File: internal/config/platform.go

package config

import (
	"runtime"
	"time"
)

// PlatformDefaults holds the helper defaults for the running OS
type PlatformDefaults struct {
	// Windows
	OpenTimeout time.Duration `json:"open_timeout" yaml:"open_timeout"`

	// macOS
	Osascript string `json:"osascript" yaml:"osascript"`
	Script    string `json:"script" yaml:"script"`

	// Linux
	LinuxSources []string `json:"linux_sources" yaml:"linux_sources"`
	Xclip        string   `json:"xclip" yaml:"xclip"`
	XclipArgs    []string `json:"xclip_args" yaml:"xclip_args"`
}

// GetPlatformDefaults returns the defaults for runtime.GOOS. Every OS gets
// every field so a config written on one machine stays valid on another.
func GetPlatformDefaults() PlatformDefaults {
	defaults := PlatformDefaults{
		OpenTimeout:  time.Second,
		Osascript:    "osascript",
		Script:       "the clipboard as «class furl»",
		LinuxSources: []string{"x11", "xclip"},
		Xclip:        "xclip",
		XclipArgs:    []string{"-o"},
	}

	if runtime.GOOS == "darwin" {
		// launchd agents run with a minimal PATH
		defaults.Osascript = "/usr/bin/osascript"
	}

	return defaults
}
