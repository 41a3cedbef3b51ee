// File: internal/config/config.go

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const configFileName = "config.yaml"

// ConfigPaths holds all relevant paths for the application
type ConfigPaths struct {
	BaseDir    string // Base directory for config files
	ConfigFile string // Path to the config file
	LogDir     string // Directory for log files
}

// Config holds all application configuration
type Config struct {
	// Platform overrides OS detection; "auto" uses the running OS
	Platform string `json:"platform" yaml:"platform"`

	// HelperTimeout bounds each helper process; zero waits until it exits
	HelperTimeout time.Duration `json:"helper_timeout" yaml:"helper_timeout"`

	Log     LogConfig     `json:"log" yaml:"log"`
	Windows WindowsConfig `json:"windows" yaml:"windows"`
	Darwin  DarwinConfig  `json:"darwin" yaml:"darwin"`
	Linux   LinuxConfig   `json:"linux" yaml:"linux"`
}

// LogConfig holds logging-related configuration
type LogConfig struct {
	Level  string `json:"level" yaml:"level"`
	Format string `json:"format" yaml:"format"` // "json" or "text"
	File   string `json:"file" yaml:"file"`     // empty logs to stderr
}

// WindowsConfig configures the Win32 clipboard reader
type WindowsConfig struct {
	OpenTimeout time.Duration `json:"open_timeout" yaml:"open_timeout"`
}

// DarwinConfig configures the osascript helper
type DarwinConfig struct {
	Osascript string `json:"osascript" yaml:"osascript"`
	Script    string `json:"script" yaml:"script"`
}

// LinuxConfig configures the Linux text sources
type LinuxConfig struct {
	Sources   []string `json:"sources" yaml:"sources"`
	Xclip     string   `json:"xclip" yaml:"xclip"`
	XclipArgs []string `json:"xclip_args" yaml:"xclip_args"`
	Display   string   `json:"display" yaml:"display"` // empty uses $DISPLAY
}

var (
	// replaced in tests
	userConfigDir = os.UserConfigDir

	validPlatforms = []string{"auto", "windows", "darwin", "linux"}
	validFormats   = []string{"text", "json"}
	validSources   = []string{"x11", "xclip", "atotto"}
)

// GetConfigPaths returns the platform-specific configuration paths.
// Nothing is created on disk.
func GetConfigPaths() (*ConfigPaths, error) {
	baseDir := os.Getenv("CLIPPATHS_CONFIG_DIR")
	if baseDir == "" {
		configDir, err := userConfigDir()
		if err != nil {
			return nil, fmt.Errorf("failed to locate user config dir: %w", err)
		}
		baseDir = filepath.Join(configDir, "clippaths")
	}

	return &ConfigPaths{
		BaseDir:    baseDir,
		ConfigFile: filepath.Join(baseDir, configFileName),
		LogDir:     filepath.Join(baseDir, "logs"),
	}, nil
}

// DefaultConfig returns a new Config with default values
func DefaultConfig() *Config {
	defaults := GetPlatformDefaults()

	return &Config{
		Platform:      "auto",
		HelperTimeout: 0,
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
		Windows: WindowsConfig{
			OpenTimeout: defaults.OpenTimeout,
		},
		Darwin: DarwinConfig{
			Osascript: defaults.Osascript,
			Script:    defaults.Script,
		},
		Linux: LinuxConfig{
			Sources:   append([]string(nil), defaults.LinuxSources...),
			Xclip:     defaults.Xclip,
			XclipArgs: append([]string(nil), defaults.XclipArgs...),
		},
	}
}

// GetConfigPath returns the path of the config file
func GetConfigPath() (string, error) {
	paths, err := GetConfigPaths()
	if err != nil {
		return "", err
	}
	return paths.ConfigFile, nil
}

// Load reads the configuration from configPath, or the default location when empty.
// A missing file yields the defaults. Environment overrides are applied last.
func Load(configPath string) (*Config, error) {
	if configPath == "" {
		var err error
		configPath, err = GetConfigPath()
		if err != nil {
			return nil, err
		}
	}

	cfg := DefaultConfig()

	data, err := os.ReadFile(configPath)
	switch {
	case errors.Is(err, os.ErrNotExist):
		// defaults
	case err != nil:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if err := overrideFromEnv(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", configPath, err)
	}

	return cfg, nil
}

// Save saves the configuration to the specified file
func (c *Config) Save(configPath string) error {
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks enumerated values and durations
func (c *Config) Validate() error {
	if !contains(validPlatforms, c.Platform) {
		return fmt.Errorf("platform %q must be one of %s", c.Platform, strings.Join(validPlatforms, ", "))
	}
	if c.HelperTimeout < 0 {
		return fmt.Errorf("helper_timeout must not be negative")
	}
	if c.Windows.OpenTimeout < 0 {
		return fmt.Errorf("windows.open_timeout must not be negative")
	}
	if !contains(validFormats, c.Log.Format) {
		return fmt.Errorf("log.format %q must be one of %s", c.Log.Format, strings.Join(validFormats, ", "))
	}
	for _, src := range c.Linux.Sources {
		if !contains(validSources, src) {
			return fmt.Errorf("linux source %q must be one of %s", src, strings.Join(validSources, ", "))
		}
	}
	return nil
}

// overrideFromEnv overrides configuration values from environment variables
func overrideFromEnv(config *Config) error {
	if val := os.Getenv("CLIPPATHS_PLATFORM"); val != "" {
		config.Platform = val
	}
	if val := os.Getenv("CLIPPATHS_LOG_LEVEL"); val != "" {
		config.Log.Level = val
	}
	if val := os.Getenv("CLIPPATHS_LOG_FORMAT"); val != "" {
		config.Log.Format = val
	}
	if val := os.Getenv("CLIPPATHS_LOG_FILE"); val != "" {
		config.Log.File = val
	}
	if val := os.Getenv("CLIPPATHS_HELPER_TIMEOUT"); val != "" {
		d, err := time.ParseDuration(val)
		if err != nil {
			return fmt.Errorf("invalid CLIPPATHS_HELPER_TIMEOUT: %w", err)
		}
		config.HelperTimeout = d
	}
	if val := os.Getenv("CLIPPATHS_OSASCRIPT"); val != "" {
		config.Darwin.Osascript = val
	}
	if val := os.Getenv("CLIPPATHS_XCLIP"); val != "" {
		config.Linux.Xclip = val
	}
	if val := os.Getenv("CLIPPATHS_LINUX_SOURCES"); val != "" {
		var sources []string
		for _, s := range strings.Split(val, ",") {
			if s = strings.TrimSpace(s); s != "" {
				sources = append(sources, s)
			}
		}
		config.Linux.Sources = sources
	}
	return nil
}

func contains(list []string, item string) bool {
	for _, s := range list {
		if s == item {
			return true
		}
	}
	return false
}
