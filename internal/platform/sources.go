package platform

import (
	"context"
	"errors"
	"fmt"

	atottoClip "github.com/atotto/clipboard"
)

// Names of the Linux text sources
const (
	SourceX11    = "x11"
	SourceXclip  = "xclip"
	SourceAtotto = "atotto"
)

// DefaultLinuxSources is the toolkit read followed by the selection utility
var DefaultLinuxSources = []string{SourceX11, SourceXclip}

// DefaultXclipArgs prints the selection to stdout
var DefaultXclipArgs = []string{"-o"}

var errAtottoUnsupported = errors.New("no clipboard utility found")

// TextSource reads the clipboard as text
type TextSource interface {
	Name() string
	ReadText(ctx context.Context) (string, error)
}

// KnownSource reports whether name is a valid Linux source
func KnownSource(name string) bool {
	switch name {
	case SourceX11, SourceXclip, SourceAtotto:
		return true
	}
	return false
}

// BuildTextSources creates sources by name, keeping their order. An empty list selects
// DefaultLinuxSources.
func BuildTextSources(names []string, runner CommandRunner, opts Options) ([]TextSource, error) {
	if len(names) == 0 {
		names = DefaultLinuxSources
	}

	sources := make([]TextSource, 0, len(names))
	for _, name := range names {
		switch name {
		case SourceX11:
			sources = append(sources, NewX11Source(opts.Display, 0))
		case SourceXclip:
			sources = append(sources, NewCommandSource(SourceXclip, runner, opts.XclipPath, opts.XclipArgs))
		case SourceAtotto:
			sources = append(sources, AtottoSource{})
		default:
			return nil, fmt.Errorf("unknown clipboard source %q", name)
		}
	}
	return sources, nil
}

// CommandSource reads the output of a selection utility such as xclip
type CommandSource struct {
	name   string
	runner CommandRunner
	path   string
	args   []string
}

// NewCommandSource creates a source that runs path with args. An empty path runs name.
func NewCommandSource(name string, runner CommandRunner, path string, args []string) *CommandSource {
	if runner == nil {
		runner = &ExecRunner{}
	}
	if path == "" {
		path = name
	}
	if args == nil && name == SourceXclip {
		args = DefaultXclipArgs
	}
	return &CommandSource{name: name, runner: runner, path: path, args: args}
}

func (s *CommandSource) Name() string { return s.name }

func (s *CommandSource) ReadText(ctx context.Context) (string, error) {
	out, err := s.runner.Run(ctx, s.path, s.args...)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// replaced in tests
var (
	atottoReadAll     = atottoClip.ReadAll
	atottoUnsupported = func() bool { return atottoClip.Unsupported }
)

// AtottoSource reads through github.com/atotto/clipboard, which probes the
// installed clipboard utilities itself
type AtottoSource struct{}

func (AtottoSource) Name() string { return SourceAtotto }

func (AtottoSource) ReadText(ctx context.Context) (string, error) {
	if atottoUnsupported() {
		return "", errAtottoUnsupported
	}
	text, err := atottoReadAll()
	if err != nil {
		return "", fmt.Errorf("failed to read clipboard: %w", err)
	}
	return text, nil
}
