package platform

import (
	"context"
	"errors"
	"strings"
)

type fakeClipboardAPI struct {
	openErr      error
	hasDrop      bool
	files        []string
	filesErr     error
	openCalls    int
	closeCalls   int
	queriedFmt   []uint32
	panicOnFiles bool
}

func (f *fakeClipboardAPI) Open() error {
	f.openCalls++
	return f.openErr
}

func (f *fakeClipboardAPI) Close() error {
	f.closeCalls++
	return nil
}

func (f *fakeClipboardAPI) IsFormatAvailable(format uint32) bool {
	f.queriedFmt = append(f.queriedFmt, format)
	return f.hasDrop
}

func (f *fakeClipboardAPI) DroppedFiles() ([]string, error) {
	if f.panicOnFiles {
		panic("corrupt HDROP")
	}
	return f.files, f.filesErr
}

type runCall struct {
	name string
	args []string
}

type fakeRunner struct {
	out   map[string]string
	errs  map[string]error
	calls []runCall
}

func newFakeRunner() *fakeRunner {
	return &fakeRunner{out: map[string]string{}, errs: map[string]error{}}
}

func (f *fakeRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	f.calls = append(f.calls, runCall{name: name, args: args})
	if err := f.errs[name]; err != nil {
		return nil, err
	}
	out, ok := f.out[name]
	if !ok {
		return nil, errors.New("exec: \"" + name + "\": executable file not found in $PATH")
	}
	return []byte(out), nil
}

func (f *fakeRunner) commandLines() []string {
	lines := make([]string, 0, len(f.calls))
	for _, c := range f.calls {
		lines = append(lines, strings.Join(append([]string{c.name}, c.args...), " "))
	}
	return lines
}

type fakeSource struct {
	name  string
	text  string
	err   error
	calls int
}

func (f *fakeSource) Name() string { return f.name }

func (f *fakeSource) ReadText(ctx context.Context) (string, error) {
	f.calls++
	return f.text, f.err
}
