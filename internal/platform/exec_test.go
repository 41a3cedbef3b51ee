package platform

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestHelperProcess is not a real test. It stands in for clipboard helpers
// when re-executed by the ExecRunner tests.
func TestHelperProcess(t *testing.T) {
	if os.Getenv("CLIPPATHS_HELPER_PROCESS") != "1" {
		return
	}
	switch os.Getenv("CLIPPATHS_HELPER_MODE") {
	case "print":
		fmt.Fprint(os.Stdout, "/tmp/a.txt\n")
		os.Exit(0)
	case "fail":
		fmt.Fprint(os.Stderr, "Error: target STRING not available\n")
		os.Exit(1)
	case "hang":
		time.Sleep(time.Minute)
		os.Exit(0)
	}
	os.Exit(2)
}

func helperArgs() []string {
	return []string{"-test.run=TestHelperProcess", "--"}
}

func TestExecRunnerCapturesStdout(t *testing.T) {
	t.Setenv("CLIPPATHS_HELPER_PROCESS", "1")
	t.Setenv("CLIPPATHS_HELPER_MODE", "print")

	out, err := (&ExecRunner{}).Run(context.Background(), os.Args[0], helperArgs()...)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/a.txt\n", string(out))
}

func TestExecRunnerReportsStderr(t *testing.T) {
	t.Setenv("CLIPPATHS_HELPER_PROCESS", "1")
	t.Setenv("CLIPPATHS_HELPER_MODE", "fail")

	_, err := (&ExecRunner{}).Run(context.Background(), os.Args[0], helperArgs()...)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "target STRING not available")
}

func TestExecRunnerTimeout(t *testing.T) {
	t.Setenv("CLIPPATHS_HELPER_PROCESS", "1")
	t.Setenv("CLIPPATHS_HELPER_MODE", "hang")

	start := time.Now()
	_, err := (&ExecRunner{Timeout: 200 * time.Millisecond}).Run(context.Background(), os.Args[0], helperArgs()...)
	require.Error(t, err)
	assert.Less(t, time.Since(start), 30*time.Second)
}

func TestExecRunnerMissingBinary(t *testing.T) {
	_, err := (&ExecRunner{}).Run(context.Background(), "clippaths-no-such-helper")
	assert.Error(t, err)
}
