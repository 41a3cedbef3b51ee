package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/berrythewa/clippaths/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestConfigPathCmd(t *testing.T) {
	dir := setupCmdTest(t, nil)

	out, err := runCmd(t, "config", "path")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "config.yaml")+"\n", out)

	custom := filepath.Join(dir, "custom.yaml")
	out, err = runCmd(t, "--config", custom, "config", "path")
	require.NoError(t, err)
	assert.Equal(t, custom+"\n", out)
}

func TestConfigInitCmd(t *testing.T) {
	dir := setupCmdTest(t, nil)
	path := filepath.Join(dir, "config.yaml")

	out, err := runCmd(t, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, path)

	loaded, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), loaded)

	_, err = runCmd(t, "config", "init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	_, err = runCmd(t, "config", "init", "--force")
	assert.NoError(t, err)
}

func TestConfigShowCmd(t *testing.T) {
	setupCmdTest(t, nil)
	t.Setenv("CLIPPATHS_LINUX_SOURCES", "atotto")

	out, err := runCmd(t, "config", "show")
	require.NoError(t, err)
	var fromYAML config.Config
	require.NoError(t, yaml.Unmarshal([]byte(out), &fromYAML))
	assert.Equal(t, []string{"atotto"}, fromYAML.Linux.Sources)

	out, err = runCmd(t, "config", "show", "--format", "json")
	require.NoError(t, err)
	var fromJSON config.Config
	require.NoError(t, json.Unmarshal([]byte(out), &fromJSON))
	assert.Equal(t, "auto", fromJSON.Platform)

	_, err = runCmd(t, "config", "show", "--format", "toml")
	assert.EqualError(t, err, "unsupported format: toml")
}

func TestConfigCmdsRecoverFromBrokenFile(t *testing.T) {
	dir := setupCmdTest(t, nil)
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("platform: [unterminated\n"), 0644))

	out, err := runCmd(t, "config", "path")
	require.NoError(t, err)
	assert.Equal(t, path+"\n", out)

	_, err = runCmd(t, "config", "show")
	assert.Error(t, err)

	_, err = runCmd(t, "config", "init", "--force")
	require.NoError(t, err)

	loaded, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), loaded)
}
