/*
File    : gomatch/replconfig/replconfig_test.go
*/

package replconfig_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gomatch-lang/gomatch/replconfig"
)

func withConfigFile(t *testing.T, contents string) {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	t.Setenv("GOMATCH_CONFIG", path)
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("GOMATCH_CONFIG", filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	cfg, err := replconfig.Load()
	require.NoError(t, err)
	assert.Equal(t, "gomatch> ", cfg.Prompt)
	assert.Equal(t, ".gomatch_history", cfg.HistoryFile)
	assert.True(t, cfg.ColorEnabled())
}

func TestLoadOverridesFromYAML(t *testing.T) {
	withConfigFile(t, "prompt: \"gm> \"\ncolor: false\nhistory_file: \"/tmp/hist\"\n")
	cfg, err := replconfig.Load()
	require.NoError(t, err)
	assert.Equal(t, "gm> ", cfg.Prompt)
	assert.Equal(t, "/tmp/hist", cfg.HistoryFile)
	assert.False(t, cfg.ColorEnabled())
}

func TestLoadPartialYAMLKeepsDefaultsForOmittedFields(t *testing.T) {
	withConfigFile(t, "prompt: \"gm> \"\n")
	cfg, err := replconfig.Load()
	require.NoError(t, err)
	assert.Equal(t, "gm> ", cfg.Prompt)
	assert.Equal(t, ".gomatch_history", cfg.HistoryFile)
	assert.True(t, cfg.ColorEnabled())
}

func TestLoadMalformedYAMLIsAnError(t *testing.T) {
	withConfigFile(t, "prompt: [unterminated\n")
	_, err := replconfig.Load()
	require.Error(t, err)
}
