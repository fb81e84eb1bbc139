package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aman-CERP/wordlook/configs"
	"github.com/Aman-CERP/wordlook/internal/config"
)

func TestConfigInitCmd_CreatesProjectConfig(t *testing.T) {
	dir := isolateEnv(t)

	out, _, err := runCLI(t, "", "config", "init")

	require.NoError(t, err)
	assert.Contains(t, out, "Created configuration: .wordlook.yaml")
	data, err := os.ReadFile(filepath.Join(dir, ".wordlook.yaml"))
	require.NoError(t, err)
	assert.Equal(t, configs.ConfigTemplate, string(data))
}

func TestConfigInitCmd_KeepsExisting(t *testing.T) {
	dir := isolateEnv(t)
	path := writeFile(t, dir, ".wordlook.yaml", "version: 1\n")

	out, _, err := runCLI(t, "", "config", "init")

	require.NoError(t, err)
	assert.Contains(t, out, "Configuration already exists: .wordlook.yaml")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "version: 1\n", string(data))
}

func TestConfigInitCmd_ForceBacksUp(t *testing.T) {
	dir := isolateEnv(t)
	path := writeFile(t, dir, ".wordlook.yaml", "version: 1\n")

	out, _, err := runCLI(t, "", "config", "init", "--force")

	require.NoError(t, err)
	assert.Contains(t, out, "Backup: ")
	backups, err := config.ListBackups(path)
	require.NoError(t, err)
	require.Len(t, backups, 1)
	data, err := os.ReadFile(backups[0])
	require.NoError(t, err)
	assert.Equal(t, "version: 1\n", string(data))
}

func TestConfigInitCmd_IgnoresBrokenConfig(t *testing.T) {
	// init must work even when the current config does not load
	dir := isolateEnv(t)
	writeFile(t, dir, ".wordlook.yaml", "suggest: [broken\n")

	_, _, err := runCLI(t, "", "config", "init", "--user")

	require.NoError(t, err)
	assert.FileExists(t, config.GetUserConfigPath())
}

func TestConfigShowCmd_MergedSources(t *testing.T) {
	dir := isolateEnv(t)
	writeFile(t, dir, ".wordlook.yaml", "suggest:\n  threshold: 0.7\n")
	t.Setenv("WORDLOOK_ALGORITHM", "levenshtein")

	out, _, err := runCLI(t, "", "--no-color", "config", "show", "--json")
	require.NoError(t, err)

	var cfg config.Config
	require.NoError(t, json.Unmarshal([]byte(out), &cfg))
	assert.InDelta(t, 0.7, cfg.Suggest.Threshold, 1e-9)
	assert.Equal(t, "levenshtein", cfg.Suggest.Algorithm)
	assert.True(t, cfg.UI.NoColor)
}

func TestConfigShowCmd_YAML(t *testing.T) {
	dir := isolateEnv(t)
	writeFile(t, dir, ".wordlook.yaml", "repl:\n  exit_command: quit\n")

	out, _, err := runCLI(t, "", "config", "show")

	require.NoError(t, err)
	assert.Contains(t, out, "# from ")
	assert.Contains(t, out, "exit_command: quit")
}

func TestConfigShowCmd_InvalidEnv(t *testing.T) {
	isolateEnv(t)
	t.Setenv("WORDLOOK_THRESHOLD", "high")

	_, stderr, err := runCLI(t, "", "config", "show")

	require.Error(t, err)
	assert.Contains(t, stderr, "ERR_102_CONFIG_INVALID")
}

func TestConfigPathCmd(t *testing.T) {
	isolateEnv(t)

	out, _, err := runCLI(t, "", "config", "path")

	require.NoError(t, err)
	assert.Equal(t, config.GetUserConfigPath()+"\n", out)
}
