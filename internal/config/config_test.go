package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaults(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "tree", cfg.Output.Format)
	assert.Equal(t, "parser", cfg.Output.Engine)
	assert.True(t, cfg.Output.Color)
	assert.NoError(t, cfg.Validate())
}

func TestLoadTOML(t *testing.T) {
	path := writeConfig(t, "mers.toml", `
[output]
format = "json"
engine = "grammar"

[log]
verbosity = 2
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.Equal(t, "grammar", cfg.Output.Engine)
	assert.Equal(t, 2, cfg.Log.Verbosity)
	// keys absent from the file keep their defaults
	assert.True(t, cfg.Output.Color)
	assert.NotEmpty(t, cfg.Repl.History)
}

func TestLoadYAML(t *testing.T) {
	path := writeConfig(t, "mers.yml", `
output:
  format: yaml
  color: false
repl:
  history: /tmp/custom_history
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "yaml", cfg.Output.Format)
	assert.Equal(t, "parser", cfg.Output.Engine)
	assert.False(t, cfg.Output.Color)
	assert.Equal(t, "/tmp/custom_history", cfg.Repl.History)
}

func TestLoadRejectsUnknownValues(t *testing.T) {
	path := writeConfig(t, "mers.toml", "[output]\nformat = \"xml\"\n")
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "output.format")

	path = writeConfig(t, "mers.yaml", "output:\n  engine: yacc\n")
	_, err = Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "output.engine")
}

func TestLoadMalformed(t *testing.T) {
	path := writeConfig(t, "mers.toml", "[output\nformat = ")
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}

func TestLoadMissingExplicitPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config file not found")
}

func TestLoadWithoutFileUsesDefaults(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	defer os.Chdir(wd)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}
