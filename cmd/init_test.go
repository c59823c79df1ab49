package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestRenderConfig(t *testing.T) {
	cfg := fileConfig{
		Version: currentConfigVersion,
		CSV:     "findings.csv",
		Paths:   pathsConfig{Exclude: []string{"node_modules", "dist"}},
		Log:     logConfig{Level: "info", MaxSize: 10},
	}

	data, err := renderConfig(cfg)
	require.NoError(t, err)

	text := string(data)
	assert.Contains(t, text, "# "+configComments["csv"])
	assert.Contains(t, text, "# "+configComments["paths"])
	assert.Contains(t, text, "csv: findings.csv")

	var decoded fileConfig
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	assert.Equal(t, cfg, decoded)
}

func TestWriteDefaultConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), configFileName)

	require.NoError(t, writeDefaultConfig(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded fileConfig
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	assert.Equal(t, currentConfigVersion, decoded.Version)
	assert.Equal(t, defaultLogLevel, decoded.Log.Level)
	assert.Equal(t, defaultLogMaxBackups, decoded.Log.MaxBackups)
}

func TestWriteDefaultConfig_RefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), configFileName)
	require.NoError(t, os.WriteFile(path, []byte("output: keep.txt\n"), 0o644))

	err := writeDefaultConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "output: keep.txt\n", string(data))
}

func TestInitCmd_Registered(t *testing.T) {
	found, _, err := rootCmd.Find([]string{"init"})
	require.NoError(t, err)
	assert.Equal(t, initCmd, found)
}
