package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg, err := LoadWithViper(New())
	require.NoError(t, err)
	assert.Equal(t, "", cfg.Database.Path)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.Log.JSON)
	assert.Equal(t, "oldpochmann", cfg.Scheme.Name)
	assert.True(t, cfg.Quiz.AvoidRepeat)
	assert.Equal(t, 20, cfg.Quiz.ScrambleLength)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[database]
path = "/tmp/labels.db"

[scheme]
name = "m2"

[quiz]
scramble_length = 12
`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/labels.db", cfg.Database.Path)
	assert.Equal(t, "m2", cfg.Scheme.Name)
	assert.Equal(t, 12, cfg.Quiz.ScrambleLength)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("LETTERCUBE_LOG_LEVEL", "debug")
	t.Setenv("LETTERCUBE_SCHEME_NAME", "m2")
	cfg, err := LoadWithViper(New())
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "m2", cfg.Scheme.Name)
}

func TestMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestNegativeScrambleLength(t *testing.T) {
	v := New()
	v.Set("quiz.scramble_length", -1)
	_, err := LoadWithViper(v)
	assert.Error(t, err)
}
