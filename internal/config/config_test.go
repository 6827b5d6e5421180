package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "green", cfg.Theme)
	assert.True(t, cfg.AI.Enabled)
	assert.Equal(t, "http://localhost:11434", cfg.AI.Host)
}

func TestLoadMergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
theme: amber
ai:
  enabled: true
  host: http://127.0.0.1:11434
  model: gemma3:4b
  prompt_timeout: 30s
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "amber", cfg.Theme)
	assert.Equal(t, "gemma3:4b", cfg.AI.Model)
	assert.Equal(t, 30*time.Second, cfg.AI.PromptTimeout)
	// untouched defaults survive
	assert.NotZero(t, cfg.Typing.CharDelay)
}

func TestLoadRejectsUnknownTheme(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("theme: plasma\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestEnvOverrideWinsOverFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ai:\n  host: http://file:1\n"), 0o644))
	t.Setenv("KITEK_OLLAMA_HOST", "http://env:2")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "http://env:2", cfg.AI.Host)
}

func TestValidTheme(t *testing.T) {
	for _, name := range Themes {
		if !ValidTheme(name) {
			t.Errorf("ValidTheme(%q) = false", name)
		}
	}
	if ValidTheme("mauve") {
		t.Error("ValidTheme accepted an unknown theme")
	}
}
