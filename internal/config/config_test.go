package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	require.Equal(t, "auto", cfg.UI.Theme)
	require.Equal(t, "info", cfg.Logging.Level)
	require.False(t, cfg.Logging.DebugMode)
}

func TestLoadParsesYAML(t *testing.T) {
	content := `
ui:
  theme: dark
logging:
  debug_mode: true
  level: debug
  categories:
    clipboard: true
    payload: false
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "dark", cfg.UI.Theme)
	require.True(t, cfg.Logging.DebugMode)
	require.Equal(t, "debug", cfg.Logging.Level)
	require.True(t, cfg.Logging.Categories["clipboard"])
	require.False(t, cfg.Logging.Categories["payload"])
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ui: [broken"), 0644))

	_, err := Load(path)
	require.Error(t, err)
}
