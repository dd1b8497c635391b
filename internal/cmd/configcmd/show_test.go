package configcmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/open-cli-collective/mdblock/internal/config"
)

func TestRunShow_WithConfigFile(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmpDir)

	cfg := &config.Config{
		PreferredFormat: "yaml",
		Theme:           "monokai",
		OutputFormat:    "json",
	}
	require.NoError(t, cfg.Save(filepath.Join(tmpDir, "mdb", "config.yml")))

	err := runShow("", true)
	require.NoError(t, err)
}

func TestRunShow_NoConfigFile(t *testing.T) {
	for _, v := range []string{"MDB_PREFERRED_FORMAT", "MDB_THEME", "MDB_OUTPUT"} {
		t.Setenv(v, "")
	}
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	err := runShow("", true)
	require.NoError(t, err)
}

func TestRunShow_EnvOverride(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("MDB_THEME", "dracula")

	_, err := os.Stat(config.DefaultConfigPath())
	require.True(t, os.IsNotExist(err))

	require.NoError(t, runShow("", true))
}
