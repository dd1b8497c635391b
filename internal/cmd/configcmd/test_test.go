package configcmd

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/open-cli-collective/mdblock/internal/config"
)

func TestRunTest(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.Config
		wantErr string
	}{
		{"empty config", &config.Config{}, ""},
		{"full config", &config.Config{PreferredFormat: "json", Theme: "monokai", OutputFormat: "plain"}, ""},
		{"bad format", &config.Config{PreferredFormat: "xml"}, "invalid config"},
		{"bad theme", &config.Config{Theme: "no-such-theme"}, "invalid config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := runTest("", true, tt.cfg)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestRunTest_FromEnv(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("MDB_OUTPUT", "xml")

	err := runTest("", true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "output_format")
}

func TestRunTest_ExplicitPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	for _, v := range []string{"MDB_PREFERRED_FORMAT", "MDB_THEME", "MDB_OUTPUT"} {
		t.Setenv(v, "")
	}
	path := filepath.Join(t.TempDir(), "bad.yml")
	require.NoError(t, (&config.Config{Theme: "no-such-theme"}).Save(path))

	require.NoError(t, runTest("", true))
	err := runTest(path, true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown theme")
}
