package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/BeppeMagro/gomkm/internal/config"
)

func readYAML(t *testing.T, path string) map[string]any {
	t.Helper()
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	var out map[string]any
	require.NoError(t, yaml.Unmarshal(content, &out))
	return out
}

func TestSaveDataDir_UpdatesExistingKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, config.WriteDefaultConfig(path))

	require.NoError(t, config.SaveDataDir(path, "/opt/gomkm/data"))

	out := readYAML(t, path)
	assert.Equal(t, "/opt/gomkm/data", out["data_dir"])
}

func TestSaveDataDir_PreservesCommentsAndOtherKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	original := `# gomkm configuration
data_dir: ""
# base of the development tree
local_dir: "/home/dev/tables"
tracing:
  enabled: true
`
	require.NoError(t, os.WriteFile(path, []byte(original), 0o600))

	require.NoError(t, config.SaveDataDir(path, "/opt/gomkm/data"))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "# gomkm configuration")
	assert.Contains(t, string(content), "# base of the development tree")

	out := readYAML(t, path)
	assert.Equal(t, "/opt/gomkm/data", out["data_dir"])
	assert.Equal(t, "/home/dev/tables", out["local_dir"])
	tracing, ok := out["tracing"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, true, tracing["enabled"])
}

func TestSaveDataDir_AppendsMissingKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("local_dir: \"\"\n"), 0o600))

	require.NoError(t, config.SaveDataDir(path, "/opt/gomkm/data"))

	out := readYAML(t, path)
	assert.Equal(t, "/opt/gomkm/data", out["data_dir"])
	assert.Equal(t, "", out["local_dir"])
}

func TestSaveDataDir_CreatesFileWhenMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	require.NoError(t, config.SaveDataDir(path, "/opt/gomkm/data"))

	out := readYAML(t, path)
	assert.Equal(t, "/opt/gomkm/data", out["data_dir"])
}
