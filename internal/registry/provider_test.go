package registry_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/BeppeMagro/gomkm/internal/registry"
)

func TestInstallDir_ExplicitDirWins(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(registry.EnvDataDir, t.TempDir())

	root, err := registry.InstallDir{Dir: dir}.Resolve()
	require.NoError(t, err)
	require.Equal(t, dir, root)
}

func TestInstallDir_EnvOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(registry.EnvDataDir, dir)

	root, err := registry.InstallDir{}.Resolve()
	require.NoError(t, err)
	require.Equal(t, dir, root)
}

func TestInstallDir_HomeDefault(t *testing.T) {
	t.Setenv(registry.EnvDataDir, "")
	home := t.TempDir()
	t.Setenv("HOME", home)

	root, err := registry.InstallDir{}.Resolve()
	require.NoError(t, err)
	require.Equal(t, filepath.Join(home, ".gomkm", "data"), root)
}

func TestLocalDir_AppendsData(t *testing.T) {
	base := t.TempDir()

	root, err := registry.LocalDir{Base: base}.Resolve()
	require.NoError(t, err)
	require.Equal(t, filepath.Join(base, "data"), root)
}

func TestLocalDir_EmptyBaseIsWorkingDirectory(t *testing.T) {
	root, err := registry.LocalDir{}.Resolve()
	require.NoError(t, err)
	require.True(t, filepath.IsAbs(root))
	require.Equal(t, "data", filepath.Base(root))
}
