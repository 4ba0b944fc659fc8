package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".stdt.yml")
	require.NoError(t, os.WriteFile(path, []byte("indent: \"  \"\nrekey: snake\n"), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "  ", cfg.Indent)
	assert.Equal(t, "snake", cfg.Rekey)
}

func TestLoadConfig_Defaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".stdt.yml")
	require.NoError(t, os.WriteFile(path, []byte("{}\n"), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "", cfg.Indent)
	assert.Equal(t, "", cfg.Rekey)
}

func TestLoadConfig_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yml"))
		assert.Error(t, err)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, ".stdt.yml")
		require.NoError(t, os.WriteFile(path, []byte(":\n  - ]broken"), 0o644))
		_, err := LoadConfig(path)
		assert.Error(t, err)
	})

	t.Run("unknown rekey mode", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, ".stdt.yml")
		require.NoError(t, os.WriteFile(path, []byte("rekey: shouty\n"), 0o644))
		_, err := LoadConfig(path)
		assert.ErrorContains(t, err, "rekey")
	})
}

func TestFindConfigFile_WalksUp(t *testing.T) {
	root := t.TempDir()
	sub := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(sub, 0o755))
	expected := filepath.Join(root, ".stdt.yml")
	require.NoError(t, os.WriteFile(expected, []byte("rekey: camel\n"), 0o644))

	t.Chdir(sub)
	found := FindConfigFile()
	require.NotEmpty(t, found)

	// Temp dirs may resolve through symlinks; compare the real paths.
	wantReal, err := filepath.EvalSymlinks(expected)
	require.NoError(t, err)
	gotReal, err := filepath.EvalSymlinks(found)
	require.NoError(t, err)
	assert.Equal(t, wantReal, gotReal)
}

func TestMerge(t *testing.T) {
	base := &Config{Indent: "\t", Rekey: "snake"}

	merged := base.Merge("", "")
	assert.Equal(t, base, merged)

	merged = base.Merge("  ", "camel")
	assert.Equal(t, "  ", merged.Indent)
	assert.Equal(t, "camel", merged.Rekey)

	// The base is untouched.
	assert.Equal(t, "\t", base.Indent)
}
