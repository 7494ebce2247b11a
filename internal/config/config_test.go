package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeManifest(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, FileName)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefaults(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "spec", cfg.Output.Dir)
	assert.Equal(t, FormatJSON, cfg.Output.Format)
	assert.True(t, cfg.Cache.Enabled)
	assert.Equal(t, []string{"S", "T"}, cfg.Extract.Placeholders)
	require.NoError(t, cfg.Validate())
}

func TestLoadOverrides(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, `
[input]
document = "upstream/WGSL.html"

[output]
format = "yaml"

[cache]
enabled = false

[extract]
placeholders = ["S", "T", "U"]

[anchors]
texture_functions = "texture-functions"
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, path, cfg.Path)
	assert.Equal(t, filepath.Join(dir, "upstream", "WGSL.html"), cfg.Input.Document)
	assert.Equal(t, "spec", cfg.Output.Dir, "unset values keep defaults")
	assert.Equal(t, FormatYAML, cfg.Output.Format)
	assert.False(t, cfg.Cache.Enabled)
	assert.Equal(t, []string{"S", "T", "U"}, cfg.Extract.Placeholders)
	assert.Equal(t, "texture-functions", cfg.Anchors.TextureFunctions)
	assert.Empty(t, cfg.Anchors.AtomicFunctions)
}

func TestLoadRejectsUnknownFormat(t *testing.T) {
	path := writeManifest(t, t.TempDir(), "[output]\nformat = \"xml\"\n")
	_, err := Load(path)
	require.ErrorIs(t, err, ErrUnknownFormat)
	assert.Contains(t, err.Error(), path)
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := writeManifest(t, t.TempDir(), "[output]\ncolour = \"red\"\n")
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "output.colour")
}

func TestLoadRejectsBlankPlaceholder(t *testing.T) {
	path := writeManifest(t, t.TempDir(), "[extract]\nplaceholders = [\"S\", \" \"]\n")
	_, err := Load(path)
	require.ErrorIs(t, err, ErrEmptyPlaceholder)
}

func TestDiscoverWalksUp(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "[output]\ndir = \"out\"\n")
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	cfg, err := Discover("", nested)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "out"), cfg.Output.Dir)
}

func TestDiscoverWithoutManifest(t *testing.T) {
	cfg, err := Discover("", t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, cfg.Path)
	assert.Equal(t, Default().Output, cfg.Output)
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]string{"": FormatJSON, "JSON": FormatJSON, "yml": FormatYAML, "msgpack": FormatMsgpack} {
		got, err := ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}
}

func TestCacheDir(t *testing.T) {
	cfg := Default()
	cfg.Cache.Dir = "/tmp/x"
	dir, err := cfg.CacheDir()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/x", dir)
}
