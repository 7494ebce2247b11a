package catcache

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"

	"wgslspec/internal/wgsl"
)

func samplePayload() *Payload {
	tokens := wgsl.NewTokenCatalog()
	tokens.Keywords = []string{"fn", "var"}
	tokens.Attributes["align"] = wgsl.Attribute{Description: "alignment", DescriptionParameters: wgsl.StringPtr("bytes")}
	tokens.BuiltinValues["position"] = wgsl.BuiltinValue{
		Stages:   map[string]wgsl.BuiltinValueStage{"vertex": {Description: "clip position", Direction: wgsl.DirectionOutput}},
		TypeName: "vec4<f32>",
	}
	tokens.InterpolationTypeNames = []string{"flat"}
	tokens.InterpolationSamplingNames = []string{"center"}
	tokens.PrimitiveTypes = []string{"f32"}
	tokens.TypeGenerators = []string{"vec2"}
	tokens.TypeAliases["vec2f"] = "vec2<f32>"

	functions := wgsl.NewFunctionCatalog()
	p := wgsl.NewParameterization()
	p.Typevars["T"] = wgsl.TypesKind("f32", "i32")
	functions.Functions["abs"] = wgsl.Function{
		Overloads: []wgsl.FunctionOverload{{
			Signature:        "fn abs(e: T) -> T",
			Parameterization: p,
			Description:      wgsl.StringPtr("absolute value"),
		}},
		Parameters: []wgsl.FunctionParameter{{Name: "e", Description: "input"}},
	}
	return &Payload{Source: "WGSL.html", Tokens: tokens, Functions: functions}
}

func TestKeyDependsOnDocumentAndSettings(t *testing.T) {
	a := Key([]byte("<html>"), "x")
	assert.Equal(t, a, Key([]byte("<html>"), "x"))
	assert.NotEqual(t, a, Key([]byte("<html> "), "x"))
	assert.NotEqual(t, a, Key([]byte("<html>"), "y"))
	assert.Len(t, a.String(), 64)
}

func TestPutGet(t *testing.T) {
	c, err := Open(t.TempDir())
	require.NoError(t, err)
	key := Key([]byte("doc"), "fp")

	_, ok, err := c.Get(key)
	require.NoError(t, err)
	assert.False(t, ok, "empty cache misses")

	want := samplePayload()
	require.NoError(t, c.Put(key, want))

	got, ok, err := c.Get(key)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, SchemaVersion, got.Schema)
	assert.Equal(t, "WGSL.html", got.Source)
	assert.Equal(t, want.Tokens, got.Tokens)
	assert.Equal(t, want.Functions, got.Functions)

	entries, err := os.ReadDir(filepath.Join(c.Dir(), "catalogs"))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files are renamed away")
}

func TestSchemaMismatchIsMiss(t *testing.T) {
	c, err := Open(t.TempDir())
	require.NoError(t, err)
	key := Key([]byte("doc"), "fp")

	stale := samplePayload()
	stale.Schema = SchemaVersion + 1
	data, err := msgpack.Marshal(stale)
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Dir(c.pathFor(key)), 0o755))
	require.NoError(t, os.WriteFile(c.pathFor(key), data, 0o600))

	_, ok, err := c.Get(key)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCorruptEntry(t *testing.T) {
	c, err := Open(t.TempDir())
	require.NoError(t, err)
	key := Key([]byte("doc"), "fp")
	require.NoError(t, os.MkdirAll(filepath.Dir(c.pathFor(key)), 0o755))
	require.NoError(t, os.WriteFile(c.pathFor(key), []byte{0xc1}, 0o600))

	_, ok, err := c.Get(key)
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestDropAll(t *testing.T) {
	c, err := Open(filepath.Join(t.TempDir(), "cache"))
	require.NoError(t, err)
	key := Key([]byte("doc"), "fp")
	require.NoError(t, c.Put(key, samplePayload()))
	require.NoError(t, c.DropAll())

	_, ok, err := c.Get(key)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestNilCache(t *testing.T) {
	var c *Cache
	require.NoError(t, c.Put(Digest{}, samplePayload()))
	_, ok, err := c.Get(Digest{})
	require.NoError(t, err)
	assert.False(t, ok)
}
