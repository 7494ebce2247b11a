package fuzztests

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

const (
	maxSeedBytes = 64 << 10 // 64 KiB
	maxFuzzInput = 1 << 16
)

var referencePath = filepath.Join("..", "extract", "testdata", "reference.html")

// addDocumentSeeds adds the reference fixture, each of its sections on its
// own, and a few hand-written shapes.
func addDocumentSeeds(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte(`<h3 id="texture-builtin-functions">x</h3><h4><code>t</code></h4>`))
	f.Add([]byte(`<h3 id="atomic-builtin-functions">x</h3><h4><code>a</code></h4><pre>fn a() struct s {}</pre>`))
	f.Add([]byte(`<table class="data builtin"><tr><td>Overload</td><td>fn</td></tr></table>`))
	f.Add([]byte(`<h2 id="keyword-summary">k</h2><ul><li><code></code></li></ul>`))

	// #nosec G304 -- fixed repository path
	data, err := os.ReadFile(referencePath)
	if err != nil {
		return
	}
	f.Add(clampSeed(data))
	for _, part := range bytes.Split(data, []byte("<h3")) {
		f.Add(clampSeed(append([]byte("<h3"), part...)))
	}
}

// addSignatureSeeds adds signature strings in the shapes the reference uses.
func addSignatureSeeds(f *testing.F) {
	for _, s := range []string{
		"",
		"fn",
		"@const @must_use fn abs(e: T) -> T",
		"fn abs(e: vec < N, T >) -> vec < N, T >",
		"fn atomicAdd(p: ptr<AS, atomic<T>, read_write>, v: T) -> T fn atomicMax(p: T) -> T",
		"fn atomicCompareExchangeWeak(p: T) -> R struct R { old_value : T }",
		"fnfnfn struct",
		"fn é(x: ü)",
	} {
		f.Add(s)
	}
}

func clampSeed(data []byte) []byte {
	if len(data) > maxSeedBytes {
		data = data[:maxSeedBytes]
	}
	return append([]byte(nil), data...)
}

func clampInput(input []byte) []byte {
	if len(input) > maxFuzzInput {
		input = input[:maxFuzzInput]
	}
	return append([]byte(nil), input...)
}
