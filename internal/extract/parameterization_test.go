package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wgslspec/internal/diag"
	"wgslspec/internal/htmldoc"
	"wgslspec/internal/wgsl"
)

func TestClassifyClause(t *testing.T) {
	tests := []struct {
		clause string
		name   string
		want   wgsl.ParameterizationKind
		ok     bool
	}{
		{"T is f32, i32, or u32", "T", wgsl.TypesKind("f32", "i32", "u32"), true},
		{"T is f32, i32, u32", "T", wgsl.TypesKind("f32", "i32", "u32"), true},
		{"T is f32 , i32", "T", wgsl.TypesKind("f32", "i32"), true},
		{"A is read or write", "A", wgsl.TypesKind("read", "write"), true},
		{"T is", "T", wgsl.TypesKind(), true},
		{"e is a concrete scalar type", "e", wgsl.DescriptionKind("is a concrete scalar type"), true},
		{"T is an integer scalar", "T", wgsl.DescriptionKind("is an integer scalar"), true},
		{"T is concrete", "T", wgsl.DescriptionKind("is concrete"), true},
		{"T is constructible", "T", wgsl.DescriptionKind("is constructible"), true},
		{"N must be 2 , 3 or 4", "N", wgsl.DescriptionKind("must be 2, 3 or 4"), true},
		{"T", "", wgsl.ParameterizationKind{}, false},
		{"", "", wgsl.ParameterizationKind{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.clause, func(t *testing.T) {
			name, kind, ok := ClassifyClause(strings.Fields(tt.clause))
			require.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.name, name)
			assert.Equal(t, tt.want, kind)
		})
	}
}

func parseCell(t *testing.T, inner string) (*htmldoc.Document, *diag.Bag) {
	t.Helper()
	doc, err := htmldoc.ParseBytes([]byte("<table><tr><td id=\"cell\">" + inner + "</td></tr></table>"))
	require.NoError(t, err)
	return doc, diag.NewBag(0)
}

func TestParseParameterizationClauses(t *testing.T) {
	doc, bag := parseCell(t, "T is <code>f32</code>, <code>i32</code>, or <code>u32</code><br>S is a sampler<br><br>N<p>F is rgba8unorm</p>")
	p := ParseParameterization(doc.ByID("cell"), diag.BagReporter{Bag: bag}, diag.Location{Anchor: "test"})

	assert.Equal(t, map[string]wgsl.ParameterizationKind{
		"T": wgsl.TypesKind("f32", "i32", "u32"),
		"S": wgsl.DescriptionKind("is a sampler"),
		"F": wgsl.TypesKind("rgba8unorm"),
	}, p.Typevars)
	assert.Equal(t, 1, bag.CountByCode()[diag.ExtMalformedClause], "single-word clause is reported")
}

func TestParseParameterizationLastWins(t *testing.T) {
	doc, _ := parseCell(t, "T is f32<br>T is a float type")
	p := ParseParameterization(doc.ByID("cell"), nil, diag.Location{})
	assert.Equal(t, wgsl.DescriptionKind("is a float type"), p.Typevars["T"])
}

func TestParseParameterizationEmpty(t *testing.T) {
	doc, _ := parseCell(t, "")
	p := ParseParameterization(doc.ByID("cell"), nil, diag.Location{})
	assert.NotNil(t, p.Typevars)
	assert.Empty(t, p.Typevars)
}
