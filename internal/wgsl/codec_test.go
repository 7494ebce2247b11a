package wgsl

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

func sampleTokens() TokenCatalog {
	return TokenCatalog{
		Keywords: []string{"alias", "fn", "let"},
		Attributes: map[string]Attribute{
			"align":    {Description: "Constrains the placement of a structure member in memory.", DescriptionParameters: StringPtr("Must be a const-expression.")},
			"compute":  {Description: "Declares the function to be a compute shader entry point."},
			"location": {Description: "Specifies a part of the user-defined IO of an entry point."},
		},
		BuiltinValues: map[string]BuiltinValue{
			"position": {
				Stages: map[string]BuiltinValueStage{
					"vertex":   {Description: "Output position of the current vertex.", Direction: DirectionOutput},
					"fragment": {Description: "Framebuffer position of the current fragment.", Direction: DirectionInput},
				},
				TypeName: "vec4<f32>",
			},
		},
		InterpolationTypeNames:     []string{"flat", "linear", "perspective"},
		InterpolationSamplingNames: []string{"center", "centroid", "sample"},
		PrimitiveTypes:             []string{"bool", "f16", "f32", "i32", "u32"},
		TypeGenerators:             []string{"array", "atomic", "vec2"},
		TypeAliases:                map[string]string{"vec3f": "vec3<f32>", "vec4i": "vec4<i32>"},
	}
}

func sampleFunctions() FunctionCatalog {
	return FunctionCatalog{Functions: map[string]Function{
		"abs": {
			Overloads: []FunctionOverload{{
				Signature: "@const @must_use fn abs(e: T) -> T",
				Parameterization: Parameterization{Typevars: map[string]ParameterizationKind{
					"T": TypesKind("f32", "i32", "u32"),
				}},
				Description: StringPtr("The absolute value of e."),
			}},
			Parameters: []FunctionParameter{{Name: "e", Description: "The value."}},
		},
		"textureSample": {
			Overloads: []FunctionOverload{{
				Signature: "fn textureSample(t: texture_2d<f32>, s: sampler, coords: vec2<f32>) -> vec4<f32>",
				Parameterization: Parameterization{Typevars: map[string]ParameterizationKind{
					"S": DescriptionKind("is a concrete scalar type"),
				}},
			}},
			Parameters:  []FunctionParameter{{Name: "t", Description: "The sampled texture."}},
			Description: StringPtr("Samples a texture.\n\nReturns:\n\nThe sampled value."),
		},
	}}
}

func TestParameterizationKindJSONShape(t *testing.T) {
	data, err := json.Marshal(TypesKind("f32", "i32"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"types":["f32","i32"]}`, string(data))

	data, err = json.Marshal(DescriptionKind("is a concrete scalar type"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"description":"is a concrete scalar type"}`, string(data))

	_, err = json.Marshal(ParameterizationKind{})
	assert.Error(t, err)
}

func TestFunctionCatalogIsTransparent(t *testing.T) {
	data, err := json.Marshal(sampleFunctions())
	require.NoError(t, err)

	var raw map[string]map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &raw))
	require.Contains(t, raw, "abs")
	assert.Contains(t, raw["abs"], "overloads")
	assert.Contains(t, raw["abs"], "parameters")
	assert.Equal(t, "null", string(raw["abs"]["description"]))
}

func TestTokenCatalogFieldNames(t *testing.T) {
	data, err := json.Marshal(NewTokenCatalog())
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"keywords": [],
		"attributes": {},
		"builtin_values": {},
		"interpolation_type_names": [],
		"interpolation_sampling_names": [],
		"primitive_types": [],
		"type_generators": [],
		"type_aliases": {}
	}`, string(data))
}

func TestJSONRoundTrip(t *testing.T) {
	tokens, functions := sampleTokens(), sampleFunctions()

	data, err := json.Marshal(tokens)
	require.NoError(t, err)
	var gotTokens TokenCatalog
	require.NoError(t, json.Unmarshal(data, &gotTokens))
	assert.Equal(t, tokens, gotTokens)

	data, err = json.Marshal(functions)
	require.NoError(t, err)
	var gotFunctions FunctionCatalog
	require.NoError(t, json.Unmarshal(data, &gotFunctions))
	assert.Equal(t, functions, gotFunctions)
}

func TestMsgpackRoundTrip(t *testing.T) {
	tokens, functions := sampleTokens(), sampleFunctions()

	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	require.NoError(t, enc.Encode(tokens))
	require.NoError(t, enc.Encode(functions))

	dec := msgpack.NewDecoder(&buf)
	var gotTokens TokenCatalog
	var gotFunctions FunctionCatalog
	require.NoError(t, dec.Decode(&gotTokens))
	require.NoError(t, dec.Decode(&gotFunctions))
	assert.Equal(t, tokens, gotTokens)
	assert.Equal(t, functions, gotFunctions)
}

func TestYAMLRoundTrip(t *testing.T) {
	functions := sampleFunctions()

	data, err := yaml.Marshal(functions)
	require.NoError(t, err)
	assert.Contains(t, string(data), "types:")

	var got FunctionCatalog
	require.NoError(t, yaml.Unmarshal(data, &got))
	assert.Equal(t, functions, got)
}

func TestZeroValuesDecodeToEmptyMaps(t *testing.T) {
	codecs := map[string]struct {
		marshal   func(any) ([]byte, error)
		unmarshal func([]byte, any) error
	}{
		"json":    {json.Marshal, json.Unmarshal},
		"msgpack": {msgpack.Marshal, msgpack.Unmarshal},
		"yaml":    {yaml.Marshal, yaml.Unmarshal},
	}
	for name, c := range codecs {
		t.Run(name, func(t *testing.T) {
			data, err := c.marshal(FunctionOverload{Signature: "fn f()"})
			require.NoError(t, err)
			var overload FunctionOverload
			require.NoError(t, c.unmarshal(data, &overload))
			assert.NotNil(t, overload.Parameterization.Typevars)
			assert.Empty(t, overload.Parameterization.Typevars)

			data, err = c.marshal(FunctionCatalog{})
			require.NoError(t, err)
			var catalog FunctionCatalog
			require.NoError(t, c.unmarshal(data, &catalog))
			assert.NotNil(t, catalog.Functions)
			assert.Empty(t, catalog.Functions)
		})
	}
}

func TestUnknownKindRejected(t *testing.T) {
	var k ParameterizationKind
	assert.Error(t, json.Unmarshal([]byte(`{"shapes":["f32"]}`), &k))
	assert.Error(t, json.Unmarshal([]byte(`{"types":["f32"],"description":"x"}`), &k))
	assert.Error(t, yaml.Unmarshal([]byte("shapes: [f32]\n"), &k))
}

func TestParseDirection(t *testing.T) {
	cases := map[string]Direction{
		"input":   DirectionInput,
		" Input ": DirectionInput,
		"output":  DirectionOutput,
		"OUT":     DirectionOutput,
	}
	for in, want := range cases {
		got, err := ParseDirection(in)
		if err != nil {
			t.Fatalf("ParseDirection(%q) error: %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseDirection(%q) = %q, want %q", in, got, want)
		}
	}
	if _, err := ParseDirection("sideways"); err == nil {
		t.Fatalf("ParseDirection(sideways) expected error")
	}
}
