package wgsl

import (
	"fmt"
	"strings"
)

// TokenCatalog lists the lexical surface of the language.
type TokenCatalog struct {
	Keywords                   []string                `json:"keywords" msgpack:"keywords" yaml:"keywords"`
	Attributes                 map[string]Attribute    `json:"attributes" msgpack:"attributes" yaml:"attributes"`
	BuiltinValues              map[string]BuiltinValue `json:"builtin_values" msgpack:"builtin_values" yaml:"builtin_values"`
	InterpolationTypeNames     []string                `json:"interpolation_type_names" msgpack:"interpolation_type_names" yaml:"interpolation_type_names"`
	InterpolationSamplingNames []string                `json:"interpolation_sampling_names" msgpack:"interpolation_sampling_names" yaml:"interpolation_sampling_names"`
	PrimitiveTypes             []string                `json:"primitive_types" msgpack:"primitive_types" yaml:"primitive_types"`
	TypeGenerators             []string                `json:"type_generators" msgpack:"type_generators" yaml:"type_generators"`
	TypeAliases                map[string]string       `json:"type_aliases" msgpack:"type_aliases" yaml:"type_aliases"`
}

// Attribute describes one `@name` attribute.
type Attribute struct {
	Description           string  `json:"description" msgpack:"description" yaml:"description"`
	DescriptionParameters *string `json:"description_parameters" msgpack:"description_parameters" yaml:"description_parameters"`
}

// BuiltinValue describes one `@builtin(name)` value and the stages it is available in.
type BuiltinValue struct {
	Stages   map[string]BuiltinValueStage `json:"stages" msgpack:"stages" yaml:"stages"`
	TypeName string                       `json:"type_name" msgpack:"type_name" yaml:"type_name"`
}

type BuiltinValueStage struct {
	Description string    `json:"description" msgpack:"description" yaml:"description"`
	Direction   Direction `json:"direction" msgpack:"direction" yaml:"direction"`
}

// Direction tells whether a builtin value flows into or out of a shader stage.
type Direction string

const (
	DirectionInput  Direction = "input"
	DirectionOutput Direction = "output"
)

// ParseDirection accepts the spellings used by the reference tables ("input", "Output", ...).
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "input", "in":
		return DirectionInput, nil
	case "output", "out":
		return DirectionOutput, nil
	default:
		return "", fmt.Errorf("unknown builtin direction %q (expected input|output)", s)
	}
}

// NewTokenCatalog returns a catalog with every collection allocated.
func NewTokenCatalog() TokenCatalog {
	return TokenCatalog{
		Keywords:                   []string{},
		Attributes:                 map[string]Attribute{},
		BuiltinValues:              map[string]BuiltinValue{},
		InterpolationTypeNames:     []string{},
		InterpolationSamplingNames: []string{},
		PrimitiveTypes:             []string{},
		TypeGenerators:             []string{},
		TypeAliases:                map[string]string{},
	}
}
