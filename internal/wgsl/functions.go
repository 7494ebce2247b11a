package wgsl

import "sort"

// FunctionCatalog maps builtin function names to their records.
type FunctionCatalog struct {
	Functions map[string]Function
}

// NewFunctionCatalog returns an empty catalog.
func NewFunctionCatalog() FunctionCatalog {
	return FunctionCatalog{Functions: map[string]Function{}}
}

// Names returns the function names in lexicographic order.
func (c FunctionCatalog) Names() []string {
	names := make([]string, 0, len(c.Functions))
	for name := range c.Functions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

type Function struct {
	Overloads   []FunctionOverload  `json:"overloads" msgpack:"overloads" yaml:"overloads"`
	Parameters  []FunctionParameter `json:"parameters" msgpack:"parameters" yaml:"parameters"`
	Description *string             `json:"description" msgpack:"description" yaml:"description"`
}

type FunctionOverload struct {
	Signature        string           `json:"signature" msgpack:"signature" yaml:"signature"`
	Parameterization Parameterization `json:"parameterization" msgpack:"parameterization" yaml:"parameterization"`
	Description      *string          `json:"description" msgpack:"description" yaml:"description"`
}

type FunctionParameter struct {
	Name        string `json:"name" msgpack:"name" yaml:"name"`
	Description string `json:"description" msgpack:"description" yaml:"description"`
}

// Parameterization describes the valid values of the type variables of one overload.
type Parameterization struct {
	Typevars map[string]ParameterizationKind
}

// NewParameterization returns a parameterization without type variables.
func NewParameterization() Parameterization {
	return Parameterization{Typevars: map[string]ParameterizationKind{}}
}

// KindTag selects the active member of ParameterizationKind.
type KindTag uint8

const (
	// KindTypes is an enumerated list of concrete types.
	KindTypes KindTag = iota + 1
	// KindDescription is a human-readable constraint.
	KindDescription
)

func (t KindTag) String() string {
	switch t {
	case KindTypes:
		return "types"
	case KindDescription:
		return "description"
	}
	return "unknown"
}

// ParameterizationKind is either a list of types or a free-text description.
type ParameterizationKind struct {
	Tag         KindTag
	Types       []string
	Description string
}

// TypesKind builds the enumerated-types variant.
func TypesKind(types ...string) ParameterizationKind {
	if types == nil {
		types = []string{}
	}
	return ParameterizationKind{Tag: KindTypes, Types: types}
}

// DescriptionKind builds the free-text variant.
func DescriptionKind(text string) ParameterizationKind {
	return ParameterizationKind{Tag: KindDescription, Description: text}
}

// StringPtr is a helper for the optional description fields.
func StringPtr(s string) *string { return &s }
