package wgsl

import (
	"encoding/json"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

// FunctionCatalog and Parameterization are transparent wrappers: every codec sees only
// the inner map. A nil map is written as an empty one, so all codecs decode zero
// values to an empty, non-nil map.

func (c FunctionCatalog) MarshalJSON() ([]byte, error) {
	return json.Marshal(orEmpty(c.Functions))
}

func (c *FunctionCatalog) UnmarshalJSON(data []byte) error {
	var m map[string]Function
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	c.Functions = orEmpty(m)
	return nil
}

func (c FunctionCatalog) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.Encode(orEmpty(c.Functions))
}

func (c *FunctionCatalog) DecodeMsgpack(dec *msgpack.Decoder) error {
	var m map[string]Function
	if err := dec.Decode(&m); err != nil {
		return err
	}
	c.Functions = orEmpty(m)
	return nil
}

func (c FunctionCatalog) MarshalYAML() (interface{}, error) {
	return orEmpty(c.Functions), nil
}

func (c *FunctionCatalog) UnmarshalYAML(value *yaml.Node) error {
	var m map[string]Function
	if err := value.Decode(&m); err != nil {
		return err
	}
	c.Functions = orEmpty(m)
	return nil
}

func (p Parameterization) MarshalJSON() ([]byte, error) {
	return json.Marshal(orEmpty(p.Typevars))
}

func (p *Parameterization) UnmarshalJSON(data []byte) error {
	var m map[string]ParameterizationKind
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	p.Typevars = orEmpty(m)
	return nil
}

func (p Parameterization) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.Encode(orEmpty(p.Typevars))
}

func (p *Parameterization) DecodeMsgpack(dec *msgpack.Decoder) error {
	var m map[string]ParameterizationKind
	if err := dec.Decode(&m); err != nil {
		return err
	}
	p.Typevars = orEmpty(m)
	return nil
}

func (p Parameterization) MarshalYAML() (interface{}, error) {
	return orEmpty(p.Typevars), nil
}

func (p *Parameterization) UnmarshalYAML(value *yaml.Node) error {
	var m map[string]ParameterizationKind
	if err := value.Decode(&m); err != nil {
		return err
	}
	p.Typevars = orEmpty(m)
	return nil
}

type typesVariant struct {
	Types []string `json:"types" yaml:"types"`
}

type descriptionVariant struct {
	Description string `json:"description" yaml:"description"`
}

func (k ParameterizationKind) MarshalJSON() ([]byte, error) {
	switch k.Tag {
	case KindTypes:
		return json.Marshal(typesVariant{Types: k.Types})
	case KindDescription:
		return json.Marshal(descriptionVariant{Description: k.Description})
	}
	return nil, fmt.Errorf("wgsl: parameterization kind without tag")
}

func (k *ParameterizationKind) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw) != 1 {
		return fmt.Errorf("wgsl: parameterization kind must have exactly one key, got %d", len(raw))
	}
	for key, value := range raw {
		switch key {
		case "types":
			var types []string
			if err := json.Unmarshal(value, &types); err != nil {
				return fmt.Errorf("wgsl: parameterization types: %w", err)
			}
			*k = TypesKind(types...)
		case "description":
			var text string
			if err := json.Unmarshal(value, &text); err != nil {
				return fmt.Errorf("wgsl: parameterization description: %w", err)
			}
			*k = DescriptionKind(text)
		default:
			return fmt.Errorf("wgsl: unknown parameterization kind %q", key)
		}
	}
	return nil
}

func (k ParameterizationKind) EncodeMsgpack(enc *msgpack.Encoder) error {
	if k.Tag != KindTypes && k.Tag != KindDescription {
		return fmt.Errorf("wgsl: parameterization kind without tag")
	}
	if err := enc.EncodeMapLen(1); err != nil {
		return err
	}
	if err := enc.EncodeString(k.Tag.String()); err != nil {
		return err
	}
	if k.Tag == KindTypes {
		return enc.Encode(k.Types)
	}
	return enc.EncodeString(k.Description)
}

func (k *ParameterizationKind) DecodeMsgpack(dec *msgpack.Decoder) error {
	n, err := dec.DecodeMapLen()
	if err != nil {
		return err
	}
	if n != 1 {
		return fmt.Errorf("wgsl: parameterization kind must have exactly one key, got %d", n)
	}
	key, err := dec.DecodeString()
	if err != nil {
		return err
	}
	switch key {
	case "types":
		var types []string
		if err := dec.Decode(&types); err != nil {
			return fmt.Errorf("wgsl: parameterization types: %w", err)
		}
		*k = TypesKind(types...)
	case "description":
		text, err := dec.DecodeString()
		if err != nil {
			return fmt.Errorf("wgsl: parameterization description: %w", err)
		}
		*k = DescriptionKind(text)
	default:
		return fmt.Errorf("wgsl: unknown parameterization kind %q", key)
	}
	return nil
}

func (k ParameterizationKind) MarshalYAML() (interface{}, error) {
	switch k.Tag {
	case KindTypes:
		return typesVariant{Types: k.Types}, nil
	case KindDescription:
		return descriptionVariant{Description: k.Description}, nil
	}
	return nil, fmt.Errorf("wgsl: parameterization kind without tag")
}

func (k *ParameterizationKind) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode || len(value.Content) != 2 {
		return fmt.Errorf("wgsl: line %d: parameterization kind must be a single-key mapping", value.Line)
	}
	key, body := value.Content[0].Value, value.Content[1]
	switch key {
	case "types":
		var types []string
		if err := body.Decode(&types); err != nil {
			return fmt.Errorf("wgsl: parameterization types: %w", err)
		}
		*k = TypesKind(types...)
	case "description":
		var text string
		if err := body.Decode(&text); err != nil {
			return fmt.Errorf("wgsl: parameterization description: %w", err)
		}
		*k = DescriptionKind(text)
	default:
		return fmt.Errorf("wgsl: line %d: unknown parameterization kind %q", value.Line, key)
	}
	return nil
}

func orEmpty[K comparable, V any](m map[K]V) map[K]V {
	if m == nil {
		return map[K]V{}
	}
	return m
}
