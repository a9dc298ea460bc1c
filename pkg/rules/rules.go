// Package rules defines the declarative validation-rule model that route
// files are written in. A rule node describes the shape of one value (type,
// default, enumerated candidates, nested schema); the compiler packages turn
// these nodes into concrete example values.
package rules

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Kind identifies the declared type of a rule variant.
type Kind string

const (
	KindString  Kind = "string"
	KindNumber  Kind = "number"
	KindBoolean Kind = "boolean"
	KindObject  Kind = "object"
	KindArray   Kind = "array"
)

// Variant is a single validation rule: a declared type plus the constraints
// that matter for example generation. An absent default is distinct from an
// explicit `default: null`, so presence is tracked separately.
type Variant struct {
	Kind       Kind
	HasDefault bool
	Default    interface{}
	Values     []interface{}
	Integer    bool    // numbers only
	Schema     *Schema // object fields, or per-index array rules
	Nested     *Node   // representative element rule for arrays/objects-as-lists
	Length     int     // 0 means unset
}

// Node is a rule position. It holds one or more variants; when several are
// given the first one is the representative used for all value and shape
// derivations, and the rest contribute only to descriptions.
type Node struct {
	Variants []Variant
}

// Representative returns the variant used for compilation, or nil when the
// node is empty or absent.
func (n *Node) Representative() *Variant {
	if n == nil || len(n.Variants) == 0 {
		return nil
	}
	return &n.Variants[0]
}

// UnmarshalYAML accepts either a single mapping (one variant) or a sequence
// of mappings (alternatives, first is representative).
func (n *Node) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.MappingNode:
		var v Variant
		if err := decodeVariant(value, &v); err != nil {
			return err
		}
		n.Variants = []Variant{v}
		return nil
	case yaml.SequenceNode:
		if len(value.Content) == 0 {
			return fmt.Errorf("line %d: rule list must not be empty", value.Line)
		}
		n.Variants = make([]Variant, 0, len(value.Content))
		for _, item := range value.Content {
			var v Variant
			if err := decodeVariant(item, &v); err != nil {
				return err
			}
			n.Variants = append(n.Variants, v)
		}
		return nil
	default:
		return fmt.Errorf("line %d: rule must be a mapping or a list of mappings", value.Line)
	}
}

func decodeVariant(node *yaml.Node, v *Variant) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: rule variant must be a mapping", node.Line)
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i].Value
		val := node.Content[i+1]
		var err error
		switch key {
		case "type":
			var s string
			if err = val.Decode(&s); err == nil {
				v.Kind = Kind(s)
			}
		case "default":
			v.HasDefault = true
			err = val.Decode(&v.Default)
		case "values":
			err = val.Decode(&v.Values)
		case "integer":
			err = val.Decode(&v.Integer)
		case "length":
			err = val.Decode(&v.Length)
		case "schema":
			v.Schema = &Schema{}
			err = v.Schema.UnmarshalYAML(val)
		case "nested":
			v.Nested = &Node{}
			err = v.Nested.UnmarshalYAML(val)
		default:
			// Unknown keys pass through silently so route files written
			// against a newer rule vocabulary still load.
		}
		if err != nil {
			return fmt.Errorf("rule field %q: %w", key, err)
		}
	}
	return nil
}

// Field is one named entry of a Schema.
type Field struct {
	Name string
	Rule *Node
}

// Schema is an ordered mapping from field name to rule. Order follows the
// YAML declaration order, which standard map decoding would lose.
type Schema struct {
	Fields []Field
}

// UnmarshalYAML decodes a YAML mapping while preserving key order.
func (s *Schema) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: schema must be a mapping", value.Line)
	}
	s.Fields = make([]Field, 0, len(value.Content)/2)
	for i := 0; i+1 < len(value.Content); i += 2 {
		name := value.Content[i].Value
		rule := &Node{}
		if err := rule.UnmarshalYAML(value.Content[i+1]); err != nil {
			return fmt.Errorf("schema field %q: %w", name, err)
		}
		s.Fields = append(s.Fields, Field{Name: name, Rule: rule})
	}
	return nil
}

// Len returns the number of fields; safe on a nil schema.
func (s *Schema) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Fields)
}

// Get returns the rule for a named field, or nil when absent.
func (s *Schema) Get(name string) *Node {
	if s == nil {
		return nil
	}
	for _, f := range s.Fields {
		if f.Name == name {
			return f.Rule
		}
	}
	return nil
}
