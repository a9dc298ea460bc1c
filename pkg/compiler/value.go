// Package compiler turns validation-rule trees into concrete example values,
// query parameter lists, form fields, URL locations and annotated JSON text.
package compiler

import (
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/blackcoderx/postgen/pkg/rules"
)

// ValueKind identifies the JSON shape of a compiled example value.
type ValueKind int

const (
	Null ValueKind = iota
	Bool
	Number
	String
	Object
	Array
)

// Member is one ordered key/value pair of an object value.
type Member struct {
	Key   string
	Value *Value
}

// Value is a compiled example value: a JSON-compatible tree where every node
// may carry a description used for inline comment emission.
type Value struct {
	Kind        ValueKind
	Bool        bool
	Number      float64
	Str         string
	Members     []Member // Kind == Object
	Items       []*Value // Kind == Array
	Description string
}

// Interface converts the value back to plain Go data, ignoring descriptions.
func (v *Value) Interface() interface{} {
	if v == nil {
		return nil
	}
	switch v.Kind {
	case Bool:
		return v.Bool
	case Number:
		return v.Number
	case String:
		return v.Str
	case Object:
		m := make(map[string]interface{}, len(v.Members))
		for _, member := range v.Members {
			m[member.Key] = member.Value.Interface()
		}
		return m
	case Array:
		items := make([]interface{}, 0, len(v.Items))
		for _, item := range v.Items {
			items = append(items, item.Interface())
		}
		return items
	default:
		return nil
	}
}

// Compile turns one rule node into an example value. When the node holds
// alternatives only the representative (first) variant shapes the result.
// Malformed or partially specified rules never fail; they degrade to null or
// empty containers so evolving rule vocabularies keep compiling.
func Compile(node *rules.Node) *Value {
	rep := node.Representative()
	if rep == nil {
		return &Value{Kind: Null}
	}
	if rep.HasDefault {
		return fromLiteral(rep.Default)
	}
	switch rep.Kind {
	case rules.KindBoolean:
		return &Value{Kind: Bool, Bool: false}
	case rules.KindString:
		if len(rep.Values) > 0 {
			if s := literalString(rep.Values[0]); s != "" {
				return &Value{Kind: String, Str: s}
			}
		}
		return &Value{Kind: String}
	case rules.KindNumber:
		if len(rep.Values) > 0 {
			if f, ok := literalNumber(rep.Values[0]); ok && !math.IsInf(f, 0) && !math.IsNaN(f) {
				return &Value{Kind: Number, Number: f}
			}
		}
		return &Value{Kind: Number}
	case rules.KindObject:
		return compileObject(rep.Schema)
	case rules.KindArray:
		return compileArray(rep)
	default:
		return &Value{Kind: Null}
	}
}

func compileObject(schema *rules.Schema) *Value {
	obj := &Value{Kind: Object}
	if schema == nil {
		return obj
	}
	obj.Members = make([]Member, 0, len(schema.Fields))
	for _, field := range schema.Fields {
		child := Compile(field.Rule)
		child.Description = Describe(field.Rule)
		obj.Members = append(obj.Members, Member{Key: field.Name, Value: child})
	}
	return obj
}

// compileArray builds the element list. An explicit length wins over the
// schema length; indices beyond an explicit schema are filled by compiling
// the nested rule, the same as every other branch.
func compileArray(rep *rules.Variant) *Value {
	arr := &Value{Kind: Array, Items: []*Value{}}
	if rep.Schema != nil {
		total := rep.Schema.Len()
		if rep.Length > total && rep.Nested != nil {
			total = rep.Length
		}
		for i := 0; i < total; i++ {
			if i < rep.Schema.Len() {
				arr.Items = append(arr.Items, Compile(rep.Schema.Fields[i].Rule))
			} else {
				arr.Items = append(arr.Items, Compile(rep.Nested))
			}
		}
		return arr
	}
	if rep.Nested != nil {
		length := rep.Length
		if length <= 0 {
			length = 1
		}
		elem := Compile(rep.Nested)
		for i := 0; i < length; i++ {
			arr.Items = append(arr.Items, elem)
		}
	}
	return arr
}

// fromLiteral converts a verbatim default into a Value tree. Map keys are
// sorted for deterministic output; YAML decodes mappings into unordered maps.
func fromLiteral(lit interface{}) *Value {
	switch t := lit.(type) {
	case nil:
		return &Value{Kind: Null}
	case bool:
		return &Value{Kind: Bool, Bool: t}
	case string:
		return &Value{Kind: String, Str: t}
	case []interface{}:
		arr := &Value{Kind: Array, Items: make([]*Value, 0, len(t))}
		for _, item := range t {
			arr.Items = append(arr.Items, fromLiteral(item))
		}
		return arr
	case map[string]interface{}:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		obj := &Value{Kind: Object, Members: make([]Member, 0, len(t))}
		for _, k := range keys {
			obj.Members = append(obj.Members, Member{Key: k, Value: fromLiteral(t[k])})
		}
		return obj
	default:
		if f, ok := literalNumber(t); ok {
			return &Value{Kind: Number, Number: f}
		}
		return &Value{Kind: String, Str: fmt.Sprintf("%v", t)}
	}
}

func literalNumber(lit interface{}) (float64, bool) {
	switch t := lit.(type) {
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	case uint64:
		return float64(t), true
	case float32:
		return float64(t), true
	case float64:
		return t, true
	default:
		return 0, false
	}
}

func literalString(lit interface{}) string {
	switch t := lit.(type) {
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case nil:
		return ""
	default:
		if f, ok := literalNumber(t); ok {
			return strconv.FormatFloat(f, 'f', -1, 64)
		}
		return fmt.Sprintf("%v", t)
	}
}
