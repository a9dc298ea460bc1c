package compiler

import (
	"strconv"

	"github.com/blackcoderx/postgen/pkg/rules"
)

// QueryParam is one compiled query-string parameter. Values are always
// strings; query strings have no other representation.
type QueryParam struct {
	Key         string
	Value       string
	Description string
}

// CompileQuery compiles a flat map of query-parameter rules into ordered
// key/value/description triples.
func CompileQuery(schema *rules.Schema) []QueryParam {
	if schema == nil {
		return nil
	}
	params := make([]QueryParam, 0, len(schema.Fields))
	for _, field := range schema.Fields {
		params = append(params, QueryParam{
			Key:         field.Name,
			Value:       ScalarString(field.Rule.Representative()),
			Description: Describe(field.Rule),
		})
	}
	return params
}

// ScalarString produces the string form of a rule's example value: a scalar
// default when one exists, else the first enumerated value, else a zero value
// for the declared type. Booleans map to "1"/"0".
func ScalarString(rep *rules.Variant) string {
	if rep == nil {
		return ""
	}
	if rep.HasDefault {
		if s, ok := scalarLiteral(rep.Default); ok {
			return s
		}
	}
	if len(rep.Values) > 0 {
		if s, ok := scalarLiteral(rep.Values[0]); ok {
			return s
		}
	}
	switch rep.Kind {
	case rules.KindString:
		return ""
	case rules.KindNumber:
		if rep.Integer {
			return "0"
		}
		return "0.0"
	case rules.KindBoolean:
		return "0"
	default:
		return ""
	}
}

// scalarLiteral stringifies scalar literals only; containers report false so
// the caller falls through to type-based generation.
func scalarLiteral(lit interface{}) (string, bool) {
	switch t := lit.(type) {
	case string:
		return t, true
	case bool:
		if t {
			return "1", true
		}
		return "0", true
	default:
		if f, ok := literalNumber(t); ok {
			return strconv.FormatFloat(f, 'f', -1, 64), true
		}
		return "", false
	}
}
