package compiler

import (
	"strconv"
	"strings"
)

// Renderer serializes compiled example values as indented JSON text,
// optionally annotated with trailing line comments taken from each node's
// description. With Comments off the output is plain indented JSON.
type Renderer struct {
	Comments bool
}

// Render serializes a value tree. The root never carries a trailing comma or
// comment.
func (r Renderer) Render(v *Value) string {
	root := *v
	root.Description = ""
	return r.render(&root, true, 0)
}

// render emits one value at the given indent level. The returned text ends
// with the trailing comma (when the value is not the last sibling) and the
// description comment, ready to be placed on its line.
func (r Renderer) render(v *Value, isLast bool, depth int) string {
	var b strings.Builder
	b.WriteString(r.valueText(v, depth))
	if !isLast {
		b.WriteString(",")
	}
	if r.Comments && v.Description != "" {
		b.WriteString(" // ")
		b.WriteString(v.Description)
	}
	return b.String()
}

func (r Renderer) valueText(v *Value, depth int) string {
	switch v.Kind {
	case Bool:
		return strconv.FormatBool(v.Bool)
	case Number:
		return strconv.FormatFloat(v.Number, 'f', -1, 64)
	case String:
		return `"` + v.Str + `"`
	case Object:
		if len(v.Members) == 0 {
			return "{}"
		}
		var b strings.Builder
		b.WriteString("{\n")
		for i, m := range v.Members {
			b.WriteString(indent(depth + 1))
			b.WriteString(`"` + m.Key + `": `)
			b.WriteString(r.render(m.Value, i == len(v.Members)-1, depth+1))
			b.WriteString("\n")
		}
		b.WriteString(indent(depth) + "}")
		return b.String()
	case Array:
		if len(v.Items) == 0 {
			return "[]"
		}
		var b strings.Builder
		b.WriteString("[\n")
		for i, item := range v.Items {
			b.WriteString(indent(depth + 1))
			b.WriteString(r.render(item, i == len(v.Items)-1, depth+1))
			b.WriteString("\n")
		}
		b.WriteString(indent(depth) + "]")
		return b.String()
	default:
		return "null"
	}
}

func indent(depth int) string {
	return strings.Repeat("\t", depth)
}
