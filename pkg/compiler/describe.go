package compiler

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/blackcoderx/postgen/pkg/rules"
)

// Describe derives a compact single-line summary of a rule's constraints,
// used as the inline comment attached to compiled values and as query
// descriptions. An empty string means no description.
//
// The dump enumerates the constraint fields in a fixed order (default,
// values, length, nested) and skips absent ones; purely structural
// information such as the declared type contributes nothing. Internal line
// breaks are collapsed to single spaces.
func Describe(node *rules.Node) string {
	return collapse(describe(node, " "))
}

// DescribeMultiline is the path-variable form of Describe: the same dump but
// with one constraint per line and no collapsing. The divergence matches the
// established output of the collection format and is covered by tests.
func DescribeMultiline(node *rules.Node) string {
	return strings.TrimSpace(describe(node, "\n"))
}

func describe(node *rules.Node, sep string) string {
	if node == nil || len(node.Variants) == 0 {
		return ""
	}
	if len(node.Variants) > 1 {
		var parts []string
		for i := range node.Variants {
			v := &node.Variants[i]
			if v.Kind != rules.KindObject && v.Kind != rules.KindArray {
				continue
			}
			if s := formatVariant(keepOrStrip(v), sep); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, " | ")
	}

	v := &node.Variants[0]
	if v.Kind != rules.KindObject && v.Kind != rules.KindArray {
		return formatVariant(v, sep)
	}
	return formatVariant(keepOrStrip(v), sep)
}

// keepOrStrip keeps an object/array variant intact when its single nested
// child is primitive; otherwise it drops the recursive fields (schema,
// nested) so only the variant's own constraints are dumped.
func keepOrStrip(v *rules.Variant) *rules.Variant {
	if nestedIsPrimitive(v) {
		return v
	}
	stripped := *v
	stripped.Schema = nil
	stripped.Nested = nil
	return &stripped
}

func nestedIsPrimitive(v *rules.Variant) bool {
	if v.Schema != nil || v.Nested == nil {
		return false
	}
	rep := v.Nested.Representative()
	return rep != nil && rep.Kind != rules.KindObject && rep.Kind != rules.KindArray
}

// formatVariant renders the constraint dump, joining the present fields with
// sep. Returns "" when no field survives.
func formatVariant(v *rules.Variant, sep string) string {
	var parts []string
	if v.HasDefault {
		parts = append(parts, "default: "+compactLiteral(v.Default))
	}
	if len(v.Values) > 0 {
		parts = append(parts, "values: "+compactLiteral(v.Values))
	}
	if v.Length > 0 {
		parts = append(parts, "length: "+strconv.Itoa(v.Length))
	}
	if v.Nested != nil {
		if rep := v.Nested.Representative(); rep != nil {
			parts = append(parts, "nested: "+nestedSummary(rep))
		}
	}
	return strings.Join(parts, sep)
}

// nestedSummary renders a primitive nested rule inline, type first.
func nestedSummary(rep *rules.Variant) string {
	inner := []string{"type: " + string(rep.Kind)}
	if rep.HasDefault {
		inner = append(inner, "default: "+compactLiteral(rep.Default))
	}
	if len(rep.Values) > 0 {
		inner = append(inner, "values: "+compactLiteral(rep.Values))
	}
	return "{" + strings.Join(inner, ", ") + "}"
}

func compactLiteral(lit interface{}) string {
	b, err := json.Marshal(lit)
	if err != nil {
		return fmt.Sprintf("%v", lit)
	}
	return string(b)
}

// collapse folds line breaks and their following indentation into single
// spaces and trims the ends.
func collapse(s string) string {
	if s == "" {
		return ""
	}
	return strings.TrimSpace(strings.Join(strings.Fields(s), " "))
}
