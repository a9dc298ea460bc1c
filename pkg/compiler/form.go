package compiler

import (
	"encoding/json"

	"github.com/blackcoderx/postgen/pkg/rules"
)

// FormField is one entry of a multipart body: either a file-upload
// placeholder or a text field with a compiled scalar value.
type FormField struct {
	Key         string          `json:"key"`
	Value       string          `json:"value,omitempty"`
	Type        string          `json:"type"`
	Src         json.RawMessage `json:"src,omitempty"`
	Description string          `json:"description,omitempty"`
}

// nullSrc marks a file field with no preselected upload.
var nullSrc = json.RawMessage("null")

// CompileMultipart is the alternate body compiler for multipart encodings:
// each top-level field becomes a file placeholder when its representative
// rule is an object, otherwise a text field with the scalar string value.
func CompileMultipart(schema *rules.Schema) []FormField {
	if schema == nil {
		return nil
	}
	fields := make([]FormField, 0, len(schema.Fields))
	for _, field := range schema.Fields {
		rep := field.Rule.Representative()
		desc := Describe(field.Rule)
		if rep != nil && rep.Kind == rules.KindObject {
			fields = append(fields, FormField{
				Key:         field.Name,
				Type:        "file",
				Src:         nullSrc,
				Description: desc,
			})
			continue
		}
		fields = append(fields, FormField{
			Key:         field.Name,
			Type:        "text",
			Value:       ScalarString(rep),
			Description: desc,
		})
	}
	return fields
}
