package postman

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// collectionSchema captures the output shape the rest of the toolchain
// depends on. It is intentionally narrower than the full upstream collection
// schema; the point is catching assembly bugs before a broken document is
// written or uploaded.
const collectionSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"required": ["info", "item"],
	"properties": {
		"info": {
			"type": "object",
			"required": ["name", "schema"],
			"properties": {
				"name": {"type": "string", "minLength": 1},
				"schema": {"type": "string", "format": "uri"}
			}
		},
		"item": {"$ref": "#/definitions/items"}
	},
	"definitions": {
		"items": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["name"],
				"properties": {
					"name": {"type": "string"},
					"item": {"$ref": "#/definitions/items"},
					"request": {
						"type": "object",
						"required": ["method", "url"],
						"properties": {
							"method": {"type": "string"},
							"header": {"type": "array"},
							"url": {
								"type": "object",
								"required": ["raw", "host", "path"]
							}
						}
					},
					"response": {"type": "array"}
				},
				"oneOf": [
					{"required": ["item"]},
					{"required": ["request", "response"]}
				]
			}
		}
	}
}`

// Validate checks an assembled collection against the embedded output
// schema. Violations are fatal for the build.
func Validate(col *Collection) error {
	doc, err := json.Marshal(col)
	if err != nil {
		return fmt.Errorf("failed to marshal collection: %w", err)
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(collectionSchema),
		gojsonschema.NewBytesLoader(doc),
	)
	if err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	if result.Valid() {
		return nil
	}

	issues := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		issues = append(issues, desc.String())
	}
	return fmt.Errorf("collection does not match output schema:\n  %s", strings.Join(issues, "\n  "))
}
