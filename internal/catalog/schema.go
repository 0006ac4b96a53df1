package catalog

// Schema is the JSON Schema a catalog override file must satisfy.
var Schema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"categories": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"name": map[string]any{
						"type":      "string",
						"minLength": 1,
					},
					"keywords": map[string]any{
						"type":     "array",
						"minItems": 1,
						"items":    map[string]any{"type": "string", "minLength": 1},
					},
					"fix":   map[string]any{"type": "string"},
					"drill": map[string]any{"type": "string"},
					"mistakes": map[string]any{
						"type":  "array",
						"items": map[string]any{"type": "string"},
					},
				},
				"required":             []any{"name", "keywords"},
				"additionalProperties": false,
			},
		},
	},
	"required":             []any{"categories"},
	"additionalProperties": false,
}
