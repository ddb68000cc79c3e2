// Package schema holds the JSON-Schema documents enforced at the HTTP
// boundary, built as generic maps so tests and handlers share one
// definition.
package schema

// CorrectionSchema constrains the PATCH payload for extracted-field
// corrections: only the named fields are accepted, each independently
// optional and nullable. Arbitrary keys are rejected here so the merge
// step never sees them.
func CorrectionSchema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"minProperties":        1,
		"properties": map[string]any{
			// Academic fields
			"student_name":    nullable("string"),
			"university":      nullable("string"),
			"course":          nullable("string"),
			"percentage":      nullable("number"),
			"gpa":             nullable("number"),
			"year_of_passing": nullable("integer"),
			// Financial fields
			"bank_name":         nullable("string"),
			"account_holder":    nullable("string"),
			"available_balance": nullable("number"),
			"date":              nullable("string"),
		},
	}
}

// EligibilityRequestSchema constrains the eligibility-check request:
// a document reference plus exactly the four IELTS bands, all numeric.
func EligibilityRequestSchema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"required":             []string{"document_id", "ielts_scores"},
		"properties": map[string]any{
			"document_id": map[string]any{"type": "integer", "minimum": 1},
			"ielts_scores": map[string]any{
				"type":                 "object",
				"additionalProperties": false,
				"required":             []string{"listening", "reading", "writing", "speaking"},
				"properties": map[string]any{
					"listening": bandProp(),
					"reading":   bandProp(),
					"writing":   bandProp(),
					"speaking":  bandProp(),
				},
			},
		},
	}
}

func nullable(typ string) map[string]any {
	return map[string]any{"type": []string{typ, "null"}}
}

func bandProp() map[string]any {
	return map[string]any{"type": "number"}
}
