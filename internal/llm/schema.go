package llm

// BuildESADJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a generic
// map. We pass it to the model as a structured output constraint and also use
// it locally to validate the response.
func BuildESADJSONSchema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"transport_details":   textProp(),
			"transaction_details": textProp(),
			"package_details":     textProp(),
			"regime_details":      textProp(),
			"goods_description":   textProp(),
			"confidence":          map[string]any{"type": "number", "minimum": 0.0, "maximum": 1.0},
		},
		// Every fragment is optional: a bill of lading with no packaging
		// detail is still a valid extraction. Downstream classification
		// falls back per box.
		"required": []string{},
	}
}

func textProp() map[string]any {
	return map[string]any{"type": "string"}
}
