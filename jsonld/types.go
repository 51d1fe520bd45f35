package jsonld

// Types returns the flattened list of @type/type values in validated
// schema data, recursing into arrays and @graph members. A node with an
// array @graph contributes only its members' types.
func Types(data any) []string {
	types := []string{}

	switch v := data.(type) {
	case []any:
		for _, item := range v {
			types = append(types, Types(item)...)
		}

	case map[string]any:
		if graph, ok := v["@graph"].([]any); ok {
			for _, item := range graph {
				types = append(types, Types(item)...)
			}
			return types
		}
		types = append(types, typeValues(v["@type"])...)
		types = append(types, typeValues(v["type"])...)
	}

	return types
}

// typeValues normalizes a single @type value to a list of strings.
func typeValues(value any) []string {
	switch v := value.(type) {
	case string:
		return []string{v}
	case []any:
		var names []string
		for _, item := range v {
			if name, ok := item.(string); ok {
				names = append(names, name)
			}
		}
		return names
	}
	return nil
}
