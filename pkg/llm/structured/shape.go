package structured

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/artem13815/founderkit/pkg/llm"
)

// ValidateShape checks data against a schema written as an example document,
// e.g. {"name": "string", "tags": ["string"], "level": "High|Low"}.
// Schemas that are not valid JSON cannot be checked and are accepted as is.
func ValidateShape(schema string, data json.RawMessage) error {
	var tmpl any
	if err := json.Unmarshal([]byte(strings.TrimSpace(schema)), &tmpl); err != nil {
		return nil
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return llm.NewError(llm.ErrParse, llm.ParseFailureMessage, err)
	}
	if path, want := match("$", tmpl, v); path != "" {
		return llm.NewError(llm.ErrSchemaMismatch, fmt.Sprintf("%s: expected %s", path, want), nil)
	}
	return nil
}

// match returns the first offending path and the expected kind, or "" when v fits tmpl.
func match(path string, tmpl, v any) (string, string) {
	switch t := tmpl.(type) {
	case nil:
		return "", ""
	case map[string]any:
		obj, ok := v.(map[string]any)
		if !ok {
			return path, "object"
		}
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			child, ok := obj[k]
			if !ok {
				return path + "." + k, "field to be present"
			}
			if p, want := match(path+"."+k, t[k], child); p != "" {
				return p, want
			}
		}
		return "", ""
	case []any:
		arr, ok := v.([]any)
		if !ok {
			return path, "array"
		}
		if len(t) == 0 {
			return "", ""
		}
		for i, el := range arr {
			if p, want := match(fmt.Sprintf("%s[%d]", path, i), t[0], el); p != "" {
				return p, want
			}
		}
		return "", ""
	case string:
		return matchLeaf(path, t, v)
	case float64:
		if _, ok := v.(float64); !ok {
			return path, "number"
		}
	case bool:
		if _, ok := v.(bool); !ok {
			return path, "boolean"
		}
	}
	return "", ""
}

func matchLeaf(path, kind string, v any) (string, string) {
	switch kind {
	case "number":
		if _, ok := v.(float64); !ok {
			return path, "number"
		}
	case "boolean":
		if _, ok := v.(bool); !ok {
			return path, "boolean"
		}
	default:
		s, ok := v.(string)
		if !ok {
			return path, "string"
		}
		if kind != "string" && strings.Contains(kind, "|") {
			for _, alt := range strings.Split(kind, "|") {
				if strings.EqualFold(strings.TrimSpace(alt), strings.TrimSpace(s)) {
					return "", ""
				}
			}
			return path, "one of " + kind
		}
	}
	return "", ""
}
