package bridge

import "fmt"

// Helpers for reading deserialized reply mappings. JSON transports hand back
// map[string]any with float64 numbers; these coerce without caring which
// transport produced the value.

// Maps converts a reply into a slice of mappings.
func Maps(v any) ([]map[string]any, error) {
	if v == nil {
		return nil, nil
	}
	items, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("expected list reply, got %T", v)
	}
	out := make([]map[string]any, 0, len(items))
	for _, item := range items {
		m, ok := Map(item)
		if !ok {
			return nil, fmt.Errorf("expected mapping in list reply, got %T", item)
		}
		out = append(out, m)
	}
	return out, nil
}

// Map converts a reply value into a mapping.
func Map(v any) (map[string]any, bool) {
	m, ok := v.(map[string]any)
	return m, ok
}

// String reads a string field, returning "" when absent.
func String(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}

// Float reads a numeric field, returning 0 when absent.
func Float(m map[string]any, key string) float64 {
	switch n := m[key].(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	}
	return 0
}

// Int reads a numeric field as an int, returning 0 when absent.
func Int(m map[string]any, key string) int {
	return int(Float(m, key))
}

// Bool reads a boolean field, returning false when absent.
func Bool(m map[string]any, key string) bool {
	b, _ := m[key].(bool)
	return b
}

// List reads a list field, returning nil when absent.
func List(m map[string]any, key string) []any {
	l, _ := m[key].([]any)
	return l
}
