package blk

import "fmt"

// FieldError reports a present field whose JSON type does not match what the reader expects.
type FieldError struct {
	Field string
	Want  string
	Value any
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field %q: want %s, got %T (%v)", e.Field, e.Want, e.Value, e.Value)
}

// Number reads a numeric field. A missing or null field yields 0.
func Number(m map[string]any, key string) (float64, error) {
	v, ok := m[key]
	if !ok || v == nil {
		return 0, nil
	}
	switch n := v.(type) {
	case float64:
		return n, nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case bool:
		if n {
			return 1, nil
		}
		return 0, nil
	default:
		return 0, &FieldError{Field: key, Want: "number", Value: v}
	}
}

// Lenient reads a numeric field like Number but never fails: a value of the wrong
// type yields 0 and false.
func Lenient(m map[string]any, key string) (float64, bool) {
	v, err := Number(m, key)
	if err != nil {
		return 0, false
	}
	return v, true
}

// NumberOr reads a numeric field, returning def when the field is absent.
func NumberOr(m map[string]any, key string, def float64) (float64, error) {
	if v, ok := m[key]; !ok || v == nil {
		return def, nil
	}
	return Number(m, key)
}

// String reads a string field. Numbers are formatted, a missing field yields "".
func String(m map[string]any, key string) string {
	switch v := m[key].(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return fmt.Sprintf("%g", v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// Path walks nested objects and returns the map at the end of keys.
func Path(m map[string]any, keys ...string) (map[string]any, bool) {
	cur := m
	for _, k := range keys {
		next, ok := AsMap(cur[k])
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, true
}

// AsMap returns v as an object, merging a list of objects later-wins.
// Non-object list elements are ignored. An empty result from a list is still an object.
func AsMap(v any) (map[string]any, bool) {
	switch t := v.(type) {
	case map[string]any:
		return t, true
	case []any:
		merged := make(map[string]any)
		for _, part := range t {
			if pm, ok := part.(map[string]any); ok {
				for k, pv := range pm {
					merged[k] = pv
				}
			}
		}
		return merged, true
	default:
		return nil, false
	}
}

// First returns v as an object, taking the first element when v is a list.
func First(v any) (map[string]any, bool) {
	switch t := v.(type) {
	case map[string]any:
		return t, true
	case []any:
		if len(t) == 0 {
			return map[string]any{}, true
		}
		m, ok := t[0].(map[string]any)
		return m, ok
	default:
		return nil, false
	}
}

// Each calls fn for every object in v, which may be a single object or a list of objects.
func Each(v any, fn func(map[string]any)) {
	switch t := v.(type) {
	case map[string]any:
		fn(t)
	case []any:
		for _, e := range t {
			if m, ok := e.(map[string]any); ok {
				fn(m)
			}
		}
	}
}
