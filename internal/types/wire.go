package types

import (
	"math"

	"github.com/MrZoidberg/zep-go/internal/errors"
)

// Wire mapping helpers. A wire mapping is a string-keyed map whose values
// are JSON-compatible: string, integer, float, bool, nil, sequence, or
// nested mapping. encoding/json decodes every number as float64, but
// callers may also hand-build maps with native Go ints and float32 slices,
// so the numeric readers accept both shapes.
//
// All helpers are pure: they never mutate the input mapping and hold no
// shared state, so concurrent conversions on independent inputs are safe.

func reqString(m map[string]any, entity, field string) (string, error) {
	v, ok := m[field]
	if !ok || v == nil {
		return "", errors.MissingField(entity, field)
	}
	s, ok := v.(string)
	if !ok {
		return "", errors.TypeMismatch(entity, field, "string", v)
	}
	return s, nil
}

func optString(m map[string]any, entity, field string) (string, error) {
	v, ok := m[field]
	if !ok || v == nil {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", errors.TypeMismatch(entity, field, "string", v)
	}
	return s, nil
}

func reqInt(m map[string]any, entity, field string) (int, error) {
	v, ok := m[field]
	if !ok || v == nil {
		return 0, errors.MissingField(entity, field)
	}
	n, ok := intValue(v)
	if !ok {
		return 0, errors.TypeMismatch(entity, field, "integer", v)
	}
	return n, nil
}

func optInt(m map[string]any, entity, field string) (*int, error) {
	v, ok := m[field]
	if !ok || v == nil {
		return nil, nil
	}
	n, ok := intValue(v)
	if !ok {
		return nil, errors.TypeMismatch(entity, field, "integer", v)
	}
	return &n, nil
}

func optFloat(m map[string]any, entity, field string) (*float64, error) {
	v, ok := m[field]
	if !ok || v == nil {
		return nil, nil
	}
	f, ok := floatValue(v)
	if !ok {
		return nil, errors.TypeMismatch(entity, field, "number", v)
	}
	return &f, nil
}

func optBool(m map[string]any, entity, field string) (*bool, error) {
	v, ok := m[field]
	if !ok || v == nil {
		return nil, nil
	}
	b, ok := v.(bool)
	if !ok {
		return nil, errors.TypeMismatch(entity, field, "boolean", v)
	}
	return &b, nil
}

// optMapping reads a nested string-keyed mapping. Absent and nil both
// return nil; the caller decides whether nil defaults to an empty map.
func optMapping(m map[string]any, entity, field string) (map[string]any, error) {
	v, ok := m[field]
	if !ok || v == nil {
		return nil, nil
	}
	nested, ok := v.(map[string]any)
	if !ok {
		return nil, errors.TypeMismatch(entity, field, "mapping", v)
	}
	return nested, nil
}

// optEmbedding reads an ordered sequence of numbers into a float32 vector.
func optEmbedding(m map[string]any, entity, field string) ([]float32, error) {
	v, ok := m[field]
	if !ok || v == nil {
		return nil, nil
	}
	switch seq := v.(type) {
	case []float32:
		out := make([]float32, len(seq))
		copy(out, seq)
		return out, nil
	case []float64:
		out := make([]float32, len(seq))
		for i, f := range seq {
			out[i] = float32(f)
		}
		return out, nil
	case []any:
		out := make([]float32, len(seq))
		for i, e := range seq {
			f, ok := floatValue(e)
			if !ok {
				return nil, errors.TypeMismatch(entity, field, "sequence of numbers", e)
			}
			out[i] = float32(f)
		}
		return out, nil
	default:
		return nil, errors.TypeMismatch(entity, field, "sequence of numbers", v)
	}
}

// optMappingSeq reads an ordered sequence of nested mappings (e.g. the
// messages of a memory). Element order is preserved.
func optMappingSeq(m map[string]any, entity, field string) ([]map[string]any, error) {
	v, ok := m[field]
	if !ok || v == nil {
		return nil, nil
	}
	switch seq := v.(type) {
	case []map[string]any:
		return seq, nil
	case []any:
		out := make([]map[string]any, len(seq))
		for i, e := range seq {
			nested, ok := e.(map[string]any)
			if !ok {
				return nil, errors.TypeMismatch(entity, field, "sequence of mappings", e)
			}
			out[i] = nested
		}
		return out, nil
	default:
		return nil, errors.TypeMismatch(entity, field, "sequence of mappings", v)
	}
}

func intValue(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case float64:
		if n == math.Trunc(n) {
			return int(n), true
		}
	}
	return 0, false
}

func floatValue(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

// putString adds field to m only when value is non-empty. Server-generated
// string fields use the empty string as "absent".
func putString(m map[string]any, field, value string) {
	if value != "" {
		m[field] = value
	}
}

// embeddingToWire converts a float32 vector to its wire sequence.
func embeddingToWire(e []float32) []float64 {
	out := make([]float64, len(e))
	for i, f := range e {
		out[i] = float64(f)
	}
	return out
}

// metadataOrEmpty returns md, or an empty mapping when md is nil, for
// entities whose metadata field is always emitted.
func metadataOrEmpty(md map[string]any) map[string]any {
	if md == nil {
		return map[string]any{}
	}
	return md
}
