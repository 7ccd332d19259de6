package vld

import (
	"fmt"
	"sort"
	"strings"

	json "github.com/goccy/go-json"
)

// The value model is the decoded-JSON shape: nil, bool, json.Number/float64,
// string, []any, and map[string]any. Every schema reads values of this shape
// and transforms produce new ones; nothing mutates a value in place.

// TypeName returns the value-model type tag for v: one of "null", "boolean",
// "number", "string", "array", "object".
func TypeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case json.Number, float64, float32, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return "number"
	case string:
		return "string"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return "object"
	}
}

// ToValue projects an arbitrary Go value into the value model. Values already
// in model shape pass through untouched; typed structs round-trip through the
// JSON codec so that struct tags decide field names.
func ToValue(v any) (any, error) {
	switch v.(type) {
	case nil, bool, string, json.Number, float64, []any, map[string]any:
		return v, nil
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32:
		return v, nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return nil, &MalformedInputError{Format: "value", Err: err}
	}
	var out any
	dec := json.NewDecoder(strings.NewReader(string(data)))
	dec.UseNumber()
	if err := dec.Decode(&out); err != nil {
		return nil, &MalformedInputError{Format: "value", Err: err}
	}
	return out, nil
}

// FormatValueShort renders a value for display in error messages. Long
// strings and large containers are abbreviated.
func FormatValueShort(v any) string {
	switch t := v.(type) {
	case nil:
		return "null"
	case bool:
		if t {
			return "true"
		}
		return "false"
	case string:
		if len(t) > 50 {
			return fmt.Sprintf("%q...", t[:47])
		}
		return fmt.Sprintf("%q", t)
	case json.Number:
		return t.String()
	case []any:
		return fmt.Sprintf("Array(len=%d)", len(t))
	case map[string]any:
		return fmt.Sprintf("Object(keys=%d)", len(t))
	default:
		return fmt.Sprintf("%v", v)
	}
}

// CanonicalKey renders a value into a stable textual form used for set
// deduplication and literal comparison. Object keys are ordered so equal
// values always canonicalize identically.
func CanonicalKey(v any) string {
	b := &strings.Builder{}
	writeCanonical(b, v)
	return b.String()
}

func writeCanonical(b *strings.Builder, v any) {
	switch t := v.(type) {
	case nil:
		b.WriteString("null")
	case bool:
		fmt.Fprintf(b, "%v", t)
	case string:
		fmt.Fprintf(b, "%q", t)
	case json.Number:
		b.WriteString(canonicalNumber(t.String()))
	case float64:
		b.WriteString(canonicalNumber(fmt.Sprintf("%g", t)))
	case int:
		fmt.Fprintf(b, "%d", t)
	case int64:
		fmt.Fprintf(b, "%d", t)
	case []any:
		b.WriteByte('[')
		for i, e := range t {
			if i > 0 {
				b.WriteByte(',')
			}
			writeCanonical(b, e)
		}
		b.WriteByte(']')
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		b.WriteByte('{')
		for i, k := range keys {
			if i > 0 {
				b.WriteByte(',')
			}
			fmt.Fprintf(b, "%q:", k)
			writeCanonical(b, t[k])
		}
		b.WriteByte('}')
	default:
		fmt.Fprintf(b, "%v", t)
	}
}

// canonicalNumber normalizes textual numbers so 1, 1.0 and 1e0 compare equal.
func canonicalNumber(s string) string {
	var f float64
	if _, err := fmt.Sscanf(s, "%g", &f); err != nil {
		return s
	}
	return fmt.Sprintf("%g", f)
}

// NumberValue extracts a float64 from any numeric representation in the value
// model. The second return reports whether v was numeric at all.
func NumberValue(v any) (float64, bool) {
	switch t := v.(type) {
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int8:
		return float64(t), true
	case int16:
		return float64(t), true
	case int32:
		return float64(t), true
	case int64:
		return float64(t), true
	case uint:
		return float64(t), true
	case uint8:
		return float64(t), true
	case uint16:
		return float64(t), true
	case uint32:
		return float64(t), true
	case uint64:
		return float64(t), true
	default:
		return 0, false
	}
}
