package dsl

import (
	"context"

	vld "github.com/vldgo/vld"
)

// MapSchema validates maps encoded as arrays of [key, value] pairs, the JSON
// representation used for non-string keys.
type MapSchema[K comparable, V any] struct {
	key        vld.Schema[K]
	value      vld.Schema[V]
	typeErrMsg string
}

// Map returns a schema over [key, value] pair arrays.
func Map[K comparable, V any](key vld.Schema[K], value vld.Schema[V]) *MapSchema[K, V] {
	return &MapSchema[K, V]{key: key, value: value}
}

// TypeError sets a custom message for the type-mismatch issue.
func (s *MapSchema[K, V]) TypeError(msg string) *MapSchema[K, V] {
	s.typeErrMsg = msg
	return s
}

// Parse implements vld.Schema[map[K]V]. Each entry must be a two-element
// array; malformed entries report one issue at their index while the rest of
// the entries are still validated.
func (s *MapSchema[K, V]) Parse(ctx context.Context, v any) (map[K]V, error) {
	arr, ok := v.([]any)
	if !ok {
		return nil, vld.TypeIssue("array", v, s.typeErrMsg)
	}

	var iss vld.Issues
	out := make(map[K]V, len(arr))
	for i, item := range arr {
		pair, ok := item.([]any)
		if !ok || len(pair) != 2 {
			entry := vld.SingleIssue(vld.CodeCustom, "Each Map entry must be a [key, value] array of length 2")
			iss = append(iss, vld.Prefix(entry, vld.Index(i))...)
			continue
		}
		k, kerr := s.key.Parse(ctx, pair[0])
		if kerr != nil {
			if child, ok := vld.AsIssues(kerr); ok {
				iss = append(iss, vld.Prefix(child, vld.Index(i))...)
			} else {
				return nil, kerr
			}
		}
		val, verr := s.value.Parse(ctx, pair[1])
		if verr != nil {
			if child, ok := vld.AsIssues(verr); ok {
				iss = append(iss, vld.Prefix(child, vld.Index(i))...)
			} else {
				return nil, verr
			}
		}
		if kerr == nil && verr == nil {
			out[k] = val
		}
	}
	if len(iss) > 0 {
		return nil, iss
	}
	return out, nil
}

// ZeroValue returns the lenient-mode fill value.
func (s *MapSchema[K, V]) ZeroValue() any { return map[K]V{} }
