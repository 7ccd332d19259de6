package dsl

import (
	"context"
	"fmt"
	"sort"

	vld "github.com/vldgo/vld"
)

// RecordSchema validates objects with arbitrary string keys and uniformly
// typed values.
type RecordSchema[V any] struct {
	value      vld.Schema[V]
	minKeys    *int
	minMsg     string
	maxKeys    *int
	maxMsg     string
	typeErrMsg string
}

// Record returns a schema over string-keyed objects with a uniform value
// schema.
func Record[V any](value vld.Schema[V]) *RecordSchema[V] {
	return &RecordSchema[V]{value: value}
}

// TypeError sets a custom message for the type-mismatch issue.
func (s *RecordSchema[V]) TypeError(msg string) *RecordSchema[V] {
	s.typeErrMsg = msg
	return s
}

// MinKeys requires at least n keys.
func (s *RecordSchema[V]) MinKeys(n int) *RecordSchema[V] {
	s.minKeys = &n
	s.minMsg = fmt.Sprintf("Record must have at least %d keys", n)
	return s
}

// MaxKeys allows at most n keys.
func (s *RecordSchema[V]) MaxKeys(n int) *RecordSchema[V] {
	s.maxKeys = &n
	s.maxMsg = fmt.Sprintf("Record must have at most %d keys", n)
	return s
}

// Parse implements vld.Schema[map[string]V].
func (s *RecordSchema[V]) Parse(ctx context.Context, v any) (map[string]V, error) {
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, vld.TypeIssue("object", v, s.typeErrMsg)
	}

	var iss vld.Issues
	if s.minKeys != nil && len(obj) < *s.minKeys {
		iss = vld.AppendIssues(iss, vld.Issue{
			Code: vld.CodeTooSmall, Message: s.minMsg,
			Received: vld.FormatValueShort(v),
			Params:   map[string]any{"minimum": *s.minKeys},
		})
	}
	if s.maxKeys != nil && len(obj) > *s.maxKeys {
		iss = vld.AppendIssues(iss, vld.Issue{
			Code: vld.CodeTooBig, Message: s.maxMsg,
			Received: vld.FormatValueShort(v),
			Params:   map[string]any{"maximum": *s.maxKeys},
		})
	}

	// Keys are visited in sorted order so the issue list is stable across
	// runs.
	keys := make([]string, 0, len(obj))
	for key := range obj {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	out := make(map[string]V, len(obj))
	for _, key := range keys {
		val := obj[key]
		ev, err := s.value.Parse(ctx, val)
		if err != nil {
			if child, ok := vld.AsIssues(err); ok {
				iss = append(iss, vld.Prefix(child, vld.Field(key))...)
				continue
			}
			return nil, err
		}
		out[key] = ev
	}
	if len(iss) > 0 {
		return nil, iss
	}
	return out, nil
}

// ZeroValue returns the lenient-mode fill value.
func (s *RecordSchema[V]) ZeroValue() any { return map[string]V{} }
