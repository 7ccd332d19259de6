package dsl

import (
	"context"
	"fmt"

	vld "github.com/vldgo/vld"
)

// SetSchema validates arrays into sets. Duplicates in the input are
// silently deduplicated by structural equality; size bounds apply to the
// unique count.
type SetSchema[T comparable] struct {
	element    vld.Schema[T]
	minSize    *int
	minMsg     string
	maxSize    *int
	maxMsg     string
	unique     bool
	typeErrMsg string
}

// Set returns a schema collecting unique elements into map[T]struct{}.
func Set[T comparable](element vld.Schema[T]) *SetSchema[T] {
	return &SetSchema[T]{element: element}
}

// TypeError sets a custom message for the type-mismatch issue.
func (s *SetSchema[T]) TypeError(msg string) *SetSchema[T] {
	s.typeErrMsg = msg
	return s
}

// MinSize requires at least n unique elements.
func (s *SetSchema[T]) MinSize(n int) *SetSchema[T] {
	s.minSize = &n
	s.minMsg = fmt.Sprintf("Set must have at least %d unique elements", n)
	return s
}

// MaxSize allows at most n unique elements.
func (s *SetSchema[T]) MaxSize(n int) *SetSchema[T] {
	s.maxSize = &n
	s.maxMsg = fmt.Sprintf("Set must have at most %d unique elements", n)
	return s
}

// UniqueItems turns duplicates into reported issues instead of silently
// deduplicating. Equality is over the validated element's canonical form.
func (s *SetSchema[T]) UniqueItems() *SetSchema[T] {
	s.unique = true
	return s
}

// Parse implements vld.Schema[map[T]struct{}]. Elements are validated first;
// size bounds run after deduplication so they see the unique count.
func (s *SetSchema[T]) Parse(ctx context.Context, v any) (map[T]struct{}, error) {
	arr, ok := v.([]any)
	if !ok {
		return nil, vld.TypeIssue("array", v, s.typeErrMsg)
	}

	var iss vld.Issues
	out := make(map[T]struct{}, len(arr))
	for i, item := range arr {
		ev, err := s.element.Parse(ctx, item)
		if err != nil {
			if child, ok := vld.AsIssues(err); ok {
				iss = append(iss, vld.Prefix(child, vld.Index(i))...)
				continue
			}
			return nil, err
		}
		if s.unique {
			if _, dup := out[ev]; dup {
				iss = vld.AppendIssues(iss, vld.Issue{
					Path: vld.Path{vld.Index(i)},
					Code: vld.CodeDuplicateItem, Message: "Duplicate item",
					Received: vld.FormatValueShort(item),
				})
				continue
			}
		}
		out[ev] = struct{}{}
	}

	if s.minSize != nil && len(out) < *s.minSize {
		iss = vld.AppendIssues(iss, vld.Issue{
			Code: vld.CodeTooSmall, Message: s.minMsg,
			Params: map[string]any{"minimum": *s.minSize},
		})
	}
	if s.maxSize != nil && len(out) > *s.maxSize {
		iss = vld.AppendIssues(iss, vld.Issue{
			Code: vld.CodeTooBig, Message: s.maxMsg,
			Params: map[string]any{"maximum": *s.maxSize},
		})
	}
	if len(iss) > 0 {
		return nil, iss
	}
	return out, nil
}

// ZeroValue returns the lenient-mode fill value.
func (s *SetSchema[T]) ZeroValue() any { return map[T]struct{}{} }
