package dsl

import (
	"context"
	"fmt"

	vld "github.com/vldgo/vld"
)

// ArraySchema validates arrays of a single element schema. Size bounds run
// first, then every element is validated and child issues are prefixed with
// their index.
type ArraySchema[T any] struct {
	element    vld.Schema[T]
	minLen     *int
	minMsg     string
	maxLen     *int
	maxMsg     string
	exactLen   *int
	exactMsg   string
	unique     bool
	uniqueMsg  string
	typeErrMsg string
}

// Array returns a new array schema over the given element schema.
func Array[T any](element vld.Schema[T]) *ArraySchema[T] {
	return &ArraySchema[T]{element: element}
}

// TypeError sets a custom message for the type-mismatch issue.
func (s *ArraySchema[T]) TypeError(msg string) *ArraySchema[T] {
	s.typeErrMsg = msg
	return s
}

// Min requires at least n elements.
func (s *ArraySchema[T]) Min(n int) *ArraySchema[T] {
	s.minLen = &n
	s.minMsg = fmt.Sprintf("Array must have at least %d elements", n)
	return s
}

// Max allows at most n elements.
func (s *ArraySchema[T]) Max(n int) *ArraySchema[T] {
	s.maxLen = &n
	s.maxMsg = fmt.Sprintf("Array must have at most %d elements", n)
	return s
}

// Length requires exactly n elements.
func (s *ArraySchema[T]) Length(n int) *ArraySchema[T] {
	s.exactLen = &n
	s.exactMsg = fmt.Sprintf("Array must have exactly %d elements", n)
	return s
}

// NonEmpty requires at least one element.
func (s *ArraySchema[T]) NonEmpty() *ArraySchema[T] { return s.Min(1) }

// Unique rejects repeated elements, comparing by structural equality over
// the raw input values.
func (s *ArraySchema[T]) Unique() *ArraySchema[T] {
	s.unique = true
	s.uniqueMsg = "Array elements must be unique"
	return s
}

// Parse implements vld.Schema[[]T].
func (s *ArraySchema[T]) Parse(ctx context.Context, v any) ([]T, error) {
	arr, ok := v.([]any)
	if !ok {
		return nil, vld.TypeIssue("array", v, s.typeErrMsg)
	}

	var iss vld.Issues
	if s.minLen != nil && len(arr) < *s.minLen {
		iss = vld.AppendIssues(iss, vld.Issue{
			Code: vld.CodeTooSmall, Message: s.minMsg,
			Received: vld.FormatValueShort(v),
			Params:   map[string]any{"minimum": *s.minLen},
		})
	}
	if s.maxLen != nil && len(arr) > *s.maxLen {
		iss = vld.AppendIssues(iss, vld.Issue{
			Code: vld.CodeTooBig, Message: s.maxMsg,
			Received: vld.FormatValueShort(v),
			Params:   map[string]any{"maximum": *s.maxLen},
		})
	}
	if s.exactLen != nil && len(arr) != *s.exactLen {
		iss = vld.AppendIssues(iss, vld.Issue{
			Code: vld.CodeInvalidLength, Message: s.exactMsg,
			Received: vld.FormatValueShort(v),
			Params:   map[string]any{"length": *s.exactLen},
		})
	}

	var seen map[string]int
	if s.unique {
		seen = make(map[string]int, len(arr))
	}

	out := make([]T, 0, len(arr))
	for i, item := range arr {
		if s.unique {
			key := vld.CanonicalKey(item)
			if _, dup := seen[key]; dup {
				iss = vld.AppendIssues(iss, vld.Issue{
					Path: vld.Path{vld.Index(i)},
					Code: vld.CodeDuplicateItem, Message: s.uniqueMsg,
					Received: vld.FormatValueShort(item),
				})
				continue
			}
			seen[key] = i
		}
		ev, err := s.element.Parse(ctx, item)
		if err != nil {
			if child, ok := vld.AsIssues(err); ok {
				iss = append(iss, vld.Prefix(child, vld.Index(i))...)
				continue
			}
			return nil, err
		}
		out = append(out, ev)
	}

	if len(iss) > 0 {
		return nil, iss
	}
	return out, nil
}

// ZeroValue returns the lenient-mode fill value.
func (s *ArraySchema[T]) ZeroValue() any { return []T{} }
