package dsl

import (
	"context"

	vld "github.com/vldgo/vld"
)

// IntersectionSchema requires the input to satisfy both schemas. Both run on
// the same input and their issues are merged, keeping at most one branch's
// issues per path: when the first schema already reported at a path, the
// second schema's issues at that same path are dropped as redundant. When
// both succeed and both outputs are objects, the outputs are merged with the
// second schema winning on conflicting keys; otherwise the second schema's
// output is returned.
type IntersectionSchema struct {
	first  vld.AnySchema
	second vld.AnySchema
}

// Intersection builds a schema requiring both operands to accept the input.
func Intersection(first, second vld.AnySchema) *IntersectionSchema {
	return &IntersectionSchema{first: first, second: second}
}

// Parse implements vld.Schema[any].
func (s *IntersectionSchema) Parse(ctx context.Context, v any) (any, error) {
	var iss vld.Issues

	a, aerr := s.first.ParseAny(ctx, v)
	if aerr != nil {
		child, ok := vld.AsIssues(aerr)
		if !ok {
			return nil, aerr
		}
		iss = append(iss, child...)
	}

	seen := make(map[string]bool, len(iss))
	for _, is := range iss {
		seen[is.Path.String()] = true
	}

	b, berr := s.second.ParseAny(ctx, v)
	if berr != nil {
		child, ok := vld.AsIssues(berr)
		if !ok {
			return nil, berr
		}
		for _, is := range child {
			if seen[is.Path.String()] {
				continue
			}
			iss = append(iss, is)
		}
	}

	if len(iss) > 0 {
		return nil, iss
	}

	aObj, aIsObj := a.(map[string]any)
	bObj, bIsObj := b.(map[string]any)
	if aIsObj && bIsObj {
		merged := make(map[string]any, len(aObj)+len(bObj))
		for k, val := range aObj {
			merged[k] = val
		}
		for k, val := range bObj {
			merged[k] = val
		}
		return merged, nil
	}
	return b, nil
}
