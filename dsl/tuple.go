package dsl

import (
	"context"
	"fmt"

	vld "github.com/vldgo/vld"
)

// TupleSchema validates fixed-length arrays with one schema per position.
// The result keeps positional values as []any.
type TupleSchema struct {
	items      []vld.AnySchema
	typeErrMsg string
}

// Tuple returns a schema over a fixed sequence of positional schemas.
func Tuple(items ...vld.AnySchema) *TupleSchema {
	return &TupleSchema{items: items}
}

// TypeError sets a custom message for the type-mismatch issue.
func (s *TupleSchema) TypeError(msg string) *TupleSchema {
	s.typeErrMsg = msg
	return s
}

// Parse implements vld.Schema[[]any]. A length mismatch reports exactly one
// issue; positional validation only runs when the length matches.
func (s *TupleSchema) Parse(ctx context.Context, v any) ([]any, error) {
	arr, ok := v.([]any)
	if !ok {
		return nil, vld.TypeIssue("array", v, s.typeErrMsg)
	}
	if len(arr) != len(s.items) {
		return nil, vld.Issues{vld.Issue{
			Code:     vld.CodeInvalidTuple,
			Message:  fmt.Sprintf("Expected tuple of %d elements, received %d", len(s.items), len(arr)),
			Received: vld.FormatValueShort(v),
			Params:   map[string]any{"expected": len(s.items), "received": len(arr)},
		}}
	}

	var iss vld.Issues
	out := make([]any, len(arr))
	for i, item := range arr {
		ev, err := s.items[i].ParseAny(ctx, item)
		if err != nil {
			if child, ok := vld.AsIssues(err); ok {
				iss = append(iss, vld.Prefix(child, vld.Index(i))...)
				continue
			}
			return nil, err
		}
		out[i] = ev
	}
	if len(iss) > 0 {
		return nil, iss
	}
	return out, nil
}

// ZeroValue returns the lenient-mode fill value.
func (s *TupleSchema) ZeroValue() any { return []any{} }
