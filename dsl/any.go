package dsl

import (
	"context"

	vld "github.com/vldgo/vld"
)

// AnySchemaNode accepts every value unchanged.
type AnySchemaNode struct{}

// Any returns a schema accepting every value.
func Any() *AnySchemaNode { return &AnySchemaNode{} }

// Parse implements vld.Schema[any].
func (s *AnySchemaNode) Parse(ctx context.Context, v any) (any, error) { return v, nil }

// ZeroValue returns the lenient-mode fill value.
func (s *AnySchemaNode) ZeroValue() any { return nil }

// NullSchema accepts only null.
type NullSchema struct{}

// Null returns a schema accepting only null.
func Null() *NullSchema { return &NullSchema{} }

// Parse implements vld.Schema[any], always returning nil on success.
func (s *NullSchema) Parse(ctx context.Context, v any) (any, error) {
	if v != nil {
		return nil, vld.TypeIssue("null", v, "")
	}
	return nil, nil
}

// ZeroValue returns the lenient-mode fill value.
func (s *NullSchema) ZeroValue() any { return nil }

// NeverSchema rejects every value.
type NeverSchema struct{}

// Never returns a schema that rejects everything.
func Never() *NeverSchema { return &NeverSchema{} }

// Parse implements vld.Schema[any], always failing.
func (s *NeverSchema) Parse(ctx context.Context, v any) (any, error) {
	return nil, vld.TypeIssue("never", v, "")
}
