package dsl

import (
	"context"

	vld "github.com/vldgo/vld"
)

// DefaultMaxDepth bounds lazy-schema expansion when MaxDepth is not set.
const DefaultMaxDepth = 128

// LazySchema resolves its schema through a factory at parse time, enabling
// self-referential definitions. Expansion depth is tracked through the
// context; exceeding the limit reports a recursion_limit_exceeded issue
// instead of overflowing the stack.
type LazySchema[T any] struct {
	factory  func() vld.Schema[T]
	maxDepth int
}

// Lazy builds a schema from a factory resolved on every parse.
func Lazy[T any](factory func() vld.Schema[T]) *LazySchema[T] {
	return &LazySchema[T]{factory: factory, maxDepth: DefaultMaxDepth}
}

// MaxDepth overrides the expansion limit.
func (s *LazySchema[T]) MaxDepth(n int) *LazySchema[T] {
	s.maxDepth = n
	return s
}

// Parse implements vld.Schema[T].
func (s *LazySchema[T]) Parse(ctx context.Context, v any) (T, error) {
	depth := vld.LazyDepth(ctx)
	if depth >= s.maxDepth {
		var zero T
		return zero, vld.Issues{vld.Issue{
			Code:    vld.CodeRecursionLimit,
			Message: "Recursion limit exceeded",
			Params:  map[string]any{"limit": s.maxDepth},
		}}
	}
	return s.factory().Parse(vld.WithLazyDepth(ctx, depth+1), v)
}
