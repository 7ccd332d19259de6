package vld

import (
	"context"
)

// Schema is the core validation contract. Parse transforms an untyped value
// (already in the value model) into T, accumulating every violation found
// rather than stopping at the first; the returned error is Issues on
// validation failure.
//
// Schemas are constructed once, never mutated afterwards, and may therefore
// be shared across goroutines without synchronization.
type Schema[T any] interface {
	Parse(ctx context.Context, v any) (T, error)
}

// AnySchema is the type-erased view of a Schema, used wherever heterogeneous
// child schemas meet (object fields, union branches, tuple positions).
type AnySchema interface {
	ParseAny(ctx context.Context, v any) (any, error)
}

// SchemaOf erases a typed schema into an AnySchema.
func SchemaOf[T any](s Schema[T]) AnySchema { return erased[T]{inner: s} }

type erased[T any] struct{ inner Schema[T] }

func (e erased[T]) ParseAny(ctx context.Context, v any) (any, error) {
	out, err := e.inner.Parse(ctx, v)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// zeroProvider is implemented by schemas that can supply a type-appropriate
// zero value, used by the lenient engine to fill failed fields.
type zeroProvider interface {
	ZeroValue() any
}

// ZeroValueOf returns the type-appropriate zero for a schema, or nil when the
// schema does not advertise one.
func ZeroValueOf(s any) any {
	if zp, ok := s.(zeroProvider); ok {
		return zp.ZeroValue()
	}
	return nil
}

// Validate checks an untyped value against the schema, discarding the typed
// result. The error, when non-nil, is Issues.
func Validate[T any](ctx context.Context, s Schema[T], v any) error {
	_, err := s.Parse(ctx, v)
	return err
}

// ValidateValue checks an already-constructed typed value against the schema.
// The value is first projected back into the value model so that every check
// observes the same representation Parse would.
func ValidateValue[T any](ctx context.Context, s Schema[T], v T) error {
	pv, err := ToValue(v)
	if err != nil {
		return err
	}
	_, perr := s.Parse(ctx, pv)
	return perr
}

// IsValid reports whether v conforms to the schema, discarding the issue list.
func IsValid[T any](ctx context.Context, s Schema[T], v any) bool {
	return Validate(ctx, s, v) == nil
}

// SafeParse parses v into T, returning (zero, false) on validation error.
func SafeParse[T any](ctx context.Context, s Schema[T], v any) (T, bool) {
	val, err := s.Parse(ctx, v)
	if err != nil {
		var zero T
		return zero, false
	}
	return val, true
}

// ---- Parse-time context options (internal wiring, exported for subpackages) ----

type contextKey int

const (
	_ctxKeyFailFast contextKey = iota
	_ctxKeyLazyDepth
)

// WithFailFast returns a child context that marks fail-fast parsing behavior.
// It applies to a node's own check list: a string or number schema stops
// running further checks after the first failure. Structural traversal is
// unaffected, so object fields and array elements are still all visited.
func WithFailFast(ctx context.Context, enabled bool) context.Context {
	return context.WithValue(ctx, _ctxKeyFailFast, enabled)
}

// IsFailFast reports whether the current node should stop its check list on
// the first failure.
func IsFailFast(ctx context.Context) bool {
	v := ctx.Value(_ctxKeyFailFast)
	b, _ := v.(bool)
	return b
}

// LazyDepth reports the number of lazy-schema resolutions active on the
// current call stack. Lazy schemas use it to bound self-referential
// expansion.
func LazyDepth(ctx context.Context) int {
	v := ctx.Value(_ctxKeyLazyDepth)
	d, _ := v.(int)
	return d
}

// WithLazyDepth returns a child context carrying the given active-resolution
// depth.
func WithLazyDepth(ctx context.Context, depth int) context.Context {
	return context.WithValue(ctx, _ctxKeyLazyDepth, depth)
}
