package dsl

import (
	"context"

	"github.com/cockroachdb/errors"

	vld "github.com/vldgo/vld"
)

// absentHandler lets a field schema decide what happens when its key is
// absent from the enclosing object. Schemas that do not implement it make
// the field required.
type absentHandler interface {
	// ParseAbsent returns the value to use for an absent field and whether
	// the key should appear in the output at all.
	ParseAbsent(ctx context.Context) (any, bool, error)
}

var errFieldRequired = errors.New("dsl: field required")

func absentValue(ctx context.Context, s vld.AnySchema) (any, bool, error) {
	if h, ok := s.(absentHandler); ok {
		return h.ParseAbsent(ctx)
	}
	return nil, false, errFieldRequired
}

// OptionalSchema tolerates absence: the key is simply omitted from the
// output. Null is also accepted and maps to a nil pointer.
type OptionalSchema[T any] struct {
	inner vld.Schema[T]
}

// Optional wraps a schema so the owning object treats the field as optional.
func Optional[T any](inner vld.Schema[T]) *OptionalSchema[T] {
	return &OptionalSchema[T]{inner: inner}
}

// Parse implements vld.Schema[*T]; null yields a nil pointer.
func (s *OptionalSchema[T]) Parse(ctx context.Context, v any) (*T, error) {
	if v == nil {
		return nil, nil
	}
	out, err := s.inner.Parse(ctx, v)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *OptionalSchema[T]) ParseAbsent(ctx context.Context) (any, bool, error) {
	return nil, false, nil
}

// ZeroValue returns the lenient-mode fill value.
func (s *OptionalSchema[T]) ZeroValue() any { return (*T)(nil) }

// NullableSchema accepts null in place of the inner type. Absence is still
// an error on required object fields.
type NullableSchema[T any] struct {
	inner vld.Schema[T]
}

// Nullable wraps a schema so null maps to a nil pointer.
func Nullable[T any](inner vld.Schema[T]) *NullableSchema[T] {
	return &NullableSchema[T]{inner: inner}
}

// Parse implements vld.Schema[*T].
func (s *NullableSchema[T]) Parse(ctx context.Context, v any) (*T, error) {
	if v == nil {
		return nil, nil
	}
	out, err := s.inner.Parse(ctx, v)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ZeroValue returns the lenient-mode fill value.
func (s *NullableSchema[T]) ZeroValue() any { return (*T)(nil) }

// NullishSchema combines Optional and Nullable: absence omits the key and
// null maps to a nil pointer.
type NullishSchema[T any] struct {
	inner vld.Schema[T]
}

// Nullish wraps a schema accepting both absence and null.
func Nullish[T any](inner vld.Schema[T]) *NullishSchema[T] {
	return &NullishSchema[T]{inner: inner}
}

// Parse implements vld.Schema[*T].
func (s *NullishSchema[T]) Parse(ctx context.Context, v any) (*T, error) {
	if v == nil {
		return nil, nil
	}
	out, err := s.inner.Parse(ctx, v)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *NullishSchema[T]) ParseAbsent(ctx context.Context) (any, bool, error) {
	return nil, false, nil
}

// ZeroValue returns the lenient-mode fill value.
func (s *NullishSchema[T]) ZeroValue() any { return (*T)(nil) }

// DefaultSchema substitutes a fallback for absent or null input before the
// inner schema runs. The fallback itself is not re-validated.
type DefaultSchema[T any] struct {
	inner vld.Schema[T]
	value T
}

// Default wraps a schema with a fallback for absent or null input.
func Default[T any](inner vld.Schema[T], value T) *DefaultSchema[T] {
	return &DefaultSchema[T]{inner: inner, value: value}
}

// Parse implements vld.Schema[T].
func (s *DefaultSchema[T]) Parse(ctx context.Context, v any) (T, error) {
	if v == nil {
		return s.value, nil
	}
	return s.inner.Parse(ctx, v)
}

func (s *DefaultSchema[T]) ParseAbsent(ctx context.Context) (any, bool, error) {
	return s.value, true, nil
}

// ZeroValue returns the declared default so lenient mode fills failed
// fields with it.
func (s *DefaultSchema[T]) ZeroValue() any { return s.value }

// CatchSchema swallows inner validation issues, substituting a fallback.
// Non-issue errors (context cancellation, recursion limits surfaced as
// issues do not apply here) still propagate.
type CatchSchema[T any] struct {
	inner vld.Schema[T]
	value T
}

// Catch wraps a schema with a fallback used whenever validation fails.
func Catch[T any](inner vld.Schema[T], value T) *CatchSchema[T] {
	return &CatchSchema[T]{inner: inner, value: value}
}

// Parse implements vld.Schema[T] and never returns Issues.
func (s *CatchSchema[T]) Parse(ctx context.Context, v any) (T, error) {
	out, err := s.inner.Parse(ctx, v)
	if err != nil {
		if _, ok := vld.AsIssues(err); ok {
			return s.value, nil
		}
		var zero T
		return zero, err
	}
	return out, nil
}

// ZeroValue returns the fallback value.
func (s *CatchSchema[T]) ZeroValue() any { return s.value }
