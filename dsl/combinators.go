package dsl

import (
	"context"

	vld "github.com/vldgo/vld"
)

// RefineSchema runs a predicate over the inner schema's output and reports a
// single custom issue when it fails.
type RefineSchema[T any] struct {
	inner vld.Schema[T]
	check func(T) bool
	msg   string
}

// Refine attaches a predicate to a schema; a false result reports one
// custom issue with the given message.
func Refine[T any](inner vld.Schema[T], check func(T) bool, msg string) *RefineSchema[T] {
	return &RefineSchema[T]{inner: inner, check: check, msg: msg}
}

// Parse implements vld.Schema[T].
func (s *RefineSchema[T]) Parse(ctx context.Context, v any) (T, error) {
	out, err := s.inner.Parse(ctx, v)
	if err != nil {
		return out, err
	}
	if !s.check(out) {
		var zero T
		return zero, vld.SingleIssue(vld.CodeCustom, s.msg)
	}
	return out, nil
}

// ZeroValue forwards the inner schema's lenient-mode fill value.
func (s *RefineSchema[T]) ZeroValue() any { return vld.ZeroValueOf(s.inner) }

// IssueCollector accumulates issues inside a SuperRefine callback.
type IssueCollector struct {
	issues vld.Issues
}

// Add appends a custom issue with the given code and message.
func (c *IssueCollector) Add(code, msg string) {
	c.issues = vld.AppendIssues(c.issues, vld.Issue{Code: code, Message: msg})
}

// AddIssue appends a fully built issue.
func (c *IssueCollector) AddIssue(iss vld.Issue) {
	c.issues = vld.AppendIssues(c.issues, iss)
}

// SuperRefineSchema runs a callback that may report several issues at once.
type SuperRefineSchema[T any] struct {
	inner vld.Schema[T]
	check func(T, *IssueCollector)
}

// SuperRefine attaches a multi-issue refinement callback to a schema.
func SuperRefine[T any](inner vld.Schema[T], check func(T, *IssueCollector)) *SuperRefineSchema[T] {
	return &SuperRefineSchema[T]{inner: inner, check: check}
}

// Parse implements vld.Schema[T].
func (s *SuperRefineSchema[T]) Parse(ctx context.Context, v any) (T, error) {
	out, err := s.inner.Parse(ctx, v)
	if err != nil {
		return out, err
	}
	var c IssueCollector
	s.check(out, &c)
	if len(c.issues) > 0 {
		var zero T
		return zero, c.issues
	}
	return out, nil
}

// ZeroValue forwards the inner schema's lenient-mode fill value.
func (s *SuperRefineSchema[T]) ZeroValue() any { return vld.ZeroValueOf(s.inner) }

// TransformSchema maps validated output through a function.
type TransformSchema[A, B any] struct {
	inner vld.Schema[A]
	fn    func(A) (B, error)
}

// Transform maps a schema's output through fn. An error from fn surfaces as
// a single custom issue.
func Transform[A, B any](inner vld.Schema[A], fn func(A) (B, error)) *TransformSchema[A, B] {
	return &TransformSchema[A, B]{inner: inner, fn: fn}
}

// Parse implements vld.Schema[B].
func (s *TransformSchema[A, B]) Parse(ctx context.Context, v any) (B, error) {
	var zero B
	a, err := s.inner.Parse(ctx, v)
	if err != nil {
		return zero, err
	}
	b, err := s.fn(a)
	if err != nil {
		if iss, ok := vld.AsIssues(err); ok {
			return zero, iss
		}
		return zero, vld.SingleIssue(vld.CodeCustom, err.Error())
	}
	return b, nil
}

// PipeSchema feeds the left schema's output into the right schema. The left
// output is projected back into the value model first, so the right side
// observes the same representation raw input would have.
type PipeSchema[A, B any] struct {
	left  vld.Schema[A]
	right vld.Schema[B]
}

// Pipe chains two schemas left-to-right.
func Pipe[A, B any](left vld.Schema[A], right vld.Schema[B]) *PipeSchema[A, B] {
	return &PipeSchema[A, B]{left: left, right: right}
}

// Parse implements vld.Schema[B].
func (s *PipeSchema[A, B]) Parse(ctx context.Context, v any) (B, error) {
	var zero B
	a, err := s.left.Parse(ctx, v)
	if err != nil {
		return zero, err
	}
	mid, err := vld.ToValue(a)
	if err != nil {
		return zero, err
	}
	return s.right.Parse(ctx, mid)
}

// ZeroValue forwards the right schema's lenient-mode fill value.
func (s *PipeSchema[A, B]) ZeroValue() any { return vld.ZeroValueOf(s.right) }

// PreprocessSchema rewrites raw input before the inner schema sees it.
type PreprocessSchema[T any] struct {
	inner vld.Schema[T]
	fn    func(any) any
}

// Preprocess applies fn to the raw value before validation.
func Preprocess[T any](fn func(any) any, inner vld.Schema[T]) *PreprocessSchema[T] {
	return &PreprocessSchema[T]{inner: inner, fn: fn}
}

// Parse implements vld.Schema[T].
func (s *PreprocessSchema[T]) Parse(ctx context.Context, v any) (T, error) {
	return s.inner.Parse(ctx, s.fn(v))
}

// ZeroValue forwards the inner schema's lenient-mode fill value.
func (s *PreprocessSchema[T]) ZeroValue() any { return vld.ZeroValueOf(s.inner) }

// CustomSchema validates with an opaque function. Issues returned by the
// function surface verbatim; any other error becomes one custom issue
// carrying the error text unchanged.
type CustomSchema[T any] struct {
	fn func(ctx context.Context, v any) (T, error)
}

// Custom builds a schema from a bare validation function.
func Custom[T any](fn func(ctx context.Context, v any) (T, error)) *CustomSchema[T] {
	return &CustomSchema[T]{fn: fn}
}

// Parse implements vld.Schema[T].
func (s *CustomSchema[T]) Parse(ctx context.Context, v any) (T, error) {
	out, err := s.fn(ctx, v)
	if err != nil {
		var zero T
		if iss, ok := vld.AsIssues(err); ok {
			return zero, iss
		}
		return zero, vld.SingleIssue(vld.CodeCustom, err.Error())
	}
	return out, nil
}

// MessageSchema overrides the message of every issue the inner schema
// reports.
type MessageSchema[T any] struct {
	inner vld.Schema[T]
	msg   string
}

// Message replaces all inner issue messages with one fixed message.
func Message[T any](inner vld.Schema[T], msg string) *MessageSchema[T] {
	return &MessageSchema[T]{inner: inner, msg: msg}
}

// Parse implements vld.Schema[T].
func (s *MessageSchema[T]) Parse(ctx context.Context, v any) (T, error) {
	out, err := s.inner.Parse(ctx, v)
	if err != nil {
		if iss, ok := vld.AsIssues(err); ok {
			rewritten := make(vld.Issues, len(iss))
			for i, is := range iss {
				is.Message = s.msg
				rewritten[i] = is
			}
			return out, rewritten
		}
		return out, err
	}
	return out, nil
}

// ZeroValue forwards the inner schema's lenient-mode fill value.
func (s *MessageSchema[T]) ZeroValue() any { return vld.ZeroValueOf(s.inner) }

// DescribeSchema attaches a human-readable description without affecting
// validation.
type DescribeSchema[T any] struct {
	inner vld.Schema[T]
	desc  string
}

// Describe attaches metadata to a schema.
func Describe[T any](inner vld.Schema[T], desc string) *DescribeSchema[T] {
	return &DescribeSchema[T]{inner: inner, desc: desc}
}

// Description returns the attached text.
func (s *DescribeSchema[T]) Description() string { return s.desc }

// Parse implements vld.Schema[T].
func (s *DescribeSchema[T]) Parse(ctx context.Context, v any) (T, error) {
	return s.inner.Parse(ctx, v)
}

// ZeroValue forwards the inner schema's lenient-mode fill value.
func (s *DescribeSchema[T]) ZeroValue() any { return vld.ZeroValueOf(s.inner) }
