package dsl

import (
	"context"
	"fmt"
	"strings"

	vld "github.com/vldgo/vld"
)

// LiteralSchema accepts exactly one value. Equality is structural over the
// value model, so json.Number 1 matches float64 1.
type LiteralSchema[T comparable] struct {
	expected T
	key      string
}

// Literal returns a schema accepting only the given value.
func Literal[T comparable](expected T) *LiteralSchema[T] {
	return &LiteralSchema[T]{expected: expected, key: vld.CanonicalKey(expected)}
}

// Parse implements vld.Schema[T].
func (s *LiteralSchema[T]) Parse(ctx context.Context, v any) (T, error) {
	if vld.CanonicalKey(v) == s.key {
		return s.expected, nil
	}
	var zero T
	return zero, vld.Issues{vld.Issue{
		Code:     vld.CodeInvalidLiteral,
		Message:  fmt.Sprintf("Expected literal %v, received %s", s.expected, vld.FormatValueShort(v)),
		Expected: fmt.Sprintf("%v", s.expected),
		Received: vld.FormatValueShort(v),
		Params:   map[string]any{"expected": s.expected},
	}}
}

// ZeroValue returns the lenient-mode fill value, which for a literal is the
// literal itself.
func (s *LiteralSchema[T]) ZeroValue() any { return s.expected }

// EnumSchema accepts one of a fixed set of string variants.
type EnumSchema struct {
	variants   []string
	typeErrMsg string
}

// Enum returns a schema accepting any of the given string variants.
func Enum(variants ...string) *EnumSchema {
	return &EnumSchema{variants: variants}
}

// TypeError sets a custom message for the type-mismatch issue.
func (s *EnumSchema) TypeError(msg string) *EnumSchema {
	s.typeErrMsg = msg
	return s
}

// Variants returns the accepted values in declaration order.
func (s *EnumSchema) Variants() []string { return s.variants }

// Parse implements vld.Schema[string].
func (s *EnumSchema) Parse(ctx context.Context, v any) (string, error) {
	str, ok := v.(string)
	if !ok {
		return "", vld.TypeIssue("string", v, s.typeErrMsg)
	}
	for _, variant := range s.variants {
		if variant == str {
			return str, nil
		}
	}
	quoted := make([]string, len(s.variants))
	for i, variant := range s.variants {
		quoted[i] = fmt.Sprintf("%q", variant)
	}
	return "", vld.Issues{vld.Issue{
		Code:     vld.CodeInvalidEnum,
		Message:  fmt.Sprintf("Invalid enum value: %q. Expected one of: %s", str, strings.Join(quoted, ", ")),
		Received: vld.FormatValueShort(v),
		Params:   map[string]any{"options": s.variants},
	}}
}

// ZeroValue returns the lenient-mode fill value, the first declared variant.
func (s *EnumSchema) ZeroValue() any {
	if len(s.variants) > 0 {
		return s.variants[0]
	}
	return ""
}
