package dsl

import (
	"context"

	vld "github.com/vldgo/vld"
)

// BoolSchema validates boolean values.
type BoolSchema struct {
	coerce     bool
	typeErrMsg string
}

// Bool returns a new boolean schema.
func Bool() *BoolSchema { return &BoolSchema{} }

// TypeError sets a custom message for the type-mismatch issue.
func (s *BoolSchema) TypeError(msg string) *BoolSchema {
	s.typeErrMsg = msg
	return s
}

// Coerce accepts "true"/"1" and "false"/"0" strings and 0/1 numbers.
func (s *BoolSchema) Coerce() *BoolSchema {
	s.coerce = true
	return s
}

// Parse implements vld.Schema[bool].
func (s *BoolSchema) Parse(ctx context.Context, v any) (bool, error) {
	if b, ok := v.(bool); ok {
		return b, nil
	}
	if s.coerce {
		switch t := v.(type) {
		case string:
			switch t {
			case "true", "1":
				return true, nil
			case "false", "0":
				return false, nil
			}
		default:
			if n, ok := numberOf(v); ok {
				switch n {
				case 1:
					return true, nil
				case 0:
					return false, nil
				}
			}
		}
	}
	return false, vld.TypeIssue("boolean", v, s.typeErrMsg)
}

// ZeroValue returns the lenient-mode fill value.
func (s *BoolSchema) ZeroValue() any { return false }
