package dsl

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	vld "github.com/vldgo/vld"
)

const maxSafeInteger = float64(1<<53 - 1)

type numberCheck struct {
	key    string
	code   string
	msg    string
	params map[string]any
	ok     func(n float64) bool
}

// NumberSchema validates float64 values. JSON numbers arrive as json.Number
// or float64 and are normalized before checks run.
type NumberSchema struct {
	checks     []numberCheck
	coerce     bool
	typeErrMsg string
}

// Number returns a new number schema.
func Number() *NumberSchema { return &NumberSchema{} }

// TypeError sets a custom message for the type-mismatch issue.
func (s *NumberSchema) TypeError(msg string) *NumberSchema {
	s.typeErrMsg = msg
	return s
}

// WithMessages overrides check messages in bulk by check key.
func (s *NumberSchema) WithMessages(f func(key string) string) *NumberSchema {
	for i := range s.checks {
		if msg := f(s.checks[i].key); msg != "" {
			s.checks[i].msg = msg
		}
	}
	return s
}

// Coerce enables numeric-string and bool to number coercion.
func (s *NumberSchema) Coerce() *NumberSchema {
	s.coerce = true
	return s
}

// Min requires n >= val (inclusive).
func (s *NumberSchema) Min(val float64) *NumberSchema {
	return s.MinMsg(val, fmt.Sprintf("Number must be at least %v", val))
}

// MinMsg is Min with a custom message.
func (s *NumberSchema) MinMsg(val float64, msg string) *NumberSchema {
	s.checks = append(s.checks, numberCheck{
		key: "too_small", code: vld.CodeTooSmall, msg: msg,
		params: map[string]any{"minimum": val, "inclusive": true},
		ok:     func(n float64) bool { return n >= val },
	})
	return s
}

// Max requires n <= val (inclusive).
func (s *NumberSchema) Max(val float64) *NumberSchema {
	return s.MaxMsg(val, fmt.Sprintf("Number must be at most %v", val))
}

// MaxMsg is Max with a custom message.
func (s *NumberSchema) MaxMsg(val float64, msg string) *NumberSchema {
	s.checks = append(s.checks, numberCheck{
		key: "too_big", code: vld.CodeTooBig, msg: msg,
		params: map[string]any{"maximum": val, "inclusive": true},
		ok:     func(n float64) bool { return n <= val },
	})
	return s
}

// Gt requires n > val (exclusive).
func (s *NumberSchema) Gt(val float64) *NumberSchema {
	s.checks = append(s.checks, numberCheck{
		key: "too_small", code: vld.CodeTooSmall,
		msg:    fmt.Sprintf("Number must be greater than %v", val),
		params: map[string]any{"minimum": val, "inclusive": false},
		ok:     func(n float64) bool { return n > val },
	})
	return s
}

// Gte is an alias for Min.
func (s *NumberSchema) Gte(val float64) *NumberSchema { return s.Min(val) }

// Lt requires n < val (exclusive).
func (s *NumberSchema) Lt(val float64) *NumberSchema {
	s.checks = append(s.checks, numberCheck{
		key: "too_big", code: vld.CodeTooBig,
		msg:    fmt.Sprintf("Number must be less than %v", val),
		params: map[string]any{"maximum": val, "inclusive": false},
		ok:     func(n float64) bool { return n < val },
	})
	return s
}

// Lte is an alias for Max.
func (s *NumberSchema) Lte(val float64) *NumberSchema { return s.Max(val) }

// Positive requires n > 0.
func (s *NumberSchema) Positive() *NumberSchema {
	s.checks = append(s.checks, numberCheck{
		key: "too_small", code: vld.CodeTooSmall, msg: "Number must be positive",
		params: map[string]any{"minimum": 0.0, "inclusive": false},
		ok:     func(n float64) bool { return n > 0 },
	})
	return s
}

// Negative requires n < 0.
func (s *NumberSchema) Negative() *NumberSchema {
	s.checks = append(s.checks, numberCheck{
		key: "too_big", code: vld.CodeTooBig, msg: "Number must be negative",
		params: map[string]any{"maximum": 0.0, "inclusive": false},
		ok:     func(n float64) bool { return n < 0 },
	})
	return s
}

// NonNegative requires n >= 0.
func (s *NumberSchema) NonNegative() *NumberSchema {
	s.checks = append(s.checks, numberCheck{
		key: "too_small", code: vld.CodeTooSmall, msg: "Number must be non-negative",
		params: map[string]any{"minimum": 0.0, "inclusive": true},
		ok:     func(n float64) bool { return n >= 0 },
	})
	return s
}

// NonPositive requires n <= 0.
func (s *NumberSchema) NonPositive() *NumberSchema {
	s.checks = append(s.checks, numberCheck{
		key: "too_big", code: vld.CodeTooBig, msg: "Number must be non-positive",
		params: map[string]any{"maximum": 0.0, "inclusive": true},
		ok:     func(n float64) bool { return n <= 0 },
	})
	return s
}

// Finite rejects NaN and infinities.
func (s *NumberSchema) Finite() *NumberSchema {
	s.checks = append(s.checks, numberCheck{
		key: "not_finite", code: vld.CodeNotFinite, msg: "Number must be finite",
		ok: func(n float64) bool { return !math.IsNaN(n) && !math.IsInf(n, 0) },
	})
	return s
}

// MultipleOf requires n to be an integer multiple of val within a small
// tolerance.
func (s *NumberSchema) MultipleOf(val float64) *NumberSchema {
	s.checks = append(s.checks, numberCheck{
		key: "not_multiple_of", code: vld.CodeNotMultipleOf,
		msg:    fmt.Sprintf("Number must be a multiple of %v", val),
		params: map[string]any{"multipleOf": val},
		ok: func(n float64) bool {
			if val == 0 {
				return false
			}
			q := n / val
			return math.Abs(q-math.Round(q)) < 1e-9
		},
	})
	return s
}

// Safe requires n to be an integer within the safe range (±(2^53-1)).
func (s *NumberSchema) Safe() *NumberSchema {
	s.checks = append(s.checks, numberCheck{
		key: "not_safe", code: vld.CodeNotInt,
		msg: "Number must be a safe integer (-(2^53-1) to 2^53-1)",
		ok: func(n float64) bool {
			return n == math.Trunc(n) && n >= -maxSafeInteger && n <= maxSafeInteger
		},
	})
	return s
}

// Parse implements vld.Schema[float64].
func (s *NumberSchema) Parse(ctx context.Context, v any) (float64, error) {
	n, ok := numberOf(v)
	if !ok && s.coerce {
		n, ok = coerceNumber(v)
		if !ok {
			if str, isStr := v.(string); isStr {
				msg := s.typeErrMsg
				if msg == "" {
					msg = fmt.Sprintf("Cannot coerce %q to number", str)
				}
				return 0, vld.TypeIssue("number", v, msg)
			}
		}
	}
	if !ok {
		return 0, vld.TypeIssue("number", v, s.typeErrMsg)
	}

	var iss vld.Issues
	for _, c := range s.checks {
		if c.ok(n) {
			continue
		}
		iss = vld.AppendIssues(iss, vld.Issue{
			Code:     c.code,
			Message:  c.msg,
			Received: vld.FormatValueShort(v),
			Params:   c.params,
		})
		if vld.IsFailFast(ctx) {
			break
		}
	}
	if len(iss) > 0 {
		return 0, iss
	}
	return n, nil
}

// ZeroValue returns the lenient-mode fill value.
func (s *NumberSchema) ZeroValue() any { return 0.0 }

// Int projects the number schema to int64, rejecting fractional values.
func (s *NumberSchema) Int() *IntSchema {
	return &IntSchema{base: s}
}

// IntSchema validates integer values as int64. Fractional input is rejected
// with a dedicated issue rather than truncated.
type IntSchema struct {
	base      *NumberSchema
	intErrMsg string
}

// Int returns a new integer schema.
func Int() *IntSchema { return &IntSchema{base: Number()} }

// TypeError sets a custom message for the type-mismatch issue.
func (s *IntSchema) TypeError(msg string) *IntSchema {
	s.base.TypeError(msg)
	return s
}

// IntError sets a custom message for the fractional-value issue.
func (s *IntSchema) IntError(msg string) *IntSchema {
	s.intErrMsg = msg
	return s
}

// Coerce enables numeric-string and bool coercion.
func (s *IntSchema) Coerce() *IntSchema {
	s.base.Coerce()
	return s
}

// Min requires n >= val.
func (s *IntSchema) Min(val int64) *IntSchema {
	s.base.Min(float64(val))
	return s
}

// Max requires n <= val.
func (s *IntSchema) Max(val int64) *IntSchema {
	s.base.Max(float64(val))
	return s
}

// Gt requires n > val.
func (s *IntSchema) Gt(val int64) *IntSchema {
	s.base.Gt(float64(val))
	return s
}

// Lt requires n < val.
func (s *IntSchema) Lt(val int64) *IntSchema {
	s.base.Lt(float64(val))
	return s
}

// Positive requires n > 0.
func (s *IntSchema) Positive() *IntSchema {
	s.base.Positive()
	return s
}

// Negative requires n < 0.
func (s *IntSchema) Negative() *IntSchema {
	s.base.Negative()
	return s
}

// NonNegative requires n >= 0.
func (s *IntSchema) NonNegative() *IntSchema {
	s.base.NonNegative()
	return s
}

// MultipleOf requires n to be a multiple of val.
func (s *IntSchema) MultipleOf(val int64) *IntSchema {
	s.base.MultipleOf(float64(val))
	return s
}

// Parse implements vld.Schema[int64]. The integrality check runs before the
// base checks so a fractional value reports exactly one issue.
func (s *IntSchema) Parse(ctx context.Context, v any) (int64, error) {
	// Exact integer representations bypass the float64 pipeline so values
	// beyond 2^53 keep full precision.
	if i, exact := intOf(v); exact {
		if _, err := s.base.Parse(ctx, v); err != nil {
			return 0, err
		}
		return i, nil
	}
	n, ok := numberOf(v)
	if !ok && s.base.coerce {
		n, ok = coerceNumber(v)
	}
	if !ok {
		return 0, vld.TypeIssue("number", v, s.base.typeErrMsg)
	}
	if n != math.Trunc(n) || math.IsNaN(n) || math.IsInf(n, 0) {
		msg := s.intErrMsg
		if msg == "" {
			msg = "Expected integer, received fractional number"
		}
		return 0, vld.Issues{vld.Issue{
			Code:     vld.CodeNotInt,
			Message:  msg,
			Received: vld.FormatValueShort(v),
		}}
	}
	if _, err := s.base.Parse(ctx, v); err != nil {
		return 0, err
	}
	return int64(n), nil
}

// ZeroValue returns the lenient-mode fill value.
func (s *IntSchema) ZeroValue() any { return int64(0) }

// intOf extracts an int64 without going through float64, so integers wider
// than 2^53 keep their exact value.
func intOf(v any) (int64, bool) {
	switch t := v.(type) {
	case json.Number:
		i, err := t.Int64()
		return i, err == nil
	case int:
		return int64(t), true
	case int64:
		return t, true
	default:
		return 0, false
	}
}

// numberOf extracts a float64 from the value model without coercion.
func numberOf(v any) (float64, bool) {
	switch t := v.(type) {
	case json.Number:
		f, err := t.Float64()
		return f, err == nil
	case float64:
		return t, true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	default:
		return 0, false
	}
}

// coerceNumber applies the fixed coercion table: numeric strings via
// ParseFloat, bools to 0/1.
func coerceNumber(v any) (float64, bool) {
	switch t := v.(type) {
	case string:
		trimmed := strings.TrimSpace(t)
		if trimmed == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(trimmed, 64)
		return f, err == nil
	case bool:
		if t {
			return 1, true
		}
		return 0, true
	default:
		return 0, false
	}
}
