package dsl

import (
	"context"
	"fmt"
	"time"

	vld "github.com/vldgo/vld"
)

// TimeSchema parses RFC 3339 timestamp strings into time.Time.
type TimeSchema struct {
	min, max   *time.Time
	minMsg     string
	maxMsg     string
	typeErrMsg string
}

// Time returns a new RFC 3339 timestamp schema.
func Time() *TimeSchema { return &TimeSchema{} }

// TypeError sets a custom message for type/format mismatch.
func (s *TimeSchema) TypeError(msg string) *TimeSchema {
	s.typeErrMsg = msg
	return s
}

// Min requires the timestamp to be at or after t (inclusive).
func (s *TimeSchema) Min(t time.Time) *TimeSchema {
	s.min = &t
	s.minMsg = fmt.Sprintf("Time must be on or after %s", t.Format(time.RFC3339))
	return s
}

// Max requires the timestamp to be at or before t (inclusive).
func (s *TimeSchema) Max(t time.Time) *TimeSchema {
	s.max = &t
	s.maxMsg = fmt.Sprintf("Time must be on or before %s", t.Format(time.RFC3339))
	return s
}

// Parse implements vld.Schema[time.Time].
func (s *TimeSchema) Parse(ctx context.Context, v any) (time.Time, error) {
	str, ok := v.(string)
	if !ok {
		return time.Time{}, vld.TypeIssue("string", v, s.typeErrMsg)
	}
	t, err := time.Parse(time.RFC3339, str)
	if err != nil {
		msg := s.typeErrMsg
		if msg == "" {
			msg = "Invalid RFC 3339 timestamp"
		}
		return time.Time{}, vld.Issues{vld.Issue{
			Code:     vld.CodeInvalidString,
			Message:  msg,
			Received: vld.FormatValueShort(v),
			Params:   map[string]any{"format": "rfc3339"},
		}}
	}
	var iss vld.Issues
	if s.min != nil && t.Before(*s.min) {
		iss = vld.AppendIssues(iss, vld.Issue{
			Code: vld.CodeTooSmall, Message: s.minMsg,
			Received: vld.FormatValueShort(str),
			Params:   map[string]any{"minimum": s.min.Format(time.RFC3339)},
		})
	}
	if s.max != nil && t.After(*s.max) {
		iss = vld.AppendIssues(iss, vld.Issue{
			Code: vld.CodeTooBig, Message: s.maxMsg,
			Received: vld.FormatValueShort(str),
			Params:   map[string]any{"maximum": s.max.Format(time.RFC3339)},
		})
	}
	if len(iss) > 0 {
		return time.Time{}, iss
	}
	return t, nil
}

// ZeroValue returns the lenient-mode fill value.
func (s *TimeSchema) ZeroValue() any { return time.Time{} }

// DateSchema parses YYYY-MM-DD date strings into time.Time at midnight UTC.
type DateSchema struct {
	inner TimeSchema
}

// Date returns a new calendar-date schema.
func Date() *DateSchema { return &DateSchema{} }

// TypeError sets a custom message for type/format mismatch.
func (s *DateSchema) TypeError(msg string) *DateSchema {
	s.inner.typeErrMsg = msg
	return s
}

// Min requires the date to be on or after the given YYYY-MM-DD date.
func (s *DateSchema) Min(date string) *DateSchema {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(fmt.Sprintf("dsl: invalid date literal %q", date))
	}
	s.inner.min = &t
	s.inner.minMsg = fmt.Sprintf("Date must be on or after %s", date)
	return s
}

// Max requires the date to be on or before the given YYYY-MM-DD date.
func (s *DateSchema) Max(date string) *DateSchema {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(fmt.Sprintf("dsl: invalid date literal %q", date))
	}
	s.inner.max = &t
	s.inner.maxMsg = fmt.Sprintf("Date must be on or before %s", date)
	return s
}

// Parse implements vld.Schema[time.Time].
func (s *DateSchema) Parse(ctx context.Context, v any) (time.Time, error) {
	str, ok := v.(string)
	if !ok {
		return time.Time{}, vld.TypeIssue("string", v, s.inner.typeErrMsg)
	}
	t, err := time.Parse("2006-01-02", str)
	if err != nil {
		msg := s.inner.typeErrMsg
		if msg == "" {
			msg = "Invalid ISO date (expected YYYY-MM-DD)"
		}
		return time.Time{}, vld.Issues{vld.Issue{
			Code:     vld.CodeInvalidString,
			Message:  msg,
			Received: vld.FormatValueShort(v),
			Params:   map[string]any{"format": "iso_date"},
		}}
	}
	var iss vld.Issues
	if s.inner.min != nil && t.Before(*s.inner.min) {
		iss = vld.AppendIssues(iss, vld.Issue{
			Code: vld.CodeTooSmall, Message: s.inner.minMsg,
			Received: vld.FormatValueShort(str),
		})
	}
	if s.inner.max != nil && t.After(*s.inner.max) {
		iss = vld.AppendIssues(iss, vld.Issue{
			Code: vld.CodeTooBig, Message: s.inner.maxMsg,
			Received: vld.FormatValueShort(str),
		})
	}
	if len(iss) > 0 {
		return time.Time{}, iss
	}
	return t, nil
}

// ZeroValue returns the lenient-mode fill value.
func (s *DateSchema) ZeroValue() any { return time.Time{} }
