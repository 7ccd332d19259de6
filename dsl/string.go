package dsl

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/goccy/go-json"

	vld "github.com/vldgo/vld"
	"github.com/vldgo/vld/internal/scan"
)

type stringCheck struct {
	// key identifies the check category for WithMessages overrides
	// ("too_small", "invalid_email", ...).
	key    string
	code   string
	msg    string
	params map[string]any
	ok     func(s string) bool
}

const (
	transformTrim = iota
	transformLower
	transformUpper
)

// StringSchema validates string values. Build with String(), then chain
// checks; checks run in declaration order and every failure is reported.
type StringSchema struct {
	checks     []stringCheck
	transforms []int
	coerce     bool
	typeErrMsg string
}

// String returns a new string schema.
func String() *StringSchema { return &StringSchema{} }

// TypeError sets a custom message for the type-mismatch issue.
func (s *StringSchema) TypeError(msg string) *StringSchema {
	s.typeErrMsg = msg
	return s
}

// WithMessages overrides check messages in bulk by check key ("too_small",
// "invalid_email", ...). Return "" to keep the original message.
func (s *StringSchema) WithMessages(f func(key string) string) *StringSchema {
	for i := range s.checks {
		if msg := f(s.checks[i].key); msg != "" {
			s.checks[i].msg = msg
		}
	}
	return s
}

// Coerce enables number/bool to string coercion before the type check.
func (s *StringSchema) Coerce() *StringSchema {
	s.coerce = true
	return s
}

// Trim trims surrounding whitespace before checks run.
func (s *StringSchema) Trim() *StringSchema {
	s.transforms = append(s.transforms, transformTrim)
	return s
}

// ToLower lowercases the value before checks run.
func (s *StringSchema) ToLower() *StringSchema {
	s.transforms = append(s.transforms, transformLower)
	return s
}

// ToUpper uppercases the value before checks run.
func (s *StringSchema) ToUpper() *StringSchema {
	s.transforms = append(s.transforms, transformUpper)
	return s
}

// Min requires at least n characters (runes, inclusive).
func (s *StringSchema) Min(n int) *StringSchema {
	return s.MinMsg(n, fmt.Sprintf("String must be at least %d characters", n))
}

// MinMsg is Min with a custom message.
func (s *StringSchema) MinMsg(n int, msg string) *StringSchema {
	s.checks = append(s.checks, stringCheck{
		key: "too_small", code: vld.CodeTooSmall, msg: msg,
		params: map[string]any{"minimum": n},
		ok:     func(v string) bool { return utf8.RuneCountInString(v) >= n },
	})
	return s
}

// Max allows at most n characters (runes, inclusive).
func (s *StringSchema) Max(n int) *StringSchema {
	return s.MaxMsg(n, fmt.Sprintf("String must be at most %d characters", n))
}

// MaxMsg is Max with a custom message.
func (s *StringSchema) MaxMsg(n int, msg string) *StringSchema {
	s.checks = append(s.checks, stringCheck{
		key: "too_big", code: vld.CodeTooBig, msg: msg,
		params: map[string]any{"maximum": n},
		ok:     func(v string) bool { return utf8.RuneCountInString(v) <= n },
	})
	return s
}

// Length requires exactly n characters.
func (s *StringSchema) Length(n int) *StringSchema {
	return s.LengthMsg(n, fmt.Sprintf("String must be exactly %d characters", n))
}

// LengthMsg is Length with a custom message.
func (s *StringSchema) LengthMsg(n int, msg string) *StringSchema {
	s.checks = append(s.checks, stringCheck{
		key: "invalid_length", code: vld.CodeInvalidLength, msg: msg,
		params: map[string]any{"length": n},
		ok:     func(v string) bool { return utf8.RuneCountInString(v) == n },
	})
	return s
}

// NonEmpty requires at least one character.
func (s *StringSchema) NonEmpty() *StringSchema {
	return s.NonEmptyMsg("String must not be empty")
}

// NonEmptyMsg is NonEmpty with a custom message.
func (s *StringSchema) NonEmptyMsg(msg string) *StringSchema {
	s.checks = append(s.checks, stringCheck{
		key: "non_empty", code: vld.CodeTooSmall, msg: msg,
		params: map[string]any{"minimum": 1},
		ok:     func(v string) bool { return v != "" },
	})
	return s
}

// StartsWith requires the given prefix.
func (s *StringSchema) StartsWith(prefix string) *StringSchema {
	return s.StartsWithMsg(prefix, fmt.Sprintf("String must start with %q", prefix))
}

// StartsWithMsg is StartsWith with a custom message.
func (s *StringSchema) StartsWithMsg(prefix, msg string) *StringSchema {
	s.checks = append(s.checks, stringCheck{
		key: "invalid_starts_with", code: vld.CodeInvalidString, msg: msg,
		params: map[string]any{"format": "starts_with", "prefix": prefix},
		ok:     func(v string) bool { return strings.HasPrefix(v, prefix) },
	})
	return s
}

// EndsWith requires the given suffix.
func (s *StringSchema) EndsWith(suffix string) *StringSchema {
	return s.EndsWithMsg(suffix, fmt.Sprintf("String must end with %q", suffix))
}

// EndsWithMsg is EndsWith with a custom message.
func (s *StringSchema) EndsWithMsg(suffix, msg string) *StringSchema {
	s.checks = append(s.checks, stringCheck{
		key: "invalid_ends_with", code: vld.CodeInvalidString, msg: msg,
		params: map[string]any{"format": "ends_with", "suffix": suffix},
		ok:     func(v string) bool { return strings.HasSuffix(v, suffix) },
	})
	return s
}

// Contains requires the given substring.
func (s *StringSchema) Contains(sub string) *StringSchema {
	return s.ContainsMsg(sub, fmt.Sprintf("String must contain %q", sub))
}

// ContainsMsg is Contains with a custom message.
func (s *StringSchema) ContainsMsg(sub, msg string) *StringSchema {
	s.checks = append(s.checks, stringCheck{
		key: "invalid_contains", code: vld.CodeInvalidString, msg: msg,
		params: map[string]any{"format": "contains", "substring": sub},
		ok:     func(v string) bool { return strings.Contains(v, sub) },
	})
	return s
}

func (s *StringSchema) format(key, name, msg string, ok func(string) bool) *StringSchema {
	s.checks = append(s.checks, stringCheck{
		key: key, code: vld.CodeInvalidString, msg: msg,
		params: map[string]any{"format": name},
		ok:     ok,
	})
	return s
}

// Email requires a valid email address.
func (s *StringSchema) Email() *StringSchema { return s.EmailMsg("Invalid email address") }

// EmailMsg is Email with a custom message.
func (s *StringSchema) EmailMsg(msg string) *StringSchema {
	return s.format("invalid_email", "email", msg, scan.Email)
}

// URL requires a valid http or https URL.
func (s *StringSchema) URL() *StringSchema { return s.URLMsg("Invalid URL") }

// URLMsg is URL with a custom message.
func (s *StringSchema) URLMsg(msg string) *StringSchema {
	return s.format("invalid_url", "url", msg, scan.URL)
}

// UUID requires a canonical UUID.
func (s *StringSchema) UUID() *StringSchema { return s.UUIDMsg("Invalid UUID") }

// UUIDMsg is UUID with a custom message.
func (s *StringSchema) UUIDMsg(msg string) *StringSchema {
	return s.format("invalid_uuid", "uuid", msg, scan.UUID)
}

// IPv4 requires a dotted-quad IPv4 address.
func (s *StringSchema) IPv4() *StringSchema { return s.IPv4Msg("Invalid IPv4 address") }

// IPv4Msg is IPv4 with a custom message.
func (s *StringSchema) IPv4Msg(msg string) *StringSchema {
	return s.format("invalid_ipv4", "ipv4", msg, scan.IPv4)
}

// IPv6 requires an IPv6 address.
func (s *StringSchema) IPv6() *StringSchema { return s.IPv6Msg("Invalid IPv6 address") }

// IPv6Msg is IPv6 with a custom message.
func (s *StringSchema) IPv6Msg(msg string) *StringSchema {
	return s.format("invalid_ipv6", "ipv6", msg, scan.IPv6)
}

// Base64 requires a standard-alphabet Base64 string.
func (s *StringSchema) Base64() *StringSchema { return s.Base64Msg("Invalid Base64 string") }

// Base64Msg is Base64 with a custom message.
func (s *StringSchema) Base64Msg(msg string) *StringSchema {
	return s.format("invalid_base64", "base64", msg, scan.Base64)
}

// ISODate requires a YYYY-MM-DD date.
func (s *StringSchema) ISODate() *StringSchema {
	return s.ISODateMsg("Invalid ISO date (expected YYYY-MM-DD)")
}

// ISODateMsg is ISODate with a custom message.
func (s *StringSchema) ISODateMsg(msg string) *StringSchema {
	return s.format("invalid_iso_date", "iso_date", msg, scan.ISODate)
}

// ISOTime requires an HH:MM[:SS[.frac]] time.
func (s *StringSchema) ISOTime() *StringSchema {
	return s.ISOTimeMsg("Invalid ISO time (expected HH:MM[:SS])")
}

// ISOTimeMsg is ISOTime with a custom message.
func (s *StringSchema) ISOTimeMsg(msg string) *StringSchema {
	return s.format("invalid_iso_time", "iso_time", msg, scan.ISOTime)
}

// ISODateTime requires an ISO 8601 datetime with optional timezone suffix.
func (s *StringSchema) ISODateTime() *StringSchema {
	return s.ISODateTimeMsg("Invalid ISO datetime")
}

// ISODateTimeMsg is ISODateTime with a custom message.
func (s *StringSchema) ISODateTimeMsg(msg string) *StringSchema {
	return s.format("invalid_iso_datetime", "iso_datetime", msg, scan.ISODateTime)
}

// Hostname requires an RFC 1123 hostname.
func (s *StringSchema) Hostname() *StringSchema { return s.HostnameMsg("Invalid hostname") }

// HostnameMsg is Hostname with a custom message.
func (s *StringSchema) HostnameMsg(msg string) *StringSchema {
	return s.format("invalid_hostname", "hostname", msg, scan.Hostname)
}

// CUID2 requires a CUID2 identifier.
func (s *StringSchema) CUID2() *StringSchema { return s.CUID2Msg("Invalid CUID2") }

// CUID2Msg is CUID2 with a custom message.
func (s *StringSchema) CUID2Msg(msg string) *StringSchema {
	return s.format("invalid_cuid2", "cuid2", msg, scan.CUID2)
}

// ULID requires a ULID identifier.
func (s *StringSchema) ULID() *StringSchema { return s.ULIDMsg("Invalid ULID") }

// ULIDMsg is ULID with a custom message.
func (s *StringSchema) ULIDMsg(msg string) *StringSchema {
	return s.format("invalid_ulid", "ulid", msg, scan.ULID)
}

// NanoID requires a NanoID identifier.
func (s *StringSchema) NanoID() *StringSchema { return s.NanoIDMsg("Invalid NanoID") }

// NanoIDMsg is NanoID with a custom message.
func (s *StringSchema) NanoIDMsg(msg string) *StringSchema {
	return s.format("invalid_nanoid", "nanoid", msg, scan.NanoID)
}

// Emoji requires at least one emoji codepoint.
func (s *StringSchema) Emoji() *StringSchema { return s.EmojiMsg("Invalid emoji") }

// EmojiMsg is Emoji with a custom message.
func (s *StringSchema) EmojiMsg(msg string) *StringSchema {
	return s.format("invalid_emoji", "emoji", msg, scan.Emoji)
}

// Slug requires lowercase alphanumeric runs separated by single hyphens.
func (s *StringSchema) Slug() *StringSchema { return s.SlugMsg("Invalid slug") }

// SlugMsg is Slug with a custom message.
func (s *StringSchema) SlugMsg(msg string) *StringSchema {
	return s.format("invalid_slug", "slug", msg, scan.Slug)
}

// Parse implements vld.Schema[string].
func (s *StringSchema) Parse(ctx context.Context, v any) (string, error) {
	str, ok := v.(string)
	if !ok {
		if s.coerce {
			str, ok = coerceString(v)
		}
		if !ok {
			return "", vld.TypeIssue("string", v, s.typeErrMsg)
		}
	}

	for _, t := range s.transforms {
		switch t {
		case transformTrim:
			str = strings.TrimSpace(str)
		case transformLower:
			str = strings.ToLower(str)
		case transformUpper:
			str = strings.ToUpper(str)
		}
	}

	var iss vld.Issues
	for _, c := range s.checks {
		if c.ok(str) {
			continue
		}
		iss = vld.AppendIssues(iss, vld.Issue{
			Code:     c.code,
			Message:  c.msg,
			Received: vld.FormatValueShort(str),
			Params:   c.params,
		})
		if vld.IsFailFast(ctx) {
			break
		}
	}
	if len(iss) > 0 {
		return "", iss
	}
	return str, nil
}

// ZeroValue returns the lenient-mode fill value.
func (s *StringSchema) ZeroValue() any { return "" }

func coerceString(v any) (string, bool) {
	switch t := v.(type) {
	case json.Number:
		return t.String(), true
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64), true
	case bool:
		if t {
			return "true", true
		}
		return "false", true
	default:
		return "", false
	}
}
