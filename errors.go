package vld

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeInvalidType          = "invalid_type"
	CodeRequired             = "required"
	CodeUnknownKey           = "unknown_key"
	CodeTooSmall             = "too_small"
	CodeTooBig               = "too_big"
	CodeInvalidString        = "invalid_string"
	CodeInvalidLength        = "invalid_length"
	CodeNotInt               = "not_int"
	CodeNotFinite            = "not_finite"
	CodeNotMultipleOf        = "not_multiple_of"
	CodeInvalidLiteral       = "invalid_literal"
	CodeInvalidEnum          = "invalid_enum"
	CodeInvalidUnion         = "invalid_union"
	CodeDiscriminatorMissing = "discriminator_missing"
	CodeDiscriminatorUnknown = "discriminator_unknown"
	CodeInvalidTuple         = "invalid_tuple_length"
	CodeDuplicateItem        = "duplicate_item"
	CodeRecursionLimit       = "recursion_limit_exceeded"
	CodeParseError           = "parse_error"
	CodeCustom               = "custom"
)

// PathSegment is one step in a validation path: an object field name or an
// array index.
type PathSegment struct {
	Field string
	Index int
	key   bool
}

// Field returns a field-name path segment.
func Field(name string) PathSegment { return PathSegment{Field: name, key: true} }

// Index returns an array-index path segment.
func Index(i int) PathSegment { return PathSegment{Index: i} }

// IsField reports whether the segment addresses an object field.
func (s PathSegment) IsField() bool { return s.key }

func (s PathSegment) String() string {
	if s.key {
		return "." + s.Field
	}
	return "[" + strconv.Itoa(s.Index) + "]"
}

// Path is the root-to-leaf location of an issue, recorded in the order checks
// were attempted.
type Path []PathSegment

func (p Path) String() string {
	b := &strings.Builder{}
	for _, seg := range p {
		b.WriteString(seg.String())
	}
	return b.String()
}

// Issue represents a single validation entry.
type Issue struct {
	Path    Path
	Code    string // One of the codes listed above.
	Message string
	// Expected carries the type tag for invalid_type issues. Received carries
	// a short rendering of the offending value, truncated for display.
	Expected string
	Received string
	// Params carries structured parameters (e.g., {"minimum":1, "maximum":10})
	// for i18n and observability.
	Params map[string]any
}

// Issues is a collection of validation errors that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. invalid_type at .name
		if len(it.Path) > 0 {
			fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
		} else {
			b.WriteString(it.Code)
		}
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// Prefix rebases every issue under the given parent segment. Used by
// collection and object schemas when surfacing child issues.
func Prefix(iss Issues, seg PathSegment) Issues {
	for i := range iss {
		iss[i].Path = append(Path{seg}, iss[i].Path...)
	}
	return iss
}

// SingleIssue builds an Issues value holding exactly one entry.
func SingleIssue(code, msg string) Issues {
	return Issues{Issue{Code: code, Message: msg}}
}

// TypeIssue builds the canonical invalid_type issue for a value, recording
// the expected type tag and a short rendering of what arrived.
func TypeIssue(expected string, v any, override string) Issues {
	received := TypeName(v)
	msg := override
	if msg == "" {
		msg = fmt.Sprintf("Expected %s, received %s", expected, received)
	}
	return Issues{Issue{
		Code:     CodeInvalidType,
		Message:  msg,
		Expected: expected,
		Received: FormatValueShort(v),
		Params:   map[string]any{"expected": expected, "received": received},
	}}
}

// MalformedInputError reports that raw input could not be converted into the
// value model at all. It is deliberately distinct from Issues: no partial
// tree exists to validate, so the conversion boundary fails hard with a
// single error instead of accumulating.
type MalformedInputError struct {
	Format string // "json", "yaml", "file"
	Err    error
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("vld: malformed %s input: %v", e.Format, e.Err)
}

func (e *MalformedInputError) Unwrap() error { return e.Err }

// IsMalformedInput reports whether err originates from the input conversion
// boundary rather than from validation.
func IsMalformedInput(err error) bool {
	var me *MalformedInputError
	return errors.As(err, &me)
}
