package vld

import (
	"fmt"
	"strings"

	"github.com/goccy/go-json"
)

// FlatError groups issue messages by top-level field, mirroring the shape
// browser form handling expects. Issues with an empty path land in
// FormErrors; everything else is keyed by the first path segment.
type FlatError struct {
	FormErrors  []string            `json:"formErrors"`
	FieldErrors map[string][]string `json:"fieldErrors"`
}

// Flatten collapses an issue list into a FlatError. Nested paths are reduced
// to their leading segment, so "profile.address.zip" files under "profile".
func Flatten(iss Issues) FlatError {
	out := FlatError{
		FormErrors:  []string{},
		FieldErrors: map[string][]string{},
	}
	for _, is := range iss {
		if len(is.Path) == 0 {
			out.FormErrors = append(out.FormErrors, is.Message)
			continue
		}
		key := is.Path[0].String()
		key = strings.TrimPrefix(key, ".")
		out.FieldErrors[key] = append(out.FieldErrors[key], is.Message)
	}
	return out
}

// ErrorTree mirrors the issue list as a tree: messages at this node in
// Errors, object children under Properties, array children under Items.
type ErrorTree struct {
	Errors     []string              `json:"errors"`
	Properties map[string]*ErrorTree `json:"properties,omitempty"`
	Items      map[int]*ErrorTree    `json:"items,omitempty"`
}

func newErrorTree() *ErrorTree { return &ErrorTree{Errors: []string{}} }

func (t *ErrorTree) child(seg PathSegment) *ErrorTree {
	if seg.IsField() {
		if t.Properties == nil {
			t.Properties = map[string]*ErrorTree{}
		}
		c, ok := t.Properties[seg.Field]
		if !ok {
			c = newErrorTree()
			t.Properties[seg.Field] = c
		}
		return c
	}
	if t.Items == nil {
		t.Items = map[int]*ErrorTree{}
	}
	c, ok := t.Items[seg.Index]
	if !ok {
		c = newErrorTree()
		t.Items[seg.Index] = c
	}
	return c
}

// Treeify arranges an issue list into an ErrorTree following each issue's
// full path.
func Treeify(iss Issues) *ErrorTree {
	root := newErrorTree()
	for _, is := range iss {
		node := root
		for _, seg := range is.Path {
			node = node.child(seg)
		}
		node.Errors = append(node.Errors, is.Message)
	}
	return root
}

// Prettify renders an issue list as human-oriented multi-line text:
//
//	✖ Expected number, received string
//	  → at .age, received "abc"
func Prettify(iss Issues) string {
	var b strings.Builder
	for i, is := range iss {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString("✖ ")
		b.WriteString(is.Message)
		if len(is.Path) > 0 || is.Received != "" {
			b.WriteString("\n  → at ")
			if len(is.Path) > 0 {
				b.WriteString(is.Path.String())
			} else {
				b.WriteString("(root)")
			}
			if is.Received != "" {
				fmt.Fprintf(&b, ", received %s", is.Received)
			}
		}
	}
	return b.String()
}

// WireIssue is the JSON projection of a single issue.
type WireIssue struct {
	Path    string `json:"path"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

// ErrorEnvelope is the stable wire contract for surfacing validation
// failures over HTTP-ish boundaries.
type ErrorEnvelope struct {
	Error  string      `json:"error"`
	Issues []WireIssue `json:"issues"`
}

// Envelope projects an issue list into the wire contract.
func Envelope(iss Issues) ErrorEnvelope {
	env := ErrorEnvelope{Error: "Validation failed", Issues: make([]WireIssue, 0, len(iss))}
	for _, is := range iss {
		env.Issues = append(env.Issues, WireIssue{
			Path:    is.Path.String(),
			Message: is.Message,
			Code:    is.Code,
		})
	}
	return env
}

// MarshalEnvelope serializes the wire envelope for an issue list.
func MarshalEnvelope(iss Issues) ([]byte, error) {
	return json.Marshal(Envelope(iss))
}

// Translator retrieves localized messages for issue codes. data carries
// issue metadata ("expected", "min", ...) for template substitution.
type Translator interface {
	Message(code string, data map[string]string) string
}

// Translate rewrites each issue's message through the Translator, leaving
// paths, codes and metadata untouched.
func Translate(iss Issues, tr Translator) Issues {
	if tr == nil {
		return iss
	}
	out := make(Issues, len(iss))
	for i, is := range iss {
		data := map[string]string{}
		if is.Expected != "" {
			data["expected"] = is.Expected
		}
		if is.Received != "" {
			data["received"] = is.Received
		}
		for k, v := range is.Params {
			data[k] = fmt.Sprintf("%v", v)
		}
		is.Message = tr.Message(is.Code, data)
		out[i] = is
	}
	return out
}
