package vld

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Input produces a value-model value from some external representation.
// Decoding failures are reported as *MalformedInputError and never as Issues;
// the two error classes stay disjoint so callers can tell "input is not even
// parseable" apart from "input parsed but violates the schema".
type Input interface {
	Decode() (any, error)
}

// JSONBytes decodes a JSON document from raw bytes.
type JSONBytes []byte

func (b JSONBytes) Decode() (any, error) { return decodeJSON([]byte(b)) }

// JSONString decodes a JSON document from a string.
type JSONString string

func (s JSONString) Decode() (any, error) { return decodeJSON([]byte(s)) }

// YAMLBytes decodes a YAML document from raw bytes.
type YAMLBytes []byte

func (b YAMLBytes) Decode() (any, error) { return decodeYAML([]byte(b)) }

// YAMLString decodes a YAML document from a string.
type YAMLString string

func (s YAMLString) Decode() (any, error) { return decodeYAML([]byte(s)) }

// File decodes a document from disk, choosing YAML for .yaml/.yml
// extensions and JSON otherwise.
type File string

func (f File) Decode() (any, error) {
	data, err := os.ReadFile(string(f))
	if err != nil {
		return nil, &MalformedInputError{Format: "file", Err: errors.Wrapf(err, "read %s", string(f))}
	}
	switch strings.ToLower(filepath.Ext(string(f))) {
	case ".yaml", ".yml":
		return decodeYAML(data)
	default:
		return decodeJSON(data)
	}
}

// ValueOf wraps an in-memory value already shaped like decoded JSON. No
// projection is performed; the value is handed to the schema as-is.
type ValueOf struct{ V any }

func (v ValueOf) Decode() (any, error) { return v.V, nil }

// ParseFrom decodes in and parses the result with s. A decode failure
// surfaces as *MalformedInputError; a validation failure as Issues.
func ParseFrom[T any](ctx context.Context, s Schema[T], in Input) (T, error) {
	v, err := in.Decode()
	if err != nil {
		var zero T
		return zero, err
	}
	return s.Parse(ctx, v)
}

func decodeJSON(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, &MalformedInputError{Format: "json", Err: err}
	}
	// Reject trailing non-whitespace after the first document.
	var trailing any
	if err := dec.Decode(&trailing); err == nil {
		return nil, &MalformedInputError{Format: "json", Err: errors.New("trailing data after JSON document")}
	}
	return v, nil
}

func decodeYAML(data []byte) (any, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, &MalformedInputError{Format: "yaml", Err: err}
	}
	return normalizeYAML(raw), nil
}

// normalizeYAML rewrites yaml.v3 output into the value model: map keys become
// strings, integers and floats become json.Number, nested containers are
// rewritten recursively.
func normalizeYAML(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = normalizeYAML(e)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[toKeyString(k)] = normalizeYAML(e)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = normalizeYAML(e)
		}
		return out
	case int:
		return json.Number(strconv.FormatInt(int64(t), 10))
	case int64:
		return json.Number(strconv.FormatInt(t, 10))
	case uint64:
		return json.Number(strconv.FormatUint(t, 10))
	case float64:
		return json.Number(strconv.FormatFloat(t, 'g', -1, 64))
	default:
		return v
	}
}

func toKeyString(k any) string {
	if s, ok := k.(string); ok {
		return s
	}
	b, err := json.Marshal(k)
	if err != nil {
		return ""
	}
	return strings.Trim(string(b), `"`)
}
