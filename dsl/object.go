package dsl

import (
	"context"
	"fmt"
	"sort"

	vld "github.com/vldgo/vld"
)

// unknownMode controls handling of keys not declared on the object.
type unknownMode int

const (
	unknownStrip unknownMode = iota
	unknownStrict
	unknownPassthrough
)

type objectField struct {
	name   string
	schema vld.AnySchema
}

// whenRule validates targetField against an extra schema whenever
// condField holds condValue.
type whenRule struct {
	condField string
	condKey   string
	target    string
	schema    vld.AnySchema
}

// ObjectSchema validates objects with declared, ordered fields. Unknown keys
// are stripped by default; Strict rejects them and Passthrough keeps them.
// Absent fields are distinct from null fields: an absent required field
// reports a single required issue, while null is handed to the field schema.
type ObjectSchema struct {
	fields     []objectField
	mode       unknownMode
	catchall   vld.AnySchema
	rules      []whenRule
	typeErrMsg string
}

// Object returns a new empty object schema.
func Object() *ObjectSchema { return &ObjectSchema{} }

// TypeError sets a custom message for the type-mismatch issue.
func (s *ObjectSchema) TypeError(msg string) *ObjectSchema {
	s.typeErrMsg = msg
	return s
}

// Field declares a field. Declaration order is preserved in validation and
// error reporting. Redeclaring a name replaces the earlier schema in place.
func (s *ObjectSchema) Field(name string, schema vld.AnySchema) *ObjectSchema {
	for i := range s.fields {
		if s.fields[i].name == name {
			s.fields[i].schema = schema
			return s
		}
	}
	s.fields = append(s.fields, objectField{name: name, schema: schema})
	return s
}

// Strict rejects unknown keys with one issue each.
func (s *ObjectSchema) Strict() *ObjectSchema {
	s.mode = unknownStrict
	return s
}

// Strip silently drops unknown keys (the default).
func (s *ObjectSchema) Strip() *ObjectSchema {
	s.mode = unknownStrip
	return s
}

// Passthrough keeps unknown keys in the output unvalidated.
func (s *ObjectSchema) Passthrough() *ObjectSchema {
	s.mode = unknownPassthrough
	return s
}

// Catchall validates unknown keys with the given schema instead of applying
// the unknown-key mode.
func (s *ObjectSchema) Catchall(schema vld.AnySchema) *ObjectSchema {
	s.catchall = schema
	return s
}

// When validates targetField against an extra schema whenever condField
// holds condValue. The rule runs after field validation; absent fields
// compare as null.
func (s *ObjectSchema) When(condField string, condValue any, targetField string, schema vld.AnySchema) *ObjectSchema {
	s.rules = append(s.rules, whenRule{
		condField: condField,
		condKey:   vld.CanonicalKey(condValue),
		target:    targetField,
		schema:    schema,
	})
	return s
}

// Keys returns the declared field names in order.
func (s *ObjectSchema) Keys() []string {
	out := make([]string, len(s.fields))
	for i, f := range s.fields {
		out[i] = f.name
	}
	return out
}

func (s *ObjectSchema) clone() *ObjectSchema {
	dup := &ObjectSchema{
		mode:       s.mode,
		catchall:   s.catchall,
		typeErrMsg: s.typeErrMsg,
	}
	dup.fields = append([]objectField(nil), s.fields...)
	dup.rules = append([]whenRule(nil), s.rules...)
	return dup
}

// Pick returns a copy keeping only the named fields.
func (s *ObjectSchema) Pick(names ...string) *ObjectSchema {
	dup := s.clone()
	keep := make(map[string]bool, len(names))
	for _, n := range names {
		keep[n] = true
	}
	var fields []objectField
	for _, f := range dup.fields {
		if keep[f.name] {
			fields = append(fields, f)
		}
	}
	dup.fields = fields
	return dup
}

// Omit returns a copy without the named fields.
func (s *ObjectSchema) Omit(names ...string) *ObjectSchema {
	dup := s.clone()
	drop := make(map[string]bool, len(names))
	for _, n := range names {
		drop[n] = true
	}
	var fields []objectField
	for _, f := range dup.fields {
		if !drop[f.name] {
			fields = append(fields, f)
		}
	}
	dup.fields = fields
	return dup
}

// Extend returns a copy with the other object's fields added; name clashes
// take the other object's schema.
func (s *ObjectSchema) Extend(other *ObjectSchema) *ObjectSchema {
	dup := s.clone()
	for _, f := range other.fields {
		dup.Field(f.name, f.schema)
	}
	dup.rules = append(dup.rules, other.rules...)
	return dup
}

// Merge is an alias for Extend.
func (s *ObjectSchema) Merge(other *ObjectSchema) *ObjectSchema { return s.Extend(other) }

// Partial returns a copy with every field tolerating absence and null.
func (s *ObjectSchema) Partial() *ObjectSchema {
	dup := s.clone()
	for i := range dup.fields {
		dup.fields[i].schema = anyOptional{inner: dup.fields[i].schema}
	}
	return dup
}

// Required returns a copy with every field required again, undoing Partial
// and ignoring any absence handling the field schema provides.
func (s *ObjectSchema) Required() *ObjectSchema {
	dup := s.clone()
	for i := range dup.fields {
		inner := dup.fields[i].schema
		if opt, ok := inner.(anyOptional); ok {
			inner = opt.inner
		}
		dup.fields[i].schema = anyRequired{inner: inner}
	}
	return dup
}

// Parse implements vld.Schema[map[string]any].
func (s *ObjectSchema) Parse(ctx context.Context, v any) (map[string]any, error) {
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, vld.TypeIssue("object", v, s.typeErrMsg)
	}

	var iss vld.Issues
	out := make(map[string]any, len(obj))

	for _, f := range s.fields {
		raw, present := obj[f.name]
		if !present {
			val, include, herr := absentValue(ctx, f.schema)
			if herr == errFieldRequired {
				iss = vld.AppendIssues(iss, vld.Issue{
					Path:    vld.Path{vld.Field(f.name)},
					Code:    vld.CodeRequired,
					Message: "Required",
				})
				continue
			}
			if herr != nil {
				return nil, herr
			}
			if include {
				out[f.name] = val
			}
			continue
		}
		fv, err := f.schema.ParseAny(ctx, raw)
		if err != nil {
			if child, ok := vld.AsIssues(err); ok {
				iss = append(iss, vld.Prefix(child, vld.Field(f.name))...)
				continue
			}
			return nil, err
		}
		out[f.name] = fv
	}

	known := make(map[string]bool, len(s.fields))
	for _, f := range s.fields {
		known[f.name] = true
	}

	// Unknown keys are visited in sorted order so the issue list is stable
	// across runs.
	unknown := make([]string, 0, len(obj))
	for key := range obj {
		if !known[key] {
			unknown = append(unknown, key)
		}
	}
	sort.Strings(unknown)

	for _, key := range unknown {
		raw := obj[key]
		if s.catchall != nil {
			cv, err := s.catchall.ParseAny(ctx, raw)
			if err != nil {
				if child, ok := vld.AsIssues(err); ok {
					iss = append(iss, vld.Prefix(child, vld.Field(key))...)
					continue
				}
				return nil, err
			}
			out[key] = cv
			continue
		}
		switch s.mode {
		case unknownStrip:
		case unknownStrict:
			iss = vld.AppendIssues(iss, vld.Issue{
				Path:    vld.Path{vld.Field(key)},
				Code:    vld.CodeUnknownKey,
				Message: fmt.Sprintf("Unrecognized key: %q", key),
				Params:  map[string]any{"key": key},
			})
		case unknownPassthrough:
			out[key] = raw
		}
	}

	for _, rule := range s.rules {
		cond := obj[rule.condField]
		if vld.CanonicalKey(cond) != rule.condKey {
			continue
		}
		target := obj[rule.target]
		if _, err := rule.schema.ParseAny(ctx, target); err != nil {
			if child, ok := vld.AsIssues(err); ok {
				iss = append(iss, vld.Prefix(child, vld.Field(rule.target))...)
				continue
			}
			return nil, err
		}
	}

	if len(iss) > 0 {
		return nil, iss
	}
	return out, nil
}

// ZeroValue returns the lenient-mode fill value.
func (s *ObjectSchema) ZeroValue() any { return map[string]any{} }

// anyOptional tolerates absence and null around an erased schema. Produced
// by Partial.
type anyOptional struct{ inner vld.AnySchema }

func (a anyOptional) ParseAny(ctx context.Context, v any) (any, error) {
	if v == nil {
		return nil, nil
	}
	return a.inner.ParseAny(ctx, v)
}

func (a anyOptional) ParseAbsent(ctx context.Context) (any, bool, error) {
	return nil, false, nil
}

// anyRequired blocks absence handling around an erased schema. Produced by
// Required.
type anyRequired struct{ inner vld.AnySchema }

func (a anyRequired) ParseAny(ctx context.Context, v any) (any, error) {
	return a.inner.ParseAny(ctx, v)
}
