package dsl

import (
	"context"

	vld "github.com/vldgo/vld"
)

// ParseLenient validates every declared field of an object schema
// independently instead of failing the parse as a whole. Each field's
// outcome is recorded in a vld.ParseResult; failed fields contribute their
// schema's type-appropriate zero (or declared default) to the aggregate
// value. Unknown keys follow the object's configured policy but never fail
// the lenient parse.
func ParseLenient(ctx context.Context, obj *ObjectSchema, v any) (*vld.ParseResult, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, vld.TypeIssue("object", v, obj.typeErrMsg)
	}

	fields := make([]vld.FieldResult, 0, len(obj.fields))
	value := make(map[string]any, len(obj.fields))

	for _, f := range obj.fields {
		raw, present := m[f.name]
		fr := vld.FieldResult{Name: f.name}

		if !present {
			val, include, herr := absentValue(ctx, f.schema)
			if herr == errFieldRequired {
				fr.Issues = vld.Issues{vld.Issue{
					Path:    vld.Path{vld.Field(f.name)},
					Code:    vld.CodeRequired,
					Message: "Required",
				}}
				fr.Value = vld.ZeroValueOf(f.schema)
				value[f.name] = fr.Value
			} else if herr != nil {
				return nil, herr
			} else if include {
				fr.Value = val
				value[f.name] = val
			}
			fields = append(fields, fr)
			continue
		}

		fr.Input = raw
		out, err := f.schema.ParseAny(ctx, raw)
		if err != nil {
			child, ok := vld.AsIssues(err)
			if !ok {
				return nil, err
			}
			fr.Issues = vld.Prefix(child, vld.Field(f.name))
			fr.Value = vld.ZeroValueOf(f.schema)
		} else {
			fr.Value = out
		}
		value[f.name] = fr.Value
		fields = append(fields, fr)
	}

	if obj.mode == unknownPassthrough {
		known := make(map[string]bool, len(obj.fields))
		for _, f := range obj.fields {
			known[f.name] = true
		}
		for key, raw := range m {
			if !known[key] {
				value[key] = raw
			}
		}
	}

	return vld.NewParseResult(fields, value), nil
}
