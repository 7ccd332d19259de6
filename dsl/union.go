package dsl

import (
	"context"
	"fmt"
	"strings"

	vld "github.com/vldgo/vld"
)

// UnionSchema tries each branch in declaration order and returns the first
// success. On total failure the issues of the best-matching branch are
// reported: the branch whose issues reach the deepest path, first declared
// winning ties. When no branch even matched the input's basic structure, a
// single invalid_union issue is synthesized instead.
type UnionSchema struct {
	branches []vld.AnySchema
}

// Union builds a union over two or more branches.
func Union(branches ...vld.AnySchema) *UnionSchema {
	if len(branches) < 2 {
		panic("dsl: union needs at least two branches")
	}
	return &UnionSchema{branches: branches}
}

// Parse implements vld.Schema[any].
func (s *UnionSchema) Parse(ctx context.Context, v any) (any, error) {
	bestIdx := -1
	bestDepth := -1
	var bestIss vld.Issues

	for i, branch := range s.branches {
		out, err := branch.ParseAny(ctx, v)
		if err == nil {
			return out, nil
		}
		iss, ok := vld.AsIssues(err)
		if !ok {
			return nil, err
		}
		if !structureMatched(iss) {
			continue
		}
		depth := maxIssueDepth(iss)
		if depth > bestDepth {
			bestIdx, bestDepth, bestIss = i, depth, iss
		}
	}

	if bestIdx >= 0 {
		return nil, bestIss
	}
	return nil, vld.Issues{vld.Issue{
		Code:     vld.CodeInvalidUnion,
		Message:  "Input did not match any variant of the union",
		Received: vld.FormatValueShort(v),
	}}
}

// structureMatched reports whether a branch got past its top-level type
// check: any issue below the root, or any root issue other than a type
// mismatch, counts as a structural match.
func structureMatched(iss vld.Issues) bool {
	for _, is := range iss {
		if len(is.Path) > 0 {
			return true
		}
		if is.Code != vld.CodeInvalidType {
			return true
		}
	}
	return false
}

func maxIssueDepth(iss vld.Issues) int {
	depth := 0
	for _, is := range iss {
		if len(is.Path) > depth {
			depth = len(is.Path)
		}
	}
	return depth
}

type duVariant struct {
	key    string
	raw    any
	schema vld.AnySchema
}

// DiscriminatedUnionSchema picks a branch by the value of a discriminator
// field, so only one branch ever runs. Missing or unknown discriminator
// values report exactly one issue.
type DiscriminatedUnionSchema struct {
	discriminator string
	variants      []duVariant
	index         map[string]int
}

// DiscriminatedUnion builds a union dispatched on the named field. Add
// branches with Variant.
func DiscriminatedUnion(discriminator string) *DiscriminatedUnionSchema {
	return &DiscriminatedUnionSchema{
		discriminator: discriminator,
		index:         map[string]int{},
	}
}

// Variant registers a branch for the given discriminator value.
func (s *DiscriminatedUnionSchema) Variant(value any, schema vld.AnySchema) *DiscriminatedUnionSchema {
	key := vld.CanonicalKey(value)
	s.index[key] = len(s.variants)
	s.variants = append(s.variants, duVariant{key: key, raw: value, schema: schema})
	return s
}

// Parse implements vld.Schema[any].
func (s *DiscriminatedUnionSchema) Parse(ctx context.Context, v any) (any, error) {
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, vld.TypeIssue("object", v, "")
	}
	disc, present := obj[s.discriminator]
	if !present {
		return nil, vld.Issues{vld.Issue{
			Code:    vld.CodeDiscriminatorMissing,
			Message: fmt.Sprintf("Missing discriminator field %q", s.discriminator),
			Params:  map[string]any{"discriminator": s.discriminator},
		}}
	}
	i, ok := s.index[vld.CanonicalKey(disc)]
	if !ok {
		known := make([]string, len(s.variants))
		for j, variant := range s.variants {
			known[j] = fmt.Sprintf("%v", variant.raw)
		}
		return nil, vld.Issues{vld.Issue{
			Code:     vld.CodeDiscriminatorUnknown,
			Message:  fmt.Sprintf("Invalid discriminator value %v. Expected one of: %s", disc, strings.Join(known, ", ")),
			Received: vld.FormatValueShort(disc),
			Params:   map[string]any{"discriminator": s.discriminator, "options": known},
		}}
	}
	return s.variants[i].schema.ParseAny(ctx, v)
}

// ZeroValue returns the lenient-mode fill value.
func (s *DiscriminatedUnionSchema) ZeroValue() any { return map[string]any{} }
