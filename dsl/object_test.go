package dsl_test

import (
	"context"
	"testing"

	"github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"

	vld "github.com/vldgo/vld"
	g "github.com/vldgo/vld/dsl"
)

// TestObject_AccumulatesAcrossFields pins the central accumulation contract:
// every failing field reports, not just the first.
func TestObject_AccumulatesAcrossFields(t *testing.T) {
	ctx := context.Background()
	user := g.Object().
		Field("name", g.String().Min(2).Max(50)).
		Field("email", g.String().Email())

	_, err := user.Parse(ctx, map[string]any{"name": "A", "email": "bad"})
	iss, ok := vld.AsIssues(err)
	if !ok || len(iss) != 2 {
		t.Fatalf("expected exactly 2 issues, got %v", err)
	}
	if iss[0].Path.String() != ".name" || iss[1].Path.String() != ".email" {
		t.Fatalf("unexpected paths: %s, %s", iss[0].Path, iss[1].Path)
	}
}

func TestObject_AbsentVersusNull(t *testing.T) {
	ctx := context.Background()
	s := g.Object().Field("name", g.String())

	// absent required field: one required issue
	_, err := s.Parse(ctx, map[string]any{})
	iss, _ := vld.AsIssues(err)
	if len(iss) != 1 || iss[0].Code != vld.CodeRequired || iss[0].Path.String() != ".name" {
		t.Fatalf("expected required at .name, got %v", iss)
	}

	// explicit null reaches the field schema and fails its type check
	_, err = s.Parse(ctx, map[string]any{"name": nil})
	iss, _ = vld.AsIssues(err)
	if len(iss) != 1 || iss[0].Code != vld.CodeInvalidType {
		t.Fatalf("expected invalid_type for null, got %v", iss)
	}
}

func TestObject_UnknownKeyPolicies(t *testing.T) {
	ctx := context.Background()
	base := map[string]any{"name": "Ada", "extra": true}

	// strip (default) drops the key
	v, err := g.Object().Field("name", g.String()).Parse(ctx, base)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, ok := v["extra"]; ok {
		t.Fatalf("expected extra stripped, got %v", v)
	}

	// strict reports it
	_, err = g.Object().Field("name", g.String()).Strict().Parse(ctx, base)
	iss, _ := vld.AsIssues(err)
	if len(iss) != 1 || iss[0].Code != vld.CodeUnknownKey || iss[0].Path.String() != ".extra" {
		t.Fatalf("expected unknown_key at .extra, got %v", iss)
	}

	// passthrough keeps it
	v, err = g.Object().Field("name", g.String()).Passthrough().Parse(ctx, base)
	if err != nil || v["extra"] != true {
		t.Fatalf("expected extra kept, got v=%v err=%v", v, err)
	}
}

// TestObject_UnknownKeyOrderStable pins deterministic issue ordering:
// unknown keys report in sorted order regardless of map iteration order.
func TestObject_UnknownKeyOrderStable(t *testing.T) {
	ctx := context.Background()
	s := g.Object().Field("name", g.String()).Strict()
	in := map[string]any{"name": "x", "zeta": 1.0, "alpha": 2.0, "mid": 3.0}

	for run := 0; run < 5; run++ {
		_, err := s.Parse(ctx, in)
		iss, _ := vld.AsIssues(err)
		if len(iss) != 3 {
			t.Fatalf("expected 3 unknown_key issues, got %v", iss)
		}
		got := []string{iss[0].Path.String(), iss[1].Path.String(), iss[2].Path.String()}
		if diff := cmp.Diff([]string{".alpha", ".mid", ".zeta"}, got); diff != "" {
			t.Fatalf("unstable issue order (-want +got):\n%s", diff)
		}
	}
}

func TestObject_Catchall(t *testing.T) {
	ctx := context.Background()
	s := g.Object().Field("name", g.String()).Catchall(g.Number())

	v, err := s.Parse(ctx, map[string]any{"name": "x", "score": json.Number("9")})
	if err != nil || v["score"] != 9.0 {
		t.Fatalf("expected catchall-validated score, got v=%v err=%v", v, err)
	}

	_, err = s.Parse(ctx, map[string]any{"name": "x", "score": "high"})
	iss, _ := vld.AsIssues(err)
	if len(iss) != 1 || iss[0].Path.String() != ".score" {
		t.Fatalf("expected issue at .score, got %v", iss)
	}
}

func TestObject_OptionalDefaultNullable(t *testing.T) {
	ctx := context.Background()
	s := g.Object().
		Field("id", g.String()).
		Field("nickname", g.Optional[string](g.String())).
		Field("role", g.Default[string](g.Enum("admin", "user"), "user")).
		Field("bio", g.Nullable[string](g.String()))

	v, err := s.Parse(ctx, map[string]any{"id": "u1", "bio": nil})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, present := v["nickname"]; present {
		t.Fatalf("absent optional field should stay absent, got %v", v)
	}
	if v["role"] != "user" {
		t.Fatalf("expected default role, got %v", v["role"])
	}
	if v["bio"] != nil {
		t.Fatalf("expected nil bio, got %v", v["bio"])
	}

	// nullable does not excuse absence
	_, err = s.Parse(ctx, map[string]any{"id": "u1"})
	iss, _ := vld.AsIssues(err)
	if len(iss) != 1 || iss[0].Code != vld.CodeRequired || iss[0].Path.String() != ".bio" {
		t.Fatalf("expected required at .bio, got %v", iss)
	}
}

// TestObject_Nullish pins the combined tolerance: absence omits the key and
// null maps to a nil pointer, while invalid present values still fail.
func TestObject_Nullish(t *testing.T) {
	ctx := context.Background()
	s := g.Object().
		Field("id", g.String()).
		Field("note", g.Nullish[string](g.String().Min(2)))

	// absent: key omitted, no issue
	v, err := s.Parse(ctx, map[string]any{"id": "u1"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, present := v["note"]; present {
		t.Fatalf("absent nullish field should stay absent, got %v", v)
	}

	// null: key present with nil value, no issue
	v, err = s.Parse(ctx, map[string]any{"id": "u1", "note": nil})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if note, present := v["note"]; !present || note != nil {
		t.Fatalf("null nullish field should be nil, got %v", v)
	}

	// present non-null values still validate
	_, err = s.Parse(ctx, map[string]any{"id": "u1", "note": "x"})
	iss, _ := vld.AsIssues(err)
	if len(iss) != 1 || iss[0].Path.String() != ".note" {
		t.Fatalf("expected min failure at .note, got %v", iss)
	}
}

func TestObject_NestedPaths(t *testing.T) {
	ctx := context.Background()
	s := g.Object().
		Field("profile", g.Object().
			Field("tags", g.Array[string](g.String().NonEmpty())))

	_, err := s.Parse(ctx, map[string]any{
		"profile": map[string]any{"tags": []any{"ok", ""}},
	})
	iss, _ := vld.AsIssues(err)
	if len(iss) != 1 || iss[0].Path.String() != ".profile.tags[1]" {
		t.Fatalf("expected issue at .profile.tags[1], got %v", iss)
	}
}

func TestObject_StructuralOps(t *testing.T) {
	ctx := context.Background()
	base := g.Object().
		Field("id", g.String()).
		Field("name", g.String()).
		Field("email", g.String().Email())

	picked := base.Pick("id", "name")
	if diff := cmp.Diff([]string{"id", "name"}, picked.Keys()); diff != "" {
		t.Fatalf("pick keys mismatch (-want +got):\n%s", diff)
	}

	omitted := base.Omit("email")
	if _, err := omitted.Parse(ctx, map[string]any{"id": "1", "name": "x"}); err != nil {
		t.Fatalf("omitted schema should not require email: %v", err)
	}

	extended := base.Extend(g.Object().Field("age", g.Int()))
	if len(extended.Keys()) != 4 {
		t.Fatalf("expected 4 keys after extend, got %v", extended.Keys())
	}

	partial := base.Partial()
	if _, err := partial.Parse(ctx, map[string]any{}); err != nil {
		t.Fatalf("partial schema should accept empty object: %v", err)
	}

	required := partial.Required()
	_, err := required.Parse(ctx, map[string]any{})
	iss, _ := vld.AsIssues(err)
	if len(iss) != 3 {
		t.Fatalf("expected 3 required issues after Required, got %v", iss)
	}

	// base is untouched by the structural ops
	if len(base.Keys()) != 3 {
		t.Fatalf("base mutated: %v", base.Keys())
	}
}

func TestObject_WhenConditionalRule(t *testing.T) {
	ctx := context.Background()
	s := g.Object().
		Field("role", g.Enum("admin", "user")).
		Field("admin_key", g.Optional[string](g.String())).
		When("role", "admin", "admin_key", g.String().Min(10))

	if _, err := s.Parse(ctx, map[string]any{"role": "user"}); err != nil {
		t.Fatalf("rule must not fire for non-matching condition: %v", err)
	}

	_, err := s.Parse(ctx, map[string]any{"role": "admin", "admin_key": "short"})
	iss, _ := vld.AsIssues(err)
	if len(iss) != 1 || iss[0].Path.String() != ".admin_key" {
		t.Fatalf("expected conditional issue at .admin_key, got %v", iss)
	}

	if _, err := s.Parse(ctx, map[string]any{"role": "admin", "admin_key": "long-enough-key"}); err != nil {
		t.Fatalf("expected conditional pass: %v", err)
	}
}
