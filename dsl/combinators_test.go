package dsl_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/goccy/go-json"

	vld "github.com/vldgo/vld"
	g "github.com/vldgo/vld/dsl"
)

func TestRefineAndSuperRefine(t *testing.T) {
	ctx := context.Background()

	pw := g.Refine[string](g.String().Min(8), func(s string) bool {
		return strings.ContainsAny(s, "0123456789")
	}, "Password must contain a digit")

	if _, err := pw.Parse(ctx, "hunter42z"); err != nil {
		t.Fatalf("expected refine pass: %v", err)
	}
	_, err := pw.Parse(ctx, "hunterhunter")
	iss, _ := vld.AsIssues(err)
	if len(iss) != 1 || iss[0].Code != vld.CodeCustom {
		t.Fatalf("expected one custom issue, got %v", iss)
	}

	sr := g.SuperRefine[string](g.String(), func(s string, c *g.IssueCollector) {
		if len(s) < 3 {
			c.Add("too_short", "Too short")
		}
		if !strings.Contains(s, "@") {
			c.Add("no_at", "Missing @")
		}
	})
	_, err = sr.Parse(ctx, "ab")
	iss, _ = vld.AsIssues(err)
	if len(iss) != 2 {
		t.Fatalf("expected 2 collected issues, got %v", iss)
	}
}

func TestTransformAndPipe(t *testing.T) {
	ctx := context.Background()

	length := g.Transform[string, int](g.String(), func(s string) (int, error) {
		return len(s), nil
	})
	if v, err := length.Parse(ctx, "hello"); err != nil || v != 5 {
		t.Fatalf("expected transformed 5, got v=%v err=%v", v, err)
	}

	// trim on the left, then length constraints on the right
	piped := g.Pipe[string, string](g.String().Trim(), g.String().Min(3))
	if v, err := piped.Parse(ctx, "  abc  "); err != nil || v != "abc" {
		t.Fatalf("expected piped \"abc\", got v=%v err=%v", v, err)
	}
	if _, err := piped.Parse(ctx, "  a  "); err == nil {
		t.Fatalf("expected right-stage failure")
	}
}

func TestPreprocessAndMessage(t *testing.T) {
	ctx := context.Background()

	pre := g.Preprocess[string](func(v any) any {
		if s, ok := v.(string); ok {
			return strings.ToLower(s)
		}
		return v
	}, g.Enum("red", "green", "blue"))
	if v, err := pre.Parse(ctx, "RED"); err != nil || v != "red" {
		t.Fatalf("expected normalized enum, got v=%v err=%v", v, err)
	}

	msg := g.Message[string](g.String().Min(5).Email(), "Invalid input")
	_, err := msg.Parse(ctx, "ab")
	iss, _ := vld.AsIssues(err)
	if len(iss) != 2 {
		t.Fatalf("expected 2 issues kept, got %v", iss)
	}
	for _, is := range iss {
		if is.Message != "Invalid input" {
			t.Fatalf("expected overridden message, got %q", is.Message)
		}
	}
}

func TestCustom(t *testing.T) {
	ctx := context.Background()

	port := g.Custom[int](func(ctx context.Context, v any) (int, error) {
		n, ok := vld.NumberValue(v)
		if !ok || n < 1 || n > 65535 {
			return 0, errors.New("port must be between 1 and 65535")
		}
		return int(n), nil
	})

	if v, err := port.Parse(ctx, json.Number("8080")); err != nil || v != 8080 {
		t.Fatalf("expected custom pass, got v=%v err=%v", v, err)
	}

	// caller-supplied error text is used verbatim as one custom issue
	_, err := port.Parse(ctx, json.Number("0"))
	iss, ok := vld.AsIssues(err)
	if !ok || len(iss) != 1 {
		t.Fatalf("expected single issue, got %v", err)
	}
	if iss[0].Code != vld.CodeCustom || iss[0].Message != "port must be between 1 and 65535" {
		t.Fatalf("unexpected issue: %+v", iss[0])
	}
}

func TestDescribe(t *testing.T) {
	ctx := context.Background()
	s := g.Describe[string](g.String().Min(2), "user display name")

	if s.Description() != "user display name" {
		t.Fatalf("unexpected description: %q", s.Description())
	}
	// metadata only: validation is untouched
	if v, err := s.Parse(ctx, "ok"); err != nil || v != "ok" {
		t.Fatalf("expected pass-through, got v=%v err=%v", v, err)
	}
	if _, err := s.Parse(ctx, "x"); err == nil {
		t.Fatalf("expected inner min failure")
	}
}

func TestDefaultAndCatch(t *testing.T) {
	ctx := context.Background()

	d := g.Default[float64](g.Number().Min(0), 1)
	if v, err := d.Parse(ctx, nil); err != nil || v != 1 {
		t.Fatalf("expected default for null, got v=%v err=%v", v, err)
	}
	// default does not excuse invalid present values
	if _, err := d.Parse(ctx, json.Number("-2")); err == nil {
		t.Fatalf("expected min failure")
	}

	c := g.Catch[float64](g.Number(), 42)
	if v, err := c.Parse(ctx, "not a number"); err != nil || v != 42 {
		t.Fatalf("expected catch fallback, got v=%v err=%v", v, err)
	}
	if v, err := c.Parse(ctx, json.Number("7")); err != nil || v != 7 {
		t.Fatalf("expected pass-through, got v=%v err=%v", v, err)
	}
}

func TestUnion_FirstMatchWins(t *testing.T) {
	ctx := context.Background()
	s := g.Union(g.String(), g.Number())

	if v, err := s.Parse(ctx, "x"); err != nil || v != "x" {
		t.Fatalf("expected string branch, got v=%v err=%v", v, err)
	}
	if v, err := s.Parse(ctx, json.Number("3")); err != nil || v != 3.0 {
		t.Fatalf("expected number branch, got v=%v err=%v", v, err)
	}

	// neither branch matches the basic structure: one synthesized issue
	_, err := s.Parse(ctx, true)
	iss, _ := vld.AsIssues(err)
	if len(iss) != 1 || iss[0].Code != vld.CodeInvalidUnion {
		t.Fatalf("expected single invalid_union, got %v", iss)
	}
}

func TestUnion_BestMatchDiagnostics(t *testing.T) {
	ctx := context.Background()
	dog := g.Object().
		Field("kind", g.Literal("dog")).
		Field("bark", g.Bool())
	cat := g.Object().
		Field("kind", g.Literal("cat")).
		Field("lives", g.Int())
	s := g.Union(dog, cat)

	// matches dog's structure but fails one field: dog's issues surface
	_, err := s.Parse(ctx, map[string]any{"kind": "dog", "bark": "loud"})
	iss, _ := vld.AsIssues(err)
	if len(iss) == 0 {
		t.Fatalf("expected branch issues, got %v", err)
	}
	for _, is := range iss {
		if is.Code == vld.CodeInvalidUnion {
			t.Fatalf("expected best-match branch issues, not synthesized union issue: %v", iss)
		}
	}
	found := false
	for _, is := range iss {
		if is.Path.String() == ".bark" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected an issue at .bark, got %v", iss)
	}
}

func TestDiscriminatedUnion(t *testing.T) {
	ctx := context.Background()
	s := g.DiscriminatedUnion("type").
		Variant("dog", g.Object().
			Field("type", g.Literal("dog")).
			Field("bark", g.Bool())).
		Variant("cat", g.Object().
			Field("type", g.Literal("cat")).
			Field("lives", g.Int()))

	if _, err := s.Parse(ctx, map[string]any{"type": "dog", "bark": true}); err != nil {
		t.Fatalf("expected dog branch pass: %v", err)
	}

	_, err := s.Parse(ctx, map[string]any{"bark": true})
	iss, _ := vld.AsIssues(err)
	if len(iss) != 1 || iss[0].Code != vld.CodeDiscriminatorMissing {
		t.Fatalf("expected single discriminator_missing, got %v", iss)
	}

	_, err = s.Parse(ctx, map[string]any{"type": "bird"})
	iss, _ = vld.AsIssues(err)
	if len(iss) != 1 || iss[0].Code != vld.CodeDiscriminatorUnknown {
		t.Fatalf("expected single discriminator_unknown, got %v", iss)
	}
}

// TestIntersection pins the documented issue and key precedence policies.
func TestIntersection(t *testing.T) {
	ctx := context.Background()
	s := g.Intersection(g.String().Min(3), g.String().Email())

	if v, err := s.Parse(ctx, "a@b.co"); err != nil || v != "a@b.co" {
		t.Fatalf("expected intersection pass, got v=%v err=%v", v, err)
	}

	// both branches run, but only one issue per path is reported
	_, err := s.Parse(ctx, "ab")
	iss, _ := vld.AsIssues(err)
	if len(iss) != 1 || iss[0].Code != vld.CodeTooSmall {
		t.Fatalf("expected exactly the min-length issue, got %v", iss)
	}

	// object outputs merge with the second schema winning on conflicts
	obj := g.Intersection(
		g.Object().Field("a", g.String()).Field("shared", g.String()).Passthrough(),
		g.Object().Field("b", g.String()).Field("shared", g.String().ToUpper()).Passthrough(),
	)
	v, err := obj.Parse(ctx, map[string]any{"a": "1", "b": "2", "shared": "x"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	m := v.(map[string]any)
	if m["shared"] != "X" {
		t.Fatalf("expected right-hand schema to win on shared key, got %v", m["shared"])
	}
}

func TestLazy_RecursionLimit(t *testing.T) {
	ctx := context.Background()

	var tree func() vld.Schema[map[string]any]
	tree = func() vld.Schema[map[string]any] {
		return g.Object().
			Field("value", g.Int()).
			Field("children", g.Array[map[string]any](g.Lazy(tree).MaxDepth(8)))
	}

	nested := func(depth int) map[string]any {
		node := map[string]any{"value": json.Number("0"), "children": []any{}}
		for i := 0; i < depth; i++ {
			node = map[string]any{"value": json.Number("0"), "children": []any{node}}
		}
		return node
	}

	if _, err := tree().Parse(ctx, nested(4)); err != nil {
		t.Fatalf("expected shallow tree pass: %v", err)
	}

	_, err := tree().Parse(ctx, nested(20))
	iss, _ := vld.AsIssues(err)
	if len(iss) == 0 {
		t.Fatalf("expected recursion issue, got %v", err)
	}
	found := false
	for _, is := range iss {
		if is.Code == vld.CodeRecursionLimit {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected recursion_limit_exceeded, got %v", iss)
	}
}
