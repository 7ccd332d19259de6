package vld

import (
	"strings"
	"testing"

	"github.com/goccy/go-json"
)

func TestTypeName(t *testing.T) {
	cases := []struct {
		in   any
		want string
	}{
		{nil, "null"},
		{true, "boolean"},
		{json.Number("1"), "number"},
		{1.5, "number"},
		{"x", "string"},
		{[]any{}, "array"},
		{map[string]any{}, "object"},
	}
	for _, c := range cases {
		if got := TypeName(c.in); got != c.want {
			t.Fatalf("TypeName(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestToValueProjectsStructs(t *testing.T) {
	type addr struct {
		City string `json:"city"`
		Zip  string `json:"zip"`
	}
	v, err := ToValue(addr{City: "Kyoto", Zip: "600"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	m, ok := v.(map[string]any)
	if !ok || m["city"] != "Kyoto" {
		t.Fatalf("unexpected projection: %v", v)
	}
}

func TestToValueKeepsNumbersExact(t *testing.T) {
	type wide struct {
		N int64 `json:"n"`
	}
	v, err := ToValue(wide{N: 9007199254740993})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	m := v.(map[string]any)
	n, ok := m["n"].(json.Number)
	if !ok {
		t.Fatalf("expected json.Number, got %T", m["n"])
	}
	if n.String() != "9007199254740993" {
		t.Fatalf("precision lost: %s", n)
	}
}

func TestFormatValueShort(t *testing.T) {
	if got := FormatValueShort("hi"); got != `"hi"` {
		t.Fatalf("unexpected: %q", got)
	}
	long := strings.Repeat("a", 80)
	if got := FormatValueShort(long); len(got) > 60 || !strings.Contains(got, "...") {
		t.Fatalf("expected truncation, got %q", got)
	}
	if got := FormatValueShort([]any{1, 2, 3}); got != "Array(len=3)" {
		t.Fatalf("unexpected array rendering: %q", got)
	}
	if got := FormatValueShort(map[string]any{"a": 1}); got != "Object(keys=1)" {
		t.Fatalf("unexpected object rendering: %q", got)
	}
}

func TestCanonicalKeyEquivalence(t *testing.T) {
	// number representations converge
	if CanonicalKey(json.Number("1")) != CanonicalKey(1.0) {
		t.Fatalf("1 and 1.0 must canonicalize identically")
	}
	// object key order does not matter
	a := map[string]any{"x": 1.0, "y": "z"}
	b := map[string]any{"y": "z", "x": json.Number("1")}
	if CanonicalKey(a) != CanonicalKey(b) {
		t.Fatalf("key order must not affect canonical form")
	}
	// distinct values stay distinct
	if CanonicalKey("1") == CanonicalKey(1.0) {
		t.Fatalf("string and number must differ")
	}
}

func TestNumberValue(t *testing.T) {
	if f, ok := NumberValue(json.Number("2.5")); !ok || f != 2.5 {
		t.Fatalf("unexpected: %v %v", f, ok)
	}
	if f, ok := NumberValue(int64(3)); !ok || f != 3 {
		t.Fatalf("unexpected: %v %v", f, ok)
	}
	if _, ok := NumberValue("3"); ok {
		t.Fatalf("string must not be numeric")
	}
}
