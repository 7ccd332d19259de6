package vld_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/goccy/go-json"
	vld "github.com/vldgo/vld"
	g "github.com/vldgo/vld/dsl"
)

func TestJSONBytesDecode(t *testing.T) {
	v, err := vld.JSONBytes(`{"n": 1, "f": 1.5}`).Decode()
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	m := v.(map[string]any)
	if _, ok := m["n"].(json.Number); !ok {
		t.Fatalf("expected json.Number, got %T", m["n"])
	}
}

func TestJSONRejectsTrailingData(t *testing.T) {
	_, err := vld.JSONString(`{"a": 1} {"b": 2}`).Decode()
	if err == nil || !vld.IsMalformedInput(err) {
		t.Fatalf("expected malformed input, got %v", err)
	}
	if _, ok := vld.AsIssues(err); ok {
		t.Fatalf("decode failures must not be Issues")
	}
}

func TestYAMLNormalization(t *testing.T) {
	v, err := vld.YAMLString("name: alice\nage: 30\nscore: 1.5\ntags:\n  - a\n  - b\n").Decode()
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	m, ok := v.(map[string]any)
	if !ok {
		t.Fatalf("expected object, got %T", v)
	}
	if _, ok := m["age"].(json.Number); !ok {
		t.Fatalf("yaml ints must normalize to json.Number, got %T", m["age"])
	}
	if _, ok := m["score"].(json.Number); !ok {
		t.Fatalf("yaml floats must normalize to json.Number, got %T", m["score"])
	}
	if tags, ok := m["tags"].([]any); !ok || len(tags) != 2 {
		t.Fatalf("unexpected tags: %v", m["tags"])
	}
}

func TestParseFromWithSchema(t *testing.T) {
	ctx := context.Background()
	schema := g.Object().
		Field("name", g.String().Min(1)).
		Field("age", g.Int().Min(0))

	out, err := vld.ParseFrom[map[string]any](ctx, schema, vld.JSONString(`{"name":"alice","age":30}`))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if out["name"] != "alice" || out["age"] != int64(30) {
		t.Fatalf("unexpected output: %v", out)
	}

	_, err = vld.ParseFrom[map[string]any](ctx, schema, vld.JSONString(`{"name":""}`))
	iss, ok := vld.AsIssues(err)
	if !ok || len(iss) != 2 {
		t.Fatalf("expected 2 issues, got %v", err)
	}
}

func TestValueOfPassesThrough(t *testing.T) {
	v, err := vld.ValueOf{V: map[string]any{"k": true}}.Decode()
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if v.(map[string]any)["k"] != true {
		t.Fatalf("unexpected value: %v", v)
	}
}

func TestFileExtensionSniffing(t *testing.T) {
	dir := t.TempDir()

	yml := filepath.Join(dir, "conf.yaml")
	if err := os.WriteFile(yml, []byte("port: 8080\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	v, err := vld.File(yml).Decode()
	if err != nil {
		t.Fatalf("yaml decode: %v", err)
	}
	if _, ok := v.(map[string]any)["port"].(json.Number); !ok {
		t.Fatalf("unexpected yaml value: %v", v)
	}

	js := filepath.Join(dir, "conf.json")
	if err := os.WriteFile(js, []byte(`{"port": 8080}`), 0o644); err != nil {
		t.Fatal(err)
	}
	v, err = vld.File(js).Decode()
	if err != nil {
		t.Fatalf("json decode: %v", err)
	}
	if _, ok := v.(map[string]any)["port"].(json.Number); !ok {
		t.Fatalf("unexpected json value: %v", v)
	}

	if _, err := vld.File(filepath.Join(dir, "missing.json")).Decode(); !vld.IsMalformedInput(err) {
		t.Fatalf("missing file must report malformed input, got %v", err)
	}
}
