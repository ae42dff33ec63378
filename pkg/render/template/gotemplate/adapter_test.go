package gotemplate

import (
	"strings"
	"testing"
	"testing/fstest"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"greeting.tmpl": &fstest.MapFile{Data: []byte("Hello {{ name }}!")},
	}
}

func TestNewRequiresSource(t *testing.T) {
	if _, err := New(); err == nil {
		t.Fatal("expected error when neither base dir nor FS is provided")
	}
}

func TestRenderTemplateFromFS(t *testing.T) {
	engine, err := New(WithFS(testFS()))
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	out, err := engine.RenderTemplate("greeting", map[string]any{"name": "world"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "Hello world!" {
		t.Fatalf("output = %q", out)
	}
}

func TestRenderTemplateAppendsExtensionOnce(t *testing.T) {
	engine, err := New(WithFS(testFS()))
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	out, err := engine.RenderTemplate("greeting.tmpl", map[string]any{"name": "again"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "Hello again!" {
		t.Fatalf("output = %q", out)
	}
}

func TestRenderString(t *testing.T) {
	engine, err := New(WithFS(testFS()))
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	out, err := engine.RenderString("{{ a }} + {{ b }}", map[string]any{"a": 1, "b": 2})
	if err != nil {
		t.Fatalf("render string: %v", err)
	}
	if out != "1 + 2" {
		t.Fatalf("output = %q", out)
	}
}

func TestRenderRoutesInlineContent(t *testing.T) {
	engine, err := New(WithFS(testFS()))
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	inline, err := engine.Render("inline {{ x }}", map[string]any{"x": "y"})
	if err != nil {
		t.Fatalf("render inline: %v", err)
	}
	if inline != "inline y" {
		t.Fatalf("inline output = %q", inline)
	}

	named, err := engine.Render("greeting", map[string]any{"name": "routed"})
	if err != nil {
		t.Fatalf("render named: %v", err)
	}
	if named != "Hello routed!" {
		t.Fatalf("named output = %q", named)
	}
}

func TestGlobalData(t *testing.T) {
	engine, err := New(
		WithFS(fstest.MapFS{
			"global.tmpl": &fstest.MapFile{Data: []byte("v{{ version }}")},
		}),
		WithGlobalData(map[string]any{"version": "3"}),
	)
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	out, err := engine.RenderTemplate("global", nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "v3" {
		t.Fatalf("output = %q", out)
	}
}

func TestConvertToContextStructRoundTrip(t *testing.T) {
	type payload struct {
		Name string `json:"name"`
	}

	ctx, err := convertToContext(payload{Name: "converted"})
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if ctx["name"] != "converted" {
		t.Fatalf("context = %v", ctx)
	}
}

func TestRenderTemplateMissing(t *testing.T) {
	engine, err := New(WithFS(testFS()))
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	if _, err := engine.RenderTemplate("absent", nil); err == nil {
		t.Fatal("expected error for missing template")
	}
	if _, err := engine.RenderTemplate("absent", nil); err == nil || !strings.Contains(err.Error(), "absent") {
		t.Fatalf("error should name the template: %v", err)
	}
}
