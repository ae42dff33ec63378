package render

import (
	"context"
	"testing"

	"github.com/goliatone/go-formdoc/pkg/model"
)

type fakeRenderer struct {
	name string
}

func (f *fakeRenderer) Name() string        { return f.name }
func (f *fakeRenderer) ContentType() string { return "text/plain" }
func (f *fakeRenderer) Render(context.Context, model.Document, Options) ([]byte, error) {
	return []byte(f.name), nil
}

func TestRegistryRegisterAndGet(t *testing.T) {
	registry := NewRegistry()
	renderer := &fakeRenderer{name: "fake"}

	if err := registry.Register(renderer); err != nil {
		t.Fatalf("register: %v", err)
	}

	got, err := registry.Get("fake")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != Renderer(renderer) {
		t.Fatal("registry returned a different renderer")
	}
}

func TestRegistryRejectsDuplicates(t *testing.T) {
	registry := NewRegistry()
	registry.MustRegister(&fakeRenderer{name: "dup"})

	if err := registry.Register(&fakeRenderer{name: "dup"}); err == nil {
		t.Fatal("expected duplicate registration error")
	}
}

func TestRegistryRejectsEmptyName(t *testing.T) {
	registry := NewRegistry()
	if err := registry.Register(&fakeRenderer{}); err == nil {
		t.Fatal("expected error for empty renderer name")
	}
	if err := registry.Register(nil); err == nil {
		t.Fatal("expected error for nil renderer")
	}
}

func TestRegistryListSorted(t *testing.T) {
	registry := NewRegistry()
	registry.MustRegister(&fakeRenderer{name: "zeta"})
	registry.MustRegister(&fakeRenderer{name: "alpha"})

	names := registry.List()
	if len(names) != 2 || names[0] != "alpha" || names[1] != "zeta" {
		t.Fatalf("List = %v", names)
	}
}

func TestRegistryHas(t *testing.T) {
	registry := NewRegistry()
	registry.MustRegister(&fakeRenderer{name: "present"})

	if !registry.Has("present") {
		t.Fatal("Has should report registered renderer")
	}
	if registry.Has("absent") {
		t.Fatal("Has should not report unknown renderer")
	}

	if _, err := registry.Get("absent"); err == nil {
		t.Fatal("Get should error for unknown renderer")
	}
}
