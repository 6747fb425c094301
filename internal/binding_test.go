package internal_test

import (
	"testing"

	"github.com/pkg/errors"

	"github.com/zephyrtronium/msgscript/internal"
)

func TestBindingChildLookup(t *testing.T) {
	b := internal.NewGlobalBinding(nil).Set("x", 1).Child()
	v, err := b.Get("x")
	if err != nil {
		t.Fatalf("child could not see parent variable: %v", err)
	}
	if v != 1 {
		t.Errorf("wrong value: want 1, have %v", v)
	}
}

func TestBindingShadow(t *testing.T) {
	g := internal.NewGlobalBinding(nil).Set("x", 1)
	c := g.Child().Set("x", 2)
	if v, _ := c.Get("x"); v != 2 {
		t.Errorf("child does not shadow: have %v", v)
	}
	if v, _ := g.Get("x"); v != 1 {
		t.Errorf("child assignment leaked into parent: have %v", v)
	}
	c.SetGlobal("x", 3)
	if v, _ := c.Get("x"); v != 2 {
		t.Errorf("global assignment overrode shadow: have %v", v)
	}
	if v, _ := g.Get("x"); v != 3 {
		t.Errorf("global assignment missed the root: have %v", v)
	}
}

func TestBindingUnknown(t *testing.T) {
	b := internal.NewGlobalBinding(nil).Child().Child()
	_, err := b.Get("nope")
	var uv *internal.UnknownVariableError
	if !errors.As(err, &uv) {
		t.Fatalf("wrong error: want *UnknownVariableError, have %T (%v)", err, err)
	}
	if uv.Name != "nope" {
		t.Errorf("wrong name in error: %q", uv.Name)
	}
	if b.Has("nope") {
		t.Error("Has reports an unknown variable")
	}
}

func TestBindingGlobal(t *testing.T) {
	g := internal.NewGlobalBinding("lobby")
	c := g.Child().Child()
	if !g.IsGlobal() || c.IsGlobal() {
		t.Error("wrong IsGlobal")
	}
	if c.Global() != g {
		t.Error("Global does not find the root")
	}
	if c.Parent().Parent() != g {
		t.Error("wrong parent chain")
	}
	if c.Self() != "lobby" {
		t.Errorf("wrong self: %v", c.Self())
	}
	other := internal.NewGlobalBinding("lobby")
	if other.Set("y", 1); g.Has("y") {
		t.Error("global bindings share variables")
	}
}

func TestBindingMeta(t *testing.T) {
	g := internal.NewGlobalBinding(nil).SetWithMeta("x", 1, internal.Meta{"line": 3})
	c := g.Child()
	m, ok := c.MetaOf("x")
	if !ok || m["line"] != 3 {
		t.Errorf("wrong metadata: %v, %t", m, ok)
	}
	if _, ok := c.MetaOf("self"); ok {
		t.Error("found metadata for a plain variable")
	}
}

func TestBindingNames(t *testing.T) {
	b := internal.NewGlobalBinding(nil).Set("b", 1).Set("a", 2)
	names := b.Names()
	want := []string{"a", "b", "self"}
	if len(names) != len(want) {
		t.Fatalf("wrong names: want %v, have %v", want, names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("wrong names: want %v, have %v", want, names)
			break
		}
	}
}
