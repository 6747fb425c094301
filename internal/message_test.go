package internal_test

import (
	"testing"

	"github.com/zephyrtronium/msgscript/internal"
)

func TestParamHashArity(t *testing.T) {
	cases := map[string]struct {
		a, b *internal.Message
	}{
		"ZeroOne":   {internal.ParamMessage("foo"), internal.ParamMessage("foo", 1)},
		"OneTwo":    {internal.ParamMessage("foo", 1), internal.ParamMessage("foo", 1, 2)},
		"TwoThree":  {internal.ParamMessage("foo", "a", "b"), internal.ParamMessage("foo", "a", "b", "c")},
		"NameMatch": {internal.ParamMessage("foo", 1), internal.ParamMessage("bar", 1)},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			if c.a.HashCode() == c.b.HashCode() {
				t.Errorf("%v and %v hash equally", c.a, c.b)
			}
			if c.a.Equal(c.b) {
				t.Errorf("%v and %v are equivalent", c.a, c.b)
			}
		})
	}
}

func TestParamHashIgnoresValues(t *testing.T) {
	a := internal.ParamMessage("sum", 3, 4)
	b := internal.ParamMessage("sum", "x", nil)
	if !a.Equal(b) {
		t.Errorf("%v and %v with equal arity are not equivalent", a, b)
	}
}

func TestVarParamHash(t *testing.T) {
	want := internal.StringHash("invoke")
	msgs := []*internal.Message{
		internal.VarParamMessage("invoke"),
		internal.VarParamMessage("invoke", 1),
		internal.VarParamMessage("invoke", 1, 2, 3),
		internal.UnaryMessage("invoke"),
		internal.PrefixMessage("invoke"),
		internal.PostfixMessage("invoke"),
	}
	for _, m := range msgs {
		if m.HashCode() != want {
			t.Errorf("%v (%v) hashes to %d, want %d", m, m.Kind(), m.HashCode(), want)
		}
		if m.NameHash() != want {
			t.Errorf("%v has name hash %d, want %d", m, m.NameHash(), want)
		}
	}
}

func TestBinaryHash(t *testing.T) {
	a := internal.BinaryMessage("+", 1)
	b := internal.BinaryMessage("+", 1.0)
	c := internal.BinaryMessage("+", 2)
	if !a.Equal(b) {
		t.Error("binary messages with structurally equal operands differ")
	}
	if a.Equal(c) {
		t.Error("binary messages with different operands are equivalent")
	}
	if a.IsUnary() {
		t.Error("binary message is unary")
	}
	if a.Arity() != 1 || a.ArgAt(0) != 1 {
		t.Errorf("wrong operand: %v", a.Arguments())
	}
}

func TestKeywordMessage(t *testing.T) {
	m := internal.KeywordMessage(
		internal.KeywordArg{Key: "at", Value: 1},
		internal.KeywordArg{Key: "put", Value: "x"},
	)
	if m.Name() != "at" {
		t.Errorf("wrong name: want at, have %s", m.Name())
	}
	if m.Kind() != internal.Keyword {
		t.Errorf("wrong kind: %v", m.Kind())
	}
	if m.Arity() != 1 {
		t.Fatalf("keyword message has %d arguments, want 1", m.Arity())
	}
	kws, ok := m.ArgAt(0).(internal.Keywords)
	if !ok {
		t.Fatalf("argument is %T, not Keywords", m.ArgAt(0))
	}
	if v, ok := kws.Get("put"); !ok || v != "x" {
		t.Errorf("wrong put argument: %v, %t", v, ok)
	}
	if _, ok := kws.Get("missing"); ok {
		t.Error("found a keyword that does not exist")
	}
	swapped := internal.KeywordMessage(
		internal.KeywordArg{Key: "put", Value: "x"},
		internal.KeywordArg{Key: "at", Value: 1},
	)
	if m.Equal(swapped) {
		t.Error("keyword hash ignores keyword order")
	}
	values := internal.KeywordMessage(
		internal.KeywordArg{Key: "at", Value: 2},
		internal.KeywordArg{Key: "put", Value: "y"},
	)
	if !m.Equal(values) {
		t.Error("keyword hash depends on argument values")
	}
}

func TestKeywordMessageEmpty(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("empty keyword message did not panic")
		}
	}()
	internal.KeywordMessage()
}

func TestWithMeta(t *testing.T) {
	m := internal.ParamMessage("sum", 3, 4)
	n := m.WithMeta(internal.Meta{"line": 7})
	if !m.Equal(n) {
		t.Error("metadata changed identity")
	}
	if m.Meta() != nil {
		t.Errorf("original message gained metadata: %v", m.Meta())
	}
	if n.Meta()["line"] != 7 {
		t.Errorf("wrong metadata: %v", n.Meta())
	}
	if n.Name() != m.Name() || n.Arity() != m.Arity() || n.Kind() != m.Kind() {
		t.Errorf("WithMeta changed the message: %v vs %v", n, m)
	}
	meta := n.Meta()
	meta["line"] = 8
	if n.Meta()["line"] != 7 {
		t.Error("metadata is mutable through Meta")
	}
}

func TestArgumentsFrozen(t *testing.T) {
	params := []interface{}{1, 2}
	m := internal.ParamMessage("f", params...)
	params[0] = 100
	args := m.Arguments()
	args[1] = 200
	if m.ArgAt(0) != 1 || m.ArgAt(1) != 2 {
		t.Errorf("message arguments changed: %v", m.Arguments())
	}
}

func TestKindString(t *testing.T) {
	cases := map[internal.Kind]string{
		internal.Unary:    "unary",
		internal.Prefix:   "prefix",
		internal.Binary:   "binary",
		internal.Param:    "param",
		internal.VarParam: "varparam",
		internal.Keyword:  "keyword",
		internal.Kind(99): "Kind(99)",
	}
	for k, want := range cases {
		if k.String() != want {
			t.Errorf("wrong name for %d: want %q, have %q", int(k), want, k.String())
		}
	}
}

func TestMessageString(t *testing.T) {
	cases := map[string]struct {
		m    *internal.Message
		want string
	}{
		"Unary":    {internal.UnaryMessage("size"), "size"},
		"Prefix":   {internal.PrefixMessage("not"), "not_"},
		"Binary":   {internal.BinaryMessage("+", 1), "+ 1"},
		"Param":    {internal.ParamMessage("sum", 3, 4), "sum(3, 4)"},
		"VarParam": {internal.VarParamMessage("sum", 3), "sum(3...)"},
		"Keyword":  {internal.KeywordMessage(internal.KeywordArg{Key: "at", Value: 1}, internal.KeywordArg{Key: "put", Value: 2}), "at: 1 put: 2"},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			if s := c.m.String(); s != c.want {
				t.Errorf("want %q, have %q", c.want, s)
			}
		})
	}
}
