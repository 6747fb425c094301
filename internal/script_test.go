package internal_test

import (
	"testing"

	"github.com/zephyrtronium/msgscript/internal"
	"github.com/zephyrtronium/msgscript/testutils"
)

func TestScriptNativeSum(t *testing.T) {
	s := testutils.Script()
	s.Dispatch(internal.Native, internal.ParamMessage("sum", 3, 4))
	r, err := s.Run()
	testutils.CheckResult(t, r, err, int64(7))
}

func TestScriptSideEffect(t *testing.T) {
	x := 10
	s := testutils.Script()
	s.Dispatch(func() int { x++; return x }, internal.ParamMessage("call"))
	r, err := s.Run()
	testutils.CheckResult(t, r, err, 11)
	if x != 11 {
		t.Errorf("side effect not visible: x = %d", x)
	}
}

func TestScriptInvoke(t *testing.T) {
	s := testutils.Script()
	s.Dispatch(func(x int) int { return x + 1 }, internal.VarParamMessage("invoke", 3))
	r, err := s.Run()
	testutils.CheckResult(t, r, err, 4)
}

func TestScriptLocalExtension(t *testing.T) {
	ext := internal.NewExtensions().Register(internal.VarParamMessage("twice"), func(subject interface{}, msg *internal.Message) (interface{}, error) {
		return internal.Sum(subject, subject)
	})
	s := internal.BuildScriptWith(internal.ScriptOptions{Extensions: ext})
	s.Dispatch(21, internal.VarParamMessage("twice"))
	r, err := s.Run()
	testutils.CheckResult(t, r, err, int64(42))

	// Other scripts do not see the extension.
	o := testutils.Script()
	o.Dispatch(21, internal.VarParamMessage("twice"))
	r, err = o.Run()
	testutils.CheckMissing(t, r, err, "twice")
}

func TestScriptBinding(t *testing.T) {
	s := testutils.Script()
	if s.Set("x", 1) != 1 {
		t.Error("Set does not return the value")
	}
	v, err := s.Get("x")
	if err != nil || v != 1 {
		t.Errorf("wrong variable: %v, %v", v, err)
	}
	if s.Binding().Context() != s.Context() {
		t.Error("binding does not hold the script's context")
	}
	lobby, ok := s.Self().(*internal.Object)
	if !ok {
		t.Fatalf("self is %T, not a lobby object", s.Self())
	}
	if !lobby.IsKindOf(internal.Native) {
		t.Error("lobby does not inherit Native")
	}
	other := testutils.Script()
	if _, err := other.Get("x"); err == nil {
		t.Error("scripts share a global binding")
	}
}

func TestScriptSelfDispatch(t *testing.T) {
	s := testutils.Script()
	s.Dispatch(s.Self(), internal.ParamMessage("max", 3, 8, 5))
	r, err := s.Run()
	testutils.CheckResult(t, r, err, int64(8))
}

func TestScriptChild(t *testing.T) {
	s := testutils.Script()
	s.Set("x", 1)

	shared := s.Child(internal.ChildOptions{})
	shared.Set("y", 2)
	if v, err := s.Get("y"); err != nil || v != 2 {
		t.Errorf("dynamic child does not share the binding: %v, %v", v, err)
	}

	self := internal.NewObject(nil)
	lexical := s.Child(internal.ChildOptions{Lexical: true, Self: self})
	lexical.Set("z", 3)
	if _, err := s.Get("z"); err == nil {
		t.Error("lexical child assignment leaked into parent")
	}
	if v, err := lexical.Get("x"); err != nil || v != 1 {
		t.Errorf("lexical child cannot see parent variables: %v, %v", v, err)
	}
	if lexical.Self() != self {
		t.Error("lexical child has the wrong self")
	}
	if s.Self() == self {
		t.Error("lexical child changed the parent's self")
	}
	if lexical.Context().Parent() != s.Context() {
		t.Error("child context is not nested")
	}
	if lexical.Binding().Context() != lexical.Context() {
		t.Error("lexical child binding does not hold its own context")
	}
	if lexical.Context().Extensions != s.Context().Extensions {
		t.Error("child does not share extensions")
	}
}

func TestScriptPauseContinue(t *testing.T) {
	var rec testutils.Recorder
	s := testutils.Script()
	s.Send(rec.Effect("d0", 0))
	s.Send(rec.Do("d1", s.Pause))
	s.Send(rec.Effect("d2", 2))
	s.Run()
	testutils.CheckCalls(t, &rec, "d0", "d1")
	r, err := s.Continue()
	testutils.CheckResult(t, r, err, 2)
	testutils.CheckCalls(t, &rec, "d0", "d1", "d2")
}

func TestScriptThen(t *testing.T) {
	s := testutils.Script(internal.NewDispatch(internal.Native, internal.ParamMessage("sum", 3, 4)))
	var got interface{}
	s.Then(func(r internal.Result) { got = r.Value }, nil)
	if got != int64(7) {
		t.Errorf("wrong result: %v", got)
	}
	f := testutils.Script(internal.NewDispatch(internal.Native, internal.ParamMessage("sum", "x")))
	var failed error
	f.Then(func(r internal.Result) { t.Errorf("unexpected success: %v", r) }, func(err error) { failed = err })
	if failed == nil {
		t.Error("failure not reported")
	}
}
