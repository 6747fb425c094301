// Package testutils provides utilities for testing msgscript code in Go.
package testutils

import (
	"reflect"
	"testing"

	"github.com/kr/pretty"

	"github.com/zephyrtronium/msgscript"
	// import for side effects
	_ "github.com/zephyrtronium/msgscript/coreext"
)

// Extensions returns a fresh extension table carrying every built-in
// extension. Tests that register their own extensions should use it instead
// of the process-wide table so they do not leak into other tests.
func Extensions() *msgscript.Extensions {
	return msgscript.InstallCore(msgscript.NewExtensions())
}

// Script builds a script which uses a fresh extension table.
func Script(dispatches ...*msgscript.Dispatch) *msgscript.Script {
	return msgscript.BuildScriptWith(msgscript.ScriptOptions{Extensions: Extensions()}, dispatches...)
}

// A Recorder builds dispatches with side effects and records the order in
// which they run.
type Recorder struct {
	// Calls holds the name of each effect in the order it ran.
	Calls []string
}

// Effect returns a dispatch which, when executed, records name and yields
// result. The dispatch sends call to a Go function.
func (r *Recorder) Effect(name string, result interface{}) *msgscript.Dispatch {
	return msgscript.NewDispatch(func() interface{} {
		r.Calls = append(r.Calls, name)
		return result
	}, msgscript.ParamMessage("call"))
}

// Do returns a dispatch which records name and then runs f.
func (r *Recorder) Do(name string, f func()) *msgscript.Dispatch {
	return msgscript.NewDispatch(func() {
		r.Calls = append(r.Calls, name)
		f()
	}, msgscript.ParamMessage("call"))
}

// Count returns the number of times name was recorded.
func (r *Recorder) Count(name string) int {
	n := 0
	for _, c := range r.Calls {
		if c == name {
			n++
		}
	}
	return n
}

// CheckResult is a testing helper to check that a dispatch resolved without
// error to a value deeply equal to want.
func CheckResult(t *testing.T, r msgscript.Result, err error, want interface{}) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %+v", err)
	}
	if !r.OK() {
		t.Fatalf("unexpected method missing: %v", r.Missing)
	}
	if !reflect.DeepEqual(r.Value, want) {
		t.Errorf("wrong result: want %#v, have %#v\n%s", want, r.Value, pretty.Diff(want, r.Value))
	}
}

// CheckMissing is a testing helper to check that a dispatch did not resolve
// and reported the given message name.
func CheckMissing(t *testing.T, r msgscript.Result, err error, name string) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %+v", err)
	}
	if r.OK() {
		t.Fatalf("expected method missing for %s, have %#v", name, r.Value)
	}
	if r.Missing.Name != name {
		t.Errorf("wrong missing name: want %q, have %q", name, r.Missing.Name)
	}
}

// CheckCalls is a testing helper to check that a recorder saw exactly the
// given calls in order.
func CheckCalls(t *testing.T, r *Recorder, want ...string) {
	t.Helper()
	if !reflect.DeepEqual(r.Calls, want) && !(len(r.Calls) == 0 && len(want) == 0) {
		t.Errorf("wrong calls: want %v, have %v\n%s", want, r.Calls, pretty.Diff(want, r.Calls))
	}
}
