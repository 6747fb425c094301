package invoke_test

import (
	"testing"

	"github.com/zephyrtronium/msgscript"
	"github.com/zephyrtronium/msgscript/coreext/invoke"
	"github.com/zephyrtronium/msgscript/testutils"
)

func TestInvoke(t *testing.T) {
	ext := testutils.Extensions()
	method := msgscript.Method(func(self interface{}, args ...interface{}) (interface{}, error) {
		return len(args), nil
	})
	cases := map[string]struct {
		subject interface{}
		args    []interface{}
		want    interface{}
	}{
		"Func":     {func(x int) int { return x + 1 }, []interface{}{3}, 4},
		"NoArgs":   {func() string { return "ok" }, nil, "ok"},
		"Variadic": {func(xs ...int) int { return len(xs) }, []interface{}{1, 2, 3, 4}, 4},
		"Method":   {method, []interface{}{1, 2}, 2},
		"Error":    {func() error { return nil }, nil, nil},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			r, err := msgscript.NewDispatch(c.subject, msgscript.VarParamMessage(invoke.Name, c.args...)).ExecuteIn(ext)
			testutils.CheckResult(t, r, err, c.want)
		})
	}
}

func TestInvokeNotCallable(t *testing.T) {
	ext := testutils.Extensions()
	for _, subject := range []interface{}{nil, 3, "f", msgscript.NewObject(nil)} {
		_, err := msgscript.NewDispatch(subject, msgscript.VarParamMessage(invoke.Name)).ExecuteIn(ext)
		if err == nil {
			t.Errorf("no error invoking %#v", subject)
		}
	}
}

func TestInvokeCore(t *testing.T) {
	// The process-wide table includes invoke once coreext is imported.
	r, err := msgscript.NewDispatch(func(a, b int) int { return a * b }, msgscript.VarParamMessage(invoke.Name, 6, 7)).Execute()
	testutils.CheckResult(t, r, err, 42)
}
