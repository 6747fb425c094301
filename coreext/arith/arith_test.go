package arith_test

import (
	"testing"

	"github.com/pkg/errors"

	"github.com/zephyrtronium/msgscript"
	"github.com/zephyrtronium/msgscript/coreext/arith"
	"github.com/zephyrtronium/msgscript/testutils"
)

func TestOperators(t *testing.T) {
	ext := testutils.Extensions()
	cases := map[string]struct {
		subject interface{}
		op      string
		arg     interface{}
		want    interface{}
	}{
		"AddInts":     {3, "+", 4, int64(7)},
		"AddFloat":    {3, "+", 0.5, 3.5},
		"AddStrings":  {"ab", "+", "cd", "abcd"},
		"SubInts":     {3, "-", 4, int64(-1)},
		"SubFloats":   {3.5, "-", 1.0, 2.5},
		"MulInts":     {3, "*", 4, int64(12)},
		"MulMixed":    {int32(3), "*", 0.5, 1.5},
		"DivExact":    {12, "/", 4, int64(3)},
		"DivInexact":  {3, "/", 2, 1.5},
		"DivFloats":   {1.0, "/", 4.0, 0.25},
		"DivNegative": {-12, "/", 4, int64(-3)},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			r, err := msgscript.NewDispatch(c.subject, msgscript.ParamMessage(c.op, c.arg)).ExecuteIn(ext)
			testutils.CheckResult(t, r, err, c.want)
		})
	}
}

func TestOperatorErrors(t *testing.T) {
	ext := testutils.Extensions()
	cases := map[string]struct {
		subject interface{}
		op      string
		arg     interface{}
	}{
		"AddStringNumber": {"a", "+", 1},
		"SubStrings":      {"a", "-", "b"},
		"MulNil":          {3, "*", nil},
		"DivString":       {"a", "/", 2},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := msgscript.NewDispatch(c.subject, msgscript.ParamMessage(c.op, c.arg)).ExecuteIn(ext)
			if err == nil {
				t.Error("no error")
			}
		})
	}
}

func TestDivideByZero(t *testing.T) {
	ext := testutils.Extensions()
	for _, zero := range []interface{}{0, 0.0} {
		_, err := msgscript.NewDispatch(1, msgscript.ParamMessage("/", zero)).ExecuteIn(ext)
		if errors.Cause(err) != arith.ErrDivideByZero {
			t.Errorf("dividing by %#v: wrong error %v", zero, err)
		}
	}
}

func TestOperatorArity(t *testing.T) {
	// Operators answer exactly one argument.
	ext := testutils.Extensions()
	r, err := msgscript.NewDispatch(3, msgscript.ParamMessage("+", 4, 5)).ExecuteIn(ext)
	testutils.CheckMissing(t, r, err, "+")
}

func TestChainedArithmetic(t *testing.T) {
	s := testutils.Script()
	sum := msgscript.NewDispatch(msgscript.Native, msgscript.ParamMessage("sum", 3, 4))
	s.Send(sum.ThenSend(msgscript.ParamMessage("*", 2)).ThenSend(msgscript.ParamMessage("-", 4)))
	r, err := s.Run()
	testutils.CheckResult(t, r, err, int64(10))
}
