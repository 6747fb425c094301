// Package arith provides arithmetic extensions. Each operator answers the
// one-argument parameterized message of its name, so
//
//	msgscript.NewDispatch(3, msgscript.ParamMessage("+", 4))
//
// yields int64(7). Addition uses the Native sum helper and also concatenates
// two strings. Integer operands give integer results except for inexact
// division.
package arith

import (
	"math"

	"github.com/pkg/errors"

	"github.com/zephyrtronium/msgscript"
	"github.com/zephyrtronium/msgscript/internal"
)

// ErrDivideByZero is returned when dividing by zero.
var ErrDivideByZero = errors.New("msgscript: division by zero")

func init() {
	internal.Register(install)
}

func install(e *msgscript.Extensions) {
	e.Register(msgscript.ParamMessage("+", nil), add)
	e.Register(msgscript.ParamMessage("-", nil), binop("-", func(a, b int64) (int64, bool) { return a - b, true }, func(a, b float64) float64 { return a - b }))
	e.Register(msgscript.ParamMessage("*", nil), binop("*", func(a, b int64) (int64, bool) { return a * b, true }, func(a, b float64) float64 { return a * b }))
	e.Register(msgscript.ParamMessage("/", nil), div)
}

// add sums numbers through the Native helper and concatenates strings.
func add(subject interface{}, msg *msgscript.Message) (interface{}, error) {
	other := msg.ArgAt(0)
	if s, ok := subject.(string); ok {
		if t, ok := other.(string); ok {
			return s + t, nil
		}
	}
	r, err := msgscript.NewDispatch(msgscript.Native, msgscript.VarParamMessage("sum", subject, other)).ExecuteIn(nil)
	if err != nil {
		return nil, err
	}
	return r.Value, r.Err()
}

// binop creates an extension applying an integer operation when both operands
// are integers and a float operation otherwise.
func binop(op string, ints func(a, b int64) (int64, bool), floats func(a, b float64) float64) msgscript.Extension {
	return func(subject interface{}, msg *msgscript.Message) (interface{}, error) {
		a, b, err := operands(op, subject, msg)
		if err != nil {
			return nil, err
		}
		if a.IsInt && b.IsInt {
			if r, ok := ints(a.Int, b.Int); ok {
				return r, nil
			}
		}
		return floats(a.Float, b.Float), nil
	}
}

func div(subject interface{}, msg *msgscript.Message) (interface{}, error) {
	a, b, err := operands("/", subject, msg)
	if err != nil {
		return nil, err
	}
	if b.Float == 0 {
		return nil, ErrDivideByZero
	}
	if a.IsInt && b.IsInt && a.Int%b.Int == 0 {
		return a.Int / b.Int, nil
	}
	r := a.Float / b.Float
	if math.IsInf(r, 0) {
		return nil, errors.Errorf("msgscript: %v / %v overflows", a.Value(), b.Value())
	}
	return r, nil
}

func operands(op string, subject interface{}, msg *msgscript.Message) (a, b msgscript.Number, err error) {
	a, ok := msgscript.ToNumber(subject)
	if !ok {
		return a, b, errors.Errorf("msgscript: %T does not support %s", subject, op)
	}
	b, ok = msgscript.ToNumber(msg.ArgAt(0))
	if !ok {
		return a, b, errors.Errorf("msgscript: argument to %s must be a number, not %T", op, msg.ArgAt(0))
	}
	return a, b, nil
}
