package internal

import (
	"math"
	"reflect"
	"strings"

	"github.com/pkg/errors"
)

// Native is the host helper object. It provides arithmetic and string helpers
// that scripts and extensions dispatch to by name, for example
//
//	NewDispatch(Native, ParamMessage("sum", 3, 4))
var Native = NamedObject("Native", Slots{
	"sum":    Method(nativeSum),
	"max":    Method(nativeMax),
	"min":    Method(nativeMin),
	"concat": Method(nativeConcat),
})

// Number is a numeric value extracted from an arbitrary Go number.
type Number struct {
	Int   int64
	Float float64
	// IsInt is true if the number came from an integer type, in which case
	// Int holds its value. Float always holds the value.
	IsInt bool
}

// Value returns the number as an int64 if it is an integer and as a float64
// otherwise.
func (n Number) Value() interface{} {
	if n.IsInt {
		return n.Int
	}
	return n.Float
}

// ToNumber converts any Go integer or float to a Number. Unsigned values too
// large for an int64 become floats.
func ToNumber(v interface{}) (Number, bool) {
	switch v := v.(type) {
	case int:
		return Number{Int: int64(v), Float: float64(v), IsInt: true}, true
	case int64:
		return Number{Int: v, Float: float64(v), IsInt: true}, true
	case float64:
		return Number{Float: v}, true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Number{Int: rv.Int(), Float: float64(rv.Int()), IsInt: true}, true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return Number{Float: float64(u)}, true
		}
		return Number{Int: int64(u), Float: float64(u), IsInt: true}, true
	case reflect.Float32, reflect.Float64:
		return Number{Float: rv.Float()}, true
	}
	return Number{}, false
}

// numbers converts every argument to a Number, failing with an error naming
// the operation if any is not numeric.
func numbers(op string, args []interface{}) ([]Number, error) {
	r := make([]Number, len(args))
	for i, a := range args {
		n, ok := ToNumber(a)
		if !ok {
			return nil, errors.Errorf("msgscript: can only %s numbers, have %T", op, a)
		}
		r[i] = n
	}
	return r, nil
}

// Sum adds numbers. The result is an int64 if every argument is an integer and
// a float64 otherwise. The sum of no numbers is 0.
func Sum(args ...interface{}) (interface{}, error) {
	ns, err := numbers("sum", args)
	if err != nil {
		return nil, err
	}
	var (
		i     int64
		f     float64
		float bool
	)
	for _, n := range ns {
		i += n.Int
		f += n.Float
		float = float || !n.IsInt
	}
	if float {
		return f, nil
	}
	return i, nil
}

func nativeSum(self interface{}, args ...interface{}) (interface{}, error) {
	return Sum(args...)
}

func nativeMax(self interface{}, args ...interface{}) (interface{}, error) {
	return extremum("max", args, func(a, b float64) bool { return a > b })
}

func nativeMin(self interface{}, args ...interface{}) (interface{}, error) {
	return extremum("min", args, func(a, b float64) bool { return a < b })
}

func extremum(op string, args []interface{}, better func(a, b float64) bool) (interface{}, error) {
	ns, err := numbers(op, args)
	if err != nil {
		return nil, err
	}
	if len(ns) == 0 {
		return nil, errors.Errorf("msgscript: %s requires at least 1 argument", op)
	}
	r := ns[0]
	for _, n := range ns[1:] {
		if better(n.Float, r.Float) {
			r = n
		}
	}
	return r.Value(), nil
}

func nativeConcat(self interface{}, args ...interface{}) (interface{}, error) {
	var b strings.Builder
	for _, a := range args {
		s, ok := a.(string)
		if !ok {
			return nil, errors.Errorf("msgscript: can only concat strings, have %T", a)
		}
		b.WriteString(s)
	}
	return b.String(), nil
}
