package internal

import (
	"math"
	"reflect"

	"github.com/iancoleman/strcase"
	"github.com/pkg/errors"
)

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// lookupProperty finds the named property of an arbitrary receiver. Responders
// answer for themselves. Go functions respond to call and apply. Other values
// respond with exported methods and struct fields whose names are the
// camel-cased message name, or with entries of string-keyed maps.
func lookupProperty(subject interface{}, name string) (interface{}, bool) {
	if r, ok := subject.(Responder); ok {
		return r.Slot(name)
	}
	v := reflect.ValueOf(subject)
	if !v.IsValid() {
		return nil, false
	}
	if v.Kind() == reflect.Func && !v.IsNil() {
		switch name {
		case "call":
			return Method(callMethod), true
		case "apply":
			return Method(applyMethod), true
		}
	}
	goName := strcase.ToCamel(name)
	if goName == "" {
		return nil, false
	}
	if m := v.MethodByName(goName); m.IsValid() {
		return m.Interface(), true
	}
	for v.Kind() == reflect.Ptr || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return nil, false
		}
		v = v.Elem()
	}
	switch v.Kind() {
	case reflect.Struct:
		if f, ok := v.Type().FieldByName(goName); ok && f.PkgPath == "" {
			return v.FieldByIndex(f.Index).Interface(), true
		}
	case reflect.Map:
		if v.Type().Key().Kind() == reflect.String {
			e := v.MapIndex(reflect.ValueOf(name).Convert(v.Type().Key()))
			if e.IsValid() {
				return e.Interface(), true
			}
		}
	}
	return nil, false
}

// callMethod calls a function receiver with the message's arguments.
func callMethod(self interface{}, args ...interface{}) (interface{}, error) {
	return callValue(self, self, args)
}

// applyMethod calls a function receiver with the elements of its single slice
// argument.
func applyMethod(self interface{}, args ...interface{}) (interface{}, error) {
	if len(args) != 1 {
		return nil, errors.Errorf("msgscript: apply requires 1 argument, have %d", len(args))
	}
	spread, err := spreadArgs(args[0])
	if err != nil {
		return nil, err
	}
	return callValue(self, self, spread)
}

// spreadArgs converts a slice or array to an argument list.
func spreadArgs(v interface{}) ([]interface{}, error) {
	if v == nil {
		return nil, nil
	}
	if vs, ok := v.([]interface{}); ok {
		return vs, nil
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, errors.Errorf("msgscript: cannot spread %T as arguments", v)
	}
	r := make([]interface{}, rv.Len())
	for i := range r {
		r[i] = rv.Index(i).Interface()
	}
	return r, nil
}

// IsCallable returns whether fn can be called by dispatch.
func IsCallable(fn interface{}) bool {
	if _, ok := fn.(Method); ok {
		return true
	}
	v := reflect.ValueOf(fn)
	return v.Kind() == reflect.Func && !v.IsNil()
}

// Call calls fn with self as the receiver. fn may be a Method or any Go
// function.
func Call(self, fn interface{}, args ...interface{}) (interface{}, error) {
	return callValue(self, fn, args)
}

func callValue(self, fn interface{}, args []interface{}) (interface{}, error) {
	switch fn := fn.(type) {
	case Method:
		return fn(self, args...)
	case func(self interface{}, args ...interface{}) (interface{}, error):
		return fn(self, args...)
	}
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func || v.IsNil() {
		return nil, errors.Errorf("msgscript: %T is not callable", fn)
	}
	return callFunc(v, args)
}

// callFunc calls a Go function through reflection. Arguments are converted to
// the parameter types where Go would allow it for numbers. Functions may
// return nothing, a value, an error, or a value and an error; any other result
// list is returned as a []interface{}.
func callFunc(fv reflect.Value, args []interface{}) (interface{}, error) {
	t := fv.Type()
	n := t.NumIn()
	if t.IsVariadic() {
		if len(args) < n-1 {
			return nil, errors.Errorf("msgscript: %s requires at least %d arguments, have %d", t, n-1, len(args))
		}
	} else if len(args) != n {
		return nil, errors.Errorf("msgscript: %s requires %d arguments, have %d", t, n, len(args))
	}
	in := make([]reflect.Value, len(args))
	for i, a := range args {
		var pt reflect.Type
		if t.IsVariadic() && i >= n-1 {
			pt = t.In(n - 1).Elem()
		} else {
			pt = t.In(i)
		}
		v, err := convertArg(a, pt)
		if err != nil {
			return nil, errors.Wrapf(err, "argument %d", i)
		}
		in[i] = v
	}
	out := fv.Call(in)
	switch len(out) {
	case 0:
		return nil, nil
	case 1:
		if t.Out(0) == errorType {
			return nil, asError(out[0])
		}
		return out[0].Interface(), nil
	case 2:
		if t.Out(1) == errorType {
			return out[0].Interface(), asError(out[1])
		}
	}
	r := make([]interface{}, len(out))
	for i, o := range out {
		r[i] = o.Interface()
	}
	return r, nil
}

func asError(v reflect.Value) error {
	if v.IsNil() {
		return nil
	}
	return v.Interface().(error)
}

// convertArg converts an argument to a parameter type.
func convertArg(a interface{}, t reflect.Type) (reflect.Value, error) {
	if a == nil {
		return reflect.Zero(t), nil
	}
	v := reflect.ValueOf(a)
	if v.Type().AssignableTo(t) {
		return v, nil
	}
	if isNumberKind(v.Kind()) && isNumberKind(t.Kind()) {
		if !numberFits(v, t) {
			return reflect.Value{}, errors.Errorf("cannot use %v as %s without loss", a, t)
		}
		return v.Convert(t), nil
	}
	return reflect.Value{}, errors.Errorf("cannot use %T as %s", a, t)
}

// numberFits reports whether the number v converts to t exactly, or at least
// without overflow when t is a float type. Fractional values never fit
// integer types.
func numberFits(v reflect.Value, t reflect.Type) bool {
	z := reflect.New(t).Elem()
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i := v.Int()
		switch {
		case isIntKind(t.Kind()):
			return !z.OverflowInt(i)
		case isUintKind(t.Kind()):
			return i >= 0 && !z.OverflowUint(uint64(i))
		}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := v.Uint()
		switch {
		case isIntKind(t.Kind()):
			return u <= math.MaxInt64 && !z.OverflowInt(int64(u))
		case isUintKind(t.Kind()):
			return !z.OverflowUint(u)
		}
	case reflect.Float32, reflect.Float64:
		f := v.Float()
		switch {
		case isIntKind(t.Kind()):
			return f == math.Trunc(f) && f >= -(1<<63) && f < 1<<63 && !z.OverflowInt(int64(f))
		case isUintKind(t.Kind()):
			return f == math.Trunc(f) && f >= 0 && f < 1<<64 && !z.OverflowUint(uint64(f))
		case t.Kind() == reflect.Float32:
			return !z.OverflowFloat(f)
		}
	}
	return true
}

func isIntKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	}
	return false
}

func isUintKind(k reflect.Kind) bool {
	switch k {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	}
	return false
}

func isNumberKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}
