package program

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/zephyrtronium/msgscript"
)

// resolveSubject converts a decoded subject to a dispatch receiver.
func resolveSubject(v interface{}, b *msgscript.Binding) (interface{}, error) {
	switch v {
	case "native":
		return msgscript.Native, nil
	case "self":
		return b.Self(), nil
	}
	if key, x, ok := directive(v); ok && key == "dispatch" {
		var d Dispatch
		if err := remarshal(x, &d); err != nil {
			return nil, errors.Wrap(err, "nested dispatch")
		}
		return d.build(b)
	}
	return resolveArg(v, b)
}

// resolveArg converts a decoded argument to a value.
func resolveArg(v interface{}, b *msgscript.Binding) (interface{}, error) {
	if key, x, ok := directive(v); ok {
		switch key {
		case "var":
			name, ok := x.(string)
			if !ok {
				return nil, errors.Errorf("variable name %v is not a string", x)
			}
			return b.Get(name)
		case "lit":
			return plain(x), nil
		case "time":
			s, ok := x.(string)
			if !ok {
				return nil, errors.Errorf("time %v is not a string", x)
			}
			t, err := time.Parse(time.RFC3339, s)
			if err != nil {
				return nil, err
			}
			return t, nil
		case "dispatch":
			return nil, errors.New("nested dispatches are only allowed as subjects")
		}
	}
	switch v := v.(type) {
	case []interface{}:
		r := make([]interface{}, len(v))
		for i, x := range v {
			y, err := resolveArg(x, b)
			if err != nil {
				return nil, errors.Wrapf(err, "element %d", i)
			}
			r[i] = y
		}
		return r, nil
	case map[interface{}]interface{}, yaml.MapSlice:
		r := make(map[string]interface{})
		var err error
		eachItem(v, func(k, x interface{}) bool {
			var y interface{}
			y, err = resolveArg(x, b)
			if err != nil {
				err = errors.Wrapf(err, "key %v", k)
				return false
			}
			r[fmt.Sprint(k)] = y
			return true
		})
		if err != nil {
			return nil, err
		}
		return r, nil
	}
	return v, nil
}

// eachItem calls f on each entry of a decoded YAML mapping until f returns
// false. yaml.v2 decodes mappings nested under a MapSlice as MapSlices and
// all others as maps.
func eachItem(v interface{}, f func(k, x interface{}) bool) {
	switch v := v.(type) {
	case map[interface{}]interface{}:
		for k, x := range v {
			if !f(k, x) {
				return
			}
		}
	case yaml.MapSlice:
		for _, it := range v {
			if !f(it.Key, it.Value) {
				return
			}
		}
	}
}

// directive recognizes single-key mappings whose key is a directive name.
func directive(v interface{}) (key string, x interface{}, ok bool) {
	switch m := v.(type) {
	case map[interface{}]interface{}:
		if len(m) != 1 {
			return "", nil, false
		}
	case yaml.MapSlice:
		if len(m) != 1 {
			return "", nil, false
		}
	default:
		return "", nil, false
	}
	eachItem(v, func(k, y interface{}) bool {
		switch k {
		case "var", "lit", "time", "dispatch":
			key, x, ok = k.(string), y, true
		}
		return false
	})
	return key, x, ok
}

// plain converts decoded YAML to values without interpreting directives.
func plain(v interface{}) interface{} {
	switch v := v.(type) {
	case []interface{}:
		r := make([]interface{}, len(v))
		for i, x := range v {
			r[i] = plain(x)
		}
		return r
	case map[interface{}]interface{}, yaml.MapSlice:
		r := make(map[string]interface{})
		eachItem(v, func(k, x interface{}) bool {
			r[fmt.Sprint(k)] = plain(x)
			return true
		})
		return r
	}
	return v
}

// remarshal decodes an already decoded YAML value into a typed value.
func remarshal(v, into interface{}) error {
	b, err := yaml.Marshal(v)
	if err != nil {
		return err
	}
	return yaml.UnmarshalStrict(b, into)
}
