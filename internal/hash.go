package internal

import (
	"math"
	"reflect"
	"sort"

	"golang.org/x/text/unicode/norm"
)

// Hash is a structural identity code. Messages use hashes as dispatch keys,
// so hashes must be deterministic across calls and processes.
type Hash uint64

// Hasher is implemented by values which provide their own structural hash.
type Hasher interface {
	HashCode() Hash
}

// hashGolden is the fractional part of the golden ratio, as used by
// boost::hash_combine.
const hashGolden = 0x9e3779b9

// StringHash computes the structural hash of a string. For each rune c of the
// NFC-normalized string of length n, the hash accumulates c^n + c^(n-1) + ...
// + c^1, with wrapping arithmetic.
func StringHash(s string) Hash {
	r := []rune(norm.NFC.String(s))
	var code Hash
	for _, c := range r {
		p := Hash(1)
		for j := 0; j < len(r); j++ {
			p *= Hash(c)
			code += p
		}
	}
	return code
}

// HashCombine mixes h into seed.
func HashCombine(seed, h Hash) Hash {
	return seed ^ (h + hashGolden + seed<<6 + seed>>2)
}

// ArrayHash folds the hashes of vs with HashCombine, seeded by the hash of the
// first element. The hash of an empty slice is 0.
func ArrayHash(vs []interface{}) Hash {
	if len(vs) == 0 {
		return 0
	}
	h := HashCode(vs[0])
	for _, v := range vs[1:] {
		h = HashCombine(h, HashCode(v))
	}
	return h
}

// HashCode computes the structural hash of an arbitrary value. nil is 0,
// booleans are 1 or 0, integers are their values, floats with integral values
// hash as the corresponding integer, strings use StringHash, and Hashers use
// their own HashCode method. Slices and arrays hash by their elements, maps by
// their entries ordered by key hash and then entry hash, and structs by their fields. Any other
// value hashes by its address.
func HashCode(v interface{}) Hash {
	switch v := v.(type) {
	case nil:
		return 0
	case Hasher:
		return v.HashCode()
	case bool:
		if v {
			return 1
		}
		return 0
	case string:
		return StringHash(v)
	case int:
		return Hash(v)
	case int64:
		return Hash(v)
	case float64:
		return floatHash(v)
	}
	return reflectHash(reflect.ValueOf(v))
}

// floatHash hashes a float so that integral values agree with integers.
func floatHash(f float64) Hash {
	if f == math.Trunc(f) && math.Abs(f) < 1<<63 {
		return Hash(int64(f))
	}
	return Hash(math.Float64bits(f))
}

func reflectHash(v reflect.Value) Hash {
	switch v.Kind() {
	case reflect.Invalid:
		return 0
	case reflect.Bool:
		if v.Bool() {
			return 1
		}
		return 0
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Hash(v.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Hash(v.Uint())
	case reflect.Float32, reflect.Float64:
		return floatHash(v.Float())
	case reflect.String:
		return StringHash(v.String())
	case reflect.Slice, reflect.Array:
		vs := make([]interface{}, v.Len())
		for i := range vs {
			vs[i] = valueInterface(v.Index(i))
		}
		return ArrayHash(vs)
	case reflect.Map:
		type entry struct{ k, h Hash }
		entries := make([]entry, 0, v.Len())
		iter := v.MapRange()
		for iter.Next() {
			k := HashCode(valueInterface(iter.Key()))
			entries = append(entries, entry{k, HashCombine(k, HashCode(valueInterface(iter.Value())))})
		}
		// Distinct keys can share a hash, so ties are broken by the entry hash
		// to keep the fold order independent of map iteration order.
		sort.Slice(entries, func(i, j int) bool {
			if entries[i].k != entries[j].k {
				return entries[i].k < entries[j].k
			}
			return entries[i].h < entries[j].h
		})
		if len(entries) == 0 {
			return 0
		}
		h := entries[0].h
		for _, e := range entries[1:] {
			h = HashCombine(h, e.h)
		}
		return h
	case reflect.Struct:
		var h Hash
		for i := 0; i < v.NumField(); i++ {
			h = HashCombine(h, HashCode(valueInterface(v.Field(i))))
		}
		return h
	case reflect.Interface:
		if v.IsNil() {
			return 0
		}
		return HashCode(valueInterface(v.Elem()))
	case reflect.Ptr, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return Hash(v.Pointer())
	}
	return 0
}

// valueInterface returns v as an interface, or the hashable equivalent of its
// contents when v is unexported.
func valueInterface(v reflect.Value) interface{} {
	if v.CanInterface() {
		return v.Interface()
	}
	switch v.Kind() {
	case reflect.Bool:
		return v.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Hash(v.Uint())
	case reflect.Float32, reflect.Float64:
		return v.Float()
	case reflect.String:
		return v.String()
	case reflect.Ptr, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return Hash(v.Pointer())
	}
	return nil
}
