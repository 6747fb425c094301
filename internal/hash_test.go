package internal_test

import (
	"testing"

	"github.com/zephyrtronium/msgscript/internal"
)

func TestStringHash(t *testing.T) {
	cases := map[string]struct {
		s    string
		want internal.Hash
	}{
		"Empty":  {"", 0},
		"One":    {"a", 97},
		"Two":    {"ab", 97 + 97*97 + 98 + 98*98},
		"Repeat": {"aa", 2 * (97 + 97*97)},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			if h := internal.StringHash(c.s); h != c.want {
				t.Errorf("wrong hash for %q: want %d, have %d", c.s, c.want, h)
			}
		})
	}
}

func TestStringHashDeterministic(t *testing.T) {
	for _, s := range []string{"", "sum", "invoke", "+", "a longer message name", "日本語"} {
		a, b := internal.StringHash(s), internal.StringHash(s)
		if a != b {
			t.Errorf("hash of %q changed between calls: %d then %d", s, a, b)
		}
	}
}

func TestStringHashNormalized(t *testing.T) {
	composed := "caf\u00e9"
	decomposed := "cafe\u0301"
	if internal.StringHash(composed) != internal.StringHash(decomposed) {
		t.Error("canonically equivalent strings hash differently")
	}
}

func TestHashCombine(t *testing.T) {
	if h := internal.HashCombine(0, 0); h != 0x9e3779b9 {
		t.Errorf("wrong combination of zeros: have %#x", h)
	}
	if internal.HashCombine(1, 2) == internal.HashCombine(2, 1) {
		t.Error("combination is not order sensitive")
	}
}

type hashed struct{}

func (hashed) HashCode() internal.Hash { return 42 }

func TestHashCode(t *testing.T) {
	cases := map[string]struct {
		a, b  interface{}
		equal bool
	}{
		"Nil":            {nil, 0, true},
		"True":           {true, 1, true},
		"False":          {false, 0, true},
		"IntFloat":       {3, 3.0, true},
		"IntKinds":       {int8(5), uint64(5), true},
		"Fraction":       {0.5, 0, false},
		"String":         {"sum", internal.StringHash("sum"), true},
		"Hasher":         {hashed{}, 42, true},
		"Slices":         {[]int{1, 2, 3}, []interface{}{1, 2, 3}, true},
		"SliceOrder":     {[]int{1, 2}, []int{2, 1}, false},
		"MapOrder":       {map[string]int{"a": 1, "b": 2}, map[string]int{"b": 2, "a": 1}, true},
		"MapValues":      {map[string]int{"a": 1}, map[string]int{"a": 2}, false},
		"MapAnagramKeys": {map[string]int{"ab": 1, "ba": 2}, map[string]int{"ba": 2, "ab": 1}, true},
		"Structs":        {struct{ X, Y int }{1, 2}, struct{ X, Y int }{1, 2}, true},
		"StructsDiffer":  {struct{ X, Y int }{1, 2}, struct{ X, Y int }{2, 1}, false},
		"EmptySlice":     {[]int{}, 0, true},
		"DistinctString": {"a", "b", false},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			a, b := internal.HashCode(c.a), internal.HashCode(c.b)
			if (a == b) != c.equal {
				t.Errorf("HashCode(%#v) = %d, HashCode(%#v) = %d; want equal = %t", c.a, a, c.b, b, c.equal)
			}
		})
	}
}

func TestHashCodePointers(t *testing.T) {
	x, y := new(int), new(int)
	if internal.HashCode(x) != internal.HashCode(x) {
		t.Error("pointer hash is not stable")
	}
	if internal.HashCode(x) == internal.HashCode(y) {
		t.Error("distinct pointers hash equally")
	}
}

// TestHashCodeMapStable tests that maps whose keys share a hash still hash
// the same way on every call.
func TestHashCodeMapStable(t *testing.T) {
	m := map[string]int{"ab": 1, "ba": 2, "abc": 3, "cab": 4, "bca": 5}
	want := internal.HashCode(m)
	for i := 0; i < 200; i++ {
		if h := internal.HashCode(m); h != want {
			t.Fatalf("hash changed on call %d: want %d, have %d", i, want, h)
		}
	}
	a := internal.BinaryMessage("at", m)
	for i := 0; i < 200; i++ {
		if !a.Equal(internal.BinaryMessage("at", m)) {
			t.Fatalf("binary message with map operand changed identity on call %d", i)
		}
	}
}
