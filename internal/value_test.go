package internal

import (
	"math"
	"testing"
)

func TestTruthiness(t *testing.T) {
	cases := []struct {
		value  loxValue
		truthy bool
	}{
		{loxNil{}, false},
		{loxBool(false), false},
		{loxBool(true), true},
		{loxNumber(0), true},
		{loxString(""), true},
		{newInstance(&loxClass{name: "A"}), true},
	}
	for _, c := range cases {
		if isTruthy(c.value) != c.truthy {
			t.Errorf("isTruthy(%v) should be %v", c.value, c.truthy)
		}
	}
}

func TestEquality(t *testing.T) {
	class := &loxClass{name: "A"}
	a := newInstance(class)
	b := newInstance(class)
	nan := loxNumber(math.NaN())

	cases := []struct {
		left, right loxValue
		equal       bool
	}{
		{loxNil{}, loxNil{}, true},
		{loxNil{}, loxBool(false), false},
		{loxString("1"), loxNumber(1), false},
		{loxNumber(1), loxNumber(1.0), true},
		{loxString("a"), loxString("a"), true},
		{loxBool(true), loxBool(true), true},
		{nan, nan, false},
		{a, a, true},
		{a, b, false},
		{class, class, true},
	}
	for _, c := range cases {
		if isEqual(c.left, c.right) != c.equal {
			t.Errorf("isEqual(%v, %v) should be %v", c.left, c.right, c.equal)
		}
	}
}

func TestRendering(t *testing.T) {
	class := &loxClass{name: "Point"}
	fn := &loxFunction{declaration: &fnStmt{name: identifier("area")}}

	cases := []struct {
		value    loxValue
		rendered string
		kind     string
	}{
		{loxNil{}, "nil", "nil"},
		{loxBool(true), "true", "boolean"},
		{loxNumber(3), "3", "number"},
		{loxNumber(-0.5), "-0.5", "number"},
		{loxNumber(1e21), "1000000000000000000000", "number"},
		{loxString("text"), "text", "string"},
		{fn, "<fn area>", "function"},
		{&nativeFn{name: "clock"}, "<native fn>", "function"},
		{class, "Point", "class"},
		{newInstance(class), "Point instance", "instance"},
	}
	for _, c := range cases {
		if c.value.String() != c.rendered {
			t.Errorf("Expected %q, found %q", c.rendered, c.value.String())
		}
		if typeName(c.value) != c.kind {
			t.Errorf("Expected type %q for %v, found %q", c.kind, c.value, typeName(c.value))
		}
	}
}
