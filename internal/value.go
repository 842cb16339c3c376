package internal

import (
	"fmt"
	"strconv"
)

// loxValue is any value a program can produce. The set of implementations is
// closed: nil, booleans, numbers, strings, callables and instances.
type loxValue interface {
	fmt.Stringer
	isLoxValue()
}

type loxNil struct{}

type loxBool bool

type loxNumber float64

type loxString string

func (loxNil) isLoxValue()    {}
func (loxBool) isLoxValue()   {}
func (loxNumber) isLoxValue() {}
func (loxString) isLoxValue() {}

func (loxNil) String() string {
	return "nil"
}

func (b loxBool) String() string {
	if b {
		return "true"
	}
	return "false"
}

// String prints integral numbers without a fractional part
func (n loxNumber) String() string {
	return strconv.FormatFloat(float64(n), 'f', -1, 64)
}

func (s loxString) String() string {
	return string(s)
}

// isTruthy: nil and false are falsy, everything else is truthy
func isTruthy(v loxValue) bool {
	switch v := v.(type) {
	case loxNil:
		return false
	case loxBool:
		return bool(v)
	}
	return true
}

// isEqual never coerces: values of different kinds are never equal.
// Numbers follow IEEE equality, callables and instances compare by identity.
func isEqual(a, b loxValue) bool {
	switch a := a.(type) {
	case loxNil:
		_, ok := b.(loxNil)
		return ok
	case loxBool:
		bv, ok := b.(loxBool)
		return ok && a == bv
	case loxNumber:
		bv, ok := b.(loxNumber)
		return ok && a == bv
	case loxString:
		bv, ok := b.(loxString)
		return ok && a == bv
	}
	return a == b
}

// typeName is used in debug logs
func typeName(v loxValue) string {
	switch v.(type) {
	case loxNil:
		return "nil"
	case loxBool:
		return "boolean"
	case loxNumber:
		return "number"
	case loxString:
		return "string"
	case *loxClass:
		return "class"
	case *loxInstance:
		return "instance"
	case callable:
		return "function"
	}
	return fmt.Sprintf("%T", v)
}
