package runtime

import (
	"math"
	"strconv"
)

// Kind identifies the runtime value category.
type Kind int

const (
	KindNil Kind = iota
	KindBool
	KindNumber
	KindString
)

func (k Kind) String() string {
	switch k {
	case KindNil:
		return "nil"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	}
	return "unknown"
}

// Value is one of Nil, Bool, Number or String.
type Value interface {
	Kind() Kind
	String() string
}

type Nil struct{}

func (Nil) Kind() Kind     { return KindNil }
func (Nil) String() string { return "nil" }

type Bool bool

func (Bool) Kind() Kind { return KindBool }
func (v Bool) String() string {
	return strconv.FormatBool(bool(v))
}

type Number float64

func (Number) Kind() Kind { return KindNumber }

// String prints integral numbers without a fractional part.
func (v Number) String() string {
	switch {
	case math.IsInf(float64(v), 1):
		return "Infinity"
	case math.IsInf(float64(v), -1):
		return "-Infinity"
	}
	return strconv.FormatFloat(float64(v), 'f', -1, 64)
}

type String string

func (String) Kind() Kind       { return KindString }
func (v String) String() string { return string(v) }

// FromLiteral converts a token literal into a Value.
func FromLiteral(lit interface{}) Value {
	switch v := lit.(type) {
	case float64:
		return Number(v)
	case string:
		return String(v)
	case bool:
		return Bool(v)
	}
	return Nil{}
}

// Truthy reports whether v counts as true: only nil and false do not.
func Truthy(v Value) bool {
	switch v := v.(type) {
	case Nil:
		return false
	case Bool:
		return bool(v)
	}
	return true
}

// Equal compares values structurally without any coercion.
func Equal(a, b Value) bool {
	switch a := a.(type) {
	case Nil:
		_, ok := b.(Nil)
		return ok
	case Bool:
		v, ok := b.(Bool)
		return ok && a == v
	case Number:
		v, ok := b.(Number)
		return ok && a == v
	case String:
		v, ok := b.(String)
		return ok && a == v
	}
	return false
}
