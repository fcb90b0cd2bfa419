// Package value defines the closed value model for opt lists: a sealed
// tagged union of the shapes an opt list element can take, plus runtime
// kind classification over that union.
package value

import "strconv"

// Value is one opt list element. Concrete types:
//
//   - Absent   — the explicit "no value" sentinel
//   - String   — scalar, usable as a name
//   - Number   — scalar, usable as a name
//   - Sequence — ordered composite
//   - Mapping  — name-keyed composite
//   - Callable — opaque callable
//
// Only types in this package implement Value.
type Value interface {
	optValue()
}

// Absent marks a name that carries no value. Prefer the None singleton
// over constructing Absent directly.
type Absent struct{}

type String string

type Number float64

type Sequence []Value

// Mapping iterates in Go map order, so canonicalizing a Mapping yields
// an unstable entry order. Callers needing deterministic order should
// build a Sequence instead.
type Mapping map[string]Value

// Callable is invoked with no arguments when the caller decides to
// realize it. The canonicalizer never calls it.
type Callable func() Value

func (Absent) optValue()   {}
func (String) optValue()   {}
func (Number) optValue()   {}
func (Sequence) optValue() {}
func (Mapping) optValue()  {}
func (Callable) optValue() {}

// None is the canonical Absent value.
var None Value = Absent{}

// Text returns the textual form of a scalar value and reports whether v
// is a scalar. Numbers format with the shortest round-trip notation.
func Text(v Value) (string, bool) {
	switch v := v.(type) {
	default:
		return "", false
	case String:
		return string(v), true
	case Number:
		return strconv.FormatFloat(float64(v), 'g', -1, 64), true
	}
}
