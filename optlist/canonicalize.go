// Package optlist normalizes loosely structured "name possibly followed
// by a value" inputs into a canonical ordered list of (name, value)
// pairs.
//
// An opt list lets callers write sparse option lists like
//
//	foo, bar, baz => {...}
//
// without padding every bare name with an explicit empty value. A name
// takes the element that follows it as its value only when that element
// is structured (a Sequence, Mapping or Callable); adjacent scalars are
// always two separate names, each without a value.
package optlist

import (
	"optlist-canon/options"
	"optlist-canon/utils"
	"optlist-canon/value"
)

// Entry is one canonicalized (name, value) pair. Name is normally a
// scalar; a structured value appearing in name position is passed
// through as-is, not rejected. Value is value.None or a structured
// value, never a scalar.
type Entry struct {
	Name  value.Value
	Value value.Value
}

// OptList is an ordered list of entries. Duplicate names are permitted
// unless uniqueness was requested at canonicalization time.
type OptList []Entry

// stepEnum classifies the element following a name during the scan.
type stepEnum int

const (
	stepLast       stepEnum = iota // name is the final element
	stepAbsent                     // next element is an absence marker: consume it
	stepStructured                 // next element is the name's value: consume it
	stepScalar                     // next element is the next name: leave it
)

func classify(seq value.Sequence, i int) stepEnum {
	if i == len(seq)-1 {
		return stepLast
	}

	switch kind := value.KindOf(seq[i+1]); {
	case kind == value.KindAbsent:
		return stepAbsent
	case kind.IsStructured():
		return stepStructured
	}

	return stepScalar
}

// Canonicalize normalizes input into an ordered OptList.
//
// Input may be nil or value.None (empty result), a value.Mapping, or a
// value.Sequence of interleaved names and values; any other shape is a
// caller error and panics. moniker labels the opt list in error
// messages and has no other effect. When requireUnique is set, a
// repeated scalar name fails with *DuplicateNameError. When mustBe is
// not AcceptAny, every present value must be of an accepted kind or the
// call fails with *DisallowedKindError. On failure no partial list is
// returned.
//
// Mapping input is scanned in map iteration order, so the resulting
// entry order is unstable across calls. Callers needing deterministic
// order must supply a Sequence.
func Canonicalize(input value.Value, moniker string, requireUnique bool, mustBe options.AcceptEnum) (OptList, error) {
	var seq value.Sequence

	switch input := input.(type) {
	default:
		panic("opt list input must be a sequence, a mapping, or absent")
	case nil, value.Absent:
		return OptList{}, nil
	case value.Mapping:
		seq = project(input)
	case value.Sequence:
		seq = input
	}

	out := make(OptList, 0, len(seq))
	seen := make(map[string]struct{})

	for i := 0; i < len(seq); i++ {
		name := seq[i]

		if requireUnique {
			// Structured values in name position have no name identity
			// and are never tracked.
			if text, ok := value.Text(name); ok {
				if _, dup := seen[text]; dup {
					return nil, &DuplicateNameError{Name: text, Moniker: moniker}
				}
				seen[text] = struct{}{}
			}
		}

		val := value.None

		switch classify(seq, i) {
		case stepLast, stepScalar:
		case stepAbsent:
			i++
		case stepStructured:
			val = seq[i+1]
			i++
		}

		if kind := value.KindOf(val); kind != value.KindAbsent && !mustBe.Allows(kind) {
			return nil, &DisallowedKindError{Kind: kind, Moniker: moniker}
		}

		out = append(out, Entry{Name: name, Value: val})
	}

	return out, nil
}

// project flattens a mapping into the scan's sequence form: each key,
// then its value only when the value is structured. Non-structured
// mapping values are dropped, leaving their key without a value.
func project(m value.Mapping) value.Sequence {
	seq := make(value.Sequence, 0, 2*len(m))
	for _, k := range utils.Keys(m) {
		seq = append(seq, value.String(k))
		if v := m[k]; value.KindOf(v).IsStructured() {
			seq = append(seq, v)
		}
	}

	return seq
}
