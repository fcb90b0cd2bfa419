package value

//go:generate go tool stringer -type=KindEnum -output=kind_string.go

type KindEnum int

const (
	_ KindEnum = iota // skip zero value, use it as a default (invalid) value for KindEnum

	KindAbsent
	KindString
	KindNumber
	KindSequence
	KindMapping
	KindCallable

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

func (k KindEnum) IsScalar() bool {
	switch k {
	default:
		return false
	case KindString, KindNumber:
		return true
	}
}

// IsStructured reports whether the kind is a composite or callable
// shape, i.e. anything that can stand as an opt list value.
func (k KindEnum) IsStructured() bool {
	switch k {
	default:
		return false
	case KindSequence, KindMapping, KindCallable:
		return true
	}
}

// KindOf classifies a value. A nil Value counts as absent; anything
// outside the sealed union classifies as the invalid zero kind.
func KindOf(v Value) KindEnum {
	switch v.(type) {
	default:
		return 0
	case nil, Absent:
		return KindAbsent
	case String:
		return KindString
	case Number:
		return KindNumber
	case Sequence:
		return KindSequence
	case Mapping:
		return KindMapping
	case Callable:
		return KindCallable
	}
}
