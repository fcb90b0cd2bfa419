package options

import (
	"fmt"
	"strings"

	"optlist-canon/value"
)

type AcceptEnum int

const (
	AcceptSequence AcceptEnum = 1 << iota // ordered composite values
	AcceptMapping                         // name-keyed composite values
	AcceptCallable                        // callable values

	AcceptAll AcceptEnum = (1 << iota) - 1 // all structured kinds combined
	AcceptAny AcceptEnum = 0               // zero value: no constraint, every structured kind passes
)

// ForKind returns the flag for a structured kind, or 0 for kinds that
// cannot appear as opt list values.
func ForKind(k value.KindEnum) AcceptEnum {
	switch k {
	default:
		return 0
	case value.KindSequence:
		return AcceptSequence
	case value.KindMapping:
		return AcceptMapping
	case value.KindCallable:
		return AcceptCallable
	}
}

// Allows reports whether kind k passes the constraint. AcceptAny (the
// zero value) passes everything.
func (a AcceptEnum) Allows(k value.KindEnum) bool {
	if a == AcceptAny {
		return true
	}

	return a&ForKind(k) != 0
}

// Parse converts a comma-separated list of kind names into an
// AcceptEnum. Empty input parses to AcceptAny.
func Parse(s string) (AcceptEnum, error) {
	if s == "" {
		return AcceptAny, nil
	}

	var out AcceptEnum
	for _, part := range strings.Split(s, ",") {
		switch strings.TrimSpace(part) {
		default:
			return 0, fmt.Errorf("unknown value kind %q", strings.TrimSpace(part))
		case "sequence":
			out |= AcceptSequence
		case "mapping":
			out |= AcceptMapping
		case "callable":
			out |= AcceptCallable
		case "all":
			out |= AcceptAll
		}
	}

	return out, nil
}
