package optlist

import (
	"fmt"

	"optlist-canon/value"
)

// DuplicateNameError reports a name that occurred more than once in a
// uniqueness-checked opt list.
type DuplicateNameError struct {
	Name    string
	Moniker string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("multiple definitions provided for %s in %s opt list", e.Name, e.Moniker)
}

// DisallowedKindError reports a value whose structured kind is outside
// the accepted kind set.
type DisallowedKindError struct {
	Kind    value.KindEnum
	Moniker string
}

func (e *DisallowedKindError) Error() string {
	return fmt.Sprintf("%s values are not valid in %s opt list", e.Kind, e.Moniker)
}
