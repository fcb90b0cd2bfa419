package optlist

import (
	"optlist-canon/options"
	"optlist-canon/value"
)

// Expand canonicalizes input with uniqueness enforced and folds the
// result into a name-keyed mapping, later entries overwriting earlier
// ones with the same name text. Absent input yields an empty mapping.
// Entries whose name is not a scalar have no name text and are dropped
// from the fold.
func Expand(input value.Value, moniker string, mustBe options.AcceptEnum) (value.Mapping, error) {
	list, err := Canonicalize(input, moniker, true, mustBe)
	if err != nil {
		return nil, err
	}

	out := make(value.Mapping, len(list))
	for _, e := range list {
		text, ok := value.Text(e.Name)
		if !ok {
			continue
		}
		out[text] = e.Value
	}

	return out, nil
}
