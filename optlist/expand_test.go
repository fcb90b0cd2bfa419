package optlist_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"optlist-canon/options"
	"optlist-canon/optlist"
	"optlist-canon/value"
)

func TestExpandMappingInput(t *testing.T) {
	t.Parallel()

	in := value.Mapping{
		"foo": value.None,
		"bar": value.Sequence{value.Number(1), value.Number(2)},
	}

	m, err := optlist.Expand(in, "test", options.AcceptAny)
	require.NoError(t, err)

	assert.Equal(t, value.Mapping{
		"foo": value.None,
		"bar": value.Sequence{value.Number(1), value.Number(2)},
	}, m)
}

func TestExpandAlwaysUnique(t *testing.T) {
	t.Parallel()

	_, err := optlist.Expand(names("x", "x"), "test", options.AcceptAny)

	var dup *optlist.DuplicateNameError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "x", dup.Name)
}

func TestExpandAbsentInput(t *testing.T) {
	t.Parallel()

	m, err := optlist.Expand(nil, "test", options.AcceptAny)
	require.NoError(t, err)
	assert.Empty(t, m)

	m, err = optlist.Expand(value.None, "test", options.AcceptAny)
	require.NoError(t, err)
	assert.Empty(t, m)
}

func TestExpandMustBe(t *testing.T) {
	t.Parallel()

	in := value.Sequence{value.String("y"), value.Mapping{"A": value.Number(1)}}

	_, err := optlist.Expand(in, "test", options.AcceptSequence)

	var bad *optlist.DisallowedKindError
	require.ErrorAs(t, err, &bad)
	assert.Equal(t, value.KindMapping, bad.Kind)
}

func TestExpandDropsStructuredNames(t *testing.T) {
	t.Parallel()

	in := value.Sequence{
		value.Mapping{"A": value.Number(1)},
		value.String("kept"),
	}

	m, err := optlist.Expand(in, "test", options.AcceptAny)
	require.NoError(t, err)

	// The leading mapping sits in name position, has no name text, and
	// is dropped from the fold.
	assert.Equal(t, value.Mapping{"kept": value.None}, m)
}

// Re-canonicalizing the folded form of a canonicalized sequence yields
// the same name/value associations.
func TestExpandRoundTrip(t *testing.T) {
	t.Parallel()

	in := value.Sequence{
		value.String("plain"),
		value.String("listy"), value.Sequence{value.Number(1)},
		value.String("mappy"), value.Mapping{"k": value.String("v")},
	}

	first, err := optlist.Expand(in, "round trip", options.AcceptAny)
	require.NoError(t, err)

	second, err := optlist.Expand(first, "round trip", options.AcceptAny)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
