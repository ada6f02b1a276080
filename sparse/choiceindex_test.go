package sparse_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mcdecomp/core"
	"github.com/katalvlaran/mcdecomp/sparse"
)

func TestIdentity_RangeIsOneToOne(t *testing.T) {
	idx := sparse.Identity(3)
	require.Equal(t, 3, idx.NumStates())
	require.Equal(t, 3, idx.NumChoices())

	for s := core.StateID(0); s < 3; s++ {
		lo, hi := idx.Range(s)
		require.Equal(t, core.ChoiceID(s), lo)
		require.Equal(t, core.ChoiceID(s+1), hi)
	}
}

func TestNewChoiceIndex_RejectsNonMonotonic(t *testing.T) {
	_, err := sparse.NewChoiceIndex([]core.ChoiceID{0, 2, 1, 3})
	require.ErrorIs(t, err, sparse.ErrNotMonotonic)
}

func TestNewChoiceIndex_AcceptsNondeterministicRanges(t *testing.T) {
	// State 0 has two choices, state 1 has one.
	idx, err := sparse.NewChoiceIndex([]core.ChoiceID{0, 2, 3})
	require.NoError(t, err)
	lo, hi := idx.Range(0)
	require.Equal(t, core.ChoiceID(0), lo)
	require.Equal(t, core.ChoiceID(2), hi)
	lo, hi = idx.Range(1)
	require.Equal(t, core.ChoiceID(2), lo)
	require.Equal(t, core.ChoiceID(3), hi)
}
