package sparse_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mcdecomp/core"
	"github.com/katalvlaran/mcdecomp/sparse"
)

func TestFromRows_RowReturnsConfiguredEdges(t *testing.T) {
	view := sparse.FromRows([][]sparse.Edge{
		{{Successor: 1, Weight: sparse.Prob(1.0)}},
		{{Successor: 0, Weight: sparse.Prob(1.0)}},
	})

	row0 := view.Row(0)
	require.Len(t, row0, 1)
	require.Equal(t, core.StateID(1), row0[0].Successor)
	require.True(t, row0[0].Weight.IsPositive())
}

func TestBuildBackward_CollectsPredecessorRows(t *testing.T) {
	// 0 -> 1, 1 -> 0, 1 -> 2 (deterministic rows, multiple edges in row 1).
	view := sparse.FromRows([][]sparse.Edge{
		{{Successor: 1, Weight: sparse.Prob(1.0)}},
		{
			{Successor: 0, Weight: sparse.Prob(0.5)},
			{Successor: 2, Weight: sparse.Prob(0.5)},
		},
		{{Successor: 2, Weight: sparse.Prob(1.0)}},
	})
	idx := sparse.Identity(3)

	back := sparse.BuildBackward(view, idx)
	require.Equal(t, []core.ChoiceID{1}, back.PredecessorRows(0))
	require.Equal(t, []core.ChoiceID{0}, back.PredecessorRows(1))
	require.Equal(t, []core.ChoiceID{1, 2}, back.PredecessorRows(2))
}

func TestValidateWeights_FlagsNegative(t *testing.T) {
	view := sparse.FromRows([][]sparse.Edge{
		{{Successor: 0, Weight: sparse.Prob(-0.1)}},
	})
	idx := sparse.Identity(1)

	err := sparse.ValidateWeights(view, idx)
	require.ErrorIs(t, err, sparse.ErrNegativeWeight)
}

func TestValidateWeights_PassesNonNegative(t *testing.T) {
	view := sparse.FromRows([][]sparse.Edge{
		{{Successor: 0, Weight: sparse.Prob(1.0)}},
	})
	idx := sparse.Identity(1)

	require.NoError(t, sparse.ValidateWeights(view, idx))
}
