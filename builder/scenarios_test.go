package builder_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mcdecomp/builder"
	"github.com/katalvlaran/mcdecomp/core"
)

func TestTwoCycles_Shape(t *testing.T) {
	view, idx, subsystem := builder.TwoCycles()
	require.Equal(t, 4, idx.NumStates())
	require.Equal(t, 4, subsystem.Len())
	require.Equal(t, core.StateID(1), view.Row(0)[0].Successor)
}

func TestLeakyMDP_ChoiceRanges(t *testing.T) {
	_, idx, subsystem := builder.LeakyMDP()
	require.Equal(t, 2, idx.NumStates())
	require.Equal(t, 3, idx.NumChoices())
	require.Equal(t, 2, subsystem.Len())

	lo, hi := idx.Range(0)
	require.Equal(t, core.ChoiceID(0), lo)
	require.Equal(t, core.ChoiceID(2), hi)
}

func TestForcedExit_Shape(t *testing.T) {
	_, idx, subsystem := builder.ForcedExit()
	require.Equal(t, 3, idx.NumStates())
	require.Equal(t, 4, idx.NumChoices())
	require.Equal(t, 3, subsystem.Len())
}

func TestCycle_IsOneSelfContainedRing(t *testing.T) {
	view, idx, subsystem := builder.Cycle(5)
	require.Equal(t, 5, idx.NumStates())
	require.Equal(t, 5, subsystem.Len())
	for s := core.StateID(0); s < 5; s++ {
		lo, _ := idx.Range(s)
		require.Len(t, view.Row(lo), 1)
	}
}

func TestStar_HubFansOutToEveryLeaf(t *testing.T) {
	view, idx, _ := builder.Star(4)
	require.Equal(t, 4, idx.NumStates())
	hubRow := view.Row(0)
	require.Len(t, hubRow, 3)
}

func TestComplete_EveryStateReachesEveryOther(t *testing.T) {
	view, idx, _ := builder.Complete(4)
	for s := core.StateID(0); s < 4; s++ {
		lo, _ := idx.Range(s)
		require.Len(t, view.Row(lo), 3)
	}
}

func TestGrid_SingleCellSelfLoops(t *testing.T) {
	view, idx, subsystem := builder.Grid(1, 1)
	require.Equal(t, 1, idx.NumStates())
	require.Equal(t, 1, subsystem.Len())
	row := view.Row(0)
	require.Len(t, row, 1)
	require.Equal(t, core.StateID(0), row[0].Successor)
}

func TestGrid_InteriorCellHasFourNeighbors(t *testing.T) {
	view, idx, _ := builder.Grid(3, 3)
	lo, _ := idx.Range(4) // center of a 3x3 grid
	require.Len(t, view.Row(lo), 4)
}

func TestRandomSparse_DeterministicForFixedSeed(t *testing.T) {
	view1, idx1, _ := builder.RandomSparse(20, 3, 0.2, 42)
	view2, idx2, _ := builder.RandomSparse(20, 3, 0.2, 42)

	require.Equal(t, idx1, idx2)
	for c := core.ChoiceID(0); c < core.ChoiceID(idx1.NumChoices()); c++ {
		require.Equal(t, view1.Row(c), view2.Row(c))
	}
}

func TestRandomSparse_EveryChoiceIsNonEmpty(t *testing.T) {
	view, idx, _ := builder.RandomSparse(15, 2, 0.0, 7)
	for c := core.ChoiceID(0); c < core.ChoiceID(idx.NumChoices()); c++ {
		require.NotEmpty(t, view.Row(c))
	}
}
