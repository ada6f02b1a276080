package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mcdecomp/core"
)

func TestDecomposition_AppendAndIterate(t *testing.T) {
	d := core.NewDecomposition[*core.Block](0)
	d.Append(core.BlockFromStates(5, []core.StateID{0, 1}))
	d.Append(core.BlockFromStates(5, []core.StateID{2}))

	require.Equal(t, 2, d.Len())
	require.Equal(t, []core.StateID{0, 1}, d.At(0).Members())
	require.Equal(t, []core.StateID{2}, d.At(1).Members())

	var seen []int
	for b := range d.Blocks() {
		seen = append(seen, b.Len())
	}
	require.Equal(t, []int{2, 1}, seen)
}

func TestDecomposition_EmptyHasZeroLen(t *testing.T) {
	d := core.NewDecomposition[*core.Block](0)
	require.Equal(t, 0, d.Len())
	require.Empty(t, d.All())
}
