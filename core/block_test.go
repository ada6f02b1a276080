package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mcdecomp/core"
)

func TestBlock_EraseRemovesAllMembersInOnePass(t *testing.T) {
	b := core.BlockFromStates(10, []core.StateID{1, 2, 3, 4, 5})

	toRemove := core.NewStateSet(10)
	toRemove.Insert(2)
	toRemove.Insert(4)

	b.Erase(toRemove)

	require.Equal(t, []core.StateID{1, 3, 5}, b.Members())
}

func TestBlock_EraseOnEmptySetIsNoOp(t *testing.T) {
	b := core.BlockFromStates(5, []core.StateID{0, 1, 2})
	b.Erase(core.NewStateSet(5))
	require.Equal(t, []core.StateID{0, 1, 2}, b.Members())
}
