package mec_test

import (
	"fmt"

	"github.com/katalvlaran/mcdecomp/builder"
	"github.com/katalvlaran/mcdecomp/core"
	"github.com/katalvlaran/mcdecomp/mec"
)

// ExampleEngine_Decompose shows a forced-exit MDP splitting into a
// two-state MEC (with the leaking choice dropped) and an absorbing
// singleton MEC.
func ExampleEngine_Decompose() {
	view, idx, subsystem := builder.ForcedExit()
	e := mec.NewEngine(idx.NumStates())

	d, err := e.Decompose(view, idx, subsystem)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("components:", d.Len())
	for i := 0; i < d.Len(); i++ {
		c := d.At(i)
		if c.ContainsState(2) {
			fmt.Println("state 2 retains", c.Choices(2).Len(), "choice(s)")
		}
		if c.ContainsState(0) {
			fmt.Println("state 0 retains", c.Choices(0).Len(), "choice(s)")
			fmt.Println("state 1 retains", c.Choices(core.StateID(1)).Len(), "choice(s)")
		}
	}
	// Output:
	// components: 2
	// state 2 retains 1 choice(s)
	// state 0 retains 1 choice(s)
	// state 1 retains 1 choice(s)
}
