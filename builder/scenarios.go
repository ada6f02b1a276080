package builder

import (
	"github.com/katalvlaran/mcdecomp/core"
	"github.com/katalvlaran/mcdecomp/sparse"
)

// fullSubsystem returns a StateSet containing every state in [0, n).
func fullSubsystem(n int) *core.StateSet {
	s := core.NewStateSet(n)
	s.SetRange(0, core.StateID(n))
	return s
}

// edge is a convenience constructor for a sparse.Edge with a Prob weight.
func edge(successor core.StateID, weight float64) sparse.Edge {
	return sparse.Edge{Successor: successor, Weight: sparse.Prob(weight)}
}

// TwoCycles realizes S1: two isolated two-cycles, 0<->1 and 2<->3,
// deterministic. SCC and MEC both decompose it into {0,1} and {2,3}.
func TwoCycles() (sparse.View, sparse.ChoiceIndex, *core.StateSet) {
	view := sparse.FromRows([][]sparse.Edge{
		{edge(1, 1)},
		{edge(0, 1)},
		{edge(3, 1)},
		{edge(2, 1)},
	})
	return view, sparse.Identity(4), fullSubsystem(4)
}

// LineGraph realizes S2: a deterministic line 0->1->2 with a self-loop on
// the tail, 2->2. Dropping trivial SCCs, or decomposing into MECs, leaves
// only {2}.
func LineGraph() (sparse.View, sparse.ChoiceIndex, *core.StateSet) {
	view := sparse.FromRows([][]sparse.Edge{
		{edge(1, 1)},
		{edge(2, 1)},
		{edge(2, 1)},
	})
	return view, sparse.Identity(3), fullSubsystem(3)
}

// LeakyMDP realizes S3: state 0 has two choices (c0 self-loops, c1 jumps
// to 1); state 1 has one choice that splits its probability mass between
// 0 and 1. Every choice stays inside {0,1}, so the MEC retains all three.
func LeakyMDP() (sparse.View, sparse.ChoiceIndex, *core.StateSet) {
	view := sparse.FromRows([][]sparse.Edge{
		{edge(0, 1)},                  // c0: state 0's self-loop
		{edge(1, 1)},                  // c1: state 0's jump to 1
		{edge(0, 0.5), edge(1, 0.5)}, // c2: state 1's only choice
	})
	idx, err := sparse.NewChoiceIndex([]core.ChoiceID{0, 2, 3})
	if err != nil {
		panic(err)
	}
	return view, idx, fullSubsystem(2)
}

// ForcedExit realizes S4: states 0 and 1 cycle between themselves, but
// state 1 also has a choice (c1b) that leaks to the absorbing state 2.
// The MEC over {0,1} excludes c1b; {2} is its own singleton MEC.
func ForcedExit() (sparse.View, sparse.ChoiceIndex, *core.StateSet) {
	view := sparse.FromRows([][]sparse.Edge{
		{edge(1, 1)}, // c0: state 0 -> 1
		{edge(0, 1)}, // c1: state 1 -> 0
		{edge(2, 1)}, // c1b: state 1 -> 2
		{edge(2, 1)}, // c2: state 2 -> 2 (absorbing)
	})
	idx, err := sparse.NewChoiceIndex([]core.ChoiceID{0, 1, 3, 4})
	if err != nil {
		panic(err)
	}
	return view, idx, fullSubsystem(3)
}

// DeadEnd realizes S5: state 0 has a single choice into state 1; state 1
// has two parallel choices, both back to state 0. Neither state has a
// self-choice, yet {0,1} is a valid MEC retaining every choice.
func DeadEnd() (sparse.View, sparse.ChoiceIndex, *core.StateSet) {
	view := sparse.FromRows([][]sparse.Edge{
		{edge(1, 1)}, // c0: state 0 -> 1
		{edge(0, 1)}, // c1: state 1 -> 0
		{edge(0, 1)}, // c1b: state 1 -> 0 (parallel choice)
	})
	idx, err := sparse.NewChoiceIndex([]core.ChoiceID{0, 1, 3})
	if err != nil {
		panic(err)
	}
	return view, idx, fullSubsystem(2)
}

// BottomFilterDemo realizes S6: a deterministic two-cycle 0<->1 with a
// one-way edge into a self-looping sink, 1->2->2. With BottomOnly, only
// the sink {2} is a bottom SCC; {0,1} is not, since 1 leaks to 2.
func BottomFilterDemo() (sparse.View, sparse.ChoiceIndex, *core.StateSet) {
	view := sparse.FromRows([][]sparse.Edge{
		{edge(1, 1)},
		{edge(0, 1), edge(2, 1)},
		{edge(2, 1)},
	})
	return view, sparse.Identity(3), fullSubsystem(3)
}
