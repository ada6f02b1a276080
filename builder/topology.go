package builder

import (
	"fmt"

	"github.com/katalvlaran/mcdecomp/core"
	"github.com/katalvlaran/mcdecomp/sparse"
)

// Cycle returns a deterministic directed cycle over n states,
// 0->1->...->(n-1)->0. The whole subsystem is a single SCC/MEC.
func Cycle(n int) (sparse.View, sparse.ChoiceIndex, *core.StateSet) {
	if n < 1 {
		panic(fmt.Sprintf("builder: Cycle: n=%d must be >= 1", n))
	}
	rows := make([][]sparse.Edge, n)
	for i := 0; i < n; i++ {
		rows[i] = []sparse.Edge{edge(core.StateID((i+1)%n), 1)}
	}
	return sparse.FromRows(rows), sparse.Identity(n), fullSubsystem(n)
}

// Line returns a deterministic directed path 0->1->...->(n-1), with a
// self-loop on the last state so it is not a dead end. Every non-tail
// state is a trivial singleton SCC; the tail is the sole nontrivial one.
func Line(n int) (sparse.View, sparse.ChoiceIndex, *core.StateSet) {
	if n < 1 {
		panic(fmt.Sprintf("builder: Line: n=%d must be >= 1", n))
	}
	rows := make([][]sparse.Edge, n)
	for i := 0; i < n-1; i++ {
		rows[i] = []sparse.Edge{edge(core.StateID(i+1), 1)}
	}
	rows[n-1] = []sparse.Edge{edge(core.StateID(n-1), 1)}
	return sparse.FromRows(rows), sparse.Identity(n), fullSubsystem(n)
}

// Star returns a deterministic model with hub state 0 choosing uniformly
// among n-1 leaves, and every leaf choosing its single choice straight
// back to the hub. The whole subsystem is one SCC/MEC.
func Star(n int) (sparse.View, sparse.ChoiceIndex, *core.StateSet) {
	if n < 2 {
		panic(fmt.Sprintf("builder: Star: n=%d must be >= 2", n))
	}
	rows := make([][]sparse.Edge, n)
	hub := make([]sparse.Edge, 0, n-1)
	w := 1.0 / float64(n-1)
	for leaf := 1; leaf < n; leaf++ {
		hub = append(hub, edge(core.StateID(leaf), w))
		rows[leaf] = []sparse.Edge{edge(0, 1)}
	}
	rows[0] = hub
	return sparse.FromRows(rows), sparse.Identity(n), fullSubsystem(n)
}

// Complete returns a deterministic complete digraph on n states: every
// state's single choice splits its mass uniformly over every other state.
// The whole subsystem is one SCC/MEC (n >= 2).
func Complete(n int) (sparse.View, sparse.ChoiceIndex, *core.StateSet) {
	if n < 2 {
		panic(fmt.Sprintf("builder: Complete: n=%d must be >= 2", n))
	}
	w := 1.0 / float64(n-1)
	rows := make([][]sparse.Edge, n)
	for i := 0; i < n; i++ {
		row := make([]sparse.Edge, 0, n-1)
		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			row = append(row, edge(core.StateID(j), w))
		}
		rows[i] = row
	}
	return sparse.FromRows(rows), sparse.Identity(n), fullSubsystem(n)
}

// Grid returns a deterministic rows*cols grid graph where each cell has a
// single choice splitting its mass uniformly over its orthogonal in-bounds
// neighbors. State (r, c) is indexed r*cols+c. The whole grid is strongly
// connected (every move is reversible), so it decomposes into one SCC/MEC.
func Grid(rows, cols int) (sparse.View, sparse.ChoiceIndex, *core.StateSet) {
	if rows < 1 || cols < 1 {
		panic(fmt.Sprintf("builder: Grid: rows=%d cols=%d must both be >= 1", rows, cols))
	}
	n := rows * cols
	id := func(r, c int) core.StateID { return core.StateID(r*cols + c) }

	edges := make([][]sparse.Edge, n)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			var neighbors []core.StateID
			if r > 0 {
				neighbors = append(neighbors, id(r-1, c))
			}
			if r < rows-1 {
				neighbors = append(neighbors, id(r+1, c))
			}
			if c > 0 {
				neighbors = append(neighbors, id(r, c-1))
			}
			if c < cols-1 {
				neighbors = append(neighbors, id(r, c+1))
			}
			if len(neighbors) == 0 {
				// A 1x1 grid has no orthogonal neighbor; self-loop keeps
				// the sole state a valid singleton MEC.
				edges[id(r, c)] = []sparse.Edge{edge(id(r, c), 1)}
				continue
			}
			row := make([]sparse.Edge, 0, len(neighbors))
			w := 1.0 / float64(len(neighbors))
			for _, t := range neighbors {
				row = append(row, edge(t, w))
			}
			edges[id(r, c)] = row
		}
	}
	return sparse.FromRows(edges), sparse.Identity(n), fullSubsystem(n)
}
