package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/mcdecomp/core"
	"github.com/katalvlaran/mcdecomp/sparse"
)

// RandomSparse returns a deterministic-for-a-fixed-seed nondeterministic
// model over n states: each state owns a random number of choices in
// [1, maxChoices], and each choice is an Erdős–Rényi-like sample that
// includes every state (the owning state itself too) as a successor independently with
// probability p, falling back to a uniform self-loop when the sample is
// empty so every choice is a well-formed distribution.
//
// Matches the teacher's builder.RandomSparse in spirit: stable trial
// order (state asc, choice asc, successor asc) driven by a caller-owned
// *rand.Rand, so identical (n, maxChoices, p, seed) reproduce identical
// output.
func RandomSparse(n, maxChoices int, p float64, seed int64) (sparse.View, sparse.ChoiceIndex, *core.StateSet) {
	if n < 1 {
		panic(fmt.Sprintf("builder: RandomSparse: n=%d must be >= 1", n))
	}
	if maxChoices < 1 {
		panic(fmt.Sprintf("builder: RandomSparse: maxChoices=%d must be >= 1", maxChoices))
	}
	if p < 0 || p > 1 {
		panic(fmt.Sprintf("builder: RandomSparse: p=%.6f not in [0,1]", p))
	}

	rng := rand.New(rand.NewSource(seed))
	bounds := make([]core.ChoiceID, n+1)
	var rows [][]sparse.Edge

	for s := 0; s < n; s++ {
		numChoices := 1 + rng.Intn(maxChoices)
		for c := 0; c < numChoices; c++ {
			var successors []core.StateID
			for t := 0; t < n; t++ {
				if rng.Float64() < p {
					successors = append(successors, core.StateID(t))
				}
			}
			if len(successors) == 0 {
				successors = []core.StateID{core.StateID(s)}
			}
			w := 1.0 / float64(len(successors))
			row := make([]sparse.Edge, len(successors))
			for i, t := range successors {
				row[i] = edge(t, w)
			}
			rows = append(rows, row)
		}
		bounds[s+1] = bounds[s] + core.ChoiceID(numChoices)
	}

	idx, err := sparse.NewChoiceIndex(bounds)
	if err != nil {
		panic(err)
	}
	return sparse.FromRows(rows), idx, fullSubsystem(n)
}
