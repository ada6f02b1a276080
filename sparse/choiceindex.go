package sparse

import (
	"fmt"

	"github.com/katalvlaran/mcdecomp/core"
)

// ChoiceIndex maps a state to its half-open range of choice-rows: for state
// s, the range is [ChoiceIndex[s], ChoiceIndex[s+1]). Its length is always
// NumStates()+1.
type ChoiceIndex []core.ChoiceID

// Identity returns the choice index of a deterministic model over n states:
// each state s owns exactly row s, so Range(s) == (s, s+1).
func Identity(n int) ChoiceIndex {
	idx := make(ChoiceIndex, n+1)
	for i := 0; i <= n; i++ {
		idx[i] = core.ChoiceID(i)
	}
	return idx
}

// NewChoiceIndex validates bounds as a monotonically nondecreasing sequence
// and returns it as a ChoiceIndex. bounds must have length N+1 for an
// N-state model; bounds[0] is conventionally 0.
func NewChoiceIndex(bounds []core.ChoiceID) (ChoiceIndex, error) {
	for i := 1; i < len(bounds); i++ {
		if bounds[i] < bounds[i-1] {
			return nil, fmt.Errorf("sparse: NewChoiceIndex: bounds[%d]=%d < bounds[%d]=%d: %w",
				i, bounds[i], i-1, bounds[i-1], ErrNotMonotonic)
		}
	}
	out := make(ChoiceIndex, len(bounds))
	copy(out, bounds)
	return out, nil
}

// NumStates returns N, the number of states this index covers.
func (c ChoiceIndex) NumStates() int { return len(c) - 1 }

// NumChoices returns M, the total number of choice-rows.
func (c ChoiceIndex) NumChoices() int { return int(c[len(c)-1]) }

// Range returns the half-open choice-row range [lo, hi) owned by state s.
func (c ChoiceIndex) Range(s core.StateID) (lo, hi core.ChoiceID) {
	return c[s], c[s+1]
}
