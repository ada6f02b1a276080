package sparse

import (
	"fmt"

	"github.com/katalvlaran/mcdecomp/core"
)

// ValidateWeights walks every row of the model once and returns
// ErrNegativeWeight at the first edge whose Weight both implements the
// optional nonNegativeWeight extension and reports itself negative.
//
// This is an opt-in debug check: the scc and mec engines only ever need a
// positivity comparison against zero and never call this on their own hot
// path. Weight non-negativity is assumed by the core, not verified by it;
// this exists for callers who want to catch a malformed model early.
func ValidateWeights(view View, idx ChoiceIndex) error {
	for c := core.ChoiceID(0); c < core.ChoiceID(idx.NumChoices()); c++ {
		for _, e := range view.Row(c) {
			nn, ok := e.Weight.(nonNegativeWeight)
			if ok && !nn.IsNonNegative() {
				return fmt.Errorf("sparse: ValidateWeights: row %d, successor %d: %w", c, e.Successor, ErrNegativeWeight)
			}
		}
	}
	return nil
}
