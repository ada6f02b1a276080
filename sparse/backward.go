package sparse

import "github.com/katalvlaran/mcdecomp/core"

// Backward is a read-only view over the predecessor rows of a target state:
// for state t, PredecessorRows returns every choice-row with a positive-
// weight edge into t. It is used only by callers outside the scc/mec core
// (e.g. zero/one precomputation); the decomposition engines themselves
// operate exclusively on the forward View.
type Backward interface {
	PredecessorRows(t core.StateID) []core.ChoiceID
}

type backward struct {
	rows map[core.StateID][]core.ChoiceID
}

// PredecessorRows returns the choice-rows with a positive-weight edge into t.
func (b *backward) PredecessorRows(t core.StateID) []core.ChoiceID { return b.rows[t] }

// BuildBackward precomputes a Backward view of view by scanning every row
// of idx once. The result is independent of further changes to view; since
// View is read-only for the lifetime of a decomposition call, this is safe
// to build once and reuse across multiple backward lookups.
func BuildBackward(view View, idx ChoiceIndex) Backward {
	b := &backward{rows: make(map[core.StateID][]core.ChoiceID)}
	n := idx.NumStates()
	for s := 0; s < n; s++ {
		lo, hi := idx.Range(core.StateID(s))
		for c := lo; c < hi; c++ {
			for _, e := range view.Row(c) {
				if !e.Weight.IsPositive() {
					continue
				}
				b.rows[e.Successor] = append(b.rows[e.Successor], c)
			}
		}
	}
	return b
}
