package mec

import (
	"context"
	"fmt"

	"github.com/katalvlaran/mcdecomp/core"
	"github.com/katalvlaran/mcdecomp/scc"
	"github.com/katalvlaran/mcdecomp/sparse"
)

// Engine runs the outer MEC fixpoint: it drives a nested scc.Engine over a
// shrinking worklist of candidate blocks, pruning each resulting SCC of
// states that cannot avoid leaking a successor outside it, until every
// surviving candidate stabilizes.
//
// All engine-local scratch (the nested scc.Engine and two ping-pong
// StateSets used by the inner prune) is sized once, at NewEngine, to the
// model's state count N, and reused across both outer passes and repeated
// Decompose calls.
//
// An Engine is not safe for concurrent use; each goroutine running
// decompositions concurrently should use its own Engine.
type Engine struct {
	n   int
	scc *scc.Engine

	toCheckA *core.StateSet
	toCheckB *core.StateSet
}

// NewEngine returns an Engine with scratch capacity for n states.
func NewEngine(n int) *Engine {
	return &Engine{
		n:        n,
		scc:      scc.NewEngine(n),
		toCheckA: core.NewStateSet(n),
		toCheckB: core.NewStateSet(n),
	}
}

// Decompose produces a Decomposition of the maximal end components
// contained in subsystem. States not in any MEC are absent from the
// output. See DecomposeContext for a cancellable variant.
func (e *Engine) Decompose(view sparse.View, idx sparse.ChoiceIndex, subsystem *core.StateSet) (*core.Decomposition[*MaximalEndComponent], error) {
	return e.DecomposeContext(context.Background(), view, idx, subsystem)
}

// DecomposeContext is Decompose with a cancellation token, checked once per
// outer fixpoint pass (never mid-pass, so no partially-pruned block is ever
// exposed). On cancellation it returns ctx.Err() and a nil Decomposition.
func (e *Engine) DecomposeContext(ctx context.Context, view sparse.View, idx sparse.ChoiceIndex, subsystem *core.StateSet) (*core.Decomposition[*MaximalEndComponent], error) {
	if idx.NumStates() != e.n {
		return nil, fmt.Errorf("mec: Decompose: choice index covers %d states, engine sized for %d: %w",
			idx.NumStates(), e.n, ErrSizeMismatch)
	}
	if subsystem.Cap() != e.n {
		return nil, fmt.Errorf("mec: Decompose: subsystem capacity %d, engine sized for %d: %w",
			subsystem.Cap(), e.n, ErrSubsystemCapacity)
	}

	out := core.NewDecomposition[*MaximalEndComponent](0)
	if subsystem.IsEmpty() {
		return out, nil
	}

	seed := core.NewBlock(e.n)
	seed.UnionWith(subsystem)
	queue := []*core.Block{seed}

	for i := 0; i < len(queue); i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		k := queue[i]
		// The nested SCC pass sees only the choice rows that stay inside k,
		// so a confirmed block is strongly connected under exactly the
		// choices materialize retains.
		staying := make([][]sparse.Edge, idx.NumChoices())
		k.Each(func(s core.StateID) {
			lo, hi := idx.Range(s)
			for c := lo; c < hi; c++ {
				if row := view.Row(c); rowStaysIn(row, &k.StateSet) {
					staying[c] = row
				}
			}
		})
		sccs, err := e.scc.Decompose(sparse.FromRows(staying), idx, &k.StateSet)
		if err != nil {
			return nil, err
		}

		changed := sccs.Len() > 1
		survivors := make([]*core.Block, 0, sccs.Len())
		for j := 0; j < sccs.Len(); j++ {
			block := sccs.At(j)
			if e.innerPrune(view, idx, block) {
				changed = true
			}
			if !block.IsEmpty() {
				survivors = append(survivors, block)
			}
		}

		if changed {
			queue = append(queue, survivors...)
			continue
		}

		// k == 1 SCC, unpruned: confirmed MEC.
		if len(survivors) == 1 {
			out.Append(e.materialize(view, idx, survivors[0]))
		}
	}

	return out, nil
}

// innerPrune repeatedly removes, from block, every state all of whose
// choices leak a successor outside block, re-checking only the states
// whose removed successor they depended on. It reports whether it removed
// anything.
func (e *Engine) innerPrune(view sparse.View, idx sparse.ChoiceIndex, block *core.Block) bool {
	toCheck := e.toCheckA
	toRemove := e.toCheckB
	toCheck.Clear()
	toCheck.UnionWith(&block.StateSet)

	anyRemoved := false
	for !toCheck.IsEmpty() {
		toRemove.Clear()
		toCheck.Each(func(s core.StateID) {
			if e.allChoicesLeak(view, idx, s, block) {
				toRemove.Insert(s)
			}
		})
		if toRemove.IsEmpty() {
			break
		}

		anyRemoved = true
		block.Erase(toRemove)

		toCheck.Clear()
		block.Each(func(s core.StateID) {
			if e.hasSuccessorIn(view, idx, s, toRemove) {
				toCheck.Insert(s)
			}
		})
	}
	return anyRemoved
}

// allChoicesLeak reports whether every choice row of s has at least one
// positive-weight successor outside block. A state with no choice rows
// leaks vacuously (there is no choice that stays inside).
func (e *Engine) allChoicesLeak(view sparse.View, idx sparse.ChoiceIndex, s core.StateID, block *core.Block) bool {
	lo, hi := idx.Range(s)
	for c := lo; c < hi; c++ {
		if rowStaysIn(view.Row(c), &block.StateSet) {
			return false
		}
	}
	return true
}

// hasSuccessorIn reports whether any choice row of s has a positive-weight
// successor in targets.
func (e *Engine) hasSuccessorIn(view sparse.View, idx sparse.ChoiceIndex, s core.StateID, targets *core.StateSet) bool {
	lo, hi := idx.Range(s)
	for c := lo; c < hi; c++ {
		for _, edge := range view.Row(c) {
			if edge.Weight.IsPositive() && targets.Contains(edge.Successor) {
				return true
			}
		}
	}
	return false
}

// rowStaysIn reports whether every positive-weight successor of row lies
// in block.
func rowStaysIn(row []sparse.Edge, block *core.StateSet) bool {
	for _, edge := range row {
		if edge.Weight.IsPositive() && !block.Contains(edge.Successor) {
			return false
		}
	}
	return true
}

// materialize builds the final MaximalEndComponent for a stabilized block:
// for each member state, retain exactly the choices whose every successor
// lies in block.
func (e *Engine) materialize(view sparse.View, idx sparse.ChoiceIndex, block *core.Block) *MaximalEndComponent {
	comp := newComponent()
	m := idx.NumChoices()
	block.Each(func(s core.StateID) {
		lo, hi := idx.Range(s)
		cs := core.NewChoiceSet(m)
		for c := lo; c < hi; c++ {
			if rowStaysIn(view.Row(c), &block.StateSet) {
				cs.Insert(c)
			}
		}
		comp.AddState(s, cs)
	})
	return comp
}
