package scc

import (
	"fmt"

	"github.com/katalvlaran/mcdecomp/core"
	"github.com/katalvlaran/mcdecomp/sparse"
)

// frame is one explicit call-frame of the iterative Tarjan traversal: the
// state under examination, plus a resumable cursor over its choice-rows
// (c, row, ei) so the traversal can suspend mid-row and return to it later
// without losing its place.
type frame struct {
	s   core.StateID
	c   core.ChoiceID // current choice-row being scanned
	hi  core.ChoiceID // exclusive end of s's choice-row range
	row []sparse.Edge
	ei  int // cursor within row
}

// Engine runs iterative Tarjan SCC decomposition. All scratch state is
// sized once, at NewEngine, to the model's total state count N, and reused
// across repeated Decompose calls via a dirty list that resets only the
// states touched by the previous call.
//
// An Engine is not safe for concurrent use; each goroutine running
// decompositions concurrently should use its own Engine.
type Engine struct {
	n int

	index    []int32
	lowlink  []int32
	visited  []bool
	onStack  []bool
	selfLoop []bool
	canLeave []bool

	openPath []core.StateID // states in the currently open SCC path
	frames   []frame        // explicit recursion stack
	dirty    []core.StateID // states touched since the last reset

	indexCounter int32
}

// NewEngine returns an Engine with scratch capacity for n states.
func NewEngine(n int) *Engine {
	return &Engine{
		n:        n,
		index:    make([]int32, n),
		lowlink:  make([]int32, n),
		visited:  make([]bool, n),
		onStack:  make([]bool, n),
		selfLoop: make([]bool, n),
		canLeave: make([]bool, n),
		openPath: make([]core.StateID, 0, n),
		frames:   make([]frame, 0, n),
		dirty:    make([]core.StateID, 0, n),
	}
}

// Decompose runs Tarjan's algorithm over the subgraph induced by subsystem:
// state s has an edge to state t iff some choice-row in [idx.Range(s))
// has t as a successor with a positive weight and t is in subsystem. The
// returned Decomposition's blocks are in SCC-root discovery order; states
// are iterated from subsystem in ascending order, and a row's successors are
// iterated in the view's native order, so identical inputs produce
// bit-identical output.
func (e *Engine) Decompose(view sparse.View, idx sparse.ChoiceIndex, subsystem *core.StateSet, opts ...Option) (*core.Decomposition[*core.Block], error) {
	if idx.NumStates() != e.n {
		return nil, fmt.Errorf("scc: Decompose: choice index covers %d states, engine sized for %d: %w",
			idx.NumStates(), e.n, ErrSizeMismatch)
	}
	if subsystem.Cap() != e.n {
		return nil, fmt.Errorf("scc: Decompose: subsystem capacity %d, engine sized for %d: %w",
			subsystem.Cap(), e.n, ErrSubsystemCapacity)
	}

	o := newOptions(opts...)
	e.reset()
	out := core.NewDecomposition[*core.Block](0)

	subsystem.Each(func(s core.StateID) {
		if e.visited[s] {
			return
		}
		e.strongconnect(s, view, idx, subsystem, o, out)
	})

	return out, nil
}

// strongconnect runs one iterative Tarjan traversal rooted at start.
func (e *Engine) strongconnect(start core.StateID, view sparse.View, idx sparse.ChoiceIndex, subsystem *core.StateSet, o Options, out *core.Decomposition[*core.Block]) {
	e.push(start, idx)

	for len(e.frames) > 0 {
		top := &e.frames[len(e.frames)-1]

		if child, ok := e.advance(top, view, subsystem, o); ok {
			e.push(child, idx)
			continue
		}

		if e.lowlink[top.s] == e.index[top.s] {
			e.closeComponent(top.s, o, out)
		}

		closed := top.s
		closedLow := e.lowlink[closed]
		e.frames = e.frames[:len(e.frames)-1]
		if len(e.frames) == 0 {
			break
		}

		parent := &e.frames[len(e.frames)-1]
		if e.lowlink[parent.s] > closedLow {
			e.lowlink[parent.s] = closedLow
		}
		if o.BottomOnly && closedLow == e.index[closed] {
			e.canLeave[parent.s] = true
		}
	}
}

// advance scans top's remaining successors, restricted to subsystem. It
// updates top's lowlink/canLeave for every back-edge or already-closed
// cross-edge it consumes, and returns the first unvisited successor found
// (and true) so the caller can descend into it. It returns (0, false) once
// top's choice-rows are exhausted.
//
// A successor already visited but no longer onStack belongs to an SCC that
// closed earlier in this traversal — necessarily a different component from
// top's own, since top has not closed yet. Such an edge always leaves top's
// eventual SCC, so it is marked under BottomOnly the same as a tree-edge
// return from a child that closed its own SCC: a bottom SCC must have every successor of
// every member stay inside the block, cross-edges included.
func (e *Engine) advance(top *frame, view sparse.View, subsystem *core.StateSet, o Options) (core.StateID, bool) {
	for top.c < top.hi {
		if top.row == nil {
			top.row = view.Row(top.c)
		}
		for top.ei < len(top.row) {
			edge := top.row[top.ei]
			top.ei++

			if !edge.Weight.IsPositive() || !subsystem.Contains(edge.Successor) {
				continue
			}
			t := edge.Successor
			if t == top.s {
				e.selfLoop[t] = true
			}

			switch {
			case !e.visited[t]:
				return t, true
			case e.onStack[t]:
				if e.lowlink[top.s] > e.index[t] {
					e.lowlink[top.s] = e.index[t]
				}
			default:
				if o.BottomOnly {
					e.canLeave[top.s] = true
				}
			}
		}
		top.c++
		top.ei = 0
		top.row = nil
	}
	return 0, false
}

// push opens a new frame for s: assigns index/lowlink, marks it visited and
// onStack, and records it on both the open-path stack and the dirty list.
func (e *Engine) push(s core.StateID, idx sparse.ChoiceIndex) {
	e.indexCounter++
	e.index[s] = e.indexCounter
	e.lowlink[s] = e.indexCounter
	e.visited[s] = true
	e.onStack[s] = true
	e.openPath = append(e.openPath, s)
	e.dirty = append(e.dirty, s)

	lo, hi := idx.Range(s)
	e.frames = append(e.frames, frame{s: s, c: lo, hi: hi})
}

// closeComponent pops the open-path stack down to and including root,
// producing one SCC; it is appended to out unless DropTrivial or
// BottomOnly excludes it.
func (e *Engine) closeComponent(root core.StateID, o Options, out *core.Decomposition[*core.Block]) {
	i := len(e.openPath) - 1
	for e.openPath[i] != root {
		i--
		if i < 0 {
			panic("scc: internal invariant violated: open-path stack does not contain its own root")
		}
	}

	members := append([]core.StateID(nil), e.openPath[i:]...)
	e.openPath = e.openPath[:i]
	for _, m := range members {
		e.onStack[m] = false
	}

	if o.DropTrivial && len(members) == 1 && !e.selfLoop[members[0]] {
		return
	}
	if o.BottomOnly {
		for _, m := range members {
			if e.canLeave[m] {
				return
			}
		}
	}
	out.Append(core.BlockFromStates(e.n, members))
}

// reset clears every state touched since the previous Decompose call,
// in O(touched) rather than O(n).
func (e *Engine) reset() {
	for _, s := range e.dirty {
		e.index[s] = 0
		e.lowlink[s] = 0
		e.visited[s] = false
		e.onStack[s] = false
		e.selfLoop[s] = false
		e.canLeave[s] = false
	}
	e.dirty = e.dirty[:0]
	e.openPath = e.openPath[:0]
	e.frames = e.frames[:0]
	e.indexCounter = 0
}
