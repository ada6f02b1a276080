package sparse

import "github.com/katalvlaran/mcdecomp/core"

// Edge is one entry of a choice-row: a successor state and its weight.
type Edge struct {
	Successor core.StateID
	Weight    Weight
}

// View is a read-only, row-indexed forward view over a sparse transition
// matrix. Row returns the (successor, weight) pairs of choice-row r in the
// view's native order; iteration over a row is restartable and cheap, and
// successors within a row may repeat and need not be sorted.
type View interface {
	Row(r core.ChoiceID) []Edge
}

// rowsView is the simplest possible View: a flat slice of precomputed rows.
type rowsView struct {
	rows [][]Edge
}

// Row returns the edges of choice-row r.
func (v *rowsView) Row(r core.ChoiceID) []Edge { return v.rows[r] }

// FromRows builds a View directly from one edge slice per choice-row, the
// natural shape for a deterministic model (pair with Identity) or for any
// model whose rows are already materialized in memory.
func FromRows(rows [][]Edge) View {
	return &rowsView{rows: rows}
}
