package core

import "iter"

// Decomposition is an ordered sequence of disjoint blocks covering a subset
// of [0, N): the output container for both SCC and MEC decomposition runs.
// Order between blocks carries no semantic meaning beyond the requirement
// that, for identical inputs, iteration order is deterministic.
//
// A Decomposition is built incrementally by the producing engine via Append
// and is treated as immutable by every caller once the engine returns it.
type Decomposition[B any] struct {
	blocks []B
}

// NewDecomposition returns an empty Decomposition with the given initial
// capacity hint.
func NewDecomposition[B any](capHint int) *Decomposition[B] {
	return &Decomposition[B]{blocks: make([]B, 0, capHint)}
}

// Append adds b as the next block in discovery order.
func (d *Decomposition[B]) Append(b B) { d.blocks = append(d.blocks, b) }

// Len returns the number of blocks.
func (d *Decomposition[B]) Len() int { return len(d.blocks) }

// At returns the i-th block in discovery order.
func (d *Decomposition[B]) At(i int) B { return d.blocks[i] }

// All returns the blocks as a plain slice, in discovery order. Callers must
// not mutate the returned slice.
func (d *Decomposition[B]) All() []B { return d.blocks }

// Blocks returns a forward iterator over the blocks, in discovery order.
func (d *Decomposition[B]) Blocks() iter.Seq[B] {
	return func(yield func(B) bool) {
		for _, b := range d.blocks {
			if !yield(b) {
				return
			}
		}
	}
}
