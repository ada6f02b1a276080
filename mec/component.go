package mec

import (
	"iter"

	"github.com/katalvlaran/mcdecomp/core"
)

// MaximalEndComponent maps each of its member states to the set of
// choices retained at that state: every successor of a retained choice
// lies inside the component's state set, and the induced subgraph over
// retained choices is strongly connected. The set of states equals the
// union of keys by construction — AddState is the only way to add a
// state, and it always carries a nonempty choice set.
type MaximalEndComponent struct {
	choices map[core.StateID]*core.ChoiceSet
}

// newComponent returns an empty MaximalEndComponent.
func newComponent() *MaximalEndComponent {
	return &MaximalEndComponent{choices: make(map[core.StateID]*core.ChoiceSet)}
}

// AddState records s as a member with the given retained choice set.
func (c *MaximalEndComponent) AddState(s core.StateID, choices *core.ChoiceSet) {
	c.choices[s] = choices
}

// ContainsState reports whether s is a member of the component.
func (c *MaximalEndComponent) ContainsState(s core.StateID) bool {
	_, ok := c.choices[s]
	return ok
}

// Choices returns the retained choice set at s, or nil if s is not a
// member.
func (c *MaximalEndComponent) Choices(s core.StateID) *core.ChoiceSet {
	return c.choices[s]
}

// States returns a forward iterator over the component's member states.
// Iteration follows Go map order and is not deterministic across calls;
// sort the yielded states for a canonical order.
func (c *MaximalEndComponent) States() iter.Seq[core.StateID] {
	return func(yield func(core.StateID) bool) {
		for s := range c.choices {
			if !yield(s) {
				return
			}
		}
	}
}

// ChoiceCount returns the total number of retained choices across every
// member state.
func (c *MaximalEndComponent) ChoiceCount() int {
	n := 0
	for _, cs := range c.choices {
		n += cs.Len()
	}
	return n
}

// Size returns the number of member states.
func (c *MaximalEndComponent) Size() int { return len(c.choices) }
