package core

// ChoiceSet is a compact membership set over [0, M), the choice-id space.
// It reuses the same bit-vector machinery as StateSet (see bitset.go) and
// backs the per-state retained-choice sets of a MaximalEndComponent (C8).
type ChoiceSet struct {
	idx indexSet
}

// NewChoiceSet returns an empty ChoiceSet with capacity for choice ids in [0, m).
func NewChoiceSet(m int) *ChoiceSet {
	return &ChoiceSet{idx: newIndexSet(m)}
}

// Insert adds c to the set.
func (b *ChoiceSet) Insert(c ChoiceID) { b.idx.insert(int(c)) }

// Contains reports whether c is a member.
func (b *ChoiceSet) Contains(c ChoiceID) bool { return b.idx.contains(int(c)) }

// Len returns the number of members.
func (b *ChoiceSet) Len() int { return b.idx.len() }

// IsEmpty reports whether the set has no members.
func (b *ChoiceSet) IsEmpty() bool { return b.idx.isEmpty() }

// Each calls fn once per member, in ascending ChoiceID order.
func (b *ChoiceSet) Each(fn func(ChoiceID)) {
	b.idx.each(func(i int) { fn(ChoiceID(i)) })
}

// Members returns the set's members as a freshly allocated, ascending slice.
func (b *ChoiceSet) Members() []ChoiceID {
	out := make([]ChoiceID, 0, b.Len())
	b.Each(func(c ChoiceID) { out = append(out, c) })
	return out
}
