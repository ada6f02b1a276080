package core

// StateSet is a compact membership set over [0, N): a bit-vector with O(1)
// membership, O(1) insert/remove, and linear ascending iteration over set
// bits.
type StateSet struct {
	idx indexSet
}

// NewStateSet returns an empty StateSet with capacity for state ids in [0, n).
func NewStateSet(n int) *StateSet {
	return &StateSet{idx: newIndexSet(n)}
}

// Insert adds s to the set.
func (b *StateSet) Insert(s StateID) { b.idx.insert(int(s)) }

// Remove deletes s from the set; a no-op if s was absent.
func (b *StateSet) Remove(s StateID) { b.idx.remove(int(s)) }

// Contains reports whether s is a member.
func (b *StateSet) Contains(s StateID) bool { return b.idx.contains(int(s)) }

// Clear empties the set in place.
func (b *StateSet) Clear() { b.idx.clear() }

// IsEmpty reports whether the set has no members.
func (b *StateSet) IsEmpty() bool { return b.idx.isEmpty() }

// Len returns the number of members.
func (b *StateSet) Len() int { return b.idx.len() }

// Cap returns the capacity N the set was constructed with: the half-open
// range of valid members is [0, N).
func (b *StateSet) Cap() int { return b.idx.cap() }

// Each calls fn once per member, in ascending StateID order.
func (b *StateSet) Each(fn func(StateID)) {
	b.idx.each(func(i int) { fn(StateID(i)) })
}

// SetRange inserts every state in [lo, hi) in one pass.
func (b *StateSet) SetRange(lo, hi StateID) { b.idx.setRange(int(lo), int(hi)) }

// UnionWith inserts every member of other into b.
func (b *StateSet) UnionWith(other *StateSet) { b.idx.unionWith(&other.idx) }

// DifferenceWith removes every member of other from b.
func (b *StateSet) DifferenceWith(other *StateSet) { b.idx.differenceWith(&other.idx) }

// Clone returns an independent copy of b.
func (b *StateSet) Clone() *StateSet {
	return &StateSet{idx: b.idx.clone()}
}

// Members returns the set's members as a freshly allocated, ascending slice.
func (b *StateSet) Members() []StateID {
	out := make([]StateID, 0, b.Len())
	b.Each(func(s StateID) { out = append(out, s) })
	return out
}
