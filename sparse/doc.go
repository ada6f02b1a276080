// Package sparse defines the read-only views the scc and mec engines consume:
// a forward, row-indexed view over a sparse transition matrix (View), the
// choice-index that maps a state to its half-open range of choice-rows
// (ChoiceIndex), and the one-method weight trait (Weight) the engines use to
// test edge existence.
//
// Nothing in this package mutates its inputs, and nothing here performs
// arithmetic on weights — only the positivity comparison the decomposition
// engines require. A derived backward view (predecessors of a target state) is
// provided for callers outside the scc/mec core; the engines themselves
// never use it.
package sparse
