// Package core defines the index types and set primitives shared by the
// scc and mec engines: StateID/ChoiceID, the StateSet/ChoiceSet bit-vectors,
// Block, and the generic Decomposition container.
//
// These are intentionally small and allocation-frugal: every bit-vector is
// sized once, at construction, to the total state or choice count, and reused
// by callers across repeated decomposition passes instead of being
// reallocated per pass.
package core
