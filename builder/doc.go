// Package builder provides deterministic fixture constructors for the
// scc and mec engine test suites and examples: each constructor returns a
// ready-to-use (sparse.View, sparse.ChoiceIndex, core.StateSet) triple, the
// same shape the engines' Decompose methods consume.
//
// The named scenario constructors (TwoCycles, LineGraph, LeakyMDP,
// ForcedExit, DeadEnd, BottomFilterDemo) realize spec scenarios S1–S6
// directly, so engine tests assert against a shared fixture instead of
// re-deriving the same rows in every test file — mirroring the teacher's
// own shared-fixture test helpers.
package builder
