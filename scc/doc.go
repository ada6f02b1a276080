// Package scc implements iterative Tarjan strongly connected component
// decomposition over a sparse, integer-indexed transition structure
// (sparse.View + sparse.ChoiceIndex), restricted to a caller-supplied
// subsystem of states.
//
// What:
//
//   - Engine runs Tarjan's algorithm with two explicit parallel stacks (a
//     call-frame stack and an open-SCC-path stack) instead of host
//     recursion, so it never overflows the call stack regardless of N.
//   - DropTrivial and BottomOnly options respectively discard singleton
//     components with no self-loop, and retain only components with no
//     outgoing edge to a state outside themselves.
//
// Why:
//
//   - This is the graph-structural core a model checker's MEC fixpoint
//     (package mec) drives repeatedly over shrinking candidate blocks; an
//     explicit-stack implementation lets one Engine be reused, via reset,
//     across thousands of such calls without reallocating scratch state.
//
// Complexity:
//
//   - Decompose: Time O(V+E) over the subsystem's induced subgraph, Memory
//     O(V) for the engine's scratch arrays (sized once, at NewEngine).
//
// Errors:
//
//   - ErrSizeMismatch   choice index's state count does not match the
//     engine's configured size.
//   - a panic           internal stack invariant violated (a programming
//     bug, not a recoverable condition).
package scc
