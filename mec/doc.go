// Package mec implements maximal end component decomposition: the
// probabilistic analogue of SCC decomposition (package scc), where a
// component is a set of states together with a set of enabled choices such
// that, under those choices, the set is strongly connected and closed
// under the transition relation.
//
// What:
//
//   - Engine drives an outer fixpoint: run scc.Engine over a candidate
//     block with no options, counting only the choices whose every
//     successor stays inside the block, then prune, from each resulting SCC, every
//     state whose every remaining choice leaks a successor outside the
//     SCC, repeating the prune until it stabilizes. A block that split or
//     shrank is re-enqueued as new candidates; a block that did neither is
//     a confirmed MEC.
//   - MaximalEndComponent is the per-block output: a map from state to the
//     set of choices retained at that state (every successor of a
//     retained choice lies inside the block).
//
// Why:
//
//   - A plain SCC treats every outgoing edge as forced; a nondeterministic
//     model lets a state avoid a choice that would leak out of its
//     component. The fixpoint keeps stripping states that cannot avoid
//     leaking until every surviving state has a fully-contained choice,
//     at which point the remaining block is strongly connected under
//     those choices by construction.
//
// Complexity:
//
//   - Decompose: O(N·M) worst case (each of up to N outer passes runs an
//     O(V+E) SCC pass over a shrinking candidate), near-linear in
//     practice. Memory O(N+M) for engine-local scratch, sized once at
//     NewEngine and reused across outer passes and nested scc.Engine
//     calls via the same reset-not-reallocate discipline scc uses.
//
// Errors:
//
//   - ErrSizeMismatch   choice index's state count does not match the
//     engine's configured size.
//   - whatever scc.Engine.Decompose returns from a nested call.
package mec
