package core

// StateID identifies a vertex of the model: a nonnegative integer in [0, N)
// for a decomposition run over N states.
type StateID int

// ChoiceID identifies a row of the sparse transition matrix: a nonnegative
// integer in [0, M). For a nondeterministic model, the choice-rows of state
// s occupy [choiceIndex[s], choiceIndex[s+1)); for a deterministic model,
// M == N and the range for s is [s, s+1).
type ChoiceID int
