package sparse

import "errors"

// Sentinel errors for the sparse package. Every error returned from a
// public constructor or validator wraps one of these via %w, so callers can
// match with errors.Is.
var (
	// ErrNotMonotonic indicates a choice-index slice is not monotonically
	// nondecreasing.
	ErrNotMonotonic = errors.New("sparse: choice index is not monotonically nondecreasing")

	// ErrNegativeWeight indicates a row contains a weight that reports
	// itself non-negative as false, surfaced only by the opt-in debug
	// validator (ValidateWeights), never by the engines on their hot path.
	ErrNegativeWeight = errors.New("sparse: negative edge weight")
)
