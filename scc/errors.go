package scc

import "errors"

// ErrSizeMismatch indicates that the choice index passed to Decompose covers
// a different number of states than the Engine was constructed for.
var ErrSizeMismatch = errors.New("scc: choice index size does not match engine capacity")

// ErrSubsystemCapacity indicates that the subsystem StateSet passed to
// Decompose was built with a capacity other than the engine's N, so some
// or all of its members could fall outside [0, N) without bounds checking
// catching it downstream.
var ErrSubsystemCapacity = errors.New("scc: subsystem capacity does not match engine capacity")
