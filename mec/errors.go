package mec

import "errors"

// ErrSizeMismatch indicates that the choice index passed to Decompose covers
// a different number of states than the Engine was constructed for.
var ErrSizeMismatch = errors.New("mec: choice index size does not match engine capacity")

// ErrSubsystemCapacity indicates that the subsystem StateSet passed to
// Decompose was built with a capacity other than the engine's N.
var ErrSubsystemCapacity = errors.New("mec: subsystem capacity does not match engine capacity")
