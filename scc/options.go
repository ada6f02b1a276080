package scc

// Options configures one Decompose call.
type Options struct {
	// DropTrivial discards trivial SCCs: singletons {s} with no self-loop.
	DropTrivial bool

	// BottomOnly retains only bottom SCCs: components with no outgoing edge
	// to any state outside themselves.
	BottomOnly bool
}

// Option mutates an Options value. Use with Decompose.
type Option func(*Options)

// WithDropTrivial enables DropTrivial.
func WithDropTrivial() Option {
	return func(o *Options) { o.DropTrivial = true }
}

// WithBottomOnly enables BottomOnly.
func WithBottomOnly() Option {
	return func(o *Options) { o.BottomOnly = true }
}

func newOptions(opts ...Option) Options {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
