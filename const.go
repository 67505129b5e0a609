package linex

import "sync"

// ConstPattern is a lazily-initialized, build-time-constant literal
// pattern. Go has no compile-time computation facility to precompute a
// failure table at build time the way e.g. a const-eval language could;
// a sync.Once-guarded static holder is the equivalent for correctness,
// though not for zero-cost. cmd/genliteral offers the zero-cost
// alternative: it emits the pattern bytes and failure table as
// package-level array literals ahead of time, for callers willing to run
// go:generate.
type ConstPattern struct {
	literal string
	once    sync.Once
	pattern *Pattern
}

// NewConstPattern wraps a string literal known at the call site (typically
// a package-level var initializer) for lazy, once-only compilation.
func NewConstPattern(literal string) *ConstPattern {
	return &ConstPattern{literal: literal}
}

// Get returns the compiled [Pattern], computing it on the first call.
func (c *ConstPattern) Get() *Pattern {
	c.once.Do(func() {
		c.pattern = CompileLiteral([]byte(c.literal))
	})
	return c.pattern
}
