package taglines

import "math/rand/v2"

// Source yields an index in [0, n). *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	IntN(n int) int
}

// SourceFunc adapts a function to Source.
type SourceFunc func(n int) int

func (f SourceFunc) IntN(n int) int { return f(n) }

// FixedSource always returns the same index. Intended for tests.
type FixedSource int

func (f FixedSource) IntN(int) int { return int(f) }

// globalSource draws from the runtime-seeded math/rand/v2 generator. The
// generator is safe for concurrent use and no seed is shared between calls.
type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// Selector picks one tagline uniformly at random.
type Selector struct {
	src Source
}

// Option configures a Selector.
type Option func(*Selector)

// WithSource sets the randomness source. A nil source is ignored.
func WithSource(src Source) Option {
	return func(s *Selector) {
		if src != nil {
			s.src = src
		}
	}
}

// NewSelector returns a Selector backed by the global generator unless a
// source is supplied.
func NewSelector(opts ...Option) *Selector {
	s := &Selector{src: globalSource{}}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Select returns a random element of list, or "" when list is empty.
// The result is plain text and must be escaped before it is embedded in markup.
func (s *Selector) Select(list List) string {
	n := len(list)
	if n == 0 {
		return ""
	}
	if n == 1 {
		return list[0]
	}

	src := s.src
	if src == nil {
		src = globalSource{}
	}

	i := src.IntN(n)
	switch {
	case i < 0:
		i = 0
	case i >= n:
		i = n - 1
	}
	return list[i]
}

var defaultSelector = NewSelector()

// Select picks a tagline with the default selector.
func Select(list List) string {
	return defaultSelector.Select(list)
}
