package cache

import "time"

type settings struct {
	ttl time.Duration
	now func() time.Time
}

// Option configures an LRU.
type Option func(*settings)

// WithTTL expires entries d after they were last written.
// A non-positive d disables expiry.
func WithTTL(d time.Duration) Option {
	return func(s *settings) { s.ttl = d }
}

// WithClock sets the time source used for expiry.
func WithClock(now func() time.Time) Option {
	if now == nil {
		panic("WithClock: nil clock")
	}
	return func(s *settings) { s.now = now }
}
