package ratelimiter

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrymomot/tagline/pkg/cache"
)

// DefaultMaxKeys bounds the number of tracked clients.
const DefaultMaxKeys = 10_000

var (
	ErrInvalidConfig     = errors.New("ratelimiter: invalid config")
	ErrInvalidTokenCount = errors.New("ratelimiter: token count must be positive")
)

type state struct {
	tokens     int
	lastRefill time.Time
}

// Bucket is an in-memory token bucket limiter keyed by client.
// Idle buckets are forgotten once they would be full again, and the least
// recently seen clients are dropped beyond the key limit.
type Bucket struct {
	cfg     Config
	now     func() time.Time
	mu      sync.Mutex
	buckets *cache.LRU[string, state]
}

// Option configures a Bucket.
type Option func(*options)

type options struct {
	now     func() time.Time
	maxKeys int
}

// WithClock sets the time source.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

// WithMaxKeys overrides DefaultMaxKeys. Non-positive values are ignored.
func WithMaxKeys(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxKeys = n
		}
	}
}

// NewBucket creates a token bucket limiter.
func NewBucket(cfg Config, opts ...Option) (*Bucket, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	o := options{now: time.Now, maxKeys: DefaultMaxKeys}
	for _, opt := range opts {
		opt(&o)
	}

	return &Bucket{
		cfg: cfg,
		now: o.now,
		buckets: cache.New[string, state](o.maxKeys,
			cache.WithTTL(cfg.fillTime()),
			cache.WithClock(o.now),
		),
	}, nil
}

// Allow consumes one token for key.
func (b *Bucket) Allow(ctx context.Context, key string) (Result, error) {
	return b.AllowN(ctx, key, 1)
}

// AllowN consumes n tokens for key. A denied request consumes nothing.
func (b *Bucket) AllowN(ctx context.Context, key string, n int) (Result, error) {
	if n <= 0 {
		return Result{}, fmt.Errorf("%w: got %d", ErrInvalidTokenCount, n)
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	now := b.now()
	s, ok := b.buckets.Get(key)
	if !ok {
		s = state{tokens: b.cfg.Capacity, lastRefill: now}
	}

	if elapsed := now.Sub(s.lastRefill); elapsed >= b.cfg.RefillInterval {
		intervals := int(elapsed / b.cfg.RefillInterval)
		s.tokens = min(b.cfg.Capacity, s.tokens+intervals*b.cfg.RefillRate)
		s.lastRefill = s.lastRefill.Add(time.Duration(intervals) * b.cfg.RefillInterval)
	}

	res := Result{
		Limit:     b.cfg.Capacity,
		Remaining: s.tokens - n,
		ResetAt:   s.lastRefill.Add(b.cfg.RefillInterval),
	}
	if res.Allowed() {
		s.tokens -= n
	}
	b.buckets.Put(key, s)
	return res, nil
}

// Reset forgets the state of key.
func (b *Bucket) Reset(key string) {
	b.buckets.Remove(key)
}

func (c Config) validate() error {
	if c.Capacity <= 0 {
		return fmt.Errorf("%w: capacity must be positive, got %d", ErrInvalidConfig, c.Capacity)
	}
	if c.RefillRate <= 0 {
		return fmt.Errorf("%w: refill rate must be positive, got %d", ErrInvalidConfig, c.RefillRate)
	}
	if c.RefillInterval <= 0 {
		return fmt.Errorf("%w: refill interval must be positive, got %v", ErrInvalidConfig, c.RefillInterval)
	}
	return nil
}
