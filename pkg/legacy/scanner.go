package legacy

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"slices"
	"time"

	"github.com/dmitrymomot/tagline/pkg/cache"
	"github.com/dmitrymomot/tagline/pkg/logger"
)

const (
	// DefaultCacheTTL is how long a scan result is reused.
	DefaultCacheTTL = time.Hour
	// MaxPosts caps the number of posts returned by a scan.
	MaxPosts = 20

	cacheKey = "legacy_block_posts"
)

const findPostsQuery = `
SELECT id, title, type, status, modified_at
FROM posts
WHERE content LIKE '%' || ? || '%'
  AND status IN (?, ?, ?, ?)
ORDER BY modified_at DESC, id DESC
LIMIT ?`

// Scanner finds posts that still contain legacy blocks.
type Scanner struct {
	db    *sql.DB
	cache *cache.LRU[string, []Post]
	log   *slog.Logger
}

type scannerConfig struct {
	ttl   time.Duration
	clock func() time.Time
	log   *slog.Logger
}

// ScannerOption configures a Scanner.
type ScannerOption func(*scannerConfig)

// WithCacheTTL overrides DefaultCacheTTL. Zero disables expiry.
func WithCacheTTL(d time.Duration) ScannerOption {
	return func(c *scannerConfig) { c.ttl = d }
}

// WithClock sets the time source of the result cache.
func WithClock(now func() time.Time) ScannerOption {
	return func(c *scannerConfig) {
		if now != nil {
			c.clock = now
		}
	}
}

// WithLogger sets the scanner logger.
func WithLogger(l *slog.Logger) ScannerOption {
	return func(c *scannerConfig) {
		if l != nil {
			c.log = l
		}
	}
}

// NewScanner creates a Scanner over db.
func NewScanner(db *sql.DB, opts ...ScannerOption) *Scanner {
	cfg := scannerConfig{
		ttl:   DefaultCacheTTL,
		clock: time.Now,
		log:   logger.Discard(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Scanner{
		db:    db,
		cache: cache.New[string, []Post](1, cache.WithTTL(cfg.ttl), cache.WithClock(cfg.clock)),
		log:   cfg.log.With(logger.Component("legacy_scanner")),
	}
}

// FindPosts returns up to MaxPosts posts containing a legacy block,
// most recently modified first.
func (s *Scanner) FindPosts(ctx context.Context) ([]Post, error) {
	if s == nil || s.db == nil {
		return nil, ErrNilDB
	}
	if posts, ok := s.cache.Get(cacheKey); ok {
		return clonePosts(posts), nil
	}

	start := time.Now()
	rows, err := s.db.QueryContext(ctx, findPostsQuery,
		BlockMarker,
		StatusPublish, StatusDraft, StatusPending, StatusPrivate,
		MaxPosts,
	)
	if err != nil {
		return nil, errors.Join(ErrQueryPosts, err)
	}
	defer rows.Close()

	posts := make([]Post, 0)
	for rows.Next() {
		var (
			p        Post
			modified int64
		)
		if err := rows.Scan(&p.ID, &p.Title, &p.Type, &p.Status, &modified); err != nil {
			return nil, errors.Join(ErrQueryPosts, err)
		}
		p.Modified = time.Unix(modified, 0).UTC()
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Join(ErrQueryPosts, err)
	}

	s.cache.Put(cacheKey, posts)
	s.log.DebugContext(ctx, "legacy posts scanned",
		slog.Int("count", len(posts)),
		logger.Duration(time.Since(start)),
	)
	return clonePosts(posts), nil
}

// HasLegacyBlocks reports whether any scanned post contains a legacy block.
func (s *Scanner) HasLegacyBlocks(ctx context.Context) (bool, error) {
	posts, err := s.FindPosts(ctx)
	if err != nil {
		return false, err
	}
	return len(posts) > 0, nil
}

// Invalidate drops the cached scan result.
func (s *Scanner) Invalidate() {
	s.cache.Remove(cacheKey)
}

// Ping checks that the content store is reachable.
func (s *Scanner) Ping(ctx context.Context) error {
	if s == nil || s.db == nil {
		return ErrNilDB
	}
	return s.db.PingContext(ctx)
}

func clonePosts(posts []Post) []Post {
	return slices.Clone(posts)
}
