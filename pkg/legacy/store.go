package legacy

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS posts (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	title       TEXT    NOT NULL DEFAULT '',
	type        TEXT    NOT NULL DEFAULT 'post',
	status      TEXT    NOT NULL DEFAULT 'draft',
	content     TEXT    NOT NULL DEFAULT '',
	modified_at INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_posts_modified ON posts(modified_at);
`

// Open opens the SQLite content store at dsn and ensures the posts table
// exists. The caller owns the returned handle.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	if strings.TrimSpace(dsn) == "" {
		return nil, ErrEmptyDSN
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, errors.Join(ErrOpenStore, err)
	}
	// A single connection keeps ":memory:" databases shared across queries.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, errors.Join(ErrOpenStore, err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, errors.Join(ErrOpenStore, fmt.Errorf("initializing schema: %w", err))
	}
	return db, nil
}

// NewPost describes a post to insert into the content store.
type NewPost struct {
	Title    string
	Type     string
	Status   string
	Content  string
	Modified time.Time
}

// InsertPost stores p and returns its id.
func InsertPost(ctx context.Context, db *sql.DB, p NewPost) (int64, error) {
	if db == nil {
		return 0, ErrNilDB
	}
	if p.Status == "" {
		return 0, fmt.Errorf("%w: status is required", ErrInvalidPost)
	}
	if p.Type == "" {
		p.Type = "post"
	}
	if p.Modified.IsZero() {
		p.Modified = time.Now()
	}

	res, err := db.ExecContext(ctx,
		`INSERT INTO posts (title, type, status, content, modified_at) VALUES (?, ?, ?, ?, ?)`,
		p.Title, p.Type, p.Status, p.Content, p.Modified.UTC().Unix(),
	)
	if err != nil {
		return 0, errors.Join(ErrInsertPost, err)
	}
	return res.LastInsertId()
}
