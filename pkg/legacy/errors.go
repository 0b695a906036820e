package legacy

import "errors"

var (
	ErrNilDB       = errors.New("legacy: database is not configured")
	ErrEmptyDSN    = errors.New("legacy: dsn is required")
	ErrOpenStore   = errors.New("legacy: failed to open content store")
	ErrQueryPosts  = errors.New("legacy: failed to query posts")
	ErrInsertPost  = errors.New("legacy: failed to insert post")
	ErrInvalidPost = errors.New("legacy: invalid post")
	ErrSchedule    = errors.New("legacy: invalid rescan schedule")
)
