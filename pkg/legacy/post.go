package legacy

import "time"

// Post statuses that are scanned for legacy blocks.
const (
	StatusPublish = "publish"
	StatusDraft   = "draft"
	StatusPending = "pending"
	StatusPrivate = "private"
)

// Post is a content item that still contains a legacy block.
type Post struct {
	ID       int64     `json:"id" yaml:"id"`
	Title    string    `json:"title" yaml:"title"`
	Type     string    `json:"type" yaml:"type"`
	Status   string    `json:"status" yaml:"status"`
	Modified time.Time `json:"modified" yaml:"modified"`
}

// DisplayTitle returns the title or "(no title)" when it is blank.
func (p Post) DisplayTitle() string {
	if p.Title == "" {
		return "(no title)"
	}
	return p.Title
}

// Published reports whether the post is publicly visible.
func (p Post) Published() bool {
	return p.Status == StatusPublish
}
