package domain

import "time"

// ArchiveReason records why a record left its live store.
type ArchiveReason string

const (
	ReasonExpired ArchiveReason = "Expired"
	ReasonDeleted ArchiveReason = "Deleted"
)

// ArchivedBanner is the immutable copy of a Banner. Every optional field of the
// source is resolved to a concrete value.
type ArchivedBanner struct {
	ID            int64         `db:"id" json:"id"`
	OriginalID    int64         `db:"original_id" json:"original_id"`
	Title         string        `db:"title" json:"title"`
	Status        string        `db:"status" json:"status"`
	ImageURL      string        `db:"image_url" json:"image_url"`
	LinkURL       string        `db:"link_url" json:"link_url"`
	Content       string        `db:"content" json:"content"`
	Position      int           `db:"position" json:"position"`
	PublishAt     time.Time     `db:"publish_at" json:"publish_at"`
	ExpireAt      time.Time     `db:"expire_at" json:"expire_at"`
	CreatedAt     time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time     `db:"updated_at" json:"updated_at"`
	ArchiveReason ArchiveReason `db:"archive_reason" json:"archive_reason"`
	ArchivedAt    time.Time     `db:"archived_at" json:"archived_at"`
}

type ArchivedPage struct {
	ID            int64         `db:"id" json:"id"`
	OriginalID    int64         `db:"original_id" json:"original_id"`
	Title         string        `db:"title" json:"title"`
	Slug          string        `db:"slug" json:"slug"`
	Status        PageStatus    `db:"status" json:"status"`
	Content       string        `db:"content" json:"content"`
	Author        string        `db:"author" json:"author"`
	Category      string        `db:"category" json:"category"`
	Tags          []string      `db:"tags" json:"tags"`
	PublishAt     time.Time     `db:"publish_at" json:"publish_at"`
	CreatedAt     time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time     `db:"updated_at" json:"updated_at"`
	ArchiveReason ArchiveReason `db:"archive_reason" json:"archive_reason"`
	ArchivedAt    time.Time     `db:"archived_at" json:"archived_at"`
}
