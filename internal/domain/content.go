package domain

import "time"

type PageStatus string

const (
	PageStatusDraft     PageStatus = "draft"
	PageStatusPublished PageStatus = "published"
	PageStatusArchived  PageStatus = "archived"
)

// Banner is a time-bounded promotional record. It leaves the live store once
// ExpireAt has passed.
type Banner struct {
	ID        int64      `db:"id" json:"id"`
	Title     string     `db:"title" json:"title"`
	Status    string     `db:"status" json:"status"`
	ImageURL  string     `db:"image_url" json:"image_url"`
	LinkURL   *string    `db:"link_url" json:"link_url,omitempty"`
	Content   *string    `db:"content" json:"content,omitempty"`
	Position  int        `db:"position" json:"position"`
	PublishAt *time.Time `db:"publish_at" json:"publish_at,omitempty"`
	ExpireAt  *time.Time `db:"expire_at" json:"expire_at,omitempty"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt time.Time  `db:"updated_at" json:"updated_at"`
}

type Page struct {
	ID        int64      `db:"id" json:"id"`
	Title     string     `db:"title" json:"title"`
	Slug      string     `db:"slug" json:"slug"`
	Status    PageStatus `db:"status" json:"status"`
	Content   *string    `db:"content" json:"content,omitempty"`
	Author    *string    `db:"author" json:"author,omitempty"`
	Category  *string    `db:"category" json:"category,omitempty"`
	Tags      []string   `db:"tags" json:"tags,omitempty"`
	PublishAt *time.Time `db:"publish_at" json:"publish_at,omitempty"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt time.Time  `db:"updated_at" json:"updated_at"`
}
