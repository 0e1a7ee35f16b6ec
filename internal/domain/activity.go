package domain

import "time"

const (
	ActionArchive = "archive"
	ActorSystem   = "system"
)

// Activity is one audit entry emitted after a transfer.
type Activity struct {
	EventID     string    `db:"event_id" json:"event_id"`
	Actor       string    `db:"actor" json:"actor"`
	Action      string    `db:"action" json:"action"`
	ContentKind string    `db:"content_kind" json:"content_kind"`
	Title       string    `db:"title" json:"title"`
	ContentID   int64     `db:"content_id" json:"content_id"`
	Outcome     string    `db:"outcome" json:"outcome"`
	OccurredAt  time.Time `db:"occurred_at" json:"occurred_at"`
}
