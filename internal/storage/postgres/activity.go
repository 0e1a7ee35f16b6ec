package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"cms_archiver/internal/domain"
)

type ActivityStore struct {
	db *sqlx.DB
}

func NewActivityStore(db *sqlx.DB) *ActivityStore {
	return &ActivityStore{db: db}
}

func (s *ActivityStore) Log(ctx context.Context, entry domain.Activity) error {
	query := `
		INSERT INTO activity_logs (
			event_id, actor, action, content_kind, title, content_id, outcome, occurred_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		)
		ON CONFLICT (event_id) DO NOTHING`

	_, err := s.db.ExecContext(ctx, query,
		entry.EventID,
		entry.Actor,
		entry.Action,
		entry.ContentKind,
		entry.Title,
		entry.ContentID,
		entry.Outcome,
		entry.OccurredAt,
	)
	return err
}
