package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"cms_archiver/internal/domain"
)

// SweepStateStore keeps one bookkeeping row per swept kind.
type SweepStateStore struct {
	db *sqlx.DB
}

func NewSweepStateStore(db *sqlx.DB) *SweepStateStore {
	return &SweepStateStore{db: db}
}

// Get returns domain.ErrNotFound for a kind that has never been swept.
func (s *SweepStateStore) Get(ctx context.Context, kind string) (*domain.SweepState, error) {
	query := `
		SELECT id, kind, last_swept_at, last_archived, total_archived
		FROM sweep_state
		WHERE kind = $1`

	var state domain.SweepState
	err := s.db.GetContext(ctx, &state, query, kind)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &state, nil
}

// Record notes a finished sweep. The running total is incremented by the
// database so concurrent scanners cannot lose counts.
func (s *SweepStateStore) Record(ctx context.Context, kind string, sweptAt time.Time, archived int64) error {
	query := `
		INSERT INTO sweep_state (kind, last_swept_at, last_archived, total_archived)
		VALUES ($1, $2, $3, $3)
		ON CONFLICT (kind) DO UPDATE SET
			last_swept_at = EXCLUDED.last_swept_at,
			last_archived = EXCLUDED.last_archived,
			total_archived = sweep_state.total_archived + EXCLUDED.last_archived`

	_, err := s.db.ExecContext(ctx, query, kind, sweptAt, archived)
	return err
}
