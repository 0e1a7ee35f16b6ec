package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"cms_archiver/internal/domain"
)

const bannerColumns = `id, title, status, image_url, link_url, content, position,
	publish_at, expire_at, created_at, updated_at`

type BannerStore struct {
	db *sqlx.DB
}

func NewBannerStore(db *sqlx.DB) *BannerStore {
	return &BannerStore{db: db}
}

func (s *BannerStore) Insert(ctx context.Context, b *domain.Banner) (int64, error) {
	query := `
		INSERT INTO banners (
			title, status, image_url, link_url, content, position, publish_at, expire_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		)
		RETURNING id, created_at, updated_at`

	err := s.db.QueryRowContext(ctx, query,
		b.Title,
		b.Status,
		b.ImageURL,
		b.LinkURL,
		b.Content,
		b.Position,
		b.PublishAt,
		b.ExpireAt,
	).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return 0, err
	}

	return b.ID, nil
}

// Replace overwrites every mutable column of an existing banner and refreshes
// updated_at. The id never changes.
func (s *BannerStore) Replace(ctx context.Context, b *domain.Banner) error {
	query := `
		UPDATE banners SET
			title = $2,
			status = $3,
			image_url = $4,
			link_url = $5,
			content = $6,
			position = $7,
			publish_at = $8,
			expire_at = $9,
			updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	err := s.db.QueryRowContext(ctx, query,
		b.ID,
		b.Title,
		b.Status,
		b.ImageURL,
		b.LinkURL,
		b.Content,
		b.Position,
		b.PublishAt,
		b.ExpireAt,
	).Scan(&b.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	return err
}

func (s *BannerStore) GetByID(ctx context.Context, id int64) (*domain.Banner, error) {
	var b domain.Banner
	err := s.db.GetContext(ctx, &b, `SELECT `+bannerColumns+` FROM banners WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// FindExpired returns up to limit banners whose expiry is at or before now,
// oldest id first.
func (s *BannerStore) FindExpired(ctx context.Context, now time.Time, limit int) ([]domain.Banner, error) {
	query := `SELECT ` + bannerColumns + `
		FROM banners
		WHERE expire_at IS NOT NULL AND expire_at <= $1
		ORDER BY id
		LIMIT $2`

	var banners []domain.Banner
	err := s.db.SelectContext(ctx, &banners, query, now, limit)
	return banners, err
}

func (s *BannerStore) DeleteByIDs(ctx context.Context, ids []int64) (int64, error) {
	return deleteByIDs(ctx, s.db, "banners", ids)
}

func deleteByIDs(ctx context.Context, db *sqlx.DB, table string, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	res, err := db.ExecContext(ctx, `DELETE FROM `+table+` WHERE id = ANY($1)`, pq.Array(ids))
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
