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

const pageColumns = `id, title, slug, status, content, author, category, tags,
	publish_at, created_at, updated_at`

type pageRow struct {
	ID        int64             `db:"id"`
	Title     string            `db:"title"`
	Slug      string            `db:"slug"`
	Status    domain.PageStatus `db:"status"`
	Content   *string           `db:"content"`
	Author    *string           `db:"author"`
	Category  *string           `db:"category"`
	Tags      pq.StringArray    `db:"tags"`
	PublishAt *time.Time        `db:"publish_at"`
	CreatedAt time.Time         `db:"created_at"`
	UpdatedAt time.Time         `db:"updated_at"`
}

func (r pageRow) toDomain() domain.Page {
	return domain.Page{
		ID:        r.ID,
		Title:     r.Title,
		Slug:      r.Slug,
		Status:    r.Status,
		Content:   r.Content,
		Author:    r.Author,
		Category:  r.Category,
		Tags:      []string(r.Tags),
		PublishAt: r.PublishAt,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

type archivedPageRow struct {
	pageRow
	OriginalID    int64                `db:"original_id"`
	ArchiveReason domain.ArchiveReason `db:"archive_reason"`
	ArchivedAt    time.Time            `db:"archived_at"`
}

func (r archivedPageRow) toDomain() domain.ArchivedPage {
	p := r.pageRow.toDomain()
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}
	return domain.ArchivedPage{
		ID:            p.ID,
		OriginalID:    r.OriginalID,
		Title:         p.Title,
		Slug:          p.Slug,
		Status:        p.Status,
		Content:       deref(p.Content),
		Author:        deref(p.Author),
		Category:      deref(p.Category),
		Tags:          tags,
		PublishAt:     derefTime(p.PublishAt),
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
		ArchiveReason: r.ArchiveReason,
		ArchivedAt:    r.ArchivedAt,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefTime(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}

type PageStore struct {
	db *sqlx.DB
}

func NewPageStore(db *sqlx.DB) *PageStore {
	return &PageStore{db: db}
}

func (s *PageStore) Insert(ctx context.Context, p *domain.Page) (int64, error) {
	query := `
		INSERT INTO pages (
			title, slug, status, content, author, category, tags, publish_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		)
		RETURNING id, created_at, updated_at`

	err := s.db.QueryRowContext(ctx, query,
		p.Title,
		p.Slug,
		p.Status,
		p.Content,
		p.Author,
		p.Category,
		tagArray(p.Tags),
		p.PublishAt,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return 0, err
	}

	return p.ID, nil
}

func (s *PageStore) Replace(ctx context.Context, p *domain.Page) error {
	query := `
		UPDATE pages SET
			title = $2,
			slug = $3,
			status = $4,
			content = $5,
			author = $6,
			category = $7,
			tags = $8,
			publish_at = $9,
			updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	err := s.db.QueryRowContext(ctx, query,
		p.ID,
		p.Title,
		p.Slug,
		p.Status,
		p.Content,
		p.Author,
		p.Category,
		tagArray(p.Tags),
		p.PublishAt,
	).Scan(&p.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	return err
}

func (s *PageStore) GetByID(ctx context.Context, id int64) (*domain.Page, error) {
	var row pageRow
	err := s.db.GetContext(ctx, &row, `SELECT `+pageColumns+` FROM pages WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	p := row.toDomain()
	return &p, nil
}

func (s *PageStore) DeleteByIDs(ctx context.Context, ids []int64) (int64, error) {
	return deleteByIDs(ctx, s.db, "pages", ids)
}

func tagArray(tags []string) pq.StringArray {
	if tags == nil {
		return pq.StringArray{}
	}
	return pq.StringArray(tags)
}
