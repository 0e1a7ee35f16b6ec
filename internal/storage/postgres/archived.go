package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"cms_archiver/internal/domain"
)

// ArchivedBannerStore is append-only: rows are inserted and read, never
// updated or deleted.
type ArchivedBannerStore struct {
	db *sqlx.DB
}

func NewArchivedBannerStore(db *sqlx.DB) *ArchivedBannerStore {
	return &ArchivedBannerStore{db: db}
}

const archivedBannerInsert = `INSERT INTO archived_banners (
	original_id, title, status, image_url, link_url, content, position,
	publish_at, expire_at, created_at, updated_at, archive_reason, archived_at
) VALUES `

const archivedBannerColumnCount = 13

// InsertMany writes all items or none. Batches too large for one statement are
// split into several statements inside a single transaction.
func (s *ArchivedBannerStore) InsertMany(ctx context.Context, items []domain.ArchivedBanner) error {
	if len(items) == 0 {
		return nil
	}

	valueArgs := make([]interface{}, 0, len(items)*archivedBannerColumnCount)
	for _, a := range items {
		valueArgs = append(valueArgs,
			a.OriginalID,
			a.Title,
			a.Status,
			a.ImageURL,
			a.LinkURL,
			a.Content,
			a.Position,
			a.PublishAt,
			a.ExpireAt,
			a.CreatedAt,
			a.UpdatedAt,
			a.ArchiveReason,
			a.ArchivedAt,
		)
	}

	return insertRows(ctx, s.db, archivedBannerInsert, archivedBannerColumnCount, valueArgs)
}

func (s *ArchivedBannerStore) Insert(ctx context.Context, item domain.ArchivedBanner) error {
	return s.InsertMany(ctx, []domain.ArchivedBanner{item})
}

func (s *ArchivedBannerStore) ListByOriginalID(ctx context.Context, originalID int64) ([]domain.ArchivedBanner, error) {
	query := `
		SELECT id, original_id, title, status, image_url, link_url, content, position,
			publish_at, expire_at, created_at, updated_at, archive_reason, archived_at
		FROM archived_banners
		WHERE original_id = $1
		ORDER BY id`

	var items []domain.ArchivedBanner
	err := s.db.SelectContext(ctx, &items, query, originalID)
	return items, err
}

type ArchivedPageStore struct {
	db *sqlx.DB
}

func NewArchivedPageStore(db *sqlx.DB) *ArchivedPageStore {
	return &ArchivedPageStore{db: db}
}

const archivedPageInsert = `INSERT INTO archived_pages (
	original_id, title, slug, status, content, author, category, tags,
	publish_at, created_at, updated_at, archive_reason, archived_at
) VALUES `

const archivedPageColumnCount = 13

func (s *ArchivedPageStore) InsertMany(ctx context.Context, items []domain.ArchivedPage) error {
	if len(items) == 0 {
		return nil
	}

	valueArgs := make([]interface{}, 0, len(items)*archivedPageColumnCount)
	for _, a := range items {
		valueArgs = append(valueArgs,
			a.OriginalID,
			a.Title,
			a.Slug,
			a.Status,
			a.Content,
			a.Author,
			a.Category,
			tagArray(a.Tags),
			a.PublishAt,
			a.CreatedAt,
			a.UpdatedAt,
			a.ArchiveReason,
			a.ArchivedAt,
		)
	}

	return insertRows(ctx, s.db, archivedPageInsert, archivedPageColumnCount, valueArgs)
}

func (s *ArchivedPageStore) Insert(ctx context.Context, item domain.ArchivedPage) error {
	return s.InsertMany(ctx, []domain.ArchivedPage{item})
}

func (s *ArchivedPageStore) ListByOriginalID(ctx context.Context, originalID int64) ([]domain.ArchivedPage, error) {
	query := `
		SELECT id, original_id, title, slug, status, content, author, category, tags,
			publish_at, created_at, updated_at, archive_reason, archived_at
		FROM archived_pages
		WHERE original_id = $1
		ORDER BY id`

	var rows []archivedPageRow
	if err := s.db.SelectContext(ctx, &rows, query, originalID); err != nil {
		return nil, err
	}

	items := make([]domain.ArchivedPage, len(rows))
	for i, r := range rows {
		items[i] = r.toDomain()
	}
	return items, nil
}

// maxBindParams is the most positional parameters PostgreSQL accepts in one
// statement.
const maxBindParams = 65535

// insertRows runs prefix with a VALUES list for args, cols values per row.
func insertRows(ctx context.Context, db *sqlx.DB, prefix string, cols int, args []interface{}) error {
	rows := len(args) / cols
	perStatement := maxBindParams / cols

	if rows <= perStatement {
		_, err := db.ExecContext(ctx, prefix+valuesClause(rows, cols), args...)
		return err
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	for start := 0; start < rows; start += perStatement {
		end := min(start+perStatement, rows)
		query := prefix + valuesClause(end-start, cols)
		if _, err := tx.ExecContext(ctx, query, args[start*cols:end*cols]...); err != nil {
			return fmt.Errorf("insert rows %d-%d: %w", start, end-1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// valuesClause renders "($1, $2), ($3, $4)" for rows*cols positional arguments.
func valuesClause(rows, cols int) string {
	var sb strings.Builder
	n := 1
	for i := 0; i < rows; i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("(")
		for j := 0; j < cols; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString("$")
			sb.WriteString(itoa(n))
			n++
		}
		sb.WriteString(")")
	}
	return sb.String()
}

func itoa(i int) string {
	if i < 10 {
		return string(rune('0' + i))
	}
	return itoa(i/10) + string(rune('0'+i%10))
}
