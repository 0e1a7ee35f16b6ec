// Package archive maps live content records to their archived form.
package archive

import (
	"time"

	"cms_archiver/internal/domain"
)

// Banner builds the archived copy of b. Absent text resolves to "" and absent
// timestamps resolve to at.
func Banner(b domain.Banner, reason domain.ArchiveReason, at time.Time) domain.ArchivedBanner {
	return domain.ArchivedBanner{
		OriginalID:    b.ID,
		Title:         b.Title,
		Status:        b.Status,
		ImageURL:      b.ImageURL,
		LinkURL:       text(b.LinkURL),
		Content:       text(b.Content),
		Position:      b.Position,
		PublishAt:     timestamp(b.PublishAt, at),
		ExpireAt:      timestamp(b.ExpireAt, at),
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
		ArchiveReason: reason,
		ArchivedAt:    at,
	}
}

// Page builds the archived copy of p. Tags are copied so the archive never
// shares backing storage with the live record.
func Page(p domain.Page, reason domain.ArchiveReason, at time.Time) domain.ArchivedPage {
	tags := make([]string, len(p.Tags))
	copy(tags, p.Tags)

	return domain.ArchivedPage{
		OriginalID:    p.ID,
		Title:         p.Title,
		Slug:          p.Slug,
		Status:        p.Status,
		Content:       text(p.Content),
		Author:        text(p.Author),
		Category:      text(p.Category),
		Tags:          tags,
		PublishAt:     timestamp(p.PublishAt, at),
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
		ArchiveReason: reason,
		ArchivedAt:    at,
	}
}

func text(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func timestamp(t *time.Time, fallback time.Time) time.Time {
	if t == nil {
		return fallback
	}
	return *t
}
