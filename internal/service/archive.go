package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"cms_archiver/internal/archive"
	"cms_archiver/internal/domain"
)

type ArchiveService struct {
	banners         BannerStore
	pages           PageStore
	archivedBanners ArchivedBannerStore
	archivedPages   ArchivedPageStore
	sweepState      SweepStateStore
	notifier        ActivityNotifier
	recorder        TransferRecorder
	logger          *slog.Logger
	now             func() time.Time
	batchSize       int
}

// DefaultBatchSize bounds how many expired banners one sweep moves.
const DefaultBatchSize = 500

// Option customises an ArchiveService.
type Option func(*ArchiveService)

// WithRecorder reports transfer outcomes to r.
func WithRecorder(r TransferRecorder) Option {
	return func(s *ArchiveService) { s.recorder = r }
}

// WithBatchSize caps the number of banners moved per sweep. Values below one
// are ignored.
func WithBatchSize(n int) Option {
	return func(s *ArchiveService) {
		if n > 0 {
			s.batchSize = n
		}
	}
}

// WithClock replaces time.Now as the source of transfer timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *ArchiveService) { s.now = now }
}

func NewArchiveService(
	banners BannerStore,
	pages PageStore,
	archivedBanners ArchivedBannerStore,
	archivedPages ArchivedPageStore,
	sweepState SweepStateStore,
	notifier ActivityNotifier,
	logger *slog.Logger,
	opts ...Option,
) *ArchiveService {
	s := &ArchiveService{
		banners:         banners,
		pages:           pages,
		archivedBanners: archivedBanners,
		archivedPages:   archivedPages,
		sweepState:      sweepState,
		notifier:        notifier,
		logger:          logger.With("component", "archive"),
		now:             func() time.Time { return time.Now().UTC() },
		batchSize:       DefaultBatchSize,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *ArchiveService) bannerKind() kind[domain.Banner, domain.ArchivedBanner] {
	return kind[domain.Banner, domain.ArchivedBanner]{
		name:      domain.KindBanner,
		toArchive: archive.Banner,
		id:        func(b domain.Banner) int64 { return b.ID },
		title:     func(b domain.Banner) string { return b.Title },
		insert:    s.archivedBanners.InsertMany,
		remove:    s.banners.DeleteByIDs,
	}
}

func (s *ArchiveService) pageKind() kind[domain.Page, domain.ArchivedPage] {
	return kind[domain.Page, domain.ArchivedPage]{
		name:      domain.KindPage,
		toArchive: archive.Page,
		id:        func(p domain.Page) int64 { return p.ID },
		title:     func(p domain.Page) string { return p.Title },
		insert:    s.archivedPages.InsertMany,
		remove:    s.pages.DeleteByIDs,
	}
}

// SweepExpired archives banners whose expiry has passed, at most batchSize of
// them; a larger backlog drains over later sweeps. An empty sweep returns zero
// stats and no error.
func (s *ArchiveService) SweepExpired(ctx context.Context) (*domain.TransferStats, error) {
	now := s.now()

	expired, err := s.banners.FindExpired(ctx, now, s.batchSize)
	if err != nil {
		return nil, fmt.Errorf("find expired banners: %w", err)
	}

	if len(expired) == 0 {
		s.logger.Debug("no expired banners")
		return &domain.TransferStats{Kind: domain.KindBanner, Reason: domain.ReasonExpired}, nil
	}

	s.logger.Info("expired banners found", "count", len(expired))
	if len(expired) == s.batchSize {
		s.logger.Info("expiry backlog exceeds batch size, remainder left for next sweep", "batch_size", s.batchSize)
	}

	stats, err := transfer(ctx, s, s.bannerKind(), expired, domain.ReasonExpired, domain.ActorSystem)
	if err != nil {
		return nil, err
	}

	if err := s.updateSweepState(ctx, stats); err != nil {
		s.logger.Warn("update sweep state failed", "error", err)
	}

	return stats, nil
}

// ArchivePage moves one page into the archive. It fails with domain.ErrNotFound
// when the page does not exist and reports success once the archive write has
// completed, whatever happens to the live delete or the notification.
func (s *ArchiveService) ArchivePage(ctx context.Context, id int64, actor string) (*domain.TransferStats, error) {
	page, err := s.pages.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get page %d: %w", id, err)
	}

	return transfer(ctx, s, s.pageKind(), []domain.Page{*page}, domain.ReasonDeleted, actor)
}

func (s *ArchiveService) updateSweepState(ctx context.Context, stats *domain.TransferStats) error {
	if s.sweepState == nil {
		return nil
	}
	return s.sweepState.Record(ctx, stats.Kind, s.now(), int64(stats.Archived))
}
