package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"cms_archiver/internal/domain"
)

type BannerStore interface {
	FindExpired(ctx context.Context, now time.Time, limit int) ([]domain.Banner, error)
	DeleteByIDs(ctx context.Context, ids []int64) (int64, error)
}

type PageStore interface {
	GetByID(ctx context.Context, id int64) (*domain.Page, error)
	DeleteByIDs(ctx context.Context, ids []int64) (int64, error)
}

type ArchivedBannerStore interface {
	InsertMany(ctx context.Context, items []domain.ArchivedBanner) error
}

type ArchivedPageStore interface {
	InsertMany(ctx context.Context, items []domain.ArchivedPage) error
}

// ActivityNotifier is a best-effort audit sink. Callers never propagate its errors.
type ActivityNotifier interface {
	Log(ctx context.Context, entry domain.Activity) error
}

// SweepStateStore records finished sweeps. Record adds archived to the running
// total in a single write.
type SweepStateStore interface {
	Record(ctx context.Context, kind string, sweptAt time.Time, archived int64) error
}

type TransferRecorder interface {
	RecordTransfer(stats *domain.TransferStats)
	RecordArchiveWriteFailure(kind string)
}
