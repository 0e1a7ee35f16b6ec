package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"cms_archiver/internal/domain"
)

// kind binds one record variant to the stores and mapper the transfer needs.
type kind[L, A any] struct {
	name      string
	toArchive func(L, domain.ArchiveReason, time.Time) A
	id        func(L) int64
	title     func(L) string
	insert    func(context.Context, []A) error
	remove    func(context.Context, []int64) (int64, error)
}

// transfer copies records into the archive store and then removes them from
// the live store. The archive write always precedes the live delete: a failed
// write aborts with nothing removed, a failed delete leaves the live copies in
// place to be archived again on the next discovery.
func transfer[L, A any](
	ctx context.Context,
	s *ArchiveService,
	k kind[L, A],
	records []L,
	reason domain.ArchiveReason,
	actor string,
) (*domain.TransferStats, error) {
	if len(records) == 0 {
		return nil, domain.ErrEmptyBatch
	}

	startTime := s.now()
	began := time.Now()
	logger := s.logger.With("kind", k.name, "reason", reason)

	archived := make([]A, len(records))
	ids := make([]int64, len(records))
	for i, r := range records {
		archived[i] = k.toArchive(r, reason, startTime)
		ids[i] = k.id(r)
	}

	if err := k.insert(ctx, archived); err != nil {
		if s.recorder != nil {
			s.recorder.RecordArchiveWriteFailure(k.name)
		}
		return nil, fmt.Errorf("%w: insert archived %s records: %w", domain.ErrArchiveWrite, k.name, err)
	}

	stats := &domain.TransferStats{
		Kind:      k.name,
		Reason:    reason,
		Requested: len(records),
		Archived:  len(archived),
	}

	removed, err := k.remove(ctx, ids)
	if err != nil {
		stats.DeleteErr = fmt.Errorf("%w: delete live %s records: %w", domain.ErrLiveDelete, k.name, err)
		logger.Error("live delete failed after archive write, records will be archived again",
			"ids", ids,
			"error", err,
		)
	} else {
		stats.Removed = removed
	}

	for _, r := range records {
		entry := domain.Activity{
			EventID:     uuid.NewString(),
			Actor:       actor,
			Action:      domain.ActionArchive,
			ContentKind: k.name,
			Title:       k.title(r),
			ContentID:   k.id(r),
			Outcome:     string(reason),
			OccurredAt:  startTime,
		}
		if s.notify(ctx, logger, entry) {
			stats.Notified++
		} else {
			stats.NotifyFailures++
		}
	}

	stats.Duration = time.Since(began)

	if s.recorder != nil {
		s.recorder.RecordTransfer(stats)
	}

	logger.Info("transfer completed",
		"requested", stats.Requested,
		"archived", stats.Archived,
		"removed", stats.Removed,
		"notify_failures", stats.NotifyFailures,
		"duration", stats.Duration,
	)

	return stats, nil
}

// notify delivers one activity entry and absorbs every failure, panics included.
func (s *ArchiveService) notify(ctx context.Context, logger *slog.Logger, entry domain.Activity) (ok bool) {
	if s.notifier == nil {
		return true
	}

	defer func() {
		if r := recover(); r != nil {
			logger.Error("activity notifier panicked",
				"content_id", entry.ContentID,
				"panic", r,
			)
			ok = false
		}
	}()

	if err := s.notifier.Log(ctx, entry); err != nil {
		logger.Warn("activity notification failed",
			"content_id", entry.ContentID,
			"error", fmt.Errorf("%w: %w", domain.ErrNotification, err),
		)
		return false
	}
	return true
}
