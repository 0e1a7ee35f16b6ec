package domain

import "time"

const (
	KindBanner = "banner"
	KindPage   = "page"
)

// TransferStats holds statistics about one archival transfer. Archived and
// Removed diverge when the live delete fails after a committed archive write.
type TransferStats struct {
	Kind           string        `json:"kind"`
	Reason         ArchiveReason `json:"reason"`
	Requested      int           `json:"requested"`
	Archived       int           `json:"archived"`
	Removed        int64         `json:"removed"`
	Notified       int           `json:"notified"`
	NotifyFailures int           `json:"notify_failures"`
	DeleteErr      error         `json:"-"`
	Duration       time.Duration `json:"duration"`
}

// SweepState tracks expiry sweeps per record kind.
type SweepState struct {
	ID            int64     `db:"id"`
	Kind          string    `db:"kind"`
	LastSweptAt   time.Time `db:"last_swept_at"`
	LastArchived  int64     `db:"last_archived"`
	TotalArchived int64     `db:"total_archived"`
}
