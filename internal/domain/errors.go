package domain

import "errors"

var (
	ErrNotFound     = errors.New("record not found")
	ErrEmptyBatch   = errors.New("empty transfer batch")
	ErrArchiveWrite = errors.New("archive write failed")
	ErrLiveDelete   = errors.New("live delete failed")
	ErrNotification = errors.New("activity notification failed")
)
