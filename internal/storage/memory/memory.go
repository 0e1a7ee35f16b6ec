// Package memory holds map-backed content and archive stores. Each store can
// be told to fail its next writes, which the end-to-end tests use to exercise
// partial transfers.
package memory

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"cms_archiver/internal/domain"
)

var ErrInjected = errors.New("injected failure")

type failures struct {
	mu   sync.Mutex
	left int
}

// FailNext makes the next n write calls return ErrInjected.
func (f *failures) FailNext(n int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.left = n
}

func (f *failures) take() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.left == 0 {
		return nil
	}
	f.left--
	return ErrInjected
}

type BannerStore struct {
	failures
	mu     sync.RWMutex
	nextID int64
	rows   map[int64]domain.Banner
}

func NewBannerStore() *BannerStore {
	return &BannerStore{rows: make(map[int64]domain.Banner)}
}

func (s *BannerStore) Insert(_ context.Context, b *domain.Banner) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	now := time.Now().UTC()
	b.ID = s.nextID
	b.CreatedAt = now
	b.UpdatedAt = now
	s.rows[b.ID] = *b
	return b.ID, nil
}

func (s *BannerStore) GetByID(_ context.Context, id int64) (*domain.Banner, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.rows[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &b, nil
}

// FindExpired returns at most limit expired banners in id order.
func (s *BannerStore) FindExpired(ctx context.Context, now time.Time, limit int) ([]domain.Banner, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var expired []domain.Banner
	for _, b := range s.rows {
		if b.ExpireAt != nil && !b.ExpireAt.After(now) {
			expired = append(expired, b)
		}
	}
	sort.Slice(expired, func(i, j int) bool { return expired[i].ID < expired[j].ID })
	if limit > 0 && len(expired) > limit {
		expired = expired[:limit]
	}
	return expired, nil
}

func (s *BannerStore) DeleteByIDs(ctx context.Context, ids []int64) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if err := s.take(); err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var n int64
	for _, id := range ids {
		if _, ok := s.rows[id]; ok {
			delete(s.rows, id)
			n++
		}
	}
	return n, nil
}

func (s *BannerStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.rows)
}

type PageStore struct {
	failures
	mu     sync.RWMutex
	nextID int64
	rows   map[int64]domain.Page
}

func NewPageStore() *PageStore {
	return &PageStore{rows: make(map[int64]domain.Page)}
}

func (s *PageStore) Insert(_ context.Context, p *domain.Page) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	now := time.Now().UTC()
	p.ID = s.nextID
	p.CreatedAt = now
	p.UpdatedAt = now
	s.rows[p.ID] = *p
	return p.ID, nil
}

func (s *PageStore) GetByID(_ context.Context, id int64) (*domain.Page, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.rows[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &p, nil
}

func (s *PageStore) DeleteByIDs(ctx context.Context, ids []int64) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if err := s.take(); err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var n int64
	for _, id := range ids {
		if _, ok := s.rows[id]; ok {
			delete(s.rows, id)
			n++
		}
	}
	return n, nil
}

func (s *PageStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.rows)
}

// ArchiveStore is an append-only log of archived records of one kind.
type ArchiveStore[A any] struct {
	failures
	mu     sync.RWMutex
	nextID int64
	items  []A
	setID  func(*A, int64)
}

func NewArchivedBannerStore() *ArchiveStore[domain.ArchivedBanner] {
	return &ArchiveStore[domain.ArchivedBanner]{
		setID: func(a *domain.ArchivedBanner, id int64) { a.ID = id },
	}
}

func NewArchivedPageStore() *ArchiveStore[domain.ArchivedPage] {
	return &ArchiveStore[domain.ArchivedPage]{
		setID: func(a *domain.ArchivedPage, id int64) { a.ID = id },
	}
}

// InsertMany appends all items or none.
func (s *ArchiveStore[A]) InsertMany(ctx context.Context, items []A) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.take(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, item := range items {
		s.nextID++
		s.setID(&item, s.nextID)
		s.items = append(s.items, item)
	}
	return nil
}

func (s *ArchiveStore[A]) Insert(ctx context.Context, item A) error {
	return s.InsertMany(ctx, []A{item})
}

func (s *ArchiveStore[A]) All() []A {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]A, len(s.items))
	copy(out, s.items)
	return out
}

// ActivityLog records every activity entry it receives.
type ActivityLog struct {
	failures
	mu      sync.Mutex
	entries []domain.Activity
}

func (l *ActivityLog) Log(_ context.Context, entry domain.Activity) error {
	if err := l.take(); err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, entry)
	return nil
}

func (l *ActivityLog) Entries() []domain.Activity {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]domain.Activity, len(l.entries))
	copy(out, l.entries)
	return out
}
