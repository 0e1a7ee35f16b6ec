package scanner

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cms_archiver/internal/domain"
)

type sweepFunc func(ctx context.Context) (*domain.TransferStats, error)

func (f sweepFunc) SweepExpired(ctx context.Context) (*domain.TransferStats, error) {
	return f(ctx)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func nextResult(t *testing.T, s *Scanner) Result {
	t.Helper()
	select {
	case r := <-s.Results():
		return r
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for sweep result")
		return Result{}
	}
}

func TestScanner_SurvivesFailedSweep(t *testing.T) {
	var calls atomic.Int32
	sweeper := sweepFunc(func(context.Context) (*domain.TransferStats, error) {
		if calls.Add(1) == 1 {
			return nil, errors.New("archive store unavailable")
		}
		return &domain.TransferStats{Kind: domain.KindBanner, Archived: 1}, nil
	})

	interval := 20 * time.Millisecond
	s := NewScanner(sweeper, interval, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- s.Start(ctx) }()

	first := nextResult(t, s)
	assert.Equal(t, 1, first.Tick)
	assert.Error(t, first.Err)
	assert.Nil(t, first.Stats)

	second := nextResult(t, s)
	assert.Equal(t, 2, second.Tick)
	require.NoError(t, second.Err)
	assert.Equal(t, 1, second.Stats.Archived)
	assert.GreaterOrEqual(t, second.Finished.Sub(first.Finished), interval/2)

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("scanner did not stop")
	}
}

func TestScanner_StopsPromptly(t *testing.T) {
	sweeper := sweepFunc(func(context.Context) (*domain.TransferStats, error) {
		return &domain.TransferStats{}, nil
	})

	s := NewScanner(sweeper, time.Hour, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Start(ctx) }()

	nextResult(t, s)
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("scanner blocked on its interval after cancellation")
	}
}

func TestScanner_WaitsFullIntervalAfterSlowSweep(t *testing.T) {
	const (
		interval  = 30 * time.Millisecond
		sweepTime = 60 * time.Millisecond
	)

	var (
		mu     sync.Mutex
		starts []time.Time
		ends   []time.Time
	)
	sweeper := sweepFunc(func(context.Context) (*domain.TransferStats, error) {
		mu.Lock()
		starts = append(starts, time.Now())
		mu.Unlock()

		time.Sleep(sweepTime)

		mu.Lock()
		ends = append(ends, time.Now())
		mu.Unlock()
		return &domain.TransferStats{}, nil
	})

	s := NewScanner(sweeper, interval, testLogger())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = s.Start(ctx) }()

	for i := 0; i < 3; i++ {
		nextResult(t, s)
	}
	cancel()

	mu.Lock()
	defer mu.Unlock()
	require.GreaterOrEqual(t, len(starts), 3)
	for i := 1; i < 3; i++ {
		gap := starts[i].Sub(ends[i-1])
		assert.GreaterOrEqual(t, gap, interval, "sweep %d started %s after the previous one finished", i+1, gap)
	}
}

func TestScanner_ShutdownWaitsForInFlightSweep(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	var (
		finished   atomic.Bool
		sweepCtxOK atomic.Bool
	)
	sweeper := sweepFunc(func(ctx context.Context) (*domain.TransferStats, error) {
		close(started)
		<-release
		sweepCtxOK.Store(ctx.Err() == nil)
		finished.Store(true)
		return &domain.TransferStats{Archived: 1, Removed: 1}, nil
	})

	s := NewScanner(sweeper, time.Hour, testLogger())
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Start(ctx) }()

	<-started
	assert.Equal(t, Scanning, s.State())
	cancel()

	select {
	case <-done:
		t.Fatal("scanner returned while a sweep was still running")
	case <-time.After(50 * time.Millisecond):
	}

	close(release)

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("scanner did not stop after the sweep finished")
	}

	assert.True(t, finished.Load())
	assert.True(t, sweepCtxOK.Load(), "sweep context was cancelled by shutdown")
	assert.Equal(t, Stopped, s.State())

	r := nextResult(t, s)
	require.NoError(t, r.Err)
	assert.Equal(t, int64(1), r.Stats.Removed)
}

func TestScanner_StateIdleBetweenSweeps(t *testing.T) {
	sweeper := sweepFunc(func(context.Context) (*domain.TransferStats, error) {
		return &domain.TransferStats{}, nil
	})

	s := NewScanner(sweeper, time.Hour, testLogger())
	assert.Equal(t, Idle, s.State())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = s.Start(ctx) }()

	nextResult(t, s)
	assert.Eventually(t, func() bool { return s.State() == Idle }, time.Second, 5*time.Millisecond)
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "idle", Idle.String())
	assert.Equal(t, "scanning", Scanning.String())
	assert.Equal(t, "stopped", Stopped.String())
	assert.Equal(t, "unknown", State(9).String())
}
