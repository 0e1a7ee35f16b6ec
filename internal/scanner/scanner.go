package scanner

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"cms_archiver/internal/domain"
)

// Sweeper defines the interface for expiry sweeps.
type Sweeper interface {
	SweepExpired(ctx context.Context) (*domain.TransferStats, error)
}

type State int

const (
	Idle State = iota
	Scanning
	Stopped
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Scanning:
		return "scanning"
	case Stopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Result is the outcome of one sweep.
type Result struct {
	Tick     int
	Stats    *domain.TransferStats
	Err      error
	Finished time.Time
}

const resultBuffer = 16

// Scanner runs expiry sweeps with a fixed delay between the end of one sweep
// and the start of the next. A sweep in flight is never cancelled: stopping
// the scanner waits for it to finish.
type Scanner struct {
	sweeper  Sweeper
	interval time.Duration
	logger   *slog.Logger
	results  chan Result
	state    atomic.Int32
}

func NewScanner(sweeper Sweeper, interval time.Duration, logger *slog.Logger) *Scanner {
	return &Scanner{
		sweeper:  sweeper,
		interval: interval,
		logger:   logger.With("component", "scanner"),
		results:  make(chan Result, resultBuffer),
	}
}

// State reports what the scanner is doing right now.
func (s *Scanner) State() State {
	return State(s.state.Load())
}

func (s *Scanner) setState(to State, tick int) {
	from := State(s.state.Swap(int32(to)))
	if from != to {
		s.logger.Debug("state change", "from", from, "to", to, "tick", tick)
	}
}

// Results streams sweep outcomes. Results are dropped when the buffer is full.
func (s *Scanner) Results() <-chan Result {
	return s.results
}

// Start sweeps once, then again each time the interval has elapsed after the
// previous sweep finished, until ctx is cancelled. A failing sweep is logged
// and retried after the next delay. Cancellation is only observed between
// sweeps.
func (s *Scanner) Start(ctx context.Context) error {
	s.logger.Info("scanner started", "interval", s.interval)
	defer func() {
		s.setState(Stopped, 0)
		s.logger.Info("scanner stopped")
	}()

	timer := time.NewTimer(s.interval)
	timer.Stop()
	defer timer.Stop()

	for tick := 1; ; tick++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		s.runSweep(ctx, tick)

		timer.Reset(s.interval)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}
}

func (s *Scanner) runSweep(ctx context.Context, tick int) {
	s.setState(Scanning, tick)
	defer s.setState(Idle, tick)

	// Shutdown must not interrupt a transfer between its archive write and
	// its live delete.
	stats, err := s.sweeper.SweepExpired(context.WithoutCancel(ctx))
	if err != nil {
		s.logger.Error("sweep failed", "tick", tick, "error", err)
	} else if stats.Archived > 0 {
		s.logger.Info("sweep completed",
			"tick", tick,
			"archived", stats.Archived,
			"removed", stats.Removed,
		)
	}

	s.publish(Result{Tick: tick, Stats: stats, Err: err, Finished: time.Now()})
}

func (s *Scanner) publish(r Result) {
	select {
	case s.results <- r:
	default:
		s.logger.Debug("sweep result dropped", "tick", r.Tick)
	}
}
