package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/stpnv0/HotelBooker/internal/domain"
	"github.com/stpnv0/HotelBooker/internal/metrics"
	"github.com/wb-go/wbf/logger"
)

type bookingSweeper interface {
	SweepExpired(ctx context.Context, today time.Time) ([]*domain.ArchiveRecord, error)
}

type Option func(*Scheduler)

// WithClock подменяет источник текущего времени (для тестов).
func WithClock(now func() time.Time) Option {
	return func(s *Scheduler) { s.now = now }
}

// WithRunOnStart makes Start sweep once before the first tick.
func WithRunOnStart(on bool) Option {
	return func(s *Scheduler) { s.runOnStart = on }
}

type Scheduler struct {
	bookingService bookingSweeper
	interval       time.Duration
	runOnStart     bool
	now            func() time.Time
	running        sync.Mutex
	logger         logger.Logger
}

func New(
	bookingService bookingSweeper,
	interval time.Duration,
	logger logger.Logger,
	opts ...Option,
) *Scheduler {
	s := &Scheduler{
		bookingService: bookingService,
		interval:       interval,
		now:            time.Now,
		logger:         logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	if s.runOnStart {
		s.RunOnce(ctx)
	}

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.RunOnce(ctx)
		}
	}
}

// RunOnce archives bookings that ended before today. It returns false when a previous
// run is still in progress and this trigger was skipped.
func (s *Scheduler) RunOnce(ctx context.Context) bool {
	if !s.running.TryLock() {
		metrics.SweepRuns.WithLabelValues("skipped").Inc()
		s.logger.Warn("previous sweep still running, skipping")
		return false
	}
	defer s.running.Unlock()

	start := time.Now()
	today := domain.DateOf(s.now())

	archived, err := s.bookingService.SweepExpired(ctx, today)
	metrics.SweepDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.SweepRuns.WithLabelValues("error").Inc()
		s.logger.Error("failed to sweep expired bookings",
			logger.String("today", domain.FormatDate(today)),
			logger.String("error", err.Error()),
		)
		return true
	}
	metrics.SweepRuns.WithLabelValues("ok").Inc()

	for _, rec := range archived {
		s.logger.Info("booking completed",
			logger.String("booking_id", rec.ID),
			logger.String("user_id", rec.UserID),
			logger.String("room_id", rec.RoomID),
		)
	}

	return true
}
