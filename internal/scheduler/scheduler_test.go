package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stpnv0/HotelBooker/internal/domain"
	"github.com/stpnv0/HotelBooker/internal/scheduler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func fixedClock(ts time.Time) Option {
	return WithClock(func() time.Time { return ts })
}

func TestScheduler_RunOnce_PassesToday(t *testing.T) {
	sweeper := mocks.NewMockBookingSweeper(t)
	now := time.Date(2025, 6, 10, 23, 45, 0, 0, time.UTC)
	s := New(sweeper, time.Hour, newTestLogger(t), fixedClock(now))

	sweeper.EXPECT().SweepExpired(mock.Anything, time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)).
		Return([]*domain.ArchiveRecord{
			{Booking: domain.Booking{ID: "b1", UserID: "u1", RoomID: "r1"}, Status: domain.ArchiveStatusCompleted},
		}, nil)

	assert.True(t, s.RunOnce(context.Background()))
}

func TestScheduler_RunOnce_HandlesError(t *testing.T) {
	sweeper := mocks.NewMockBookingSweeper(t)
	s := New(sweeper, time.Hour, newTestLogger(t))

	sweeper.EXPECT().SweepExpired(mock.Anything, mock.Anything).Return(nil, errors.New("db error"))

	assert.True(t, s.RunOnce(context.Background()))
}

func TestScheduler_RunOnce_SkipsWhileRunning(t *testing.T) {
	sweeper := mocks.NewMockBookingSweeper(t)
	s := New(sweeper, time.Hour, newTestLogger(t))

	started := make(chan struct{})
	release := make(chan struct{})
	sweeper.EXPECT().SweepExpired(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, today time.Time) {
			close(started)
			<-release
		}).
		Return(nil, nil).Once()

	done := make(chan bool)
	go func() { done <- s.RunOnce(context.Background()) }()

	<-started
	assert.False(t, s.RunOnce(context.Background()))

	close(release)
	assert.True(t, <-done)
}

func TestScheduler_RunOnStart(t *testing.T) {
	sweeper := mocks.NewMockBookingSweeper(t)
	s := New(sweeper, time.Hour, newTestLogger(t), WithRunOnStart(true))

	ctx, cancel := context.WithCancel(context.Background())
	sweeper.EXPECT().SweepExpired(mock.Anything, mock.Anything).
		Run(func(context.Context, time.Time) { cancel() }).
		Return(nil, nil).Once()

	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop after the start-up sweep")
	}
}

func TestScheduler_Tick_Sweeps(t *testing.T) {
	sweeper := mocks.NewMockBookingSweeper(t)
	s := New(sweeper, 30*time.Millisecond, newTestLogger(t))

	sweeper.EXPECT().SweepExpired(mock.Anything, mock.Anything).Return(nil, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 110*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(sweeper.Calls), 2)
}

func TestScheduler_StopsOnContextCancel(t *testing.T) {
	sweeper := mocks.NewMockBookingSweeper(t)
	s := New(sweeper, time.Second, newTestLogger(t))

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on context cancel")
	}
}
