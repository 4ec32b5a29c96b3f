package repository

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/lib/pq"
	"github.com/stpnv0/HotelBooker/internal/domain"
	"github.com/wb-go/wbf/retry"
)

const defaultQueryTimeout = 5 * time.Second

// DB is the part of *dbpg.DB the repositories use.
type DB interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
	ExecWithRetry(ctx context.Context, strategy retry.Strategy, query string, args ...interface{}) (sql.Result, error)
	QueryWithRetry(ctx context.Context, strategy retry.Strategy, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowWithRetry(ctx context.Context, strategy retry.Strategy, query string, args ...interface{}) (*sql.Row, error)
}

type Option func(*base)

// WithQueryTimeout bounds every repository call.
func WithQueryTimeout(d time.Duration) Option {
	return func(b *base) {
		if d > 0 {
			b.timeout = d
		}
	}
}

// WithRetryStrategy overrides the default read/write retry strategy.
func WithRetryStrategy(s retry.Strategy) Option {
	return func(b *base) {
		b.strategy = s
	}
}

type base struct {
	db       DB
	strategy retry.Strategy
	timeout  time.Duration
}

func newBase(db DB, opts ...Option) base {
	b := base{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
		timeout: defaultQueryTimeout,
	}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

func (b base) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, b.timeout)
}

// storeErr wraps err with op and marks transient failures as domain.ErrStoreUnavailable.
func storeErr(op string, err error) error {
	if isUnavailable(err) {
		return fmt.Errorf("%s: %w: %w", op, domain.ErrStoreUnavailable, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func isUnavailable(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, driver.ErrBadConn) || errors.Is(err, sql.ErrConnDone) {
		return true
	}

	var pgErr *pq.Error
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code.Class() == "08": // connection exception
			return true
		case pgErr.Code == "40001", pgErr.Code == "40P01": // serialization failure, deadlock
			return true
		case pgErr.Code == "57P01", pgErr.Code == "57P03": // admin shutdown, cannot connect now
			return true
		}
		return false
	}

	var netErr net.Error
	return errors.As(err, &netErr)
}

func isUniqueViolation(err error) bool {
	var pgErr *pq.Error
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
