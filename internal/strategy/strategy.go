package strategy

import (
	"fmt"
	"strings"
	"time"

	"github.com/Iron-Ham/seatbook/internal/errors"
	"github.com/Iron-Ham/seatbook/internal/logging"
	"github.com/Iron-Ham/seatbook/internal/metrics"
	"github.com/Iron-Ham/seatbook/internal/reservation"
	"github.com/Iron-Ham/seatbook/internal/seating"
)

// Kind names a concurrency strategy.
type Kind string

const (
	// KindLock serializes every request behind one mutex.
	KindLock Kind = "lock"
	// KindRowLock serializes requests per row.
	KindRowLock Kind = "row-lock"
	// KindOptimistic retries compare-and-swap on an immutable snapshot.
	KindOptimistic Kind = "optimistic"
)

// DefaultMaxRetries bounds the optimistic strategy when configured from the
// command line.
const DefaultMaxRetries = 64

// Kinds returns every registered strategy in display order.
func Kinds() []Kind {
	return []Kind{KindLock, KindRowLock, KindOptimistic}
}

// ParseKind resolves a strategy name. Matching is case-insensitive.
func ParseKind(name string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Kinds() {
		if k == known {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q (want one of %s, %s, %s)",
		errors.ErrUnknownStrategy, name, KindLock, KindRowLock, KindOptimistic)
}

// Executor runs validated requests against a shared grid. Implementations are
// safe for concurrent use.
type Executor interface {
	// Execute runs req and reports whether it was applied.
	Execute(req reservation.Request) (reservation.Outcome, error)
	// Snapshot returns a consistent private copy of the grid.
	Snapshot() *seating.Grid
	// Name returns the strategy kind.
	Name() Kind
}

// options holds configuration shared by all strategies.
type options struct {
	logger     *logging.Logger
	metrics    *metrics.Metrics
	maxRetries int
}

// Option configures a strategy.
type Option func(*options)

// WithLogger sets the logger used for per-request debug output.
func WithLogger(l *logging.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMetrics records executions and retries in m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(o *options) {
		o.metrics = m
	}
}

// WithMaxRetries bounds the number of lost compare-and-swap attempts the
// optimistic strategy tolerates per request. 0 means retry until success.
// Lock-based strategies ignore it.
func WithMaxRetries(n int) Option {
	return func(o *options) {
		if n >= 0 {
			o.maxRetries = n
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{logger: logging.NopLogger()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// New creates the strategy named by kind around grid. A nil grid is replaced
// by seating.Default().
func New(kind Kind, grid *seating.Grid, opts ...Option) (Executor, error) {
	if grid == nil {
		grid = seating.Default()
	}
	switch kind {
	case KindLock:
		return NewGridLock(grid, opts...), nil
	case KindRowLock:
		return NewRowLock(grid, opts...), nil
	case KindOptimistic:
		return NewOptimistic(grid, opts...), nil
	default:
		return nil, fmt.Errorf("%w: %q", errors.ErrUnknownStrategy, string(kind))
	}
}

// finish records the result of one request and wraps any error with the
// strategy context.
func (o *options) finish(kind Kind, req reservation.Request, start time.Time, out reservation.Outcome, err error) (reservation.Outcome, error) {
	logger := o.logger.WithStrategy(string(kind)).WithRequest(req.ID())

	result := metrics.ResultApplied
	switch {
	case err != nil:
		result = metrics.ResultError
	case !out.Applied:
		result = metrics.ResultUnavailable
	}
	o.metrics.ObserveExecution(string(kind), req.Kind().String(), result, time.Since(start))

	if err != nil {
		logger.Warn("request failed", "request", req.String(), "error", err.Error())
		return reservation.Outcome{}, errors.NewReservationError("execute "+req.Kind().String(), err).
			WithStrategy(string(kind)).
			WithRow(req.Row()).
			WithRequestID(req.ID()).
			WithSeverity(errors.GetSeverity(err))
	}

	logger.Debug("request executed",
		"request", req.String(),
		"applied", out.Applied,
		"seats", out.Seats,
		"duration_us", time.Since(start).Microseconds(),
	)
	return out, nil
}
