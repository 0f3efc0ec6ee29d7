package strategy

import (
	"sync/atomic"
	"time"

	"github.com/Iron-Ham/seatbook/internal/errors"
	"github.com/Iron-Ham/seatbook/internal/reservation"
	"github.com/Iron-Ham/seatbook/internal/seating"
)

// Optimistic publishes immutable grid snapshots through an atomic pointer.
// Each request computes its result on a private copy of the current snapshot
// and installs it with compare-and-swap. A lost race retries against the
// newer snapshot; a request that does not apply returns without swapping.
//
// Snapshots reachable from the pointer are never mutated.
type Optimistic struct {
	current atomic.Pointer[seating.Grid]
	opts    options

	// beforeSwap runs between computing a result and publishing it.
	// Tests use it to force lost races.
	beforeSwap func()
}

// NewOptimistic creates an Optimistic strategy that owns grid.
func NewOptimistic(grid *seating.Grid, opts ...Option) *Optimistic {
	s := &Optimistic{opts: buildOptions(opts)}
	s.current.Store(grid)
	return s
}

// Execute implements Executor. With a retry budget configured, a request that
// loses more races than the budget allows fails with a *errors.ContentionError.
func (s *Optimistic) Execute(req reservation.Request) (reservation.Outcome, error) {
	start := time.Now()

	for retries := 0; ; retries++ {
		if limit := s.opts.maxRetries; limit > 0 && retries > limit {
			s.opts.logger.WithStrategy(string(KindOptimistic)).WithRequest(req.ID()).
				Warn("retry budget exhausted", "request", req.String(), "attempts", retries)
			err := errors.NewContentionError(string(KindOptimistic), retries)
			return s.opts.finish(KindOptimistic, req, start, reservation.Outcome{}, err)
		}

		snapshot := s.current.Load()
		next, out, err := reservation.Apply(snapshot, req)
		if err != nil || !out.Applied {
			return s.opts.finish(KindOptimistic, req, start, out, err)
		}

		if s.beforeSwap != nil {
			s.beforeSwap()
		}
		if s.current.CompareAndSwap(snapshot, next) {
			return s.opts.finish(KindOptimistic, req, start, out, nil)
		}
		s.opts.metrics.AddRetry(string(KindOptimistic))
	}
}

// Snapshot implements Executor.
func (s *Optimistic) Snapshot() *seating.Grid {
	return s.current.Load().Clone()
}

// Name implements Executor.
func (s *Optimistic) Name() Kind { return KindOptimistic }
