package strategy

import (
	"sync"
	"time"

	"github.com/Iron-Ham/seatbook/internal/reservation"
	"github.com/Iron-Ham/seatbook/internal/seating"
)

// GridLock guards the whole grid with a single mutex. Only one request runs
// at a time, whatever row it targets.
type GridLock struct {
	mu   sync.Mutex
	grid *seating.Grid
	opts options
}

// NewGridLock creates a GridLock that owns grid.
func NewGridLock(grid *seating.Grid, opts ...Option) *GridLock {
	return &GridLock{grid: grid, opts: buildOptions(opts)}
}

// Execute implements Executor.
func (s *GridLock) Execute(req reservation.Request) (reservation.Outcome, error) {
	start := time.Now()
	out, err := s.execute(req)
	return s.opts.finish(KindLock, req, start, out, err)
}

func (s *GridLock) execute(req reservation.Request) (reservation.Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return reservation.Execute(s.grid, req)
}

// Snapshot implements Executor.
func (s *GridLock) Snapshot() *seating.Grid {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.grid.Clone()
}

// Name implements Executor.
func (s *GridLock) Name() Kind { return KindLock }
