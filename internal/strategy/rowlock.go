package strategy

import (
	"sync"
	"time"

	"github.com/Iron-Ham/seatbook/internal/errors"
	"github.com/Iron-Ham/seatbook/internal/reservation"
	"github.com/Iron-Ham/seatbook/internal/seating"
)

// RowLock keeps one mutex per row. A request locks only its own row, so
// requests for different rows never wait on each other.
//
// The lock table is sized from the grid at construction and belongs to this
// instance; two RowLocks never share locks.
type RowLock struct {
	rows []sync.Mutex
	grid *seating.Grid
	opts options
}

// NewRowLock creates a RowLock that owns grid.
func NewRowLock(grid *seating.Grid, opts ...Option) *RowLock {
	return &RowLock{
		rows: make([]sync.Mutex, grid.Rows()),
		grid: grid,
		opts: buildOptions(opts),
	}
}

// Execute implements Executor. A row outside the grid fails before any lock
// is taken.
func (s *RowLock) Execute(req reservation.Request) (reservation.Outcome, error) {
	start := time.Now()

	row := req.Row()
	if row < 0 || row >= len(s.rows) {
		err := errors.NewOutOfRangeError(row, req.Col(), s.grid.Rows(), s.grid.Cols())
		return s.opts.finish(KindRowLock, req, start, reservation.Outcome{}, err)
	}

	out, err := s.executeRow(row, req)
	return s.opts.finish(KindRowLock, req, start, out, err)
}

func (s *RowLock) executeRow(row int, req reservation.Request) (reservation.Outcome, error) {
	s.rows[row].Lock()
	defer s.rows[row].Unlock()
	return reservation.Execute(s.grid, req)
}

// Snapshot implements Executor. It takes every row lock in ascending order,
// which cannot deadlock with Execute because Execute holds at most one.
func (s *RowLock) Snapshot() *seating.Grid {
	for i := range s.rows {
		s.rows[i].Lock()
	}
	defer func() {
		for i := len(s.rows) - 1; i >= 0; i-- {
			s.rows[i].Unlock()
		}
	}()
	return s.grid.Clone()
}

// Name implements Executor.
func (s *RowLock) Name() Kind { return KindRowLock }
