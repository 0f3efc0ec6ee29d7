package seating

import (
	"fmt"

	"github.com/Iron-Ham/seatbook/internal/errors"
)

// Default grid dimensions for a single flight.
const (
	DefaultRows = 20
	DefaultCols = 8
)

// Grid is a fixed-size, rectangular arrangement of seats. Dimensions never
// change after construction and the grid exclusively owns its seats.
//
// Grid is not safe for concurrent mutation; callers serialize access through
// a concurrency strategy.
type Grid struct {
	rows  int
	cols  int
	seats [][]Seat
}

// New creates a grid of empty seats. Both dimensions must be at least 1.
func New(rows, cols int) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, errors.Wrapf(errors.ErrEmptyGrid, "new grid %dx%d", rows, cols)
	}
	seats := make([][]Seat, rows)
	for i := range seats {
		seats[i] = make([]Seat, cols)
	}
	return &Grid{rows: rows, cols: cols, seats: seats}, nil
}

// Default creates an empty DefaultRows x DefaultCols grid.
func Default() *Grid {
	g, _ := New(DefaultRows, DefaultCols)
	return g
}

// FromSnapshot builds a grid from per-seat reserved flags in row-major
// order. The snapshot must be non-empty and rectangular. The grid copies the
// flags, so later changes to either side are not visible to the other.
func FromSnapshot(flags [][]bool) (*Grid, error) {
	cols, err := checkShape(len(flags), func(i int) (int, bool) { return len(flags[i]), flags[i] != nil })
	if err != nil {
		return nil, err
	}
	g, _ := New(len(flags), cols)
	for r, row := range flags {
		for c, reserved := range row {
			g.seats[r][c].reserved = reserved
		}
	}
	return g, nil
}

// FromSeats builds a grid from an existing seat arrangement with the same
// validation and copying rules as FromSnapshot.
func FromSeats(seats [][]Seat) (*Grid, error) {
	cols, err := checkShape(len(seats), func(i int) (int, bool) { return len(seats[i]), seats[i] != nil })
	if err != nil {
		return nil, err
	}
	g, _ := New(len(seats), cols)
	for r := range seats {
		copy(g.seats[r], seats[r])
	}
	return g, nil
}

// checkShape validates that rows > 0 and every row reports the same
// non-zero width. It returns that width.
func checkShape(rows int, width func(int) (int, bool)) (int, error) {
	if rows == 0 {
		return 0, errors.ErrEmptyGrid
	}
	cols, ok := width(0)
	if !ok || cols == 0 {
		return 0, errors.ErrEmptyGrid
	}
	for i := 1; i < rows; i++ {
		w, ok := width(i)
		if !ok || w != cols {
			return 0, fmt.Errorf("%w: row %d has %d seats, want %d", errors.ErrNotRectangular, i, w, cols)
		}
	}
	return cols, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of seats in every row.
func (g *Grid) Cols() int {
	return g.cols
}

// Contains reports whether (row, col) addresses a seat in the grid.
func (g *Grid) Contains(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Get returns the seat at (row, col). The pointer aliases grid storage;
// mutating it mutates the grid.
func (g *Grid) Get(row, col int) (*Seat, error) {
	if !g.Contains(row, col) {
		return nil, errors.NewOutOfRangeError(row, col, g.rows, g.cols)
	}
	return &g.seats[row][col], nil
}

// IsReserved reports the state of the seat at (row, col).
func (g *Grid) IsReserved(row, col int) (bool, error) {
	s, err := g.Get(row, col)
	if err != nil {
		return false, err
	}
	return s.IsReserved(), nil
}

// Available returns the number of free seats in row.
func (g *Grid) Available(row int) (int, error) {
	if row < 0 || row >= g.rows {
		return 0, errors.NewOutOfRangeError(row, 0, g.rows, g.cols)
	}
	n := 0
	for _, s := range g.seats[row] {
		if !s.reserved {
			n++
		}
	}
	return n, nil
}

// Reserved returns the number of booked seats across the whole grid.
func (g *Grid) Reserved() int {
	n := 0
	g.Each(func(_, _ int, s Seat) {
		if s.reserved {
			n++
		}
	})
	return n
}

// Each calls fn for every seat in row-major order.
func (g *Grid) Each(fn func(row, col int, s Seat)) {
	for r, row := range g.seats {
		for c, s := range row {
			fn(r, c, s)
		}
	}
}

// Snapshot returns the reserved flags in row-major order. The result is a
// fresh copy owned by the caller.
func (g *Grid) Snapshot() [][]bool {
	out := make([][]bool, g.rows)
	for r, row := range g.seats {
		out[r] = make([]bool, g.cols)
		for c, s := range row {
			out[r][c] = s.reserved
		}
	}
	return out
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	clone, _ := FromSeats(g.seats)
	return clone
}

// Equal reports whether both grids have the same dimensions and the same
// state for every seat.
func (g *Grid) Equal(other *Grid) bool {
	if g == nil || other == nil {
		return g == other
	}
	if g.rows != other.rows || g.cols != other.cols {
		return false
	}
	for r := range g.seats {
		for c := range g.seats[r] {
			if g.seats[r][c] != other.seats[r][c] {
				return false
			}
		}
	}
	return true
}
