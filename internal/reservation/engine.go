package reservation

import (
	"fmt"

	"github.com/Iron-Ham/seatbook/internal/errors"
	"github.com/Iron-Ham/seatbook/internal/seating"
)

// Outcome is the result of running a request against a grid.
type Outcome struct {
	// Applied is false when the seats were unavailable. The grid is then
	// unchanged.
	Applied bool
	// Seats lists the columns that changed state, in the order they were
	// taken. Empty unless Applied.
	Seats []int
}

// unavailable is the zero outcome: nothing changed.
var unavailable = Outcome{}

// checkRange validates [start, end] in row against g without side effects.
func checkRange(g *seating.Grid, row, start, end int) error {
	if !g.Contains(row, start) {
		return errors.NewOutOfRangeError(row, start, g.Rows(), g.Cols())
	}
	if !g.Contains(row, end) {
		return errors.NewOutOfRangeError(row, end, g.Rows(), g.Cols())
	}
	if start > end {
		return errors.NewOutOfRangeError(row, start, g.Rows(), g.Cols())
	}
	return nil
}

// ReserveRange books every seat in [start, end] of row, or none of them. If
// any seat in the range is already reserved the outcome is not applied and
// the grid is untouched.
func ReserveRange(g *seating.Grid, row, start, end int) (Outcome, error) {
	return transitionRange(g, row, start, end, false)
}

// CancelRange releases every seat in [start, end] of row, or none of them.
// Every seat in the range must currently be reserved.
func CancelRange(g *seating.Grid, row, start, end int) (Outcome, error) {
	return transitionRange(g, row, start, end, true)
}

// transitionRange flips every seat in the range whose reserved flag equals
// from. It checks all seats before mutating any.
func transitionRange(g *seating.Grid, row, start, end int, from bool) (Outcome, error) {
	if err := checkRange(g, row, start, end); err != nil {
		return unavailable, err
	}

	for col := start; col <= end; col++ {
		reserved, _ := g.IsReserved(row, col)
		if reserved != from {
			return unavailable, nil
		}
	}

	seats := make([]int, 0, end-start+1)
	for col := start; col <= end; col++ {
		s, _ := g.Get(row, col)
		if from {
			s.Cancel()
		} else {
			s.Reserve()
		}
		seats = append(seats, col)
	}
	return Outcome{Applied: true, Seats: seats}, nil
}

// nearestOrder returns the columns of a row in the order ReserveNearest
// considers them: the anchor, then leftward to column 0, then rightward from
// anchor+1 to the last column.
func nearestOrder(anchor, cols int) []int {
	order := make([]int, 0, cols)
	for col := anchor; col >= 0; col-- {
		order = append(order, col)
	}
	for col := anchor + 1; col < cols; col++ {
		order = append(order, col)
	}
	return order
}

// ReserveNearest books count free seats in row closest to anchor. Seats on
// the anchor's left, down to column 0, are always taken before any seat on
// its right, so the chosen seats need not be adjacent.
//
// The outcome is not applied, and the grid is untouched, when the row has
// fewer than count free seats.
//
// ReserveNearest panics if the row runs out of free seats between the count
// and the walk. That cannot happen while the caller holds exclusive access to
// g.
func ReserveNearest(g *seating.Grid, row, anchor, count int) (Outcome, error) {
	if !g.Contains(row, anchor) {
		return unavailable, errors.NewOutOfRangeError(row, anchor, g.Rows(), g.Cols())
	}
	if count < 1 {
		return unavailable, errors.NewValidationError("seat count must be positive").
			WithField("count").WithValue(count)
	}

	order := nearestOrder(anchor, g.Cols())

	free := 0
	for _, col := range order {
		if reserved, _ := g.IsReserved(row, col); !reserved {
			free++
		}
	}
	if free < count {
		return unavailable, nil
	}

	seats := make([]int, 0, count)
	for _, col := range order {
		if len(seats) == count {
			break
		}
		s, _ := g.Get(row, col)
		if s.IsReserved() {
			continue
		}
		s.Reserve()
		seats = append(seats, col)
	}

	if len(seats) != count {
		panic(fmt.Sprintf("reservation: row %d changed during nearest booking: reserved %d of %d seats", row, len(seats), count))
	}
	return Outcome{Applied: true, Seats: seats}, nil
}

// Execute runs req against g in place. Cancellations and contiguous bookings
// use the exact range; nearest bookings expand from the anchor column.
func Execute(g *seating.Grid, req Request) (Outcome, error) {
	switch {
	case req.Kind() == Cancel:
		return CancelRange(g, req.Row(), req.Col(), req.End())
	case req.Kind() == Book && req.Mode() == Contiguous:
		return ReserveRange(g, req.Row(), req.Col(), req.End())
	case req.Kind() == Book && req.Mode() == Nearest:
		return ReserveNearest(g, req.Row(), req.Col(), req.Count())
	default:
		return unavailable, errors.NewValidationError("unsupported request").WithValue(req.String())
	}
}

// Apply is the copy-on-write form of Execute. It never mutates snapshot.
// When the request applies, the returned grid is a new grid holding the
// result; otherwise it is snapshot itself.
func Apply(snapshot *seating.Grid, req Request) (*seating.Grid, Outcome, error) {
	next := snapshot.Clone()
	out, err := Execute(next, req)
	if err != nil || !out.Applied {
		return snapshot, out, err
	}
	return next, out, nil
}
