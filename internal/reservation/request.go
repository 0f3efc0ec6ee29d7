package reservation

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/Iron-Ham/seatbook/internal/errors"
	"github.com/Iron-Ham/seatbook/internal/seating"
)

// Kind is the action a request performs.
type Kind int

const (
	// Book reserves seats.
	Book Kind = iota
	// Cancel releases previously reserved seats.
	Cancel
)

// String returns the wire name of the kind as used on the command line.
func (k Kind) String() string {
	switch k {
	case Book:
		return "BOOK"
	case Cancel:
		return "CANCEL"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind converts BOOK or CANCEL (case-insensitive) into a Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "BOOK":
		return Book, nil
	case "CANCEL":
		return Cancel, nil
	default:
		return 0, errors.NewValidationError("action must be BOOK or CANCEL").
			WithField("action").WithValue(s)
	}
}

// Mode selects the seat-selection policy for bookings.
type Mode int

const (
	// Contiguous books exactly the requested range or nothing.
	Contiguous Mode = iota
	// Nearest books the free seats closest to the anchor column.
	Nearest
)

// String returns the configuration name of the mode.
func (m Mode) String() string {
	switch m {
	case Contiguous:
		return "contiguous"
	case Nearest:
		return "nearest"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode converts "contiguous" or "nearest" into a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "contiguous":
		return Contiguous, nil
	case "nearest":
		return Nearest, nil
	default:
		return 0, errors.NewValidationError("mode must be contiguous or nearest").
			WithField("mode").WithValue(s)
	}
}

// Bounds are the grid dimensions a request is validated against.
type Bounds struct {
	Rows int
	Cols int
}

// DefaultBounds matches seating.Default.
var DefaultBounds = Bounds{Rows: seating.DefaultRows, Cols: seating.DefaultCols}

// BoundsOf returns the dimensions of g.
func BoundsOf(g *seating.Grid) Bounds {
	return Bounds{Rows: g.Rows(), Cols: g.Cols()}
}

// Request is an immutable, validated instruction to book or cancel seats in
// one row. Build it with NewRequest.
type Request struct {
	id    string
	kind  Kind
	mode  Mode
	row   int
	col   int
	count int
}

// NewRequest validates the fields against b and returns a request tagged
// with a fresh correlation ID.
//
// Rules:
//   - row in [0, Rows), col in [0, Cols), count in [1, Cols]
//   - cancellations and contiguous bookings must fit: col+count-1 < Cols
//   - nearest bookings treat col as an anchor, so the seats chosen may lie on
//     either side of it
//
// Cancellation ignores mode. The request records it anyway so that logs show
// what the caller asked for.
func NewRequest(kind Kind, mode Mode, row, col, count int, b Bounds) (Request, error) {
	if kind != Book && kind != Cancel {
		return Request{}, errors.NewValidationError("unknown action").WithField("action").WithValue(int(kind))
	}
	if mode != Contiguous && mode != Nearest {
		return Request{}, errors.NewValidationError("unknown mode").WithField("mode").WithValue(int(mode))
	}
	if b.Rows < 1 || b.Cols < 1 {
		return Request{}, errors.NewValidationError("grid bounds must be positive").
			WithField("bounds").WithValue(fmt.Sprintf("%dx%d", b.Rows, b.Cols)).
			WithCause(errors.ErrEmptyGrid)
	}
	if row < 0 || row >= b.Rows {
		return Request{}, errors.NewValidationError(fmt.Sprintf("row must be in [0, %d)", b.Rows)).
			WithField("row").WithValue(row)
	}
	if col < 0 || col >= b.Cols {
		return Request{}, errors.NewValidationError(fmt.Sprintf("column must be in [0, %d)", b.Cols)).
			WithField("col").WithValue(col)
	}
	if count < 1 || count > b.Cols {
		return Request{}, errors.NewValidationError(fmt.Sprintf("seat count must be in [1, %d]", b.Cols)).
			WithField("count").WithValue(count)
	}
	if (kind == Cancel || mode == Contiguous) && col+count-1 >= b.Cols {
		return Request{}, errors.NewValidationError(fmt.Sprintf("seats %d..%d run past the last column %d", col, col+count-1, b.Cols-1)).
			WithField("count").WithValue(count)
	}

	return Request{
		id:    uuid.NewString(),
		kind:  kind,
		mode:  mode,
		row:   row,
		col:   col,
		count: count,
	}, nil
}

// ID returns the correlation ID assigned at construction.
func (r Request) ID() string { return r.id }

// Kind returns the action.
func (r Request) Kind() Kind { return r.kind }

// Mode returns the selection policy.
func (r Request) Mode() Mode { return r.mode }

// Row returns the target row.
func (r Request) Row() int { return r.row }

// Col returns the starting column, or the anchor for nearest bookings.
func (r Request) Col() int { return r.col }

// Count returns the number of seats.
func (r Request) Count() int { return r.count }

// End returns the last column of the contiguous range [Col, End].
func (r Request) End() int { return r.col + r.count - 1 }

// String renders the request in seat notation, e.g. "BOOK C3 x2 (nearest)".
func (r Request) String() string {
	return fmt.Sprintf("%s %s x%d (%s)", r.kind, FormatSeat(r.row, r.col), r.count, r.mode)
}
