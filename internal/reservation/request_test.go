package reservation

import (
	"testing"

	"github.com/Iron-Ham/seatbook/internal/errors"
)

func TestNewRequest(t *testing.T) {
	b := DefaultBounds

	tests := []struct {
		name      string
		kind      Kind
		mode      Mode
		row       int
		col       int
		count     int
		wantField string
	}{
		{name: "book contiguous fits", kind: Book, mode: Contiguous, row: 0, col: 0, count: 8},
		{name: "book contiguous last seat", kind: Book, mode: Contiguous, row: 19, col: 7, count: 1},
		{name: "book contiguous overflow", kind: Book, mode: Contiguous, row: 0, col: 6, count: 3, wantField: "count"},
		{name: "book nearest spills right", kind: Book, mode: Nearest, row: 0, col: 6, count: 3},
		{name: "book nearest full row from edge", kind: Book, mode: Nearest, row: 0, col: 7, count: 8},
		{name: "cancel overflow", kind: Cancel, mode: Nearest, row: 0, col: 6, count: 3, wantField: "count"},
		{name: "cancel fits", kind: Cancel, mode: Nearest, row: 2, col: 5, count: 3},
		{name: "negative row", kind: Book, mode: Nearest, row: -1, col: 0, count: 1, wantField: "row"},
		{name: "row past end", kind: Book, mode: Nearest, row: 20, col: 0, count: 1, wantField: "row"},
		{name: "negative col", kind: Book, mode: Nearest, row: 0, col: -1, count: 1, wantField: "col"},
		{name: "col past end", kind: Book, mode: Nearest, row: 0, col: 8, count: 1, wantField: "col"},
		{name: "zero count", kind: Book, mode: Nearest, row: 0, col: 0, count: 0, wantField: "count"},
		{name: "count above width", kind: Book, mode: Nearest, row: 0, col: 0, count: 9, wantField: "count"},
		{name: "unknown kind", kind: Kind(7), mode: Nearest, row: 0, col: 0, count: 1, wantField: "action"},
		{name: "unknown mode", kind: Book, mode: Mode(7), row: 0, col: 0, count: 1, wantField: "mode"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := NewRequest(tt.kind, tt.mode, tt.row, tt.col, tt.count, b)
			if tt.wantField != "" {
				var ve *errors.ValidationError
				if !errors.As(err, &ve) {
					t.Fatalf("NewRequest() error = %v, want *ValidationError", err)
				}
				if ve.Field != tt.wantField {
					t.Errorf("Field = %q, want %q", ve.Field, tt.wantField)
				}
				if !errors.Is(err, errors.ErrInvalidInput) {
					t.Error("validation failures should match ErrInvalidInput")
				}
				return
			}
			if err != nil {
				t.Fatalf("NewRequest() unexpected error: %v", err)
			}
			if req.Kind() != tt.kind || req.Mode() != tt.mode {
				t.Errorf("kind/mode = %v/%v, want %v/%v", req.Kind(), req.Mode(), tt.kind, tt.mode)
			}
			if req.Row() != tt.row || req.Col() != tt.col || req.Count() != tt.count {
				t.Errorf("request = (%d, %d, %d), want (%d, %d, %d)",
					req.Row(), req.Col(), req.Count(), tt.row, tt.col, tt.count)
			}
			if req.ID() == "" {
				t.Error("ID() should be set")
			}
		})
	}
}

func TestNewRequestCustomBounds(t *testing.T) {
	b := Bounds{Rows: 2, Cols: 3}

	if _, err := NewRequest(Book, Contiguous, 1, 0, 3, b); err != nil {
		t.Errorf("full row of a 2x3 grid should be valid: %v", err)
	}
	if _, err := NewRequest(Book, Contiguous, 2, 0, 1, b); err == nil {
		t.Error("row 2 of a 2-row grid should be rejected")
	}
	if _, err := NewRequest(Book, Nearest, 0, 0, 4, b); err == nil {
		t.Error("count above the row width should be rejected")
	}
	if _, err := NewRequest(Book, Nearest, 0, 0, 1, Bounds{}); !errors.Is(err, errors.ErrEmptyGrid) {
		t.Errorf("empty bounds error = %v, want ErrEmptyGrid", err)
	}
}

func TestRequestIDsAreUnique(t *testing.T) {
	a, _ := NewRequest(Book, Nearest, 0, 0, 1, DefaultBounds)
	b, _ := NewRequest(Book, Nearest, 0, 0, 1, DefaultBounds)
	if a.ID() == b.ID() {
		t.Errorf("two requests share ID %q", a.ID())
	}
}

func TestRequestString(t *testing.T) {
	req, err := NewRequest(Book, Contiguous, 2, 3, 2, DefaultBounds)
	if err != nil {
		t.Fatalf("NewRequest() error: %v", err)
	}
	if got, want := req.String(), "BOOK C3 x2 (contiguous)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if req.End() != 4 {
		t.Errorf("End() = %d, want 4", req.End())
	}
}

func TestParseKindAndMode(t *testing.T) {
	kinds := []struct {
		in      string
		want    Kind
		wantErr bool
	}{
		{in: "BOOK", want: Book},
		{in: "cancel", want: Cancel},
		{in: " Book ", want: Book},
		{in: "RESERVE", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range kinds {
		t.Run("kind "+tt.in, func(t *testing.T) {
			got, err := ParseKind(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseKind(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseKind(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}

	modes := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{in: "contiguous", want: Contiguous},
		{in: "NEAREST", want: Nearest},
		{in: "closest", wantErr: true},
	}
	for _, tt := range modes {
		t.Run("mode "+tt.in, func(t *testing.T) {
			got, err := ParseMode(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseMode(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseMode(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
