package reservation

import (
	"strconv"
	"strings"

	"github.com/Iron-Ham/seatbook/internal/errors"
)

// ParseSeat converts seat notation into zero-based coordinates. A seat is a
// row letter (A is row 0, Z is row 25) followed by a decimal column index:
// "A0", "C7", "B10". Lowercase letters are accepted.
func ParseSeat(s string) (row, col int, err error) {
	s = strings.TrimSpace(s)
	if len(s) < 2 {
		return 0, 0, errors.NewValidationError("seat must be a row letter followed by a column number").
			WithField("seat").WithValue(s)
	}

	letter := s[0]
	if letter >= 'a' && letter <= 'z' {
		letter -= 'a' - 'A'
	}
	if letter < 'A' || letter > 'Z' {
		return 0, 0, errors.NewValidationError("seat row must be a letter A-Z").
			WithField("seat").WithValue(s)
	}

	digits := s[1:]
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return 0, 0, errors.NewValidationError("seat column must be a decimal number").
				WithField("seat").WithValue(s)
		}
	}
	col, err = strconv.Atoi(digits)
	if err != nil {
		return 0, 0, errors.NewValidationError("seat column must be a decimal number").
			WithField("seat").WithValue(s).WithCause(err)
	}

	return int(letter - 'A'), col, nil
}

// FormatSeat is the inverse of ParseSeat for rows 0..25. Rows beyond Z have
// no letter and are rendered as "#<row>-<col>".
func FormatSeat(row, col int) string {
	if row >= 0 && row < 26 {
		return string(rune('A'+row)) + strconv.Itoa(col)
	}
	return "#" + strconv.Itoa(row) + "-" + strconv.Itoa(col)
}

// ParseCount parses a seat count argument.
func ParseCount(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, errors.NewValidationError("seat count must be a number").
			WithField("count").WithValue(s).WithCause(err)
	}
	return n, nil
}

// Parse builds a request from the textual seat and count arguments.
func Parse(kind Kind, mode Mode, seat, count string, b Bounds) (Request, error) {
	row, col, err := ParseSeat(seat)
	if err != nil {
		return Request{}, err
	}
	n, err := ParseCount(count)
	if err != nil {
		return Request{}, err
	}
	return NewRequest(kind, mode, row, col, n, b)
}

// ParseArgs builds a request from the three-argument form
// "<BOOK|CANCEL> <seat> <count>".
func ParseArgs(args []string, mode Mode, b Bounds) (Request, error) {
	if len(args) != 3 {
		return Request{}, errors.NewValidationError("expected 3 arguments: <BOOK|CANCEL> <seat> <count>").
			WithField("args").WithValue(len(args))
	}
	kind, err := ParseKind(args[0])
	if err != nil {
		return Request{}, err
	}
	return Parse(kind, mode, args[1], args[2], b)
}
