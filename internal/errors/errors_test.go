package errors

import (
	"errors"
	"fmt"
	"testing"
)

// -----------------------------------------------------------------------------
// Severity Tests
// -----------------------------------------------------------------------------

func TestSeverity_String(t *testing.T) {
	tests := []struct {
		severity Severity
		want     string
	}{
		{SeverityDebug, "debug"},
		{SeverityInfo, "info"},
		{SeverityWarning, "warning"},
		{SeverityError, "error"},
		{SeverityCritical, "critical"},
		{Severity(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.severity.String(); got != tt.want {
				t.Errorf("Severity.String() = %q, want %q", got, tt.want)
			}
		})
	}
}

// -----------------------------------------------------------------------------
// ReservationError Tests
// -----------------------------------------------------------------------------

func TestNewReservationError(t *testing.T) {
	cause := ErrOperationFailed
	err := NewReservationError("execute failed", cause)

	if err.message != "execute failed" {
		t.Errorf("message = %q, want %q", err.message, "execute failed")
	}
	if err.cause != cause {
		t.Errorf("cause = %v, want %v", err.cause, cause)
	}
	if err.Row != -1 {
		t.Errorf("Row = %d, want -1", err.Row)
	}
	if err.Severity() != SeverityError {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityError)
	}
	if err.IsRetryable() {
		t.Error("IsRetryable() = true, want false")
	}
	if !err.IsUserFacing() {
		t.Error("IsUserFacing() = false, want true")
	}
}

func TestReservationError_InheritsRetryable(t *testing.T) {
	err := NewReservationError("execute failed", NewContentionError("optimistic", 3))
	if !err.IsRetryable() {
		t.Error("IsRetryable() = false, want true for contention cause")
	}
}

func TestReservationError_InheritsUserFacing(t *testing.T) {
	tests := []struct {
		name  string
		cause error
		want  bool
	}{
		{name: "nil cause", cause: nil, want: true},
		{name: "plain cause", cause: ErrOperationFailed, want: true},
		{name: "contention", cause: NewContentionError("optimistic", 3), want: true},
		{name: "out of range", cause: NewOutOfRangeError(0, 9, 1, 8), want: false},
		{name: "wrapped out of range", cause: Wrap(NewOutOfRangeError(0, 9, 1, 8), "reserve"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewReservationError("execute book", tt.cause)
			if got := err.IsUserFacing(); got != tt.want {
				t.Errorf("IsUserFacing() = %v, want %v", got, tt.want)
			}
			if got := IsUserFacing(err); got != tt.want {
				t.Errorf("IsUserFacing(err) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestReservationError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ReservationError
		want string
	}{
		{
			name: "no context",
			err:  NewReservationError("execute failed", nil),
			want: "reservation error: execute failed",
		},
		{
			name: "strategy and row",
			err:  NewReservationError("execute failed", nil).WithStrategy("row-lock").WithRow(3),
			want: "reservation error [strategy=row-lock, row=3]: execute failed",
		},
		{
			name: "with cause and request",
			err:  NewReservationError("execute failed", ErrOperationFailed).WithRequestID("abc"),
			want: "reservation error [request=abc]: execute failed: operation failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestReservationError_Is(t *testing.T) {
	err := NewReservationError("execute failed", NewOutOfRangeError(30, 0, 20, 8))

	if !errors.Is(err, &ReservationError{}) {
		t.Error("should match *ReservationError")
	}
	if !errors.Is(err, ErrOutOfRange) {
		t.Error("should match ErrOutOfRange through the cause")
	}
	if errors.Is(err, ErrInvalidInput) {
		t.Error("should not match ErrInvalidInput")
	}
}

// -----------------------------------------------------------------------------
// ChartError Tests
// -----------------------------------------------------------------------------

func TestChartError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ChartError
		want string
	}{
		{
			name: "no context",
			err:  NewChartError("save chart", nil),
			want: "chart error: save chart",
		},
		{
			name: "path and line",
			err:  NewChartError("parse chart", ErrMalformedChart).WithPath("chart.txt").WithLine(4),
			want: "chart error [path=chart.txt, line=4]: parse chart: malformed seat chart",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestChartError_Is(t *testing.T) {
	err := NewChartError("parse chart", ErrMalformedChart)
	if !errors.Is(err, ErrMalformedChart) {
		t.Error("should match ErrMalformedChart")
	}
	if !errors.Is(err, &ChartError{}) {
		t.Error("should match *ChartError")
	}
	if NewChartError("lock", ErrChartLocked).WithRetryable(true).IsRetryable() != true {
		t.Error("WithRetryable(true) should mark the error retryable")
	}
}

// -----------------------------------------------------------------------------
// Semantic Error Tests
// -----------------------------------------------------------------------------

func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ValidationError
		want string
	}{
		{
			name: "message only",
			err:  NewValidationError("bad seat"),
			want: "validation error: bad seat",
		},
		{
			name: "field and value",
			err:  NewValidationError("count out of range").WithField("count").WithValue(9),
			want: "validation error [field=count, value=9]: count out of range",
		},
		{
			name: "with cause",
			err:  NewValidationError("bad count").WithCause(errors.New("not a number")),
			want: "validation error: bad count: not a number",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidationError_Is(t *testing.T) {
	err := NewValidationError("bad")
	if !errors.Is(err, ErrInvalidInput) {
		t.Error("ValidationError should match ErrInvalidInput")
	}
	wrapped := fmt.Errorf("parse: %w", err)
	var ve *ValidationError
	if !errors.As(wrapped, &ve) {
		t.Fatal("should extract ValidationError from wrapped error")
	}
}

func TestOutOfRangeError(t *testing.T) {
	err := NewOutOfRangeError(20, 0, 20, 8)

	if got, want := err.Error(), "seat (20, 0) out of range for 20x8 grid"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, ErrOutOfRange) {
		t.Error("should match ErrOutOfRange")
	}
	if err.IsUserFacing() {
		t.Error("out-of-range errors are contract violations, not user-facing")
	}
	if err.IsRetryable() {
		t.Error("out-of-range errors are not retryable")
	}
}

func TestContentionError(t *testing.T) {
	err := NewContentionError("optimistic", 64)

	if got, want := err.Error(), "contention error: optimistic gave up after 64 attempts"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, ErrContentionExhausted) {
		t.Error("should match ErrContentionExhausted")
	}
	if !err.IsRetryable() {
		t.Error("contention should be retryable")
	}
}

// -----------------------------------------------------------------------------
// Classification Tests
// -----------------------------------------------------------------------------

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil error", err: nil, want: false},
		{name: "contention error", err: NewContentionError("optimistic", 1), want: true},
		{name: "wrapped sentinel", err: fmt.Errorf("x: %w", ErrContentionExhausted), want: true},
		{name: "validation error", err: NewValidationError("bad"), want: false},
		{name: "standard error", err: errors.New("boom"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsRetryable(tt.err); got != tt.want {
				t.Errorf("IsRetryable() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsUserFacing(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil error", err: nil, want: false},
		{name: "validation error", err: NewValidationError("bad"), want: true},
		{name: "chart error", err: NewChartError("save", nil), want: true},
		{name: "out of range", err: NewOutOfRangeError(1, 9, 20, 8), want: false},
		{name: "standard error", err: errors.New("internal"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsUserFacing(tt.err); got != tt.want {
				t.Errorf("IsUserFacing() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetSeverity(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Severity
	}{
		{name: "nil error", err: nil, want: SeverityDebug},
		{name: "reservation default", err: NewReservationError("x", nil), want: SeverityError},
		{name: "reservation critical", err: NewReservationError("x", nil).WithSeverity(SeverityCritical), want: SeverityCritical},
		{name: "validation", err: NewValidationError("x"), want: SeverityWarning},
		{name: "standard error", err: errors.New("x"), want: SeverityError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetSeverity(tt.err); got != tt.want {
				t.Errorf("GetSeverity() = %v, want %v", got, tt.want)
			}
		})
	}
}

// -----------------------------------------------------------------------------
// Wrap/Wrapf Tests
// -----------------------------------------------------------------------------

func TestWrap(t *testing.T) {
	if got := Wrap(nil, "context"); got != nil {
		t.Errorf("Wrap(nil) = %v, want nil", got)
	}

	err := Wrap(NewChartError("save chart", nil), "book")
	if got, want := err.Error(), "book: chart error: save chart"; got != want {
		t.Errorf("Wrap().Error() = %q, want %q", got, want)
	}
}

func TestWrapf(t *testing.T) {
	err := Wrapf(errors.New("base error"), "failed to load %s", "chart")
	if got, want := err.Error(), "failed to load chart: base error"; got != want {
		t.Errorf("Wrapf().Error() = %q, want %q", got, want)
	}
	if got := Wrapf(nil, "test"); got != nil {
		t.Errorf("Wrapf(nil) = %v, want nil", got)
	}
}

// -----------------------------------------------------------------------------
// Sentinel Error Tests
// -----------------------------------------------------------------------------

func TestSentinelErrors(t *testing.T) {
	sentinels := []error{
		ErrOutOfRange,
		ErrNotRectangular,
		ErrEmptyGrid,
		ErrMalformedChart,
		ErrChartLocked,
		ErrContentionExhausted,
		ErrUnknownStrategy,
		ErrInvalidInput,
		ErrOperationFailed,
	}

	for i, err1 := range sentinels {
		for j, err2 := range sentinels {
			if i != j && Is(err1, err2) {
				t.Errorf("Sentinel error %v should not match %v", err1, err2)
			}
		}
	}
}
