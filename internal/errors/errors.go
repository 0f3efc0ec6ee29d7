// Package errors provides centralized error definitions and error handling utilities
// for seatbook. It defines domain-specific errors, semantic error types,
// error constructors with context wrapping, and error classification helpers.
//
// # Error Types
//
// Domain-specific errors represent errors from specific subsystems:
//   - ReservationError: errors raised while executing a request against a strategy
//   - ChartError: errors reading or writing the on-disk seat chart
//
// Semantic errors represent common error conditions:
//   - ValidationError: malformed or out-of-bounds request input
//   - OutOfRangeError: a grid coordinate outside the grid (a contract violation)
//   - ContentionError: the optimistic strategy ran out of retries
//
// Seats that are simply not available (already booked, not booked for a
// cancellation, too few free seats) are never reported as errors. Callers see
// them as an outcome that was not applied.
//
// # Usage
//
//	err := errors.NewValidationError("seat count out of range").WithField("count").WithValue(9)
//
//	if errors.Is(err, errors.ErrInvalidInput) { ... }
//
//	var oor *errors.OutOfRangeError
//	if errors.As(err, &oor) { ... }
//
//	if errors.IsRetryable(err) { ... }
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Re-export standard library functions for convenience.
// This allows callers to import only this package for all error handling.
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
	New    = errors.New
	Join   = errors.Join
)

// Severity represents the severity level of an error.
type Severity int

const (
	// SeverityDebug is for errors that are useful for debugging but not critical.
	SeverityDebug Severity = iota
	// SeverityInfo is for informational errors that don't indicate a problem.
	SeverityInfo
	// SeverityWarning is for errors that might indicate a problem but aren't critical.
	SeverityWarning
	// SeverityError is for errors that indicate a real problem.
	SeverityError
	// SeverityCritical is for errors that require immediate attention.
	SeverityCritical
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityDebug:
		return "debug"
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// -----------------------------------------------------------------------------
// Sentinel Errors
// -----------------------------------------------------------------------------

// Grid-related sentinel errors
var (
	// ErrOutOfRange indicates a row or column outside the grid.
	ErrOutOfRange = New("seat coordinate out of range")
	// ErrNotRectangular indicates a seat snapshot whose rows differ in length.
	ErrNotRectangular = New("seat rows must all have the same number of columns")
	// ErrEmptyGrid indicates a snapshot or size with no rows or no columns.
	ErrEmptyGrid = New("seat grid must have at least one row and one column")
)

// Chart-related sentinel errors
var (
	// ErrMalformedChart indicates a seat chart file that cannot be parsed.
	ErrMalformedChart = New("malformed seat chart")
	// ErrChartLocked indicates the seat chart lock could not be acquired.
	ErrChartLocked = New("seat chart is locked")
)

// Strategy-related sentinel errors
var (
	// ErrContentionExhausted indicates the optimistic strategy lost every compare-and-swap
	// within its retry budget.
	ErrContentionExhausted = New("retry budget exhausted under contention")
	// ErrUnknownStrategy indicates a strategy name that is not registered.
	ErrUnknownStrategy = New("unknown concurrency strategy")
)

// General sentinel errors
var (
	// ErrInvalidInput indicates that input validation failed.
	ErrInvalidInput = New("invalid input")
	// ErrOperationFailed indicates a general operation failure.
	ErrOperationFailed = New("operation failed")
)

// -----------------------------------------------------------------------------
// Base Error Interface
// -----------------------------------------------------------------------------

// SeatbookError is the base interface for all seatbook errors.
type SeatbookError interface {
	error

	// Unwrap returns the underlying error, if any.
	Unwrap() error

	// Is reports whether this error matches the target error.
	Is(target error) bool

	// Severity returns the severity level of this error.
	Severity() Severity

	// IsRetryable returns true if the operation may succeed on retry.
	IsRetryable() bool

	// IsUserFacing returns true if the error message is safe to display
	// to end users.
	IsUserFacing() bool
}

// -----------------------------------------------------------------------------
// Base Error Implementation
// -----------------------------------------------------------------------------

// baseError provides common functionality for all error types.
type baseError struct {
	message    string
	cause      error
	severity   Severity
	retryable  bool
	userFacing bool
}

// Error returns the error message.
func (e *baseError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

// Unwrap returns the underlying error.
func (e *baseError) Unwrap() error {
	return e.cause
}

// Is checks if this error matches the target.
func (e *baseError) Is(target error) bool {
	if e.cause != nil {
		return errors.Is(e.cause, target)
	}
	return false
}

// Severity returns the error severity.
func (e *baseError) Severity() Severity {
	return e.severity
}

// IsRetryable returns whether the error is retryable.
func (e *baseError) IsRetryable() bool {
	return e.retryable
}

// IsUserFacing returns whether the error is safe to show users.
func (e *baseError) IsUserFacing() bool {
	return e.userFacing
}

// -----------------------------------------------------------------------------
// Domain-Specific Errors
// -----------------------------------------------------------------------------

// ReservationError represents a failure while executing a request.
//
// Example:
//
//	err := errors.NewReservationError("execute failed", cause).
//		WithStrategy("row-lock").WithRow(3)
//	fmt.Println(err) // "reservation error [strategy=row-lock, row=3]: execute failed: ..."
type ReservationError struct {
	baseError
	Strategy  string
	Row       int
	RequestID string
}

// NewReservationError creates a new ReservationError.
func NewReservationError(message string, cause error) *ReservationError {
	return &ReservationError{
		baseError: baseError{
			message:    message,
			cause:      cause,
			severity:   SeverityError,
			retryable:  IsRetryable(cause),
			userFacing: causeUserFacing(cause),
		},
		Row: -1, // -1 indicates not set
	}
}

// causeUserFacing reports whether a wrapper around cause may be shown to
// users. Causes without a classification stay visible.
func causeUserFacing(cause error) bool {
	var seatbookErr SeatbookError
	if As(cause, &seatbookErr) {
		return seatbookErr.IsUserFacing()
	}
	return true
}

// WithStrategy adds the strategy name to the error context.
func (e *ReservationError) WithStrategy(name string) *ReservationError {
	e.Strategy = name
	return e
}

// WithRow adds the row index to the error context.
func (e *ReservationError) WithRow(row int) *ReservationError {
	e.Row = row
	return e
}

// WithRequestID adds the request correlation ID to the error context.
func (e *ReservationError) WithRequestID(id string) *ReservationError {
	e.RequestID = id
	return e
}

// WithSeverity sets the error severity.
func (e *ReservationError) WithSeverity(s Severity) *ReservationError {
	e.severity = s
	return e
}

// Error returns the formatted error message.
func (e *ReservationError) Error() string {
	var parts []string
	if e.Strategy != "" {
		parts = append(parts, fmt.Sprintf("strategy=%s", e.Strategy))
	}
	if e.Row >= 0 {
		parts = append(parts, fmt.Sprintf("row=%d", e.Row))
	}
	if e.RequestID != "" {
		parts = append(parts, fmt.Sprintf("request=%s", e.RequestID))
	}

	prefix := "reservation error"
	if len(parts) > 0 {
		prefix = fmt.Sprintf("reservation error [%s]", strings.Join(parts, ", "))
	}

	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.message)
}

// Is checks if this error matches the target.
func (e *ReservationError) Is(target error) bool {
	if _, ok := target.(*ReservationError); ok {
		return true
	}
	return e.baseError.Is(target)
}

// ChartError represents errors reading or writing the seat chart file.
//
// Example:
//
//	err := errors.NewChartError("parse chart", errors.ErrMalformedChart).
//		WithPath("seating_chart.txt").WithLine(4)
type ChartError struct {
	baseError
	Path string
	Line int
}

// NewChartError creates a new ChartError.
func NewChartError(message string, cause error) *ChartError {
	return &ChartError{
		baseError: baseError{
			message:    message,
			cause:      cause,
			severity:   SeverityError,
			retryable:  false,
			userFacing: true,
		},
	}
}

// WithPath adds the chart file path to the error context.
func (e *ChartError) WithPath(path string) *ChartError {
	e.Path = path
	return e
}

// WithLine adds a 1-based line number to the error context.
func (e *ChartError) WithLine(line int) *ChartError {
	e.Line = line
	return e
}

// WithRetryable sets whether the error is retryable.
func (e *ChartError) WithRetryable(r bool) *ChartError {
	e.retryable = r
	return e
}

// Error returns the formatted error message.
func (e *ChartError) Error() string {
	var parts []string
	if e.Path != "" {
		parts = append(parts, fmt.Sprintf("path=%s", e.Path))
	}
	if e.Line > 0 {
		parts = append(parts, fmt.Sprintf("line=%d", e.Line))
	}

	prefix := "chart error"
	if len(parts) > 0 {
		prefix = fmt.Sprintf("chart error [%s]", strings.Join(parts, ", "))
	}

	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.message)
}

// Is checks if this error matches the target.
func (e *ChartError) Is(target error) bool {
	if _, ok := target.(*ChartError); ok {
		return true
	}
	return e.baseError.Is(target)
}

// -----------------------------------------------------------------------------
// Semantic Errors
// -----------------------------------------------------------------------------

// ValidationError represents invalid input.
//
// Example:
//
//	err := errors.NewValidationError("seat count must be in [1, 8]")
//	err = err.WithField("count").WithValue(9)
type ValidationError struct {
	baseError
	Field string
	Value any
}

// NewValidationError creates a new ValidationError.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{
		baseError: baseError{
			message:    message,
			severity:   SeverityWarning,
			retryable:  false,
			userFacing: true,
		},
	}
}

// WithField adds a field name to the error context.
func (e *ValidationError) WithField(field string) *ValidationError {
	e.Field = field
	return e
}

// WithValue adds the invalid value to the error context.
func (e *ValidationError) WithValue(value any) *ValidationError {
	e.Value = value
	return e
}

// WithCause adds a cause to the error.
func (e *ValidationError) WithCause(cause error) *ValidationError {
	e.cause = cause
	return e
}

// Error returns the formatted error message.
func (e *ValidationError) Error() string {
	var parts []string
	if e.Field != "" {
		parts = append(parts, fmt.Sprintf("field=%s", e.Field))
	}
	if e.Value != nil {
		parts = append(parts, fmt.Sprintf("value=%v", e.Value))
	}

	prefix := "validation error"
	if len(parts) > 0 {
		prefix = fmt.Sprintf("validation error [%s]", strings.Join(parts, ", "))
	}

	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.message)
}

// Is checks if this error matches the target.
func (e *ValidationError) Is(target error) bool {
	if _, ok := target.(*ValidationError); ok {
		return true
	}
	if target == ErrInvalidInput {
		return true
	}
	return e.baseError.Is(target)
}

// OutOfRangeError reports a grid coordinate outside the grid. Validated
// requests never produce one, so seeing it means a caller broke the contract.
//
// Example:
//
//	err := errors.NewOutOfRangeError(20, 0, 20, 8)
//	fmt.Println(err) // "seat (20, 0) out of range for 20x8 grid"
type OutOfRangeError struct {
	baseError
	Row  int
	Col  int
	Rows int
	Cols int
}

// NewOutOfRangeError creates a new OutOfRangeError.
func NewOutOfRangeError(row, col, rows, cols int) *OutOfRangeError {
	return &OutOfRangeError{
		baseError: baseError{
			message:    fmt.Sprintf("seat (%d, %d) out of range for %dx%d grid", row, col, rows, cols),
			severity:   SeverityError,
			retryable:  false,
			userFacing: false,
		},
		Row:  row,
		Col:  col,
		Rows: rows,
		Cols: cols,
	}
}

// Is checks if this error matches the target.
func (e *OutOfRangeError) Is(target error) bool {
	if _, ok := target.(*OutOfRangeError); ok {
		return true
	}
	if target == ErrOutOfRange {
		return true
	}
	return e.baseError.Is(target)
}

// ContentionError reports that an optimistic update lost every race within
// its retry budget.
//
// Example:
//
//	err := errors.NewContentionError("optimistic", 64)
//	fmt.Println(err) // "contention error: optimistic gave up after 64 attempts"
type ContentionError struct {
	baseError
	Strategy string
	Attempts int
}

// NewContentionError creates a new ContentionError.
func NewContentionError(strategy string, attempts int) *ContentionError {
	return &ContentionError{
		baseError: baseError{
			message:    strategy,
			severity:   SeverityWarning,
			retryable:  true, // The next attempt may see less contention
			userFacing: true,
		},
		Strategy: strategy,
		Attempts: attempts,
	}
}

// Error returns the formatted error message.
func (e *ContentionError) Error() string {
	return fmt.Sprintf("contention error: %s gave up after %d attempts", e.Strategy, e.Attempts)
}

// Is checks if this error matches the target.
func (e *ContentionError) Is(target error) bool {
	if _, ok := target.(*ContentionError); ok {
		return true
	}
	if target == ErrContentionExhausted {
		return true
	}
	return e.baseError.Is(target)
}

// -----------------------------------------------------------------------------
// Error Classification Helpers
// -----------------------------------------------------------------------------

// IsRetryable returns true if the error represents a transient condition
// that may succeed on retry.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}

	var seatbookErr SeatbookError
	if As(err, &seatbookErr) {
		return seatbookErr.IsRetryable()
	}

	return Is(err, ErrContentionExhausted)
}

// IsUserFacing returns true if the error message is safe to display to end users.
//
// Example:
//
//	if errors.IsUserFacing(err) {
//	    fmt.Fprintln(os.Stderr, err)
//	} else {
//	    fmt.Fprintln(os.Stderr, "internal error")
//	    logger.Error("internal error", "error", err.Error())
//	}
func IsUserFacing(err error) bool {
	if err == nil {
		return false
	}

	var seatbookErr SeatbookError
	if As(err, &seatbookErr) {
		return seatbookErr.IsUserFacing()
	}
	return false
}

// GetSeverity returns the severity level of the error.
// Returns SeverityError for errors that don't implement SeatbookError.
func GetSeverity(err error) Severity {
	if err == nil {
		return SeverityDebug
	}

	var seatbookErr SeatbookError
	if As(err, &seatbookErr) {
		return seatbookErr.Severity()
	}

	return SeverityError
}

// -----------------------------------------------------------------------------
// Convenience Constructors
// -----------------------------------------------------------------------------

// Wrap wraps an error with additional context message.
// Unlike fmt.Errorf with %w, a nil err stays nil.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with a formatted context message.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}
