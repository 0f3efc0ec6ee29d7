package cmd

import (
	"fmt"
	"io"

	"github.com/Iron-Ham/seatbook/internal/config"
	"github.com/Iron-Ham/seatbook/internal/errors"
	"github.com/Iron-Ham/seatbook/internal/logging"
)

// Process exit codes.
const (
	ExitOK      = 0
	ExitError   = 1
	ExitFailure = 2
)

// ErrNotApplied is returned when a request was valid but the seats could not
// be booked or cancelled. The command has already printed FAIL.
var ErrNotApplied = errors.New("request not applied")

// internalErrorMessage replaces the text of errors that are not safe to show.
const internalErrorMessage = "internal error (enable logging.enabled for details)"

// ExitCode maps the error returned by Execute to a process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrNotApplied):
		return ExitFailure
	default:
		return ExitError
	}
}

// Silent reports whether err needs no message beyond what the command
// already printed.
func Silent(err error) bool {
	return errors.Is(err, ErrNotApplied)
}

// Message returns the text shown to the user for err. Classified errors that
// are not user-facing are replaced by a generic message, and retryable ones
// carry a hint.
func Message(err error) string {
	msg := err.Error()
	if isInternal(err) {
		msg = internalErrorMessage
	}
	if errors.IsRetryable(err) {
		msg += "; temporary failure, try again"
	}
	return msg
}

// isInternal reports whether err carries a classification that forbids
// showing it. Unclassified errors such as cobra argument errors are shown.
func isInternal(err error) bool {
	var seatbookErr errors.SeatbookError
	return errors.As(err, &seatbookErr) && !errors.IsUserFacing(err)
}

// Report prints err for the user on w and logs its detail. Silent errors
// print nothing.
func Report(w io.Writer, logger *logging.Logger, err error) {
	if err == nil || Silent(err) {
		return
	}

	severity := errors.GetSeverity(err)
	logAt := logger.Error
	if severity < errors.SeverityError {
		logAt = logger.Warn
	}
	logAt("command failed",
		"error", err.Error(),
		"severity", severity.String(),
		"retryable", errors.IsRetryable(err),
		"internal", isInternal(err),
	)

	fmt.Fprintln(w, "Error:", Message(err))
}

// ReportLogger returns the logger Report should use, built from the loaded
// configuration. It falls back to a no-op logger when the configuration is
// unusable, since that failure is itself what gets reported.
func ReportLogger() *logging.Logger {
	cfg, err := config.Load()
	if err != nil || !cfg.Logging.Enabled {
		return logging.NopLogger()
	}
	logger, err := newLogger(cfg)
	if err != nil {
		return logging.NopLogger()
	}
	return logger
}
