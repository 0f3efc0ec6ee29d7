// Package logging provides structured logging for seatbook.
//
// It wraps log/slog with a JSON handler. Logs go to {dir}/seatbook.log, or to
// stderr when no directory is configured. Logging is off unless enabled in
// the configuration; commands then receive [NopLogger].
//
// Child loggers carry persistent context:
//
//	logger := base.WithCommand("book").WithStrategy("row-lock").WithRequest(req.ID())
//	logger.Info("request applied", "seats", out.Seats)
//
// Output:
//
//	{"time":"...","level":"INFO","msg":"request applied","command":"book","strategy":"row-lock","request_id":"...","seats":[3,2]}
//
// Every invocation appends to the same file. [NewLoggerWithRotation] caps its
// size and keeps a few numbered backups (seatbook.log.1 is the newest).
package logging
