// Package strategy serializes concurrent reservation requests against one
// shared seating grid.
//
// Three interchangeable implementations of [Executor] are provided:
//
//   - [GridLock] ("lock") holds one mutex around every request.
//   - [RowLock] ("row-lock") holds one mutex per row, so requests for
//     different rows proceed in parallel.
//   - [Optimistic] ("optimistic") keeps an immutable grid behind an atomic
//     pointer, computes each result on a private copy, and publishes it with
//     compare-and-swap, retrying when another writer won.
//
// All three produce the same grid for the same sequence of requests; they
// differ only in how concurrent callers wait. None of them queue fairly and
// none support cancelling a request once submitted.
//
// # Ownership
//
// [New] takes ownership of the grid passed to it. Callers read state through
// [Executor.Snapshot], which always returns a private copy.
//
// # Errors
//
// Seats that cannot be booked or cancelled come back as an Outcome with
// Applied set to false. Only contract violations (coordinates outside the
// grid) and, for the optimistic strategy, an exhausted retry budget are
// errors. Both are wrapped in a *errors.ReservationError carrying the
// strategy, row and request ID.
package strategy
