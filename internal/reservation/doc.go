// Package reservation holds the seat-selection algorithms and the request
// type that drives them.
//
// A [Request] is validated once, at construction, against the dimensions of
// the grid it targets. The engine functions assume a valid request and
// report coordinates outside the grid as an out-of-range error, never as a
// seat that is merely unavailable.
//
// Two selection policies exist:
//
//   - Contiguous: reserve exactly the seats [col, col+count-1] or nothing.
//   - Nearest: reserve count free seats as close to the anchor column as
//     possible, walking left to the aisle first and then right.
//
// Cancellation always uses the contiguous range and requires every seat in
// it to be reserved.
//
// [Execute] mutates a grid in place and is meant to run inside a critical
// section. [Apply] is the copy-on-write form used by lock-free callers: it
// never mutates its input.
package reservation
