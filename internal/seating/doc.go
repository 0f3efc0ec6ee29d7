// Package seating models the seat map of a single flight.
//
// A [Grid] is a rectangular arrangement of [Seat] values, 20 rows by 8 seats
// unless sized otherwise. Coordinates are zero-based; anything outside the
// grid yields an out-of-range error rather than a panic.
//
// Grids can be rebuilt from a snapshot of reserved flags ([FromSnapshot]) and
// exported again ([Grid.Snapshot]). Both directions copy, so a grid never
// shares seat storage with the caller.
package seating
