// Package chart persists a seating grid between seatbook invocations.
//
// The seat chart is a text file with one line per row. Each seat is written
// as R (reserved) or E (empty) and seats are separated by commas:
//
//	R,R,E,E,E,E,E,E
//	E,E,E,E,E,E,E,E
//
// Saves replace the file atomically: the chart is written to a temporary file
// in the same directory, synced, and renamed over the old one.
//
// Concurrent seatbook processes serialize through [Store.Lock], an exclusive
// advisory lock on a sidecar "<chart>.lock" file held for the whole
// load, execute and save cycle. The lock is a no-op on platforms without
// fcntl locks.
package chart
