package seating

// Seat is a single reservable cell in a Grid. The zero value is an
// unreserved seat.
type Seat struct {
	reserved bool
}

// IsReserved reports whether the seat is currently booked.
func (s Seat) IsReserved() bool {
	return s.reserved
}

// Reserve marks the seat as booked.
func (s *Seat) Reserve() {
	s.reserved = true
}

// Cancel marks the seat as available again.
func (s *Seat) Cancel() {
	s.reserved = false
}

// ReservedSeat returns a seat that is already booked. Useful when building
// snapshots by hand.
func ReservedSeat() Seat {
	return Seat{reserved: true}
}
