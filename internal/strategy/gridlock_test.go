package strategy

import (
	"testing"

	"github.com/Iron-Ham/seatbook/internal/reservation"
)

func TestGridLockReleasesLockOnPanic(t *testing.T) {
	// A nil grid makes the engine panic while the lock is held.
	s := NewGridLock(nil)
	req := mustRequest(t, reservation.Book, reservation.Contiguous, 0, 0, 1)

	func() {
		defer func() {
			if recover() == nil {
				t.Fatal("Execute() on a nil grid should panic")
			}
		}()
		_, _ = s.Execute(req)
	}()

	if !s.mu.TryLock() {
		t.Fatal("grid lock still held after a panicking request")
	}
	s.mu.Unlock()
}
