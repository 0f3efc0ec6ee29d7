package strategy

import (
	"testing"
	"time"

	"github.com/Iron-Ham/seatbook/internal/reservation"
	"github.com/Iron-Ham/seatbook/internal/seating"
)

func TestRowLockIndependentRows(t *testing.T) {
	s := NewRowLock(seating.Default())
	row0 := mustRequest(t, reservation.Book, reservation.Contiguous, 0, 0, 2)
	row1 := mustRequest(t, reservation.Book, reservation.Contiguous, 1, 0, 2)

	// Hold row 0 as if a long request were running there.
	s.rows[0].Lock()

	other := make(chan reservation.Outcome, 1)
	go func() {
		out, _ := s.Execute(row1)
		other <- out
	}()

	select {
	case out := <-other:
		if !out.Applied {
			t.Error("booking on a different row should apply")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("request on row 1 blocked behind row 0")
	}

	same := make(chan reservation.Outcome, 1)
	go func() {
		out, _ := s.Execute(row0)
		same <- out
	}()

	select {
	case <-same:
		t.Fatal("request on row 0 ran while row 0 was locked")
	case <-time.After(50 * time.Millisecond):
	}

	s.rows[0].Unlock()

	select {
	case out := <-same:
		if !out.Applied {
			t.Error("booking on row 0 should apply once the row is free")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("request on row 0 never completed")
	}
}

func TestRowLockSizedFromGrid(t *testing.T) {
	g, _ := seating.New(3, 4)
	s := NewRowLock(g)
	if len(s.rows) != 3 {
		t.Errorf("lock table has %d rows, want 3", len(s.rows))
	}

	// Each instance owns its locks.
	other := NewRowLock(seating.Default())
	req := mustRequest(t, reservation.Book, reservation.Contiguous, 0, 0, 1)
	s.rows[0].Lock()
	defer s.rows[0].Unlock()

	done := make(chan struct{})
	go func() {
		_, _ = other.Execute(req)
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("row locks leaked between RowLock instances")
	}
}

func TestRowLockSnapshotWaitsForRows(t *testing.T) {
	s := NewRowLock(seating.Default())
	s.rows[7].Lock()

	done := make(chan *seating.Grid, 1)
	go func() { done <- s.Snapshot() }()

	select {
	case <-done:
		t.Fatal("Snapshot() returned while a row was locked")
	case <-time.After(50 * time.Millisecond):
	}

	s.rows[7].Unlock()
	select {
	case g := <-done:
		if g.Rows() != seating.DefaultRows {
			t.Errorf("snapshot rows = %d", g.Rows())
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Snapshot() never completed")
	}
}
