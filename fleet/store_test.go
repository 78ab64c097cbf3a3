package fleet

import (
	"sync"
	"testing"
	"time"

	"elevatordispatch/dispatch"
	"elevatordispatch/elevator"
)

func TestNewFleetIsIdleAtGround(t *testing.T) {
	s := New(3)
	if s.Size() != 3 {
		t.Fatalf("Size() = %d, want 3", s.Size())
	}
	for i, e := range s.Snapshot() {
		if !e.Free() || e.Floor != 0 {
			t.Errorf("elevator %d = %v, want free at floor 0", i, e)
		}
	}
}

func TestTryAssignCommits(t *testing.T) {
	s := New(1)
	i, ok := s.TryAssign(dispatch.Request{From: 3, To: 5})
	if !ok || i != 0 {
		t.Fatalf("TryAssign = (%d, %v), want (0, true)", i, ok)
	}
	e := s.Snapshot()[0]
	if !e.Stops.Equal(elevator.NewFloorSet(3, 5)) {
		t.Errorf("stops after assign = %v, want {3 5}", e.Stops.Sorted())
	}
}

func TestTryAssignLeavesFleetUntouchedOnFailure(t *testing.T) {
	s := New(1)
	s.Update(func(fleet []elevator.Elevator) []elevator.Elevator {
		fleet[0] = elevator.New(1, 10)
		return fleet
	})
	before := s.Snapshot()

	i, ok := s.TryAssign(dispatch.Request{From: 12, To: 9})
	if ok || i != dispatch.NoCandidate {
		t.Fatalf("TryAssign = (%d, %v), want (NoCandidate, false)", i, ok)
	}
	after := s.Snapshot()
	if !after[0].Equal(before[0]) {
		t.Errorf("failed assign mutated the fleet: %v -> %v", before[0], after[0])
	}
}

func TestSnapshotIsIsolatedFromLaterCommits(t *testing.T) {
	s := New(1)
	before := s.Snapshot()
	s.TryAssign(dispatch.Request{From: 3, To: 5})
	if !before[0].Free() {
		t.Errorf("earlier snapshot changed after a commit: %v", before[0])
	}
}

func TestStepAdvancesWholeFleet(t *testing.T) {
	s := New(3)
	s.Update(func(fleet []elevator.Elevator) []elevator.Elevator {
		fleet[0] = elevator.New(2, 0)
		fleet[1] = elevator.New(7, 6)
		fleet[2] = elevator.New(2, 3, 4)
		return fleet
	})
	s.Step()
	want := []elevator.Elevator{
		elevator.New(1, 0),
		elevator.New(6),
		elevator.New(3, 4),
	}
	for i, e := range s.Snapshot() {
		if !e.Equal(want[i]) {
			t.Errorf("elevator %d after step = %v, want %v", i, e, want[i])
		}
	}
}

func TestChangedSignalsOnCommit(t *testing.T) {
	s := New(1)
	changed := s.Changed()
	s.Step()
	select {
	case <-changed:
	case <-time.After(time.Second):
		t.Fatal("commit did not close the change channel")
	}

	// A channel taken after the commit must still be open.
	select {
	case <-s.Changed():
		t.Fatal("fresh change channel was already closed")
	default:
	}
}

func TestConcurrentStepAndAssign(t *testing.T) {
	s := New(4)
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			s.Step()
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			s.TryAssign(dispatch.Request{From: i % 8, To: (i + 3) % 8})
			s.Snapshot()
		}
	}()
	wg.Wait()
	if s.Size() != 4 {
		t.Errorf("fleet size changed under concurrency: %d", s.Size())
	}
}
