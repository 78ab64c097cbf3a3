// Package fleet owns the shared, authoritative collection of elevator
// states. All access goes through the Store; every mutation replaces
// the whole fleet in one critical section, so readers always observe a
// fully committed state and the stepper and the assigner cannot
// interleave at floor granularity.
package fleet

import (
	"sync"

	"elevatordispatch/dispatch"
	"elevatordispatch/elevator"
)

// Store holds the fleet behind a single mutex. Elevator values share
// their stop sets with past snapshots, but transitions always clone
// before changing them, so handed-out snapshots stay stable.
type Store struct {
	mu        sync.Mutex
	elevators []elevator.Elevator
	changed   chan struct{}
}

// New creates a store of size idle elevators, all resting at floor 0.
func New(size int) *Store {
	elevators := make([]elevator.Elevator, size)
	for i := range elevators {
		elevators[i] = elevator.New(0)
	}
	return &Store{elevators: elevators, changed: make(chan struct{})}
}

// Size returns the number of elevators in the fleet.
func (s *Store) Size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.elevators)
}

// Snapshot returns a consistent copy of the current fleet.
func (s *Store) Snapshot() []elevator.Elevator {
	s.mu.Lock()
	defer s.mu.Unlock()
	snapshot := make([]elevator.Elevator, len(s.elevators))
	copy(snapshot, s.elevators)
	return snapshot
}

// Update atomically replaces the fleet with transform applied to a copy
// of the current one. The transform must be pure: it may return the
// slice it was given, modified, but must not touch the store.
func (s *Store) Update(transform func([]elevator.Elevator) []elevator.Elevator) {
	s.mu.Lock()
	defer s.mu.Unlock()
	working := make([]elevator.Elevator, len(s.elevators))
	copy(working, s.elevators)
	s.elevators = transform(working)
	s.notify()
}

// Step advances every elevator one time unit as a single atomic replace.
func (s *Store) Step() {
	s.Update(func(fleet []elevator.Elevator) []elevator.Elevator {
		for i, e := range fleet {
			fleet[i] = e.Step()
		}
		return fleet
	})
}

// TryAssign searches the fleet for an elevator that can serve the
// request and, if one is found, commits the trip to it in the same
// critical section. It returns the chosen index and whether the request
// was assigned; on false the fleet is untouched and the request stays
// with the caller for a later retry.
func (s *Store) TryAssign(req dispatch.Request) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := dispatch.Search(s.elevators, req)
	if i == dispatch.NoCandidate {
		return dispatch.NoCandidate, false
	}
	next := make([]elevator.Elevator, len(s.elevators))
	copy(next, s.elevators)
	next[i] = next[i].AddTrip(req.From, req.To)
	s.elevators = next
	s.notify()
	return i, true
}

// Changed returns a channel that is closed by the next fleet commit.
// Capture it before a TryAssign attempt: if the attempt fails, waiting
// on the captured channel cannot miss a commit made in between.
func (s *Store) Changed() <-chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.changed
}

// notify wakes all waiters. Callers hold s.mu.
func (s *Store) notify() {
	close(s.changed)
	s.changed = make(chan struct{})
}
