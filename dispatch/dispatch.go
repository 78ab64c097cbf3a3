// Package dispatch selects which elevator should serve a pickup
// request. Search is a pure function over a fleet snapshot; committing
// the result is the fleet store's job.
package dispatch

import (
	"fmt"

	"elevatordispatch/elevator"
)

// Request is one pickup: a passenger at From wants to travel To.
// From == To is accepted and treated as a trivial trip.
type Request struct {
	From int
	To   int
}

func (r Request) String() string {
	return fmt.Sprintf("(%d -> %d)", r.From, r.To)
}

// NoCandidate is returned by Search when no elevator is eligible.
const NoCandidate = -1

// Search returns the index of the elevator that should serve the
// request: among the elevators that are on the way for it, the one
// nearest the pickup floor, with ties broken by the lowest index so
// results are reproducible. Returns NoCandidate when no elevator is
// eligible right now.
func Search(fleet []elevator.Elevator, req Request) int {
	best := NoCandidate
	bestCost := 0
	for i, e := range fleet {
		if !e.IsOnWay(req.From, req.To) {
			continue
		}
		cost := distance(e.Floor, req.From)
		if best == NoCandidate || cost < bestCost {
			best = i
			bestCost = cost
		}
	}
	return best
}

func distance(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}
