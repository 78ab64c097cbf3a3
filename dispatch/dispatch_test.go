package dispatch

import (
	"testing"

	"elevatordispatch/elevator"
)

func exampleFleet() []elevator.Elevator {
	return []elevator.Elevator{
		elevator.New(1),
		elevator.New(2, 0),
		elevator.New(7, 4),
		elevator.New(2, 3, 4),
	}
}

func TestSearchExamples(t *testing.T) {
	testCases := []struct {
		name string
		req  Request
		want int
	}{
		{name: "down elevator already at the pickup", req: Request{From: 2, To: 0}, want: 1},
		{name: "free elevator at the pickup beats a busy one", req: Request{From: 1, To: 0}, want: 0},
		{name: "up elevator at the pickup", req: Request{From: 2, To: 4}, want: 3},
		{name: "down elevator passing the pickup", req: Request{From: 5, To: 4}, want: 2},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Search(exampleFleet(), tc.req); got != tc.want {
				t.Errorf("Search(%v) = %d, want %d", tc.req, got, tc.want)
			}
		})
	}
}

func TestSearchNoCandidate(t *testing.T) {
	fleet := []elevator.Elevator{
		elevator.New(1, 10),
		elevator.New(20, 30),
	}
	// Both elevators are going up; the delivery lies back past the
	// pickup, so neither can take the trip without a detour.
	if got := Search(fleet, Request{From: 12, To: 9}); got != NoCandidate {
		t.Errorf("Search = %d, want NoCandidate", got)
	}

	if got := Search(nil, Request{From: 0, To: 1}); got != NoCandidate {
		t.Errorf("Search over an empty fleet = %d, want NoCandidate", got)
	}
}

func TestSearchTieBreaksToLowestIndex(t *testing.T) {
	fleet := []elevator.Elevator{
		elevator.New(0),
		elevator.New(4),
	}
	if got := Search(fleet, Request{From: 2, To: 3}); got != 0 {
		t.Errorf("Search = %d, want 0 on a distance tie", got)
	}
}

// The contract of Search: the winner is on the way, and nobody eligible
// is strictly closer to the pickup.
func TestSearchPostcondition(t *testing.T) {
	fleets := [][]elevator.Elevator{
		exampleFleet(),
		{elevator.New(0), elevator.New(0, 5), elevator.New(9, 3)},
		{elevator.New(6, 8, 9), elevator.New(2)},
	}
	requests := []Request{
		{From: 0, To: 5}, {From: 2, To: 0}, {From: 3, To: 3},
		{From: 7, To: 9}, {From: 8, To: 1}, {From: 4, To: 6},
	}

	for _, fleet := range fleets {
		for _, req := range requests {
			i := Search(fleet, req)
			if i == NoCandidate {
				for j, e := range fleet {
					if e.Free() {
						t.Errorf("Search(%v) found nothing but elevator %d is free", req, j)
					}
				}
				continue
			}
			if !fleet[i].IsOnWay(req.From, req.To) {
				t.Errorf("Search(%v) chose %d which is not on the way", req, i)
			}
			for j, e := range fleet {
				if e.IsOnWay(req.From, req.To) && distance(e.Floor, req.From) < distance(fleet[i].Floor, req.From) {
					t.Errorf("Search(%v) chose %d at distance %d, but %d is at distance %d",
						req, i, distance(fleet[i].Floor, req.From), j, distance(e.Floor, req.From))
				}
			}
		}
	}
}
