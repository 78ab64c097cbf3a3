// Package elevator holds the single-elevator state model: where an
// elevator is, which floors it still has to visit, which direction it is
// committed to, and which requests it can take without a detour.
//
// Elevator is a value type. Step and AddTrip return the successor state
// and never mutate the stop set they were called on, so older copies
// (snapshots) stay valid. Floors are non-negative integers.
package elevator

import (
	"fmt"
	"strconv"
	"strings"
)

// Direction is the travel direction an elevator is committed to.
type Direction int

const (
	Down Direction = iota - 1
	Idle
	Up
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Idle:
		return "idle"
	default:
		return "undefined"
	}
}

// NoPivot marks the absence of a pending pickup leg.
const NoPivot = -1

// Elevator is the state of one elevator between two time steps.
//
// Pivot is set while the elevator is running the first leg of a trip
// whose delivery lies back past the pickup: it holds the pickup floor,
// and no stop other than the pivot is served until the pivot is reached.
type Elevator struct {
	Floor int
	Dir   Direction
	Stops FloorSet
	Pivot int
}

// New returns an elevator resting at floor with the given pending stops.
// The direction is derived from the stops, which must all lie strictly
// on one side of floor; a mixed or floor-containing set is a caller bug.
func New(floor int, stops ...int) Elevator {
	fs := NewFloorSet(stops...)
	dir := Idle
	switch {
	case fs.Empty():
	case fs.Above(floor) && !fs.Below(floor) && !fs.Has(floor):
		dir = Up
	case fs.Below(floor) && !fs.Above(floor) && !fs.Has(floor):
		dir = Down
	default:
		panic(fmt.Sprintf("elevator: stops %v do not lie on one side of floor %d", stops, floor))
	}
	return Elevator{Floor: floor, Dir: dir, Stops: fs, Pivot: NoPivot}
}

// Free reports whether the elevator has nothing left to serve.
func (e Elevator) Free() bool { return e.Stops.Empty() }

func (e Elevator) GoingUp() bool { return !e.Free() && e.Dir == Up }

func (e Elevator) GoingDown() bool { return !e.Free() && e.Dir == Down }

// IsOnWay reports whether the elevator can serve a pickup at from with
// delivery at to without reversing or detouring past its commitments.
// A free elevator takes anything. A moving elevator takes the trip only
// if both floors lie ahead in its direction, pickup at or beyond the
// current floor and delivery beyond the pickup. An elevator rushing to
// the pickup of an earlier two-leg trip takes nothing until that leg is
// done.
func (e Elevator) IsOnWay(from, to int) bool {
	if e.Pivot != NoPivot {
		return false
	}
	switch {
	case e.Free():
		return true
	case e.Dir == Up:
		return from >= e.Floor && to > from
	case e.Dir == Down:
		return from <= e.Floor && to < from
	}
	return false
}

// AddTrip commits the elevator to a pickup at from and a delivery at to.
// Callers must only add trips for which IsOnWay holds.
//
// A pickup at the current floor needs no stop. A delivery that lies back
// past the pickup makes the trip two legs: the elevator first commits
// toward the pickup (the pivot) and only then toward the delivery.
func (e Elevator) AddTrip(from, to int) Elevator {
	next := e
	next.Stops = e.Stops.Clone()

	if from == next.Floor {
		if to != next.Floor {
			next.Stops.Add(to)
			if e.Free() {
				next.Dir = directionTo(next.Floor, to)
			}
		}
		return next
	}

	next.Stops.Add(from)
	if to != from {
		next.Stops.Add(to)
	}
	if (from-next.Floor)*(to-from) < 0 {
		next.Pivot = from
		next.Dir = directionTo(next.Floor, from)
	} else if e.Free() {
		next.Dir = directionTo(next.Floor, from)
	}
	return next
}

// Step advances the elevator one discrete time unit: idle elevators stay
// put, moving elevators travel one floor and serve the stop there, if
// any. While a pickup pivot is pending only the pivot floor is served;
// the delivery behind it waits for the second leg.
func (e Elevator) Step() Elevator {
	if e.Free() {
		return e
	}
	next := e
	next.Stops = e.Stops.Clone()
	next.Floor += int(next.Dir)

	if next.Pivot != NoPivot {
		if next.Floor == next.Pivot {
			next.Stops.Remove(next.Floor)
			next.Pivot = NoPivot
			next.Dir = directionToward(next.Floor, next.Stops)
		}
		return next
	}

	next.Stops.Remove(next.Floor)
	if next.Stops.Empty() {
		next.Dir = Idle
	}
	return next
}

// Equal reports whether both states are indistinguishable.
func (e Elevator) Equal(other Elevator) bool {
	return e.Floor == other.Floor && e.Dir == other.Dir &&
		e.Pivot == other.Pivot && e.Stops.Equal(other.Stops)
}

func (e Elevator) String() string {
	stops := e.Stops.Sorted()
	parts := make([]string, len(stops))
	for i, f := range stops {
		parts[i] = strconv.Itoa(f)
	}
	s := fmt.Sprintf("floor %d, %s, stops {%s}", e.Floor, e.Dir, strings.Join(parts, " "))
	if e.Pivot != NoPivot {
		s += fmt.Sprintf(", pickup at %d", e.Pivot)
	}
	return s
}

func directionTo(from, to int) Direction {
	switch {
	case to > from:
		return Up
	case to < from:
		return Down
	}
	return Idle
}

func directionToward(floor int, stops FloorSet) Direction {
	switch {
	case stops.Empty():
		return Idle
	case stops.Above(floor):
		return Up
	default:
		return Down
	}
}
