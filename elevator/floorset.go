package elevator

import "sort"

// FloorSet is the set of floors an elevator still has to visit.
// The zero value is not usable; create sets with NewFloorSet.
type FloorSet map[int]bool

func NewFloorSet(floors ...int) FloorSet {
	fs := make(FloorSet, len(floors))
	for _, f := range floors {
		fs[f] = true
	}
	return fs
}

func (fs FloorSet) Has(floor int) bool { return fs[floor] }

func (fs FloorSet) Add(floor int) { fs[floor] = true }

func (fs FloorSet) Remove(floor int) { delete(fs, floor) }

func (fs FloorSet) Empty() bool { return len(fs) == 0 }

func (fs FloorSet) Clone() FloorSet {
	clone := make(FloorSet, len(fs))
	for f := range fs {
		clone[f] = true
	}
	return clone
}

// Above reports whether any stop lies strictly above floor.
func (fs FloorSet) Above(floor int) bool {
	for f := range fs {
		if f > floor {
			return true
		}
	}
	return false
}

// Below reports whether any stop lies strictly below floor.
func (fs FloorSet) Below(floor int) bool {
	for f := range fs {
		if f < floor {
			return true
		}
	}
	return false
}

// Sorted returns the stops in ascending order.
func (fs FloorSet) Sorted() []int {
	floors := make([]int, 0, len(fs))
	for f := range fs {
		floors = append(floors, f)
	}
	sort.Ints(floors)
	return floors
}

// Equal reports whether both sets hold the same floors.
func (fs FloorSet) Equal(other FloorSet) bool {
	if len(fs) != len(other) {
		return false
	}
	for f := range fs {
		if !other[f] {
			return false
		}
	}
	return true
}
