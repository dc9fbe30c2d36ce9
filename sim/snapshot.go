package sim

import (
	"github.com/tiendc/go-deepcopy"
)

// Snapshot is a detached copy of the observable car state at one tick.
// Observers receive snapshots, never the live car, so they cannot perturb a
// run.
type Snapshot struct {
	Floor       int
	Direction   Direction
	TargetFloor int
	DoorsOpened bool
	OnboardIDs  []int // IDs of onboard passengers in boarding order
	FloorCalls  []int // waiting-call counter per floor
	Pending     int   // waiting calls + onboard count
}

// Snapshot captures the current car state. All reference fields are
// deep-copied.
func (e *Elevator) Snapshot() Snapshot {
	ids := make([]int, len(e.onboard))
	for i, p := range e.onboard {
		ids[i] = p.ID
	}
	live := Snapshot{
		Floor:       e.floor,
		Direction:   e.direction,
		TargetFloor: e.targetFloor,
		DoorsOpened: e.doorsOpened,
		OnboardIDs:  ids,
		FloorCalls:  e.floorCalls,
		Pending:     e.PendingDemand(),
	}
	var snap Snapshot
	if err := deepcopy.Copy(&snap, &live); err != nil {
		panic(err)
	}
	return snap
}
