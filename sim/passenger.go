// Defines the Passenger struct that models an individual trip through the
// building. Tracks the immutable trip intent and the progress flags mutated
// by the elevator as the trip advances.

package sim

import (
	"fmt"
	"math/rand"
)

// Passenger models a single trip: a start floor, a target floor, and the
// direction between them, plus lifecycle flags.
//
// Exactly one of waiting, in the car, or finished holds at any time. The
// flags are package-private and only the Elevator transitions them, so the
// invariant cannot be broken from outside the package.
type Passenger struct {
	ID          int // Unique identifier, allocated by the simulation context
	StartFloor  int
	TargetFloor int
	Direction   Direction

	inElevator bool
	finished   bool
}

// NewPassenger creates a passenger with an explicit trip. floors is the
// total floor count of the building the trip is bound to; valid floors are
// 0..floors-1.
func NewPassenger(id, floors, start, target int) (*Passenger, error) {
	if floors < 2 {
		return nil, errTooFewFloors
	}
	if start < 0 || start >= floors || target < 0 || target >= floors {
		return nil, &ValidationError{Msg: fmt.Sprintf("trip %d -> %d outside floors [0, %d]", start, target, floors-1)}
	}
	if start == target {
		return nil, &ValidationError{Msg: fmt.Sprintf("trip start and target are both floor %d", start)}
	}
	return &Passenger{
		ID:          id,
		StartFloor:  start,
		TargetFloor: target,
		Direction:   TripDirection(start, target),
	}, nil
}

// RandomTrip picks a start and a target floor uniformly with start != target.
// Deterministic given a seeded rng.
func RandomTrip(floors int, rng *rand.Rand) (start, target int, err error) {
	if floors < 2 {
		return 0, 0, errTooFewFloors
	}
	start = rng.Intn(floors)
	// Sample the target from the floors-1 remaining floors.
	target = rng.Intn(floors - 1)
	if target >= start {
		target++
	}
	return start, target, nil
}

// HasArrived reports whether floor is the passenger's target.
func (p *Passenger) HasArrived(floor int) bool {
	return floor == p.TargetFloor
}

// IsWaiting reports whether the passenger is still at the start floor,
// neither in the car nor finished.
func (p *Passenger) IsWaiting() bool {
	return !p.inElevator && !p.finished
}

// InElevator reports whether the passenger is currently in the car.
func (p *Passenger) InElevator() bool {
	return p.inElevator
}

// Finished reports whether the passenger has completed the trip.
func (p *Passenger) Finished() bool {
	return p.finished
}

// markBoarded transitions waiting -> in the car. Called by Elevator.Board.
func (p *Passenger) markBoarded() {
	p.inElevator = true
}

// markArrived transitions in the car -> finished. Called by Elevator.Exit.
func (p *Passenger) markArrived() {
	p.inElevator = false
	p.finished = true
}

func (p *Passenger) String() string {
	return fmt.Sprintf("Passenger %d (%d -> %d, %s)", p.ID, p.StartFloor, p.TargetFloor, p.Direction)
}
