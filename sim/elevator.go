// Implements the Elevator, the single-car state machine at the heart of the
// simulation: floor position, direction, doors, the onboard roster, and
// per-floor waiting-call counters, plus the SCAN step that moves the car.

package sim

import (
	"fmt"
)

// DefaultCapacity is used when the requested capacity is zero.
const DefaultCapacity = 8

// Elevator is the car state machine. It exclusively owns the call counters
// and the onboard roster; passengers are referenced, not owned, while
// boarded. The driver owns the canonical passenger collection.
type Elevator struct {
	maxFloor int // building spans floors 0..maxFloor-1
	capacity int // max concurrent passengers in the car

	floor       int
	direction   Direction
	targetFloor int // floor the current scan leg is heading to
	doorsOpened bool
	doorCycles  int // completed open/close pairs

	onboard    []*Passenger
	floorCalls []int // waiting-call counter per floor, len == maxFloor

	log *EventLog
}

// NewElevator creates an idle car parked at floor 0 with closed doors.
// maxFloor is the number of floors in the building. A capacity of zero means
// DefaultCapacity.
func NewElevator(maxFloor, capacity int) (*Elevator, error) {
	return NewElevatorWithSink(maxFloor, capacity, nil)
}

// NewElevatorWithSink is NewElevator with an explicit event sink. A nil sink
// defaults to logrus debug output.
func NewElevatorWithSink(maxFloor, capacity int, sink EventSink) (*Elevator, error) {
	if maxFloor < 2 {
		return nil, errTooFewFloors
	}
	if capacity < 0 {
		return nil, &ValidationError{Msg: fmt.Sprintf("capacity must not be negative, got %d", capacity)}
	}
	if capacity == 0 {
		capacity = DefaultCapacity
	}
	return &Elevator{
		maxFloor:   maxFloor,
		capacity:   capacity,
		direction:  Idle,
		floorCalls: make([]int, maxFloor),
		log:        NewEventLog(sink),
	}, nil
}

// MaxFloor returns the building's floor count.
func (e *Elevator) MaxFloor() int { return e.maxFloor }

// Capacity returns the maximum number of concurrent passengers.
func (e *Elevator) Capacity() int { return e.capacity }

// Floor returns the car's current floor.
func (e *Elevator) Floor() int { return e.floor }

// Direction returns the car's current travel state.
func (e *Elevator) Direction() Direction { return e.direction }

// TargetFloor returns the floor the current scan leg is heading to.
func (e *Elevator) TargetFloor() int { return e.targetFloor }

// DoorsOpened reports whether the doors are open.
func (e *Elevator) DoorsOpened() bool { return e.doorsOpened }

// DoorCycles returns the number of completed open/close door pairs.
func (e *Elevator) DoorCycles() int { return e.doorCycles }

// OnboardCount returns the number of passengers in the car.
func (e *Elevator) OnboardCount() int { return len(e.onboard) }

// Onboard returns a copy of the onboard roster in boarding order.
func (e *Elevator) Onboard() []*Passenger {
	out := make([]*Passenger, len(e.onboard))
	copy(out, e.onboard)
	return out
}

// CallsAt returns the waiting-call counter for floor, or 0 when floor is
// outside the building.
func (e *Elevator) CallsAt(floor int) int {
	if floor < 0 || floor >= e.maxFloor {
		return 0
	}
	return e.floorCalls[floor]
}

// Log returns the car's event log.
func (e *Elevator) Log() *EventLog { return e.log }

// IsFull reports whether the car is at capacity.
func (e *Elevator) IsFull() bool { return len(e.onboard) >= e.capacity }

// PendingDemand returns the number of waiting calls plus onboard passengers.
// The driver stops the run when it reaches zero.
func (e *Elevator) PendingDemand() int {
	n := len(e.onboard)
	for _, calls := range e.floorCalls {
		n += calls
	}
	return n
}

// RegisterCall records a waiting passenger at floor. Side effect only; the
// car does not move until the driver steps it.
func (e *Elevator) RegisterCall(floor int) error {
	if floor < 0 || floor >= e.maxFloor {
		return &ValidationError{Msg: fmt.Sprintf("call floor %d outside [0, %d]", floor, e.maxFloor-1)}
	}
	e.floorCalls[floor]++
	return nil
}

// OpenDoors and CloseDoors log only on an actual transition, so opened and
// closed entries always pair up in the event log.

// OpenDoors opens the doors if they are closed.
func (e *Elevator) OpenDoors() {
	if e.doorsOpened {
		return
	}
	e.doorsOpened = true
	e.log.Appendf("Doors opened at floor %d", e.floor)
}

// CloseDoors closes the doors if they are open.
func (e *Elevator) CloseDoors() {
	if !e.doorsOpened {
		return
	}
	e.doorsOpened = false
	e.doorCycles++
	e.log.Appendf("Doors closed at floor %d", e.floor)
}

// Board admits a waiting passenger at the car's current floor. It is a
// silent no-op when the passenger is standing on another floor. A full car
// logs a waiting notice and leaves all state unchanged.
//
// A passenger boards when the car already travels their way, or at either
// terminal floor, or at the current leg's target floor. The last three admit
// opposite-direction passengers because the car must reverse there anyway.
// This can cost extra stops on the next leg; it is the policy the simulation
// is specified to have, so keep it.
func (e *Elevator) Board(p *Passenger) {
	if p.StartFloor != e.floor {
		return
	}
	if e.IsFull() {
		e.log.Appendf("Elevator is full. Passenger %d needs to wait.", p.ID)
		return
	}
	if !e.admits(p) {
		return
	}
	e.OpenDoors()
	if e.floorCalls[p.StartFloor] > 0 {
		e.floorCalls[p.StartFloor]--
	}
	e.onboard = append(e.onboard, p)
	p.markBoarded()
	e.log.Appendf("Passenger %d -> %d entered at floor %d", p.StartFloor, p.TargetFloor, e.floor)
}

func (e *Elevator) admits(p *Passenger) bool {
	return e.direction == p.Direction ||
		e.floor == 0 ||
		e.floor == e.maxFloor-1 ||
		e.floor == e.targetFloor
}

// Exit lets a passenger out at their target floor. It is a silent no-op when
// the car is on any other floor or the passenger is not onboard.
func (e *Elevator) Exit(p *Passenger) {
	if p.TargetFloor != e.floor {
		return
	}
	idx := -1
	for i, q := range e.onboard {
		if q == p {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}
	e.OpenDoors()
	e.onboard = append(e.onboard[:idx], e.onboard[idx+1:]...)
	p.markArrived()
	e.log.Appendf("Passenger %d -> %d exited at floor %d", p.StartFloor, p.TargetFloor, e.floor)
}

// Step advances the car exactly one floor along the current scan leg,
// recomputing direction and target when the leg completes:
//
//   - idle: head for the highest demand floor
//   - moving up at or above the highest demand: reverse toward the lowest
//   - moving down at or below the lowest demand: reverse toward the highest
//
// Calling Step with no demand anywhere is a contract violation by the driver
// and returns an OperationError. Step never parks the car; only the driver
// returns it to Idle, via Park.
func (e *Elevator) Step() error {
	hi, lo, ok := e.demandBounds()
	if !ok {
		return &OperationError{Msg: "no pending demand"}
	}

	switch {
	case e.direction == Idle:
		e.targetFloor = hi
		if hi > e.floor {
			e.direction = Up
		} else {
			e.direction = Down
		}
	case e.direction == Up && e.floor >= hi:
		e.targetFloor = lo
		e.direction = Down
	case e.direction == Down && e.floor <= lo:
		e.targetFloor = hi
		e.direction = Up
	}

	// Unreachable given demandBounds, kept as a correctness guard.
	if e.targetFloor < 0 || e.targetFloor >= e.maxFloor {
		return &OperationError{Msg: "target out of bounds"}
	}

	e.CloseDoors()
	e.floor += e.direction.Delta()
	e.log.Appendf("Elevator moved %s to floor %d", e.direction, e.floor)
	return nil
}

// demandBounds returns the highest and lowest demand floors: floors some
// onboard passenger targets, union floors with a registered call. ok is
// false when there is no demand at all.
func (e *Elevator) demandBounds() (hi, lo int, ok bool) {
	hi, lo = -1, e.maxFloor
	for _, p := range e.onboard {
		if p.TargetFloor > hi {
			hi = p.TargetFloor
		}
		if p.TargetFloor < lo {
			lo = p.TargetFloor
		}
	}
	for floor, calls := range e.floorCalls {
		if calls == 0 {
			continue
		}
		if floor > hi {
			hi = floor
		}
		if floor < lo {
			lo = floor
		}
	}
	return hi, lo, hi >= 0
}

// Park closes the doors and returns the car to Idle. The driver calls it
// once global demand reaches zero; Step never goes Idle on its own.
func (e *Elevator) Park() {
	e.CloseDoors()
	e.direction = Idle
}
