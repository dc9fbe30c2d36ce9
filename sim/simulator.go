// sim/simulator.go
package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// completionMarker is the final event-log entry of every run.
const completionMarker = "All passengers arrived at their destinations"

// Simulator drives one elevator run. Per tick it lets arrived passengers
// out, boards waiting ones, and advances the car one floor along the scan.
// It owns the canonical passenger collection; the elevator only references
// boarded passengers.
type Simulator struct {
	Elevator   *Elevator
	Passengers []*Passenger
	Metrics    *Metrics

	// OnTick, when set, receives a snapshot of the car after every completed
	// tick. Snapshots are detached copies, safe to retain.
	OnTick func(Snapshot)
}

// NewSimulator creates a driver for the given car and passenger collection.
func NewSimulator(e *Elevator, passengers []*Passenger) *Simulator {
	return &Simulator{
		Elevator:   e,
		Passengers: passengers,
		Metrics:    NewMetrics(),
	}
}

// Run executes the tick loop until every passenger has finished, then parks
// the car and appends the completion marker. With zero passengers the loop
// body never executes and the marker is the only log entry.
//
// A Step failure means the driver's own bookkeeping is broken; it is
// propagated, not retried.
func (s *Simulator) Run() error {
	e := s.Elevator
	for e.PendingDemand() > 0 {
		for _, p := range s.Passengers {
			switch {
			case p.InElevator() && p.HasArrived(e.Floor()):
				e.Exit(p)
				if p.Finished() {
					s.Metrics.Exits++
				}
			case p.IsWaiting():
				e.Board(p)
				if p.InElevator() {
					s.Metrics.Boardings++
				}
			}
		}
		if n := e.OnboardCount(); n > s.Metrics.PeakOnboard {
			s.Metrics.PeakOnboard = n
		}

		// Boarding and exits may have consumed the last of the demand;
		// re-check before stepping so Step is never called on an idle system.
		if e.PendingDemand() == 0 {
			e.Park()
			break
		}
		if err := e.Step(); err != nil {
			return fmt.Errorf("advancing car: %w", err)
		}
		s.Metrics.Moves++
		s.Metrics.Ticks++
		if s.OnTick != nil {
			s.OnTick(e.Snapshot())
		}
	}
	s.Metrics.DoorCycles = e.DoorCycles()
	e.Log().Appendf(completionMarker)
	logrus.Infof("Run complete: %d passengers delivered in %d ticks", s.Metrics.Exits, s.Metrics.Ticks)
	return nil
}

// Simulate is the external entry point: build a building, generate numPeople
// random passengers, run to completion, and return the final elevator state
// including its full event log. capacity 0 means DefaultCapacity.
func Simulate(numPeople, numFloors, capacity int, seed int64) (*Elevator, error) {
	e, err := NewElevator(numFloors, capacity)
	if err != nil {
		return nil, err
	}
	rng := SimulationKey(seed).Rand(SubsystemTrips)
	passengers, err := GeneratePassengers(numPeople, e, rng)
	if err != nil {
		return nil, err
	}
	s := NewSimulator(e, passengers)
	if err := s.Run(); err != nil {
		return nil, err
	}
	return e, nil
}
