package sim

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario is a reproducible simulation setup, loaded from YAML via
// LoadScenario. Explicit trips come first, then Passengers random ones; IDs
// are sequential from 0 across both.
type Scenario struct {
	Floors     int        `yaml:"floors"`
	Capacity   int        `yaml:"capacity,omitempty"`   // 0 = DefaultCapacity
	Seed       int64      `yaml:"seed"`
	Passengers int        `yaml:"passengers,omitempty"` // random trips to generate
	Trips      []TripSpec `yaml:"trips,omitempty"`      // explicit trips
}

// TripSpec pins one passenger's trip.
type TripSpec struct {
	Start  int `yaml:"start"`
	Target int `yaml:"target"`
}

// LoadScenario reads and validates a scenario YAML file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario: %w", err)
	}
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parsing scenario: %w", err)
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

// Validate checks the scenario for internal consistency.
func (sc *Scenario) Validate() error {
	if sc.Floors < 2 {
		return errTooFewFloors
	}
	if sc.Capacity < 0 {
		return &ValidationError{Msg: fmt.Sprintf("capacity must not be negative, got %d", sc.Capacity)}
	}
	if sc.Passengers < 0 {
		return &ValidationError{Msg: fmt.Sprintf("passengers must not be negative, got %d", sc.Passengers)}
	}
	for i, t := range sc.Trips {
		if t.Start < 0 || t.Start >= sc.Floors || t.Target < 0 || t.Target >= sc.Floors {
			return &ValidationError{Msg: fmt.Sprintf("trips[%d]: %d -> %d outside floors [0, %d]", i, t.Start, t.Target, sc.Floors-1)}
		}
		if t.Start == t.Target {
			return &ValidationError{Msg: fmt.Sprintf("trips[%d]: start and target are both floor %d", i, t.Start)}
		}
	}
	return nil
}

// Build constructs the elevator and the passenger collection the scenario
// describes, with every passenger's call registered at its start floor.
func (sc *Scenario) Build() (*Elevator, []*Passenger, error) {
	if err := sc.Validate(); err != nil {
		return nil, nil, err
	}
	e, err := NewElevator(sc.Floors, sc.Capacity)
	if err != nil {
		return nil, nil, err
	}
	passengers := make([]*Passenger, 0, len(sc.Trips)+sc.Passengers)
	for i, t := range sc.Trips {
		p, err := NewPassenger(i, sc.Floors, t.Start, t.Target)
		if err != nil {
			return nil, nil, err
		}
		if err := e.RegisterCall(p.StartFloor); err != nil {
			return nil, nil, err
		}
		passengers = append(passengers, p)
	}
	if sc.Passengers > 0 {
		rng := SimulationKey(sc.Seed).Rand(SubsystemTrips)
		random, err := generatePassengers(len(sc.Trips), sc.Passengers, e, rng)
		if err != nil {
			return nil, nil, err
		}
		passengers = append(passengers, random...)
	}
	return e, passengers, nil
}
