package sim

import (
	"math/rand"
)

// GeneratePassengers creates n random passengers bound to the elevator's
// building and registers each one's call at its start floor. IDs run 0..n-1.
// Deterministic given a seeded rng.
func GeneratePassengers(n int, e *Elevator, rng *rand.Rand) ([]*Passenger, error) {
	return generatePassengers(0, n, e, rng)
}

// generatePassengers is GeneratePassengers with an explicit first ID, so
// scenario building can append random passengers after explicit trips.
func generatePassengers(firstID, n int, e *Elevator, rng *rand.Rand) ([]*Passenger, error) {
	passengers := make([]*Passenger, 0, n)
	for i := 0; i < n; i++ {
		start, target, err := RandomTrip(e.MaxFloor(), rng)
		if err != nil {
			return nil, err
		}
		p, err := NewPassenger(firstID+i, e.MaxFloor(), start, target)
		if err != nil {
			return nil, err
		}
		if err := e.RegisterCall(p.StartFloor); err != nil {
			return nil, err
		}
		passengers = append(passengers, p)
	}
	return passengers, nil
}
