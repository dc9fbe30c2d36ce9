// Tracks run-wide statistics for final reporting.

package sim

import (
	"fmt"
	"time"
)

// Metrics aggregates statistics about one simulation run. Useful for
// comparing dispatch behavior across seeds and scenarios.
type Metrics struct {
	Boardings   int // passengers admitted into the car
	Exits       int // passengers delivered to their target floor
	Moves       int // single-floor car movements
	DoorCycles  int // completed open/close door pairs
	PeakOnboard int // max simultaneous passengers in the car
	Ticks       int // tick-loop iterations
}

// NewMetrics creates a zeroed Metrics.
func NewMetrics() *Metrics {
	return &Metrics{}
}

// Print displays the aggregated metrics at the end of a run.
func (m *Metrics) Print(started time.Time) {
	fmt.Println("=== Simulation Metrics ===")
	fmt.Printf("Passengers delivered : %d\n", m.Exits)
	fmt.Printf("Boardings            : %d\n", m.Boardings)
	fmt.Printf("Car moves            : %d\n", m.Moves)
	fmt.Printf("Door cycles          : %d\n", m.DoorCycles)
	fmt.Printf("Peak onboard         : %d\n", m.PeakOnboard)
	fmt.Printf("Ticks                : %d\n", m.Ticks)
	fmt.Printf("Wall time            : %v\n", time.Since(started))
}
