// Package sim provides a single-car elevator simulation driven by a
// SCAN-style dispatch policy.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - passenger.go: trip intent (start, target, direction) and the
//     waiting -> in car -> finished lifecycle
//   - elevator.go: the car state machine, boarding rules, and the scan step
//   - simulator.go: the tick loop (exit, board, move) and the Simulate
//     entry point
//
// # Architecture
//
// The car serves all demand in its current direction before reversing.
// Demand is the union of onboard passenger targets and registered floor
// calls. The Simulator owns the canonical passenger collection and is the
// only caller of Step; the Elevator owns the call counters, the onboard
// roster, and the event log.
//
// Everything is single-threaded and synchronous: one tick at a time, no
// goroutines. A front-end driving the simulation concurrently must treat a
// whole tick as a critical section.
package sim
