package sim

// Direction is the travel state of the car and the intent of a passenger
// trip. The zero value is Idle.
type Direction int

const (
	Idle Direction = iota
	Up
	Down
)

// Delta returns the per-tick floor displacement for the direction.
func (d Direction) Delta() int {
	switch d {
	case Up:
		return 1
	case Down:
		return -1
	default:
		return 0
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return "idle"
	}
}

// TripDirection returns the direction of travel from start to target.
// Trips are never degenerate, so start == target is not a valid input.
func TripDirection(start, target int) Direction {
	if target > start {
		return Up
	}
	return Down
}
