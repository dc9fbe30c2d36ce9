package sim

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPassenger_ValidTrip_SetsDirection(t *testing.T) {
	// GIVEN an upward and a downward trip
	up, err := NewPassenger(0, 5, 1, 4)
	require.NoError(t, err)
	down, err := NewPassenger(1, 5, 3, 0)
	require.NoError(t, err)

	// THEN direction matches the sign of target - start
	assert.Equal(t, Up, up.Direction)
	assert.Equal(t, Down, down.Direction)
}

func TestNewPassenger_OneFloor_ValidationError(t *testing.T) {
	// WHEN a passenger is created in a single-floor building
	_, err := NewPassenger(0, 1, 0, 0)

	// THEN it fails with the floors-count ValidationError
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Floors count must be more than 1", verr.Error())
}

func TestNewPassenger_InvalidTrips_Rejected(t *testing.T) {
	cases := []struct {
		name          string
		start, target int
	}{
		{"start below building", -1, 2},
		{"target above building", 0, 5},
		{"degenerate trip", 2, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewPassenger(0, 5, tc.start, tc.target)
			var verr *ValidationError
			assert.True(t, errors.As(err, &verr), "want ValidationError, got %v", err)
		})
	}
}

func TestRandomTrip_StaysInBoundsWithDistinctFloors(t *testing.T) {
	// GIVEN buildings of several sizes
	for _, floors := range []int{2, 5, 10} {
		rng := rand.New(rand.NewSource(42))

		// WHEN many trips are sampled
		for i := 0; i < 200; i++ {
			start, target, err := RandomTrip(floors, rng)
			require.NoError(t, err)

			// THEN both floors are valid and distinct
			if start < 0 || start >= floors {
				t.Fatalf("floors=%d: start %d out of range", floors, start)
			}
			if target < 0 || target >= floors {
				t.Fatalf("floors=%d: target %d out of range", floors, target)
			}
			if start == target {
				t.Fatalf("floors=%d: degenerate trip %d -> %d", floors, start, target)
			}
		}
	}
}

func TestRandomTrip_OneFloor_ValidationError(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	_, _, err := RandomTrip(1, rng)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestPassenger_Lifecycle_ExactlyOneStateHolds(t *testing.T) {
	// GIVEN a fresh passenger
	p, err := NewPassenger(0, 5, 0, 3)
	require.NoError(t, err)

	// THEN it starts waiting
	assert.True(t, p.IsWaiting())
	assert.False(t, p.InElevator())
	assert.False(t, p.Finished())

	// WHEN it boards
	p.markBoarded()
	assert.False(t, p.IsWaiting())
	assert.True(t, p.InElevator())
	assert.False(t, p.Finished())

	// WHEN it arrives
	p.markArrived()
	assert.False(t, p.IsWaiting())
	assert.False(t, p.InElevator())
	assert.True(t, p.Finished())
}

func TestPassenger_HasArrived(t *testing.T) {
	p, err := NewPassenger(0, 5, 0, 2)
	require.NoError(t, err)
	assert.True(t, p.HasArrived(2))
	assert.False(t, p.HasArrived(1))
}

func TestDirection_Delta(t *testing.T) {
	assert.Equal(t, 1, Up.Delta())
	assert.Equal(t, -1, Down.Delta())
	assert.Equal(t, 0, Idle.Delta())
}

func TestTripDirection(t *testing.T) {
	assert.Equal(t, Up, TripDirection(0, 4))
	assert.Equal(t, Down, TripDirection(4, 0))
}
