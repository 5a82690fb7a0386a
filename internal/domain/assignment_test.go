package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOccupyTarget(t *testing.T) {
	now := time.Now()

	assert.Equal(t, SeatOccupied, OccupyTarget(now.AddDate(0, 0, -1), now))
	assert.Equal(t, SeatOccupied, OccupyTarget(now, now))
	assert.Equal(t, SeatPrebooked, OccupyTarget(now.AddDate(0, 0, 3), now))
}

func TestAssignableFrom(t *testing.T) {
	now := time.Now()
	future := now.AddDate(0, 0, 7)

	assert.True(t, AssignableFrom(SeatAvailable, now, now))
	assert.True(t, AssignableFrom(SeatAvailable, future, now))

	// prebooked seats only take further future-dated assignments
	assert.True(t, AssignableFrom(SeatPrebooked, future, now))
	assert.False(t, AssignableFrom(SeatPrebooked, now, now))

	assert.False(t, AssignableFrom(SeatOccupied, future, now))
	assert.False(t, AssignableFrom(SeatMaintenance, future, now))
}

func TestValidSeatStatus(t *testing.T) {
	for _, s := range []SeatStatus{SeatAvailable, SeatOccupied, SeatPrebooked, SeatMaintenance} {
		assert.True(t, ValidSeatStatus(s))
	}

	assert.False(t, ValidSeatStatus("sold"))
	assert.False(t, ValidSeatStatus(""))
}
