package domain

import "time"

// OccupyTarget returns the seat status an assignment starting at startDate
// should move the seat into: a future-dated assignment prebooks the seat,
// an immediate one occupies it.
func OccupyTarget(startDate, now time.Time) SeatStatus {
	if startDate.After(now) {
		return SeatPrebooked
	}
	return SeatOccupied
}

// AssignableFrom reports whether a seat in the given status may receive a
// new assignment starting at startDate. Available seats always may; a
// prebooked seat only for future-dated assignments (the earlier prebooking
// becoming current is resolved by the active-assignment check, not here).
func AssignableFrom(status SeatStatus, startDate, now time.Time) bool {
	switch status {
	case SeatAvailable:
		return true
	case SeatPrebooked:
		return startDate.After(now)
	}
	return false
}
