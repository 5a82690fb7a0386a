package assignment

import "errors"

var (
	// ErrSeatUnavailable is returned when the target seat is not in a
	// state that can receive the assignment, or the (seat, shift) pair
	// already carries an active one.
	ErrSeatUnavailable = errors.New("seat unavailable")

	ErrSeatNotFound       = errors.New("seat not found")
	ErrShiftNotFound      = errors.New("shift not found")
	ErrPropertyNotFound   = errors.New("property not found")
	ErrAssignmentNotFound = errors.New("assignment not found")
	ErrAlreadyCompleted   = errors.New("assignment already completed")
	ErrInvalidBooking     = errors.New("invalid booking")
)
