package repository

import "errors"

var (
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("conflict")
	ErrSeatUnavailable = errors.New("seat unavailable")
	ErrSeatsExist      = errors.New("seats already exist for property")
	ErrSeatAssigned    = errors.New("seat has an active assignment")
	ErrPaymentClosed   = errors.New("payment is closed")
	ErrOverCollection  = errors.New("collection exceeds balance")
)
