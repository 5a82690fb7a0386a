package seats

import "errors"

var (
	ErrPropertyNotFound = errors.New("property not found")
	ErrLayoutNotFound   = errors.New("layout not found")
	ErrSeatNotFound     = errors.New("seat not found")
	ErrSeatsExist       = errors.New("seats already exist for property")
	ErrSeatAssigned     = errors.New("seat has an active assignment")
	ErrInvalidStatus    = errors.New("invalid seat status")
)
