package catalog

import "errors"

var (
	ErrPropertyNotFound = errors.New("property not found")
	ErrPropertyConflict = errors.New("property already exists")
	ErrLayoutNotFound   = errors.New("layout not found")
	ErrShiftNotFound    = errors.New("shift not found")
	ErrShiftConflict    = errors.New("shift already exists")
	ErrStudentNotFound  = errors.New("student not found")
	ErrInvalidCapacity  = errors.New("total seats must be positive")

	ErrInvalidStudentStatus = errors.New("invalid student status")
)
