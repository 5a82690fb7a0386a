package billing

import "errors"

var (
	ErrPaymentNotFound = errors.New("payment not found")
	ErrPaymentClosed   = errors.New("payment is closed")
	ErrOverCollection  = errors.New("collection exceeds balance")
	ErrStudentNotFound = errors.New("student not found")
	ErrInvalidAmount   = errors.New("amount must be positive")
)
