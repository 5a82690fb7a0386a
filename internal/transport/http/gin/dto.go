package httpgin

import "time"

type CreatePropertyRequest struct {
	Name         string `json:"name" binding:"required"`
	Address      string `json:"address"`
	TotalSeats   int    `json:"total_seats" binding:"required,gt=0"`
	OpeningHours string `json:"opening_hours"`
}

type CreatePropertyResponse struct {
	PropertyID int64 `json:"property_id"`
}

type CreateShiftRequest struct {
	Name      string `json:"name" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
	FeeCents  int    `json:"fee_cents" binding:"required,gt=0"`
}

type CreateShiftResponse struct {
	ShiftID int64 `json:"shift_id"`
}

type BulkCreateSeatsRequest struct {
	PropertyID int64  `json:"property_id" binding:"required"`
	Section    string `json:"section"`
}

type UpdateSeatStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// BookingRequest carries the front-desk booking form: student identity
// plus the seat, shift and move-in date. Accepted as JSON or multipart
// form data.
type BookingRequest struct {
	FullName   string `json:"full_name" form:"full_name" binding:"required"`
	Phone      string `json:"phone" form:"phone" binding:"required"`
	Email      string `json:"email" form:"email"`
	PropertyID int64  `json:"property_id" form:"property_id" binding:"required"`
	SeatNumber string `json:"seat_no" form:"seat_no" binding:"required"`
	ShiftID    int64  `json:"shift" form:"shift" binding:"required"`
	MoveInDate string `json:"move_in_date" form:"move_in_date" binding:"required"`
	FeeCents   int    `json:"fee_cents" form:"fee_cents"`
}

type AssignSeatRequest struct {
	StudentID int64  `json:"student_id" binding:"required"`
	SeatID    int64  `json:"seat_id" binding:"required"`
	ShiftID   int64  `json:"shift_id" binding:"required"`
	StartDate string `json:"start_date" binding:"required"`
	FeeCents  int    `json:"fee_cents"`
}

type ReleaseAssignmentRequest struct {
	EndDate string `json:"end_date"`
}

type TransferSeatRequest struct {
	NewSeatID int64 `json:"new_seat_id" binding:"required"`
}

type SetStudentStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type CollectPaymentRequest struct {
	AmountCents int `json:"amount_cents" binding:"required,gt=0"`
}

type CompletePaymentRequest struct {
	TransactionID *string `json:"transaction_id"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func parseRFC3339(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, s)
}

// parseDate accepts either a plain date or a full RFC3339 timestamp.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return parseRFC3339(s)
}
