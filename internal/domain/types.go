package domain

import (
	"time"

	"github.com/google/uuid"
)

type SeatStatus string

const (
	SeatAvailable   SeatStatus = "available"
	SeatOccupied    SeatStatus = "occupied"
	SeatPrebooked   SeatStatus = "prebooked"
	SeatMaintenance SeatStatus = "maintenance"
)

// ValidSeatStatus reports whether s is one of the four seat states.
func ValidSeatStatus(s SeatStatus) bool {
	switch s {
	case SeatAvailable, SeatOccupied, SeatPrebooked, SeatMaintenance:
		return true
	}
	return false
}

type AssignmentStatus string

const (
	AssignmentActive    AssignmentStatus = "active"
	AssignmentCompleted AssignmentStatus = "completed"
)

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentPartial   PaymentStatus = "partial"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
	PaymentRefunded  PaymentStatus = "refunded"
)

type StudentStatus string

const (
	StudentActive   StudentStatus = "active"
	StudentInactive StudentStatus = "inactive"
)

type Property struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Address      string `json:"address"`
	TotalSeats   int    `json:"total_seats"`
	OpeningHours string `json:"opening_hours"`
}

// Rendering defaults for newly generated layouts, in pixels; the floor-map
// client reads them back verbatim.
const (
	DefaultAisleWidth = 2
	DefaultSeatWidth  = 40
	DefaultSeatHeight = 40
	DefaultSeatGap    = 10
)

// Layout is a property's seat grid. Cells is row-major; a false cell is
// reserved for aisles or furniture and never receives a seat.
type Layout struct {
	PropertyID int64    `json:"property_id"`
	Rows       int      `json:"rows"`
	Columns    int      `json:"columns"`
	AisleWidth int      `json:"aisle_width"`
	SeatWidth  int      `json:"seat_width"`
	SeatHeight int      `json:"seat_height"`
	Gap        int      `json:"gap"`
	Cells      [][]bool `json:"layout"`
}

type Seat struct {
	ID         int64      `json:"id"`
	PropertyID int64      `json:"property_id"`
	SeatNumber string     `json:"seat_number"`
	Row        int        `json:"row"`
	Column     int        `json:"column"`
	Section    string     `json:"section"`
	Status     SeatStatus `json:"status"`
}

// Shift is a named recurring time window with a monthly fee.
// StartTime/EndTime are wall-clock strings such as "06:00".
type Shift struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	FeeCents  int    `json:"fee_cents"`
}

type Assignment struct {
	ID        uuid.UUID        `json:"id"`
	StudentID int64            `json:"student_id"`
	SeatID    int64            `json:"seat_id"`
	ShiftID   int64            `json:"shift_id"`
	StartDate time.Time        `json:"start_date"`
	EndDate   *time.Time       `json:"end_date,omitempty"`
	FeeCents  int              `json:"fee_cents"`
	Status    AssignmentStatus `json:"status"`
	CreatedAt time.Time        `json:"created_at"`
}

// AssignmentDetail is an assignment with its seat and shift joined in,
// as served on the student detail view.
type AssignmentDetail struct {
	Assignment
	Seat  Seat  `json:"seat"`
	Shift Shift `json:"shift"`
}

type Payment struct {
	ID             uuid.UUID     `json:"id"`
	AssignmentID   uuid.UUID     `json:"assignment_id"`
	AmountCents    int           `json:"amount_cents"`
	CollectedCents int           `json:"collected_cents"`
	BalanceCents   int           `json:"balance_cents"`
	Status         PaymentStatus `json:"status"`
	DueDate        *time.Time    `json:"due_date,omitempty"`
	PeriodStart    time.Time     `json:"period_start"`
	PeriodEnd      time.Time     `json:"period_end"`
	TransactionID  *string       `json:"transaction_id,omitempty"`
	CreatedAt      time.Time     `json:"created_at"`
}

type Student struct {
	ID        int64         `json:"id"`
	FullName  string        `json:"full_name"`
	Phone     string        `json:"phone"`
	Email     string        `json:"email"`
	Status    StudentStatus `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
}

// StudentDetail is the populated student view: active assignments, history
// and the payments behind them.
type StudentDetail struct {
	Student
	CurrentAssignments []AssignmentDetail `json:"current_assignments"`
	AssignmentHistory  []AssignmentDetail `json:"assignment_history"`
	PaymentHistory     []Payment          `json:"payment_history"`
}

// SeatCounts summarizes a property's (or section's) seats by status.
// Total excludes maintenance seats, which dashboards track separately.
type SeatCounts struct {
	Total       int64 `json:"total"`
	Available   int64 `json:"available"`
	Occupied    int64 `json:"occupied"`
	Prebooked   int64 `json:"prebooked"`
	Maintenance int64 `json:"maintenance"`
}
