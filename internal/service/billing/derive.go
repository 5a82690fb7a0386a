package billing

import (
	"time"

	"github.com/mashfiq/seatly/internal/domain"
)

// DerivedStatus is the display status of a student's dues. It is computed,
// never stored; every view that labels a payment goes through Derive so
// the labeling cannot drift between screens.
type DerivedStatus string

const (
	StatusPaid    DerivedStatus = "paid"
	StatusPartial DerivedStatus = "partial"
	StatusPending DerivedStatus = "pending"
	StatusOverdue DerivedStatus = "overdue"
)

type Summary struct {
	Status      DerivedStatus `json:"status"`
	AmountCents int           `json:"amount_cents"` // outstanding balance
	DueDate     *time.Time    `json:"due_date,omitempty"`
	IsOverdue   bool          `json:"is_overdue"`
}

// Derive computes the display status for a payment. Overdue takes
// precedence over pending and partial: a half-collected payment past its
// due date reads as overdue everywhere. A nil payment (student with no
// active assignment) reports pending with nothing owed.
func Derive(p *domain.Payment, now time.Time) Summary {
	if p == nil {
		return Summary{Status: StatusPending}
	}

	overdue := p.DueDate != nil && now.After(*p.DueDate)

	s := Summary{
		AmountCents: p.BalanceCents,
		DueDate:     p.DueDate,
		IsOverdue:   overdue,
	}

	switch {
	case p.Settled():
		s.Status = StatusPaid
	case overdue:
		s.Status = StatusOverdue
	case p.CollectedCents == 0:
		s.Status = StatusPending
	default:
		s.Status = StatusPartial
	}

	return s
}
