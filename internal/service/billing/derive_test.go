package billing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mashfiq/seatly/internal/domain"
)

func payment(amount, collected int, due *time.Time) *domain.Payment {
	return &domain.Payment{
		AmountCents:    amount,
		CollectedCents: collected,
		BalanceCents:   amount - collected,
		DueDate:        due,
	}
}

func TestDerivePaid(t *testing.T) {
	now := time.Now()

	s := Derive(payment(100000, 100000, nil), now)

	assert.Equal(t, StatusPaid, s.Status)
	assert.Equal(t, 0, s.AmountCents)
}

func TestDeriveOverduePrecedence(t *testing.T) {
	now := time.Now()
	yesterday := now.AddDate(0, 0, -1)

	// untouched payment past due
	s := Derive(payment(100000, 0, &yesterday), now)
	assert.Equal(t, StatusOverdue, s.Status)
	assert.True(t, s.IsOverdue)
	assert.Equal(t, 100000, s.AmountCents)

	// half-collected payment past due still reads overdue
	s = Derive(payment(100000, 40000, &yesterday), now)
	assert.Equal(t, StatusOverdue, s.Status)
	assert.True(t, s.IsOverdue)
	assert.Equal(t, 60000, s.AmountCents)
}

func TestDerivePendingAndPartial(t *testing.T) {
	now := time.Now()
	nextWeek := now.AddDate(0, 0, 7)

	s := Derive(payment(50000, 0, &nextWeek), now)
	assert.Equal(t, StatusPending, s.Status)
	assert.False(t, s.IsOverdue)

	s = Derive(payment(50000, 20000, &nextWeek), now)
	assert.Equal(t, StatusPartial, s.Status)
	assert.False(t, s.IsOverdue)
	assert.Equal(t, 30000, s.AmountCents)
}

func TestDeriveNoActiveAssignment(t *testing.T) {
	s := Derive(nil, time.Now())

	assert.Equal(t, StatusPending, s.Status)
	assert.Equal(t, 0, s.AmountCents)
	assert.False(t, s.IsOverdue)
	assert.Nil(t, s.DueDate)
}

func TestDeriveSettledBeatsDueDate(t *testing.T) {
	now := time.Now()
	yesterday := now.AddDate(0, 0, -1)

	s := Derive(payment(100000, 100000, &yesterday), now)

	// fully collected reads paid; the independent overdue flag still
	// reflects the elapsed due date
	assert.Equal(t, StatusPaid, s.Status)
	assert.Equal(t, 0, s.AmountCents)
	assert.True(t, s.IsOverdue)
}

func TestDeriveNoDueDateNeverOverdue(t *testing.T) {
	now := time.Now()

	s := Derive(payment(100000, 30000, nil), now)

	assert.Equal(t, StatusPartial, s.Status)
	assert.False(t, s.IsOverdue)
}
