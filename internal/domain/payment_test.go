package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openPayment(amount int) *Payment {
	return &Payment{
		AmountCents:  amount,
		BalanceCents: amount,
		Status:       PaymentPending,
	}
}

func TestApplyCollectionPartialThenComplete(t *testing.T) {
	p := openPayment(50000)

	require.NoError(t, p.ApplyCollection(20000))
	assert.Equal(t, PaymentPartial, p.Status)
	assert.Equal(t, 20000, p.CollectedCents)
	assert.Equal(t, 30000, p.BalanceCents)

	require.NoError(t, p.ApplyCollection(30000))
	assert.Equal(t, PaymentCompleted, p.Status)
	assert.Equal(t, 0, p.BalanceCents)
	assert.True(t, p.Settled())
}

func TestApplyCollectionBalanceNeverNegative(t *testing.T) {
	p := openPayment(50000)

	err := p.ApplyCollection(50001)
	assert.ErrorIs(t, err, ErrOverCollection)
	// rejected mutation leaves the payment untouched
	assert.Equal(t, 0, p.CollectedCents)
	assert.Equal(t, 50000, p.BalanceCents)
	assert.Equal(t, PaymentPending, p.Status)
}

func TestApplyCollectionClosedPayments(t *testing.T) {
	p := openPayment(50000)
	require.NoError(t, p.ApplyCollection(50000))

	assert.ErrorIs(t, p.ApplyCollection(1), ErrPaymentClosed)

	refunded := openPayment(10000)
	refunded.Status = PaymentRefunded
	assert.ErrorIs(t, refunded.ApplyCollection(1), ErrPaymentClosed)
}

func TestApplyCollectionRejectsNonPositive(t *testing.T) {
	p := openPayment(50000)

	assert.ErrorIs(t, p.ApplyCollection(0), ErrNonPositive)
	assert.ErrorIs(t, p.ApplyCollection(-100), ErrNonPositive)
}

func TestCompletedImpliesSettled(t *testing.T) {
	p := openPayment(120000)

	for _, chunk := range []int{40000, 40000, 40000} {
		require.NoError(t, p.ApplyCollection(chunk))
	}

	assert.Equal(t, PaymentCompleted, p.Status)
	assert.Equal(t, p.AmountCents, p.CollectedCents)
	assert.Equal(t, 0, p.BalanceCents)
}
