package domain

import "errors"

var (
	ErrPaymentClosed  = errors.New("payment is closed")
	ErrOverCollection = errors.New("collection exceeds balance")
	ErrNonPositive    = errors.New("amount must be positive")
)

// ApplyCollection records a collection of amountCents against the payment
// and recomputes balance and status. The balance may never go negative and
// closed payments (completed, refunded) accept no further collections.
func (p *Payment) ApplyCollection(amountCents int) error {
	if amountCents <= 0 {
		return ErrNonPositive
	}
	if p.Status == PaymentCompleted || p.Status == PaymentRefunded {
		return ErrPaymentClosed
	}
	if p.CollectedCents+amountCents > p.AmountCents {
		return ErrOverCollection
	}

	p.CollectedCents += amountCents
	p.BalanceCents = p.AmountCents - p.CollectedCents

	if p.BalanceCents == 0 {
		p.Status = PaymentCompleted
	} else {
		p.Status = PaymentPartial
	}

	return nil
}

// Settled reports whether the payment is fully collected.
func (p *Payment) Settled() bool {
	return p.BalanceCents == 0 && p.CollectedCents == p.AmountCents
}
