package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mashfiq/seatly/internal/domain"
	"github.com/mashfiq/seatly/internal/repository"
)

type PaymentRepo struct {
	pool *pgxpool.Pool
	db   DB
}

func (r *PaymentRepo) With(db DB) *PaymentRepo {
	cp := *r
	cp.db = db
	return &cp
}

func (r *PaymentRepo) handle() DB {
	if r.db != nil {
		return r.db
	}
	return r.pool
}

const paymentColumns = `id, assignment_id, amount_cents, collected_cents, balance_cents,
	status, due_date, period_start, period_end, transaction_id, created_at`

func scanPayment(row interface{ Scan(...any) error }) (*domain.Payment, error) {
	var p domain.Payment
	err := row.Scan(
		&p.ID, &p.AssignmentID, &p.AmountCents, &p.CollectedCents, &p.BalanceCents,
		&p.Status, &p.DueDate, &p.PeriodStart, &p.PeriodEnd, &p.TransactionID, &p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PaymentRepo) Insert(ctx context.Context, p domain.Payment) error {
	const op = "postgres.PaymentRepo.Insert"

	db := r.handle()

	if _, err := db.Exec(ctx,
		`INSERT INTO payments(id, assignment_id, amount_cents, collected_cents, balance_cents,
		                      status, due_date, period_start, period_end, transaction_id)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		p.ID, p.AssignmentID, p.AmountCents, p.CollectedCents, p.BalanceCents,
		p.Status, p.DueDate, p.PeriodStart, p.PeriodEnd, p.TransactionID,
	); err != nil {
		return wrapDBErr(op, err)
	}

	return nil
}

func (r *PaymentRepo) Get(ctx context.Context, id uuid.UUID) (*domain.Payment, error) {
	const op = "postgres.PaymentRepo.Get"

	db := r.handle()

	p, err := scanPayment(db.QueryRow(ctx,
		`SELECT `+paymentColumns+` FROM payments WHERE id = $1`, id))
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	return p, nil
}

// GetByAssignment retrieves the newest payment attached to an assignment.
func (r *PaymentRepo) GetByAssignment(ctx context.Context, assignmentID uuid.UUID) (*domain.Payment, error) {
	const op = "postgres.PaymentRepo.GetByAssignment"

	db := r.handle()

	p, err := scanPayment(db.QueryRow(ctx,
		`SELECT `+paymentColumns+` FROM payments
		 WHERE assignment_id = $1
		 ORDER BY created_at DESC
		 LIMIT 1`, assignmentID))
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	return p, nil
}

// Collect records a collection against an open payment in one conditional
// update, so the balance check and the write cannot race.
//
// Returns:
//   - error: repository.ErrOverCollection if the collection would push the
//     balance below zero.
//   - error: repository.ErrPaymentClosed if the payment is completed,
//     failed or refunded.
//   - error: repository.ErrNotFound if the payment does not exist.
func (r *PaymentRepo) Collect(ctx context.Context, id uuid.UUID, amountCents int) (*domain.Payment, error) {
	const op = "postgres.PaymentRepo.Collect"

	db := r.handle()

	p, err := scanPayment(db.QueryRow(ctx,
		`UPDATE payments
		 SET collected_cents = collected_cents + $2,
		     balance_cents = amount_cents - (collected_cents + $2),
		     status = CASE WHEN collected_cents + $2 = amount_cents THEN 'completed' ELSE 'partial' END
		 WHERE id = $1
		   AND status IN ('pending', 'partial')
		   AND collected_cents + $2 <= amount_cents
		 RETURNING `+paymentColumns, id, amountCents))
	if err == nil {
		return p, nil
	}

	translated := translateDBErr(err)
	if !errors.Is(translated, repository.ErrNotFound) {
		return nil, fmt.Errorf("%s: %w", op, translated)
	}

	// zero rows: tell a missing payment apart from a refused mutation
	existing, gerr := r.Get(ctx, id)
	if gerr != nil {
		return nil, fmt.Errorf("%s: %w", op, repository.ErrNotFound)
	}
	switch existing.Status {
	case domain.PaymentPending, domain.PaymentPartial:
		return nil, fmt.Errorf("%s: %w", op, repository.ErrOverCollection)
	default:
		return nil, fmt.Errorf("%s: %w", op, repository.ErrPaymentClosed)
	}
}

// Complete settles a payment in full and stores the gateway transaction id
// when one is provided.
func (r *PaymentRepo) Complete(ctx context.Context, id uuid.UUID, transactionID *string) (*domain.Payment, error) {
	const op = "postgres.PaymentRepo.Complete"

	db := r.handle()

	p, err := scanPayment(db.QueryRow(ctx,
		`UPDATE payments
		 SET collected_cents = amount_cents,
		     balance_cents = 0,
		     status = 'completed',
		     transaction_id = COALESCE($2, transaction_id)
		 WHERE id = $1 AND status IN ('pending', 'partial', 'failed')
		 RETURNING `+paymentColumns, id, transactionID))
	if err == nil {
		return p, nil
	}

	translated := translateDBErr(err)
	if !errors.Is(translated, repository.ErrNotFound) {
		return nil, fmt.Errorf("%s: %w", op, translated)
	}

	if _, gerr := r.Get(ctx, id); gerr != nil {
		return nil, fmt.Errorf("%s: %w", op, repository.ErrNotFound)
	}

	return nil, fmt.Errorf("%s: %w", op, repository.ErrPaymentClosed)
}

// Refund marks a payment refunded. Terminal: no mutation touches a
// refunded payment afterwards.
func (r *PaymentRepo) Refund(ctx context.Context, id uuid.UUID) (*domain.Payment, error) {
	const op = "postgres.PaymentRepo.Refund"

	db := r.handle()

	p, err := scanPayment(db.QueryRow(ctx,
		`UPDATE payments SET status = 'refunded'
		 WHERE id = $1 AND status <> 'refunded'
		 RETURNING `+paymentColumns, id))
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	return p, nil
}

// ListOverdue retrieves payments past their due date that still carry a
// balance, refunds excluded.
func (r *PaymentRepo) ListOverdue(ctx context.Context, now time.Time) ([]domain.Payment, error) {
	const op = "postgres.PaymentRepo.ListOverdue"

	db := r.handle()

	rows, err := db.Query(ctx,
		`SELECT `+paymentColumns+` FROM payments
		 WHERE due_date IS NOT NULL
		   AND due_date < $1
		   AND balance_cents > 0
		   AND status <> 'refunded'
		 ORDER BY due_date`,
		now,
	)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	defer rows.Close()

	var out []domain.Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, wrapDBErr(op, err)
		}
		out = append(out, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapDBErr(op, err)
	}

	return out, nil
}

// ListByStudent retrieves a student's payments across all of their
// assignments, newest first.
func (r *PaymentRepo) ListByStudent(ctx context.Context, studentID int64) ([]domain.Payment, error) {
	const op = "postgres.PaymentRepo.ListByStudent"

	db := r.handle()

	rows, err := db.Query(ctx,
		`SELECT p.id, p.assignment_id, p.amount_cents, p.collected_cents, p.balance_cents,
		        p.status, p.due_date, p.period_start, p.period_end, p.transaction_id, p.created_at
		 FROM payments p
		 JOIN assignments a ON a.id = p.assignment_id
		 WHERE a.student_id = $1
		 ORDER BY p.created_at DESC`,
		studentID,
	)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	defer rows.Close()

	var out []domain.Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, wrapDBErr(op, err)
		}
		out = append(out, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapDBErr(op, err)
	}

	return out, nil
}
