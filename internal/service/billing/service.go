package billing

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mashfiq/seatly/internal/domain"
	"github.com/mashfiq/seatly/internal/repository"
	postgresrepo "github.com/mashfiq/seatly/internal/repository/postgres"
	redisrepo "github.com/mashfiq/seatly/internal/repository/redis"
	"github.com/mashfiq/seatly/internal/uow"
)

type Service struct {
	store *postgresrepo.Store
	cache *redisrepo.Cache
	uow   *uow.UoW
}

func New(store *postgresrepo.Store, cache *redisrepo.Cache) *Service {
	return &Service{
		store: store,
		cache: cache,
		uow:   uow.NewUoW(store),
	}
}

// Collect records a partial or full collection against a payment.
//
// Returns:
//   - *domain.Payment: the payment after the collection.
//   - error: billing.ErrOverCollection if the collection would push the
//     balance below zero.
//   - error: billing.ErrPaymentClosed if the payment no longer accepts
//     collections.
func (s *Service) Collect(ctx context.Context, id uuid.UUID, amountCents int) (*domain.Payment, error) {
	const op = "service.billing.Collect"

	if amountCents <= 0 {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidAmount)
	}

	var out *domain.Payment

	err := s.uow.Do(ctx, func(ctx context.Context, tx postgresrepo.DB, after func(uow.AfterCommit)) error {
		p, err := s.store.Payments().With(tx).Collect(ctx, id, amountCents)
		if err != nil {
			return fmt.Errorf("%s: %w", op, s.translate(err))
		}

		out = p
		s.invalidateOwner(ctx, tx, p.AssignmentID, after)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// Complete settles a payment in full, recording the gateway transaction
// id when provided.
func (s *Service) Complete(ctx context.Context, id uuid.UUID, transactionID *string) (*domain.Payment, error) {
	const op = "service.billing.Complete"

	var out *domain.Payment

	err := s.uow.Do(ctx, func(ctx context.Context, tx postgresrepo.DB, after func(uow.AfterCommit)) error {
		p, err := s.store.Payments().With(tx).Complete(ctx, id, transactionID)
		if err != nil {
			return fmt.Errorf("%s: %w", op, s.translate(err))
		}

		out = p
		s.invalidateOwner(ctx, tx, p.AssignmentID, after)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// Refund marks a payment refunded. Terminal.
func (s *Service) Refund(ctx context.Context, id uuid.UUID) (*domain.Payment, error) {
	const op = "service.billing.Refund"

	var out *domain.Payment

	err := s.uow.Do(ctx, func(ctx context.Context, tx postgresrepo.DB, after func(uow.AfterCommit)) error {
		p, err := s.store.Payments().With(tx).Refund(ctx, id)
		if err != nil {
			return fmt.Errorf("%s: %w", op, s.translate(err))
		}

		out = p
		s.invalidateOwner(ctx, tx, p.AssignmentID, after)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// ListOverdue retrieves payments past their due date that still carry a
// balance.
func (s *Service) ListOverdue(ctx context.Context) ([]domain.Payment, error) {
	const op = "service.billing.ListOverdue"

	out, err := s.store.Payments().ListOverdue(ctx, time.Now())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

// DeriveForStudent computes the display payment status for a student's
// newest active assignment. A student with no active assignment reports
// pending with nothing owed.
func (s *Service) DeriveForStudent(ctx context.Context, studentID int64) (*Summary, error) {
	const op = "service.billing.DeriveForStudent"

	if _, err := s.store.Students().Get(ctx, studentID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrStudentNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	current, err := s.store.Assignments().ListByStudent(ctx, studentID, domain.AssignmentActive)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if len(current) == 0 {
		summary := Derive(nil, time.Now())
		return &summary, nil
	}

	payment, err := s.store.Payments().GetByAssignment(ctx, current[0].ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			summary := Derive(nil, time.Now())
			return &summary, nil
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	summary := Derive(payment, time.Now())
	return &summary, nil
}

func (s *Service) translate(err error) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return ErrPaymentNotFound
	case errors.Is(err, repository.ErrPaymentClosed):
		return ErrPaymentClosed
	case errors.Is(err, repository.ErrOverCollection):
		return ErrOverCollection
	}
	return err
}

// invalidateOwner schedules a cache drop for the student whose assignment
// backs the payment, after commit.
func (s *Service) invalidateOwner(
	ctx context.Context,
	tx postgresrepo.DB,
	assignmentID uuid.UUID,
	after func(uow.AfterCommit),
) {
	a, err := s.store.Assignments().With(tx).Get(ctx, assignmentID)
	if err != nil {
		return
	}

	studentID := a.StudentID
	after(func(ctx context.Context) {
		_ = s.cache.InvalidateStudent(ctx, studentID)
	})
}
