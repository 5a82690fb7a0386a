package assignment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mashfiq/seatly/internal/domain"
	redisx "github.com/mashfiq/seatly/internal/redis"
	"github.com/mashfiq/seatly/internal/repository"
	postgresrepo "github.com/mashfiq/seatly/internal/repository/postgres"
	redisrepo "github.com/mashfiq/seatly/internal/repository/redis"
	"github.com/mashfiq/seatly/internal/uow"
)

type Config struct {
	// PeriodDays is the billing period a new assignment's first payment
	// covers. DueInDays is how long after move-in it falls due.
	PeriodDays int
	DueInDays  int
}

type Service struct {
	store   *postgresrepo.Store
	cache   *redisrepo.Cache
	pubsub  *redisx.SeatsPubSub
	limiter *redisrepo.SlidingWindowLimiter
	uow     *uow.UoW
	cfg     Config
}

func New(
	store *postgresrepo.Store,
	cache *redisrepo.Cache,
	pubsub *redisx.SeatsPubSub,
	limiter *redisrepo.SlidingWindowLimiter,
	cfg Config,
) *Service {
	if cfg.PeriodDays <= 0 {
		cfg.PeriodDays = 30
	}

	if cfg.DueInDays < 0 {
		cfg.DueInDays = 0
	}

	return &Service{
		store:   store,
		cache:   cache,
		pubsub:  pubsub,
		limiter: limiter,
		uow:     uow.NewUoW(store),
		cfg:     cfg,
	}
}

type AssignInput struct {
	StudentID int64
	SeatID    int64
	ShiftID   int64
	StartDate time.Time
	FeeCents  int // zero means: use the shift's fee
}

type AssignResult struct {
	Assignment domain.Assignment `json:"assignment"`
	Payment    domain.Payment    `json:"payment"`
}

// Assign binds a student to a seat for a shift and opens the companion
// payment. The seat claim, the assignment insert and the payment insert
// commit or fail as one transaction; a competing assign on the same seat
// loses on the conditional seat update or the active (seat, shift) unique
// index, never half-succeeds.
//
// Returns:
//   - *AssignResult: the created assignment and its pending payment.
//   - error: assignment.ErrSeatUnavailable if the seat cannot take the
//     assignment.
//   - error: assignment.ErrSeatNotFound / ErrShiftNotFound on dangling
//     references.
func (s *Service) Assign(ctx context.Context, in AssignInput) (*AssignResult, error) {
	const op = "service.assignment.Assign"

	var result AssignResult
	var propertyID int64

	err := s.uow.Do(ctx, func(ctx context.Context, tx postgresrepo.DB, after func(uow.AfterCommit)) error {
		res, pid, err := s.assignCore(ctx, tx, in)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}

		result = *res
		propertyID = pid

		after(func(ctx context.Context) {
			_ = s.cache.InvalidateProperty(ctx, propertyID)
			_ = s.cache.InvalidateStudent(ctx, in.StudentID)
			_ = s.pubsub.PublishSeatsChanged(ctx, propertyID)
		})

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}

// assignCore runs the assign steps against the given transaction handle.
// Shared by Assign and Book.
func (s *Service) assignCore(
	ctx context.Context,
	tx postgresrepo.DB,
	in AssignInput,
) (*AssignResult, int64, error) {
	now := time.Now()

	seat, err := s.store.Seats().With(tx).Get(ctx, in.SeatID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, 0, ErrSeatNotFound
		}

		return nil, 0, err
	}

	shift, err := s.store.Shifts().With(tx).Get(ctx, in.ShiftID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, 0, ErrShiftNotFound
		}

		return nil, 0, err
	}

	fee := in.FeeCents
	if fee == 0 {
		fee = shift.FeeCents
	}

	if !domain.AssignableFrom(seat.Status, in.StartDate, now) {
		return nil, 0, ErrSeatUnavailable
	}

	exists, err := s.store.Assignments().With(tx).ActiveExists(ctx, in.SeatID, in.ShiftID)
	if err != nil {
		return nil, 0, err
	}
	if exists {
		return nil, 0, ErrSeatUnavailable
	}

	futureDated := in.StartDate.After(now)
	target := domain.OccupyTarget(in.StartDate, now)

	if err := s.store.Assignments().With(tx).ClaimSeat(ctx, in.SeatID, target, futureDated); err != nil {
		if errors.Is(err, repository.ErrSeatUnavailable) {
			return nil, 0, ErrSeatUnavailable
		}

		return nil, 0, err
	}

	a := domain.Assignment{
		ID:        uuid.New(),
		StudentID: in.StudentID,
		SeatID:    in.SeatID,
		ShiftID:   in.ShiftID,
		StartDate: in.StartDate,
		FeeCents:  fee,
		Status:    domain.AssignmentActive,
		CreatedAt: now,
	}

	if err := s.store.Assignments().With(tx).Insert(ctx, a); err != nil {
		// the active (seat, shift) partial unique index caught a race
		if errors.Is(err, repository.ErrConflict) {
			return nil, 0, ErrSeatUnavailable
		}

		return nil, 0, err
	}

	due := in.StartDate.AddDate(0, 0, s.cfg.DueInDays)
	p := domain.Payment{
		ID:           uuid.New(),
		AssignmentID: a.ID,
		AmountCents:  fee,
		BalanceCents: fee,
		Status:       domain.PaymentPending,
		DueDate:      &due,
		PeriodStart:  in.StartDate,
		PeriodEnd:    in.StartDate.AddDate(0, 0, s.cfg.PeriodDays),
		CreatedAt:    now,
	}

	if err := s.store.Payments().With(tx).Insert(ctx, p); err != nil {
		return nil, 0, err
	}

	return &AssignResult{Assignment: a, Payment: p}, seat.PropertyID, nil
}

// Release completes an assignment and frees its seat, unless another
// active assignment on a different shift still holds the seat.
//
// Returns:
//   - *domain.Assignment: the completed assignment.
//   - error: assignment.ErrAssignmentNotFound if the id is unknown.
//   - error: assignment.ErrAlreadyCompleted if it was released before.
func (s *Service) Release(ctx context.Context, id uuid.UUID, endDate time.Time) (*domain.Assignment, error) {
	const op = "service.assignment.Release"

	var released *domain.Assignment

	err := s.uow.Do(ctx, func(ctx context.Context, tx postgresrepo.DB, after func(uow.AfterCommit)) error {
		existing, err := s.store.Assignments().With(tx).Get(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return fmt.Errorf("%s: %w", op, ErrAssignmentNotFound)
			}

			return fmt.Errorf("%s: %w", op, err)
		}

		if existing.Status != domain.AssignmentActive {
			return fmt.Errorf("%s: %w", op, ErrAlreadyCompleted)
		}

		released, err = s.store.Assignments().With(tx).Complete(ctx, id, endDate)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}

		if err := s.store.Assignments().With(tx).FreeSeat(ctx, existing.SeatID); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}

		seat, err := s.store.Seats().With(tx).Get(ctx, existing.SeatID)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}

		after(func(ctx context.Context) {
			_ = s.cache.InvalidateProperty(ctx, seat.PropertyID)
			_ = s.cache.InvalidateStudent(ctx, existing.StudentID)
			_ = s.pubsub.PublishSeatsChanged(ctx, seat.PropertyID)
		})

		return nil
	})
	if err != nil {
		return nil, err
	}

	return released, nil
}

// TransferSeat moves an active assignment onto a new seat, atomically:
// the new seat is claimed (available only), the assignment repointed, the
// old seat freed. Fee, shift and dates are preserved.
//
// Returns:
//   - *domain.Assignment: the moved assignment.
//   - error: assignment.ErrSeatUnavailable if the new seat is not
//     available.
func (s *Service) TransferSeat(ctx context.Context, id uuid.UUID, newSeatID int64) (*domain.Assignment, error) {
	const op = "service.assignment.TransferSeat"

	var moved *domain.Assignment

	err := s.uow.Do(ctx, func(ctx context.Context, tx postgresrepo.DB, after func(uow.AfterCommit)) error {
		existing, err := s.store.Assignments().With(tx).Get(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return fmt.Errorf("%s: %w", op, ErrAssignmentNotFound)
			}

			return fmt.Errorf("%s: %w", op, err)
		}

		if existing.Status != domain.AssignmentActive {
			return fmt.Errorf("%s: %w", op, ErrAlreadyCompleted)
		}

		newSeat, err := s.store.Seats().With(tx).Get(ctx, newSeatID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return fmt.Errorf("%s: %w", op, ErrSeatNotFound)
			}

			return fmt.Errorf("%s: %w", op, err)
		}

		// transfer targets a live seat swap: only 'available' qualifies
		if err := s.store.Assignments().With(tx).ClaimSeat(ctx, newSeatID, domain.SeatOccupied, false); err != nil {
			if errors.Is(err, repository.ErrSeatUnavailable) {
				return fmt.Errorf("%s: %w", op, ErrSeatUnavailable)
			}

			return fmt.Errorf("%s: %w", op, err)
		}

		moved, err = s.store.Assignments().With(tx).Repoint(ctx, id, newSeatID)
		if err != nil {
			if errors.Is(err, repository.ErrConflict) {
				return fmt.Errorf("%s: %w", op, ErrSeatUnavailable)
			}

			return fmt.Errorf("%s: %w", op, err)
		}

		if err := s.store.Assignments().With(tx).FreeSeat(ctx, existing.SeatID); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}

		after(func(ctx context.Context) {
			_ = s.cache.InvalidateProperty(ctx, newSeat.PropertyID)
			_ = s.cache.InvalidateStudent(ctx, existing.StudentID)
			_ = s.pubsub.PublishSeatsChanged(ctx, newSeat.PropertyID)
		})

		return nil
	})
	if err != nil {
		return nil, err
	}

	return moved, nil
}

type BookingInput struct {
	FullName   string
	Phone      string
	Email      string
	PropertyID int64
	SeatNumber string
	ShiftID    int64
	MoveInDate time.Time
	FeeCents   int
}

type BookingResult struct {
	Student    domain.Student    `json:"student"`
	Assignment domain.Assignment `json:"assignment"`
	Payment    domain.Payment    `json:"payment"`
}

// Book is the front-desk flow: find or create the student by phone, then
// assign the named seat for the shift starting at the move-in date. One
// transaction end to end.
func (s *Service) Book(ctx context.Context, in BookingInput, rlKey string) (*BookingResult, error) {
	const op = "service.assignment.Book"

	if in.Phone == "" || in.SeatNumber == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidBooking)
	}

	if s.limiter != nil && rlKey != "" {
		ok, _, retry, err := s.limiter.Allow(ctx, rlKey)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if !ok {
			return nil, fmt.Errorf("%s: rate limited, retry in %s", op, retry)
		}
	}

	var result BookingResult

	err := s.uow.Do(ctx, func(ctx context.Context, tx postgresrepo.DB, after func(uow.AfterCommit)) error {
		student, err := s.store.Students().With(tx).GetOrCreateByPhone(ctx, domain.Student{
			FullName: in.FullName,
			Phone:    in.Phone,
			Email:    in.Email,
		})
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}

		seat, err := s.store.Seats().With(tx).GetByNumber(ctx, in.PropertyID, in.SeatNumber)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return fmt.Errorf("%s: %w", op, ErrSeatNotFound)
			}

			return fmt.Errorf("%s: %w", op, err)
		}

		res, propertyID, err := s.assignCore(ctx, tx, AssignInput{
			StudentID: student.ID,
			SeatID:    seat.ID,
			ShiftID:   in.ShiftID,
			StartDate: in.MoveInDate,
			FeeCents:  in.FeeCents,
		})
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}

		result = BookingResult{
			Student:    *student,
			Assignment: res.Assignment,
			Payment:    res.Payment,
		}

		after(func(ctx context.Context) {
			_ = s.cache.InvalidateProperty(ctx, propertyID)
			_ = s.cache.InvalidateStudent(ctx, student.ID)
			_ = s.pubsub.PublishSeatsChanged(ctx, propertyID)
		})

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}

// Get retrieves an assignment by its ID.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Assignment, error) {
	const op = "service.assignment.Get"

	a, err := s.store.Assignments().Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrAssignmentNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return a, nil
}
