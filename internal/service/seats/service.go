package seats

import (
	"context"
	"errors"
	"fmt"

	"github.com/mashfiq/seatly/internal/domain"
	redisx "github.com/mashfiq/seatly/internal/redis"
	"github.com/mashfiq/seatly/internal/repository"
	postgresrepo "github.com/mashfiq/seatly/internal/repository/postgres"
	redisrepo "github.com/mashfiq/seatly/internal/repository/redis"
	"github.com/mashfiq/seatly/internal/uow"
)

type Service struct {
	store  *postgresrepo.Store
	cache  *redisrepo.Cache
	pubsub *redisx.SeatsPubSub
	uow    *uow.UoW
}

func New(store *postgresrepo.Store, cache *redisrepo.Cache, pubsub *redisx.SeatsPubSub) *Service {
	return &Service{
		store:  store,
		cache:  cache,
		pubsub: pubsub,
		uow:    uow.NewUoW(store),
	}
}

// BulkCreateFromLayout expands a property's saved layout into seat records
// and inserts them in one transaction.
//
// Returns:
//   - []domain.Seat: the created seats.
//   - error: seats.ErrSeatsExist if the property already has seats; clear
//     them explicitly first.
//   - error: seats.ErrPropertyNotFound / seats.ErrLayoutNotFound when the
//     property or its layout is missing.
func (s *Service) BulkCreateFromLayout(ctx context.Context, propertyID int64, section string) ([]domain.Seat, error) {
	const op = "service.seats.BulkCreateFromLayout"

	var created []domain.Seat

	err := s.uow.Do(ctx, func(ctx context.Context, tx postgresrepo.DB, after func(uow.AfterCommit)) error {
		p, err := s.store.Properties().With(tx).Get(ctx, propertyID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return fmt.Errorf("%s: %w", op, ErrPropertyNotFound)
			}

			return fmt.Errorf("%s: %w", op, err)
		}

		l, err := s.store.Properties().With(tx).GetLayout(ctx, propertyID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return fmt.Errorf("%s: %w", op, ErrLayoutNotFound)
			}

			return fmt.Errorf("%s: %w", op, err)
		}

		created = ExpandGrid(*l, p.TotalSeats, section)

		if err := s.store.Seats().With(tx).BulkCreate(ctx, propertyID, created); err != nil {
			if errors.Is(err, repository.ErrSeatsExist) || errors.Is(err, repository.ErrConflict) {
				return fmt.Errorf("%s: %w", op, ErrSeatsExist)
			}

			return fmt.Errorf("%s: %w", op, err)
		}

		after(func(ctx context.Context) {
			_ = s.cache.InvalidateProperty(ctx, propertyID)
			_ = s.pubsub.PublishSeatsChanged(ctx, propertyID)
		})

		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

// List retrieves a property's seats with optional status and section
// filters.
func (s *Service) List(
	ctx context.Context,
	propertyID int64,
	status domain.SeatStatus,
	section string,
) ([]domain.Seat, error) {
	const op = "service.seats.List"

	if status != "" && !domain.ValidSeatStatus(status) {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidStatus)
	}

	out, err := s.store.Seats().List(ctx, propertyID, status, section)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

// UpdateStatus is the staff-facing seat edit. It validates the status
// value only; occupied/prebooked transitions tied to assignments go
// through the assignment service, maintenance may be set here freely.
func (s *Service) UpdateStatus(ctx context.Context, seatID int64, status domain.SeatStatus) (*domain.Seat, error) {
	const op = "service.seats.UpdateStatus"

	if !domain.ValidSeatStatus(status) {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidStatus)
	}

	seat, err := s.store.Seats().UpdateStatus(ctx, seatID, status)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrSeatNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	_ = s.cache.InvalidateProperty(ctx, seat.PropertyID)
	_ = s.pubsub.PublishSeatsChanged(ctx, seat.PropertyID)

	return seat, nil
}

// Delete removes a seat.
//
// Returns:
//   - error: seats.ErrSeatAssigned if an active assignment references the
//     seat.
//   - error: seats.ErrSeatNotFound if the seat does not exist.
func (s *Service) Delete(ctx context.Context, seatID int64) error {
	const op = "service.seats.Delete"

	seat, err := s.store.Seats().Get(ctx, seatID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, ErrSeatNotFound)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	err = s.uow.Do(ctx, func(ctx context.Context, tx postgresrepo.DB, after func(uow.AfterCommit)) error {
		if err := s.store.Seats().With(tx).Delete(ctx, seatID); err != nil {
			if errors.Is(err, repository.ErrSeatAssigned) {
				return fmt.Errorf("%s: %w", op, ErrSeatAssigned)
			}

			if errors.Is(err, repository.ErrNotFound) {
				return fmt.Errorf("%s: %w", op, ErrSeatNotFound)
			}

			return fmt.Errorf("%s: %w", op, err)
		}

		after(func(ctx context.Context) {
			_ = s.cache.InvalidateProperty(ctx, seat.PropertyID)
			_ = s.pubsub.PublishSeatsChanged(ctx, seat.PropertyID)
		})

		return nil
	})

	return err
}

// ClearProperty removes every seat of a property ahead of a fresh bulk
// create. Refused while any active assignment remains.
func (s *Service) ClearProperty(ctx context.Context, propertyID int64) (int64, error) {
	const op = "service.seats.ClearProperty"

	var removed int64

	err := s.uow.Do(ctx, func(ctx context.Context, tx postgresrepo.DB, after func(uow.AfterCommit)) error {
		n, err := s.store.Seats().With(tx).DeleteByProperty(ctx, propertyID)
		if err != nil {
			if errors.Is(err, repository.ErrSeatAssigned) {
				return fmt.Errorf("%s: %w", op, ErrSeatAssigned)
			}

			return fmt.Errorf("%s: %w", op, err)
		}

		removed = n

		after(func(ctx context.Context) {
			_ = s.cache.InvalidateProperty(ctx, propertyID)
			_ = s.pubsub.PublishSeatsChanged(ctx, propertyID)
		})

		return nil
	})
	if err != nil {
		return 0, err
	}

	return removed, nil
}
