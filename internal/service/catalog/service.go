package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mashfiq/seatly/internal/domain"
	"github.com/mashfiq/seatly/internal/layout"
	"github.com/mashfiq/seatly/internal/repository"
	postgresrepo "github.com/mashfiq/seatly/internal/repository/postgres"
	redisrepo "github.com/mashfiq/seatly/internal/repository/redis"
	"github.com/mashfiq/seatly/internal/uow"
)

type Config struct {
	PropertyTTL time.Duration
	LayoutTTL   time.Duration
	ShiftsTTL   time.Duration
	StudentTTL  time.Duration
}

type Service struct {
	store *postgresrepo.Store
	cache *redisrepo.Cache
	uow   *uow.UoW
	cfg   Config
}

func New(store *postgresrepo.Store, cache *redisrepo.Cache, cfg Config) *Service {
	if cfg.PropertyTTL <= 0 {
		cfg.PropertyTTL = 5 * time.Minute
	}

	if cfg.LayoutTTL <= 0 {
		cfg.LayoutTTL = 5 * time.Minute
	}

	if cfg.ShiftsTTL <= 0 {
		cfg.ShiftsTTL = 10 * time.Minute
	}

	if cfg.StudentTTL <= 0 {
		cfg.StudentTTL = 30 * time.Second
	}

	return &Service{
		store: store,
		cache: cache,
		uow:   uow.NewUoW(store),
		cfg:   cfg,
	}
}

// CreateProperty registers a new property.
//
// Returns:
//   - int64: the created property ID.
//   - error: catalog.ErrPropertyConflict if the name is taken.
//   - error: catalog.ErrInvalidCapacity if totalSeats is not positive.
func (s *Service) CreateProperty(ctx context.Context, p domain.Property) (int64, error) {
	const op = "service.catalog.CreateProperty"

	if p.TotalSeats <= 0 {
		return 0, fmt.Errorf("%s: %w", op, ErrInvalidCapacity)
	}

	id, err := s.store.Properties().Create(ctx, p)
	if err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return 0, fmt.Errorf("%s: %w", op, ErrPropertyConflict)
		}

		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

// GetProperty retrieves a property, served through the cache.
func (s *Service) GetProperty(ctx context.Context, id int64) (*domain.Property, error) {
	const op = "service.catalog.GetProperty"

	key := redisrepo.KeyProperty(id)

	p, err := redisrepo.GetOrSetJSON(
		ctx,
		s.cache,
		key,
		s.cfg.PropertyTTL,
		func(ctx context.Context) (domain.Property, error) {
			out, err := s.store.Properties().Get(ctx, id)
			if err != nil {
				if errors.Is(err, repository.ErrNotFound) {
					return domain.Property{}, ErrPropertyNotFound
				}

				return domain.Property{}, err
			}

			return *out, nil
		},
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &p, nil
}

// SaveLayout derives a property's grid from its declared capacity and
// upserts it. Idempotent: re-saving with an unchanged capacity reproduces
// the identical grid.
//
// Returns:
//   - *domain.Layout: the saved layout.
//   - error: catalog.ErrPropertyNotFound if the property does not exist.
func (s *Service) SaveLayout(ctx context.Context, propertyID int64) (*domain.Layout, error) {
	const op = "service.catalog.SaveLayout"

	var saved domain.Layout

	err := s.uow.Do(ctx, func(ctx context.Context, tx postgresrepo.DB, after func(uow.AfterCommit)) error {
		p, err := s.store.Properties().With(tx).Get(ctx, propertyID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return fmt.Errorf("%s: %w", op, ErrPropertyNotFound)
			}

			return fmt.Errorf("%s: %w", op, err)
		}

		grid, err := layout.Generate(p.TotalSeats)
		if err != nil {
			return fmt.Errorf("%s: %w", op, ErrInvalidCapacity)
		}

		saved = domain.Layout{
			PropertyID: propertyID,
			Rows:       grid.Rows,
			Columns:    grid.Columns,
			AisleWidth: domain.DefaultAisleWidth,
			SeatWidth:  domain.DefaultSeatWidth,
			SeatHeight: domain.DefaultSeatHeight,
			Gap:        domain.DefaultSeatGap,
			Cells:      grid.Cells,
		}

		if err := s.store.Properties().With(tx).SaveLayout(ctx, saved); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}

		after(func(ctx context.Context) {
			_ = s.cache.InvalidateProperty(ctx, propertyID)
		})

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &saved, nil
}

// GetLayout retrieves a property's layout, served through the cache.
func (s *Service) GetLayout(ctx context.Context, propertyID int64) (*domain.Layout, error) {
	const op = "service.catalog.GetLayout"

	key := redisrepo.KeyLayout(propertyID)

	l, err := redisrepo.GetOrSetJSON(
		ctx,
		s.cache,
		key,
		s.cfg.LayoutTTL,
		func(ctx context.Context) (domain.Layout, error) {
			out, err := s.store.Properties().GetLayout(ctx, propertyID)
			if err != nil {
				if errors.Is(err, repository.ErrNotFound) {
					return domain.Layout{}, ErrLayoutNotFound
				}

				return domain.Layout{}, err
			}

			return *out, nil
		},
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &l, nil
}

// SetStudentStatus flips a student between active and inactive. Inactive
// students keep their history; booking for them is a front-desk decision,
// not enforced here.
func (s *Service) SetStudentStatus(ctx context.Context, studentID int64, status domain.StudentStatus) (*domain.Student, error) {
	const op = "service.catalog.SetStudentStatus"

	if status != domain.StudentActive && status != domain.StudentInactive {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidStudentStatus)
	}

	student, err := s.store.Students().SetStatus(ctx, studentID, status)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrStudentNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	_ = s.cache.InvalidateStudent(ctx, studentID)

	return student, nil
}

// CreateShift adds a shift to the catalog.
func (s *Service) CreateShift(ctx context.Context, sh domain.Shift) (int64, error) {
	const op = "service.catalog.CreateShift"

	id, err := s.store.Shifts().Create(ctx, sh)
	if err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return 0, fmt.Errorf("%s: %w", op, ErrShiftConflict)
		}

		return 0, fmt.Errorf("%s: %w", op, err)
	}

	_ = s.cache.InvalidateShifts(ctx)

	return id, nil
}

// ListShifts retrieves all shifts, served through the cache.
func (s *Service) ListShifts(ctx context.Context) ([]domain.Shift, error) {
	const op = "service.catalog.ListShifts"

	shifts, err := redisrepo.GetOrSetJSON(
		ctx,
		s.cache,
		redisrepo.KeyShifts(),
		s.cfg.ShiftsTTL,
		func(ctx context.Context) ([]domain.Shift, error) {
			return s.store.Shifts().List(ctx)
		},
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return shifts, nil
}

// GetStudentDetail assembles the populated student view: identity, active
// assignments with seat and shift, assignment history and payments.
//
// Returns:
//   - *domain.StudentDetail: the populated student.
//   - error: catalog.ErrStudentNotFound if the student does not exist.
func (s *Service) GetStudentDetail(ctx context.Context, studentID int64) (*domain.StudentDetail, error) {
	const op = "service.catalog.GetStudentDetail"

	key := redisrepo.KeyStudentDetail(studentID)

	d, err := redisrepo.GetOrSetJSON(
		ctx,
		s.cache,
		key,
		s.cfg.StudentTTL,
		func(ctx context.Context) (domain.StudentDetail, error) {
			student, err := s.store.Students().Get(ctx, studentID)
			if err != nil {
				if errors.Is(err, repository.ErrNotFound) {
					return domain.StudentDetail{}, ErrStudentNotFound
				}

				return domain.StudentDetail{}, err
			}

			current, err := s.store.Assignments().ListByStudent(ctx, studentID, domain.AssignmentActive)
			if err != nil {
				return domain.StudentDetail{}, err
			}

			history, err := s.store.Assignments().ListByStudent(ctx, studentID, domain.AssignmentCompleted)
			if err != nil {
				return domain.StudentDetail{}, err
			}

			payments, err := s.store.Payments().ListByStudent(ctx, studentID)
			if err != nil {
				return domain.StudentDetail{}, err
			}

			return domain.StudentDetail{
				Student:            *student,
				CurrentAssignments: current,
				AssignmentHistory:  history,
				PaymentHistory:     payments,
			}, nil
		},
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &d, nil
}
