// Package occupancy summarizes a property's seats by status for the
// dashboard cards.
package occupancy

import (
	"context"
	"errors"
	"fmt"

	"github.com/mashfiq/seatly/internal/domain"
	"github.com/mashfiq/seatly/internal/repository"
	postgresrepo "github.com/mashfiq/seatly/internal/repository/postgres"
)

var ErrPropertyNotFound = errors.New("property not found")

type Service struct {
	store *postgresrepo.Store
}

func New(store *postgresrepo.Store) *Service {
	return &Service{store: store}
}

// Summarize counts a property's seats by status, optionally scoped to one
// section. Always recomputed against the seat table: seat state changes
// constantly under assignments, so this read is never cached.
func (s *Service) Summarize(ctx context.Context, propertyID int64, section string) (*domain.SeatCounts, error) {
	const op = "service.occupancy.Summarize"

	if _, err := s.store.Properties().Get(ctx, propertyID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrPropertyNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	counts, err := s.store.Seats().CountsByStatus(ctx, propertyID, section)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return counts, nil
}
