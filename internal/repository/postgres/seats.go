package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mashfiq/seatly/internal/domain"
	"github.com/mashfiq/seatly/internal/repository"
)

type SeatRepo struct {
	pool *pgxpool.Pool
	db   DB
}

func (r *SeatRepo) With(db DB) *SeatRepo {
	cp := *r
	cp.db = db
	return &cp
}

func (r *SeatRepo) handle() DB {
	if r.db != nil {
		return r.db
	}
	return r.pool
}

// BulkCreate inserts the seats expanded from a property's layout.
//
// Returns:
//   - error: repository.ErrSeatsExist if the property already has seats;
//     the caller must clear them explicitly first.
func (r *SeatRepo) BulkCreate(ctx context.Context, propertyID int64, seats []domain.Seat) error {
	const op = "postgres.SeatRepo.BulkCreate"

	db := r.handle()

	var exists bool
	if err := db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM seats WHERE property_id = $1)`,
		propertyID,
	).Scan(&exists); err != nil {
		return wrapDBErr(op, err)
	}
	if exists {
		return fmt.Errorf("%s: %w", op, repository.ErrSeatsExist)
	}

	batch := &pgx.Batch{}
	for _, s := range seats {
		batch.Queue(
			`INSERT INTO seats(property_id, seat_number, grid_row, grid_column, section, status)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			propertyID, s.SeatNumber, s.Row, s.Column, s.Section, s.Status,
		)
	}
	if err := db.SendBatch(ctx, batch).Close(); err != nil {
		return wrapDBErr(op, err)
	}

	return nil
}

// List retrieves a property's seats, optionally filtered by status and
// section, ordered by grid position.
func (r *SeatRepo) List(
	ctx context.Context,
	propertyID int64,
	status domain.SeatStatus,
	section string,
) ([]domain.Seat, error) {
	const op = "postgres.SeatRepo.List"

	db := r.handle()

	rows, err := db.Query(ctx,
		`SELECT id, property_id, seat_number, grid_row, grid_column, section, status
		 FROM seats
		 WHERE property_id = $1
		   AND ($2 = '' OR status = $2)
		   AND ($3 = '' OR section = $3)
		 ORDER BY grid_row, grid_column`,
		propertyID, string(status), section,
	)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	defer rows.Close()

	var out []domain.Seat
	for rows.Next() {
		var s domain.Seat
		if err := rows.Scan(&s.ID, &s.PropertyID, &s.SeatNumber, &s.Row, &s.Column, &s.Section, &s.Status); err != nil {
			return nil, wrapDBErr(op, err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapDBErr(op, err)
	}

	return out, nil
}

// Get retrieves a seat by its ID.
func (r *SeatRepo) Get(ctx context.Context, id int64) (*domain.Seat, error) {
	const op = "postgres.SeatRepo.Get"

	db := r.handle()

	var s domain.Seat
	err := db.QueryRow(ctx,
		`SELECT id, property_id, seat_number, grid_row, grid_column, section, status
		 FROM seats WHERE id = $1`,
		id,
	).Scan(&s.ID, &s.PropertyID, &s.SeatNumber, &s.Row, &s.Column, &s.Section, &s.Status)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	return &s, nil
}

// GetByNumber retrieves a seat by its display number within a property.
func (r *SeatRepo) GetByNumber(ctx context.Context, propertyID int64, seatNumber string) (*domain.Seat, error) {
	const op = "postgres.SeatRepo.GetByNumber"

	db := r.handle()

	var s domain.Seat
	err := db.QueryRow(ctx,
		`SELECT id, property_id, seat_number, grid_row, grid_column, section, status
		 FROM seats WHERE property_id = $1 AND seat_number = $2`,
		propertyID, seatNumber,
	).Scan(&s.ID, &s.PropertyID, &s.SeatNumber, &s.Row, &s.Column, &s.Section, &s.Status)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	return &s, nil
}

// UpdateStatus sets a seat's status unconditionally. Assignment-driven
// transitions go through AssignmentRepo instead; this is the staff-facing
// edit (maintenance on/off, manual corrections).
func (r *SeatRepo) UpdateStatus(ctx context.Context, id int64, status domain.SeatStatus) (*domain.Seat, error) {
	const op = "postgres.SeatRepo.UpdateStatus"

	db := r.handle()

	var s domain.Seat
	err := db.QueryRow(ctx,
		`UPDATE seats SET status = $2
		 WHERE id = $1
		 RETURNING id, property_id, seat_number, grid_row, grid_column, section, status`,
		id, status,
	).Scan(&s.ID, &s.PropertyID, &s.SeatNumber, &s.Row, &s.Column, &s.Section, &s.Status)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	return &s, nil
}

// Delete removes a seat.
//
// Returns:
//   - error: repository.ErrSeatAssigned if an active assignment references
//     the seat.
//   - error: repository.ErrNotFound if the seat does not exist.
func (r *SeatRepo) Delete(ctx context.Context, id int64) error {
	const op = "postgres.SeatRepo.Delete"

	db := r.handle()

	var assigned bool
	if err := db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM assignments WHERE seat_id = $1 AND status = 'active')`,
		id,
	).Scan(&assigned); err != nil {
		return wrapDBErr(op, err)
	}
	if assigned {
		return fmt.Errorf("%s: %w", op, repository.ErrSeatAssigned)
	}

	tag, err := db.Exec(ctx, `DELETE FROM seats WHERE id = $1`, id)
	if err != nil {
		return wrapDBErr(op, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, repository.ErrNotFound)
	}

	return nil
}

// DeleteByProperty clears all of a property's seats ahead of a fresh bulk
// create. Refused while any seat still carries an active assignment.
func (r *SeatRepo) DeleteByProperty(ctx context.Context, propertyID int64) (int64, error) {
	const op = "postgres.SeatRepo.DeleteByProperty"

	db := r.handle()

	var assigned bool
	if err := db.QueryRow(ctx,
		`SELECT EXISTS (
		    SELECT 1 FROM assignments a
		    JOIN seats s ON s.id = a.seat_id
		    WHERE s.property_id = $1 AND a.status = 'active')`,
		propertyID,
	).Scan(&assigned); err != nil {
		return 0, wrapDBErr(op, err)
	}
	if assigned {
		return 0, fmt.Errorf("%s: %w", op, repository.ErrSeatAssigned)
	}

	tag, err := db.Exec(ctx, `DELETE FROM seats WHERE property_id = $1`, propertyID)
	if err != nil {
		return 0, wrapDBErr(op, err)
	}

	return tag.RowsAffected(), nil
}

// CountsByStatus counts a property's seats by status, optionally scoped to
// one section. Total excludes maintenance seats.
func (r *SeatRepo) CountsByStatus(ctx context.Context, propertyID int64, section string) (*domain.SeatCounts, error) {
	const op = "postgres.SeatRepo.CountsByStatus"

	db := r.handle()

	var sc domain.SeatCounts
	err := db.QueryRow(ctx,
		`SELECT
		    COALESCE(SUM(CASE WHEN status = 'available' THEN 1 ELSE 0 END), 0),
		    COALESCE(SUM(CASE WHEN status = 'occupied' THEN 1 ELSE 0 END), 0),
		    COALESCE(SUM(CASE WHEN status = 'prebooked' THEN 1 ELSE 0 END), 0),
		    COALESCE(SUM(CASE WHEN status = 'maintenance' THEN 1 ELSE 0 END), 0)
		 FROM seats
		 WHERE property_id = $1
		   AND ($2 = '' OR section = $2)`,
		propertyID, section,
	).Scan(&sc.Available, &sc.Occupied, &sc.Prebooked, &sc.Maintenance)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	sc.Total = sc.Available + sc.Occupied + sc.Prebooked

	return &sc, nil
}
