package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mashfiq/seatly/internal/domain"
	"github.com/mashfiq/seatly/internal/repository"
)

type AssignmentRepo struct {
	pool *pgxpool.Pool
	db   DB
}

func (r *AssignmentRepo) With(db DB) *AssignmentRepo {
	cp := *r
	cp.db = db
	return &cp
}

func (r *AssignmentRepo) handle() DB {
	if r.db != nil {
		return r.db
	}
	return r.pool
}

// ClaimSeat moves a seat into target in a single conditional update: the
// check-and-set that keeps two concurrent assigns from both succeeding. A
// seat is claimable from 'available', or from 'prebooked' when the new
// assignment is future-dated.
//
// Returns:
//   - error: repository.ErrSeatUnavailable if the seat was not in a
//     claimable state.
func (r *AssignmentRepo) ClaimSeat(
	ctx context.Context,
	seatID int64,
	target domain.SeatStatus,
	futureDated bool,
) error {
	const op = "postgres.AssignmentRepo.ClaimSeat"

	db := r.handle()

	tag, err := db.Exec(ctx,
		`UPDATE seats SET status = $2
		 WHERE id = $1
		   AND (status = 'available' OR (status = 'prebooked' AND $3))`,
		seatID, target, futureDated,
	)
	if err != nil {
		return wrapDBErr(op, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, repository.ErrSeatUnavailable)
	}

	return nil
}

// FreeSeat returns a seat to 'available' unless another active assignment
// on a different shift still holds it. Freeing an already-free seat is a
// no-op.
func (r *AssignmentRepo) FreeSeat(ctx context.Context, seatID int64) error {
	const op = "postgres.AssignmentRepo.FreeSeat"

	db := r.handle()

	if _, err := db.Exec(ctx,
		`UPDATE seats SET status = 'available'
		 WHERE id = $1
		   AND status IN ('occupied', 'prebooked')
		   AND NOT EXISTS (
		       SELECT 1 FROM assignments
		       WHERE seat_id = $1 AND status = 'active')`,
		seatID,
	); err != nil {
		return wrapDBErr(op, err)
	}

	return nil
}

// ActiveExists reports whether the (seat, shift) pair already carries an
// active assignment. The partial unique index on assignments is the
// backstop for races; this check gives the caller a clean error first.
func (r *AssignmentRepo) ActiveExists(ctx context.Context, seatID, shiftID int64) (bool, error) {
	const op = "postgres.AssignmentRepo.ActiveExists"

	db := r.handle()

	var exists bool
	if err := db.QueryRow(ctx,
		`SELECT EXISTS (
		    SELECT 1 FROM assignments
		    WHERE seat_id = $1 AND shift_id = $2 AND status = 'active')`,
		seatID, shiftID,
	).Scan(&exists); err != nil {
		return false, wrapDBErr(op, err)
	}

	return exists, nil
}

func (r *AssignmentRepo) Insert(ctx context.Context, a domain.Assignment) error {
	const op = "postgres.AssignmentRepo.Insert"

	db := r.handle()

	if _, err := db.Exec(ctx,
		`INSERT INTO assignments(id, student_id, seat_id, shift_id, start_date, end_date, fee_cents, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		a.ID, a.StudentID, a.SeatID, a.ShiftID, a.StartDate, a.EndDate, a.FeeCents, a.Status,
	); err != nil {
		return wrapDBErr(op, err)
	}

	return nil
}

// Get retrieves an assignment by its ID.
//
// Returns:
//   - *domain.Assignment: the assignment when found.
//   - error: repository.ErrNotFound if the assignment is not found.
func (r *AssignmentRepo) Get(ctx context.Context, id uuid.UUID) (*domain.Assignment, error) {
	const op = "postgres.AssignmentRepo.Get"

	db := r.handle()

	var a domain.Assignment
	err := db.QueryRow(ctx,
		`SELECT id, student_id, seat_id, shift_id, start_date, end_date, fee_cents, status, created_at
		 FROM assignments WHERE id = $1`,
		id,
	).Scan(&a.ID, &a.StudentID, &a.SeatID, &a.ShiftID, &a.StartDate, &a.EndDate, &a.FeeCents, &a.Status, &a.CreatedAt)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	return &a, nil
}

// Complete closes an active assignment: status to 'completed', end date
// recorded. The assignment thereby moves from the student's current list
// into history, both being status-filtered projections.
//
// Returns:
//   - error: repository.ErrConflict if the assignment is not active.
func (r *AssignmentRepo) Complete(ctx context.Context, id uuid.UUID, endDate time.Time) (*domain.Assignment, error) {
	const op = "postgres.AssignmentRepo.Complete"

	db := r.handle()

	var a domain.Assignment
	err := db.QueryRow(ctx,
		`UPDATE assignments SET status = 'completed', end_date = $2
		 WHERE id = $1 AND status = 'active'
		 RETURNING id, student_id, seat_id, shift_id, start_date, end_date, fee_cents, status, created_at`,
		id, endDate,
	).Scan(&a.ID, &a.StudentID, &a.SeatID, &a.ShiftID, &a.StartDate, &a.EndDate, &a.FeeCents, &a.Status, &a.CreatedAt)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	return &a, nil
}

// Repoint moves an active assignment onto a new seat, keeping shift, fee
// and dates. The active (seat, shift) unique index rejects a repoint that
// would double-book the new seat.
func (r *AssignmentRepo) Repoint(ctx context.Context, id uuid.UUID, newSeatID int64) (*domain.Assignment, error) {
	const op = "postgres.AssignmentRepo.Repoint"

	db := r.handle()

	var a domain.Assignment
	err := db.QueryRow(ctx,
		`UPDATE assignments SET seat_id = $2
		 WHERE id = $1 AND status = 'active'
		 RETURNING id, student_id, seat_id, shift_id, start_date, end_date, fee_cents, status, created_at`,
		id, newSeatID,
	).Scan(&a.ID, &a.StudentID, &a.SeatID, &a.ShiftID, &a.StartDate, &a.EndDate, &a.FeeCents, &a.Status, &a.CreatedAt)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	return &a, nil
}

// ListByStudent retrieves a student's assignments in the given status with
// seat and shift populated, newest first.
func (r *AssignmentRepo) ListByStudent(
	ctx context.Context,
	studentID int64,
	status domain.AssignmentStatus,
) ([]domain.AssignmentDetail, error) {
	const op = "postgres.AssignmentRepo.ListByStudent"

	db := r.handle()

	rows, err := db.Query(ctx,
		`SELECT a.id, a.student_id, a.seat_id, a.shift_id, a.start_date, a.end_date, a.fee_cents, a.status, a.created_at,
		        s.id, s.property_id, s.seat_number, s.grid_row, s.grid_column, s.section, s.status,
		        sh.id, sh.name, sh.start_time, sh.end_time, sh.fee_cents
		 FROM assignments a
		 JOIN seats s ON s.id = a.seat_id
		 JOIN shifts sh ON sh.id = a.shift_id
		 WHERE a.student_id = $1 AND a.status = $2
		 ORDER BY a.start_date DESC`,
		studentID, status,
	)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	defer rows.Close()

	var out []domain.AssignmentDetail
	for rows.Next() {
		var d domain.AssignmentDetail
		if err := rows.Scan(
			&d.ID, &d.StudentID, &d.SeatID, &d.ShiftID, &d.StartDate, &d.EndDate, &d.FeeCents, &d.Status, &d.CreatedAt,
			&d.Seat.ID, &d.Seat.PropertyID, &d.Seat.SeatNumber, &d.Seat.Row, &d.Seat.Column, &d.Seat.Section, &d.Seat.Status,
			&d.Shift.ID, &d.Shift.Name, &d.Shift.StartTime, &d.Shift.EndTime, &d.Shift.FeeCents,
		); err != nil {
			return nil, wrapDBErr(op, err)
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapDBErr(op, err)
	}

	return out, nil
}
