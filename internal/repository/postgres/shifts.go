package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mashfiq/seatly/internal/domain"
)

type ShiftRepo struct {
	pool *pgxpool.Pool
	db   DB
}

func (r *ShiftRepo) With(db DB) *ShiftRepo {
	cp := *r
	cp.db = db
	return &cp
}

func (r *ShiftRepo) handle() DB {
	if r.db != nil {
		return r.db
	}
	return r.pool
}

func (r *ShiftRepo) Create(ctx context.Context, s domain.Shift) (int64, error) {
	const op = "postgres.ShiftRepo.Create"

	db := r.handle()

	var id int64
	if err := db.QueryRow(ctx,
		`INSERT INTO shifts(name, start_time, end_time, fee_cents)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		s.Name, s.StartTime, s.EndTime, s.FeeCents,
	).Scan(&id); err != nil {
		return 0, wrapDBErr(op, err)
	}

	return id, nil
}

func (r *ShiftRepo) Get(ctx context.Context, id int64) (*domain.Shift, error) {
	const op = "postgres.ShiftRepo.Get"

	db := r.handle()

	var s domain.Shift
	err := db.QueryRow(ctx,
		`SELECT id, name, start_time, end_time, fee_cents
		 FROM shifts WHERE id = $1`,
		id,
	).Scan(&s.ID, &s.Name, &s.StartTime, &s.EndTime, &s.FeeCents)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	return &s, nil
}

func (r *ShiftRepo) List(ctx context.Context) ([]domain.Shift, error) {
	const op = "postgres.ShiftRepo.List"

	db := r.handle()

	rows, err := db.Query(ctx,
		`SELECT id, name, start_time, end_time, fee_cents
		 FROM shifts
		 ORDER BY start_time`,
	)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	defer rows.Close()

	var out []domain.Shift
	for rows.Next() {
		var s domain.Shift
		if err := rows.Scan(&s.ID, &s.Name, &s.StartTime, &s.EndTime, &s.FeeCents); err != nil {
			return nil, wrapDBErr(op, err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapDBErr(op, err)
	}

	return out, nil
}
