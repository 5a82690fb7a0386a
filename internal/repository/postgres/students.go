package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mashfiq/seatly/internal/domain"
)

type StudentRepo struct {
	pool *pgxpool.Pool
	db   DB
}

func (r *StudentRepo) With(db DB) *StudentRepo {
	cp := *r
	cp.db = db
	return &cp
}

func (r *StudentRepo) handle() DB {
	if r.db != nil {
		return r.db
	}
	return r.pool
}

func (r *StudentRepo) Get(ctx context.Context, id int64) (*domain.Student, error) {
	const op = "postgres.StudentRepo.Get"

	db := r.handle()

	var s domain.Student
	err := db.QueryRow(ctx,
		`SELECT id, full_name, phone, email, status, created_at
		 FROM students WHERE id = $1`,
		id,
	).Scan(&s.ID, &s.FullName, &s.Phone, &s.Email, &s.Status, &s.CreatedAt)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	return &s, nil
}

// GetOrCreateByPhone returns the student with the given phone, creating
// the record on first booking. The no-op DO UPDATE makes the insert return
// the existing row instead of zero rows on conflict.
func (r *StudentRepo) GetOrCreateByPhone(ctx context.Context, s domain.Student) (*domain.Student, error) {
	const op = "postgres.StudentRepo.GetOrCreateByPhone"

	db := r.handle()

	var out domain.Student
	err := db.QueryRow(ctx,
		`INSERT INTO students(full_name, phone, email, status)
		 VALUES ($1, $2, $3, 'active')
		 ON CONFLICT (phone) DO UPDATE SET phone = EXCLUDED.phone
		 RETURNING id, full_name, phone, email, status, created_at`,
		s.FullName, s.Phone, s.Email,
	).Scan(&out.ID, &out.FullName, &out.Phone, &out.Email, &out.Status, &out.CreatedAt)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	return &out, nil
}

// SetStatus flips a student between active and inactive.
func (r *StudentRepo) SetStatus(ctx context.Context, id int64, status domain.StudentStatus) (*domain.Student, error) {
	const op = "postgres.StudentRepo.SetStatus"

	db := r.handle()

	var s domain.Student
	err := db.QueryRow(ctx,
		`UPDATE students SET status = $2
		 WHERE id = $1
		 RETURNING id, full_name, phone, email, status, created_at`,
		id, status,
	).Scan(&s.ID, &s.FullName, &s.Phone, &s.Email, &s.Status, &s.CreatedAt)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	return &s, nil
}
