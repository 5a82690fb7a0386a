package postgres

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mashfiq/seatly/internal/domain"
)

type PropertyRepo struct {
	pool *pgxpool.Pool
	db   DB
}

func (r *PropertyRepo) With(db DB) *PropertyRepo {
	cp := *r
	cp.db = db
	return &cp
}

func (r *PropertyRepo) handle() DB {
	if r.db != nil {
		return r.db
	}
	return r.pool
}

func (r *PropertyRepo) Create(ctx context.Context, p domain.Property) (int64, error) {
	const op = "postgres.PropertyRepo.Create"

	db := r.handle()

	var id int64
	if err := db.QueryRow(ctx,
		`INSERT INTO properties(name, address, total_seats, opening_hours)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		p.Name, p.Address, p.TotalSeats, p.OpeningHours,
	).Scan(&id); err != nil {
		return 0, wrapDBErr(op, err)
	}

	return id, nil
}

// Get retrieves a property by its ID.
//
// Returns:
//   - *domain.Property: the property when found.
//   - error: repository.ErrNotFound if the property is not found.
func (r *PropertyRepo) Get(ctx context.Context, id int64) (*domain.Property, error) {
	const op = "postgres.PropertyRepo.Get"

	db := r.handle()

	var p domain.Property
	err := db.QueryRow(ctx,
		`SELECT id, name, address, total_seats, opening_hours
		 FROM properties WHERE id = $1`,
		id,
	).Scan(&p.ID, &p.Name, &p.Address, &p.TotalSeats, &p.OpeningHours)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	return &p, nil
}

// SaveLayout upserts a property's layout. Re-saving the layout generated
// from the same capacity is a no-op data-wise, which keeps layout saves
// idempotent.
func (r *PropertyRepo) SaveLayout(ctx context.Context, l domain.Layout) error {
	const op = "postgres.PropertyRepo.SaveLayout"

	db := r.handle()

	cells, err := json.Marshal(l.Cells)
	if err != nil {
		return wrapDBErr(op, err)
	}

	if _, err := db.Exec(ctx,
		`INSERT INTO layouts(property_id, grid_rows, grid_columns, aisle_width, seat_width, seat_height, gap, cells)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 ON CONFLICT (property_id) DO UPDATE
		 SET grid_rows = EXCLUDED.grid_rows,
		     grid_columns = EXCLUDED.grid_columns,
		     aisle_width = EXCLUDED.aisle_width,
		     seat_width = EXCLUDED.seat_width,
		     seat_height = EXCLUDED.seat_height,
		     gap = EXCLUDED.gap,
		     cells = EXCLUDED.cells`,
		l.PropertyID, l.Rows, l.Columns, l.AisleWidth, l.SeatWidth, l.SeatHeight, l.Gap, cells,
	); err != nil {
		return wrapDBErr(op, err)
	}

	return nil
}

// GetLayout retrieves a property's layout.
//
// Returns:
//   - *domain.Layout: the layout when found.
//   - error: repository.ErrNotFound if the property has no layout.
func (r *PropertyRepo) GetLayout(ctx context.Context, propertyID int64) (*domain.Layout, error) {
	const op = "postgres.PropertyRepo.GetLayout"

	db := r.handle()

	var l domain.Layout
	var cells []byte
	err := db.QueryRow(ctx,
		`SELECT property_id, grid_rows, grid_columns, aisle_width, seat_width, seat_height, gap, cells
		 FROM layouts WHERE property_id = $1`,
		propertyID,
	).Scan(&l.PropertyID, &l.Rows, &l.Columns, &l.AisleWidth, &l.SeatWidth, &l.SeatHeight, &l.Gap, &cells)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	if err := json.Unmarshal(cells, &l.Cells); err != nil {
		return nil, wrapDBErr(op, err)
	}

	return &l, nil
}
