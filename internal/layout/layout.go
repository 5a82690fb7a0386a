// Package layout derives a property's rectangular seat grid from its
// declared capacity.
package layout

import (
	"errors"
	"math"
)

// MaxColumns caps grid width; wider rooms are unusable on the floor and on
// the dashboard seat map alike.
const MaxColumns = 7

var ErrInvalidCapacity = errors.New("total seats must be positive")

type Grid struct {
	Rows    int
	Columns int
	Cells   [][]bool
}

// Generate derives the minimal roughly-square grid holding totalSeats:
// columns = min(MaxColumns, ceil(sqrt(totalSeats))), rows = ceil(n/columns).
// Every cell starts occupiable; aisles are carved later by staff, if ever.
// Deterministic: the same capacity always yields the same grid.
func Generate(totalSeats int) (Grid, error) {
	if totalSeats <= 0 {
		return Grid{}, ErrInvalidCapacity
	}

	columns := int(math.Ceil(math.Sqrt(float64(totalSeats))))
	if columns > MaxColumns {
		columns = MaxColumns
	}
	rows := (totalSeats + columns - 1) / columns

	cells := make([][]bool, rows)
	for r := range cells {
		cells[r] = make([]bool, columns)
		for c := range cells[r] {
			cells[r][c] = true
		}
	}

	return Grid{Rows: rows, Columns: columns, Cells: cells}, nil
}
