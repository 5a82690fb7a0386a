package seats

import (
	"fmt"

	"github.com/mashfiq/seatly/internal/domain"
)

// ExpandGrid turns a layout into seat records: the first totalSeats
// occupiable cells in row-major order become seats seat-1, seat-2, ...
// with 1-based grid positions. Cells past the capacity stay empty, so a
// 7x8 grid for 50 seats uses 50 of its 56 cells.
func ExpandGrid(l domain.Layout, totalSeats int, section string) []domain.Seat {
	if section == "" {
		section = "A"
	}

	out := make([]domain.Seat, 0, totalSeats)
	n := 0

	for r := 0; r < l.Rows && n < totalSeats; r++ {
		for c := 0; c < l.Columns && n < totalSeats; c++ {
			if r < len(l.Cells) && c < len(l.Cells[r]) && !l.Cells[r][c] {
				continue
			}

			n++
			out = append(out, domain.Seat{
				PropertyID: l.PropertyID,
				SeatNumber: fmt.Sprintf("seat-%d", n),
				Row:        r + 1,
				Column:     c + 1,
				Section:    section,
				Status:     domain.SeatAvailable,
			})
		}
	}

	return out
}
