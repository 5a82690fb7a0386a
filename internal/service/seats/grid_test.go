package seats

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mashfiq/seatly/internal/domain"
	"github.com/mashfiq/seatly/internal/layout"
)

func gridLayout(t *testing.T, totalSeats int) domain.Layout {
	t.Helper()

	g, err := layout.Generate(totalSeats)
	require.NoError(t, err)

	return domain.Layout{
		PropertyID: 1,
		Rows:       g.Rows,
		Columns:    g.Columns,
		Cells:      g.Cells,
	}
}

func TestExpandGridNumbering(t *testing.T) {
	l := gridLayout(t, 10)

	out := ExpandGrid(l, 10, "A")
	require.Len(t, out, 10)

	for i, s := range out {
		assert.Equal(t, fmt.Sprintf("seat-%d", i+1), s.SeatNumber)
		assert.Equal(t, domain.SeatAvailable, s.Status)
		assert.Equal(t, "A", s.Section)
	}

	// row-major on a 3x4 grid
	assert.Equal(t, 1, out[0].Row)
	assert.Equal(t, 1, out[0].Column)
	assert.Equal(t, 1, out[3].Row)
	assert.Equal(t, 4, out[3].Column)
	assert.Equal(t, 2, out[4].Row)
	assert.Equal(t, 1, out[4].Column)
}

func TestExpandGridPartialLastRow(t *testing.T) {
	// 50 seats on a 7-column grid: 8 rows, 56 cells, 50 used
	l := gridLayout(t, 50)
	require.Equal(t, 8, l.Rows)
	require.Equal(t, 7, l.Columns)

	out := ExpandGrid(l, 50, "")
	require.Len(t, out, 50)

	last := out[len(out)-1]
	assert.Equal(t, "seat-50", last.SeatNumber)
	assert.Equal(t, 8, last.Row)
	assert.Equal(t, 1, last.Column)
}

func TestExpandGridSkipsBlockedCells(t *testing.T) {
	l := gridLayout(t, 9) // 3x3
	l.Cells[0][1] = false // aisle cell

	out := ExpandGrid(l, 8, "B")
	require.Len(t, out, 8)

	// seat-2 skips the blocked cell
	assert.Equal(t, 1, out[1].Row)
	assert.Equal(t, 3, out[1].Column)
	for _, s := range out {
		assert.Equal(t, "B", s.Section)
	}
}

func TestExpandGridUniqueNumbers(t *testing.T) {
	l := gridLayout(t, 100)
	out := ExpandGrid(l, 100, "A")
	require.Len(t, out, 100)

	seen := make(map[string]bool, len(out))
	for _, s := range out {
		assert.False(t, seen[s.SeatNumber], "duplicate %s", s.SeatNumber)
		seen[s.SeatNumber] = true
	}
}
