package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateBounds(t *testing.T) {
	for n := 1; n <= 1000; n++ {
		g, err := Generate(n)
		require.NoError(t, err)

		assert.LessOrEqual(t, g.Columns, MaxColumns, "n=%d", n)
		assert.GreaterOrEqual(t, g.Rows*g.Columns, n, "n=%d", n)
		// minimal rectangle: one fewer row would not fit
		assert.Less(t, (g.Rows-1)*g.Columns, n, "n=%d", n)
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a, err := Generate(50)
	require.NoError(t, err)
	b, err := Generate(50)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestGenerateKnownShapes(t *testing.T) {
	cases := []struct {
		n       int
		rows    int
		columns int
	}{
		{1, 1, 1},
		{2, 1, 2},
		{9, 3, 3},
		{10, 3, 4},
		{49, 7, 7},
		{50, 8, 7}, // ceil(sqrt(50))=8 capped to 7, rows=ceil(50/7)=8
		{1000, 143, 7},
	}

	for _, tc := range cases {
		g, err := Generate(tc.n)
		require.NoError(t, err)
		assert.Equal(t, tc.rows, g.Rows, "n=%d", tc.n)
		assert.Equal(t, tc.columns, g.Columns, "n=%d", tc.n)
	}
}

func TestGenerateAllCellsOccupiable(t *testing.T) {
	g, err := Generate(23)
	require.NoError(t, err)

	require.Len(t, g.Cells, g.Rows)
	for _, row := range g.Cells {
		require.Len(t, row, g.Columns)
		for _, cell := range row {
			assert.True(t, cell)
		}
	}
}

func TestGenerateRejectsNonPositive(t *testing.T) {
	for _, n := range []int{0, -1, -100} {
		_, err := Generate(n)
		assert.ErrorIs(t, err, ErrInvalidCapacity, "n=%d", n)
	}
}
