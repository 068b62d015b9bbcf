// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/appledore/matrix"
	"github.com/stretchr/testify/require"
)

func TestNewStore_Dimensions(t *testing.T) {
	s, err := matrix.NewStore[int](0)
	require.NoError(t, err)
	require.Equal(t, 0, s.Size())

	_, err = matrix.NewStore[int](-1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	s, err = matrix.NewStore[int](3)
	require.NoError(t, err)
	require.Equal(t, 3, s.Size())
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			c, err := s.At(i, j)
			require.NoError(t, err)
			require.True(t, c.Empty())
		}
	}
}

func TestStore_SetAtClear(t *testing.T) {
	s, err := matrix.NewStore[string](2)
	require.NoError(t, err)

	require.NoError(t, s.Set(0, 1, matrix.NewCell("x", true)))
	c, err := s.At(0, 1)
	require.NoError(t, err)
	require.True(t, c.Present)
	require.True(t, c.Directed)
	require.False(t, c.Undirected())
	require.Equal(t, "x", c.Value)

	// the transposed slot is independent
	c, err = s.At(1, 0)
	require.NoError(t, err)
	require.True(t, c.Empty())

	require.NoError(t, s.Clear(0, 1))
	c, err = s.At(0, 1)
	require.NoError(t, err)
	require.True(t, c.Empty())

	// clearing twice is a no-op
	require.NoError(t, s.Clear(0, 1))
}

func TestStore_OutOfRange(t *testing.T) {
	s, err := matrix.NewStore[int](2)
	require.NoError(t, err)

	cases := []struct {
		name     string
		row, col int
	}{
		{"negative row", -1, 0},
		{"negative col", 0, -1},
		{"row too big", 2, 0},
		{"col too big", 0, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := s.At(tc.row, tc.col)
			require.ErrorIs(t, err, matrix.ErrOutOfRange)
			require.ErrorIs(t, s.Set(tc.row, tc.col, matrix.NewCell(1, false)), matrix.ErrOutOfRange)
			require.ErrorIs(t, s.Clear(tc.row, tc.col), matrix.ErrOutOfRange)
		})
	}
}

// TestStore_ResizeRelocates pins the growth invariant: a cell written at
// (i,j) under extent n is still at (i,j) after growing to n' > n, even though
// its flat offset changed from i*n+j to i*n'+j.
func TestStore_ResizeRelocates(t *testing.T) {
	s, err := matrix.NewStore[int](3)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			require.NoError(t, s.Set(i, j, matrix.NewCell(10*i+j, i < j)))
		}
	}

	require.NoError(t, s.Resize(5))
	require.Equal(t, 5, s.Size())

	for i := 0; i < 5; i++ {
		for j := 0; j < 5; j++ {
			c, err := s.At(i, j)
			require.NoError(t, err)
			if i < 3 && j < 3 {
				require.True(t, c.Present, "(%d,%d)", i, j)
				require.Equal(t, 10*i+j, c.Value, "(%d,%d)", i, j)
				require.Equal(t, i < j, c.Directed, "(%d,%d)", i, j)
				continue
			}
			require.True(t, c.Empty(), "(%d,%d) must start empty", i, j)
		}
	}
}

func TestStore_ResizeFromEmptyAndNoop(t *testing.T) {
	s, err := matrix.NewStore[int](0)
	require.NoError(t, err)

	require.NoError(t, s.Resize(1))
	require.NoError(t, s.Set(0, 0, matrix.NewCell(7, false)))
	require.NoError(t, s.Resize(1))

	c, err := s.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 7, c.Value)
	require.True(t, c.Undirected())

	require.ErrorIs(t, s.Resize(0), matrix.ErrShrink)
}

func TestStore_CloneIsIndependent(t *testing.T) {
	s, err := matrix.NewStore[int](2)
	require.NoError(t, err)
	require.NoError(t, s.Set(1, 0, matrix.NewCell(3, true)))

	cp := s.Clone()
	require.NoError(t, cp.Set(1, 0, matrix.NewCell(4, true)))
	require.NoError(t, cp.Resize(4))

	c, err := s.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 3, c.Value)
	require.Equal(t, 2, s.Size())
}

func TestStore_NilReceiver(t *testing.T) {
	var s *matrix.Store[int]
	require.Equal(t, 0, s.Size())
	_, err := s.At(0, 0)
	require.ErrorIs(t, err, matrix.ErrNilStore)
	require.ErrorIs(t, s.Set(0, 0, matrix.Cell[int]{}), matrix.ErrNilStore)
	require.ErrorIs(t, s.Clear(0, 0), matrix.ErrNilStore)
	require.ErrorIs(t, s.Resize(1), matrix.ErrNilStore)
	require.Nil(t, s.Clone())
}
