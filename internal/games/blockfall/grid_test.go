package blockfall

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fillRow sets every cell in row y, leaving the listed columns empty.
func fillRow(g *Grid, y int, color ColorID, holes ...int) {
	for x := range g.Cols() {
		g.Set(x, y, color)
	}
	for _, x := range holes {
		g.Set(x, y, Empty)
	}
}

// recoverError runs fn and returns the error it panicked with, if any.
func recoverError(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err, _ = r.(error)
		}
	}()
	fn()
	return nil
}

func TestNewGridIsEmpty(t *testing.T) {
	g := NewGrid(DefaultRows, DefaultCols)
	assert.Equal(t, 20, g.Rows())
	assert.Equal(t, 10, g.Cols())
	assert.Zero(t, g.Filled())
	for y := range g.Rows() {
		for x := range g.Cols() {
			assert.Equal(t, Empty, g.Get(x, y))
		}
	}
}

func TestGridOutOfBoundsPanics(t *testing.T) {
	g := NewGrid(20, 10)

	coords := [][2]int{{-1, 0}, {10, 0}, {0, -1}, {0, 20}}
	for _, c := range coords {
		err := recoverError(func() { g.Get(c[0], c[1]) })
		require.Error(t, err, "Get(%d, %d)", c[0], c[1])
		assert.True(t, errors.Is(err, ErrOutOfBounds))

		err = recoverError(func() { g.Set(c[0], c[1], 1) })
		assert.True(t, errors.Is(err, ErrOutOfBounds))
	}
}

func TestClearSingleRow(t *testing.T) {
	g := NewGrid(20, 10)
	fillRow(g, 19, 2)
	g.Set(4, 18, 3)

	assert.Equal(t, 1, g.ClearFullRows())
	assert.Equal(t, ColorID(3), g.Get(4, 19))
	assert.Equal(t, 1, g.Filled())
}

func TestClearNonContiguousRows(t *testing.T) {
	g := NewGrid(20, 10)
	fillRow(g, 19, 1)
	fillRow(g, 18, 5, 0) // survivor with one hole
	fillRow(g, 17, 2)
	g.Set(7, 16, 6)

	assert.Equal(t, 2, g.ClearFullRows())

	// Old row 18 lands at the bottom, old row 16 right above it.
	want := []ColorID{0, 5, 5, 5, 5, 5, 5, 5, 5, 5}
	assert.Equal(t, want, g.Row(19))
	assert.Equal(t, ColorID(6), g.Get(7, 18))
	for y := range 18 {
		for x := range 10 {
			assert.Equal(t, Empty, g.Get(x, y), "(%d, %d)", x, y)
		}
	}
}

func TestClearAdjacentRows(t *testing.T) {
	g := NewGrid(6, 4)
	for y := 2; y < 6; y++ {
		fillRow(g, y, ColorID(y))
	}
	assert.Equal(t, 4, g.ClearFullRows())
	assert.Zero(t, g.Filled())
}

func TestClearTopRow(t *testing.T) {
	g := NewGrid(4, 4)
	fillRow(g, 0, 1)
	assert.Equal(t, 1, g.ClearFullRows())
	assert.Zero(t, g.Filled())
	assert.Equal(t, 4, g.Rows())
}

func TestClearNothing(t *testing.T) {
	g := NewGrid(20, 10)
	fillRow(g, 19, 1, 9)
	assert.Zero(t, g.ClearFullRows())
	assert.Equal(t, 9, g.Filled())
}

func TestCloneIsIndependent(t *testing.T) {
	g := NewGrid(4, 4)
	g.Set(1, 1, 4)
	c := g.Clone()
	c.Set(1, 1, 7)
	assert.Equal(t, ColorID(4), g.Get(1, 1))

	row := g.Row(1)
	row[1] = 0
	assert.Equal(t, ColorID(4), g.Get(1, 1))
}
