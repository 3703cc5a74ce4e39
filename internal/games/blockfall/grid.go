package blockfall

import (
	"errors"
	"fmt"
)

// Default playfield dimensions.
const (
	DefaultRows = 20
	DefaultCols = 10
)

// ErrOutOfBounds is the panic value (wrapped) for grid access outside the field.
var ErrOutOfBounds = errors.New("blockfall: cell out of bounds")

// Grid stores settled blocks. Dimensions are fixed at creation.
// Rows are indexed top to bottom, so row 0 is the top of the field.
type Grid struct {
	rows  int
	cols  int
	cells [][]ColorID
}

// NewGrid creates an empty grid with the given dimensions.
func NewGrid(rows, cols int) *Grid {
	g := &Grid{rows: rows, cols: cols}
	g.cells = make([][]ColorID, rows)
	for y := range g.cells {
		g.cells[y] = make([]ColorID, cols)
	}
	return g
}

// Rows returns the grid height.
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the grid width.
func (g *Grid) Cols() int {
	return g.cols
}

// InBounds returns true if (x, y) lies inside the field.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.cols && y >= 0 && y < g.rows
}

// Get returns the color at (x, y).
// Out-of-bounds access is a caller bug and panics with ErrOutOfBounds.
func (g *Grid) Get(x, y int) ColorID {
	g.mustInBounds(x, y)
	return g.cells[y][x]
}

// Set writes a color at (x, y). Panics like Get on out-of-bounds access.
func (g *Grid) Set(x, y int, color ColorID) {
	g.mustInBounds(x, y)
	g.cells[y][x] = color
}

func (g *Grid) mustInBounds(x, y int) {
	if !g.InBounds(x, y) {
		panic(fmt.Errorf("%w: (%d, %d) outside %dx%d", ErrOutOfBounds, x, y, g.cols, g.rows))
	}
}

// Row returns a copy of row y.
func (g *Grid) Row(y int) []ColorID {
	g.mustInBounds(0, y)
	row := make([]ColorID, g.cols)
	copy(row, g.cells[y])
	return row
}

// Filled returns the number of non-empty cells.
func (g *Grid) Filled() int {
	n := 0
	for _, row := range g.cells {
		for _, c := range row {
			if c != Empty {
				n++
			}
		}
	}
	return n
}

// rowFull reports whether every cell in row y is occupied.
func (g *Grid) rowFull(y int) bool {
	for _, c := range g.cells[y] {
		if c == Empty {
			return false
		}
	}
	return true
}

// ClearFullRows removes every full row and returns how many were removed.
// Rows above a cleared row shift down by one and an empty row enters at the
// top. The scan runs bottom to top and re-checks the same index after a
// removal, since the row above has just slid into it.
func (g *Grid) ClearFullRows() int {
	cleared := 0
	for y := g.rows - 1; y >= 0; {
		if !g.rowFull(y) {
			y--
			continue
		}
		removed := g.cells[y]
		copy(g.cells[1:y+1], g.cells[:y])
		clear(removed)
		g.cells[0] = removed
		cleared++
	}
	return cleared
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	c := NewGrid(g.rows, g.cols)
	for y := range g.cells {
		copy(c.cells[y], g.cells[y])
	}
	return c
}
