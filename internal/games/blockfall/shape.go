package blockfall

import "strings"

// ColorID identifies a piece color. Zero is reserved for an empty cell.
type ColorID uint8

// Empty marks a cell with no settled block.
const Empty ColorID = 0

// NumColors is the number of real piece colors (1..NumColors).
const NumColors = 7

// Shape is an immutable occupancy matrix for one polyomino orientation.
// Rows are stored top to bottom; every row has the same width.
type Shape struct {
	name  string
	cells [][]bool
}

// NewShape builds a shape from rows of '#' (filled) and '.' (empty) runes.
// Ragged or empty input is a programming error and panics.
func NewShape(name string, rows ...string) Shape {
	if len(rows) == 0 {
		panic("blockfall: shape " + name + " has no rows")
	}
	width := len(rows[0])
	cells := make([][]bool, len(rows))
	for r, row := range rows {
		if len(row) != width || width == 0 {
			panic("blockfall: shape " + name + " is not rectangular")
		}
		cells[r] = make([]bool, width)
		for c, ch := range row {
			cells[r][c] = ch == '#'
		}
	}
	return Shape{name: name, cells: cells}
}

// Name returns the catalog name (e.g. "I", "T").
func (s Shape) Name() string {
	return s.name
}

// Rows returns the height of the matrix.
func (s Shape) Rows() int {
	return len(s.cells)
}

// Cols returns the width of the matrix.
func (s Shape) Cols() int {
	if len(s.cells) == 0 {
		return 0
	}
	return len(s.cells[0])
}

// Filled reports whether the cell at (row, col) is occupied.
func (s Shape) Filled(row, col int) bool {
	return s.cells[row][col]
}

// Rotate returns the shape turned 90 degrees clockwise.
// A rows×cols matrix becomes cols×rows with new[r][c] = old[rows-1-c][r].
func (s Shape) Rotate() Shape {
	rows, cols := s.Rows(), s.Cols()
	out := make([][]bool, cols)
	for r := range cols {
		out[r] = make([]bool, rows)
		for c := range rows {
			out[r][c] = s.cells[rows-1-c][r]
		}
	}
	return Shape{name: s.name, cells: out}
}

// Equal reports whether two shapes have identical occupancy.
func (s Shape) Equal(other Shape) bool {
	if s.Rows() != other.Rows() || s.Cols() != other.Cols() {
		return false
	}
	for r := range s.cells {
		for c := range s.cells[r] {
			if s.cells[r][c] != other.cells[r][c] {
				return false
			}
		}
	}
	return true
}

// String renders the matrix with '#' and '.', one row per line.
func (s Shape) String() string {
	var b strings.Builder
	for r, row := range s.cells {
		if r > 0 {
			b.WriteByte('\n')
		}
		for _, filled := range row {
			if filled {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
	}
	return b.String()
}

var catalog = []Shape{
	NewShape("I", "####"),
	NewShape("O", "##", "##"),
	NewShape("T", "###", ".#."),
	NewShape("L", "###", "#.."),
	NewShape("J", "###", "..#"),
	NewShape("Z", "##.", ".##"),
	NewShape("S", ".##", "##."),
}

// Catalog returns the seven spawnable shapes in a fixed order.
// The returned slice is a copy; the shapes themselves are immutable.
func Catalog() []Shape {
	out := make([]Shape, len(catalog))
	copy(out, catalog)
	return out
}

// ShapeByName looks up a catalog shape in its spawn orientation.
func ShapeByName(name string) (Shape, bool) {
	for _, s := range catalog {
		if s.name == name {
			return s, true
		}
	}
	return Shape{}, false
}
