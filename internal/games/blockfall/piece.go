package blockfall

import (
	"errors"
	"math/rand"
)

// ErrEmptyCatalog is the panic value when a spawner has no shapes to draw from.
var ErrEmptyCatalog = errors.New("blockfall: cannot spawn from an empty catalog")

// Point is a grid coordinate.
type Point struct {
	X, Y int
}

// Piece is the falling polyomino. X and Y anchor the shape's top-left
// corner in grid coordinates.
type Piece struct {
	Shape Shape
	Color ColorID
	X, Y  int
}

// Blocks returns the absolute grid coordinates of every occupied cell.
func (p Piece) Blocks() []Point {
	pts := make([]Point, 0, 4)
	for r := range p.Shape.Rows() {
		for c := range p.Shape.Cols() {
			if p.Shape.Filled(r, c) {
				pts = append(pts, Point{X: p.X + c, Y: p.Y + r})
			}
		}
	}
	return pts
}

// Rotated returns a copy of the piece with its shape turned clockwise
// around the same anchor.
func (p Piece) Rotated() Piece {
	p.Shape = p.Shape.Rotate()
	return p
}

// SpawnX returns the anchor column that centers a shape of the given width.
func SpawnX(cols, width int) int {
	return cols/2 - width/2
}

// Spawner draws new pieces from a catalog using a seeded RNG, so two
// spawners with the same seed produce identical sequences.
type Spawner struct {
	rng     *rand.Rand
	catalog []Shape
	cols    int
}

// NewSpawner creates a spawner for a field cols wide.
// An empty catalog panics with ErrEmptyCatalog.
func NewSpawner(seed int64, shapes []Shape, cols int) *Spawner {
	if len(shapes) == 0 {
		panic(ErrEmptyCatalog)
	}
	return &Spawner{
		rng:     rand.New(rand.NewSource(seed)),
		catalog: shapes,
		cols:    cols,
	}
}

// Spawn returns a new piece at the top of the field. Shape and color are
// drawn independently and uniformly; colors range over 1..NumColors.
func (s *Spawner) Spawn() Piece {
	shape := s.catalog[s.rng.Intn(len(s.catalog))]
	color := ColorID(s.rng.Intn(NumColors) + 1)
	return Piece{
		Shape: shape,
		Color: color,
		X:     SpawnX(s.cols, shape.Cols()),
		Y:     0,
	}
}
