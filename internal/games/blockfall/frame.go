package blockfall

// Block is one occupied cell in a rendered frame.
type Block struct {
	X, Y  int
	Color ColorID
}

// Frame is the render payload handed to a display: the settled grid plus the
// active piece, flattened into a list of colored blocks.
type Frame struct {
	Rows   int
	Cols   int
	Blocks []Block
	Score  int
	Lines  int
	State  State
	Piece  string // Name of the active shape
}

// Frame builds the draw list for the current state. Settled cells come
// first in row-major order, followed by the active piece. Once the game is
// over the piece is left out. Piece blocks above the top row are skipped.
func (g *Game) Frame() Frame {
	f := Frame{
		Rows:  g.grid.rows,
		Cols:  g.grid.cols,
		Score: g.score,
		Lines: g.lines,
		State: g.state,
		Piece: g.piece.Shape.Name(),
	}
	f.Blocks = make([]Block, 0, g.grid.Filled()+4)
	for y, row := range g.grid.cells {
		for x, c := range row {
			if c != Empty {
				f.Blocks = append(f.Blocks, Block{X: x, Y: y, Color: c})
			}
		}
	}
	if g.state == StateGameOver {
		return f
	}
	for _, b := range g.piece.Blocks() {
		if g.grid.InBounds(b.X, b.Y) {
			f.Blocks = append(f.Blocks, Block{X: b.X, Y: b.Y, Color: g.piece.Color})
		}
	}
	return f
}

// Over reports whether the frame shows a finished game.
func (f Frame) Over() bool {
	return f.State == StateGameOver
}
