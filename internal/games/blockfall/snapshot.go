package blockfall

import "strings"

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Steps      uint64
	Score      int
	Lines      int
	Pieces     int
	State      State
	PieceName  string
	PieceX     int
	PieceY     int
	PieceColor ColorID
	Cells      string // Grid rows top to bottom, one digit per cell, '/' between rows
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Steps:      g.steps,
		Score:      g.score,
		Lines:      g.lines,
		Pieces:     g.pieces,
		State:      g.state,
		PieceName:  g.piece.Shape.Name(),
		PieceX:     g.piece.X,
		PieceY:     g.piece.Y,
		PieceColor: g.piece.Color,
		Cells:      encodeCells(g.grid),
	}
}

func encodeCells(g *Grid) string {
	var sb strings.Builder
	sb.Grow(g.rows*g.cols + g.rows)
	for y, row := range g.cells {
		if y > 0 {
			sb.WriteByte('/')
		}
		for _, c := range row {
			sb.WriteByte('0' + byte(c))
		}
	}
	return sb.String()
}
