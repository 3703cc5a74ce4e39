// Package blockfall implements the falling-block puzzle engine: shape
// catalog, grid, pieces, collision and the game state machine.
//
// A Game is not safe for concurrent use. Callers must drive it from a single
// goroutine; the session package does this for ticks and player input.
package blockfall

// State is the lifecycle state of a game.
type State int

const (
	StateRunning State = iota
	StateGameOver
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// DefaultPointsPerLine is awarded for every row removed in a clear.
const DefaultPointsPerLine = 100

// Config holds the parameters of one game.
type Config struct {
	Rows          int
	Cols          int
	PointsPerLine int
	Seed          int64 // Seed for the piece spawner
}

// DefaultConfig returns the classic 20x10 setup.
func DefaultConfig() Config {
	return Config{
		Rows:          DefaultRows,
		Cols:          DefaultCols,
		PointsPerLine: DefaultPointsPerLine,
	}
}

func (c Config) withDefaults() Config {
	if c.Rows <= 0 {
		c.Rows = DefaultRows
	}
	if c.Cols <= 0 {
		c.Cols = DefaultCols
	}
	if c.PointsPerLine <= 0 {
		c.PointsPerLine = DefaultPointsPerLine
	}
	return c
}

// StepResult describes what a single operation did.
type StepResult struct {
	Moved    bool // Active piece moved, rotated or fell one row
	Locked   bool // Active piece froze into the grid
	Cleared  int  // Rows removed by the freeze
	GameOver bool // This step ended the game (reported once per game)
}

// ScoreChanged reports whether the step changed the score.
func (r StepResult) ScoreChanged() bool {
	return r.Cleared > 0
}

// Game is the state machine. It owns the grid, the active piece and the score.
type Game struct {
	cfg     Config
	grid    *Grid
	piece   Piece
	spawner *Spawner
	score   int
	lines   int
	pieces  int    // Pieces spawned this game
	steps   uint64 // Gravity steps applied (ticks and soft drops)
	state   State
}

// New creates a running game with an empty grid and a freshly spawned piece.
func New(cfg Config) *Game {
	cfg = cfg.withDefaults()
	g := &Game{
		cfg:     cfg,
		spawner: NewSpawner(cfg.Seed, Catalog(), cfg.Cols),
	}
	g.Restart()
	return g
}

// Restart discards the current game: empty grid, zero score, new piece.
// The spawner keeps its sequence, so a restarted game draws new pieces.
func (g *Game) Restart() {
	g.grid = NewGrid(g.cfg.Rows, g.cfg.Cols)
	g.score = 0
	g.lines = 0
	g.pieces = 0
	g.steps = 0
	g.state = StateRunning
	g.spawn()
}

// spawn replaces the active piece with a new one from the spawner.
func (g *Game) spawn() {
	g.piece = g.spawner.Spawn()
	g.pieces++
}

// Tick applies one gravity step. If the piece cannot fall it is frozen, full
// rows are cleared, and a new piece is spawned. A new piece that collides at
// its spawn position ends the game.
func (g *Game) Tick() StepResult {
	if g.state == StateGameOver {
		return StepResult{}
	}
	g.steps++

	if !Collides(g.piece, g.grid, 0, 1) {
		g.piece.Y++
		return StepResult{Moved: true}
	}

	res := StepResult{Locked: true}
	g.freeze()
	res.Cleared = g.grid.ClearFullRows()
	g.lines += res.Cleared
	g.score += res.Cleared * g.cfg.PointsPerLine

	g.spawn()
	if Collides(g.piece, g.grid, 0, 0) {
		g.state = StateGameOver
		res.GameOver = true
	}
	return res
}

// SoftDrop forces one row of descent. It has exactly the effect of Tick.
func (g *Game) SoftDrop() StepResult {
	return g.Tick()
}

// MoveHorizontal shifts the piece one column left (dir = -1) or right
// (dir = +1). Blocked moves and any other dir are ignored.
func (g *Game) MoveHorizontal(dir int) StepResult {
	if g.state == StateGameOver || (dir != -1 && dir != 1) {
		return StepResult{}
	}
	if Collides(g.piece, g.grid, dir, 0) {
		return StepResult{}
	}
	g.piece.X += dir
	return StepResult{Moved: true}
}

// RotateActive turns the piece clockwise in place. There is no wall kick:
// if the rotated shape collides at the same anchor, nothing happens.
func (g *Game) RotateActive() StepResult {
	if g.state == StateGameOver {
		return StepResult{}
	}
	rotated := g.piece.Rotated()
	if Collides(rotated, g.grid, 0, 0) {
		return StepResult{}
	}
	g.piece = rotated
	return StepResult{Moved: true}
}

// freeze copies the active piece into the grid. Blocks above the top row
// have nowhere to go and are dropped.
func (g *Game) freeze() {
	for _, b := range g.piece.Blocks() {
		if g.grid.InBounds(b.X, b.Y) {
			g.grid.Set(b.X, b.Y, g.piece.Color)
		}
	}
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.score
}

// Lines returns the number of rows cleared this game.
func (g *Game) Lines() int {
	return g.lines
}

// State returns the lifecycle state.
func (g *Game) State() State {
	return g.state
}

// Over reports whether the game has ended.
func (g *Game) Over() bool {
	return g.state == StateGameOver
}

// Piece returns a copy of the active piece.
func (g *Game) Piece() Piece {
	return g.piece
}

// Grid returns a copy of the settled grid.
func (g *Game) Grid() *Grid {
	return g.grid.Clone()
}

// Config returns the game parameters.
func (g *Game) Config() Config {
	return g.cfg
}
