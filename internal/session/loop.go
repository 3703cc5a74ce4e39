// Package session drives blockfall games in real time. A Loop owns one game
// at a time and runs it on a dedicated goroutine that receives both gravity
// ticks and player commands, so the engine is never entered concurrently.
package session

import (
	"io"
	"math/rand"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/games/blockfall"
)

// Config holds the parameters of every game a Loop starts.
type Config struct {
	Game         blockfall.Config
	TickInterval time.Duration
}

// DefaultConfig returns the classic game at one tick per second.
func DefaultConfig() Config {
	return Config{
		Game:         blockfall.DefaultConfig(),
		TickInterval: core.DefaultTickInterval,
	}
}

const commandBuffer = 16

// Option configures a Loop.
type Option func(*Loop)

// WithClock replaces the wall clock, mainly for tests.
func WithClock(c Clock) Option {
	return func(l *Loop) { l.clock = c }
}

// WithLogger sets the logger for lifecycle events.
func WithLogger(logger *log.Logger) Option {
	return func(l *Loop) { l.logger = logger }
}

// Loop manages the lifecycle of consecutive games. Start and Restart
// release the running game before beginning a new one, so at most one
// ticker is ever live.
type Loop struct {
	cfg    Config
	clock  Clock
	logger *log.Logger
	seeds  *rand.Rand // Derives the seed of each game after the first

	mu     sync.Mutex
	active *Subscription
	games  uint64
}

// NewLoop creates a Loop. The first game uses cfg.Game.Seed; later games
// draw seeds from an RNG seeded with it, so a session is reproducible.
func NewLoop(cfg Config, opts ...Option) *Loop {
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = core.DefaultTickInterval
	}
	l := &Loop{
		cfg:    cfg,
		clock:  SystemClock{},
		logger: log.New(io.Discard),
		seeds:  rand.New(rand.NewSource(cfg.Game.Seed)),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Start begins a game and returns its subscription. A game that is
// already running is released first.
func (l *Loop) Start(render RenderSink, score ScoreSink) *Subscription {
	return l.begin(render, score)
}

// Restart releases the current game, if any, and begins a new one with a
// fresh seed.
func (l *Loop) Restart(render RenderSink, score ScoreSink) *Subscription {
	return l.begin(render, score)
}

// Stop releases the current game. It is a no-op when nothing is running.
func (l *Loop) Stop() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.active != nil {
		l.active.Release()
		l.active = nil
	}
}

// Active returns the current subscription, or nil.
func (l *Loop) Active() *Subscription {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.active
}

func (l *Loop) begin(render RenderSink, score ScoreSink) *Subscription {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.active != nil {
		l.active.Release()
		l.active = nil
	}

	gameCfg := l.cfg.Game
	if l.games > 0 {
		gameCfg.Seed = l.seeds.Int63()
	}
	l.games++

	sub := &Subscription{
		id:       l.games,
		commands: make(chan blockfall.Command, commandBuffer),
		done:     make(chan struct{}),
		finished: make(chan struct{}),
	}
	r := &runner{
		sub:    sub,
		game:   blockfall.New(gameCfg),
		ticker: l.clock.NewTicker(l.cfg.TickInterval),
		render: render,
		score:  score,
		logger: l.logger.With("game", sub.id),
	}
	if gos, ok := render.(GameOverSink); ok {
		r.gameOver = gos
	}
	l.active = sub

	l.logger.Debug("game started", "game", sub.id, "seed", gameCfg.Seed)
	go r.run()
	return sub
}

// Subscription is the handle to one running game. Commands are delivered
// through Send; Release stops the game and waits for its goroutine.
type Subscription struct {
	id          uint64
	commands    chan blockfall.Command
	done        chan struct{} // Closed by Release
	finished    chan struct{} // Closed when the game goroutine exits
	releaseOnce sync.Once
}

// ID returns the sequence number of the game within its Loop.
func (s *Subscription) ID() uint64 {
	return s.id
}

// Send queues a command without blocking. It reports false if the game has
// ended or the queue is full.
func (s *Subscription) Send(cmd blockfall.Command) bool {
	select {
	case <-s.done:
		return false
	case <-s.finished:
		return false
	default:
	}

	select {
	case s.commands <- cmd:
		return true
	default:
		return false
	}
}

// Done returns a channel closed when the game goroutine has exited, either
// after game over or after Release.
func (s *Subscription) Done() <-chan struct{} {
	return s.finished
}

// Release stops the game's ticker and goroutine and waits for both.
// Safe to call multiple times and on a game that already ended.
func (s *Subscription) Release() {
	if s == nil {
		return
	}
	s.releaseOnce.Do(func() {
		close(s.done)
	})
	<-s.finished
}

// runner is the state owned by one game goroutine.
type runner struct {
	sub      *Subscription
	game     *blockfall.Game
	ticker   Ticker
	render   RenderSink
	score    ScoreSink
	gameOver GameOverSink
	logger   *log.Logger
	journal  blockfall.Journal
}

func (r *runner) run() {
	defer close(r.sub.finished)
	defer r.ticker.Stop()

	r.render.Render(r.game.Frame())
	r.score.Score(r.game.Score())

	for {
		// Release wins over pending ticks and commands.
		select {
		case <-r.sub.done:
			r.logger.Debug("game released", "score", r.game.Score())
			return
		default:
		}

		var cmd blockfall.Command
		select {
		case <-r.sub.done:
			r.logger.Debug("game released", "score", r.game.Score())
			return
		case <-r.ticker.C():
			cmd = blockfall.CommandTick
		case cmd = <-r.sub.commands:
		}

		if r.step(cmd) {
			return
		}
	}
}

// step applies one command and notifies the sinks. It reports whether the
// game ended.
func (r *runner) step(cmd blockfall.Command) bool {
	if !cmd.Valid() {
		return false
	}

	res := r.game.Apply(cmd)
	r.journal = append(r.journal, cmd)

	r.render.Render(r.game.Frame())
	if res.ScoreChanged() {
		r.score.Score(r.game.Score())
	}
	if !res.GameOver {
		return false
	}

	sum := Summary{
		Config:  r.game.Config(),
		Score:   r.game.Score(),
		Lines:   r.game.Lines(),
		Journal: r.journal,
	}
	r.logger.Info("game over", "score", sum.Score, "lines", sum.Lines, "steps", len(sum.Journal))
	if r.gameOver != nil {
		r.gameOver.GameOver(sum)
	}
	return true
}
