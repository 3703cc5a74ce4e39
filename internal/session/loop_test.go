package session

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/blockfall/internal/games/blockfall"
)

const waitTimeout = 2 * time.Second

type manualTicker struct {
	c       chan time.Time
	mu      sync.Mutex
	stopped bool
}

func (t *manualTicker) C() <-chan time.Time { return t.c }

func (t *manualTicker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopped = true
}

func (t *manualTicker) isStopped() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stopped
}

// manualClock hands out tickers that fire only when the test says so.
type manualClock struct {
	mu      sync.Mutex
	tickers []*manualTicker
}

func (c *manualClock) NewTicker(time.Duration) Ticker {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &manualTicker{c: make(chan time.Time)}
	c.tickers = append(c.tickers, t)
	return t
}

func (c *manualClock) ticker(i int) *manualTicker {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tickers[i]
}

func (c *manualClock) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.tickers)
}

// tick fires the newest ticker and waits until the game goroutine takes it.
func (c *manualClock) tick(t *testing.T) {
	t.Helper()
	tk := c.ticker(c.count() - 1)
	select {
	case tk.c <- time.Now():
	case <-time.After(waitTimeout):
		t.Fatal("tick not consumed")
	}
}

func newTestLoop(t *testing.T, game blockfall.Config) (*Loop, *manualClock) {
	t.Helper()
	clock := &manualClock{}
	loop := NewLoop(Config{Game: game, TickInterval: time.Second}, WithClock(clock))
	t.Cleanup(loop.Stop)
	return loop, clock
}

func nextEvent(t *testing.T, sink *ChannelSink) Event {
	t.Helper()
	select {
	case evt := <-sink.Events():
		return evt
	case <-time.After(waitTimeout):
		t.Fatal("no event")
		return nil
	}
}

func expectFrame(t *testing.T, sink *ChannelSink) blockfall.Frame {
	t.Helper()
	evt := nextEvent(t, sink)
	fe, ok := evt.(FrameEvent)
	require.True(t, ok, "expected FrameEvent, got %T", evt)
	return fe.Frame
}

func seeded(seed int64) blockfall.Config {
	cfg := blockfall.DefaultConfig()
	cfg.Seed = seed
	return cfg
}

func TestStartEmitsInitialFrameAndScore(t *testing.T) {
	loop, _ := newTestLoop(t, seeded(1))
	sink := NewChannelSink(64)

	sub := loop.Start(sink, sink)
	require.NotNil(t, sub)
	assert.Equal(t, uint64(1), sub.ID())

	f := expectFrame(t, sink)
	assert.Equal(t, blockfall.StateRunning, f.State)
	assert.Len(t, f.Blocks, 4)

	evt := nextEvent(t, sink)
	assert.Equal(t, ScoreEvent{Score: 0}, evt)
}

func TestCommandsAndTicksRender(t *testing.T) {
	loop, clock := newTestLoop(t, seeded(2))
	sink := NewChannelSink(64)
	sub := loop.Start(sink, sink)
	expectFrame(t, sink)
	nextEvent(t, sink)

	want := blockfall.New(seeded(2))

	require.True(t, sub.Send(blockfall.CommandLeft))
	want.Apply(blockfall.CommandLeft)
	assert.Equal(t, want.Frame(), expectFrame(t, sink))

	clock.tick(t)
	want.Apply(blockfall.CommandTick)
	assert.Equal(t, want.Frame(), expectFrame(t, sink))

	require.True(t, sub.Send(blockfall.CommandRotate))
	want.Apply(blockfall.CommandRotate)
	assert.Equal(t, want.Frame(), expectFrame(t, sink))
}

func TestUnknownCommandIgnored(t *testing.T) {
	loop, _ := newTestLoop(t, seeded(3))
	sink := NewChannelSink(64)
	sub := loop.Start(sink, sink)
	expectFrame(t, sink)
	nextEvent(t, sink)

	require.True(t, sub.Send(blockfall.Command('?')))
	require.True(t, sub.Send(blockfall.CommandDrop))

	// Only the drop produces a frame.
	f := expectFrame(t, sink)
	assert.Equal(t, 1, f.Blocks[0].Y)
}

func TestRestartReleasesPreviousGame(t *testing.T) {
	loop, clock := newTestLoop(t, seeded(4))
	first := NewChannelSink(64)
	sub1 := loop.Start(first, first)
	expectFrame(t, first)

	second := NewChannelSink(64)
	sub2 := loop.Restart(second, second)
	require.NotSame(t, sub1, sub2)
	assert.Equal(t, uint64(2), sub2.ID())

	// The first goroutine and ticker are gone before Restart returns.
	select {
	case <-sub1.Done():
	default:
		t.Fatal("first game still running after restart")
	}
	assert.True(t, clock.ticker(0).isStopped())
	assert.False(t, clock.ticker(1).isStopped())
	assert.False(t, sub1.Send(blockfall.CommandLeft))

	f := expectFrame(t, second)
	assert.Zero(t, f.Score)
	assert.Equal(t, ScoreEvent{Score: 0}, nextEvent(t, second))
	assert.Same(t, sub2, loop.Active())
}

func TestRestartSeedsAreReproducible(t *testing.T) {
	run := func() []blockfall.Frame {
		loop, _ := newTestLoop(t, seeded(5))
		var frames []blockfall.Frame
		for range 4 {
			sink := NewChannelSink(64)
			loop.Restart(sink, sink)
			frames = append(frames, expectFrame(t, sink))
		}
		return frames
	}
	assert.Equal(t, run(), run())
}

func TestReleaseIsIdempotent(t *testing.T) {
	loop, clock := newTestLoop(t, seeded(6))
	sink := NewChannelSink(64)
	sub := loop.Start(sink, sink)

	sub.Release()
	sub.Release()
	loop.Stop()
	loop.Stop()

	assert.True(t, clock.ticker(0).isStopped())
	assert.Nil(t, loop.Active())

	var nilSub *Subscription
	assert.NotPanics(t, nilSub.Release)
}

func TestStopWithoutGameIsNoop(t *testing.T) {
	loop := NewLoop(DefaultConfig())
	assert.NotPanics(t, loop.Stop)
	assert.Nil(t, loop.Active())
}

func TestGameOverSignalledOnce(t *testing.T) {
	small := blockfall.Config{Rows: 4, Cols: 4, PointsPerLine: 100, Seed: 9}
	loop, clock := newTestLoop(t, small)
	sink := NewChannelSink(1024)
	sub := loop.Start(sink, sink)
	expectFrame(t, sink)

	ticks := 0
	for {
		clock.tick(t)
		ticks++
		require.Less(t, ticks, 200, "game never ended")
		// Every applied tick renders exactly one frame.
		var f blockfall.Frame
		for {
			if fe, ok := nextEvent(t, sink).(FrameEvent); ok {
				f = fe.Frame
				break
			}
		}
		if f.Over() {
			break
		}
	}

	var summary Summary
	for {
		if evt, ok := nextEvent(t, sink).(GameOverEvent); ok {
			summary = evt.Summary
			break
		}
	}

	select {
	case <-sub.Done():
	case <-time.After(waitTimeout):
		t.Fatal("game goroutine did not exit after game over")
	}
	assert.True(t, clock.ticker(0).isStopped())
	assert.False(t, sub.Send(blockfall.CommandLeft))
	assert.Empty(t, sink.Events(), "nothing follows the game over event")

	assert.Equal(t, small, summary.Config)
	assert.Len(t, summary.Journal, ticks)

	replayed := blockfall.Replay(summary.Config, summary.Journal)
	assert.True(t, replayed.Over())
	assert.Equal(t, summary.Score, replayed.Score())
	assert.Equal(t, summary.Lines, replayed.Lines())
}

func TestSendQueueFull(t *testing.T) {
	sub := &Subscription{
		commands: make(chan blockfall.Command, 1),
		done:     make(chan struct{}),
		finished: make(chan struct{}),
	}
	assert.True(t, sub.Send(blockfall.CommandLeft))
	assert.False(t, sub.Send(blockfall.CommandLeft))
}
