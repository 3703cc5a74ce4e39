package session

import (
	"sync"

	"github.com/vovakirdan/blockfall/internal/games/blockfall"
)

// RenderSink receives a full frame after every tick and command.
type RenderSink interface {
	Render(f blockfall.Frame)
}

// ScoreSink receives the score when a game starts and after every change.
type ScoreSink interface {
	Score(score int)
}

// GameOverSink is optionally implemented by a RenderSink. It is called
// exactly once per game, on the step that ended it.
type GameOverSink interface {
	GameOver(s Summary)
}

// Summary describes a finished game. Replaying Journal from Config
// reproduces it.
type Summary struct {
	Config  blockfall.Config
	Score   int
	Lines   int
	Journal blockfall.Journal
}

// Event is sent through a ChannelSink.
type Event interface {
	isEvent()
}

// FrameEvent carries a rendered frame.
type FrameEvent struct {
	Frame blockfall.Frame
}

// ScoreEvent carries the current score.
type ScoreEvent struct {
	Score int
}

// GameOverEvent is sent once when the game ends.
type GameOverEvent struct {
	Summary Summary
}

func (FrameEvent) isEvent()    {}
func (ScoreEvent) isEvent()    {}
func (GameOverEvent) isEvent() {}

// ChannelSink implements all three sinks by forwarding events to a buffered
// channel. The TUI reads from Events; the game goroutine never blocks on it.
type ChannelSink struct {
	events   chan Event
	done     chan struct{}
	doneOnce sync.Once
}

// NewChannelSink creates a sink. bufferSize controls how many events can be
// queued before the oldest ones are dropped.
func NewChannelSink(bufferSize int) *ChannelSink {
	if bufferSize < 1 {
		bufferSize = 64
	}
	return &ChannelSink{
		events: make(chan Event, bufferSize),
		done:   make(chan struct{}),
	}
}

// Render implements RenderSink.
func (s *ChannelSink) Render(f blockfall.Frame) {
	s.send(FrameEvent{Frame: f})
}

// Score implements ScoreSink.
func (s *ChannelSink) Score(score int) {
	s.send(ScoreEvent{Score: score})
}

// GameOver implements GameOverSink.
func (s *ChannelSink) GameOver(sum Summary) {
	s.send(GameOverEvent{Summary: sum})
}

// send queues evt. If the buffer is full, the oldest event is dropped.
// The game goroutine is the only writer, so the retry always succeeds.
func (s *ChannelSink) send(evt Event) {
	select {
	case <-s.done:
		return
	default:
	}

	select {
	case s.events <- evt:
	default:
		select {
		case <-s.events:
		default:
		}
		select {
		case s.events <- evt:
		default:
		}
	}
}

// Events returns the channel to receive events from.
func (s *ChannelSink) Events() <-chan Event {
	return s.events
}

// Done returns a channel closed by Close.
func (s *ChannelSink) Done() <-chan struct{} {
	return s.done
}

// Close stops delivery. Safe to call multiple times.
func (s *ChannelSink) Close() {
	s.doneOnce.Do(func() {
		close(s.done)
	})
}
