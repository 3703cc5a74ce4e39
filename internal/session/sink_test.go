package session

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/blockfall/internal/games/blockfall"
)

func TestChannelSinkDropsOldest(t *testing.T) {
	sink := NewChannelSink(2)
	sink.Score(1)
	sink.Score(2)
	sink.Score(3)

	assert.Equal(t, ScoreEvent{Score: 2}, <-sink.Events())
	assert.Equal(t, ScoreEvent{Score: 3}, <-sink.Events())
}

func TestChannelSinkGameOverAlwaysQueued(t *testing.T) {
	sink := NewChannelSink(1)
	sink.Render(blockfall.Frame{})
	sink.GameOver(Summary{Score: 300})

	evt := <-sink.Events()
	assert.Equal(t, GameOverEvent{Summary: Summary{Score: 300}}, evt)
}

func TestChannelSinkClose(t *testing.T) {
	sink := NewChannelSink(0)
	sink.Close()
	sink.Close()
	sink.Score(5)

	assert.Empty(t, sink.Events())
	select {
	case <-sink.Done():
	default:
		t.Fatal("Done not closed")
	}
}

func TestChannelSinkImplementsSinks(t *testing.T) {
	var sink any = NewChannelSink(1)
	_, isRender := sink.(RenderSink)
	_, isScore := sink.(ScoreSink)
	_, isGameOver := sink.(GameOverSink)
	assert.True(t, isRender && isScore && isGameOver)
}
