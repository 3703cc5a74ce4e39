package blockfall

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/blockfall/internal/core"
)

// Command is a discrete input applied to a game. The byte values double as
// the journal encoding.
type Command byte

const (
	CommandNone   Command = 0
	CommandTick   Command = 'T' // Gravity step from the timing source
	CommandLeft   Command = 'L'
	CommandRight  Command = 'R'
	CommandRotate Command = 'U'
	CommandDrop   Command = 'D' // Soft drop
)

// String returns a human-readable name for the command.
func (c Command) String() string {
	switch c {
	case CommandNone:
		return "None"
	case CommandTick:
		return "Tick"
	case CommandLeft:
		return "MoveLeft"
	case CommandRight:
		return "MoveRight"
	case CommandRotate:
		return "RotateCW"
	case CommandDrop:
		return "SoftDrop"
	default:
		return "Unknown"
	}
}

// Valid reports whether c is a known, non-empty command.
func (c Command) Valid() bool {
	switch c {
	case CommandTick, CommandLeft, CommandRight, CommandRotate, CommandDrop:
		return true
	}
	return false
}

// CommandFor maps a platform action to a player command.
// Only the four movement intents map; everything else yields CommandNone.
func CommandFor(a core.Action) Command {
	switch a {
	case core.ActionLeft:
		return CommandLeft
	case core.ActionRight:
		return CommandRight
	case core.ActionRotate:
		return CommandRotate
	case core.ActionDrop:
		return CommandDrop
	default:
		return CommandNone
	}
}

// Apply dispatches a command to the matching state machine call.
// Unknown commands are ignored.
func (g *Game) Apply(cmd Command) StepResult {
	switch cmd {
	case CommandTick:
		return g.Tick()
	case CommandLeft:
		return g.MoveHorizontal(-1)
	case CommandRight:
		return g.MoveHorizontal(1)
	case CommandRotate:
		return g.RotateActive()
	case CommandDrop:
		return g.SoftDrop()
	default:
		return StepResult{}
	}
}

// ErrBadJournal is returned when a journal string holds an unknown entry.
var ErrBadJournal = errors.New("blockfall: malformed journal")

// Journal is the ordered list of commands applied to one game.
type Journal []Command

// Encode returns the compact string form, one byte per command.
func (j Journal) Encode() string {
	b := make([]byte, len(j))
	for i, c := range j {
		b[i] = byte(c)
	}
	return string(b)
}

// ParseJournal decodes a string produced by Journal.Encode.
func ParseJournal(s string) (Journal, error) {
	j := make(Journal, len(s))
	for i := 0; i < len(s); i++ {
		c := Command(s[i])
		if !c.Valid() {
			return nil, fmt.Errorf("%w: entry %q at %d", ErrBadJournal, s[i], i)
		}
		j[i] = c
	}
	return j, nil
}

// Replay builds a game from cfg and applies every journal entry in order.
// With the same seed the result matches the recorded game exactly.
func Replay(cfg Config, j Journal) *Game {
	g := New(cfg)
	for _, c := range j {
		g.Apply(c)
	}
	return g
}
