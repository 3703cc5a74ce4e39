package core

import "time"

// RuntimeConfig describes how a frontend drives one session.
type RuntimeConfig struct {
	ScreenW      int           // Screen width in characters
	ScreenH      int           // Screen height in characters
	TickInterval time.Duration // Gravity period
	Seed         int64         // RNG seed; 0 means derive one from the clock
}

// DefaultTickInterval is one gravity step per second.
const DefaultTickInterval = time.Second

// DefaultConfig returns a RuntimeConfig sized for an 80x24 terminal.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:      80,
		ScreenH:      24,
		TickInterval: DefaultTickInterval,
	}
}

// ResolveSeed returns Seed, or a clock-derived seed when Seed is zero.
func (c RuntimeConfig) ResolveSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}
