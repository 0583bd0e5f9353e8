package tui

import "github.com/vovakirdan/tui-tanks/internal/core"

// Game is what the terminal front end drives. It holds pure logic with no
// Bubble Tea dependency; the platform handles input, timing and output.
type Game interface {
	// ID returns a unique identifier, used as the log prefix.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset starts a fresh run seeded from cfg.Seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into the screen buffer.
	Render(dst *core.Screen)

	// State returns the current score, lives and flags.
	State() core.GameState
}
