package core

// RuntimeConfig contains configuration passed to a game at initialization.
// The simulation uses the seed; the screen size only affects rendering.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// GameState represents the current state of a game as seen by the platform.
type GameState struct {
	Score    int  // Current score
	Life     int  // Remaining player lives
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
	Quit     bool // Whether the player asked to leave from the pause screen
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
