package core

// RuntimeConfig is passed to a game when it starts.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed; 0 means derive one in the platform layer
}

// DefaultConfig returns the runtime defaults. The simulation was tuned
// for roughly 30 ticks per second.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
	}
}

// GameState is what a game reports to the platform after each step.
type GameState struct {
	Score    int
	Level    int  // One-based level number, 0 for games without levels
	Lives    int  // Remaining spare lives
	GameOver bool // The run has ended, won or lost
	Won      bool // The run ended by clearing the last level
	Paused   bool
}

// StepResult is returned by Game.Step after each simulation tick.
type StepResult struct {
	State GameState
}
