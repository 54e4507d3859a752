package core

// RuntimeConfig contains configuration passed to games at initialization.
// It replaces process-wide screen constants: everything that depends on
// terminal size, tick rate or randomness reads it from here.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState is the coarse status a game reports to the platform after
// every tick.
type GameState struct {
	Score    int  // Current score
	Lives    int  // Lives remaining
	GameOver bool // Whether the run has ended
	Paused   bool // Whether the simulation is frozen by pause
	Overlay  bool // Whether a menu overlay (color picker, ranking) is open
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
	Quit  bool // The game asked the platform to exit
}
