package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second requested from the driver (default 60)
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

// GameState is the coarse status a game reports to the platform each frame.
type GameState struct {
	Score    int    // Current score
	Phase    string // Name of the current high-level state ("menu", "countdown", "running")
	GameOver bool   // True on the frame a run ended
	Final    int    // Score of the run that ended, valid when GameOver
}

// StepResult is returned by Game.Advance after each frame.
type StepResult struct {
	State GameState
	// Cues are the audio notifications emitted during this frame, in order.
	Cues []Cue
}
