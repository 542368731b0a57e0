package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 120)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultTickRate matches the fixed frame cadence the ring physics is tuned for.
const DefaultTickRate = 120

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: DefaultTickRate,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Run total used for the leaderboard
	Level    int  // Level reached (0 for games without levels)
	Progress int  // Progress toward the next level
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// Event is something noteworthy that happened during a tick.
// Platforms use events for side effects such as sound cues.
type Event int

const (
	EventBounce Event = iota + 1
	EventLevelUp
	EventGameOver
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventBounce:
		return "Bounce"
	case EventLevelUp:
		return "LevelUp"
	case EventGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}

// Has reports whether the tick produced the given event.
func (r StepResult) Has(e Event) bool {
	for _, got := range r.Events {
		if got == e {
			return true
		}
	}
	return false
}
