package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses it for deterministic simulation; screen dimensions are only
// advisory since the simulation runs in fixed world units.
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

// Phase identifies the active layer of the game's pushdown state machine.
type Phase int

const (
	// PhaseTitle is the start screen: backgrounds scroll, nothing else runs.
	PhaseTitle Phase = iota
	// PhasePlay is the live simulation with the player in the air.
	PhasePlay
	// PhasePause sits on top of Play after a crash; the final score shows
	// until the player starts the next flight.
	PhasePause
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseTitle:
		return "Title"
	case PhasePlay:
		return "Play"
	case PhasePause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// GameState is the game's externally visible status, returned by Game.State()
// so the platform can react to crashes and display scores.
type GameState struct {
	Score int   // Score of the current flight, or the final score after a crash
	Phase Phase // Active phase of the state machine
}

// StepResult is returned after each simulation tick.
type StepResult struct {
	State GameState
}
