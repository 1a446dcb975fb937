package core

// Game is the contract between the simulation and the platforms that drive
// it. The simulation is pure logic with no external dependencies (especially
// no Bubble Tea); the platform handles input mapping, timing and rendering.
type Game interface {
	// Reset initializes or re-initializes the simulation.
	// The RuntimeConfig provides the RNG seed. Screen dimensions are
	// advisory: rendering projects the playfield onto whatever buffer it
	// is handed, so a resize does not require a reset.
	Reset(cfg RuntimeConfig)

	// Step advances the simulation by dt seconds of game time.
	// Input is abstracted to platform-level actions (Jump, Quit).
	Step(in InputFrame, dt float64) StepResult

	// Render draws the current state into the provided screen buffer.
	// The buffer is pre-cleared before this call.
	Render(dst *Screen)

	// State returns the current score and phase.
	State() GameState
}
