package core

// Sound identifies a one-shot sound effect the simulation can request.
type Sound int

const (
	SoundJump      Sound = iota // Wing flap on an accepted jump
	SoundScore                  // Passing an obstacle pair
	SoundHurt                   // Collision sting
	SoundExplosion              // Collision body, layered over the sting
)

// String returns a human-readable name for the sound.
func (s Sound) String() string {
	switch s {
	case SoundJump:
		return "jump"
	case SoundScore:
		return "score"
	case SoundHurt:
		return "hurt"
	case SoundExplosion:
		return "explosion"
	default:
		return "unknown"
	}
}

// AudioPlayer is the output the simulation plays one-shot effects through.
// Implementations must be safe to call from the simulation loop. A nil
// player is valid and means no audio device is available.
type AudioPlayer interface {
	// PlayOnce fires a one-shot sound at the given volume, where 1.0 is the
	// generator's natural level. It must never block the caller.
	PlayOnce(s Sound, volume float64)
}
