package config

import (
	_ "embed"
)

//go:embed defaults/flippy.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in tuning, which reproduces the original
// game feel: slow parallax backdrop, faster ground, a 110 px gap and two to
// four seconds between pipe pairs.
func DefaultConfig() Config {
	return Config{
		Physics: Physics{
			Gravity:     -26.0,
			JumpImpulse: 4.0,
		},
		Scroll: Scroll{
			BackdropSpeed: 30.0,
			GroundSpeed:   61.0,
		},
		Pipes: Pipes{
			ScrollSpeed:     -60.0,
			Gap:             110.0,
			SpawnDelayMin:   2.0,
			SpawnDelayMax:   4.0,
			OffsetBottomMin: -40.0,
			OffsetBottomMax: -20.0,
			OffsetTopMin:    20.0,
			OffsetTopMax:    40.0,
		},
		Audio: Audio{
			Enabled:      true,
			MasterVolume: 0.125,
			Jump:         0.15,
			Score:        0.25,
			Hurt:         0.25,
			Explosion:    0.25,
		},
	}
}

// DefaultYAML returns the embedded default config file, for the `config`
// command and as the last resort of the loader.
func DefaultYAML() []byte {
	return defaultYAML
}
