// Package config provides YAML-based tuning for the game: physics, scroll
// speeds, obstacle spawning and audio volumes. Values are expressed in world
// pixels and seconds, matching the 512x288 virtual playfield.
package config

import "fmt"

// Config is the full tuning set for a game session.
type Config struct {
	Physics Physics `yaml:"physics"`
	Scroll  Scroll  `yaml:"scroll"`
	Pipes   Pipes   `yaml:"pipes"`
	Audio   Audio   `yaml:"audio"`
}

// Physics defines the player's vertical motion.
type Physics struct {
	// Gravity is added to the vertical velocity every second, negative pulls
	// down.
	Gravity float64 `yaml:"gravity"`
	// JumpImpulse replaces the vertical velocity on an accepted flap.
	JumpImpulse float64 `yaml:"jump_impulse"`
}

// Scroll defines the background layer speeds in px/s. The ground scrolls
// faster than the backdrop for a parallax effect.
type Scroll struct {
	BackdropSpeed float64 `yaml:"backdrop_speed"`
	GroundSpeed   float64 `yaml:"ground_speed"`
}

// Pipes defines obstacle motion and spawning. Offsets shift the gap center
// away from the playfield centerline; the spawner draws the shift uniformly
// between one value from the bottom range and one from the top range.
type Pipes struct {
	// ScrollSpeed is the horizontal velocity in px/s, negative moves left.
	ScrollSpeed float64 `yaml:"scroll_speed"`
	// Gap is the vertical opening between a pair's members, in px.
	Gap float64 `yaml:"gap"`
	// SpawnDelayMin/Max bound the random delay between pairs, in seconds.
	SpawnDelayMin float64 `yaml:"spawn_delay_min"`
	SpawnDelayMax float64 `yaml:"spawn_delay_max"`
	// Offset draw ranges, in px relative to the centerline.
	OffsetBottomMin float64 `yaml:"offset_bottom_min"`
	OffsetBottomMax float64 `yaml:"offset_bottom_max"`
	OffsetTopMin    float64 `yaml:"offset_top_min"`
	OffsetTopMax    float64 `yaml:"offset_top_max"`
}

// Audio defines output volumes. Volumes are linear gains where 1.0 is the
// generator's natural level; the master volume scales everything.
type Audio struct {
	Enabled      bool    `yaml:"enabled"`
	MasterVolume float64 `yaml:"master_volume"`
	Jump         float64 `yaml:"jump"`
	Score        float64 `yaml:"score"`
	Hurt         float64 `yaml:"hurt"`
	Explosion    float64 `yaml:"explosion"`
}

// Validate checks a loaded config for values the simulation cannot run with.
func (c Config) Validate() error {
	if c.Pipes.SpawnDelayMin <= 0 || c.Pipes.SpawnDelayMax < c.Pipes.SpawnDelayMin {
		return fmt.Errorf("config: spawn delay range [%v, %v] is invalid",
			c.Pipes.SpawnDelayMin, c.Pipes.SpawnDelayMax)
	}
	if c.Pipes.Gap <= 0 {
		return fmt.Errorf("config: pipe gap %v must be positive", c.Pipes.Gap)
	}
	if c.Pipes.OffsetBottomMax < c.Pipes.OffsetBottomMin {
		return fmt.Errorf("config: bottom offset range [%v, %v] is invalid",
			c.Pipes.OffsetBottomMin, c.Pipes.OffsetBottomMax)
	}
	if c.Pipes.OffsetTopMax < c.Pipes.OffsetTopMin {
		return fmt.Errorf("config: top offset range [%v, %v] is invalid",
			c.Pipes.OffsetTopMin, c.Pipes.OffsetTopMax)
	}
	if c.Pipes.OffsetBottomMax > c.Pipes.OffsetTopMin {
		return fmt.Errorf("config: bottom offsets must stay below top offsets, got [%v, %v] vs [%v, %v]",
			c.Pipes.OffsetBottomMin, c.Pipes.OffsetBottomMax,
			c.Pipes.OffsetTopMin, c.Pipes.OffsetTopMax)
	}
	if c.Audio.MasterVolume < 0 || c.Audio.MasterVolume > 1 {
		return fmt.Errorf("config: master volume %v must be within [0, 1]", c.Audio.MasterVolume)
	}
	return nil
}
