package config

import "fmt"

// Preset names a difficulty preset selectable from the command line.
type Preset string

const (
	PresetEasy   Preset = "easy"
	PresetNormal Preset = "normal"
	PresetHard   Preset = "hard"
)

// ApplyPreset adjusts cfg for the named preset. The normal preset leaves
// the configuration untouched so file-based tuning survives it.
func ApplyPreset(cfg *Config, p Preset) error {
	switch p {
	case PresetNormal, "":
		return nil
	case PresetEasy:
		cfg.Pipes.Gap = 140
		cfg.Pipes.SpawnDelayMin = 2.5
		cfg.Pipes.SpawnDelayMax = 4.5
		return nil
	case PresetHard:
		cfg.Pipes.Gap = 90
		cfg.Pipes.SpawnDelayMin = 1.6
		cfg.Pipes.SpawnDelayMax = 3.4
		return nil
	default:
		return fmt.Errorf("config: unknown preset %q (want easy, normal or hard)", p)
	}
}
