package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Bastczuak/flippy/internal/audio"
	"github.com/Bastczuak/flippy/internal/config"
	"github.com/Bastczuak/flippy/internal/core"
	"github.com/Bastczuak/flippy/internal/game"
	"github.com/Bastczuak/flippy/internal/platform/tui"
	"github.com/Bastczuak/flippy/internal/storage"
)

var (
	flagConfig string
	flagPreset string
	flagPlayer string
	flagMute   bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Fly in the local terminal",
	Long: `Start a flight in the current terminal.

Controls:
  Space/Up/W - Flap
  Q/Esc      - Quit

Preset options:
  easy   - Wider pipe gap, more time between pairs
  normal - The classic tuning
  hard   - Narrow gap, pipes come faster

Examples:
  flippy play
  flippy play --preset easy
  flippy play --mute
  flippy play --config ./my-tuning.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom tuning YAML")
	playCmd.Flags().StringVar(&flagPreset, "preset", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().StringVar(&flagPlayer, "player", "", "Name to record scores under (default: $USER)")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable all audio output")
}

func runPlay(cmd *cobra.Command, args []string) {
	// Load tuning and apply the requested preset
	tuning, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := config.ApplyPreset(&tuning, config.Preset(flagPreset)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagMute {
		tuning.Audio.Enabled = false
	}

	// Get terminal size for the initial screen buffer
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Create runtime config
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	player := flagPlayer
	if player == "" {
		player = os.Getenv("USER")
	}
	if player == "" {
		player = "player"
	}

	// Bring up the speaker; a failure means a silent game, not a dead one
	sound := audio.NewEngine(tuning.Audio)
	if soundErr := sound.Start(); soundErr != nil {
		fmt.Fprintf(os.Stderr, "Warning: audio unavailable: %v\n", soundErr)
	}
	defer sound.Stop()

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	// Run the game
	runErr := tui.Run(game.New(tuning, sound), store, sound, player, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
