package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/Bastczuak/flippy/internal/config"
)

var (
	flagConfigPath   string
	flagConfigPreset string
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective tuning as YAML",
	Long: `Resolve the tuning the game would run with and print it as YAML.

The output reflects the full search order (custom path, ~/.flippy/config.yaml,
./configs/flippy.yaml, built-in default) plus any preset, so it doubles as a
starting point for a custom tuning file:

  flippy config > my-tuning.yaml
  flippy play --config my-tuning.yaml

Examples:
  flippy config
  flippy config --preset hard
  flippy config --config ./my-tuning.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagConfigPath, "config", "", "Path to custom tuning YAML")
	configCmd.Flags().StringVar(&flagConfigPreset, "preset", "", "Difficulty preset: easy, normal, hard")
}

func runConfig(cmd *cobra.Command, args []string) {
	tuning, err := config.Load(flagConfigPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := config.ApplyPreset(&tuning, config.Preset(flagConfigPreset)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	out, err := yaml.Marshal(tuning)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding config: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(out)
}
