// flippy is a terminal rendition of the scrolling-pipes arcade game.
//
// Usage:
//
//	flippy play              - Fly (local terminal)
//	flippy serve             - Start SSH server for remote play
//	flippy scores            - Show the leaderboard
//	flippy config            - Print the effective tuning as YAML
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.flippy/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flippy",
	Short: "Flippy - pilot a bird through the pipes, in your terminal",
	Long: `Flippy is a side-scrolling arcade game played in the terminal: tap to
keep the bird airborne, slip through the pipe gaps, and rack up a score.

Available commands:
  play     - Fly in the local terminal
  serve    - Start SSH server for remote play
  scores   - View the leaderboard
  config   - Print the effective tuning as YAML

Examples:
  flippy play
  flippy play --preset hard
  flippy serve --ssh :2222
  flippy scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.flippy/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
