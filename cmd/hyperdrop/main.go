// hyperdrop is a falling-block puzzle game for the terminal.
//
// Usage:
//
//	hyperdrop play           - Play a game (default command)
//	hyperdrop scores         - Show high scores
//	hyperdrop config         - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>       - Set frame rate (default: 60)
//	--seed <value>     - Set RNG seed for a reproducible piece order
//	--db <path>        - Set database path (default: ~/.hyperdrop/scores.db)
//	--config <path>    - Use a custom config YAML
//	--log-file <path>  - Log file used while playing (default: ~/.hyperdrop/hyperdrop.log)
//	--debug            - Enable debug logging
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hyperdrop/internal/storage"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagConfig  string
	flagLogFile string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "hyperdrop",
	Short: "HyperDrop - falling blocks in your terminal",
	Long: `HyperDrop is a falling-block puzzle game for the terminal.
Steer the falling pieces, fill rows to clear them and score 100 points
per row. The game ends when a new piece has no room to spawn.

Available commands:
  play     - Play a game
  scores   - View high scores
  config   - Print the effective configuration

Examples:
  hyperdrop
  hyperdrop play --name ada
  hyperdrop scores --limit 20
  hyperdrop config --default`,
	Run: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", defaultLogFile, "Log file used while playing")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
