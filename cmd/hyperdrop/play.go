package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/hyperdrop/internal/config"
	"github.com/vovakirdan/hyperdrop/internal/core"
	"github.com/vovakirdan/hyperdrop/internal/platform/tui"
	"github.com/vovakirdan/hyperdrop/internal/storage"
)

var flagName string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start HyperDrop. Enter your name on the start screen, or pass --name
to skip it.

Controls:
  Left/H, Right/L  - Move
  Down/J           - Soft drop
  Space            - Rotate
  Up/K             - Hard drop
  Esc              - End the game
  R                - Play again (after game over)
  Tab              - High scores (after game over)
  Ctrl+S           - Screenshot
  Q/Ctrl+C         - Quit

Examples:
  hyperdrop play
  hyperdrop play --name ada
  hyperdrop play --seed 42 --config ./my-hyperdrop.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagName, "name", "", "Player name (skips the start screen)")
	// hyperdrop with no subcommand plays too
	rootCmd.Flags().StringVar(&flagName, "name", "", "Player name (skips the start screen)")
}

func runPlay(cmd *cobra.Command, args []string) {
	if err := play(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// play runs one program session. Deferred cleanup runs before runPlay exits.
func play() error {
	var logOut io.Writer = io.Discard
	if logFile, err := openLogFile(flagLogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
	} else {
		defer logFile.Close()
		logOut = logFile
	}
	logger := newLogger(logOut)

	gameCfg, err := config.LoadHyperdrop(flagConfig)
	if err != nil {
		logger.Error("could not load config", "path", flagConfig, "error", err)
		return err
	}

	// Get terminal size for the first frame
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Open score storage
	var scores storage.Scores
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("scores will not be saved", "db", flagDBPath, "error", err)
		// Continue in memory - game still works
		scores = storage.NewMemory()
	} else {
		defer store.Close()
		scores = store
	}

	logger.Debug("starting", "rows", gameCfg.Board.Rows, "cols", gameCfg.Board.Cols,
		"drop_interval", gameCfg.DropInterval(), "seed", flagSeed)

	if err := tui.Run(tui.Options{
		Store:   scores,
		Game:    gameCfg,
		Runtime: rt,
		Logger:  logger,
		Player:  flagName,
	}); err != nil {
		logger.Error("game exited", "error", err)
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
