package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hyperdrop/internal/hyperdrop"
	"github.com/vovakirdan/hyperdrop/internal/storage"
)

var (
	flagLimit   int
	flagClear   bool
	flagHistory bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top high scores, best first. With --history, list the
most recent games in the order they were played.

Examples:
  hyperdrop scores
  hyperdrop scores --limit 25
  hyperdrop scores --history
  hyperdrop scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all stored scores")
	scoresCmd.Flags().BoolVar(&flagHistory, "history", false, "List recent games in play order")
}

func runScores(cmd *cobra.Command, args []string) {
	logger := newLogger(os.Stderr)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		logger.Info("scores cleared", "db", flagDBPath)
		return
	}

	if flagHistory {
		records, err := store.LoadScores()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
			os.Exit(1)
		}
		printHistory(os.Stdout, records, flagLimit)
		return
	}

	scores, err := store.TopScores(flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("High Scores - HyperDrop")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'hyperdrop play' to set the first high score!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-16s  %-8s  %s\n", "Rank", "Player", "Score", "Date")
	fmt.Printf("  %-4s  %-16s  %-8s  %s\n", "----", "------", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Local().Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-16s  %-8d  %s\n", i+1, entry.PlayerName, entry.Score, dateStr)
	}

	if name, ok, err := store.CurrentPlayer(); err == nil && ok {
		fmt.Println()
		fmt.Printf("Current player: %s\n", name)
	}
}

// printHistory writes the last limit games, oldest first.
func printHistory(w io.Writer, records []hyperdrop.ScoreRecord, limit int) {
	fmt.Fprintln(w, "Recent Games - HyperDrop")
	fmt.Fprintln(w)

	if len(records) == 0 {
		fmt.Fprintln(w, "No games recorded yet.")
		return
	}
	if limit > 0 && len(records) > limit {
		records = records[len(records)-limit:]
	}

	fmt.Fprintf(w, "  %-16s  %-8s  %s\n", "Player", "Score", "Date")
	fmt.Fprintf(w, "  %-16s  %-8s  %s\n", "------", "-----", "----")
	for _, r := range records {
		dateStr := r.CreatedAt.Local().Format("2006-01-02 15:04")
		fmt.Fprintf(w, "  %-16s  %-8d  %s\n", r.PlayerName, r.Score, dateStr)
	}
}
