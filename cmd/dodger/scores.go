package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-dodger/internal/platform/tui"
	"github.com/vovakirdan/tui-dodger/internal/storage"
)

var (
	flagInteractive bool
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the ranking",
	Long: `Display the ten best runs with their remaining lives and dates.

Examples:
  dodger scores
  dodger scores --interactive
  dodger scores --db ./scores.db
  dodger scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse the ranking in a table view")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every stored record")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.Clear(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Ranking cleared.")
		return
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "dodger"})
	ranking := storage.NewRanking(store, logger)

	if !flagInteractive {
		fmt.Print(tui.FormatScores(ranking))
		return
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}
	if err := tui.RunScoreboard(ranking, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
