// dodger is a terminal arcade game: steer with the mouse or arrow keys,
// dodge obstacles and AI trackers, and grab power-ups.
//
// Usage:
//
//	dodger                   - Play (same as "dodger play")
//	dodger play              - Play in this terminal
//	dodger scores            - Show the ranking
//	dodger serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.dodger/scores.db)
//	--config <path>       - Custom game config YAML
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-file <path>     - Log destination (default: ~/.dodger/dodger.log)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dodger",
	Short: "AI Dodger - dodge obstacles and AI trackers in your terminal",
	Long: `AI Dodger is a real-time arcade game for the terminal.

Obstacles home in from the screen edges, AI trackers hunt you with noisy
pursuit, and power-ups appear for a few seconds at a time. Survive as long
as you can; the ten best runs are kept in the ranking.

Available commands:
  play     - Play in this terminal (default)
  scores   - View the ranking
  serve    - Start SSH server for remote play

Examples:
  dodger
  dodger play --difficulty hard
  dodger scores --interactive
  dodger serve --ssh :2222`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.dodger/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.dodger/dodger.log", "Log file path (\"-\" for stderr)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
