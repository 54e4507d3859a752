package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-dodger/internal/core"
	"github.com/vovakirdan/tui-dodger/internal/games/dodger"
	"github.com/vovakirdan/tui-dodger/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in the current terminal.

Controls:
  Mouse         - The player follows the pointer
  Arrows/WASD   - Nudge the follow point
  P/Space       - Pause
  R             - Restart (paused or after game over)
  C             - Color menu (Left/Right, Enter to confirm, Esc to cancel)
  T             - Ranking (Up/Down to scroll)
  Ctrl+S        - Save a text screenshot
  Esc           - Close overlay, or quit
  Q/Ctrl+C      - Quit

Difficulty options:
  easy   - Slower spawning, floor at one obstacle every 20 frames
  normal - One obstacle every 30 frames, down to every 15
  hard   - Faster spawning, floor at one obstacle every 10 frames
  fixed  - Spawn rate never speeds up

Examples:
  dodger play
  dodger play --difficulty easy
  dodger play --seed 42 --fps 30
  dodger play --config ./my-dodger.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	logger, closeLog, err := newLogger(flagLogFile, "dodger")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog.Close()

	gameCfg, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg := core.DefaultConfig()
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	logger.Info("config loaded", "spawn_base", gameCfg.Difficulty.BaseRate,
		"spawn_min", gameCfg.Difficulty.MinRate, "progression", gameCfg.Difficulty.Enabled)

	ranking, closeRanking := openRanking(logger)
	game := dodger.New(gameCfg, ranking)

	runErr := tui.Run(game, cfg, logger)
	closeRanking()

	if runErr != nil {
		logger.Error("game loop failed", "error", runErr)
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
