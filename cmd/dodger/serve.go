package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-dodger/internal/games/dodger"
	"github.com/vovakirdan/tui-dodger/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the dodger SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection runs its own game. All players share one ranking.
Logs go to stderr unless --log-file names a file.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.dodger/host_key

Examples:
  dodger serve                           # Listen on :23234 with auto-generated key
  dodger serve --ssh :2222               # Listen on port 2222
  dodger serve --host-key ./my_host_key  # Use specific host key
  dodger serve --db ./scores.db          # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(cmd *cobra.Command, _ []string) {
	logPath := flagLogFile
	if !cmd.Flags().Changed("log-file") {
		logPath = "-"
	}
	logger, closeLog, err := newLogger(logPath, "dodger-ssh")
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

	ranking, closeRanking := openRanking(logger)
	defer closeRanking()

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.TickRate = flagFPS

	newGame := func() tui.Game {
		return dodger.New(gameCfg, ranking)
	}

	server, err := tui.NewSSHServer(cfg, newGame, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting dodger SSH server on %s\n", cfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		closeRanking()
		os.Exit(1)
	}
}
