package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-dodger/internal/config"
	"github.com/vovakirdan/tui-dodger/internal/storage"
)

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// newLogger opens the log destination. "-" logs to stderr; anything else
// is a file that is appended to. The returned closer is never nil.
func newLogger(path, prefix string) (*log.Logger, io.Closer, error) {
	opts := log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           log.InfoLevel,
	}
	if os.Getenv("DODGER_DEBUG") != "" {
		opts.Level = log.DebugLevel
	}

	if path == "-" {
		return log.NewWithOptions(os.Stderr, opts), io.NopCloser(nil), nil
	}

	path, err := expandHome(path)
	if err != nil {
		return nil, nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return log.NewWithOptions(f, opts), f, nil
}

// loadGameConfig resolves the game config and applies the difficulty flag.
func loadGameConfig() (config.DodgerConfig, error) {
	cfg, err := config.LoadDodger(flagConfig)
	if err != nil {
		return config.DodgerConfig{}, err
	}

	if flagDifficulty != "" {
		preset := config.ParsePreset(flagDifficulty)
		if preset == "" {
			return config.DodgerConfig{}, fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
		}
		config.ApplyDodgerPreset(&cfg, preset)
	}
	return cfg, nil
}

// openRanking opens the score database. A database that cannot be opened
// is logged and replaced by an in-memory ranking, so the game still runs.
func openRanking(logger *log.Logger) (*storage.Ranking, func()) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, scores will not persist", "path", flagDBPath, "error", err)
		return storage.NewRanking(nil, logger), func() {}
	}

	return storage.NewRanking(store, logger), func() {
		if err := store.Close(); err != nil {
			logger.Warn("could not close scores database", "error", err)
		}
	}
}
