// Package storage provides persistence for the dodger score ledger.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

const highestKey = "highest_score"

// Store manages the SQLite database connection for the score ledger.
type Store struct {
	db *sql.DB
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS records (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			score INTEGER NOT NULL,
			lives INTEGER NOT NULL DEFAULT 0,
			date TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_records_score ON records(score DESC);

		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Load reads the whole ledger. Records come back in table order (score
// descending, then insertion order). Rows with unparseable dates keep a zero
// timestamp and negative lives read as 0 rather than failing the load.
func (s *Store) Load() (Ledger, error) {
	rows, err := s.db.Query(
		`SELECT score, lives, date
		 FROM records
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		MaxRecords,
	)
	if err != nil {
		return Ledger{}, fmt.Errorf("storage: cannot query records: %w", err)
	}
	defer rows.Close()

	var ledger Ledger
	for rows.Next() {
		var rec Record
		var date string
		if err := rows.Scan(&rec.Score, &rec.Lives, &date); err != nil {
			return Ledger{}, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		if parsed, err := time.ParseInLocation(DateLayout, date, time.Local); err == nil {
			rec.Date = parsed
		}
		rec.Lives = max(rec.Lives, 0)
		ledger.Records = append(ledger.Records, rec)
	}

	if err := rows.Err(); err != nil {
		return Ledger{}, fmt.Errorf("storage: row iteration error: %w", err)
	}

	highest, err := s.highest()
	if err != nil {
		return Ledger{}, err
	}
	ledger.Highest = highest
	for _, rec := range ledger.Records {
		ledger.Highest = max(ledger.Highest, rec.Score)
	}

	return ledger, nil
}

// highest returns the persisted running maximum, or 0 if none is stored.
func (s *Store) highest() (int, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM meta WHERE key = ?", highestKey).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query highest score: %w", err)
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, nil
	}
	return n, nil
}

// Save replaces the persisted ledger with the given one in a single
// transaction.
func (s *Store) Save(ledger Ledger) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after Commit

	if _, err := tx.Exec("DELETE FROM records"); err != nil {
		return fmt.Errorf("storage: cannot clear records: %w", err)
	}

	for _, rec := range ledger.Records {
		if _, err := tx.Exec(
			"INSERT INTO records (score, lives, date) VALUES (?, ?, ?)",
			rec.Score, rec.Lives, rec.DateString(),
		); err != nil {
			return fmt.Errorf("storage: cannot save record: %w", err)
		}
	}

	if _, err := tx.Exec(
		`INSERT INTO meta (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		highestKey, strconv.Itoa(ledger.Highest),
	); err != nil {
		return fmt.Errorf("storage: cannot save highest score: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit ledger: %w", err)
	}
	return nil
}

// Clear deletes every record and resets the highest score.
func (s *Store) Clear() error {
	return s.Save(Ledger{})
}
