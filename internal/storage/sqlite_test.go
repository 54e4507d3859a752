package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreLoadMissingIsEmpty(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	ledger, err := store.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if ledger.Count() != 0 || ledger.Highest != 0 {
		t.Errorf("fresh store should load empty ledger, got %+v", ledger)
	}
}

func TestStoreSaveAndReload(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	when := time.Date(2026, 3, 14, 15, 9, 26, 0, time.Local)

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}

	var ledger Ledger
	ledger.Add(Record{Score: 120, Date: when, Lives: 0})
	ledger.Add(Record{Score: 450, Date: when.Add(time.Minute), Lives: 0})
	ledger.Highest = 9000 // running max survives even when its record is gone

	if err := store.Save(ledger); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if loaded.Count() != 2 {
		t.Fatalf("Count() = %d, expected 2", loaded.Count())
	}
	if loaded.Records[0].Score != 450 || loaded.Records[1].Score != 120 {
		t.Errorf("records out of order: %+v", loaded.Records)
	}
	if !loaded.Records[1].Date.Equal(when) {
		t.Errorf("date = %v, expected %v", loaded.Records[1].Date, when)
	}
	if loaded.Highest != 9000 {
		t.Errorf("Highest = %d, expected 9000", loaded.Highest)
	}
}

func TestStoreSaveReplaces(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	var first Ledger
	first.Add(Record{Score: 1})
	first.Add(Record{Score: 2})
	if err := store.Save(first); err != nil {
		t.Fatal(err)
	}

	var second Ledger
	second.Add(Record{Score: 3})
	if err := store.Save(second); err != nil {
		t.Fatal(err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Count() != 1 || loaded.Records[0].Score != 3 {
		t.Errorf("Save should replace previous records, got %+v", loaded.Records)
	}

	if err := store.Clear(); err != nil {
		t.Fatal(err)
	}
	loaded, err = store.Load()
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Count() != 0 || loaded.Highest != 0 {
		t.Errorf("Clear should empty the ledger, got %+v", loaded)
	}
}

func TestStoreOpenCorruptFile(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "corrupt.db")
	garbage := make([]byte, 4096)
	for i := range garbage {
		garbage[i] = byte(i*7 + 3)
	}
	if err := os.WriteFile(dbPath, garbage, 0o600); err != nil {
		t.Fatal(err)
	}

	store, err := Open(dbPath)
	if err == nil {
		store.Close()
		t.Fatal("Open() on a corrupt file should fail")
	}

	// The game falls back to an in-memory ranking.
	r := NewRanking(nil, nil)
	if r.Count() != 0 || r.Highest() != 0 {
		t.Error("fallback ranking should be empty")
	}
}

func TestStoreLoadClampsBadRows(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := store.db.Exec(
		"INSERT INTO records (score, lives, date) VALUES (?, ?, ?)", 100, -1, "x",
	); err != nil {
		t.Fatal(err)
	}

	ledger, err := store.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if ledger.Count() != 1 {
		t.Fatalf("Count() = %d, expected 1", ledger.Count())
	}
	rec := ledger.Records[0]
	if rec.Lives != 0 {
		t.Errorf("Lives = %d, expected 0", rec.Lives)
	}
	if !rec.Date.IsZero() {
		t.Errorf("Date = %v, expected zero time", rec.Date)
	}
	if ledger.Highest != 100 {
		t.Errorf("Highest = %d, expected 100", ledger.Highest)
	}
}
