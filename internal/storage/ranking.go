package storage

import (
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// Ranking is the score ledger used by running games: an in-memory Ledger
// backed by an optional Store. Persistence is best-effort; failures are
// logged and never returned to the game. Safe for concurrent use.
type Ranking struct {
	mu     sync.RWMutex
	store  *Store
	ledger Ledger
	logger *log.Logger
	now    func() time.Time
}

// NewRanking loads the ledger from store. A nil store gives an in-memory
// ranking; a failed load starts from an empty ledger.
func NewRanking(store *Store, logger *log.Logger) *Ranking {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	r := &Ranking{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
	if store != nil {
		ledger, err := store.Load()
		if err != nil {
			logger.Warn("could not load score ledger, starting empty", "error", err)
			ledger = Ledger{}
		}
		r.ledger = ledger
	}
	return r
}

// AddRecord inserts a finished run and persists the ledger.
func (r *Ranking) AddRecord(score, livesRemaining int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.ledger.Add(Record{
		Score: score,
		Date:  r.now().Truncate(time.Second),
		Lives: livesRemaining,
	})
	r.logger.Debug("score recorded", "score", score, "lives", livesRemaining, "highest", r.ledger.Highest)

	if r.store == nil {
		return
	}
	if err := r.store.Save(r.ledger); err != nil {
		r.logger.Warn("could not save score ledger", "error", err)
	}
}

// TopN returns up to n best records.
func (r *Ranking) TopN(n int) []Record {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.ledger.TopN(n)
}

// Highest returns the best score ever recorded.
func (r *Ranking) Highest() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.ledger.Highest
}

// Count returns the number of records kept.
func (r *Ranking) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.ledger.Count()
}
