package storage

import (
	"sort"
	"time"
)

// MaxRecords is the number of runs a ledger keeps.
const MaxRecords = 10

// DateLayout is the persisted timestamp format of a record.
const DateLayout = "2006-01-02 15:04:05"

// Record is one finished run.
type Record struct {
	Score int
	Date  time.Time
	Lives int // Lives remaining when the run ended
}

// DateString formats the record timestamp the way it is persisted.
func (r Record) DateString() string {
	return r.Date.Format(DateLayout)
}

// Ledger is the top-N score table plus the best score ever recorded.
// The zero value is an empty ledger.
type Ledger struct {
	Records []Record
	Highest int
}

// Add inserts a record, keeps the table sorted by score descending and
// truncated to MaxRecords, and updates the running maximum. Equal scores
// keep insertion order.
func (l *Ledger) Add(rec Record) {
	l.Records = append(l.Records, rec)
	sort.SliceStable(l.Records, func(i, j int) bool {
		return l.Records[i].Score > l.Records[j].Score
	})
	if len(l.Records) > MaxRecords {
		l.Records = l.Records[:MaxRecords]
	}
	if rec.Score > l.Highest {
		l.Highest = rec.Score
	}
}

// TopN returns up to n best records. The slice is a copy.
func (l Ledger) TopN(n int) []Record {
	n = min(max(n, 0), len(l.Records))
	out := make([]Record, n)
	copy(out, l.Records[:n])
	return out
}

// Count returns the number of records kept.
func (l Ledger) Count() int {
	return len(l.Records)
}
