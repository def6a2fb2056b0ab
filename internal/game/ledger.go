package game

// RecordStore persists the best survival time across processes. The SQLite
// store implements it; tests substitute an in-memory fake.
type RecordStore interface {
	// LoadBest returns the stored best time in seconds, 0 if none exists.
	LoadBest() (int, error)
	// StoreBest overwrites the stored best time.
	StoreBest(seconds int) error
}

// Ledger tracks the best survival time for the life of the process. The
// stored value is loaded once at construction; after that the in-memory copy
// is authoritative, and a failed write is not retried.
type Ledger struct {
	store RecordStore
	best  int
}

// NewLedger loads the persisted best time. A missing store or a load error
// degrades to a best of zero rather than failing the session.
func NewLedger(store RecordStore) *Ledger {
	l := &Ledger{store: store}
	if store != nil {
		if v, err := store.LoadBest(); err == nil {
			l.best = v
		}
	}
	return l
}

// Best returns the current best time in seconds.
func (l *Ledger) Best() int {
	return l.best
}

// Submit offers a finished run's final time. Only a strictly greater value
// updates the record; the write-back happens immediately and at most once
// per run. Returns true when a new record was set.
func (l *Ledger) Submit(final int) bool {
	if final <= l.best {
		return false
	}
	l.best = final
	if l.store != nil {
		// Fire-and-forget: the in-memory record stays authoritative even
		// if the write fails.
		_ = l.store.StoreBest(final)
	}
	return true
}
