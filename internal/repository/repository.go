package repository

import (
	model "gift-auction/internal/models"
	"sync"
	"time"
)

// BidLedger holds at most one active bid per user
type BidLedger interface {
	PlaceOrIncrease(userID string, amount int64, now time.Time) (model.Bid, bool)
	Get(userID string) (model.Bid, bool)
	Remove(userIDs ...string)
	All() []model.Bid
	Len() int
}

// MemoryLedger is a concurrency-safe in-memory implementation of BidLedger
type MemoryLedger struct {
	mu   sync.RWMutex
	bids map[string]model.Bid // key: userID -> value: current bid
	seq  uint64
}

// NewMemoryLedger creates a new in-memory ledger instance
func NewMemoryLedger() *MemoryLedger {
	return &MemoryLedger{
		bids: make(map[string]model.Bid),
	}
}

// PlaceOrIncrease inserts a first bid or raises an existing one.
// It reports false and leaves the ledger untouched when amount does not
// exceed the user's current bid.
func (r *MemoryLedger) PlaceOrIncrease(userID string, amount int64, now time.Time) (model.Bid, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.bids[userID]
	if ok && amount <= existing.Amount {
		return existing, false
	}

	r.seq++
	bid := model.Bid{
		UserID:    userID,
		Amount:    amount,
		UpdatedAt: now,
		Seq:       r.seq,
	}
	r.bids[userID] = bid
	return bid, true
}

// Get returns the current bid for a user
func (r *MemoryLedger) Get(userID string) (model.Bid, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bid, ok := r.bids[userID]
	return bid, ok
}

// Remove drops the given users from the ledger
func (r *MemoryLedger) Remove(userIDs ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, id := range userIDs {
		delete(r.bids, id)
	}
}

// All returns a copy of every active bid in no particular order
func (r *MemoryLedger) All() []model.Bid {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bids := make([]model.Bid, 0, len(r.bids))
	for _, b := range r.bids {
		bids = append(bids, b)
	}
	return bids
}

// Len returns the number of active bidders
func (r *MemoryLedger) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.bids)
}
