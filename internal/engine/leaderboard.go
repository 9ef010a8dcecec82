package engine

import (
	"iter"
	"slices"

	model "gift-auction/internal/models"
)

// Rank sorts bids by amount descending, then by who reached the amount first.
// The input slice is sorted in place and returned.
func Rank(bids []model.Bid) []model.Bid {
	slices.SortFunc(bids, compareBids)
	return bids
}

func compareBids(a, b model.Bid) int {
	switch {
	case a.Amount != b.Amount:
		if a.Amount > b.Amount {
			return -1
		}
		return 1
	case !a.UpdatedAt.Equal(b.UpdatedAt):
		return a.UpdatedAt.Compare(b.UpdatedAt)
	case a.Seq != b.Seq:
		if a.Seq < b.Seq {
			return -1
		}
		return 1
	default:
		if a.UserID < b.UserID {
			return -1
		}
		if a.UserID > b.UserID {
			return 1
		}
		return 0
	}
}

// Leaderboard yields the ledger in ranked order. Every iteration takes a
// fresh snapshot of the ledger.
func (e *Engine) Leaderboard() iter.Seq[model.Bid] {
	return func(yield func(model.Bid) bool) {
		for _, b := range e.ranked() {
			if !yield(b) {
				return
			}
		}
	}
}

// RankOf returns the 1-based leaderboard position of a user, or 0
func (e *Engine) RankOf(userID string) int {
	if _, ok := e.ledger.Get(userID); !ok {
		return 0
	}
	for i, b := range e.ranked() {
		if b.UserID == userID {
			return i + 1
		}
	}
	return 0
}

// MinToWin returns the lowest bid that would currently win a gift if the
// round closed now. It reports false when fewer bids than capacity exist.
func (e *Engine) MinToWin() (int64, bool) {
	capacity := e.capacity()
	if capacity <= 0 {
		return 0, false
	}
	ranked := e.ranked()
	if len(ranked) < capacity {
		return 0, false
	}
	return ranked[capacity-1].Amount, true
}

func (e *Engine) ranked() []model.Bid {
	return Rank(e.ledger.All())
}
