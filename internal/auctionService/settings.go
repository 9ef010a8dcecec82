package auction

import (
	"fmt"
	"time"

	"gift-auction/internal/auctionerrors"
)

// Settings are the per-auction bidding rules enforced before a bid reaches the engine
type Settings struct {
	MinBid           int64 `yaml:"min_bid" json:"min_bid"`
	MinBidDifference int64 `yaml:"min_bid_difference" json:"min_bid_difference"`
	AntiSnipingSec   int64 `yaml:"antisniping_sec" json:"antisniping_sec"`
}

// Validate rejects negative settings
func (s Settings) Validate() error {
	if s.MinBid < 0 || s.MinBidDifference < 0 || s.AntiSnipingSec < 0 {
		return fmt.Errorf("settings: %w - values must be non-negative: %+v", auctionerrors.ErrInvalidConfig, s)
	}
	return nil
}

// Check applies the minimum bid and minimum increment rules.
// current is the user's active amount, 0 if none.
func (s Settings) Check(current, amount int64) error {
	if amount < s.MinBid {
		return fmt.Errorf("settings: %w - minimum is %d", auctionerrors.ErrBelowMinBid, s.MinBid)
	}
	if current > 0 && amount > current && amount-current < s.MinBidDifference {
		return fmt.Errorf("settings: %w - raise by at least %d over %d", auctionerrors.ErrBelowMinIncrement, s.MinBidDifference, current)
	}
	return nil
}

// AntiSnipingWindow is how close to the deadline a bid extends the round
func (s Settings) AntiSnipingWindow() time.Duration {
	return time.Duration(s.AntiSnipingSec) * time.Second
}
