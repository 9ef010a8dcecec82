package models

import "time"

// Phase is the lifecycle state of an auction run
type Phase string

const (
	PhaseIdle    Phase = "idle"
	PhaseRunning Phase = "running"
	PhaseEnded   Phase = "ended"
)

// Config holds the auction parameters for one run
type Config struct {
	TotalGifts       int `json:"total_gifts" yaml:"total_gifts"`
	PerRound         int `json:"per_round" yaml:"per_round"`
	RoundDurationSec int `json:"round_duration_sec" yaml:"round_duration_sec"`
}

// RoundDuration returns the configured round length
func (c Config) RoundDuration() time.Duration {
	return time.Duration(c.RoundDurationSec) * time.Second
}

// Bid is a user's single active bid in the ledger
type Bid struct {
	UserID    string    `json:"user_id"`
	Amount    int64     `json:"amount"`
	UpdatedAt time.Time `json:"updated_at"`

	// Seq orders writes that share amount and timestamp.
	Seq uint64 `json:"-"`
}

// Winner is a settled bid that received a gift
type Winner struct {
	Round      int    `json:"round"`
	UserID     string `json:"user_id"`
	Amount     int64  `json:"amount"`
	GiftNumber int    `json:"gift_number"`
}

// RankedBid is a leaderboard row
type RankedBid struct {
	Rank int `json:"rank"`
	Bid
}

// Status is a snapshot of the engine state
type Status struct {
	Phase         Phase      `json:"phase"`
	RoundIndex    int        `json:"round_index"`
	EndAt         *time.Time `json:"end_at"`
	GiftsAssigned int        `json:"gifts_assigned"`
	GiftsLeft     int        `json:"gifts_left"`
	TotalGifts    int        `json:"total_gifts"`
	PerRound      int        `json:"per_round"`
}

// RoundResult is what closing a round produced
type RoundResult struct {
	Round   int      `json:"round"`
	Winners []Winner `json:"winners"`
	Phase   Phase    `json:"phase"`
	Settled bool     `json:"settled"`
}

// RejectReason explains why the engine did not accept a bid
type RejectReason string

const (
	RejectNone         RejectReason = ""
	RejectNotHigher    RejectReason = "not_higher"
	RejectAlreadyWon   RejectReason = "already_won"
	RejectAuctionEnded RejectReason = "auction_ended"
)

// BidOutcome is the engine's answer to a bid
type BidOutcome struct {
	Accepted bool         `json:"accepted"`
	Amount   int64        `json:"amount"`
	Reason   RejectReason `json:"reason,omitempty"`
}

// BidReceipt acknowledges an accepted bid
type BidReceipt struct {
	BidID     string     `json:"bid_id"`
	UserID    string     `json:"user_id"`
	Amount    int64      `json:"amount"`
	Rank      int        `json:"rank"`
	UpdatedAt time.Time  `json:"updated_at"`
	EndAt     *time.Time `json:"end_at"`
}

// UserBidStatus classifies a user's position in the run
type UserBidStatus string

const (
	UserBidNone   UserBidStatus = "none"
	UserBidActive UserBidStatus = "active"
	UserBidWon    UserBidStatus = "won"
	UserBidLost   UserBidStatus = "lost"
)

// UserBid is a single user's view of the auction
type UserBid struct {
	UserID     string        `json:"user_id"`
	Amount     int64         `json:"amount"`
	Rank       int           `json:"rank"`
	Status     UserBidStatus `json:"status"`
	GiftNumber int           `json:"gift_number,omitempty"`
	Refund     int64         `json:"refund"`
}

// Leaderboard is the ranked view returned to callers
type Leaderboard struct {
	Entries  []RankedBid `json:"entries"`
	MinToWin int64       `json:"min_to_win,omitempty"`
}
