// Package engine implements the round state machine, bid rules and
// settlement of a multi-round gift auction. An Engine is a single-owner,
// in-memory value: callers must serialize access to it.
package engine

import (
	"fmt"
	"time"

	"gift-auction/internal/auctionerrors"
	model "gift-auction/internal/models"
	"gift-auction/internal/repository"
)

// Engine runs one auction
type Engine struct {
	cfg        model.Config
	ledger     repository.BidLedger
	phase      model.Phase
	roundIndex int
	endAt      time.Time // zero unless running
	winners    []model.Winner
	won        map[string]int // userID -> index into winners

	// assigned counts gifts actually won. Gifts a round could not place
	// stay in the pool for the next round.
	assigned int
}

// New creates an idle engine over the given ledger
func New(cfg model.Config, ledger repository.BidLedger) (*Engine, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	if ledger == nil {
		ledger = repository.NewMemoryLedger()
	}
	return &Engine{
		cfg:        cfg,
		ledger:     ledger,
		phase:      model.PhaseIdle,
		roundIndex: 1,
		won:        make(map[string]int),
	}, nil
}

func validateConfig(cfg model.Config) error {
	if cfg.TotalGifts < 0 || cfg.PerRound < 0 || cfg.RoundDurationSec < 0 {
		return fmt.Errorf("engine: %w - values must be non-negative: %+v", auctionerrors.ErrInvalidConfig, cfg)
	}
	return nil
}

// Configure replaces the configuration. Only allowed before any gift has
// been won and while no round is running.
func (e *Engine) Configure(cfg model.Config) error {
	if err := validateConfig(cfg); err != nil {
		return err
	}
	if e.phase != model.PhaseIdle || e.assigned > 0 {
		return fmt.Errorf("engine: %w - configure in phase %s after %d gifts won", auctionerrors.ErrActionUnavailable, e.phase, e.assigned)
	}
	e.cfg = cfg
	return nil
}

// Config returns the current configuration
func (e *Engine) Config() model.Config {
	return e.cfg
}

// StartRound opens a round. It reports false and changes nothing when a
// round is already running, the auction has ended, or no gifts are left.
func (e *Engine) StartRound(now time.Time) bool {
	if e.phase != model.PhaseIdle || e.giftsLeft() <= 0 {
		return false
	}
	e.phase = model.PhaseRunning
	e.endAt = now.Add(e.cfg.RoundDuration())
	return true
}

// EndRound settles the running round. Calling it in any other phase is a
// no-op and returns a result with Settled == false.
func (e *Engine) EndRound(now time.Time) model.RoundResult {
	if e.phase != model.PhaseRunning {
		return model.RoundResult{Round: e.roundIndex, Phase: e.phase}
	}
	return e.settle()
}

// settle closes the running round
func (e *Engine) settle() model.RoundResult {
	round := e.roundIndex
	capacity := e.capacity()

	if capacity <= 0 {
		e.phase = model.PhaseEnded
		e.endAt = time.Time{}
		return model.RoundResult{Round: round, Phase: e.phase, Settled: true}
	}

	ranked := e.ranked()
	if len(ranked) > capacity {
		ranked = ranked[:capacity]
	}

	roundWinners := make([]model.Winner, 0, len(ranked))
	userIDs := make([]string, 0, len(ranked))
	for i, b := range ranked {
		w := model.Winner{
			Round:      round,
			UserID:     b.UserID,
			Amount:     b.Amount,
			GiftNumber: e.assigned + i + 1,
		}
		e.won[b.UserID] = len(e.winners) + i
		roundWinners = append(roundWinners, w)
		userIDs = append(userIDs, b.UserID)
	}

	e.ledger.Remove(userIDs...)
	e.winners = append(e.winners, roundWinners...)
	e.assigned += len(roundWinners)

	e.endAt = time.Time{}
	if e.assigned >= e.cfg.TotalGifts {
		e.phase = model.PhaseEnded
	} else {
		e.phase = model.PhaseIdle
		e.roundIndex++
	}

	return model.RoundResult{
		Round:   round,
		Winners: roundWinners,
		Phase:   e.phase,
		Settled: true,
	}
}

// PlaceOrIncrease records a first bid or raises the user's current one.
// Rejections are reported through the outcome; only malformed input is an error.
func (e *Engine) PlaceOrIncrease(userID string, amount int64, now time.Time) (model.BidOutcome, error) {
	if userID == "" {
		return model.BidOutcome{}, fmt.Errorf("engine: %w - missing userID", auctionerrors.ErrInvalidBid)
	}
	if amount <= 0 {
		return model.BidOutcome{}, fmt.Errorf("engine: %w - non-positive bid amount %d", auctionerrors.ErrInvalidBid, amount)
	}

	if e.phase == model.PhaseEnded {
		return e.rejected(userID, model.RejectAuctionEnded), nil
	}
	if _, ok := e.won[userID]; ok {
		return model.BidOutcome{Reason: model.RejectAlreadyWon}, nil
	}

	bid, ok := e.ledger.PlaceOrIncrease(userID, amount, now)
	if !ok {
		return model.BidOutcome{Amount: bid.Amount, Reason: model.RejectNotHigher}, nil
	}
	return model.BidOutcome{Accepted: true, Amount: bid.Amount}, nil
}

func (e *Engine) rejected(userID string, reason model.RejectReason) model.BidOutcome {
	current, _ := e.ledger.Get(userID)
	return model.BidOutcome{Amount: current.Amount, Reason: reason}
}

// Bid returns a user's active bid
func (e *Engine) Bid(userID string) (model.Bid, bool) {
	return e.ledger.Get(userID)
}

// Win returns the gift a user won, if any
func (e *Engine) Win(userID string) (model.Winner, bool) {
	i, ok := e.won[userID]
	if !ok {
		return model.Winner{}, false
	}
	return e.winners[i], true
}

// Refund is the amount returned to a user who never won. It is only
// defined once the auction has ended.
func (e *Engine) Refund(userID string) int64 {
	if e.phase != model.PhaseEnded {
		return 0
	}
	bid, _ := e.ledger.Get(userID)
	return bid.Amount
}

// TimeLeft returns the time until the running round's deadline
func (e *Engine) TimeLeft(now time.Time) time.Duration {
	if e.phase != model.PhaseRunning {
		return 0
	}
	if left := e.endAt.Sub(now); left > 0 {
		return left
	}
	return 0
}

// ExtendRound moves the running round's deadline to until. The deadline
// never moves earlier.
func (e *Engine) ExtendRound(until time.Time) bool {
	if e.phase != model.PhaseRunning || !until.After(e.endAt) {
		return false
	}
	e.endAt = until
	return true
}

// Winners returns all winners in settlement order
func (e *Engine) Winners() []model.Winner {
	return append([]model.Winner(nil), e.winners...)
}

// Phase returns the current phase
func (e *Engine) Phase() model.Phase {
	return e.phase
}

// Status returns a snapshot of the engine state
func (e *Engine) Status() model.Status {
	st := model.Status{
		Phase:         e.phase,
		RoundIndex:    e.roundIndex,
		GiftsAssigned: e.assigned,
		GiftsLeft:     e.giftsLeft(),
		TotalGifts:    e.cfg.TotalGifts,
		PerRound:      e.cfg.PerRound,
	}
	if e.phase == model.PhaseRunning {
		endAt := e.endAt
		st.EndAt = &endAt
	}
	return st
}

func (e *Engine) giftsLeft() int {
	return max(0, e.cfg.TotalGifts-e.assigned)
}

// capacity is the number of gifts the current round can hand out
func (e *Engine) capacity() int {
	return min(e.cfg.PerRound, e.giftsLeft())
}
