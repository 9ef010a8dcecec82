package auction

import (
	"fmt"
	"sync"
	"time"

	"gift-auction/internal/auctionerrors"
	"gift-auction/internal/engine"
	"gift-auction/internal/models"
	"gift-auction/internal/repository"
	"gift-auction/utils"
)

// AuctionService is the single owner of one auction run. It serializes all
// access to the engine and applies the auction settings.
type AuctionService struct {
	mu        sync.Mutex
	engine    *engine.Engine
	settings  Settings
	now       func() time.Time
	auctionID string
}

// Option customizes an AuctionService
type Option func(*AuctionService)

// WithClock replaces the wall clock, mainly for tests
func WithClock(now func() time.Time) Option {
	return func(s *AuctionService) {
		s.now = now
	}
}

// WithSettings sets the bidding rules
func WithSettings(settings Settings) Option {
	return func(s *AuctionService) {
		s.settings = settings
	}
}

// NewAuctionService creates a new AuctionService for one auction run
func NewAuctionService(cfg models.Config, ledger repository.BidLedger, opts ...Option) (*AuctionService, error) {
	eng, err := engine.New(cfg, ledger)
	if err != nil {
		return nil, fmt.Errorf("service: failed to create engine: %w", err)
	}

	s := &AuctionService{
		engine:    eng,
		now:       func() time.Time { return time.Now().UTC() },
		auctionID: utils.NewAuctionID(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if err := s.settings.Validate(); err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}
	return s, nil
}

// AuctionID identifies this run in logs
func (s *AuctionService) AuctionID() string {
	return s.auctionID
}

// Configure replaces the auction configuration before the first settlement
func (s *AuctionService) Configure(cfg models.Config) (models.Status, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.engine.Configure(cfg); err != nil {
		return models.Status{}, fmt.Errorf("service: failed to configure auction %s: %w", s.auctionID, err)
	}

	utils.Info("auction configured", map[string]any{
		"auction_id":         s.auctionID,
		"total_gifts":        cfg.TotalGifts,
		"per_round":          cfg.PerRound,
		"round_duration_sec": cfg.RoundDurationSec,
	})
	return s.engine.Status(), nil
}

// StartRound opens the next round
func (s *AuctionService) StartRound() (models.Status, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.engine.StartRound(s.now()) {
		st := s.engine.Status()
		return st, fmt.Errorf("service: %w - cannot start round in phase %s with %d gifts left", auctionerrors.ErrActionUnavailable, st.Phase, st.GiftsLeft)
	}

	st := s.engine.Status()
	utils.Info("round started", map[string]any{
		"auction_id": s.auctionID,
		"round":      st.RoundIndex,
		"end_at":     st.EndAt,
		"gifts_left": st.GiftsLeft,
	})
	return st, nil
}

// EndRound settles the running round
func (s *AuctionService) EndRound() (models.RoundResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res := s.engine.EndRound(s.now())
	if !res.Settled {
		return res, fmt.Errorf("service: %w - no running round to end (phase %s)", auctionerrors.ErrActionUnavailable, res.Phase)
	}
	s.logSettlement(res)
	return res, nil
}

// CloseExpiredRound settles the running round once its deadline has passed.
// It reports false when there was nothing to close.
func (s *AuctionService) CloseExpiredRound() (models.RoundResult, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if s.engine.Phase() != models.PhaseRunning || s.engine.TimeLeft(now) > 0 {
		return models.RoundResult{}, false
	}

	res := s.engine.EndRound(now)
	s.logSettlement(res)
	return res, true
}

func (s *AuctionService) logSettlement(res models.RoundResult) {
	utils.Info("round settled", map[string]any{
		"auction_id": s.auctionID,
		"round":      res.Round,
		"winners":    len(res.Winners),
		"phase":      res.Phase,
	})
	if res.Phase == models.PhaseEnded {
		utils.Info("auction ended", map[string]any{
			"auction_id":    s.auctionID,
			"total_winners": len(s.engine.Winners()),
		})
	}
}

// PlaceBid validates and records a user's first bid or raise
func (s *AuctionService) PlaceBid(userID string, amount int64) (models.BidReceipt, error) {
	if userID == "" {
		return models.BidReceipt{}, fmt.Errorf("service: %w - missing userID", auctionerrors.ErrInvalidBid)
	}
	if amount <= 0 {
		return models.BidReceipt{}, fmt.Errorf("service: %w - non-positive bid amount", auctionerrors.ErrInvalidBid)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkBid(userID, amount); err != nil {
		return models.BidReceipt{}, err
	}

	now := s.now()
	out, err := s.engine.PlaceOrIncrease(userID, amount, now)
	if err != nil {
		return models.BidReceipt{}, fmt.Errorf("service: failed to place bid for user %s: %w", userID, err)
	}
	if !out.Accepted {
		return models.BidReceipt{}, rejection(out)
	}

	s.applyAntiSniping(now)

	bid, _ := s.engine.Bid(userID)
	return models.BidReceipt{
		BidID:     utils.NewBidID(),
		UserID:    userID,
		Amount:    bid.Amount,
		Rank:      s.engine.RankOf(userID),
		UpdatedAt: bid.UpdatedAt,
		EndAt:     s.engine.Status().EndAt,
	}, nil
}

// checkBid runs the settings rules once the engine would otherwise take the bid
func (s *AuctionService) checkBid(userID string, amount int64) error {
	if s.engine.Phase() == models.PhaseEnded {
		return nil
	}
	if _, won := s.engine.Win(userID); won {
		return nil
	}

	var current int64
	if bid, ok := s.engine.Bid(userID); ok {
		if amount <= bid.Amount {
			return nil
		}
		current = bid.Amount
	}
	if err := s.settings.Check(current, amount); err != nil {
		return fmt.Errorf("service: bid by user %s rejected: %w", userID, err)
	}
	return nil
}

func rejection(out models.BidOutcome) error {
	switch out.Reason {
	case models.RejectAuctionEnded:
		return fmt.Errorf("service: %w", auctionerrors.ErrAuctionEnded)
	case models.RejectAlreadyWon:
		return fmt.Errorf("service: %w", auctionerrors.ErrAlreadyWon)
	default:
		return fmt.Errorf("service: %w - current bid is %d", auctionerrors.ErrBidTooLow, out.Amount)
	}
}

// applyAntiSniping pushes the deadline out when a bid lands inside the window
func (s *AuctionService) applyAntiSniping(now time.Time) {
	window := s.settings.AntiSnipingWindow()
	if window <= 0 || s.engine.Phase() != models.PhaseRunning {
		return
	}
	if s.engine.TimeLeft(now) >= window {
		return
	}
	if s.engine.ExtendRound(now.Add(window)) {
		utils.Info("round extended", map[string]any{
			"auction_id": s.auctionID,
			"round":      s.engine.Status().RoundIndex,
			"end_at":     now.Add(window),
		})
	}
}

// Leaderboard returns the top limit bids, or all of them when limit <= 0
func (s *AuctionService) Leaderboard(limit int) (models.Leaderboard, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	board := models.Leaderboard{Entries: []models.RankedBid{}}
	for b := range s.engine.Leaderboard() {
		if limit > 0 && len(board.Entries) == limit {
			break
		}
		board.Entries = append(board.Entries, models.RankedBid{Rank: len(board.Entries) + 1, Bid: b})
	}
	if amount, ok := s.engine.MinToWin(); ok {
		board.MinToWin = amount
	}
	return board, nil
}

// Status returns the current engine state
func (s *AuctionService) Status() (models.Status, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.Status(), nil
}

// Winners returns every winner so far, in settlement order
func (s *AuctionService) Winners() ([]models.Winner, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.Winners(), nil
}

// Refund returns what a non-winner gets back after the auction ended
func (s *AuctionService) Refund(userID string) (int64, error) {
	if userID == "" {
		return 0, fmt.Errorf("service: %w - empty user ID", auctionerrors.ErrInvalidBid)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.Refund(userID), nil
}

// UserBid returns a user's bid, rank and outcome
func (s *AuctionService) UserBid(userID string) (models.UserBid, error) {
	if userID == "" {
		return models.UserBid{}, fmt.Errorf("service: %w - empty user ID", auctionerrors.ErrInvalidBid)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ub := models.UserBid{UserID: userID, Status: models.UserBidNone}
	if w, ok := s.engine.Win(userID); ok {
		ub.Amount = w.Amount
		ub.Status = models.UserBidWon
		ub.GiftNumber = w.GiftNumber
		return ub, nil
	}

	bid, ok := s.engine.Bid(userID)
	if !ok {
		return ub, nil
	}
	ub.Amount = bid.Amount
	ub.Rank = s.engine.RankOf(userID)
	ub.Status = models.UserBidActive
	if s.engine.Phase() == models.PhaseEnded {
		ub.Status = models.UserBidLost
		ub.Refund = s.engine.Refund(userID)
	}
	return ub, nil
}
