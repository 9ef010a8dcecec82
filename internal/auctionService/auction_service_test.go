package auction

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"gift-auction/internal/auctionerrors"
	model "gift-auction/internal/models"
	"gift-auction/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// fakeClock is a manually advanced clock
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newService(t *testing.T, cfg model.Config, settings Settings) (*AuctionService, *fakeClock) {
	t.Helper()
	clock := newFakeClock()
	svc, err := NewAuctionService(cfg, repository.NewMemoryLedger(), WithClock(clock.Now), WithSettings(settings))
	require.NoError(t, err)
	return svc, clock
}

func TestNewAuctionService_InvalidInput(t *testing.T) {
	t.Parallel()

	_, err := NewAuctionService(model.Config{TotalGifts: -1}, nil)
	require.True(t, errors.Is(err, auctionerrors.ErrInvalidConfig), "got: %v", err)

	_, err = NewAuctionService(model.Config{TotalGifts: 1}, nil, WithSettings(Settings{MinBid: -5}))
	require.True(t, errors.Is(err, auctionerrors.ErrInvalidConfig), "got: %v", err)

	svc, err := NewAuctionService(model.Config{TotalGifts: 1}, nil)
	require.NoError(t, err)
	_, parseErr := uuid.Parse(svc.AuctionID())
	require.NoError(t, parseErr, "AuctionID should be a valid UUID")
}

// Tests PlaceBid
func TestAuctionService_PlaceBid(t *testing.T) {
	settings := Settings{MinBid: 50, MinBidDifference: 10}

	tests := []struct {
		name          string
		seed          map[string]int64
		userID        string
		amount        int64
		expectError   bool
		expectedError error
		expectedRank  int
	}{
		{name: "valid_first_bid", userID: "user1", amount: 100, expectedRank: 1},
		{name: "empty_userID", userID: "", amount: 100, expectError: true, expectedError: auctionerrors.ErrInvalidBid},
		{name: "zero_amount", userID: "user1", amount: 0, expectError: true, expectedError: auctionerrors.ErrInvalidBid},
		{name: "negative_amount", userID: "user1", amount: -10, expectError: true, expectedError: auctionerrors.ErrInvalidBid},
		{name: "below_min_bid", userID: "user1", amount: 49, expectError: true, expectedError: auctionerrors.ErrBelowMinBid},
		{name: "equal_to_current", seed: map[string]int64{"user1": 100}, userID: "user1", amount: 100, expectError: true, expectedError: auctionerrors.ErrBidTooLow},
		{name: "lower_than_current", seed: map[string]int64{"user1": 100}, userID: "user1", amount: 60, expectError: true, expectedError: auctionerrors.ErrBidTooLow},
		{name: "raise_below_increment", seed: map[string]int64{"user1": 100}, userID: "user1", amount: 105, expectError: true, expectedError: auctionerrors.ErrBelowMinIncrement},
		{name: "raise_at_increment", seed: map[string]int64{"user1": 100}, userID: "user1", amount: 110, expectedRank: 1},
		{name: "ranked_behind_higher", seed: map[string]int64{"user2": 500}, userID: "user1", amount: 100, expectedRank: 2},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			svc, clock := newService(t, model.Config{TotalGifts: 5, PerRound: 2, RoundDurationSec: 60}, settings)
			for user, amount := range tc.seed {
				_, err := svc.PlaceBid(user, amount)
				require.NoError(t, err)
			}
			clock.Advance(time.Second)

			receipt, err := svc.PlaceBid(tc.userID, tc.amount)
			if tc.expectError {
				require.Error(t, err)
				require.True(t, errors.Is(err, tc.expectedError), "expected error: %v, got: %v", tc.expectedError, err)
				return
			}

			require.NoError(t, err)
			_, parseErr := uuid.Parse(receipt.BidID)
			require.NoError(t, parseErr, "BidID should be a valid UUID")
			require.Equal(t, tc.userID, receipt.UserID)
			require.Equal(t, tc.amount, receipt.Amount)
			require.Equal(t, tc.expectedRank, receipt.Rank)
			require.Equal(t, clock.Now(), receipt.UpdatedAt)
			require.Nil(t, receipt.EndAt)
		})
	}
}

func TestAuctionService_RoundLifecycle(t *testing.T) {
	t.Parallel()

	svc, clock := newService(t, model.Config{TotalGifts: 4, PerRound: 3, RoundDurationSec: 60}, Settings{})

	_, err := svc.EndRound()
	require.True(t, errors.Is(err, auctionerrors.ErrActionUnavailable), "got: %v", err)

	st, err := svc.StartRound()
	require.NoError(t, err)
	require.Equal(t, model.PhaseRunning, st.Phase)
	require.Equal(t, clock.Now().Add(time.Minute), *st.EndAt)

	_, err = svc.StartRound()
	require.True(t, errors.Is(err, auctionerrors.ErrActionUnavailable), "got: %v", err)

	for _, b := range []struct {
		user   string
		amount int64
	}{{"alice", 100}, {"bob", 150}, {"carol", 80}, {"dave", 90}} {
		clock.Advance(time.Second)
		_, err := svc.PlaceBid(b.user, b.amount)
		require.NoError(t, err)
	}

	res, err := svc.EndRound()
	require.NoError(t, err)
	require.Equal(t, model.PhaseIdle, res.Phase)
	require.Equal(t, []string{"bob", "alice", "dave"}, winnerIDs(res.Winners))

	_, err = svc.PlaceBid("bob", 1000)
	require.True(t, errors.Is(err, auctionerrors.ErrAlreadyWon), "got: %v", err)

	ub, err := svc.UserBid("bob")
	require.NoError(t, err)
	require.Equal(t, model.UserBidWon, ub.Status)
	require.Equal(t, 1, ub.GiftNumber)

	ub, err = svc.UserBid("carol")
	require.NoError(t, err)
	require.Equal(t, model.UserBidActive, ub.Status)
	require.Equal(t, 1, ub.Rank)

	_, err = svc.StartRound()
	require.NoError(t, err)
	clock.Advance(time.Second)
	_, err = svc.PlaceBid("erin", 85)
	require.NoError(t, err)

	res, err = svc.EndRound()
	require.NoError(t, err)
	require.Equal(t, model.PhaseEnded, res.Phase)
	require.Equal(t, []model.Winner{{Round: 2, UserID: "erin", Amount: 85, GiftNumber: 4}}, res.Winners)

	refund, err := svc.Refund("carol")
	require.NoError(t, err)
	require.Equal(t, int64(80), refund)

	ub, err = svc.UserBid("carol")
	require.NoError(t, err)
	require.Equal(t, model.UserBidLost, ub.Status)
	require.Equal(t, int64(80), ub.Refund)

	_, err = svc.PlaceBid("carol", 500)
	require.True(t, errors.Is(err, auctionerrors.ErrAuctionEnded), "got: %v", err)

	winners, err := svc.Winners()
	require.NoError(t, err)
	require.Len(t, winners, 4)

	_, err = svc.StartRound()
	require.True(t, errors.Is(err, auctionerrors.ErrActionUnavailable))
}

func TestAuctionService_CloseExpiredRound(t *testing.T) {
	t.Parallel()

	svc, clock := newService(t, model.Config{TotalGifts: 2, PerRound: 1, RoundDurationSec: 30}, Settings{})

	_, closed := svc.CloseExpiredRound()
	require.False(t, closed)

	_, err := svc.StartRound()
	require.NoError(t, err)
	_, err = svc.PlaceBid("alice", 10)
	require.NoError(t, err)

	clock.Advance(29 * time.Second)
	_, closed = svc.CloseExpiredRound()
	require.False(t, closed)

	clock.Advance(time.Second)
	res, closed := svc.CloseExpiredRound()
	require.True(t, closed)
	require.Equal(t, []string{"alice"}, winnerIDs(res.Winners))
	require.Equal(t, model.PhaseIdle, res.Phase)
}

func TestAuctionService_AntiSniping(t *testing.T) {
	t.Parallel()

	svc, clock := newService(t, model.Config{TotalGifts: 2, PerRound: 1, RoundDurationSec: 60}, Settings{AntiSnipingSec: 30})
	st, err := svc.StartRound()
	require.NoError(t, err)
	deadline := *st.EndAt

	// outside the window: deadline unchanged
	clock.Advance(10 * time.Second)
	receipt, err := svc.PlaceBid("alice", 10)
	require.NoError(t, err)
	require.Equal(t, deadline, *receipt.EndAt)

	// inside the window: deadline moves to now + window
	clock.Advance(40 * time.Second)
	receipt, err = svc.PlaceBid("bob", 20)
	require.NoError(t, err)
	require.Equal(t, clock.Now().Add(30*time.Second), *receipt.EndAt)

	// rejected bids never extend
	clock.Advance(25 * time.Second)
	before, _ := svc.Status()
	_, err = svc.PlaceBid("bob", 5)
	require.Error(t, err)
	after, _ := svc.Status()
	require.Equal(t, *before.EndAt, *after.EndAt)
}

func TestAuctionService_Leaderboard(t *testing.T) {
	t.Parallel()

	svc, clock := newService(t, model.Config{TotalGifts: 10, PerRound: 2, RoundDurationSec: 60}, Settings{})
	for i := 0; i < 5; i++ {
		clock.Advance(time.Second)
		_, err := svc.PlaceBid(fmt.Sprintf("user-%d", i), int64(100+10*i))
		require.NoError(t, err)
	}

	board, err := svc.Leaderboard(3)
	require.NoError(t, err)
	require.Len(t, board.Entries, 3)
	require.Equal(t, "user-4", board.Entries[0].UserID)
	require.Equal(t, 1, board.Entries[0].Rank)
	require.Equal(t, 3, board.Entries[2].Rank)
	require.Equal(t, int64(130), board.MinToWin)

	all, err := svc.Leaderboard(0)
	require.NoError(t, err)
	require.Len(t, all.Entries, 5)
}

func TestAuctionService_Configure(t *testing.T) {
	t.Parallel()

	svc, _ := newService(t, model.Config{TotalGifts: 0, PerRound: 1, RoundDurationSec: 10}, Settings{})

	_, err := svc.StartRound()
	require.True(t, errors.Is(err, auctionerrors.ErrActionUnavailable))

	st, err := svc.Configure(model.Config{TotalGifts: 3, PerRound: 1, RoundDurationSec: 10})
	require.NoError(t, err)
	require.Equal(t, 3, st.GiftsLeft)

	_, err = svc.StartRound()
	require.NoError(t, err)
	_, err = svc.Configure(model.Config{TotalGifts: 1})
	require.True(t, errors.Is(err, auctionerrors.ErrActionUnavailable))
}

func TestAuctionService_RefundAndUserBidValidation(t *testing.T) {
	t.Parallel()

	svc, _ := newService(t, model.Config{TotalGifts: 1, PerRound: 1}, Settings{})

	_, err := svc.Refund("")
	require.True(t, errors.Is(err, auctionerrors.ErrInvalidBid))
	_, err = svc.UserBid("")
	require.True(t, errors.Is(err, auctionerrors.ErrInvalidBid))

	ub, err := svc.UserBid("ghost")
	require.NoError(t, err)
	require.Equal(t, model.UserBidNone, ub.Status)
}

// concurrency test
func TestAuctionService_ConcurrentBids(t *testing.T) {
	t.Parallel()

	svc, _ := newService(t, model.Config{TotalGifts: 10, PerRound: 10, RoundDurationSec: 60}, Settings{})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		i := i
		go func() {
			defer wg.Done()
			_, _ = svc.PlaceBid(fmt.Sprintf("user-%d", i%10), int64(100+i))
		}()
	}
	wg.Wait()

	board, err := svc.Leaderboard(0)
	require.NoError(t, err)
	require.Len(t, board.Entries, 10)
	for _, e := range board.Entries {
		var idx int
		_, err := fmt.Sscanf(e.UserID, "user-%d", &idx)
		require.NoError(t, err)
		require.Equal(t, int64(100+40+idx), e.Amount)
	}
}

func winnerIDs(ws []model.Winner) []string {
	ids := make([]string, 0, len(ws))
	for _, w := range ws {
		ids = append(ids, w.UserID)
	}
	return ids
}
