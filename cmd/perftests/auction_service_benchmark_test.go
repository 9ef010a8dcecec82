package perftests

import (
	"fmt"
	"math/rand"
	"sync/atomic"
	"testing"
	"time"

	auction "gift-auction/internal/auctionService"
	"gift-auction/internal/engine"
	model "gift-auction/internal/models"
	"gift-auction/internal/repository"
)

func newBenchService(b *testing.B, cfg model.Config) *auction.AuctionService {
	b.Helper()
	svc, err := auction.NewAuctionService(cfg, repository.NewMemoryLedger())
	if err != nil {
		b.Fatalf("failed to create service: %v", err)
	}
	return svc
}

// Benchmark 1: PlaceBid - distinct users (ledger growth)
func Benchmark_PlaceBid_DistinctUsers(b *testing.B) {
	svc := newBenchService(b, model.Config{TotalGifts: 100, PerRound: 10, RoundDurationSec: 60})

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		userID := fmt.Sprintf("user_%d", i)
		bidAmount := int64(50 + rand.Intn(100))
		if _, err := svc.PlaceBid(userID, bidAmount); err != nil {
			b.Fatalf("failed to place bid: %v", err)
		}
	}
}

// Benchmark 2: PlaceBid - many goroutines raising a small pool of users (high contention)
func Benchmark_PlaceBid_ConcurrentRaises(b *testing.B) {
	svc := newBenchService(b, model.Config{TotalGifts: 100, PerRound: 10, RoundDurationSec: 60})

	b.ReportAllocs()
	b.ResetTimer()

	var lastBid int64 = 50

	b.RunParallel(func(pb *testing.PB) {
		rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
		for pb.Next() {
			userID := fmt.Sprintf("user_parallel_%d", rnd.Intn(1000))
			nextBid := atomic.AddInt64(&lastBid, int64(rnd.Intn(5)+1))
			_, _ = svc.PlaceBid(userID, nextBid)
		}
	})
}

// Benchmark 3: Leaderboard - top 10 out of 10k bids
func Benchmark_Leaderboard_Top10(b *testing.B) {
	svc := newBenchService(b, model.Config{TotalGifts: 100, PerRound: 10, RoundDurationSec: 60})
	for j := 0; j < 10_000; j++ {
		_, _ = svc.PlaceBid(fmt.Sprintf("user_%d", j), int64(50+j%997))
	}

	b.ReportAllocs()
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			if _, err := svc.Leaderboard(10); err != nil {
				b.Fatalf("failed to get leaderboard: %v", err)
			}
		}
	})
}

// Benchmark 4: engine settlement of one round over 1k bids
func Benchmark_Engine_SettleRound(b *testing.B) {
	now := time.Now()

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		eng, err := engine.New(model.Config{TotalGifts: 10, PerRound: 10, RoundDurationSec: 60}, repository.NewMemoryLedger())
		if err != nil {
			b.Fatalf("failed to create engine: %v", err)
		}
		for j := 0; j < 1000; j++ {
			_, _ = eng.PlaceOrIncrease(fmt.Sprintf("user_%d", j), int64(1+j%313), now)
		}
		eng.StartRound(now)
		b.StartTimer()

		if res := eng.EndRound(now); !res.Settled {
			b.Fatalf("round not settled")
		}
	}
}

// Benchmark 5: Mixed workload (readers + writers concurrently)
func Benchmark_MixedWorkload(b *testing.B) {
	svc := newBenchService(b, model.Config{TotalGifts: 100, PerRound: 10, RoundDurationSec: 60})
	for j := 0; j < 50; j++ {
		_, _ = svc.PlaceBid(fmt.Sprintf("user_seed_%d", j), int64(50+j*2))
	}

	b.ReportAllocs()
	b.ResetTimer()

	var lastBid int64 = 150

	// Ratio: 70% readers, 30% writers
	b.RunParallel(func(pb *testing.PB) {
		rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
		for pb.Next() {
			switch op := rnd.Intn(10); {
			case op < 3:
				userID := fmt.Sprintf("user_writer_%d", rnd.Int())
				nextBid := atomic.AddInt64(&lastBid, int64(rnd.Intn(5)+1))
				_, _ = svc.PlaceBid(userID, nextBid)
			case op < 6:
				_, _ = svc.Leaderboard(10)
			default:
				_, _ = svc.UserBid(fmt.Sprintf("user_seed_%d", rnd.Intn(50)))
			}
		}
	})
}
