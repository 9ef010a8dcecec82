package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	auction "gift-auction/internal/auctionService"
	"gift-auction/internal/config"
	"gift-auction/internal/repository"
	"gift-auction/internal/roundtimer"
	"gift-auction/internal/server"
	"gift-auction/utils"

	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := config.LoadDotEnv(); err != nil {
		utils.Fatal("failed to load .env", map[string]any{"error": err.Error()})
	}

	cfg, err := config.Load("")
	if err != nil {
		utils.Fatal("failed to load config", map[string]any{"error": err.Error()})
	}
	utils.SetLevel(cfg.LogLevel)

	ledger := repository.NewMemoryLedger()

	auctionSvc, err := auction.NewAuctionService(cfg.Auction, ledger, auction.WithSettings(cfg.Settings))
	if err != nil {
		utils.Fatal("failed to create auction service", map[string]any{"error": err.Error()})
	}

	router := server.SetupRouter(auctionSvc)
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	driver := roundtimer.NewDriver(auctionSvc, cfg.TimerInterval)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		utils.Info("starting auction server", map[string]any{
			"addr":       srv.Addr,
			"auction_id": auctionSvc.AuctionID(),
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		return driver.Run(gctx)
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		utils.Info("shutting down auction server", nil)
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		utils.Fatal("auction server stopped with error", map[string]any{"error": err.Error()})
	}
	utils.Info("auction server stopped", nil)
}
