// Package roundtimer closes auction rounds when their deadline passes.
package roundtimer

import (
	"context"
	"time"

	"gift-auction/internal/models"
	"gift-auction/utils"
)

//go:generate mockgen -source=driver.go -destination=mock_driver.go -package=roundtimer

// RoundCloser settles a round whose deadline has passed
type RoundCloser interface {
	CloseExpiredRound() (models.RoundResult, bool)
}

// Driver polls a RoundCloser on a fixed interval
type Driver struct {
	closer   RoundCloser
	interval time.Duration
}

// NewDriver creates a new Driver instance
func NewDriver(closer RoundCloser, interval time.Duration) *Driver {
	if interval <= 0 {
		interval = 200 * time.Millisecond
	}
	return &Driver{closer: closer, interval: interval}
}

// Run polls until ctx is cancelled
func (d *Driver) Run(ctx context.Context) error {
	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	utils.Info("round timer started", map[string]any{"interval": d.interval.String()})
	for {
		select {
		case <-ctx.Done():
			utils.Info("round timer stopped", nil)
			return nil
		case <-ticker.C:
			d.Tick()
		}
	}
}

// Tick performs a single poll
func (d *Driver) Tick() {
	res, closed := d.closer.CloseExpiredRound()
	if !closed {
		return
	}
	utils.Info("round timer: round closed", map[string]any{
		"round":   res.Round,
		"winners": len(res.Winners),
		"phase":   res.Phase,
	})
}
