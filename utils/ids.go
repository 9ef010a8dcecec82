package utils

import (
	"github.com/google/uuid"
)

// NewAuctionID returns an identifier for one auction run
func NewAuctionID() string {
	return uuid.NewString()
}

// NewBidID returns an identifier for an accepted bid
func NewBidID() string {
	return uuid.NewString()
}
