package auctionerrors

import "errors"

// Input errors
var (
	ErrInvalidBid    = errors.New("invalid bid")
	ErrInvalidConfig = errors.New("invalid auction configuration")
	ErrInvalidQuery  = errors.New("invalid query parameters")
)

// Bid rejections
var (
	ErrBidTooLow         = errors.New("bid amount too low")
	ErrBelowMinBid       = errors.New("bid below auction minimum")
	ErrBelowMinIncrement = errors.New("bid increase below minimum difference")
	ErrAlreadyWon        = errors.New("user already won in this auction")
	ErrAuctionEnded      = errors.New("auction has ended")
)

// Phase errors
var (
	ErrActionUnavailable = errors.New("action not available in current phase")
)

// Stable machine-readable codes, shared by the HTTP binding and its client.
const (
	CodeInvalidBid        = "invalid_bid"
	CodeInvalidConfig     = "invalid_config"
	CodeInvalidQuery      = "invalid_query"
	CodeBidTooLow         = "bid_too_low"
	CodeBelowMinBid       = "below_min_bid"
	CodeBelowMinIncrement = "below_min_increment"
	CodeAlreadyWon        = "already_won"
	CodeAuctionEnded      = "auction_ended"
	CodeActionUnavailable = "action_unavailable"
	CodeInternal          = "internal"
)

var codes = []struct {
	code string
	err  error
}{
	{CodeInvalidBid, ErrInvalidBid},
	{CodeInvalidConfig, ErrInvalidConfig},
	{CodeInvalidQuery, ErrInvalidQuery},
	{CodeBidTooLow, ErrBidTooLow},
	{CodeBelowMinBid, ErrBelowMinBid},
	{CodeBelowMinIncrement, ErrBelowMinIncrement},
	{CodeAlreadyWon, ErrAlreadyWon},
	{CodeAuctionEnded, ErrAuctionEnded},
	{CodeActionUnavailable, ErrActionUnavailable},
}

// Code returns the stable code for err, or CodeInternal
func Code(err error) string {
	for _, c := range codes {
		if errors.Is(err, c.err) {
			return c.code
		}
	}
	return CodeInternal
}

// FromCode returns the sentinel error for code, or nil if unknown
func FromCode(code string) error {
	for _, c := range codes {
		if c.code == code {
			return c.err
		}
	}
	return nil
}
