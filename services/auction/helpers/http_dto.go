package helpers

import (
	"time"

	model "gift-auction/internal/models"
)

// Request/Response DTOs
type PlaceBidRequest struct {
	UserID string `json:"user_id" binding:"required"`
	Amount int64  `json:"amount" binding:"required,gt=0"`
}

type ConfigureRequest struct {
	TotalGifts       *int `json:"total_gifts" binding:"required,gte=0"`
	PerRound         *int `json:"per_round" binding:"required,gte=0"`
	RoundDurationSec *int `json:"round_duration_sec" binding:"required,gte=0"`
}

// Config converts the request into the engine configuration
func (r ConfigureRequest) Config() model.Config {
	return model.Config{
		TotalGifts:       *r.TotalGifts,
		PerRound:         *r.PerRound,
		RoundDurationSec: *r.RoundDurationSec,
	}
}

type LeaderboardQuery struct {
	Limit int `form:"limit" binding:"gte=0"`
}

type BidResponse struct {
	BidID     string  `json:"bid_id"`
	UserID    string  `json:"user_id"`
	Amount    int64   `json:"amount"`
	Rank      int     `json:"rank"`
	UpdatedAt string  `json:"updated_at"`
	EndAt     *string `json:"end_at"`
}

type StatusResponse struct {
	Phase         model.Phase `json:"phase"`
	RoundIndex    int         `json:"round_index"`
	EndAt         *string     `json:"end_at"`
	GiftsAssigned int         `json:"gifts_assigned"`
	GiftsLeft     int         `json:"gifts_left"`
	TotalGifts    int         `json:"total_gifts"`
	PerRound      int         `json:"per_round"`
}

type RefundResponse struct {
	UserID string `json:"user_id"`
	Refund int64  `json:"refund"`
}

// NewBidResponse formats a receipt with RFC3339 timestamps
func NewBidResponse(r model.BidReceipt) BidResponse {
	return BidResponse{
		BidID:     r.BidID,
		UserID:    r.UserID,
		Amount:    r.Amount,
		Rank:      r.Rank,
		UpdatedAt: FormatTime(r.UpdatedAt),
		EndAt:     formatOptionalTime(r.EndAt),
	}
}

// NewStatusResponse formats a status snapshot
func NewStatusResponse(st model.Status) StatusResponse {
	return StatusResponse{
		Phase:         st.Phase,
		RoundIndex:    st.RoundIndex,
		EndAt:         formatOptionalTime(st.EndAt),
		GiftsAssigned: st.GiftsAssigned,
		GiftsLeft:     st.GiftsLeft,
		TotalGifts:    st.TotalGifts,
		PerRound:      st.PerRound,
	}
}

// FormatTime renders t as RFC3339 with sub-second precision in UTC
func FormatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func formatOptionalTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := FormatTime(*t)
	return &s
}
