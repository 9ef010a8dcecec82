package handler

import (
	"net/http"

	"gift-auction/internal/auctionerrors"
	model "gift-auction/internal/models"
	"gift-auction/services/auction/helpers"
	"gift-auction/utils"

	"github.com/gin-gonic/gin"
)

//go:generate mockgen -source=auction_handler.go -destination=mock_auction_handler.go -package=handler

// AuctionServiceInterface is the auction contract served over HTTP
type AuctionServiceInterface interface {
	Configure(cfg model.Config) (model.Status, error)
	StartRound() (model.Status, error)
	EndRound() (model.RoundResult, error)
	PlaceBid(userID string, amount int64) (model.BidReceipt, error)
	Leaderboard(limit int) (model.Leaderboard, error)
	Status() (model.Status, error)
	Winners() ([]model.Winner, error)
	Refund(userID string) (int64, error)
	UserBid(userID string) (model.UserBid, error)
}

// AuctionHandler serves the auction HTTP endpoints
type AuctionHandler struct {
	service AuctionServiceInterface
}

// NewAuctionHandler creates a new AuctionHandler instance
func NewAuctionHandler(service AuctionServiceInterface) *AuctionHandler {
	return &AuctionHandler{service: service}
}

// ConfigureHandler handles PUT /auction/config
func (h *AuctionHandler) ConfigureHandler(c *gin.Context) {
	var req helpers.ConfigureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "ConfigureHandler", err, auctionerrors.CodeInvalidConfig)
		return
	}

	st, err := h.service.Configure(req.Config())
	if err != nil {
		helpers.HandleServiceError(c, "ConfigureHandler", err, nil)
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewStatusResponse(st), "auction configured")
	helpers.LogSuccess("ConfigureHandler", "auction configured", map[string]any{
		"total_gifts": st.TotalGifts,
		"per_round":   st.PerRound,
	})
}

// StartRoundHandler handles POST /auction/rounds/start
func (h *AuctionHandler) StartRoundHandler(c *gin.Context) {
	st, err := h.service.StartRound()
	if err != nil {
		helpers.HandleServiceError(c, "StartRoundHandler", err, nil)
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewStatusResponse(st), "round started")
	helpers.LogSuccess("StartRoundHandler", "round started", map[string]any{"round": st.RoundIndex})
}

// EndRoundHandler handles POST /auction/rounds/end
func (h *AuctionHandler) EndRoundHandler(c *gin.Context) {
	res, err := h.service.EndRound()
	if err != nil {
		helpers.HandleServiceError(c, "EndRoundHandler", err, nil)
		return
	}

	if res.Winners == nil {
		res.Winners = []model.Winner{}
	}

	utils.JSONResponse(c, http.StatusOK, res, "round settled")
	helpers.LogSuccess("EndRoundHandler", "round settled", map[string]any{
		"round":   res.Round,
		"winners": len(res.Winners),
		"phase":   res.Phase,
	})
}

// GetStatusHandler handles GET /auction/status
func (h *AuctionHandler) GetStatusHandler(c *gin.Context) {
	st, err := h.service.Status()
	if err != nil {
		helpers.HandleServiceError(c, "GetStatusHandler", err, nil)
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewStatusResponse(st), "status retrieved successfully")
}

// GetWinnersHandler handles GET /auction/winners
func (h *AuctionHandler) GetWinnersHandler(c *gin.Context) {
	winners, err := h.service.Winners()
	if err != nil {
		helpers.HandleServiceError(c, "GetWinnersHandler", err, nil)
		return
	}

	if winners == nil {
		winners = []model.Winner{}
	}

	utils.JSONResponse(c, http.StatusOK, winners, "winners retrieved successfully")
	helpers.LogSuccess("GetWinnersHandler", "winners retrieved successfully", map[string]any{"count": len(winners)})
}

// GetLeaderboardHandler handles GET /auction/leaderboard?limit=N
func (h *AuctionHandler) GetLeaderboardHandler(c *gin.Context) {
	var q helpers.LeaderboardQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		helpers.HandleBindError(c, "GetLeaderboardHandler", err, auctionerrors.CodeInvalidQuery)
		return
	}

	board, err := h.service.Leaderboard(q.Limit)
	if err != nil {
		helpers.HandleServiceError(c, "GetLeaderboardHandler", err, map[string]any{"limit": q.Limit})
		return
	}

	if board.Entries == nil {
		board.Entries = []model.RankedBid{}
	}

	utils.JSONResponse(c, http.StatusOK, board, "leaderboard retrieved successfully")
	helpers.LogSuccess("GetLeaderboardHandler", "leaderboard retrieved successfully", map[string]any{
		"limit": q.Limit,
		"count": len(board.Entries),
	})
}

// RecordBidHandler handles POST /bids
func (h *AuctionHandler) RecordBidHandler(c *gin.Context) {
	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "RecordBidHandler", err, auctionerrors.CodeInvalidBid)
		return
	}

	receipt, err := h.service.PlaceBid(req.UserID, req.Amount)
	if err != nil {
		helpers.HandleServiceError(c, "RecordBidHandler", err, map[string]any{
			"user_id": req.UserID,
			"amount":  req.Amount,
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.NewBidResponse(receipt), "bid recorded successfully")
	helpers.LogSuccess("RecordBidHandler", "bid recorded successfully", map[string]any{
		"bid_id":  receipt.BidID,
		"user_id": receipt.UserID,
		"amount":  receipt.Amount,
		"rank":    receipt.Rank,
	})
}

// GetUserBidHandler handles GET /users/:user_id/bid
func (h *AuctionHandler) GetUserBidHandler(c *gin.Context) {
	userID := c.Param("user_id")
	ub, err := h.service.UserBid(userID)
	if err != nil {
		helpers.HandleServiceError(c, "GetUserBidHandler", err, map[string]any{"user_id": userID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, ub, "user bid retrieved successfully")
}

// GetRefundHandler handles GET /users/:user_id/refund
func (h *AuctionHandler) GetRefundHandler(c *gin.Context) {
	userID := c.Param("user_id")
	refund, err := h.service.Refund(userID)
	if err != nil {
		helpers.HandleServiceError(c, "GetRefundHandler", err, map[string]any{"user_id": userID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.RefundResponse{UserID: userID, Refund: refund}, "refund retrieved successfully")
	helpers.LogSuccess("GetRefundHandler", "refund retrieved successfully", map[string]any{
		"user_id": userID,
		"refund":  refund,
	})
}
