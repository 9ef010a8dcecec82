package server

import (
	handler "gift-auction/services/auction/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(auctionService handler.AuctionServiceInterface) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	auctionHandler := handler.NewAuctionHandler(auctionService)

	auction := router.Group("/auction")
	{
		auction.PUT("/config", auctionHandler.ConfigureHandler)
		auction.GET("/status", auctionHandler.GetStatusHandler)
		auction.GET("/winners", auctionHandler.GetWinnersHandler)
		auction.GET("/leaderboard", auctionHandler.GetLeaderboardHandler)
		auction.POST("/rounds/start", auctionHandler.StartRoundHandler)
		auction.POST("/rounds/end", auctionHandler.EndRoundHandler)
	}

	bids := router.Group("/bids")
	{
		bids.POST("", auctionHandler.RecordBidHandler)
	}

	users := router.Group("/users")
	{
		users.GET("/:user_id/bid", auctionHandler.GetUserBidHandler)
		users.GET("/:user_id/refund", auctionHandler.GetRefundHandler)
	}

	return router
}
