package server

import (
	"github.com/gin-gonic/gin"

	bidding "github.com/rish1507/RangiLalls-backend/internal/biddingService"
	"github.com/rish1507/RangiLalls-backend/internal/gateway"
	"github.com/rish1507/RangiLalls-backend/internal/identity"
	handler "github.com/rish1507/RangiLalls-backend/services/bidding/handler"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(biddingService *bidding.BiddingService, gw *gateway.Gateway, resolver identity.Resolver) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	router.GET("/healthz", handler.HealthHandler)
	router.GET("/ws", gw.HandleWS)

	biddingHandler := handler.NewBiddingHandler(biddingService)
	authed := router.Group("/", AuthMiddleware(resolver))

	auctions := authed.Group("/auctions")
	{
		auctions.GET("/:auction_id/bids", biddingHandler.GetBidHistoryHandler)
		auctions.GET("/:auction_id/min-bid", biddingHandler.GetMinBidHandler)
		auctions.GET("/:auction_id/auto-bid", biddingHandler.GetAutoBidHandler)
		auctions.PUT("/:auction_id/auto-bid", biddingHandler.SaveAutoBidHandler)
	}

	users := authed.Group("/users")
	{
		users.GET("/me/bids", biddingHandler.GetUserBidsHandler)
	}

	return router
}
