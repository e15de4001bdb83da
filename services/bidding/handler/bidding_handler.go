package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	model "github.com/rish1507/RangiLalls-backend/internal/models"
	"github.com/rish1507/RangiLalls-backend/services/bidding/helpers"
	"github.com/rish1507/RangiLalls-backend/utils"
)

type BiddingServiceInterface interface {
	BidHistory(ctx context.Context, auctionID string) ([]model.Bid, error)
	UserBids(ctx context.Context, userID string) ([]model.Bid, error)
	MinManualBid(ctx context.Context, auctionID string) (int64, error)
	AutoBidSettings(ctx context.Context, userID, auctionID string) (model.AutoBidSetting, error)
	SaveAutoBidSettings(ctx context.Context, setting model.AutoBidSetting) (model.AutoBidSetting, int64, error)
}

type BiddingHandler struct {
	service BiddingServiceInterface
}

func NewBiddingHandler(service BiddingServiceInterface) *BiddingHandler {
	return &BiddingHandler{service: service}
}

// HealthHandler handles GET /healthz
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// GetBidHistoryHandler handles GET /auctions/:auction_id/bids
func (h *BiddingHandler) GetBidHistoryHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	bids, err := h.service.BidHistory(c.Request.Context(), auctionID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetBidHistoryHandler: error retrieving bids", map[string]any{"auction_id": auctionID, "error": err.Error()})
		return
	}

	resp := make([]helpers.BidResponse, 0, len(bids))
	for _, bid := range bids {
		resp = append(resp, toBidResponse(bid))
	}

	utils.JSONResponse(c, http.StatusOK, resp, "bid history retrieved successfully")
	helpers.LogSuccess("GetBidHistoryHandler", "bid history retrieved successfully", map[string]any{
		"auction_id": auctionID,
		"count":      len(resp),
	})
}

// GetUserBidsHandler handles GET /users/me/bids
func (h *BiddingHandler) GetUserBidsHandler(c *gin.Context) {
	user, ok := helpers.CurrentUser(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, fmt.Errorf("no authenticated user"), "authentication required")
		return
	}

	bids, err := h.service.UserBids(c.Request.Context(), user.UserID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetUserBidsHandler: error retrieving bids", map[string]any{"user_id": user.UserID, "error": err.Error()})
		return
	}

	resp := make([]helpers.BidResponse, 0, len(bids))
	for _, bid := range bids {
		resp = append(resp, toBidResponse(bid))
	}

	utils.JSONResponse(c, http.StatusOK, resp, "bids retrieved successfully")
	helpers.LogSuccess("GetUserBidsHandler", "bids retrieved successfully", map[string]any{
		"user_id": user.UserID,
		"count":   len(resp),
	})
}

// GetMinBidHandler handles GET /auctions/:auction_id/min-bid
func (h *BiddingHandler) GetMinBidHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	floor, err := h.service.MinManualBid(c.Request.Context(), auctionID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetMinBidHandler: error computing floor", map[string]any{"auction_id": auctionID, "error": err.Error()})
		return
	}

	resp := helpers.MinBidResponse{AuctionID: auctionID, MinManualBid: floor}
	utils.JSONResponse(c, http.StatusOK, resp, "minimum manual bid retrieved successfully")
}

// GetAutoBidHandler handles GET /auctions/:auction_id/auto-bid
func (h *BiddingHandler) GetAutoBidHandler(c *gin.Context) {
	user, ok := helpers.CurrentUser(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, fmt.Errorf("no authenticated user"), "authentication required")
		return
	}
	auctionID := c.Param("auction_id")

	setting, err := h.service.AutoBidSettings(c.Request.Context(), user.UserID, auctionID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetAutoBidHandler: error retrieving settings", map[string]any{
			"auction_id": auctionID,
			"user_id":    user.UserID,
			"error":      err.Error(),
		})
		return
	}

	resp := helpers.AutoBidResponse{
		AuctionID: auctionID,
		Enabled:   setting.Enabled,
		MaxAmount: setting.MaxAmount,
		Increment: setting.Increment,
	}
	utils.JSONResponse(c, http.StatusOK, resp, "auto-bid settings retrieved successfully")
}

// SaveAutoBidHandler handles PUT /auctions/:auction_id/auto-bid
func (h *BiddingHandler) SaveAutoBidHandler(c *gin.Context) {
	user, ok := helpers.CurrentUser(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, fmt.Errorf("no authenticated user"), "authentication required")
		return
	}
	auctionID := c.Param("auction_id")

	var req helpers.SaveAutoBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "SaveAutoBidHandler", err)
		return
	}

	setting := model.AutoBidSetting{
		UserID:    user.UserID,
		AuctionID: auctionID,
		Enabled:   req.Enabled,
		MaxAmount: req.MaxAmount,
		Increment: req.Increment,
	}

	saved, floor, err := h.service.SaveAutoBidSettings(c.Request.Context(), setting)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("SaveAutoBidHandler: failed to save settings", map[string]any{
			"auction_id": auctionID,
			"user_id":    user.UserID,
			"error":      err.Error(),
		})
		return
	}

	resp := helpers.AutoBidResponse{
		AuctionID:    auctionID,
		Enabled:      saved.Enabled,
		MaxAmount:    saved.MaxAmount,
		Increment:    saved.Increment,
		MinManualBid: floor,
	}
	utils.JSONResponse(c, http.StatusOK, resp, "auto-bid settings saved successfully")
	helpers.LogSuccess("SaveAutoBidHandler", "auto-bid settings saved successfully", map[string]any{
		"auction_id": auctionID,
		"user_id":    user.UserID,
		"enabled":    saved.Enabled,
		"max_amount": saved.MaxAmount,
	})
}

func toBidResponse(bid model.Bid) helpers.BidResponse {
	return helpers.BidResponse{
		BidID:      bid.BidID,
		AuctionID:  bid.AuctionID,
		UserID:     bid.UserID,
		BidderName: bid.BidderName,
		Amount:     bid.Amount,
		Timestamp:  bid.Timestamp.UTC().Format(time.RFC3339),
	}
}
