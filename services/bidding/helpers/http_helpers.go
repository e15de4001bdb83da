package helpers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rish1507/RangiLalls-backend/internal/auctionerrors"
	model "github.com/rish1507/RangiLalls-backend/internal/models"
	"github.com/rish1507/RangiLalls-backend/utils"
)

// UserKey is the gin context key under which the auth middleware stores the
// resolved user identity
const UserKey = "authenticated-user"

// CurrentUser returns the authenticated user set by the auth middleware
func CurrentUser(c *gin.Context) (model.User, bool) {
	v, ok := c.Get(UserKey)
	if !ok {
		return model.User{}, false
	}
	user, ok := v.(model.User)
	return user, ok
}

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, auctionerrors.ErrAuctionNotFound):
		return http.StatusNotFound, "auction not found"
	case errors.Is(err, auctionerrors.ErrInvalidBid), errors.Is(err, auctionerrors.ErrInvalidSettings):
		return http.StatusBadRequest, "invalid request details"
	case errors.Is(err, auctionerrors.ErrNotRegistered):
		return http.StatusForbidden, "not registered for this auction"
	case errors.Is(err, auctionerrors.ErrAutoBidLocked):
		return http.StatusConflict, "auto-bidding cannot be disabled once enabled"
	case errors.Is(err, auctionerrors.ErrBidTooLow), errors.Is(err, auctionerrors.ErrBelowAutoBidFloor):
		return http.StatusConflict, "bid amount too low"
	case errors.Is(err, auctionerrors.ErrAuctionEnded):
		return http.StatusConflict, "auction has ended"
	case errors.Is(err, auctionerrors.ErrInvalidToken):
		return http.StatusUnauthorized, "authentication required"
	case errors.Is(err, auctionerrors.ErrNoBids):
		return http.StatusOK, "no bids found for auction"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
