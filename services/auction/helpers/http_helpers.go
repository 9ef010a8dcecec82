package helpers

import (
	"errors"
	"fmt"
	"net/http"

	"gift-auction/internal/auctionerrors"
	"gift-auction/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures.
// code is the auctionerrors code the same input gets from the service.
func HandleBindError(c *gin.Context, handlerName string, err error, code string) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, code, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// HandleServiceError maps err to an HTTP response and logs it
func HandleServiceError(c *gin.Context, handlerName string, err error, ctx map[string]any) {
	status, message := MapErrorToHTTP(err)
	utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), auctionerrors.Code(err), message)

	if ctx == nil {
		ctx = map[string]any{}
	}
	ctx["handler"] = handlerName
	ctx["error"] = err.Error()
	if status >= http.StatusInternalServerError {
		utils.Error(handlerName+": request failed", ctx)
		return
	}
	utils.Warn(handlerName+": request rejected", ctx)
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, auctionerrors.ErrInvalidBid):
		return http.StatusBadRequest, "invalid bid details"
	case errors.Is(err, auctionerrors.ErrInvalidConfig):
		return http.StatusBadRequest, "invalid auction configuration"
	case errors.Is(err, auctionerrors.ErrInvalidQuery):
		return http.StatusBadRequest, "invalid query parameters"
	case errors.Is(err, auctionerrors.ErrBidTooLow):
		return http.StatusConflict, "bid amount too low"
	case errors.Is(err, auctionerrors.ErrBelowMinBid):
		return http.StatusConflict, "bid below auction minimum"
	case errors.Is(err, auctionerrors.ErrBelowMinIncrement):
		return http.StatusConflict, "bid increase below minimum difference"
	case errors.Is(err, auctionerrors.ErrAlreadyWon):
		return http.StatusConflict, "user already won a gift"
	case errors.Is(err, auctionerrors.ErrAuctionEnded):
		return http.StatusConflict, "auction has ended"
	case errors.Is(err, auctionerrors.ErrActionUnavailable):
		return http.StatusConflict, "action not available in current phase"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
