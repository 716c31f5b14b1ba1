package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"pawmart-backend-go/internal/core"
	"pawmart-backend-go/internal/db"
)

// mapErrorToStatus converts service errors to HTTP statuses and writes the
// error envelope. Anything unmapped becomes a generic 500; the underlying
// error is logged, never sent to the client.
func mapErrorToStatus(c *gin.Context, logger *zap.Logger, err error) {
	var statusCode int
	var body ErrorResponse

	switch {
	case errors.Is(err, core.ErrInvalidID):
		statusCode = http.StatusBadRequest
		body = ErrorResponse{Message: "Invalid ID format"}
	case errors.Is(err, core.ErrEmailMismatch):
		// Deliberately 401 rather than 403 on this path.
		statusCode = http.StatusUnauthorized
		body = ErrorResponse{Message: "unauthorized access"}
	case errors.Is(err, core.ErrForbiddenAccess):
		statusCode = http.StatusForbidden
		body = ErrorResponse{Message: "Forbidden: not your listing"}
	case errors.Is(err, core.ErrListingNotFound):
		statusCode = http.StatusNotFound
		body = ErrorResponse{Message: "Listing not found"}
	case errors.Is(err, core.ErrUserExists):
		statusCode = http.StatusConflict
		body = ErrorResponse{Message: "user already exists"}
	case errors.Is(err, db.ErrNotReady):
		statusCode = http.StatusServiceUnavailable
		body = ErrorResponse{Message: "Database not ready yet"}
	default:
		if logger != nil {
			logger.Error("request failed",
				zap.String("path", c.Request.URL.Path),
				zap.String("method", c.Request.Method),
				zap.Error(err),
			)
		}
		statusCode = http.StatusInternalServerError
		body = ErrorResponse{Message: "Server error"}
	}
	c.JSON(statusCode, body)
}
