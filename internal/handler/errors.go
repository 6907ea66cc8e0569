package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apperrors "github.com/yourusername/assessment-api/internal/pkg/errors"
)

// statusFor maps application errors to HTTP status codes and a stable error_type
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, apperrors.ErrPersistence):
		return http.StatusInternalServerError, "internal"
	case errors.Is(err, apperrors.ErrInvalidInput), errors.Is(err, apperrors.ErrValidation):
		return http.StatusBadRequest, "invalid_input"
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound, "not_found"
	case errors.Is(err, apperrors.ErrUnauthorized):
		return http.StatusUnauthorized, "unauthorized"
	case errors.Is(err, apperrors.ErrForbidden):
		return http.StatusForbidden, "forbidden"
	case errors.Is(err, apperrors.ErrConflict):
		return http.StatusConflict, "conflict"
	default:
		return http.StatusInternalServerError, "internal"
	}
}

// respondError writes the error response. Server-side failures are logged
// and their details are not echoed to the client.
func respondError(c *gin.Context, logger *zap.Logger, err error) {
	status, errorType := statusFor(err)
	if status >= http.StatusInternalServerError {
		logger.Error("request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Error(err))
		c.JSON(status, gin.H{"error": "Internal server error", "error_type": errorType})
		return
	}
	c.JSON(status, gin.H{"error": err.Error(), "error_type": errorType})
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": message, "error_type": "invalid_input"})
}
