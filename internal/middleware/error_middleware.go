package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/studentms/internal/app/models/dto"
	"github.com/yigit/studentms/internal/pkg/apperrors"
	"github.com/yigit/studentms/internal/pkg/logger"
)

// HandleAPIError maps an error to a status code and a {"message"} body.
// Unclassified errors are logged and answered with a generic 500.
func HandleAPIError(c *gin.Context, err error) {
	status, message := classify(err)

	if status == http.StatusInternalServerError {
		logger.Error().Err(err).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("Request failed")
	}

	c.JSON(status, dto.NewErrorResponse(message))
}

func classify(err error) (int, string) {
	switch {
	case errors.Is(err, apperrors.ErrMissingToken):
		return http.StatusForbidden, MsgAccessDenied
	case errors.Is(err, apperrors.ErrInvalidToken):
		return http.StatusBadRequest, MsgInvalidToken
	case errors.Is(err, apperrors.ErrNoFileUploaded):
		return http.StatusBadRequest, publicOr(err, "No file uploaded")
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		return http.StatusBadRequest, publicOr(err, "Invalid credentials")
	case apperrors.Is(err, apperrors.ErrValidationFailed, apperrors.ErrBadRequest):
		return http.StatusBadRequest, publicOr(err, "Validation failed")
	case errors.Is(err, apperrors.ErrPermissionDenied):
		return http.StatusForbidden, publicOr(err, "Permission denied")
	case errors.Is(err, apperrors.ErrResourceNotFound):
		return http.StatusNotFound, publicOr(err, "Resource not found")
	case errors.Is(err, apperrors.ErrConflict):
		return http.StatusConflict, publicOr(err, "Resource already exists")
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

func publicOr(err error, fallback string) string {
	if msg, ok := apperrors.PublicMessage(err); ok {
		return msg
	}
	return fallback
}
