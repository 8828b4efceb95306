package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/umzugo/packapp-backend/internal/logger"
	"github.com/umzugo/packapp-backend/internal/services"
)

type APIError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

func RespondError(c *gin.Context, status int, code string, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.JSON(status, ErrorEnvelope{
		Error: APIError{
			Message: msg,
			Code:    code,
		},
	})
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

// respondServiceError maps service-layer failures onto the HTTP surface.
// Validation problems become 400, bad credentials 401, missing-or-unowned
// resources 404, anything else is logged and returned as an opaque 500.
func respondServiceError(c *gin.Context, log *logger.Logger, err error) {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		RespondError(c, http.StatusBadRequest, "validation_failed", verr)
	case errors.Is(err, services.ErrInvalidCredentials):
		RespondError(c, http.StatusUnauthorized, "invalid_credentials", services.ErrInvalidCredentials)
	case errors.Is(err, services.ErrNotFound):
		RespondError(c, http.StatusNotFound, "not_found", services.ErrNotFound)
	default:
		log.Error("Request failed", "error", err, "path", c.FullPath())
		RespondError(c, http.StatusInternalServerError, "internal_error", errors.New("internal server error"))
	}
}
