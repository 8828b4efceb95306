package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/umzugo/packapp-backend/internal/requestdata"
)

// currentUserID pulls the authenticated user out of the request context.
// When it is missing the middleware did not run (or ran and failed), so the
// request is rejected here as a backstop.
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil || rd.UserID == uuid.Nil {
		RespondError(c, http.StatusUnauthorized, "unauthorized", errors.New("authentication required"))
		return uuid.Nil, false
	}
	return rd.UserID, true
}

func pathUUID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", errors.New("invalid id in path"))
		return uuid.Nil, false
	}
	return id, true
}
