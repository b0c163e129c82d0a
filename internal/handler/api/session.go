package api

import (
	"net/http"

	"fleetdesk/internal/handler/httperr"
	"fleetdesk/internal/handler/middleware"
	"fleetdesk/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// session aborts with 401 when the auth middleware did not run.
func session(c *gin.Context) (shared.Session, bool) {
	s, ok := middleware.GetSession(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errSessionMissing, "Unauthorized", nil)
		return shared.Session{}, false
	}
	return s, true
}

func pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return uuid.Nil, false
	}
	return id, true
}
