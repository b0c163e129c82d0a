package api

import (
	"errors"
	"log/slog"
	"net/http"

	"fleetdesk/internal/domain/reservation"
	resdto "fleetdesk/internal/handler/dto/response"
	"fleetdesk/internal/handler/httperr"
	"fleetdesk/internal/handler/middleware"
	"fleetdesk/internal/pkg/errs"
	"fleetdesk/internal/usecase/commands"
	"fleetdesk/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

var errSessionMissing = errors.New("session missing from context")

// abortWithUsecaseError maps error categories onto HTTP statuses. Messages of
// validation errors come from the domain and are safe to echo.
func abortWithUsecaseError(c *gin.Context, err error) {
	var conflict *commands.ConflictError
	switch {
	case errors.As(err, &conflict):
		httperr.AbortWithError(c, http.StatusConflict, err, conflict.Result.Message, gin.H{
			"conflicts": resdto.FromConflicts(conflict.Result.Conflicts),
		})
	case errs.Is(err, errs.ErrValidation):
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
	case errs.Is(err, errs.ErrForbidden):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Insufficient permissions", nil)
	case errs.Is(err, errs.ErrNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, err.Error(), nil)
	case errs.Is(err, queries.ErrSuperseded):
		httperr.AbortWithError(c, http.StatusConflict, err, "Superseded by a newer request", nil)
	case errs.Is(err, errs.ErrConflict):
		httperr.AbortWithError(c, http.StatusConflict, err, err.Error(), nil)
	case errs.Is(err, reservation.ErrInvalidTransition), errs.Is(err, reservation.ErrReservationClosed):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, err.Error(), nil)
	default:
		slog.Error("unhandled usecase error",
			slog.String("request_id", middleware.GetRequestID(c)),
			slog.String("path", c.FullPath()),
			slog.Any("error", err),
			slog.Any("stack", errs.ExtractStackLines(err, 8)))
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

func abortWithBindError(c *gin.Context, err error) {
	httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", err.Error())
}
