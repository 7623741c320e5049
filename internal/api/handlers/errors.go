package handlers

import (
	"net/http"

	apperrors "referee-scheduler-backend/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error           string   `json:"error" example:"error message"`
	ConflictGameIDs []string `json:"conflict_game_ids,omitempty"`
}

// respondError maps domain errors onto HTTP status codes. Conflicts carry
// the colliding game ids so clients can retry with an override.
func respondError(c *gin.Context, err error) {
	switch {
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case apperrors.IsConflict(err):
		resp := ErrorResponse{Error: err.Error()}
		for _, id := range apperrors.ConflictGameIDs(err) {
			resp.ConflictGameIDs = append(resp.ConflictGameIDs, id.String())
		}
		c.JSON(http.StatusConflict, resp)
	case apperrors.IsValidation(err), apperrors.IsCapacity(err),
		apperrors.IsInvalidTransition(err), apperrors.IsExpired(err):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case apperrors.IsAuthorization(err):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
	case apperrors.IsAuthentication(err):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: err.Error()})
	default:
		logrus.WithError(err).Error("unhandled service error")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}
