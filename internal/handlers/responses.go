package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tajuwa/clickbit_backend/internal/apperrors"
)

// ErrorResponse is a generic error response structure for handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}

// writeServiceError maps a service error onto an HTTP response. Domain
// errors pass through with their own message; anything unrecognized is
// logged in full and surfaced as the opaque fallback message.
func writeServiceError(c *gin.Context, logger *slog.Logger, err error, fallback string) {
	status := apperrors.StatusCodeFor(err)
	if status == http.StatusInternalServerError {
		logger.Error("Unexpected service error", slog.String("error", err.Error()))
		c.JSON(status, ErrorResponse{Error: fallback})
		return
	}
	c.JSON(status, ErrorResponse{Error: err.Error()})
}
