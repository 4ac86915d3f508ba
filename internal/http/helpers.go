package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/lexicon/internal/dictionary"
)

// ErrorResponse is the standard error response format for all API errors.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`    // machine-readable error code
	Details any    `json:"details,omitempty"` // additional context (validation errors, etc.)
}

// --- Error Response Helpers ---

// respondBadRequest sends a 400 Bad Request response.
func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: message, Code: "validation_error"})
}

// respondNotFound sends a 404 Not Found response.
func respondNotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, ErrorResponse{Error: message, Code: "not_found"})
}

// respondInternalError logs the error and sends a 500 Internal Server Error response.
// The actual error is logged but not exposed to the client.
func respondInternalError(c *gin.Context, err error, context string) {
	slog.ErrorContext(c.Request.Context(), "Internal error",
		slog.String("context", context),
		slog.Any("error", err))
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
}

// respondLookupError maps a dictionary error to its HTTP status:
// validation errors are 400, missing data is 404, everything else is 500.
func respondLookupError(c *gin.Context, err error, context string) {
	switch {
	case errors.Is(err, dictionary.ErrValidation):
		respondBadRequest(c, err.Error())
	case errors.Is(err, dictionary.ErrNotFound):
		respondNotFound(c, err.Error())
	default:
		respondInternalError(c, err, context)
	}
}
