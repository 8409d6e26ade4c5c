package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Hitesh-malik/e-commer-with-ai/internal/adapter/backend"
	"github.com/Hitesh-malik/e-commer-with-ai/internal/logging"
	"github.com/Hitesh-malik/e-commer-with-ai/internal/usecase"
)

// respondError maps use case and backend failures to HTTP statuses.
// Validation problems carry a per-field map for inline display; remote
// failures become a dismissible 502 message. Nothing here is fatal.
func respondError(c *gin.Context, err error) {
	if fields, ok := usecase.AsFieldErrors(err); ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation", "fields": fields})
		return
	}
	switch {
	case errors.Is(err, usecase.ErrBadQuery):
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request"})
	case errors.Is(err, usecase.ErrEmptyCart):
		c.JSON(http.StatusBadRequest, gin.H{"error": "cart_empty"})
	case errors.Is(err, backend.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not_found"})
	default:
		logging.From(c).Error("backend call failed", "err", err)
		c.JSON(http.StatusBadGateway, gin.H{
			"error":   "backend_unavailable",
			"message": "Something went wrong talking to the store. Please try again.",
		})
	}
}
