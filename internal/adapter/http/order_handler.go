package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Hitesh-malik/e-commer-with-ai/internal/entity"
	"github.com/Hitesh-malik/e-commer-with-ai/internal/usecase"
)

type OrderHandler struct {
	browse *usecase.Browse
}

func NewOrderHandler(browse *usecase.Browse) *OrderHandler {
	return &OrderHandler{browse: browse}
}

// List proxies the upstream order feed for the order management page.
func (h *OrderHandler) List(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	orders, err := h.browse.Orders(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	if orders == nil {
		orders = []entity.Order{}
	}
	c.JSON(http.StatusOK, orders)
}
