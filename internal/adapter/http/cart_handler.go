package http

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Hitesh-malik/e-commer-with-ai/internal/adapter/http/middleware"
	"github.com/Hitesh-malik/e-commer-with-ai/internal/entity"
	"github.com/Hitesh-malik/e-commer-with-ai/internal/usecase"
)

type CartHandler struct {
	ops      *usecase.CartOps
	checkout *usecase.Checkout
}

func NewCartHandler(ops *usecase.CartOps, checkout *usecase.Checkout) *CartHandler {
	return &CartHandler{ops: ops, checkout: checkout}
}

func (h *CartHandler) View(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	c.JSON(http.StatusOK, h.ops.View(ctx, middleware.SessionID(c)))
}

// AddItem accepts the product shape as the catalog hands it out; the
// aggregator normalizes title/name and malformed prices internally. Only
// the id is mandatory.
func (h *CartHandler) AddItem(c *gin.Context) {
	var p entity.Product
	if err := c.ShouldBindJSON(&p); err != nil || p.ID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	c.JSON(http.StatusOK, h.ops.Add(ctx, middleware.SessionID(c), p))
}

type setQtyReq struct {
	Qty *int `json:"qty" binding:"required"`
}

func (h *CartHandler) SetQuantity(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request"})
		return
	}
	var req setQtyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	c.JSON(http.StatusOK, h.ops.SetQuantity(ctx, middleware.SessionID(c), id, *req.Qty))
}

func (h *CartHandler) RemoveItem(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	c.JSON(http.StatusOK, h.ops.Remove(ctx, middleware.SessionID(c), id))
}

func (h *CartHandler) Clear(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	c.JSON(http.StatusOK, h.ops.Clear(ctx, middleware.SessionID(c)))
}

type checkoutReq struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (h *CartHandler) Checkout(c *gin.Context) {
	var req checkoutReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	receipt, err := h.checkout.Execute(ctx, middleware.SessionID(c), usecase.CheckoutInput{
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, receipt)
}
