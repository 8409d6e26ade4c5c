package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Hitesh-malik/e-commer-with-ai/internal/adapter/http/middleware"
	"github.com/Hitesh-malik/e-commer-with-ai/internal/usecase"
)

const defaultTheme = "light"

type ThemeHandler struct {
	prefs usecase.PrefStore
}

func NewThemeHandler(prefs usecase.PrefStore) *ThemeHandler {
	return &ThemeHandler{prefs: prefs}
}

func (h *ThemeHandler) Get(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	theme, err := h.prefs.Theme(ctx, middleware.SessionID(c))
	if err != nil || theme == "" {
		// Preference is a convenience; fall back instead of failing.
		theme = defaultTheme
	}
	c.JSON(http.StatusOK, gin.H{"theme": theme})
}

type setThemeReq struct {
	Theme string `json:"theme" binding:"required,oneof=light dark"`
}

func (h *ThemeHandler) Set(c *gin.Context) {
	var req setThemeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := h.prefs.SetTheme(ctx, middleware.SessionID(c), req.Theme); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"theme": req.Theme})
}
