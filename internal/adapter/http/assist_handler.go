package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Hitesh-malik/e-commer-with-ai/internal/usecase"
)

// Generation calls sit on a slow model upstream; give them room.
const assistTimeout = 60 * time.Second

type AssistHandler struct {
	assist *usecase.Assist
}

func NewAssistHandler(assist *usecase.Assist) *AssistHandler {
	return &AssistHandler{assist: assist}
}

func (h *AssistHandler) Description(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), assistTimeout)
	defer cancel()

	text, err := h.assist.Description(ctx, c.Query("name"), c.Query("category"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"description": text})
}

func (h *AssistHandler) Image(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), assistTimeout)
	defer cancel()

	img, err := h.assist.Image(ctx, c.Query("name"), c.Query("category"), c.Query("description"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.Data(http.StatusOK, img.ContentType, img.Data)
}

func (h *AssistHandler) Product(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), assistTimeout)
	defer cancel()

	p, err := h.assist.Product(ctx, c.Query("query"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *AssistHandler) Chat(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), assistTimeout)
	defer cancel()

	reply, err := h.assist.Chat(ctx, c.Query("message"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reply": reply})
}
