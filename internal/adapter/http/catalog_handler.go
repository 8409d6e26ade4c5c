package http

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Hitesh-malik/e-commer-with-ai/internal/catalog"
	"github.com/Hitesh-malik/e-commer-with-ai/internal/usecase"
)

type CatalogHandler struct {
	browse *usecase.Browse
	images *usecase.ImagePrefetcher
}

func NewCatalogHandler(browse *usecase.Browse, images *usecase.ImagePrefetcher) *CatalogHandler {
	return &CatalogHandler{browse: browse, images: images}
}

// List serves the filtered/sorted catalog. All filtering is recomputed
// from the query on every request; nothing is remembered between calls.
func (h *CatalogHandler) List(c *gin.Context) {
	cr := catalog.ParseCriteria(
		c.Query("search"),
		c.Query("category"),
		c.Query("min_price"),
		c.Query("max_price"),
		c.Query("sort"),
	)

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	list, err := h.browse.Catalog(ctx, cr)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// SmartSearch returns the server-ranked result set that replaces the
// local pipeline while a smart query is active.
func (h *CatalogHandler) SmartSearch(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 20*time.Second)
	defer cancel()

	list, err := h.browse.SmartSearch(ctx, c.Query("query"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

type imageDTO struct {
	ContentType string `json:"contentType"`
	Data        []byte `json:"data"` // base64 in JSON
}

// Images prefetches the images for a page of products in one call.
// Products whose image is missing or failed are simply absent from the
// response; the page renders its placeholder for them.
func (h *CatalogHandler) Images(c *gin.Context) {
	raw := strings.Split(c.Query("ids"), ",")
	ids := make([]int64, 0, len(raw))
	for _, s := range raw {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		id, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request"})
			return
		}
		ids = append(ids, id)
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 15*time.Second)
	defer cancel()

	resolved := h.images.FetchAll(ctx, ids)
	out := make(map[string]imageDTO, len(resolved))
	for id, img := range resolved {
		out[strconv.FormatInt(id, 10)] = imageDTO{ContentType: img.ContentType, Data: img.Data}
	}
	c.JSON(http.StatusOK, gin.H{"images": out})
}
