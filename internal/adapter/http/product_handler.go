package http

import (
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Hitesh-malik/e-commer-with-ai/internal/adapter/backend"
	"github.com/Hitesh-malik/e-commer-with-ai/internal/usecase"
)

type ProductHandler struct {
	manager *usecase.ProductManager
	browse  *usecase.Browse
	images  *usecase.ImagePrefetcher
}

func NewProductHandler(manager *usecase.ProductManager, browse *usecase.Browse, images *usecase.ImagePrefetcher) *ProductHandler {
	return &ProductHandler{manager: manager, browse: browse, images: images}
}

func (h *ProductHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	p, err := h.browse.Product(ctx, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// Image streams the product image through. A product without an image is
// a 204, never an error: the page shows its placeholder.
func (h *ProductHandler) Image(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	img, err := h.images.FetchOne(ctx, id)
	if err != nil {
		if errors.Is(err, backend.ErrNotFound) {
			c.Status(http.StatusNoContent)
			return
		}
		respondError(c, err)
		return
	}
	c.Data(http.StatusOK, img.ContentType, img.Data)
}

func (h *ProductHandler) Create(c *gin.Context) {
	form, img, ok := bindProductForm(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 15*time.Second)
	defer cancel()

	p, err := h.manager.Create(ctx, form, img)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (h *ProductHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request"})
		return
	}
	form, img, ok := bindProductForm(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 15*time.Second)
	defer cancel()

	p, err := h.manager.Update(ctx, id, form, img)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *ProductHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	if err := h.manager.Delete(ctx, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// bindProductForm reads the multipart form: plain fields plus an optional
// "imageFile" part. On a malformed request it answers 400 itself and
// returns ok=false.
func bindProductForm(c *gin.Context) (usecase.ProductForm, *backend.Upload, bool) {
	form := usecase.ProductForm{
		Name:             c.PostForm("name"),
		Brand:            c.PostForm("brand"),
		Description:      c.PostForm("description"),
		Price:            c.PostForm("price"),
		Category:         c.PostForm("category"),
		StockQuantity:    c.PostForm("stockQuantity"),
		ReleaseDate:      c.PostForm("releaseDate"),
		ProductAvailable: c.PostForm("productAvailable") == "true",
	}

	fh, err := c.FormFile("imageFile")
	if err != nil {
		// No image attached is fine.
		return form, nil, true
	}
	img, ok := readUpload(c, fh)
	if !ok {
		return usecase.ProductForm{}, nil, false
	}
	return form, img, true
}

func readUpload(c *gin.Context, fh *multipart.FileHeader) (*backend.Upload, bool) {
	f, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request"})
		return nil, false
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request"})
		return nil, false
	}
	return &backend.Upload{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Data:        data,
	}, true
}
