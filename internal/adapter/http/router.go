package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Hitesh-malik/e-commer-with-ai/internal/adapter/http/middleware"
	"github.com/Hitesh-malik/e-commer-with-ai/internal/logging"
)

type Handlers struct {
	Cart    *CartHandler
	Catalog *CatalogHandler
	Product *ProductHandler
	Order   *OrderHandler
	Assist  *AssistHandler
	Theme   *ThemeHandler
}

func NewRouter(h Handlers, sessionCookie string, sessionTTL time.Duration) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.MetricsMiddleware())

	l := logging.New("http")
	r.Use(middleware.Logging(l))

	r.GET("/healthz", func(c *gin.Context) {
		logging.From(c).Info("health check")
		c.JSON(200, gin.H{"ok": true})
	})
	// Prometheus endpoint (scraped by Prometheus)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := r.Group("/v1", middleware.Session(sessionCookie, sessionTTL))
	{
		v1.GET("/catalog", h.Catalog.List)
		v1.GET("/catalog/smart-search", h.Catalog.SmartSearch)
		v1.GET("/catalog/images", h.Catalog.Images)

		v1.GET("/products/:id", h.Product.Get)
		v1.GET("/products/:id/image", h.Product.Image)
		v1.POST("/products", h.Product.Create)
		v1.PUT("/products/:id", h.Product.Update)
		v1.DELETE("/products/:id", h.Product.Delete)

		v1.GET("/cart", h.Cart.View)
		v1.POST("/cart/items", h.Cart.AddItem)
		v1.PUT("/cart/items/:id", h.Cart.SetQuantity)
		v1.DELETE("/cart/items/:id", h.Cart.RemoveItem)
		v1.DELETE("/cart", h.Cart.Clear)
		v1.POST("/checkout", h.Cart.Checkout)

		v1.GET("/orders", h.Order.List)

		v1.GET("/assist/description", h.Assist.Description)
		v1.GET("/assist/image", h.Assist.Image)
		v1.GET("/assist/product", h.Assist.Product)
		v1.GET("/assist/chat", h.Assist.Chat)

		v1.GET("/theme", h.Theme.Get)
		v1.PUT("/theme", h.Theme.Set)
	}

	return r
}
