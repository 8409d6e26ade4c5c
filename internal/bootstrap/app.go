package bootstrap

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/Hitesh-malik/e-commer-with-ai/configs"
	"github.com/Hitesh-malik/e-commer-with-ai/internal/adapter/backend"
	"github.com/Hitesh-malik/e-commer-with-ai/internal/adapter/cache"
	"github.com/Hitesh-malik/e-commer-with-ai/internal/adapter/http"
	"github.com/Hitesh-malik/e-commer-with-ai/internal/logging"
	"github.com/Hitesh-malik/e-commer-with-ai/internal/usecase"
)

type App struct {
	Router *gin.Engine
}

func InitWithConfig(cfg configs.Config) (*App, func(), error) {
	// init logger
	logging.Init("storefront", cfg.App.LogFile)

	// init redis (cart + preference store)
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, nil, err
	}

	logging.FromCtx(ctx).Info("storefront: starting up")

	// remote product/order/AI API
	client, err := backend.New(cfg.Backend.BaseURL, cfg.Backend.Timeout)
	if err != nil {
		return nil, nil, err
	}

	// infra
	cartStore := cache.NewRedisCartStore(rdb, cfg.Session.TTL)
	prefStore := cache.NewRedisPrefStore(rdb, cfg.Session.TTL)

	// use cases
	browse := usecase.NewBrowse(client)
	images := usecase.NewImagePrefetcher(client)
	cartOps := usecase.NewCartOps(cartStore)
	checkout := usecase.NewCheckout(cartStore)
	manager := usecase.NewProductManager(client)
	assist := usecase.NewAssist(client)

	// handlers + router
	router := http.NewRouter(http.Handlers{
		Cart:    http.NewCartHandler(cartOps, checkout),
		Catalog: http.NewCatalogHandler(browse, images),
		Product: http.NewProductHandler(manager, browse, images),
		Order:   http.NewOrderHandler(browse),
		Assist:  http.NewAssistHandler(assist),
		Theme:   http.NewThemeHandler(prefStore),
	}, cfg.Session.CookieName, cfg.Session.TTL)

	cleanup := func() {
		_ = rdb.Close()
	}

	return &App{Router: router}, cleanup, nil
}
