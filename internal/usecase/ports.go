package usecase

import (
	"context"

	"github.com/Hitesh-malik/e-commer-with-ai/internal/adapter/backend"
	"github.com/Hitesh-malik/e-commer-with-ai/internal/cart"
	"github.com/Hitesh-malik/e-commer-with-ai/internal/entity"
)

// CartStore is the durable string-keyed store behind the session cart.
// Load never fails: missing or corrupt state degrades to an empty cart.
type CartStore interface {
	Load(ctx context.Context, sessionID string) []cart.Line
	Save(ctx context.Context, sessionID string, lines []cart.Line) error
}

// PrefStore keeps per-session preference strings (theme).
type PrefStore interface {
	Theme(ctx context.Context, sessionID string) (string, error)
	SetTheme(ctx context.Context, sessionID, theme string) error
}

// Backend is the remote product/order/AI API.
type Backend interface {
	Products(ctx context.Context) ([]entity.Product, error)
	ProductByID(ctx context.Context, id int64) (entity.Product, error)
	ProductImage(ctx context.Context, id int64) (backend.Image, error)
	CreateProduct(ctx context.Context, p entity.Product, img *backend.Upload) (entity.Product, error)
	UpdateProduct(ctx context.Context, id int64, p entity.Product, img *backend.Upload) (entity.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
	SmartSearch(ctx context.Context, query string) ([]entity.Product, error)
	GenerateDescription(ctx context.Context, name, category string) (string, error)
	GenerateImage(ctx context.Context, name, category, description string) (backend.Image, error)
	GenerateProduct(ctx context.Context, query string) (entity.Product, error)
	Ask(ctx context.Context, message string) (string, error)
	Orders(ctx context.Context) ([]entity.Order, error)
}
