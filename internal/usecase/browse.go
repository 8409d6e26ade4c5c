package usecase

import (
	"context"
	"strings"

	"github.com/Hitesh-malik/e-commer-with-ai/internal/catalog"
	"github.com/Hitesh-malik/e-commer-with-ai/internal/entity"
)

// Browse serves the product list page: the baseline catalog run through
// the local filter/sort pipeline, or the server-ranked smart-search
// result set which replaces the local pipeline entirely while active.
type Browse struct {
	backend Backend
}

func NewBrowse(b Backend) *Browse {
	return &Browse{backend: b}
}

// Catalog fetches the baseline catalog and applies the pipeline.
func (b *Browse) Catalog(ctx context.Context, cr catalog.Criteria) ([]entity.Product, error) {
	list, err := b.backend.Products(ctx)
	if err != nil {
		return nil, err
	}
	return catalog.Apply(list, cr), nil
}

// SmartSearch bypasses the local pipeline: the server-returned ranking is
// handed back untouched. Clearing smart search on the client side goes
// back through Catalog, which re-fetches the baseline list.
func (b *Browse) SmartSearch(ctx context.Context, query string) ([]entity.Product, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrBadQuery
	}
	return b.backend.SmartSearch(ctx, query)
}

// Product fetches a single product for the detail view.
func (b *Browse) Product(ctx context.Context, id int64) (entity.Product, error) {
	return b.backend.ProductByID(ctx, id)
}

// Orders fetches the order list for the order management page.
func (b *Browse) Orders(ctx context.Context) ([]entity.Order, error) {
	return b.backend.Orders(ctx)
}
