package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hitesh-malik/e-commer-with-ai/internal/catalog"
	"github.com/Hitesh-malik/e-commer-with-ai/internal/entity"
)

func TestCatalogAppliesPipeline(t *testing.T) {
	b := &fakeBackend{
		products: func(context.Context) ([]entity.Product, error) {
			return []entity.Product{
				{ID: 1, Title: "Mouse", Price: 999, Category: "electronics"},
				{ID: 2, Title: "Laptop", Price: 40000, Category: "electronics"},
			}, nil
		},
	}
	browse := NewBrowse(b)

	cr := catalog.ParseCriteria("", "all", "1000", "", "priceAsc")
	got, err := browse.Catalog(context.Background(), cr)
	require.NoError(t, err)

	require.Len(t, got, 1)
	assert.Equal(t, int64(2), got[0].ID)
}

func TestSmartSearchReplacesLocalPipeline(t *testing.T) {
	// server ranking comes back untouched, no local re-sorting
	ranked := []entity.Product{
		{ID: 9, Title: "Z-item", Price: 5},
		{ID: 3, Title: "A-item", Price: 900},
	}
	b := &fakeBackend{
		smartSearch: func(_ context.Context, q string) ([]entity.Product, error) {
			assert.Equal(t, "cheap gift", q)
			return ranked, nil
		},
	}
	browse := NewBrowse(b)

	got, err := browse.SmartSearch(context.Background(), "cheap gift")
	require.NoError(t, err)
	assert.Equal(t, ranked, got)
}

func TestSmartSearchBlankQueryRejected(t *testing.T) {
	browse := NewBrowse(&fakeBackend{})

	_, err := browse.SmartSearch(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrBadQuery)
}
