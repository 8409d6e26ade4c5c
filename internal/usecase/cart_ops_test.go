package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hitesh-malik/e-commer-with-ai/internal/cart"
	"github.com/Hitesh-malik/e-commer-with-ai/internal/entity"
)

func TestCartOpsPersistsAfterEveryMutation(t *testing.T) {
	store := newFakeStore()
	ops := NewCartOps(store)
	ctx := context.Background()

	ops.Add(ctx, "s1", entity.Product{ID: 5, Title: "Desk", Price: 5000})
	ops.Add(ctx, "s1", entity.Product{ID: 5, Title: "Desk", Price: 5000})
	ops.SetQuantity(ctx, "s1", 5, 3)
	v := ops.Remove(ctx, "s1", 99) // absent id, still persisted as a no-op

	assert.Equal(t, 4, store.saves)
	require.Len(t, v.Lines, 1)
	assert.Equal(t, 3, v.Lines[0].Qty)
	assert.Equal(t, cart.Totals{TotalItems: 3, TotalAmount: 15000}, v.Totals)

	// fresh view reads the persisted state
	v2 := ops.View(ctx, "s1")
	assert.Equal(t, v, v2)
}

func TestCartOpsSessionsAreIsolated(t *testing.T) {
	store := newFakeStore()
	ops := NewCartOps(store)
	ctx := context.Background()

	ops.Add(ctx, "s1", entity.Product{ID: 1, Title: "Mouse", Price: 999})
	ops.Add(ctx, "s2", entity.Product{ID: 2, Title: "Laptop", Price: 40000})

	assert.Equal(t, 1, ops.View(ctx, "s1").Totals.TotalItems)
	assert.Equal(t, float64(40000), ops.View(ctx, "s2").Totals.TotalAmount)
}

func TestCartOpsSwallowsStoreWriteFailure(t *testing.T) {
	store := newFakeStore()
	store.saveErr = errors.New("quota exceeded")
	ops := NewCartOps(store)

	v := ops.Add(context.Background(), "s1", entity.Product{ID: 1, Title: "Mouse", Price: 999})

	// the mutation still produced a coherent view
	require.Len(t, v.Lines, 1)
	assert.Equal(t, cart.Totals{TotalItems: 1, TotalAmount: 999}, v.Totals)
}

func TestCartOpsClear(t *testing.T) {
	store := newFakeStore()
	ops := NewCartOps(store)
	ctx := context.Background()

	ops.Add(ctx, "s1", entity.Product{ID: 1, Title: "Mouse", Price: 999})
	v := ops.Clear(ctx, "s1")

	assert.Empty(t, v.Lines)
	assert.Equal(t, cart.Totals{}, v.Totals)
	assert.Empty(t, ops.View(ctx, "s1").Lines)
}
