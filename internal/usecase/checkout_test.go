package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hitesh-malik/e-commer-with-ai/internal/entity"
)

func TestCheckoutValidatesFields(t *testing.T) {
	store := newFakeStore()
	NewCartOps(store).Add(context.Background(), "s1", entity.Product{ID: 1, Title: "Mouse", Price: 999})
	u := NewCheckout(store)

	tests := []struct {
		name  string
		in    CheckoutInput
		wants []string
	}{
		{"both missing", CheckoutInput{}, []string{"name", "email"}},
		{"email missing", CheckoutInput{Name: "Ada"}, []string{"email"}},
		{"email malformed", CheckoutInput{Name: "Ada", Email: "nope"}, []string{"email"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := u.Execute(context.Background(), "s1", tt.in)
			fields, ok := AsFieldErrors(err)
			require.True(t, ok, "expected field errors, got %v", err)
			for _, f := range tt.wants {
				assert.Contains(t, fields, f)
			}
		})
	}
}

func TestCheckoutEmptyCartRejected(t *testing.T) {
	u := NewCheckout(newFakeStore())

	_, err := u.Execute(context.Background(), "s1", CheckoutInput{Name: "Ada", Email: "ada@example.com"})
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestCheckoutClearsCartAndReportsTotal(t *testing.T) {
	store := newFakeStore()
	ops := NewCartOps(store)
	ctx := context.Background()
	ops.Add(ctx, "s1", entity.Product{ID: 5, Title: "Desk", Price: 5000})
	ops.Add(ctx, "s1", entity.Product{ID: 5, Title: "Desk", Price: 5000})

	receipt, err := NewCheckout(store).Execute(ctx, "s1", CheckoutInput{Name: "Ada", Email: "ada@example.com"})
	require.NoError(t, err)

	assert.Equal(t, float64(10000), receipt.TotalAmount)
	require.Len(t, receipt.Lines, 1)
	assert.Equal(t, 2, receipt.Lines[0].Qty)
	assert.Empty(t, ops.View(ctx, "s1").Lines, "cart cleared after checkout")
}
