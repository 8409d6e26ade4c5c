package usecase

import (
	"context"
	"strings"

	"github.com/Hitesh-malik/e-commer-with-ai/internal/cart"
	"github.com/Hitesh-malik/e-commer-with-ai/internal/logging"
)

type CheckoutInput struct {
	Name  string
	Email string
}

// CheckoutReceipt summarizes the confirmed purchase.
type CheckoutReceipt struct {
	Name        string      `json:"name"`
	Email       string      `json:"email"`
	Lines       []cart.Line `json:"items"`
	TotalAmount float64     `json:"totalAmount"`
}

// Checkout confirms the purchase: validates the customer fields, rejects
// an empty cart, then clears it. There is no payment step; the receipt is
// the whole outcome.
type Checkout struct {
	store CartStore
}

func NewCheckout(store CartStore) *Checkout {
	return &Checkout{store: store}
}

func (u *Checkout) Execute(ctx context.Context, sessionID string, in CheckoutInput) (CheckoutReceipt, error) {
	fields := FieldErrors{}
	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)
	if name == "" {
		fields["name"] = "Please enter your name"
	}
	if email == "" {
		fields["email"] = "Please enter your email"
	} else if !strings.Contains(email, "@") {
		fields["email"] = "Please enter a valid email"
	}
	if len(fields) > 0 {
		return CheckoutReceipt{}, fields
	}

	c := cart.New(u.store.Load(ctx, sessionID))
	if c.Len() == 0 {
		return CheckoutReceipt{}, ErrEmptyCart
	}

	receipt := CheckoutReceipt{
		Name:        name,
		Email:       email,
		Lines:       c.Lines(),
		TotalAmount: c.Totals().TotalAmount,
	}

	c.Clear()
	if err := u.store.Save(ctx, sessionID, c.Lines()); err != nil {
		logging.FromCtx(ctx).Warn("cart clear after checkout failed", "session", sessionID, "err", err)
	}
	return receipt, nil
}
