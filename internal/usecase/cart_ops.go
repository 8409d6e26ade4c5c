package usecase

import (
	"context"

	"github.com/Hitesh-malik/e-commer-with-ai/internal/cart"
	"github.com/Hitesh-malik/e-commer-with-ai/internal/entity"
	"github.com/Hitesh-malik/e-commer-with-ai/internal/logging"
)

// CartView is the read model handed to the render layer: the lines plus
// totals derived fresh from them.
type CartView struct {
	Lines  []cart.Line `json:"items"`
	Totals cart.Totals `json:"totals"`
}

// CartOps owns all session cart mutations. Each operation loads the
// persisted lines, applies one synchronous mutation through the
// aggregator and writes the full list back, so the last mutation wins and
// derived totals can never drift from the lines. Store write failures are
// logged and swallowed: the cart is a convenience cache, the remote order
// system stays authoritative.
type CartOps struct {
	store CartStore
}

func NewCartOps(store CartStore) *CartOps {
	return &CartOps{store: store}
}

func (o *CartOps) View(ctx context.Context, sessionID string) CartView {
	c := cart.New(o.store.Load(ctx, sessionID))
	return view(c)
}

// Add puts one unit of the product into the cart, aggregating onto an
// existing line for the same id. It cannot fail; malformed product data
// is normalized at the boundary.
func (o *CartOps) Add(ctx context.Context, sessionID string, p entity.Product) CartView {
	return o.mutate(ctx, sessionID, func(c *cart.Cart) { c.Add(p) })
}

func (o *CartOps) SetQuantity(ctx context.Context, sessionID string, id int64, qty int) CartView {
	return o.mutate(ctx, sessionID, func(c *cart.Cart) { c.SetQuantity(id, qty) })
}

func (o *CartOps) Remove(ctx context.Context, sessionID string, id int64) CartView {
	return o.mutate(ctx, sessionID, func(c *cart.Cart) { c.Remove(id) })
}

func (o *CartOps) Clear(ctx context.Context, sessionID string) CartView {
	return o.mutate(ctx, sessionID, func(c *cart.Cart) { c.Clear() })
}

func (o *CartOps) mutate(ctx context.Context, sessionID string, fn func(*cart.Cart)) CartView {
	c := cart.New(o.store.Load(ctx, sessionID))
	fn(c)
	if err := o.store.Save(ctx, sessionID, c.Lines()); err != nil {
		logging.FromCtx(ctx).Warn("cart save failed", "session", sessionID, "err", err)
	}
	return view(c)
}

func view(c *cart.Cart) CartView {
	return CartView{Lines: c.Lines(), Totals: c.Totals()}
}
