package storefront

import (
	"context"
	"github.com/viant/storefront/service/cart"
)

// CartLine is a cart item ready for display.
type CartLine struct {
	ProductID  string
	Quantity   int
	PriceCents int64
	Subtotal   int64
}

// CartView is the cart with its computed total.
type CartView struct {
	Cart  *cart.Cart
	Lines []*CartLine
	Total int64
}

// IsEmpty returns true when the cart has no lines.
func (v *CartView) IsEmpty() bool {
	return len(v.Lines) == 0
}

func newCartView(userCart *cart.Cart) *CartView {
	ret := &CartView{Cart: userCart, Lines: []*CartLine{}, Total: userCart.Total()}
	for _, item := range userCart.Items {
		ret.Lines = append(ret.Lines, &CartLine{
			ProductID:  item.ProductID,
			Quantity:   item.Quantity,
			PriceCents: item.PriceAtAdd,
			Subtotal:   item.Subtotal(),
		})
	}
	return ret
}

// AddToCart adds quantity units (1 when not positive) of a product.
// Without a session it requests the login page and issues no request.
func (c *Client) AddToCart(ctx context.Context, productID string, quantity int) error {
	if err := c.gateway.RequireSession(ctx); err != nil {
		return err
	}
	if quantity <= 0 {
		quantity = 1
	}
	return c.cart.Add(ctx, &cart.Line{ProductID: productID, Quantity: quantity})
}

// Cart returns the current cart.
func (c *Client) Cart(ctx context.Context) (*CartView, error) {
	if err := c.gateway.RequireSession(ctx); err != nil {
		return nil, err
	}
	userCart, err := c.cart.Get(ctx)
	if err != nil {
		return nil, err
	}
	return newCartView(userCart), nil
}

// UpdateCart sets a line quantity and returns the reloaded cart.
func (c *Client) UpdateCart(ctx context.Context, productID string, quantity int) (*CartView, error) {
	if err := c.gateway.RequireSession(ctx); err != nil {
		return nil, err
	}
	if err := c.cart.Update(ctx, &cart.Line{ProductID: productID, Quantity: quantity}); err != nil {
		return nil, err
	}
	return c.Cart(ctx)
}

// RemoveFromCart drops a line and returns the reloaded cart.
func (c *Client) RemoveFromCart(ctx context.Context, productID string) (*CartView, error) {
	if err := c.gateway.RequireSession(ctx); err != nil {
		return nil, err
	}
	if err := c.cart.Remove(ctx, productID); err != nil {
		return nil, err
	}
	return c.Cart(ctx)
}
