package storefront

import (
	"context"
	"errors"
	"github.com/viant/storefront/gateway"
	"github.com/viant/storefront/service/order"
	"strings"
)

// DefaultShippingAddress is used when checkout gets no address.
const DefaultShippingAddress = "Default Address"

// ErrEmptyCart is returned by Checkout when the cart has no items.
var ErrEmptyCart = errors.New("cart is empty")

// Receipt is the checkout result.
type Receipt struct {
	Order   *order.Order
	Payment *order.Payment
}

// Checkout places an order for the cart content, pays it and requests the orders page.
func (c *Client) Checkout(ctx context.Context, shippingAddress string) (*Receipt, error) {
	if err := c.gateway.RequireSession(ctx); err != nil {
		return nil, err
	}
	userCart, err := c.cart.Get(ctx)
	if err != nil {
		return nil, err
	}
	if userCart.IsEmpty() {
		return nil, ErrEmptyCart
	}
	if strings.TrimSpace(shippingAddress) == "" {
		shippingAddress = DefaultShippingAddress
	}
	placed, err := c.orders.Create(ctx, &order.New{Items: userCart.Items, ShippingAddress: shippingAddress})
	if err != nil {
		return nil, err
	}
	payment, err := c.orders.Pay(ctx, &order.Payment{OrderID: placed.ID, Amount: placed.TotalCents})
	if err != nil {
		return nil, err
	}
	c.logger.InfoContext(ctx, "order placed", "order", placed.ID, "amount", placed.TotalCents, "payment", payment.Status)
	c.navigate(ctx, gateway.Redirect{Route: gateway.RouteOrders})
	return &Receipt{Order: placed, Payment: payment}, nil
}

// Orders lists the current user's orders.
func (c *Client) Orders(ctx context.Context) ([]*order.Order, error) {
	if err := c.gateway.RequireSession(ctx); err != nil {
		return nil, err
	}
	return c.orders.Mine(ctx)
}
