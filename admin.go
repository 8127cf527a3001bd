package storefront

import (
	"context"
	"github.com/viant/storefront/service/order"
	"github.com/viant/storefront/service/product"
	"github.com/viant/storefront/session"
)

// AdminProducts lists up to AdminProductsLimit products.
func (c *Client) AdminProducts(ctx context.Context) (*product.List, error) {
	if err := c.gateway.RequireSession(ctx); err != nil {
		return nil, err
	}
	return c.products.List(ctx, &product.Query{Limit: AdminProductsLimit})
}

// AddProduct creates a product.
func (c *Client) AddProduct(ctx context.Context, request *product.New) (*product.Product, error) {
	if err := c.gateway.RequireSession(ctx); err != nil {
		return nil, err
	}
	return c.products.Create(ctx, request)
}

// DeleteProduct removes a product.
func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	if err := c.gateway.RequireSession(ctx); err != nil {
		return err
	}
	return c.products.Delete(ctx, id)
}

// AdminUsers lists accounts.
func (c *Client) AdminUsers(ctx context.Context) ([]*session.User, error) {
	if err := c.gateway.RequireSession(ctx); err != nil {
		return nil, err
	}
	return c.auth.Users(ctx)
}

// DeleteUser removes an account.
func (c *Client) DeleteUser(ctx context.Context, id string) error {
	if err := c.gateway.RequireSession(ctx); err != nil {
		return err
	}
	return c.auth.DeleteUser(ctx, id)
}

// AdminOrders lists every order.
func (c *Client) AdminOrders(ctx context.Context) ([]*order.Order, error) {
	if err := c.gateway.RequireSession(ctx); err != nil {
		return nil, err
	}
	return c.orders.All(ctx)
}

// UpdateOrderStatus sets an order status given in any letter case.
func (c *Client) UpdateOrderStatus(ctx context.Context, id, status string) error {
	if err := c.gateway.RequireSession(ctx); err != nil {
		return err
	}
	parsed, err := order.ParseStatus(status)
	if err != nil {
		return err
	}
	return c.orders.UpdateStatus(ctx, id, parsed)
}
