// Package cart is the client of the storefront cart service.
package cart

import (
	"context"
	"github.com/viant/storefront/gateway"
	"github.com/viant/storefront/service"
	"net/http"
)

// Item is a cart line; PriceAtAdd is the unit price in cents when added.
type Item struct {
	ProductID  string `json:"productId"`
	Quantity   int    `json:"quantity"`
	PriceAtAdd int64  `json:"priceAtAdd"`
}

// Subtotal returns the line total in cents.
func (i *Item) Subtotal() int64 {
	return i.PriceAtAdd * int64(i.Quantity)
}

// Cart is the current user's cart.
type Cart struct {
	UserID string  `json:"userId,omitempty"`
	Items  []*Item `json:"items"`
}

// IsEmpty returns true when the cart holds no items.
func (c *Cart) IsEmpty() bool {
	return c == nil || len(c.Items) == 0
}

// Total returns the cart total in cents.
func (c *Cart) Total() int64 {
	if c == nil {
		return 0
	}
	var total int64
	for _, item := range c.Items {
		total += item.Subtotal()
	}
	return total
}

// Line is the add/update request.
type Line struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

func (l *Line) Validate() error {
	if err := service.RequireID("productId", l.ProductID); err != nil {
		return err
	}
	if l.Quantity <= 0 {
		return service.Invalid("quantity", "must be positive")
	}
	return nil
}

type removal struct {
	ProductID string `json:"productId"`
}

// Client calls the cart service.
type Client struct {
	baseURL string
	gateway *gateway.Gateway
}

// NewClient creates a cart client.
func NewClient(baseURL string, gw *gateway.Gateway) *Client {
	return &Client{baseURL: baseURL, gateway: gw}
}

// Get returns the cart.
func (c *Client) Get(ctx context.Context) (*Cart, error) {
	ret := &Cart{}
	if err := c.gateway.JSON(ctx, &gateway.Request{Method: http.MethodGet, URL: service.Endpoint(c.baseURL, "cart")}, ret); err != nil {
		return nil, err
	}
	return ret, nil
}

// Add puts quantity units of a product in the cart.
func (c *Client) Add(ctx context.Context, line *Line) error {
	if err := line.Validate(); err != nil {
		return err
	}
	URL := service.Endpoint(c.baseURL, "cart", "add")
	return c.gateway.JSON(ctx, &gateway.Request{Method: http.MethodPost, URL: URL, Body: line}, nil)
}

// Update sets the quantity of a product already in the cart.
func (c *Client) Update(ctx context.Context, line *Line) error {
	if err := line.Validate(); err != nil {
		return err
	}
	URL := service.Endpoint(c.baseURL, "cart", "update")
	return c.gateway.JSON(ctx, &gateway.Request{Method: http.MethodPut, URL: URL, Body: line}, nil)
}

// Remove drops a product from the cart.
func (c *Client) Remove(ctx context.Context, productID string) error {
	if err := service.RequireID("productId", productID); err != nil {
		return err
	}
	URL := service.Endpoint(c.baseURL, "cart", "remove")
	return c.gateway.JSON(ctx, &gateway.Request{Method: http.MethodDelete, URL: URL, Body: &removal{ProductID: productID}}, nil)
}
