// Package order is the client of the storefront orders and payments service.
package order

import (
	"context"
	"github.com/viant/storefront/gateway"
	"github.com/viant/storefront/service"
	"github.com/viant/storefront/service/cart"
	"net/http"
	"strings"
	"time"
)

// Status is the fulfilment state of an order.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusShipped   Status = "shipped"
	StatusDelivered Status = "delivered"
	StatusCancelled Status = "cancelled"
)

// Statuses lists every known status in fulfilment order.
var Statuses = []Status{StatusPending, StatusConfirmed, StatusShipped, StatusDelivered, StatusCancelled}

// ParseStatus accepts a status in any letter case.
func ParseStatus(value string) (Status, error) {
	candidate := Status(strings.ToLower(strings.TrimSpace(value)))
	for _, status := range Statuses {
		if status == candidate {
			return status, nil
		}
	}
	return "", service.Invalid("status", "unknown order status "+value)
}

// Order is a placed order; amounts are in cents.
type Order struct {
	ID              string       `json:"_id"`
	UserID          string       `json:"userId"`
	Items           []*cart.Item `json:"items"`
	ShippingAddress string       `json:"shippingAddress"`
	TotalCents      int64        `json:"totalCents"`
	Status          string       `json:"status"`
	PaymentStatus   string       `json:"paymentStatus"`
	CreatedAt       time.Time    `json:"createdAt"`
}

// New is the create-order request.
type New struct {
	Items           []*cart.Item `json:"items"`
	ShippingAddress string       `json:"shippingAddress"`
}

func (n *New) Validate() error {
	if len(n.Items) == 0 {
		return service.Invalid("items", "order needs at least one item")
	}
	if strings.TrimSpace(n.ShippingAddress) == "" {
		return service.Invalid("shippingAddress", "is required")
	}
	return nil
}

// Payment is the mock payment request and response.
type Payment struct {
	OrderID string `json:"orderId"`
	Amount  int64  `json:"amount"`
	Status  string `json:"status,omitempty"`
}

func (p *Payment) Validate() error {
	if err := service.RequireID("orderId", p.OrderID); err != nil {
		return err
	}
	if p.Amount < 0 {
		return service.Invalid("amount", "must not be negative")
	}
	return nil
}

type statusUpdate struct {
	Status Status `json:"status"`
}

// Client calls the orders service.
type Client struct {
	baseURL string
	gateway *gateway.Gateway
}

// NewClient creates an orders client.
func NewClient(baseURL string, gw *gateway.Gateway) *Client {
	return &Client{baseURL: baseURL, gateway: gw}
}

// Create places an order.
func (c *Client) Create(ctx context.Context, request *New) (*Order, error) {
	if err := request.Validate(); err != nil {
		return nil, err
	}
	ret := &Order{}
	URL := service.Endpoint(c.baseURL, "orders", "create")
	if err := c.gateway.JSON(ctx, &gateway.Request{Method: http.MethodPost, URL: URL, Body: request}, ret); err != nil {
		return nil, err
	}
	return ret, nil
}

// Pay runs the mock payment for an order.
func (c *Client) Pay(ctx context.Context, payment *Payment) (*Payment, error) {
	if err := payment.Validate(); err != nil {
		return nil, err
	}
	ret := &Payment{}
	URL := service.Endpoint(c.baseURL, "payments", "mock")
	if err := c.gateway.JSON(ctx, &gateway.Request{Method: http.MethodPost, URL: URL, Body: payment}, ret); err != nil {
		return nil, err
	}
	return ret, nil
}

// Mine lists the current user's orders.
func (c *Client) Mine(ctx context.Context) ([]*Order, error) {
	return c.list(ctx, service.Endpoint(c.baseURL, "orders", "my"))
}

// All lists every order (admin).
func (c *Client) All(ctx context.Context) ([]*Order, error) {
	return c.list(ctx, service.Endpoint(c.baseURL, "admin", "orders"))
}

func (c *Client) list(ctx context.Context, URL string) ([]*Order, error) {
	var orders []*Order
	if err := c.gateway.JSON(ctx, &gateway.Request{Method: http.MethodGet, URL: URL}, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// UpdateStatus changes an order status (admin).
func (c *Client) UpdateStatus(ctx context.Context, id string, status Status) error {
	if err := service.RequireID("order id", id); err != nil {
		return err
	}
	if _, err := ParseStatus(string(status)); err != nil {
		return err
	}
	URL := service.Endpoint(c.baseURL, "admin", "orders", id, "status")
	return c.gateway.JSON(ctx, &gateway.Request{Method: http.MethodPut, URL: URL, Body: &statusUpdate{Status: status}}, nil)
}
