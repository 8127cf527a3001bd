// Package product is the client of the storefront products service.
package product

import (
	"context"
	"github.com/viant/storefront/gateway"
	"github.com/viant/storefront/service"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

const DefaultLimit = 20

// Product is a catalog entry; prices are in cents.
type Product struct {
	ID         string   `json:"_id"`
	Title      string   `json:"title"`
	Category   string   `json:"category"`
	PriceCents int64    `json:"priceCents"`
	Stock      int      `json:"stock"`
	Images     []string `json:"images"`
}

// InStock returns true when at least one unit is available.
func (p *Product) InStock() bool {
	return p.Stock > 0
}

// Query filters a product listing.
type Query struct {
	Skip     int
	Limit    int
	Search   string
	Category string
}

func (q *Query) values() url.Values {
	values := url.Values{}
	values.Set("skip", strconv.Itoa(q.Skip))
	limit := q.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	values.Set("limit", strconv.Itoa(limit))
	if q.Search != "" {
		values.Set("search", q.Search)
	}
	if q.Category != "" {
		values.Set("category", q.Category)
	}
	return values
}

// List is a page of products.
type List struct {
	Products []*Product `json:"products"`
	Total    int        `json:"total,omitempty"`
}

// New is the create-product request.
type New struct {
	Title      string   `json:"title"`
	Category   string   `json:"category"`
	PriceCents int64    `json:"priceCents"`
	Stock      int      `json:"stock"`
	Images     []string `json:"images"`
}

func (n *New) Validate() error {
	switch {
	case strings.TrimSpace(n.Title) == "":
		return service.Invalid("title", "is required")
	case strings.TrimSpace(n.Category) == "":
		return service.Invalid("category", "is required")
	case n.PriceCents <= 0:
		return service.Invalid("priceCents", "must be positive")
	case n.Stock <= 0:
		return service.Invalid("stock", "must be positive")
	}
	return nil
}

// ParseImages splits a comma separated list of image URLs, dropping blanks.
func ParseImages(value string) []string {
	var images = []string{}
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			images = append(images, item)
		}
	}
	return images
}

// Client calls the products service.
type Client struct {
	baseURL string
	gateway *gateway.Gateway
}

// NewClient creates a products client.
func NewClient(baseURL string, gw *gateway.Gateway) *Client {
	return &Client{baseURL: baseURL, gateway: gw}
}

// List returns products matching query; the listing is public.
func (c *Client) List(ctx context.Context, query *Query) (*List, error) {
	if query == nil {
		query = &Query{}
	}
	URL := service.Endpoint(c.baseURL, "products") + "?" + query.values().Encode()
	ret := &List{}
	if err := c.gateway.JSON(ctx, &gateway.Request{Method: http.MethodGet, URL: URL, Public: true}, ret); err != nil {
		return nil, err
	}
	return ret, nil
}

// Get returns a single product; the detail is public.
func (c *Client) Get(ctx context.Context, id string) (*Product, error) {
	if err := service.RequireID("product id", id); err != nil {
		return nil, err
	}
	ret := &Product{}
	URL := service.Endpoint(c.baseURL, "products", id)
	if err := c.gateway.JSON(ctx, &gateway.Request{Method: http.MethodGet, URL: URL, Public: true}, ret); err != nil {
		return nil, err
	}
	return ret, nil
}

// Create adds a product (admin).
func (c *Client) Create(ctx context.Context, product *New) (*Product, error) {
	if err := product.Validate(); err != nil {
		return nil, err
	}
	if product.Images == nil {
		product.Images = []string{}
	}
	ret := &Product{}
	URL := service.Endpoint(c.baseURL, "products")
	if err := c.gateway.JSON(ctx, &gateway.Request{Method: http.MethodPost, URL: URL, Body: product}, ret); err != nil {
		return nil, err
	}
	return ret, nil
}

// Delete removes a product (admin).
func (c *Client) Delete(ctx context.Context, id string) error {
	if err := service.RequireID("product id", id); err != nil {
		return err
	}
	URL := service.Endpoint(c.baseURL, "products", id)
	return c.gateway.JSON(ctx, &gateway.Request{Method: http.MethodDelete, URL: URL}, nil)
}
