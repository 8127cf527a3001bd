package storefront

import (
	"context"
	"github.com/viant/storefront/service/product"
)

// AdminProductsLimit is the page size of the admin product listing.
const AdminProductsLimit = 100

// Products lists the first catalog page matching search and category.
func (c *Client) Products(ctx context.Context, search, category string) (*product.List, error) {
	return c.products.List(ctx, &product.Query{Limit: product.DefaultLimit, Search: search, Category: category})
}

// Product returns a product detail.
func (c *Client) Product(ctx context.Context, id string) (*product.Product, error) {
	return c.products.Get(ctx, id)
}
