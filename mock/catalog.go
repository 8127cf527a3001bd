package mock

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/viant/storefront/service/product"
	"net/http"
	"strconv"
	"strings"
)

type productList struct {
	Products []*product.Product `json:"products"`
	Total    int                `json:"total"`
}

// ListProducts filters and pages the catalog.
// GET /products?skip&limit&search&category
func (b *Backend) ListProducts(c echo.Context) error {
	skip, _ := strconv.Atoi(c.QueryParam("skip"))
	limit, err := strconv.Atoi(c.QueryParam("limit"))
	if err != nil || limit <= 0 {
		limit = product.DefaultLimit
	}
	search := strings.ToLower(c.QueryParam("search"))
	category := c.QueryParam("category")

	var matched = []*product.Product{}
	for _, p := range b.Products() {
		if search != "" && !strings.Contains(strings.ToLower(p.Title), search) {
			continue
		}
		if category != "" && p.Category != category {
			continue
		}
		matched = append(matched, p)
	}
	total := len(matched)
	if skip < 0 || skip > total {
		skip = total
	}
	end := skip + limit
	if end > total {
		end = total
	}
	return c.JSON(http.StatusOK, &productList{Products: matched[skip:end], Total: total})
}

// GetProduct returns a product.
// GET /products/:id
func (b *Backend) GetProduct(c echo.Context) error {
	b.mu.RLock()
	p, ok := b.products[c.Param("id")]
	b.mu.RUnlock()
	if !ok {
		return c.JSON(http.StatusNotFound, message("Product not found"))
	}
	return c.JSON(http.StatusOK, p)
}

// CreateProduct adds a product.
// POST /products
func (b *Backend) CreateProduct(c echo.Context) error {
	var req product.New
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, message("invalid request body"))
	}
	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, message(err.Error()))
	}
	images := req.Images
	if images == nil {
		images = []string{}
	}
	p := &product.Product{ID: uuid.NewString(), Title: req.Title, Category: req.Category, PriceCents: req.PriceCents, Stock: req.Stock, Images: images}
	b.mu.Lock()
	b.products[p.ID] = p
	b.mu.Unlock()
	return c.JSON(http.StatusCreated, p)
}

// DeleteProduct removes a product.
// DELETE /products/:id
func (b *Backend) DeleteProduct(c echo.Context) error {
	id := c.Param("id")
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.products[id]; !ok {
		return c.JSON(http.StatusNotFound, message("Product not found"))
	}
	delete(b.products, id)
	return c.JSON(http.StatusOK, message("Product deleted"))
}
