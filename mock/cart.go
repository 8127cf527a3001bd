package mock

import (
	"github.com/labstack/echo/v4"
	"github.com/viant/storefront/service/cart"
	"net/http"
)

type removeRequest struct {
	ProductID string `json:"productId"`
}

// cartOf returns the user's cart, creating it; callers hold b.mu.
func (b *Backend) cartOf(userID string) *cart.Cart {
	ret, ok := b.carts[userID]
	if !ok {
		ret = &cart.Cart{UserID: userID, Items: []*cart.Item{}}
		b.carts[userID] = ret
	}
	return ret
}

// GetCart returns the caller's cart.
// GET /cart
func (b *Backend) GetCart(c echo.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return c.JSON(http.StatusOK, b.cartOf(currentUser(c).ID))
}

// AddToCart adds units of a product, merging with an existing line.
// POST /cart/add
func (b *Backend) AddToCart(c echo.Context) error {
	var req cart.Line
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, message("invalid request body"))
	}
	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, message(err.Error()))
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	p, ok := b.products[req.ProductID]
	if !ok {
		return c.JSON(http.StatusNotFound, message("Product not found"))
	}
	userCart := b.cartOf(currentUser(c).ID)
	for _, item := range userCart.Items {
		if item.ProductID == req.ProductID {
			if item.Quantity+req.Quantity > p.Stock {
				return c.JSON(http.StatusBadRequest, message("Insufficient stock"))
			}
			item.Quantity += req.Quantity
			return c.JSON(http.StatusOK, userCart)
		}
	}
	if req.Quantity > p.Stock {
		return c.JSON(http.StatusBadRequest, message("Insufficient stock"))
	}
	userCart.Items = append(userCart.Items, &cart.Item{ProductID: p.ID, Quantity: req.Quantity, PriceAtAdd: p.PriceCents})
	return c.JSON(http.StatusOK, userCart)
}

// UpdateCart sets the quantity of an existing line.
// PUT /cart/update
func (b *Backend) UpdateCart(c echo.Context) error {
	var req cart.Line
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, message("invalid request body"))
	}
	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, message(err.Error()))
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	userCart := b.cartOf(currentUser(c).ID)
	for _, item := range userCart.Items {
		if item.ProductID == req.ProductID {
			item.Quantity = req.Quantity
			return c.JSON(http.StatusOK, userCart)
		}
	}
	return c.JSON(http.StatusNotFound, message("Item not in cart"))
}

// RemoveFromCart drops a line.
// DELETE /cart/remove
func (b *Backend) RemoveFromCart(c echo.Context) error {
	var req removeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, message("invalid request body"))
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	userCart := b.cartOf(currentUser(c).ID)
	kept := userCart.Items[:0]
	for _, item := range userCart.Items {
		if item.ProductID != req.ProductID {
			kept = append(kept, item)
		}
	}
	userCart.Items = kept
	return c.JSON(http.StatusOK, userCart)
}
