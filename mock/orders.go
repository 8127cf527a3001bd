package mock

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/viant/storefront/service/cart"
	"github.com/viant/storefront/service/order"
	"net/http"
	"sort"
	"time"
)

const (
	PaymentPending = "pending"
	PaymentPaid    = "paid"
)

type statusRequest struct {
	Status string `json:"status"`
}

// CreateOrder places an order from the posted items and empties the cart.
// POST /orders/create
func (b *Backend) CreateOrder(c echo.Context) error {
	var req order.New
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, message("invalid request body"))
	}
	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, message(err.Error()))
	}
	user := currentUser(c)
	created := &order.Order{
		ID:              uuid.NewString(),
		UserID:          user.ID,
		ShippingAddress: req.ShippingAddress,
		Status:          string(order.StatusPending),
		PaymentStatus:   PaymentPending,
		CreatedAt:       time.Now().UTC(),
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, item := range req.Items {
		p, ok := b.products[item.ProductID]
		if !ok {
			return c.JSON(http.StatusBadRequest, message("Unknown product "+item.ProductID))
		}
		line := &cart.Item{ProductID: p.ID, Quantity: item.Quantity, PriceAtAdd: item.PriceAtAdd}
		created.Items = append(created.Items, line)
		created.TotalCents += line.Subtotal()
	}
	b.orders[created.ID] = created
	b.cartOf(user.ID).Items = []*cart.Item{}
	return c.JSON(http.StatusCreated, created)
}

// Pay settles an order when the amount matches its total.
// POST /payments/mock
func (b *Backend) Pay(c echo.Context) error {
	var req order.Payment
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, message("invalid request body"))
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	placed, ok := b.orders[req.OrderID]
	if !ok || placed.UserID != currentUser(c).ID {
		return c.JSON(http.StatusNotFound, message("Order not found"))
	}
	if placed.PaymentStatus == PaymentPaid {
		return c.JSON(http.StatusConflict, message("Order already paid"))
	}
	if req.Amount != placed.TotalCents {
		return c.JSON(http.StatusBadRequest, message("Amount does not match order total"))
	}
	placed.PaymentStatus = PaymentPaid
	placed.Status = string(order.StatusConfirmed)
	return c.JSON(http.StatusOK, &order.Payment{OrderID: placed.ID, Amount: req.Amount, Status: "succeeded"})
}

// MyOrders lists the caller's orders, newest first.
// GET /orders/my
func (b *Backend) MyOrders(c echo.Context) error {
	userID := currentUser(c).ID
	return c.JSON(http.StatusOK, b.listOrders(func(o *order.Order) bool { return o.UserID == userID }))
}

// ListOrders lists every order.
// GET /admin/orders
func (b *Backend) ListOrders(c echo.Context) error {
	return c.JSON(http.StatusOK, b.listOrders(func(*order.Order) bool { return true }))
}

// UpdateOrderStatus sets an order status.
// PUT /admin/orders/:id/status
func (b *Backend) UpdateOrderStatus(c echo.Context) error {
	var req statusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, message("invalid request body"))
	}
	status, err := order.ParseStatus(req.Status)
	if err != nil {
		return c.JSON(http.StatusBadRequest, message(err.Error()))
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	placed, ok := b.orders[c.Param("id")]
	if !ok {
		return c.JSON(http.StatusNotFound, message("Order not found"))
	}
	placed.Status = string(status)
	return c.JSON(http.StatusOK, placed)
}

func (b *Backend) listOrders(include func(*order.Order) bool) []*order.Order {
	b.mu.RLock()
	defer b.mu.RUnlock()
	var ret = []*order.Order{}
	for _, o := range b.orders {
		if include(o) {
			clone := *o
			ret = append(ret, &clone)
		}
	}
	sort.Slice(ret, func(i, j int) bool { return ret[i].CreatedAt.After(ret[j].CreatedAt) })
	return ret
}
