package mock

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/viant/storefront/service/cart"
	"github.com/viant/storefront/service/order"
	"github.com/viant/storefront/service/product"
	"github.com/viant/storefront/session"
	"golang.org/x/crypto/bcrypt"
	"sort"
	"sync"
	"sync/atomic"
	"time"
)

const (
	DefaultAdminEmail    = "admin@example.com"
	DefaultAdminPassword = "admin"
	RoleCustomer         = "customer"
)

type account struct {
	user         session.User
	passwordHash []byte
}

// Backend is an in-memory implementation of the auth, products, cart and
// orders services. All four are served by one handler.
type Backend struct {
	mu       sync.RWMutex
	secret   []byte
	tokenTTL time.Duration
	epoch    int64
	accounts map[string]*account
	emails   map[string]string
	refresh  map[string]string
	products map[string]*product.Product
	carts    map[string]*cart.Cart
	orders   map[string]*order.Order
	logging  bool
	hits     int64
}

type Option func(*Backend)

// WithSecret sets the HMAC secret used for access tokens.
func WithSecret(secret string) Option {
	return func(b *Backend) {
		b.secret = []byte(secret)
	}
}

// WithTokenTTL sets access token lifetime.
func WithTokenTTL(ttl time.Duration) Option {
	return func(b *Backend) {
		b.tokenTTL = ttl
	}
}

// WithProducts seeds the catalog.
func WithProducts(products ...*product.Product) Option {
	return func(b *Backend) {
		for _, p := range products {
			clone := *p
			if clone.ID == "" {
				clone.ID = uuid.NewString()
			}
			b.products[clone.ID] = &clone
		}
	}
}

// WithAccount seeds an account.
func WithAccount(user session.User, password string) Option {
	return func(b *Backend) {
		b.addAccount(user, password)
	}
}

// WithRequestLogging enables echo request logging.
func WithRequestLogging() Option {
	return func(b *Backend) {
		b.logging = true
	}
}

// New creates a backend seeded with an admin account.
func New(options ...Option) *Backend {
	ret := &Backend{
		secret:   []byte(uuid.NewString()),
		tokenTTL: 15 * time.Minute,
		accounts: map[string]*account{},
		emails:   map[string]string{},
		refresh:  map[string]string{},
		products: map[string]*product.Product{},
		carts:    map[string]*cart.Cart{},
		orders:   map[string]*order.Order{},
	}
	ret.addAccount(session.User{Name: "Admin", Email: DefaultAdminEmail, Role: session.RoleAdmin}, DefaultAdminPassword)
	for _, opt := range options {
		opt(ret)
	}
	return ret
}

func (b *Backend) addAccount(user session.User, password string) *account {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	if user.Role == "" {
		user.Role = RoleCustomer
	}
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	acc := &account{user: user, passwordHash: hash}
	b.accounts[user.ID] = acc
	b.emails[user.Email] = user.ID
	return acc
}

// Hits returns the number of requests served.
func (b *Backend) Hits() int64 {
	return atomic.LoadInt64(&b.hits)
}

// Revoke invalidates every issued access token; the next authenticated call answers 401.
func (b *Backend) Revoke() {
	atomic.AddInt64(&b.epoch, 1)
}

// Products returns the catalog ordered by title.
func (b *Backend) Products() []*product.Product {
	b.mu.RLock()
	defer b.mu.RUnlock()
	ret := make([]*product.Product, 0, len(b.products))
	for _, p := range b.products {
		clone := *p
		ret = append(ret, &clone)
	}
	sort.Slice(ret, func(i, j int) bool { return ret[i].Title < ret[j].Title })
	return ret
}

// Handler returns the echo router serving all four services.
func (b *Backend) Handler() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(b.count)
	if b.logging {
		e.Use(middleware.Logger())
	}
	e.Use(middleware.Recover())
	b.RegisterRoutes(e)
	return e
}

// RegisterRoutes registers the storefront routes.
func (b *Backend) RegisterRoutes(e *echo.Echo) {
	e.POST("/auth/register", b.Register)
	e.POST("/auth/login", b.Login)
	e.POST("/auth/logout", b.Logout, b.authenticate)

	e.GET("/products", b.ListProducts)
	e.GET("/products/:id", b.GetProduct)
	e.POST("/products", b.CreateProduct, b.authenticate, b.admin)
	e.DELETE("/products/:id", b.DeleteProduct, b.authenticate, b.admin)

	e.GET("/cart", b.GetCart, b.authenticate)
	e.POST("/cart/add", b.AddToCart, b.authenticate)
	e.PUT("/cart/update", b.UpdateCart, b.authenticate)
	e.DELETE("/cart/remove", b.RemoveFromCart, b.authenticate)

	e.POST("/orders/create", b.CreateOrder, b.authenticate)
	e.POST("/payments/mock", b.Pay, b.authenticate)
	e.GET("/orders/my", b.MyOrders, b.authenticate)

	e.GET("/admin/users", b.ListUsers, b.authenticate, b.admin)
	e.DELETE("/admin/users/:id", b.DeleteUser, b.authenticate, b.admin)
	e.GET("/admin/orders", b.ListOrders, b.authenticate, b.admin)
	e.PUT("/admin/orders/:id/status", b.UpdateOrderStatus, b.authenticate, b.admin)
}

func (b *Backend) count(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		atomic.AddInt64(&b.hits, 1)
		return next(c)
	}
}
