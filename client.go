package storefront

import (
	"context"
	"fmt"
	"github.com/redis/go-redis/v9"
	"github.com/viant/storefront/gateway"
	"github.com/viant/storefront/service/auth"
	"github.com/viant/storefront/service/cart"
	"github.com/viant/storefront/service/order"
	"github.com/viant/storefront/service/product"
	"github.com/viant/storefront/session"
	"io"
	"log/slog"
	"net/http"
	"strings"
)

// Client runs storefront actions against the four services through one
// authenticating gateway.
type Client struct {
	options   *Options
	store     session.Store
	navigator gateway.Navigator
	transport http.RoundTripper
	logger    *slog.Logger
	redis     *redis.Client

	gateway  *gateway.Gateway
	auth     *auth.Client
	products *product.Client
	cart     *cart.Client
	orders   *order.Client
}

type Option func(*Client)

// WithStore injects a session store, bypassing store selection.
func WithStore(store session.Store) Option {
	return func(c *Client) {
		c.store = store
	}
}

// WithNavigator sets the navigator notified on login, logout, checkout and 401.
func WithNavigator(navigator gateway.Navigator) Option {
	return func(c *Client) {
		c.navigator = navigator
	}
}

// WithTransport sets the underlying HTTP transport.
func WithTransport(transport http.RoundTripper) Option {
	return func(c *Client) {
		c.transport = transport
	}
}

// WithLogger sets logger
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New creates a client; options must be initialized with Init.
func New(ctx context.Context, options *Options, opts ...Option) (*Client, error) {
	ret := &Client{
		options: options,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(ret)
	}
	if ret.navigator == nil {
		ret.navigator = gateway.NavigatorFunc(func(context.Context, gateway.Redirect) {})
	}
	if ret.store == nil {
		store, err := ret.openStore(ctx)
		if err != nil {
			return nil, err
		}
		ret.store = store
	}
	ret.gateway = gateway.New(
		gateway.WithStore(ret.store),
		gateway.WithNavigator(ret.navigator),
		gateway.WithTransport(ret.transport),
		gateway.WithLogger(ret.logger),
	)
	ret.auth = auth.NewClient(options.AuthURL, ret.gateway)
	ret.products = product.NewClient(options.ProductsURL, ret.gateway)
	ret.cart = cart.NewClient(options.CartURL, ret.gateway)
	ret.orders = order.NewClient(options.OrdersURL, ret.gateway)
	return ret, nil
}

// openStore selects redis when an address is configured, then memory, then a file.
func (c *Client) openStore(ctx context.Context) (session.Store, error) {
	switch {
	case c.options.RedisAddr != "":
		client, err := session.DialRedis(ctx, c.options.RedisAddr)
		if err != nil {
			return nil, err
		}
		c.redis = client
		return session.NewRedisStore(client, c.options.Profile, session.WithRedisLogger(c.logger)), nil
	case c.options.SessionURL == "" || strings.EqualFold(c.options.SessionURL, MemorySession):
		return session.NewMemoryStore(), nil
	default:
		fileOptions := []session.FileStoreOption{session.WithFileLogger(c.logger)}
		if c.options.EncryptionKey != "" {
			fileOptions = append(fileOptions, session.WithEncryptionKey(c.options.EncryptionKey))
		}
		store, err := session.NewFileStore(ctx, c.options.SessionURL, fileOptions...)
		if err != nil {
			return nil, fmt.Errorf("failed to open session %v: %w", c.options.SessionURL, err)
		}
		return store, nil
	}
}

// Session returns a snapshot of the current session.
func (c *Client) Session(ctx context.Context) *session.Session {
	return session.Snapshot(ctx, c.store)
}

// Store returns the session store.
func (c *Client) Store() session.Store {
	return c.store
}

// Close releases the redis connection, if any.
func (c *Client) Close() error {
	if c.redis != nil {
		return c.redis.Close()
	}
	return nil
}

func (c *Client) navigate(ctx context.Context, redirect gateway.Redirect) {
	c.navigator.Navigate(ctx, redirect)
}
