package storefront

import (
	"context"
	"errors"
	"fmt"
	"github.com/joeshaw/envdecode"
	"github.com/viant/afs"
	"gopkg.in/yaml.v3"
	"os"
	"path/filepath"
	"strings"
)

const (
	DefaultAuthURL     = "https://ecommerce-auth.onrender.com"
	DefaultProductsURL = "http://localhost:5002"
	DefaultCartURL     = "http://localhost:5003"
	DefaultOrdersURL   = "http://localhost:5004"
	DefaultSessionURL  = "~/.storefront/session.json"
	DefaultProfile     = "default"
)

// Options
//
// defines storefront client configuration. Values come from flags, then an
// optional YAML file, then STOREFRONT_* environment variables, then defaults.
type Options struct {
	AuthURL     string `yaml:"authURL,omitempty" json:"authURL,omitempty" long:"auth-url" description:"auth service base URL"`
	ProductsURL string `yaml:"productsURL,omitempty" json:"productsURL,omitempty" long:"products-url" description:"products service base URL"`
	CartURL     string `yaml:"cartURL,omitempty" json:"cartURL,omitempty" long:"cart-url" description:"cart service base URL"`
	OrdersURL   string `yaml:"ordersURL,omitempty" json:"ordersURL,omitempty" long:"orders-url" description:"orders service base URL"`

	// SessionURL is an afs URL of the session file; "memory" keeps the session in process only.
	SessionURL    string `yaml:"sessionURL,omitempty" json:"sessionURL,omitempty" short:"s" long:"session" description:"session file URL or memory"`
	RedisAddr     string `yaml:"redisAddr,omitempty" json:"redisAddr,omitempty" long:"redis" description:"redis address for a shared session"`
	Profile       string `yaml:"profile,omitempty" json:"profile,omitempty" short:"p" long:"profile" description:"session profile (redis key suffix)"`
	EncryptionKey string `yaml:"encryptionKey,omitempty" json:"encryptionKey,omitempty" short:"k" long:"key" description:"session encryption key, e.g. blowfish://default"`

	ConfigURL string `yaml:"-" json:"-" short:"c" long:"config" description:"YAML config file URL"`
}

// MemorySession selects the in-process session store.
const MemorySession = "memory"

// environment holds the STOREFRONT_* variables; defaults are applied by Init.
type environment struct {
	AuthURL       string `env:"STOREFRONT_AUTH_URL"`
	ProductsURL   string `env:"STOREFRONT_PRODUCTS_URL"`
	CartURL       string `env:"STOREFRONT_CART_URL"`
	OrdersURL     string `env:"STOREFRONT_ORDERS_URL"`
	SessionURL    string `env:"STOREFRONT_SESSION_URL"`
	RedisAddr     string `env:"STOREFRONT_REDIS_ADDR"`
	Profile       string `env:"STOREFRONT_PROFILE"`
	EncryptionKey string `env:"STOREFRONT_ENCRYPTION_KEY"`
	ConfigURL     string `env:"STOREFRONT_CONFIG"`
}

func (e *environment) options() *Options {
	return &Options{
		AuthURL:       e.AuthURL,
		ProductsURL:   e.ProductsURL,
		CartURL:       e.CartURL,
		OrdersURL:     e.OrdersURL,
		SessionURL:    e.SessionURL,
		RedisAddr:     e.RedisAddr,
		Profile:       e.Profile,
		EncryptionKey: e.EncryptionKey,
		ConfigURL:     e.ConfigURL,
	}
}

// LoadOptions reads YAML options from an afs URL.
func LoadOptions(ctx context.Context, fs afs.Service, URL string) (*Options, error) {
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to load config %v: %w", URL, err)
	}
	ret := &Options{}
	if err = yaml.Unmarshal(data, ret); err != nil {
		return nil, fmt.Errorf("failed to decode config %v: %w", URL, err)
	}
	return ret, nil
}

// Init fills every unset field from the config file, the environment and defaults.
func (o *Options) Init(ctx context.Context) error {
	vars := &environment{}
	if err := envdecode.Decode(vars); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return fmt.Errorf("failed to decode environment: %w", err)
	}
	env := vars.options()
	if o.ConfigURL == "" {
		o.ConfigURL = env.ConfigURL
	}
	if o.ConfigURL != "" {
		file, err := LoadOptions(ctx, afs.New(), o.ConfigURL)
		if err != nil {
			return err
		}
		o.merge(file)
	}
	o.merge(env)
	o.merge(&Options{
		AuthURL:     DefaultAuthURL,
		ProductsURL: DefaultProductsURL,
		CartURL:     DefaultCartURL,
		OrdersURL:   DefaultOrdersURL,
		SessionURL:  DefaultSessionURL,
		Profile:     DefaultProfile,
	})
	o.SessionURL = expandHome(o.SessionURL)
	return nil
}

// UseBaseURL points every service without an explicit URL at baseURL.
func (o *Options) UseBaseURL(baseURL string) {
	o.merge(&Options{AuthURL: baseURL, ProductsURL: baseURL, CartURL: baseURL, OrdersURL: baseURL})
}

func (o *Options) merge(from *Options) {
	fill := func(dest *string, value string) {
		if *dest == "" {
			*dest = value
		}
	}
	fill(&o.AuthURL, from.AuthURL)
	fill(&o.ProductsURL, from.ProductsURL)
	fill(&o.CartURL, from.CartURL)
	fill(&o.OrdersURL, from.OrdersURL)
	fill(&o.SessionURL, from.SessionURL)
	fill(&o.RedisAddr, from.RedisAddr)
	fill(&o.Profile, from.Profile)
	fill(&o.EncryptionKey, from.EncryptionKey)
}

func expandHome(location string) string {
	rest, ok := strings.CutPrefix(location, "~/")
	if !ok {
		return location
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return location
	}
	return filepath.Join(home, rest)
}
