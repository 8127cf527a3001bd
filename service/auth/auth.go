// Package auth is the client of the storefront authentication service.
package auth

import (
	"context"
	"errors"
	"github.com/viant/storefront/gateway"
	"github.com/viant/storefront/service"
	"github.com/viant/storefront/session"
	"golang.org/x/oauth2"
	"net/http"
	"strings"
)

// ErrPasswordMismatch is returned when a registration confirmation differs.
var ErrPasswordMismatch = errors.New("passwords do not match")

// Credentials is the login request.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (c *Credentials) Validate() error {
	if strings.TrimSpace(c.Email) == "" {
		return service.Invalid("email", "is required")
	}
	if c.Password == "" {
		return service.Invalid("password", "is required")
	}
	return nil
}

// Registration is the register request.
type Registration struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"-"`
}

func (r *Registration) Validate() error {
	if r.Password != r.ConfirmPassword {
		return ErrPasswordMismatch
	}
	if strings.TrimSpace(r.Name) == "" {
		return service.Invalid("name", "is required")
	}
	credentials := Credentials{Email: r.Email, Password: r.Password}
	return credentials.Validate()
}

// Result is returned by login and register.
type Result struct {
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
	User         session.User `json:"user"`
}

func (r *Result) Validate() error {
	if r.AccessToken == "" {
		return service.Invalid("accessToken", "missing in auth response")
	}
	return nil
}

// Token returns the issued tokens.
func (r *Result) Token() *oauth2.Token {
	return &oauth2.Token{AccessToken: r.AccessToken, RefreshToken: r.RefreshToken, TokenType: "Bearer"}
}

type logoutRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// Client calls the auth service.
type Client struct {
	baseURL string
	gateway *gateway.Gateway
}

// NewClient creates an auth client.
func NewClient(baseURL string, gw *gateway.Gateway) *Client {
	return &Client{baseURL: baseURL, gateway: gw}
}

// Login exchanges credentials for tokens. The call is public: wrong
// credentials surface as a RequestError, not as a session expiry.
func (c *Client) Login(ctx context.Context, credentials *Credentials) (*Result, error) {
	if err := credentials.Validate(); err != nil {
		return nil, err
	}
	return c.issue(ctx, service.Endpoint(c.baseURL, "auth", "login"), credentials)
}

// Register creates an account and returns its tokens.
func (c *Client) Register(ctx context.Context, registration *Registration) (*Result, error) {
	if err := registration.Validate(); err != nil {
		return nil, err
	}
	return c.issue(ctx, service.Endpoint(c.baseURL, "auth", "register"), registration)
}

func (c *Client) issue(ctx context.Context, URL string, body interface{}) (*Result, error) {
	result := &Result{}
	err := c.gateway.JSON(ctx, &gateway.Request{Method: http.MethodPost, URL: URL, Body: body, Public: true}, result)
	if err != nil {
		return nil, err
	}
	if err = result.Validate(); err != nil {
		return nil, err
	}
	return result, nil
}

// Logout revokes the refresh token.
func (c *Client) Logout(ctx context.Context, refreshToken string) error {
	URL := service.Endpoint(c.baseURL, "auth", "logout")
	return c.gateway.JSON(ctx, &gateway.Request{Method: http.MethodPost, URL: URL, Body: &logoutRequest{RefreshToken: refreshToken}}, nil)
}

// Users lists accounts (admin).
func (c *Client) Users(ctx context.Context) ([]*session.User, error) {
	var users []*session.User
	URL := service.Endpoint(c.baseURL, "admin", "users")
	if err := c.gateway.JSON(ctx, &gateway.Request{Method: http.MethodGet, URL: URL}, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// DeleteUser removes an account (admin).
func (c *Client) DeleteUser(ctx context.Context, id string) error {
	if err := service.RequireID("user id", id); err != nil {
		return err
	}
	URL := service.Endpoint(c.baseURL, "admin", "users", id)
	return c.gateway.JSON(ctx, &gateway.Request{Method: http.MethodDelete, URL: URL}, nil)
}
