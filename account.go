package storefront

import (
	"context"
	"github.com/viant/storefront/gateway"
	"github.com/viant/storefront/service/auth"
	"github.com/viant/storefront/session"
	"time"
)

// HomeRedirectDelay is how long after login or registration the home page is requested.
const HomeRedirectDelay = 1500 * time.Millisecond

// Login authenticates and establishes the session.
func (c *Client) Login(ctx context.Context, email, password string) (*session.User, error) {
	result, err := c.auth.Login(ctx, &auth.Credentials{Email: email, Password: password})
	if err != nil {
		return nil, err
	}
	return c.establish(ctx, result)
}

// Register creates an account and establishes the session.
func (c *Client) Register(ctx context.Context, registration *auth.Registration) (*session.User, error) {
	result, err := c.auth.Register(ctx, registration)
	if err != nil {
		return nil, err
	}
	return c.establish(ctx, result)
}

func (c *Client) establish(ctx context.Context, result *auth.Result) (*session.User, error) {
	if err := session.Establish(ctx, c.store, result.Token(), &result.User); err != nil {
		return nil, err
	}
	c.logger.InfoContext(ctx, "logged in", "email", result.User.Email, "role", result.User.Role)
	c.navigate(ctx, gateway.Redirect{Route: gateway.RouteHome, Delay: HomeRedirectDelay})
	user := result.User
	return &user, nil
}

// Logout asks the auth service to revoke the stored refresh token (empty when
// none is held), then clears the session whatever the outcome.
func (c *Client) Logout(ctx context.Context) error {
	refreshToken, _ := c.store.LookupRefreshToken(ctx)
	if err := c.auth.Logout(ctx, refreshToken); err != nil {
		c.logger.WarnContext(ctx, "logout request failed", "error", err)
	}
	if err := c.store.Clear(ctx); err != nil {
		return err
	}
	c.navigate(ctx, gateway.Redirect{Route: gateway.RouteHome})
	return nil
}

// Navigation lists the links available for the current session.
type Navigation struct {
	User     session.User
	Login    bool
	Register bool
	Profile  bool
	Orders   bool
	Logout   bool
	Admin    bool
}

// Navigation returns the navigation view for the current session.
func (c *Client) Navigation(ctx context.Context) *Navigation {
	current := c.Session(ctx)
	if current.State() == session.Anonymous {
		return &Navigation{Login: true, Register: true}
	}
	return &Navigation{
		User:    current.User,
		Profile: true,
		Orders:  true,
		Logout:  true,
		Admin:   current.User.IsAdmin(),
	}
}

// Identity is the whoami view.
type Identity struct {
	State  session.State
	User   session.User
	Claims *session.Claims
}

// Whoami describes the current session; claims are decoded when the token is a JWT.
func (c *Client) Whoami(ctx context.Context) *Identity {
	current := c.Session(ctx)
	ret := &Identity{State: current.State(), User: current.User}
	if token := current.AccessToken(); token != "" {
		claims, err := session.DecodeClaims(token)
		if err != nil {
			c.logger.DebugContext(ctx, "access token is not a JWT", "error", err)
		} else {
			ret.Claims = claims
		}
	}
	return ret
}
