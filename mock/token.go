package mock

import (
	"errors"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/viant/storefront/session"
	"net/http"
	"strings"
	"sync/atomic"
	"time"
)

const contextUserKey = "user"

type claims struct {
	session.Claims
	Epoch int64 `json:"epoch"`
}

type authResponse struct {
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
	User         session.User `json:"user"`
}

// issue creates an access token and a refresh token; callers hold b.mu.
func (b *Backend) issue(user session.User) (*authResponse, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &claims{
		Claims: session.Claims{
			Name:  user.Name,
			Email: user.Email,
			Role:  user.Role,
			RegisteredClaims: jwt.RegisteredClaims{
				ID:        uuid.NewString(),
				Subject:   user.ID,
				IssuedAt:  jwt.NewNumericDate(now),
				ExpiresAt: jwt.NewNumericDate(now.Add(b.tokenTTL)),
			},
		},
		Epoch: atomic.LoadInt64(&b.epoch),
	})
	accessToken, err := token.SignedString(b.secret)
	if err != nil {
		return nil, err
	}
	refreshToken := uuid.NewString()
	b.refresh[refreshToken] = user.ID
	return &authResponse{AccessToken: accessToken, RefreshToken: refreshToken, User: user}, nil
}

func (b *Backend) verify(raw string) (*claims, error) {
	parsed := &claims{}
	_, err := jwt.ParseWithClaims(raw, parsed, func(token *jwt.Token) (interface{}, error) {
		return b.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	if parsed.Epoch != atomic.LoadInt64(&b.epoch) {
		return nil, errors.New("token revoked")
	}
	return parsed, nil
}

// authenticate answers 401 unless a valid bearer token for a live account is presented.
func (b *Backend) authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get("Authorization")
		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || raw == "" {
			return c.JSON(http.StatusUnauthorized, message("Access token required"))
		}
		parsed, err := b.verify(raw)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, message("Invalid or expired token"))
		}
		b.mu.RLock()
		acc, ok := b.accounts[parsed.Subject]
		b.mu.RUnlock()
		if !ok {
			return c.JSON(http.StatusUnauthorized, message("Account not found"))
		}
		c.Set(contextUserKey, acc.user)
		return next(c)
	}
}

// admin answers 403 for non admin users; it runs after authenticate.
func (b *Backend) admin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if user := currentUser(c); user.Role != session.RoleAdmin {
			return c.JSON(http.StatusForbidden, message("Admin access required"))
		}
		return next(c)
	}
}

func currentUser(c echo.Context) session.User {
	user, _ := c.Get(contextUserKey).(session.User)
	return user
}

func message(text string) map[string]string {
	return map[string]string{"message": text}
}
