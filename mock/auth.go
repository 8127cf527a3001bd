package mock

import (
	"github.com/labstack/echo/v4"
	"github.com/viant/storefront/session"
	"golang.org/x/crypto/bcrypt"
	"net/http"
	"sort"
	"strings"
)

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type logoutRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// userView mirrors the document store representation used by admin listings.
type userView struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Register creates a customer account.
// POST /auth/register
func (b *Backend) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, message("invalid request body"))
	}
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, message("name, email and password are required"))
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.emails[req.Email]; ok {
		return c.JSON(http.StatusConflict, message("Email already registered"))
	}
	acc := b.addAccount(session.User{Name: req.Name, Email: req.Email}, req.Password)
	resp, err := b.issue(acc.user)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, message(err.Error()))
	}
	return c.JSON(http.StatusCreated, resp)
}

// Login issues tokens for valid credentials.
// POST /auth/login
func (b *Backend) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, message("invalid request body"))
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	id, ok := b.emails[strings.TrimSpace(strings.ToLower(req.Email))]
	if !ok {
		return c.JSON(http.StatusUnauthorized, message("Invalid credentials"))
	}
	acc := b.accounts[id]
	if bcrypt.CompareHashAndPassword(acc.passwordHash, []byte(req.Password)) != nil {
		return c.JSON(http.StatusUnauthorized, message("Invalid credentials"))
	}
	resp, err := b.issue(acc.user)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, message(err.Error()))
	}
	return c.JSON(http.StatusOK, resp)
}

// Logout revokes a refresh token.
// POST /auth/logout
func (b *Backend) Logout(c echo.Context) error {
	var req logoutRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, message("invalid request body"))
	}
	b.mu.Lock()
	delete(b.refresh, req.RefreshToken)
	b.mu.Unlock()
	return c.JSON(http.StatusOK, message("Logged out"))
}

// ListUsers lists accounts.
// GET /admin/users
func (b *Backend) ListUsers(c echo.Context) error {
	b.mu.RLock()
	users := make([]*userView, 0, len(b.accounts))
	for _, acc := range b.accounts {
		users = append(users, &userView{ID: acc.user.ID, Name: acc.user.Name, Email: acc.user.Email, Role: acc.user.Role})
	}
	b.mu.RUnlock()
	sort.Slice(users, func(i, j int) bool { return users[i].Email < users[j].Email })
	return c.JSON(http.StatusOK, users)
}

// DeleteUser removes an account with its cart.
// DELETE /admin/users/:id
func (b *Backend) DeleteUser(c echo.Context) error {
	id := c.Param("id")
	b.mu.Lock()
	defer b.mu.Unlock()
	acc, ok := b.accounts[id]
	if !ok {
		return c.JSON(http.StatusNotFound, message("User not found"))
	}
	delete(b.accounts, id)
	delete(b.emails, acc.user.Email)
	delete(b.carts, id)
	for token, owner := range b.refresh {
		if owner == id {
			delete(b.refresh, token)
		}
	}
	return c.JSON(http.StatusOK, message("User deleted"))
}
