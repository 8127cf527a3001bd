package session

import (
	"fmt"
	"github.com/golang-jwt/jwt/v5"
)

// Claims are the fields a storefront access token usually carries.
type Claims struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// DecodeClaims parses a JWT access token without verifying its signature.
// The result is informational only; the backend remains the authority.
func DecodeClaims(token string) (*Claims, error) {
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("failed to decode access token: %w", err)
	}
	return claims, nil
}
