package session

import (
	"context"
	"encoding/json"
	"golang.org/x/oauth2"
)

// State is the login state derived from a session.
type State string

const (
	Anonymous     State = "anonymous"
	Authenticated State = "authenticated"
)

// RoleAdmin marks users allowed to use admin endpoints.
const RoleAdmin = "admin"

// User is the profile returned by the auth service.
type User struct {
	ID    string `json:"id,omitempty" yaml:"id,omitempty"`
	Name  string `json:"name,omitempty" yaml:"name,omitempty"`
	Email string `json:"email,omitempty" yaml:"email,omitempty"`
	Role  string `json:"role,omitempty" yaml:"role,omitempty"`
}

// UnmarshalJSON accepts both "id" and the document store "_id" identifier.
func (u *User) UnmarshalJSON(data []byte) error {
	type plain User
	aux := struct {
		*plain
		DocumentID string `json:"_id,omitempty"`
	}{plain: (*plain)(u)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if u.ID == "" {
		u.ID = aux.DocumentID
	}
	return nil
}

// IsEmpty returns true when no profile field is set.
func (u *User) IsEmpty() bool {
	return u == nil || *u == User{}
}

// IsAdmin returns true for admin role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// Session is a point-in-time view of a Store.
type Session struct {
	Token *oauth2.Token
	User  User
}

// AccessToken returns the access token or an empty string.
func (s *Session) AccessToken() string {
	if s == nil || s.Token == nil {
		return ""
	}
	return s.Token.AccessToken
}

// RefreshToken returns the refresh token or an empty string.
func (s *Session) RefreshToken() string {
	if s == nil || s.Token == nil {
		return ""
	}
	return s.Token.RefreshToken
}

// State returns Authenticated when an access token is held.
func (s *Session) State() State {
	if s.AccessToken() == "" {
		return Anonymous
	}
	return Authenticated
}

// Snapshot reads all session fields from the store.
func Snapshot(ctx context.Context, store Store) *Session {
	ret := &Session{}
	accessToken, _ := store.LookupToken(ctx)
	refreshToken, _ := store.LookupRefreshToken(ctx)
	if accessToken != "" || refreshToken != "" {
		ret.Token = &oauth2.Token{AccessToken: accessToken, RefreshToken: refreshToken, TokenType: "Bearer"}
	}
	if user, ok := store.LookupUser(ctx); ok {
		ret.User = *user
	}
	return ret
}

// Establish writes a freshly issued login into the store.
func Establish(ctx context.Context, store Store, token *oauth2.Token, user *User) error {
	if err := store.SetToken(ctx, token.AccessToken); err != nil {
		return err
	}
	if err := store.SetRefreshToken(ctx, token.RefreshToken); err != nil {
		return err
	}
	return store.SetUser(ctx, user)
}
