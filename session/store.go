package session

import (
	"context"
	"sync"
)

// Store is a pluggable persistence layer for the session fields.
// Lookups never fail: a value that cannot be read is reported as absent.
type Store interface {
	LookupToken(ctx context.Context) (string, bool)
	LookupRefreshToken(ctx context.Context) (string, bool)
	LookupUser(ctx context.Context) (*User, bool)
	SetToken(ctx context.Context, token string) error
	SetRefreshToken(ctx context.Context, token string) error
	SetUser(ctx context.Context, user *User) error
	// Clear removes all fields; clearing an empty store is not an error.
	Clear(ctx context.Context) error
}

// record is the serialized form shared by persistent stores.
type record struct {
	AccessToken  string `json:"accessToken,omitempty"`
	RefreshToken string `json:"refreshToken,omitempty"`
	User         *User  `json:"user,omitempty"`
}

type MemoryStoreOption func(*memoryStore)

// WithUser seeds the store with a user profile.
func WithUser(user *User) MemoryStoreOption {
	return func(m *memoryStore) {
		m.record.User = user
	}
}

// WithTokens seeds the store with tokens.
func WithTokens(accessToken, refreshToken string) MemoryStoreOption {
	return func(m *memoryStore) {
		m.record.AccessToken = accessToken
		m.record.RefreshToken = refreshToken
	}
}

type memoryStore struct {
	mu     sync.RWMutex
	record record
}

func (m *memoryStore) LookupToken(_ context.Context) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.record.AccessToken, m.record.AccessToken != ""
}

func (m *memoryStore) LookupRefreshToken(_ context.Context) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.record.RefreshToken, m.record.RefreshToken != ""
}

func (m *memoryStore) LookupUser(_ context.Context) (*User, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.record.User == nil {
		return &User{}, false
	}
	user := *m.record.User
	return &user, true
}

func (m *memoryStore) SetToken(_ context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record.AccessToken = token
	return nil
}

func (m *memoryStore) SetRefreshToken(_ context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record.RefreshToken = token
	return nil
}

func (m *memoryStore) SetUser(_ context.Context, user *User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if user == nil {
		m.record.User = nil
		return nil
	}
	clone := *user
	m.record.User = &clone
	return nil
}

func (m *memoryStore) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record = record{}
	return nil
}

func (m *memoryStore) snapshot() record {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ret := m.record
	if ret.User != nil {
		user := *ret.User
		ret.User = &user
	}
	return ret
}

func (m *memoryStore) restore(r record) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record = r
}

// NewMemoryStore returns a process-local store.
func NewMemoryStore(options ...MemoryStoreOption) Store {
	return newMemoryStore(options...)
}

func newMemoryStore(options ...MemoryStoreOption) *memoryStore {
	ret := &memoryStore{}
	for _, opt := range options {
		opt(ret)
	}
	return ret
}
