package session

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"github.com/viant/afs"
	"github.com/viant/scy"
	_ "github.com/viant/scy/kms/blowfish"
	"log/slog"
	"sync"
)

// FileStore persists the session as a JSON document at an afs URL, while
// serving reads from memory. When an encryption key is set (for example
// "blowfish://default") the document is encrypted with scy.
type FileStore struct {
	mu      sync.Mutex
	URL     string
	key     string
	fs      afs.Service
	secrets *scy.Service
	memory  *memoryStore
	logger  *slog.Logger
}

type FileStoreOption func(*FileStore)

// WithEncryptionKey enables at-rest encryption with the given scy key URL.
func WithEncryptionKey(key string) FileStoreOption {
	return func(f *FileStore) {
		f.key = key
	}
}

// WithFileSystem overrides the afs service.
func WithFileSystem(fs afs.Service) FileStoreOption {
	return func(f *FileStore) {
		f.fs = fs
	}
}

// WithFileLogger sets the logger used for persistence failures.
func WithFileLogger(logger *slog.Logger) FileStoreOption {
	return func(f *FileStore) {
		f.logger = logger
	}
}

// NewFileStore creates a Store persisted at URL and loads any existing session.
func NewFileStore(ctx context.Context, URL string, options ...FileStoreOption) (*FileStore, error) {
	ret := &FileStore{
		URL:     URL,
		fs:      afs.New(),
		secrets: scy.New(),
		memory:  newMemoryStore(),
		logger:  slog.Default(),
	}
	for _, opt := range options {
		opt(ret)
	}
	if err := ret.load(ctx); err != nil {
		return nil, fmt.Errorf("failed to load session %v: %w", URL, err)
	}
	return ret, nil
}

func (f *FileStore) LookupToken(ctx context.Context) (string, bool) {
	return f.memory.LookupToken(ctx)
}

func (f *FileStore) LookupRefreshToken(ctx context.Context) (string, bool) {
	return f.memory.LookupRefreshToken(ctx)
}

func (f *FileStore) LookupUser(ctx context.Context) (*User, bool) {
	return f.memory.LookupUser(ctx)
}

func (f *FileStore) SetToken(ctx context.Context, token string) error {
	return f.update(ctx, func(m *memoryStore) error { return m.SetToken(ctx, token) })
}

func (f *FileStore) SetRefreshToken(ctx context.Context, token string) error {
	return f.update(ctx, func(m *memoryStore) error { return m.SetRefreshToken(ctx, token) })
}

func (f *FileStore) SetUser(ctx context.Context, user *User) error {
	return f.update(ctx, func(m *memoryStore) error { return m.SetUser(ctx, user) })
}

// Clear empties the session and deletes the document.
func (f *FileStore) Clear(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	_ = f.memory.Clear(ctx)
	exists, err := f.fs.Exists(ctx, f.URL)
	if err != nil {
		return fmt.Errorf("failed to check session %v: %w", f.URL, err)
	}
	if !exists {
		return nil
	}
	if err = f.fs.Delete(ctx, f.URL); err != nil {
		return fmt.Errorf("failed to delete session %v: %w", f.URL, err)
	}
	return nil
}

// ---- persistence ----

// update applies change and persists it; memory is rolled back when the document cannot be written.
func (f *FileStore) update(ctx context.Context, change func(m *memoryStore) error) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	previous := f.memory.snapshot()
	if err := change(f.memory); err != nil {
		return err
	}
	if err := f.save(ctx); err != nil {
		f.memory.restore(previous)
		return err
	}
	return nil
}

// save writes the document; callers hold f.mu.
func (f *FileStore) save(ctx context.Context) error {
	data, err := json.MarshalIndent(f.memory.snapshot(), "", "  ")
	if err != nil {
		return err
	}
	if f.key != "" {
		resource := scy.NewResource(nil, f.URL, f.key)
		if err = f.secrets.Store(ctx, scy.NewSecret(string(data), resource)); err != nil {
			return fmt.Errorf("failed to store encrypted session %v: %w", f.URL, err)
		}
		return nil
	}
	if err = f.fs.Upload(ctx, f.URL, 0o600, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to store session %v: %w", f.URL, err)
	}
	return nil
}

func (f *FileStore) load(ctx context.Context) error {
	exists, err := f.fs.Exists(ctx, f.URL)
	if err != nil || !exists {
		return nil
	}
	var data []byte
	if f.key != "" {
		secret, err := f.secrets.Load(ctx, scy.NewResource(nil, f.URL, f.key))
		if err != nil {
			return err
		}
		data = []byte(secret.String())
	} else if data, err = f.fs.DownloadWithURL(ctx, f.URL); err != nil {
		return err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	var snap record
	if err = json.Unmarshal(data, &snap); err != nil {
		f.logger.Warn("discarding unreadable session", "url", f.URL, "error", err)
		return nil
	}
	f.memory.restore(snap)
	return nil
}
