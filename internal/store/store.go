package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
)

// Storage keys. Each key holds one JSON document.
const (
	KeyArticles       = "content-articles"
	KeyGallery        = "content-gallery"
	KeyEvents         = "content-events"
	KeyContentNextID  = "content-next-id"
	KeyDemoInquiries  = "demo-inquiries"
	KeyUserInquiries  = "user-inquiries"
	KeyFeedback       = "feedback"
	KeyAdminLockout   = "admin-lockout"
	KeyAdminSession   = "admin-session"
	KeyMetricsHistory = "metrics-history"
)

// ErrNotFound is returned when a key has never been written (or was deleted).
// An empty document stored under a key is not the same as an absent key.
var ErrNotFound = errors.New("store: key not found")

// CorruptError reports a stored value that no longer decodes as the expected
// shape. Callers decide whether to reseed; the store never repairs silently.
type CorruptError struct {
	Key string
	Err error
}

func (e CorruptError) Error() string {
	return fmt.Sprintf("store: corrupt value at %q: %v", e.Key, e.Err)
}

func (e CorruptError) Unwrap() error { return e.Err }

func IsCorrupt(err error) bool {
	var ce CorruptError
	return errors.As(err, &ce)
}

// Store is a key-value store of JSON documents.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// LoadJSON reads key and decodes into out. Absent keys return ErrNotFound;
// values that fail to decode return a CorruptError.
func LoadJSON(ctx context.Context, s Store, key string, out interface{}) error {
	raw, err := s.Get(ctx, key)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return CorruptError{Key: key, Err: err}
	}
	return nil
}

// SaveJSON encodes value and writes it under key in one call.
func SaveJSON(ctx context.Context, s Store, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return s.Put(ctx, key, raw)
}

// Memory is an in-process Store used in tests and as the fallback when no
// database is configured at all.
type Memory struct {
	mu     sync.RWMutex
	values map[string][]byte
}

func NewMemory() *Memory {
	return &Memory{values: map[string][]byte{}}
}

func (m *Memory) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, ok := m.values[key]
	if !ok {
		return nil, ErrNotFound
	}
	copied := make([]byte, len(value))
	copy(copied, value)
	return copied, nil
}

func (m *Memory) Put(ctx context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := make([]byte, len(value))
	copy(copied, value)
	m.values[key] = copied
	return nil
}

func (m *Memory) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}
