// Package store is the key-value layer every repository writes through.
// Values are JSON blobs under a flat string namespace.
package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
)

// Store is a flat key-value namespace of raw JSON blobs.
type Store interface {
	// Load returns the stored bytes and whether the key exists.
	Load(ctx context.Context, key string) ([]byte, bool, error)
	Save(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	// Atomic runs fn against a store whose writes become visible together,
	// and only if fn returns nil.
	Atomic(ctx context.Context, fn func(tx Store) error) error
}

var jsonNull = []byte("null")

// Get decodes the value under key. A missing key, a stored null, a load
// failure or a value that does not decode into T all yield def.
func Get[T any](ctx context.Context, s Store, key string, def T) T {
	raw, ok, err := s.Load(ctx, key)
	if err != nil || !ok || bytes.Equal(bytes.TrimSpace(raw), jsonNull) {
		return def
	}
	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		return def
	}
	return out
}

// Set encodes value and writes it under key.
func Set[T any](ctx context.Context, s Store, key string, value T) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := s.Save(ctx, key, raw); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// Scoped prefixes every key with "prefix:". Each profile gets its own scope.
func Scoped(s Store, prefix string) Store {
	return &scopedStore{inner: s, prefix: prefix}
}

type scopedStore struct {
	inner  Store
	prefix string
}

func (s *scopedStore) key(k string) string {
	return s.prefix + ":" + k
}

func (s *scopedStore) Load(ctx context.Context, key string) ([]byte, bool, error) {
	return s.inner.Load(ctx, s.key(key))
}

func (s *scopedStore) Save(ctx context.Context, key string, value []byte) error {
	return s.inner.Save(ctx, s.key(key), value)
}

func (s *scopedStore) Delete(ctx context.Context, key string) error {
	return s.inner.Delete(ctx, s.key(key))
}

func (s *scopedStore) Atomic(ctx context.Context, fn func(tx Store) error) error {
	return s.inner.Atomic(ctx, func(tx Store) error {
		return fn(Scoped(tx, s.prefix))
	})
}
