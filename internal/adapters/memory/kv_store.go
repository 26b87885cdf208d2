// Package memory provides an in-process KeyValueStore.
// It backs ephemeral sessions and tests, and can emulate a storage quota.
package memory

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/example/piste/internal/ports/secondary"
)

// ErrQuotaExceeded is returned by Set when the write would exceed the quota.
var ErrQuotaExceeded = errors.New("storage quota exceeded")

// KeyValueStore is a map-backed KeyValueStore.
type KeyValueStore struct {
	mu         sync.RWMutex
	data       map[string]string
	quotaBytes int
}

// NewKeyValueStore creates an empty store. quotaBytes limits the summed
// length of keys and values; 0 means unlimited.
func NewKeyValueStore(quotaBytes int) *KeyValueStore {
	return &KeyValueStore{
		data:       make(map[string]string),
		quotaBytes: quotaBytes,
	}
}

// Get returns the value for key.
func (s *KeyValueStore) Get(ctx context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	return v, ok, nil
}

// Set stores value under key.
func (s *KeyValueStore) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.quotaBytes > 0 {
		used := s.usedLocked()
		if old, ok := s.data[key]; ok {
			used -= len(key) + len(old)
		}
		if used+len(key)+len(value) > s.quotaBytes {
			return fmt.Errorf("failed to set %s: %w", key, ErrQuotaExceeded)
		}
	}

	s.data[key] = value
	return nil
}

// Remove deletes key.
func (s *KeyValueStore) Remove(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}

// Keys lists stored keys with the given prefix, sorted.
func (s *KeyValueStore) Keys(ctx context.Context, prefix string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var keys []string
	for k := range s.data {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys, nil
}

func (s *KeyValueStore) usedLocked() int {
	total := 0
	for k, v := range s.data {
		total += len(k) + len(v)
	}
	return total
}

// Ensure KeyValueStore implements the interface.
var _ secondary.KeyValueStore = (*KeyValueStore)(nil)
