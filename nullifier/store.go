// Package nullifier tracks consumed proof nullifiers to prevent replay.
package nullifier

import (
	"context"
	"sync"

	"github.com/zkmint/go-zkmint/types"
)

// Store is a persistent set of consumed nullifiers. Contains and Insert
// for the same key must behave as if serialized; the gate checks first and
// inserts only after full verification succeeds.
type Store interface {
	Contains(ctx context.Context, n types.Scalar) (bool, error)
	Insert(ctx context.Context, n types.Scalar) error
}

// MemoryStore is an in-memory reference Store implementation.
type MemoryStore struct {
	mu   sync.RWMutex
	used map[types.Scalar]struct{}
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{used: make(map[types.Scalar]struct{})}
}

// Contains reports whether n was already consumed.
func (s *MemoryStore) Contains(_ context.Context, n types.Scalar) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.used[n]
	return ok, nil
}

// Insert marks n as consumed. Inserting an existing nullifier is a no-op.
func (s *MemoryStore) Insert(_ context.Context, n types.Scalar) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.used[n] = struct{}{}
	return nil
}

// Len returns the number of consumed nullifiers.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.used)
}
