// repository/cart/repo.go
package cartrepo

import (
	"context"
	"sync"

	"github.com/aleksiojala-maker/hihoneyapp/model"
)

// Store holds each user's transient pre-checkout selection, in insertion
// order. Items are discarded on checkout completion or explicit removal.
type Store interface {
	Get(ctx context.Context, userID string) ([]model.CartItem, error)
	Add(ctx context.Context, userID string, item model.CartItem) error
	Remove(ctx context.Context, userID, itemID string) error
	Clear(ctx context.Context, userID string) error
}

type Memory struct {
	mu    sync.Mutex
	carts map[string][]model.CartItem
}

func NewMemory() *Memory {
	return &Memory{carts: make(map[string][]model.CartItem)}
}

func (m *Memory) Get(ctx context.Context, userID string) ([]model.CartItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	items := m.carts[userID]
	out := make([]model.CartItem, len(items))
	copy(out, items)
	return out, nil
}

func (m *Memory) Add(ctx context.Context, userID string, item model.CartItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.carts[userID] = append(m.carts[userID], item)
	return nil
}

func (m *Memory) Remove(ctx context.Context, userID, itemID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	items := m.carts[userID]
	kept := items[:0]
	for _, it := range items {
		if it.ID != itemID {
			kept = append(kept, it)
		}
	}
	m.carts[userID] = kept
	return nil
}

func (m *Memory) Clear(ctx context.Context, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.carts, userID)
	return nil
}
