// repository/product/repo.go
package productrepo

import (
	"context"
	"errors"
	"sync"

	"github.com/aleksiojala-maker/hihoneyapp/model"
	"github.com/aleksiojala-maker/hihoneyapp/util/idgen"
)

var ErrNotFound = errors.New("product not found")

type Repo interface {
	List(ctx context.Context, storeID string) ([]model.Product, error)
	Get(ctx context.Context, id string) (*model.Product, error)
	Create(ctx context.Context, p model.Product) (*model.Product, error)
	Update(ctx context.Context, id string, patch model.ProductPatch) (*model.Product, error)
	// Delete removes the product if present. It deliberately does NOT
	// cascade to rentals; existing rentals keep referencing the id.
	Delete(ctx context.Context, id string) error
}

// Memory keeps the catalog in a process-lifetime slice.
type Memory struct {
	mu       sync.Mutex
	products []model.Product
	ids      idgen.Generator
}

func NewMemory(ids idgen.Generator, seed []model.Product) *Memory {
	m := &Memory{ids: ids}
	m.products = append(m.products, seed...)
	return m
}

func (m *Memory) List(ctx context.Context, storeID string) ([]model.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []model.Product
	for _, p := range m.products {
		if storeID == "" || p.StoreID == storeID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *Memory) Get(ctx context.Context, id string) (*model.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.products {
		if p.ID == id {
			cp := p
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) Create(ctx context.Context, p model.Product) (*model.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p.ID = m.ids.NewID()
	m.products = append(m.products, p)
	cp := p
	return &cp, nil
}

func (m *Memory) Update(ctx context.Context, id string, patch model.ProductPatch) (*model.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.products {
		if m.products[i].ID != id {
			continue
		}
		applyPatch(&m.products[i], patch)
		cp := m.products[i]
		return &cp, nil
	}
	return nil, ErrNotFound
}

func (m *Memory) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	kept := m.products[:0]
	for _, p := range m.products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	m.products = kept
	return nil
}

func applyPatch(p *model.Product, patch model.ProductPatch) {
	if patch.Title != nil {
		p.Title = *patch.Title
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}
	if patch.StoreID != nil {
		p.StoreID = *patch.StoreID
	}
	if patch.PricePerDay != nil {
		p.PricePerDay = *patch.PricePerDay
	}
	if patch.ImageURL != nil {
		p.ImageURL = *patch.ImageURL
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Features != nil {
		p.Features = *patch.Features
	}
	if patch.Collection != nil {
		p.Collection = *patch.Collection
	}
	if patch.BuyPrice != nil {
		p.BuyPrice = patch.BuyPrice
	}
}
