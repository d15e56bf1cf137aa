// repository/rental/repo.go
package rentalrepo

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/aleksiojala-maker/hihoneyapp/model"
	"github.com/aleksiojala-maker/hihoneyapp/util/idgen"
)

var ErrNotFound = errors.New("rental not found")

// Repo is the booking ledger: the authoritative collection of rental
// records. There is no foreign-key enforcement against the catalog.
type Repo interface {
	List(ctx context.Context) ([]model.Rental, error)
	ListByProduct(ctx context.Context, productID string) ([]model.Rental, error)
	ListByUser(ctx context.Context, userID string) ([]model.Rental, error)
	Get(ctx context.Context, id string) (*model.Rental, error)
	// Create assigns an id and appends. The write completes "later" from
	// the caller's point of view (simulated latency on the memory backend).
	Create(ctx context.Context, r model.Rental) (*model.Rental, error)
	// Update merges non-nil patch fields into the stored record.
	Update(ctx context.Context, id string, patch model.RentalPatch) (*model.Rental, error)
	// Delete removes by id; deleting an absent id is a silent no-op.
	Delete(ctx context.Context, id string) error
}

// Memory is the default process-lifetime ledger.
type Memory struct {
	mu      sync.Mutex
	rentals []model.Rental
	ids     idgen.Generator
	latency time.Duration
}

// NewMemory builds an in-memory ledger. latency is applied to every write
// to model the asynchronous store the UI was written against; pass 0 in
// tests.
func NewMemory(ids idgen.Generator, latency time.Duration, seed []model.Rental) *Memory {
	m := &Memory{ids: ids, latency: latency}
	m.rentals = append(m.rentals, seed...)
	return m
}

// settle blocks for the simulated write latency, honouring cancellation.
func (m *Memory) settle(ctx context.Context) error {
	if m.latency <= 0 {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(m.latency):
		return nil
	}
}

func (m *Memory) List(ctx context.Context) ([]model.Rental, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]model.Rental, len(m.rentals))
	copy(out, m.rentals)
	return out, nil
}

func (m *Memory) ListByProduct(ctx context.Context, productID string) ([]model.Rental, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []model.Rental
	for _, r := range m.rentals {
		if r.ProductID == productID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *Memory) ListByUser(ctx context.Context, userID string) ([]model.Rental, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []model.Rental
	for _, r := range m.rentals {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *Memory) Get(ctx context.Context, id string) (*model.Rental, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.rentals {
		if r.ID == id {
			cp := r
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) Create(ctx context.Context, r model.Rental) (*model.Rental, error) {
	if err := m.settle(ctx); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	r.ID = m.ids.NewID()
	m.rentals = append(m.rentals, r)
	cp := r
	return &cp, nil
}

func (m *Memory) Update(ctx context.Context, id string, patch model.RentalPatch) (*model.Rental, error) {
	if err := m.settle(ctx); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.rentals {
		if m.rentals[i].ID != id {
			continue
		}
		applyPatch(&m.rentals[i], patch)
		cp := m.rentals[i]
		return &cp, nil
	}
	return nil, ErrNotFound
}

func (m *Memory) Delete(ctx context.Context, id string) error {
	if err := m.settle(ctx); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	kept := m.rentals[:0]
	for _, r := range m.rentals {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	m.rentals = kept
	return nil
}

func applyPatch(r *model.Rental, patch model.RentalPatch) {
	if patch.StartDate != nil {
		r.StartDate = *patch.StartDate
	}
	if patch.EndDate != nil {
		r.EndDate = *patch.EndDate
	}
	if patch.Status != nil {
		r.Status = *patch.Status
	}
	if patch.PaymentStatus != nil {
		r.PaymentStatus = *patch.PaymentStatus
	}
	if patch.TotalPrice != nil {
		r.TotalPrice = *patch.TotalPrice
	}
}
