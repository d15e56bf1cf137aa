package catalogsvc

import (
	"context"
	"errors"

	"github.com/aleksiojala-maker/hihoneyapp/model"
	productrepo "github.com/aleksiojala-maker/hihoneyapp/repository/product"
)

var (
	ErrInvalid      = errors.New("invalid product payload")
	ErrUnknownStore = errors.New("unknown store")
	// ErrNotFound mirrors the repository sentinel so callers need not
	// import the repo package.
	ErrNotFound = productrepo.ErrNotFound
)

type Repo interface {
	List(ctx context.Context, storeID string) ([]model.Product, error)
	Get(ctx context.Context, id string) (*model.Product, error)
	Create(ctx context.Context, p model.Product) (*model.Product, error)
	Update(ctx context.Context, id string, patch model.ProductPatch) (*model.Product, error)
	Delete(ctx context.Context, id string) error
}

type Stores interface {
	Get(id string) (*model.Store, bool)
}

type Service interface {
	List(ctx context.Context, storeID string) ([]model.Product, error)
	Get(ctx context.Context, id string) (*model.Product, error)
	Create(ctx context.Context, p model.Product) (*model.Product, error)
	Update(ctx context.Context, id string, patch model.ProductPatch) (*model.Product, error)
	// Delete removes the product only. Rentals referencing it are left in
	// the ledger untouched.
	Delete(ctx context.Context, id string) error
}

type service struct {
	r      Repo
	stores Stores
}

func New(r Repo, stores Stores) Service { return &service{r: r, stores: stores} }

func (s *service) List(ctx context.Context, storeID string) ([]model.Product, error) {
	return s.r.List(ctx, storeID)
}

func (s *service) Get(ctx context.Context, id string) (*model.Product, error) {
	return s.r.Get(ctx, id)
}

func (s *service) Create(ctx context.Context, p model.Product) (*model.Product, error) {
	if p.Title == "" || p.StoreID == "" || p.PricePerDay < 0 || !p.Category.Valid() {
		return nil, ErrInvalid
	}
	if _, ok := s.stores.Get(p.StoreID); !ok {
		return nil, ErrUnknownStore
	}
	return s.r.Create(ctx, p)
}

func (s *service) Update(ctx context.Context, id string, patch model.ProductPatch) (*model.Product, error) {
	if patch.Category != nil && !patch.Category.Valid() {
		return nil, ErrInvalid
	}
	if patch.PricePerDay != nil && *patch.PricePerDay < 0 {
		return nil, ErrInvalid
	}
	if patch.StoreID != nil {
		if _, ok := s.stores.Get(*patch.StoreID); !ok {
			return nil, ErrUnknownStore
		}
	}
	return s.r.Update(ctx, id, patch)
}

func (s *service) Delete(ctx context.Context, id string) error {
	return s.r.Delete(ctx, id)
}
