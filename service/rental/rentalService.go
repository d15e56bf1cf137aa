package rentalsvc

import (
	"context"
	"errors"
	"time"

	"github.com/aleksiojala-maker/hihoneyapp/model"
	paymentrepo "github.com/aleksiojala-maker/hihoneyapp/repository/payment"
	productrepo "github.com/aleksiojala-maker/hihoneyapp/repository/product"
	rentalrepo "github.com/aleksiojala-maker/hihoneyapp/repository/rental"
	"github.com/aleksiojala-maker/hihoneyapp/service/pricing"
)

// errors used by controllers

type ErrCode string

const (
	ErrNotFound        ErrCode = "NOT_FOUND"
	ErrProductNotFound ErrCode = "PRODUCT_NOT_FOUND"
	ErrInvalidStatus   ErrCode = "INVALID_STATUS"
	ErrInvalidRange    ErrCode = "INVALID_RANGE"
	ErrPaymentDeclined ErrCode = "PAYMENT_DECLINED"
)

type codedError struct{ code ErrCode }

func (e codedError) Error() string { return string(e.code) }
func (e codedError) Code() ErrCode { return e.code }
func makeErr(c ErrCode) error      { return codedError{code: c} }

// Code extracts the error code, or "" for uncoded errors.
func Code(err error) ErrCode {
	var ce interface{ Code() ErrCode }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}

// AdminBooking is an operator-entered reservation or block. It bypasses the
// cart and the gateway entirely; admin bookings are assumed pre-settled.
type AdminBooking struct {
	ProductID string
	Customer  string
	StartDate time.Time
	EndDate   time.Time
	Status    model.RentalStatus
}

type Stats struct {
	TotalRentals int          `json:"total_rentals"`
	TotalRevenue float64      `json:"total_revenue"`
	Stores       []StoreStats `json:"stores"`
}

type StoreStats struct {
	StoreID   string  `json:"store_id"`
	StoreName string  `json:"store_name"`
	Rentals   int     `json:"rentals"`
	Revenue   float64 `json:"revenue"`
}

type Ledger interface {
	List(ctx context.Context) ([]model.Rental, error)
	ListByUser(ctx context.Context, userID string) ([]model.Rental, error)
	Get(ctx context.Context, id string) (*model.Rental, error)
	Create(ctx context.Context, r model.Rental) (*model.Rental, error)
	Update(ctx context.Context, id string, patch model.RentalPatch) (*model.Rental, error)
	Delete(ctx context.Context, id string) error
}

type Catalog interface {
	Get(ctx context.Context, id string) (*model.Product, error)
}

type Gateway interface {
	Charge(ctx context.Context, amount float64, card model.CardDetails) error
}

type Stores interface {
	List() []model.Store
}

type Service interface {
	List(ctx context.Context) ([]model.Rental, error)
	ListByUser(ctx context.Context, userID string) ([]model.Rental, error)
	Update(ctx context.Context, id string, patch model.RentalPatch) (*model.Rental, error)
	Delete(ctx context.Context, id string) error

	// MarkPaid upgrades a pay-at-store rental to paid after charging the
	// stored total.
	MarkPaid(ctx context.Context, id string, card model.CardDetails) (*model.Rental, error)

	// AdminBook records a manual booking at the admin price:
	// (ceil(|end-start| in days)+1) * pricePerDay.
	AdminBook(ctx context.Context, b AdminBooking) (*model.Rental, error)

	Stats(ctx context.Context) (*Stats, error)
}

type service struct {
	ledger  Ledger
	catalog Catalog
	gateway Gateway
	stores  Stores
}

func New(ledger Ledger, catalog Catalog, gateway Gateway, stores Stores) Service {
	return &service{ledger: ledger, catalog: catalog, gateway: gateway, stores: stores}
}

func (s *service) List(ctx context.Context) ([]model.Rental, error) {
	return s.ledger.List(ctx)
}

func (s *service) ListByUser(ctx context.Context, userID string) ([]model.Rental, error) {
	return s.ledger.ListByUser(ctx, userID)
}

func (s *service) Update(ctx context.Context, id string, patch model.RentalPatch) (*model.Rental, error) {
	if patch.Status != nil && !patch.Status.Valid() {
		return nil, makeErr(ErrInvalidStatus)
	}
	r, err := s.ledger.Update(ctx, id, patch)
	if errors.Is(err, rentalrepo.ErrNotFound) {
		return nil, makeErr(ErrNotFound)
	}
	return r, err
}

func (s *service) Delete(ctx context.Context, id string) error {
	return s.ledger.Delete(ctx, id)
}

func (s *service) MarkPaid(ctx context.Context, id string, card model.CardDetails) (*model.Rental, error) {
	r, err := s.ledger.Get(ctx, id)
	if errors.Is(err, rentalrepo.ErrNotFound) {
		return nil, makeErr(ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	if r.PaymentStatus == model.PaymentPaid {
		return r, nil
	}

	if err := s.gateway.Charge(ctx, r.TotalPrice, card); err != nil {
		if errors.Is(err, paymentrepo.ErrDeclined) {
			return nil, makeErr(ErrPaymentDeclined)
		}
		return nil, err
	}

	paid := model.PaymentPaid
	return s.ledger.Update(ctx, id, model.RentalPatch{PaymentStatus: &paid})
}

func (s *service) AdminBook(ctx context.Context, b AdminBooking) (*model.Rental, error) {
	if b.StartDate.IsZero() || b.EndDate.IsZero() {
		return nil, makeErr(ErrInvalidRange)
	}
	if b.Status == "" {
		b.Status = model.RentalReserved
	}
	if !b.Status.Valid() {
		return nil, makeErr(ErrInvalidStatus)
	}

	product, err := s.catalog.Get(ctx, b.ProductID)
	if errors.Is(err, productrepo.ErrNotFound) {
		return nil, makeErr(ErrProductNotFound)
	}
	if err != nil {
		return nil, err
	}

	customer := b.Customer
	if customer == "" {
		customer = "Admin Block"
	}

	days := pricing.RentalDays(b.StartDate, b.EndDate)
	return s.ledger.Create(ctx, model.Rental{
		UserID:        customer,
		ProductID:     product.ID,
		StoreID:       product.StoreID,
		StartDate:     b.StartDate,
		EndDate:       b.EndDate,
		Status:        b.Status,
		PaymentStatus: model.PaymentPaid,
		TotalPrice:    float64(days) * product.PricePerDay,
	})
}

func (s *service) Stats(ctx context.Context) (*Stats, error) {
	rentals, err := s.ledger.List(ctx)
	if err != nil {
		return nil, err
	}

	out := &Stats{TotalRentals: len(rentals)}
	stores := s.stores.List()
	perStore := make(map[string]*StoreStats, len(stores))
	for _, st := range stores {
		perStore[st.ID] = &StoreStats{StoreID: st.ID, StoreName: st.Name}
	}

	for _, r := range rentals {
		out.TotalRevenue += r.TotalPrice
		if ss, ok := perStore[r.StoreID]; ok {
			ss.Rentals++
			ss.Revenue += r.TotalPrice
		}
	}
	for _, st := range stores {
		out.Stores = append(out.Stores, *perStore[st.ID])
	}
	return out, nil
}
