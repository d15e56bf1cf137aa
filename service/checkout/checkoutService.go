package checkoutsvc

import (
	"context"
	"errors"
	"time"

	"github.com/aleksiojala-maker/hihoneyapp/model"
	paymentrepo "github.com/aleksiojala-maker/hihoneyapp/repository/payment"
	productrepo "github.com/aleksiojala-maker/hihoneyapp/repository/product"
	"github.com/aleksiojala-maker/hihoneyapp/service/pricing"
	"github.com/aleksiojala-maker/hihoneyapp/util/dates"
	"github.com/aleksiojala-maker/hihoneyapp/util/idgen"
)

// errors used by controllers

type ErrCode string

const (
	ErrProductNotFound ErrCode = "PRODUCT_NOT_FOUND"
	ErrInvalidRange    ErrCode = "INVALID_RANGE"
	ErrUnavailable     ErrCode = "UNAVAILABLE"
	ErrEmptyCart       ErrCode = "EMPTY_CART"
	ErrCardRequired    ErrCode = "CARD_REQUIRED"
	ErrPaymentDeclined ErrCode = "PAYMENT_DECLINED"
)

type codedError struct{ code ErrCode }

func (e codedError) Error() string { return string(e.code) }
func (e codedError) Code() ErrCode { return e.code }
func makeErr(c ErrCode) error      { return codedError{code: c} }

func Code(err error) ErrCode {
	var ce interface{ Code() ErrCode }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}

// Method is how the customer settles: a card charge now, or at the store on
// pickup.
type Method string

const (
	PayByCard  Method = "card"
	PayAtStore Method = "store"
)

// ItemRequest is a dated product selection; times are optional and default
// to noon.
type ItemRequest struct {
	ProductID  string
	StartDate  string // YYYY-MM-DD
	EndDate    string // YYYY-MM-DD
	PickupTime string // HH:MM
	ReturnTime string // HH:MM
}

type CartView struct {
	Items []model.CartItem `json:"items"`
	Total float64          `json:"total"`
}

type Carts interface {
	Get(ctx context.Context, userID string) ([]model.CartItem, error)
	Add(ctx context.Context, userID string, item model.CartItem) error
	Remove(ctx context.Context, userID, itemID string) error
	Clear(ctx context.Context, userID string) error
}

type Catalog interface {
	Get(ctx context.Context, id string) (*model.Product, error)
}

type Ledger interface {
	Create(ctx context.Context, r model.Rental) (*model.Rental, error)
}

type Availability interface {
	Check(ctx context.Context, productID string, start, end time.Time) (bool, error)
}

type Gateway interface {
	Charge(ctx context.Context, amount float64, card model.CardDetails) error
}

type Service interface {
	// AddToCart validates the selection (dates, availability) and stages
	// it with a product snapshot and a computed total.
	AddToCart(ctx context.Context, userID string, req ItemRequest) (*model.CartItem, error)

	ViewCart(ctx context.Context, userID string) (*CartView, error)
	RemoveFromCart(ctx context.Context, userID, itemID string) error

	// Checkout commits the whole cart: one charge for the cart total when
	// paying by card (a decline aborts with no ledger writes and the cart
	// untouched), then one ledger record per item, then the cart is
	// cleared.
	Checkout(ctx context.Context, userID string, method Method, card *model.CardDetails) ([]model.Rental, error)

	// BookNow is the degenerate single-item path from the product page.
	// It re-validates availability itself, guarding against a stale
	// calendar on the client.
	BookNow(ctx context.Context, userID string, req ItemRequest, method Method, card *model.CardDetails) (*model.Rental, error)
}

type service struct {
	carts   Carts
	catalog Catalog
	ledger  Ledger
	avail   Availability
	gateway Gateway
	ids     idgen.Generator
}

func New(carts Carts, catalog Catalog, ledger Ledger, avail Availability, gateway Gateway, ids idgen.Generator) Service {
	return &service{carts: carts, catalog: catalog, ledger: ledger, avail: avail, gateway: gateway, ids: ids}
}

func (s *service) AddToCart(ctx context.Context, userID string, req ItemRequest) (*model.CartItem, error) {
	item, err := s.buildItem(ctx, req)
	if err != nil {
		return nil, err
	}
	if err := s.carts.Add(ctx, userID, *item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *service) ViewCart(ctx context.Context, userID string) (*CartView, error) {
	items, err := s.carts.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	view := &CartView{Items: items}
	for _, it := range items {
		view.Total += it.TotalPrice
	}
	return view, nil
}

func (s *service) RemoveFromCart(ctx context.Context, userID, itemID string) error {
	return s.carts.Remove(ctx, userID, itemID)
}

func (s *service) Checkout(ctx context.Context, userID string, method Method, card *model.CardDetails) ([]model.Rental, error) {
	items, err := s.carts.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, makeErr(ErrEmptyCart)
	}

	var total float64
	for _, it := range items {
		total += it.TotalPrice
	}

	payStatus := model.PaymentPending
	if method == PayByCard {
		if card == nil {
			return nil, makeErr(ErrCardRequired)
		}
		if err := s.gateway.Charge(ctx, total, *card); err != nil {
			if errors.Is(err, paymentrepo.ErrDeclined) {
				return nil, makeErr(ErrPaymentDeclined)
			}
			return nil, err
		}
		payStatus = model.PaymentPaid
	}

	created := make([]model.Rental, 0, len(items))
	for _, it := range items {
		r, err := s.commitItem(ctx, userID, it, payStatus)
		if err != nil {
			// Cart is left intact so the user can retry; rentals already
			// written stay, the same partial-commit gap the UI had.
			return created, err
		}
		created = append(created, *r)
	}

	if err := s.carts.Clear(ctx, userID); err != nil {
		return created, err
	}
	return created, nil
}

func (s *service) BookNow(ctx context.Context, userID string, req ItemRequest, method Method, card *model.CardDetails) (*model.Rental, error) {
	// buildItem re-checks availability against the live ledger, so a
	// selection made on a stale calendar is rejected here.
	item, err := s.buildItem(ctx, req)
	if err != nil {
		return nil, err
	}

	payStatus := model.PaymentPending
	if method == PayByCard {
		if card == nil {
			return nil, makeErr(ErrCardRequired)
		}
		if err := s.gateway.Charge(ctx, item.TotalPrice, *card); err != nil {
			if errors.Is(err, paymentrepo.ErrDeclined) {
				return nil, makeErr(ErrPaymentDeclined)
			}
			return nil, err
		}
		payStatus = model.PaymentPaid
	}

	return s.commitItem(ctx, userID, *item, payStatus)
}

// buildItem resolves the product, parses and orders the interval, checks
// availability and prices the selection.
func (s *service) buildItem(ctx context.Context, req ItemRequest) (*model.CartItem, error) {
	product, err := s.catalog.Get(ctx, req.ProductID)
	if errors.Is(err, productrepo.ErrNotFound) {
		return nil, makeErr(ErrProductNotFound)
	}
	if err != nil {
		return nil, err
	}

	start, err := dates.Combine(req.StartDate, req.PickupTime)
	if err != nil {
		return nil, makeErr(ErrInvalidRange)
	}
	end, err := dates.Combine(req.EndDate, req.ReturnTime)
	if err != nil {
		return nil, makeErr(ErrInvalidRange)
	}
	if start.After(end) {
		return nil, makeErr(ErrInvalidRange)
	}

	ok, err := s.avail.Check(ctx, product.ID, start, end)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, makeErr(ErrUnavailable)
	}

	return &model.CartItem{
		ID:         s.ids.NewID(),
		Product:    *product,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		PickupTime: req.PickupTime,
		ReturnTime: req.ReturnTime,
		TotalPrice: pricing.Estimate(product.PricePerDay, req.StartDate, req.EndDate),
	}, nil
}

func (s *service) commitItem(ctx context.Context, userID string, it model.CartItem, payStatus model.PaymentStatus) (*model.Rental, error) {
	start, err := dates.Combine(it.StartDate, it.PickupTime)
	if err != nil {
		return nil, makeErr(ErrInvalidRange)
	}
	end, err := dates.Combine(it.EndDate, it.ReturnTime)
	if err != nil {
		return nil, makeErr(ErrInvalidRange)
	}
	return s.ledger.Create(ctx, model.Rental{
		UserID:        userID,
		ProductID:     it.Product.ID,
		StoreID:       it.Product.StoreID,
		StartDate:     start,
		EndDate:       end,
		Status:        model.RentalActive,
		PaymentStatus: payStatus,
		TotalPrice:    it.TotalPrice,
	})
}
