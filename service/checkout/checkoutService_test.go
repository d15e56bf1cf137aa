package checkoutsvc_test

import (
	"context"
	"testing"
	"time"

	"github.com/aleksiojala-maker/hihoneyapp/model"
	cartrepo "github.com/aleksiojala-maker/hihoneyapp/repository/cart"
	paymentrepo "github.com/aleksiojala-maker/hihoneyapp/repository/payment"
	productrepo "github.com/aleksiojala-maker/hihoneyapp/repository/product"
	checkoutsvc "github.com/aleksiojala-maker/hihoneyapp/service/checkout"
	"github.com/aleksiojala-maker/hihoneyapp/util/idgen"
	"github.com/stretchr/testify/require"
)

type catalogMock struct {
	products map[string]model.Product
}

func (m *catalogMock) Get(_ context.Context, id string) (*model.Product, error) {
	p, ok := m.products[id]
	if !ok {
		return nil, productrepo.ErrNotFound
	}
	return &p, nil
}

type ledgerMock struct {
	created []model.Rental
	fail    error
}

func (m *ledgerMock) Create(_ context.Context, r model.Rental) (*model.Rental, error) {
	if m.fail != nil {
		return nil, m.fail
	}
	r.ID = "r" + string(rune('1'+len(m.created)))
	m.created = append(m.created, r)
	return &r, nil
}

type availMock struct {
	available bool
	calls     int
}

func (m *availMock) Check(context.Context, string, time.Time, time.Time) (bool, error) {
	m.calls++
	return m.available, nil
}

type gatewayMock struct {
	charged []float64
	fail    error
}

func (m *gatewayMock) Charge(_ context.Context, amount float64, _ model.CardDetails) error {
	if m.fail != nil {
		return m.fail
	}
	m.charged = append(m.charged, amount)
	return nil
}

type fixture struct {
	svc     checkoutsvc.Service
	carts   *cartrepo.Memory
	ledger  *ledgerMock
	avail   *availMock
	gateway *gatewayMock
}

func newFixture() *fixture {
	f := &fixture{
		carts: cartrepo.NewMemory(),
		ledger: &ledgerMock{},
		avail:  &availMock{available: true},
		gateway: &gatewayMock{},
	}
	catalog := &catalogMock{products: map[string]model.Product{
		"p1": {ID: "p1", StoreID: "s1", Title: "Gown", PricePerDay: 40},
		"p2": {ID: "p2", StoreID: "s1", Title: "Veil", PricePerDay: 10},
	}}
	f.svc = checkoutsvc.New(f.carts, catalog, f.ledger, f.avail, f.gateway, idgen.NewSequence("item"))
	return f
}

func req(productID string) checkoutsvc.ItemRequest {
	return checkoutsvc.ItemRequest{
		ProductID: productID,
		StartDate: "2026-06-01",
		EndDate:   "2026-06-03",
	}
}

var card = &model.CardDetails{Number: "4242424242424242", Name: "A B", Expiry: "12/27", CVC: "123"}

func TestAddToCart_StagesPricedItem(t *testing.T) {
	f := newFixture()

	item, err := f.svc.AddToCart(context.Background(), "u1", req("p1"))
	require.NoError(t, err)
	require.Equal(t, "item-1", item.ID)
	require.Equal(t, "p1", item.Product.ID)
	require.Equal(t, float64(120), item.TotalPrice) // 3 days * 40

	view, err := f.svc.ViewCart(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	require.Equal(t, float64(120), view.Total)
}

func TestAddToCart_Errors(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.svc.AddToCart(ctx, "u1", req("missing"))
	require.Equal(t, checkoutsvc.ErrProductNotFound, checkoutsvc.Code(err))

	inverted := req("p1")
	inverted.StartDate, inverted.EndDate = inverted.EndDate, inverted.StartDate
	_, err = f.svc.AddToCart(ctx, "u1", inverted)
	require.Equal(t, checkoutsvc.ErrInvalidRange, checkoutsvc.Code(err))

	f.avail.available = false
	_, err = f.svc.AddToCart(ctx, "u1", req("p1"))
	require.Equal(t, checkoutsvc.ErrUnavailable, checkoutsvc.Code(err))

	view, err := f.svc.ViewCart(ctx, "u1")
	require.NoError(t, err)
	require.Empty(t, view.Items, "rejected items must not be staged")
}

func TestCheckout_CardChargesOnceAndClearsCart(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.svc.AddToCart(ctx, "u1", req("p1")) // 120
	require.NoError(t, err)
	_, err = f.svc.AddToCart(ctx, "u1", req("p2")) // 30
	require.NoError(t, err)

	created, err := f.svc.Checkout(ctx, "u1", checkoutsvc.PayByCard, card)
	require.NoError(t, err)
	require.Len(t, created, 2)

	// One charge for the cart total, not one per item.
	require.Equal(t, []float64{150}, f.gateway.charged)

	for _, r := range created {
		require.Equal(t, model.RentalActive, r.Status)
		require.Equal(t, model.PaymentPaid, r.PaymentStatus)
		require.Equal(t, "u1", r.UserID)
	}

	view, err := f.svc.ViewCart(ctx, "u1")
	require.NoError(t, err)
	require.Empty(t, view.Items, "cart must be cleared after checkout")
}

func TestCheckout_DeclinedCardLeavesEverythingIntact(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.svc.AddToCart(ctx, "u1", req("p1"))
	require.NoError(t, err)

	f.gateway.fail = paymentrepo.ErrDeclined
	_, err = f.svc.Checkout(ctx, "u1", checkoutsvc.PayByCard, card)
	require.Equal(t, checkoutsvc.ErrPaymentDeclined, checkoutsvc.Code(err))

	require.Empty(t, f.ledger.created, "declined payment must write nothing to the ledger")

	view, err := f.svc.ViewCart(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, view.Items, 1, "cart must survive a declined payment")
}

func TestCheckout_PayAtStore(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.svc.AddToCart(ctx, "u1", req("p1"))
	require.NoError(t, err)

	created, err := f.svc.Checkout(ctx, "u1", checkoutsvc.PayAtStore, nil)
	require.NoError(t, err)
	require.Len(t, created, 1)
	require.Equal(t, model.PaymentPending, created[0].PaymentStatus)
	require.Empty(t, f.gateway.charged, "pay-at-store must not touch the gateway")
}

func TestCheckout_EmptyCartAndMissingCard(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.svc.Checkout(ctx, "u1", checkoutsvc.PayByCard, card)
	require.Equal(t, checkoutsvc.ErrEmptyCart, checkoutsvc.Code(err))

	_, err = f.svc.AddToCart(ctx, "u1", req("p1"))
	require.NoError(t, err)
	_, err = f.svc.Checkout(ctx, "u1", checkoutsvc.PayByCard, nil)
	require.Equal(t, checkoutsvc.ErrCardRequired, checkoutsvc.Code(err))
	require.Empty(t, f.gateway.charged)
}

func TestBookNow_RechecksAvailability(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	// The client picked dates from a calendar that has since gone stale.
	f.avail.available = false
	_, err := f.svc.BookNow(ctx, "u1", req("p1"), checkoutsvc.PayByCard, card)
	require.Equal(t, checkoutsvc.ErrUnavailable, checkoutsvc.Code(err))
	require.Equal(t, 1, f.avail.calls)
	require.Empty(t, f.ledger.created)
	require.Empty(t, f.gateway.charged)
}

func TestBookNow_CreatesSingleRental(t *testing.T) {
	f := newFixture()

	r, err := f.svc.BookNow(context.Background(), "u1", req("p1"), checkoutsvc.PayByCard, card)
	require.NoError(t, err)
	require.Equal(t, "p1", r.ProductID)
	require.Equal(t, model.RentalActive, r.Status)
	require.Equal(t, model.PaymentPaid, r.PaymentStatus)
	require.Equal(t, float64(120), r.TotalPrice)
	require.Equal(t, []float64{120}, f.gateway.charged)
	require.Len(t, f.ledger.created, 1)
}

func TestRemoveFromCart(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	item, err := f.svc.AddToCart(ctx, "u1", req("p1"))
	require.NoError(t, err)

	require.NoError(t, f.svc.RemoveFromCart(ctx, "u1", item.ID))

	view, err := f.svc.ViewCart(ctx, "u1")
	require.NoError(t, err)
	require.Empty(t, view.Items)
}
