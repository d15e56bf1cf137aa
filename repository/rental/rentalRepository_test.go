package rentalrepo_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aleksiojala-maker/hihoneyapp/model"
	rentalrepo "github.com/aleksiojala-maker/hihoneyapp/repository/rental"
	"github.com/aleksiojala-maker/hihoneyapp/util/idgen"
	"github.com/stretchr/testify/require"
)

func newLedger(seed ...model.Rental) *rentalrepo.Memory {
	return rentalrepo.NewMemory(idgen.NewSequence("r"), 0, seed)
}

func sampleRental(user, product string) model.Rental {
	start := time.Date(2026, time.June, 10, 12, 0, 0, 0, time.UTC)
	return model.Rental{
		UserID:        user,
		ProductID:     product,
		StoreID:       "s1",
		StartDate:     start,
		EndDate:       start.AddDate(0, 0, 2),
		Status:        model.RentalReserved,
		PaymentStatus: model.PaymentPending,
		TotalPrice:    120,
	}
}

func TestMemory_CreateAssignsID(t *testing.T) {
	m := newLedger()
	ctx := context.Background()

	a, err := m.Create(ctx, sampleRental("u1", "p1"))
	require.NoError(t, err)
	require.Equal(t, "r-1", a.ID)

	b, err := m.Create(ctx, sampleRental("u2", "p1"))
	require.NoError(t, err)
	require.Equal(t, "r-2", b.ID)

	all, err := m.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
}

func TestMemory_Filters(t *testing.T) {
	m := newLedger()
	ctx := context.Background()

	_, err := m.Create(ctx, sampleRental("u1", "p1"))
	require.NoError(t, err)
	_, err = m.Create(ctx, sampleRental("u1", "p2"))
	require.NoError(t, err)
	_, err = m.Create(ctx, sampleRental("u2", "p1"))
	require.NoError(t, err)

	byProduct, err := m.ListByProduct(ctx, "p1")
	require.NoError(t, err)
	require.Len(t, byProduct, 2)

	byUser, err := m.ListByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, byUser, 2)

	none, err := m.ListByUser(ctx, "nobody")
	require.NoError(t, err)
	require.Empty(t, none)
}

func TestMemory_UpdateMergesPatch(t *testing.T) {
	m := newLedger()
	ctx := context.Background()

	created, err := m.Create(ctx, sampleRental("u1", "p1"))
	require.NoError(t, err)

	active := model.RentalActive
	paid := model.PaymentPaid
	got, err := m.Update(ctx, created.ID, model.RentalPatch{Status: &active, PaymentStatus: &paid})
	require.NoError(t, err)
	require.Equal(t, model.RentalActive, got.Status)
	require.Equal(t, model.PaymentPaid, got.PaymentStatus)
	require.Equal(t, created.StartDate, got.StartDate, "unpatched fields survive")
	require.Equal(t, float64(120), got.TotalPrice)
}

func TestMemory_UpdateNotFound(t *testing.T) {
	m := newLedger()

	active := model.RentalActive
	_, err := m.Update(context.Background(), "missing", model.RentalPatch{Status: &active})
	require.True(t, errors.Is(err, rentalrepo.ErrNotFound))
}

func TestMemory_Delete(t *testing.T) {
	m := newLedger()
	ctx := context.Background()

	created, err := m.Create(ctx, sampleRental("u1", "p1"))
	require.NoError(t, err)

	require.NoError(t, m.Delete(ctx, created.ID))
	_, err = m.Get(ctx, created.ID)
	require.True(t, errors.Is(err, rentalrepo.ErrNotFound))

	// Deleting again is a silent no-op.
	require.NoError(t, m.Delete(ctx, created.ID))
}

func TestMemory_WriteLatencyHonoursCancellation(t *testing.T) {
	m := rentalrepo.NewMemory(idgen.NewSequence("r"), time.Second, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := m.Create(ctx, sampleRental("u1", "p1"))
	require.ErrorIs(t, err, context.Canceled)

	all, err := m.List(context.Background())
	require.NoError(t, err)
	require.Empty(t, all, "cancelled write must not land")
}
