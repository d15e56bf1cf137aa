package paymentrepo_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aleksiojala-maker/hihoneyapp/model"
	paymentrepo "github.com/aleksiojala-maker/hihoneyapp/repository/payment"
	"github.com/stretchr/testify/require"
)

var card = model.CardDetails{Number: "4242424242424242", Name: "A B", Expiry: "12/27", CVC: "123"}

func TestSimulator_ForcedOutcomes(t *testing.T) {
	s := paymentrepo.NewSimulator(0.95, 0, nil)

	s.Rand = func() float64 { return 0.99 }
	require.NoError(t, s.Charge(context.Background(), 120, card))

	s.Rand = func() float64 { return 0.01 }
	err := s.Charge(context.Background(), 120, card)
	require.True(t, errors.Is(err, paymentrepo.ErrDeclined))
}

func TestSimulator_ZeroRateAlwaysDeclines(t *testing.T) {
	s := paymentrepo.NewSimulator(0, 0, nil)
	for i := 0; i < 20; i++ {
		err := s.Charge(context.Background(), 10, card)
		require.True(t, errors.Is(err, paymentrepo.ErrDeclined))
	}
}

func TestSimulator_CancelledContext(t *testing.T) {
	s := paymentrepo.NewSimulator(1, time.Second, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := s.Charge(ctx, 10, card)
	require.ErrorIs(t, err, context.Canceled)
}
