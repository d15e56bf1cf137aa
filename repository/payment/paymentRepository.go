// repository/payment/gateway.go
package paymentrepo

import (
	"context"
	"errors"
	"log/slog"
	"math/rand"
	"time"

	"github.com/aleksiojala-maker/hihoneyapp/model"
)

// ErrDeclined is the gateway's declined/error outcome. Everything else the
// caller sees is an infrastructure failure.
var ErrDeclined = errors.New("payment declined")

// Gateway charges an amount against opaque card data. Real integrations and
// the simulator sit behind the same interface.
type Gateway interface {
	Charge(ctx context.Context, amount float64, card model.CardDetails) error
}

// Simulator models flaky gateway behaviour: an artificial delay, then
// success with a fixed probability (0.95 by default).
type Simulator struct {
	SuccessRate float64
	Latency     time.Duration
	Log         *slog.Logger

	// Rand is the uniform [0,1) source; overridable for forced outcomes
	// in tests. Defaults to math/rand.
	Rand func() float64
}

func NewSimulator(successRate float64, latency time.Duration, log *slog.Logger) *Simulator {
	return &Simulator{SuccessRate: successRate, Latency: latency, Log: log}
}

func (s *Simulator) Charge(ctx context.Context, amount float64, card model.CardDetails) error {
	if s.Log != nil {
		s.Log.Info("processing payment", "amount", amount, "card_last4", card.Last4())
	}
	if s.Latency > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(s.Latency):
		}
	}
	roll := rand.Float64
	if s.Rand != nil {
		roll = s.Rand
	}
	if roll() > 1-s.SuccessRate {
		return nil
	}
	return ErrDeclined
}
