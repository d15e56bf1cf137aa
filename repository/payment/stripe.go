package paymentrepo

import (
	"context"
	"errors"
	"net/http"

	"github.com/aleksiojala-maker/hihoneyapp/model"
	"github.com/stripe/stripe-go/v83"
	"github.com/stripe/stripe-go/v83/paymentintent"
)

// Stripe is the real gateway integration behind the same interface as the
// simulator. Amounts are euros; Stripe wants cents.
type Stripe struct{}

func NewStripe(apiKey string, httpClient *http.Client) *Stripe {
	stripe.Key = apiKey
	stripe.SetBackend(stripe.APIBackend, stripe.GetBackendWithConfig(stripe.APIBackend, &stripe.BackendConfig{
		HTTPClient: httpClient,
	}))
	return &Stripe{}
}

func (s *Stripe) Charge(ctx context.Context, amount float64, card model.CardDetails) error {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(int64(amount * 100)),
		Currency: stripe.String(string(stripe.CurrencyEUR)),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
		Metadata: map[string]string{
			"cardholder": card.Name,
		},
	}
	params.Context = ctx

	intent, err := paymentintent.New(params)
	if err != nil {
		var sErr *stripe.Error
		if errors.As(err, &sErr) && sErr.Type == stripe.ErrorTypeCard {
			return ErrDeclined
		}
		return err
	}
	if intent.Status == stripe.PaymentIntentStatusCanceled {
		return ErrDeclined
	}
	return nil
}
