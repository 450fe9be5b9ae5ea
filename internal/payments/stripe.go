package payments

import (
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
)

// CreateIntentInput carries everything needed to open a PaymentIntent.
// The idempotency key is generated client-side per reservation attempt so a
// double-submit or network retry reuses the same intent.
type CreateIntentInput struct {
	AmountCents    int64
	Currency       string
	IdempotencyKey string
	Metadata       map[string]string
}

// PaymentIntentResult is the subset of the intent the wizard needs.
type PaymentIntentResult struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
}

// PaymentIntentCreator abstracts Stripe PaymentIntent creation for testability.
type PaymentIntentCreator interface {
	Create(in CreateIntentInput) (*PaymentIntentResult, error)
}

// StripeCreator creates PaymentIntents through the Stripe Go SDK.
type StripeCreator struct {
	SecretKey string
}

func (s *StripeCreator) Create(in CreateIntentInput) (*PaymentIntentResult, error) {
	stripe.Key = s.SecretKey

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(in.AmountCents),
		Currency: stripe.String(in.Currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	for k, v := range in.Metadata {
		params.AddMetadata(k, v)
	}
	if in.IdempotencyKey != "" {
		params.SetIdempotencyKey(in.IdempotencyKey)
	}

	pi, err := paymentintent.New(params)
	if err != nil {
		return nil, err
	}
	return &PaymentIntentResult{ID: pi.ID, ClientSecret: pi.ClientSecret}, nil
}
