package payment

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/stripe/stripe-go/v78"
	"github.com/stripe/stripe-go/v78/client"
)

// Intent is a charge opened with a card processor.
type Intent struct {
	ID           string
	ClientSecret string
}

// Gateway opens card charges. Cash on delivery never reaches it.
type Gateway interface {
	CreateIntent(ctx context.Context, amount float64, metadata map[string]string) (Intent, error)
}

// StripeGateway creates Stripe payment intents in one currency.
type StripeGateway struct {
	api      *client.API
	currency string
}

func NewStripeGateway(secretKey, currency string) *StripeGateway {
	sc := &client.API{}
	sc.Init(secretKey, nil)
	return &StripeGateway{api: sc, currency: strings.ToLower(currency)}
}

func (g *StripeGateway) CreateIntent(ctx context.Context, amount float64, metadata map[string]string) (Intent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(MinorUnits(amount)),
		Currency: stripe.String(g.currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx
	for k, v := range metadata {
		params.AddMetadata(k, v)
	}

	pi, err := g.api.PaymentIntents.New(params)
	if err != nil {
		return Intent{}, fmt.Errorf("create payment intent: %w", err)
	}
	return Intent{ID: pi.ID, ClientSecret: pi.ClientSecret}, nil
}

// MinorUnits converts an amount to the smallest currency unit, rounding to
// the nearest cent.
func MinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
