package billing

import (
	"context"

	stripe "github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

type stripeGateway struct {
	api *client.API
}

// NewStripeGateway builds a Gateway backed by the Stripe API. An empty secret
// key yields a gateway that fails every call with ErrNotConfigured.
func NewStripeGateway(secretKey string) Gateway {
	if secretKey == "" {
		return &stripeGateway{}
	}
	return &stripeGateway{api: client.New(secretKey, nil)}
}

func (g *stripeGateway) CreateIntent(ctx context.Context, amountMinor int64, currency string) (string, error) {
	if g.api == nil {
		return "", ErrNotConfigured
	}

	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amountMinor),
		Currency:           stripe.String(currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx

	intent, err := g.api.PaymentIntents.New(params)
	if err != nil {
		return "", err
	}
	return intent.ClientSecret, nil
}
